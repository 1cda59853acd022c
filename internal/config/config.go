// Package config loads the simulator configuration from YAML and the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config is the complete simulator configuration.
type Config struct {
	Seed     int64  `yaml:"seed"      env:"REALMSIM_SEED"`
	DBPath   string `yaml:"db_path"   env:"REALMSIM_DB_PATH"`
	LogLevel string `yaml:"log_level" env:"REALMSIM_LOG_LEVEL"`
	Turns    int    `yaml:"turns"     env:"REALMSIM_TURNS"`

	API      APIConfig      `yaml:"api"`
	LLM      LLMConfig      `yaml:"llm"`
	Upkeep   UpkeepConfig   `yaml:"upkeep"`
	Scenario ScenarioConfig `yaml:"scenario"`
}

// APIConfig configures the read-only HTTP API.
type APIConfig struct {
	Port     int    `yaml:"port"      env:"REALMSIM_API_PORT"`
	AdminKey string `yaml:"admin_key" env:"REALMSIM_ADMIN_KEY"`
}

// LLMConfig configures story generation. An empty key disables it.
type LLMConfig struct {
	APIKey string `yaml:"api_key" env:"ANTHROPIC_API_KEY"`
	Model  string `yaml:"model"   env:"REALMSIM_LLM_MODEL"`
}

// UpkeepConfig tunes per-turn leader upkeep.
type UpkeepConfig struct {
	TurnsPerYear int `yaml:"turns_per_year" env:"REALMSIM_TURNS_PER_YEAR"`
	HeirChance   int `yaml:"heir_chance"    env:"REALMSIM_HEIR_CHANCE"` // Percent per turn
	CoupChance   int `yaml:"coup_chance"    env:"REALMSIM_COUP_CHANCE"` // Percent per turn
}

// ScenarioConfig describes the galaxy generated for a new game.
type ScenarioConfig struct {
	Realms       int           `yaml:"realms"        env:"REALMSIM_REALMS"`
	GalaxyRadius int           `yaml:"galaxy_radius" env:"REALMSIM_GALAXY_RADIUS"`
	HumanRealm   bool          `yaml:"human_realm"   env:"REALMSIM_HUMAN_REALM"`
	TurnInterval time.Duration `yaml:"turn_interval" env:"REALMSIM_TURN_INTERVAL"`
}

// DefaultConfig returns a Config with the standard game settings.
func DefaultConfig() *Config {
	return &Config{
		Seed:     0, // Random
		DBPath:   "realms.db",
		LogLevel: "info",
		Turns:    100,
		API: APIConfig{
			Port: 8080,
		},
		Upkeep: UpkeepConfig{
			TurnsPerYear: 10,
			HeirChance:   2,
			CoupChance:   1,
		},
		Scenario: ScenarioConfig{
			Realms:       4,
			GalaxyRadius: 12,
			HumanRealm:   true,
		},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error (got %q)", c.LogLevel)
	}
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	if c.Turns < 0 {
		return fmt.Errorf("turns must not be negative")
	}
	if c.API.Port < 0 || c.API.Port > 65535 {
		return fmt.Errorf("api.port must be between 0 and 65535")
	}
	if c.Upkeep.TurnsPerYear < 1 {
		return fmt.Errorf("upkeep.turns_per_year must be at least 1")
	}
	for name, pct := range map[string]int{"heir_chance": c.Upkeep.HeirChance, "coup_chance": c.Upkeep.CoupChance} {
		if pct < 0 || pct > 100 {
			return fmt.Errorf("upkeep.%s must be between 0 and 100", name)
		}
	}
	if c.Scenario.Realms < 1 {
		return fmt.Errorf("scenario.realms must be at least 1")
	}
	if c.Scenario.GalaxyRadius < 2 {
		return fmt.Errorf("scenario.galaxy_radius must be at least 2")
	}
	return nil
}

// Load reads the YAML file at path over the defaults, applies REALMSIM_*
// environment overrides and validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
