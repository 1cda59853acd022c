// The run command: play turns, autosave, optionally serve the API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/talgya/star-realms/internal/api"
	"github.com/talgya/star-realms/internal/config"
	"github.com/talgya/star-realms/internal/engine"
	"github.com/talgya/star-realms/internal/entropy"
	"github.com/talgya/star-realms/internal/llm"
	"github.com/talgya/star-realms/internal/persistence"
)

// saveEvery is the number of turns between automatic saves.
const saveEvery = 10

func runCmd(configPath *string) *cobra.Command {
	var (
		serve bool
		fresh bool
		turns int
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Play turns, resuming the saved game if there is one",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("turns") {
				cfg.Turns = turns
			}
			return run(cmd.Context(), cfg, serve, fresh)
		},
	}
	cmd.Flags().BoolVar(&serve, "serve", false, "Serve the HTTP API while playing and after the last turn")
	cmd.Flags().BoolVar(&fresh, "new", false, "Start a new game even if one is saved")
	cmd.Flags().IntVarP(&turns, "turns", "n", 0, "Turns to play (0 plays until interrupted)")
	return cmd
}

func run(parent context.Context, cfg *config.Config, serve, fresh bool) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}
	db, err := persistence.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()
	slog.Info("database opened", "path", cfg.DBPath)

	seed := cfg.Seed
	if seed == 0 {
		if seed, err = entropy.NewSeed(); err != nil {
			return err
		}
	}
	court, err := loadOrCreate(db, cfg, seed, fresh)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	court.SetMetrics(engine.NewMetrics(reg))

	runner := engine.NewRunner(court)
	runner.Interval = cfg.Scenario.TurnInterval
	runner.OnTurn = func(turn int) {
		if turn%saveEvery != 0 {
			return
		}
		runner.Mu.RLock()
		defer runner.Mu.RUnlock()
		if err := db.SaveCourt(court); err != nil {
			slog.Error("autosave failed", "turn", turn, "error", err)
		}
	}

	var serveErr chan error
	if serve {
		srv := &api.Server{
			Court:    court,
			Mu:       runner.Mu,
			LLM:      llm.NewClient(cfg.LLM.APIKey, cfg.LLM.Model),
			DB:       db,
			Gatherer: reg,
			Port:     cfg.API.Port,
			AdminKey: cfg.API.AdminKey,
		}
		serveErr = make(chan error, 1)
		go func() { serveErr <- srv.Start(ctx) }()
	}

	runErr := runner.Run(ctx, cfg.Turns)
	runner.Mu.RLock()
	saveErr := db.SaveCourt(court)
	runner.Mu.RUnlock()
	if saveErr != nil {
		return fmt.Errorf("final save: %w", saveErr)
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}

	if serve {
		slog.Info("turns done, still serving; interrupt to stop")
		return <-serveErr
	}
	return nil
}

// loadOrCreate resumes the saved game or founds a new one.
func loadOrCreate(db *persistence.DB, cfg *config.Config, seed int64, fresh bool) (*engine.Court, error) {
	src := entropy.NewDice(seed)
	opts := engine.Options{
		TurnsPerYear: cfg.Upkeep.TurnsPerYear,
		HeirChance:   cfg.Upkeep.HeirChance,
		CoupChance:   cfg.Upkeep.CoupChance,
	}

	if !fresh {
		court, err := db.LoadCourt(src)
		switch {
		case err == nil && len(court.Realms) > 0:
			court.Options = opts
			return court, nil
		case err != nil && !errors.Is(err, persistence.ErrNotFound):
			return nil, err
		}
	}

	slog.Info("founding new galaxy", "seed", src.Seed(), "realms", cfg.Scenario.Realms, "radius", cfg.Scenario.GalaxyRadius)
	court := engine.NewGame(engine.Scenario{
		Realms:     cfg.Scenario.Realms,
		Radius:     cfg.Scenario.GalaxyRadius,
		Seed:       src.Seed(),
		HumanRealm: cfg.Scenario.HumanRealm,
		Options:    opts,
	}, src)
	if err := db.SaveMeta("seed", strconv.FormatInt(src.Seed(), 10)); err != nil {
		return nil, fmt.Errorf("save seed: %w", err)
	}
	return court, nil
}
