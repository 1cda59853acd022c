// Saving and resuming a whole game: star map, realms, turn counter and contacts.
package persistence

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/talgya/star-realms/internal/engine"
	"github.com/talgya/star-realms/internal/entropy"
)

const (
	metaTurn     = "last_turn"
	metaContacts = "contacts"
)

// SaveCourt performs a full save of the galaxy, realms, history and turn.
func (db *DB) SaveCourt(c *engine.Court) error {
	slog.Info("saving game state", "turn", c.Turn, "realms", len(c.Realms), "planets", len(c.Map.Planets))

	if err := db.SaveStarMap(c.Map); err != nil {
		return fmt.Errorf("save star map: %w", err)
	}
	if err := db.SaveRealms(c.Realms); err != nil {
		return fmt.Errorf("save realms: %w", err)
	}
	if err := db.SaveEvents(c.History.Events()); err != nil {
		return fmt.Errorf("save events: %w", err)
	}
	contacts, err := json.Marshal(c.Contacts())
	if err != nil {
		return fmt.Errorf("marshal contacts: %w", err)
	}
	if err := db.SaveMeta(metaContacts, string(contacts)); err != nil {
		return fmt.Errorf("save contacts: %w", err)
	}
	if err := db.SaveMeta(metaTurn, strconv.Itoa(c.Turn)); err != nil {
		return fmt.Errorf("save meta: %w", err)
	}

	slog.Info("game state saved")
	return nil
}

// LoadCourt restores a saved game onto a fresh court drawing from src.
func (db *DB) LoadCourt(src entropy.Source) (*engine.Court, error) {
	m, err := db.LoadStarMap()
	if err != nil {
		return nil, fmt.Errorf("load star map: %w", err)
	}
	realms, err := db.LoadRealms()
	if err != nil {
		return nil, fmt.Errorf("load realms: %w", err)
	}

	c := engine.NewCourt(m, realms, src)
	if value, err := db.GetMeta(metaTurn); err == nil {
		if c.Turn, err = strconv.Atoi(value); err != nil {
			return nil, fmt.Errorf("turn %q: %w", value, err)
		}
	}
	if value, err := db.GetMeta(metaContacts); err == nil {
		var contacts [][2]int
		if err := json.Unmarshal([]byte(value), &contacts); err != nil {
			return nil, fmt.Errorf("contacts: %w", err)
		}
		for _, pair := range contacts {
			c.Meet(pair[0], pair[1])
		}
	}

	slog.Info("game state loaded", "turn", c.Turn, "realms", len(realms), "planets", len(m.Planets))
	return c, nil
}
