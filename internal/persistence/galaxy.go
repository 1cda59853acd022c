// Star map storage: planets, their buildings and governor seats.
package persistence

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/talgya/star-realms/internal/world"
)

const metaGalaxyRadius = "galaxy_radius"

type planetRow struct {
	ID            int     `db:"id"`
	Name          string  `db:"name"`
	Q             int     `db:"q"`
	R             int     `db:"r"`
	Owner         int     `db:"owner"`
	Population    int     `db:"population"`
	Richness      float64 `db:"richness"`
	BuildingsJSON string  `db:"buildings_json"`
	GovernorID    *int64  `db:"governor_id"`
}

// SaveStarMap writes every planet and the map radius (full replace).
func (db *DB) SaveStarMap(m *world.StarMap) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM planets"); err != nil {
		return err
	}
	for _, p := range m.Planets {
		buildings := make([]int, len(p.Buildings))
		for i, b := range p.Buildings {
			buildings[i] = int(b)
		}
		buildingsJSON, err := json.Marshal(buildings)
		if err != nil {
			return fmt.Errorf("marshal buildings of planet %d: %w", p.ID, err)
		}
		_, err = tx.Exec(`INSERT INTO planets
			(id, name, q, r, owner, population, richness, buildings_json, governor_id)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.Name, p.Coord.Q, p.Coord.R, p.Owner, p.Population, p.Richness,
			string(buildingsJSON), idPtr(p.GovernorID),
		)
		if err != nil {
			return fmt.Errorf("insert planet %d: %w", p.ID, err)
		}
	}
	if _, err := tx.Exec("INSERT OR REPLACE INTO world_meta (key, value) VALUES (?, ?)",
		metaGalaxyRadius, strconv.Itoa(m.Radius)); err != nil {
		return fmt.Errorf("save radius: %w", err)
	}
	return tx.Commit()
}

// LoadStarMap restores the star map. Planet IDs are kept as saved.
func (db *DB) LoadStarMap() (*world.StarMap, error) {
	value, err := db.GetMeta(metaGalaxyRadius)
	if err != nil {
		return nil, err
	}
	radius, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("galaxy radius %q: %w", value, err)
	}

	var rows []planetRow
	if err := db.conn.Select(&rows, "SELECT * FROM planets ORDER BY id"); err != nil {
		return nil, fmt.Errorf("select planets: %w", err)
	}

	m := world.NewStarMap(radius)
	for _, row := range rows {
		var buildings []int
		if err := json.Unmarshal([]byte(row.BuildingsJSON), &buildings); err != nil {
			return nil, fmt.Errorf("planet %d buildings: %w", row.ID, err)
		}
		p := &world.Planet{
			ID:         row.ID,
			Name:       row.Name,
			Coord:      world.Coord{Q: row.Q, R: row.R},
			Owner:      row.Owner,
			Population: row.Population,
			Richness:   row.Richness,
			GovernorID: leaderIDPtr(row.GovernorID),
		}
		for _, b := range buildings {
			p.AddBuilding(world.Building(b))
		}
		m.Planets = append(m.Planets, p)
	}
	return m, nil
}
