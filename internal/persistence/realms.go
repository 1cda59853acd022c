// Realm and leader pool storage, one row per leader in pool order.
package persistence

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/talgya/star-realms/internal/leaders"
	"github.com/talgya/star-realms/internal/realm"
	"github.com/talgya/star-realms/internal/social"
)

type realmRow struct {
	ID           int    `db:"id"`
	Name         string `db:"name"`
	Race         string `db:"race"`
	Government   string `db:"government"`
	Human        bool   `db:"human"`
	Credits      int    `db:"credits"`
	RulerID      *int64 `db:"ruler_id"`
	FleetsJSON   string `db:"fleets_json"`
	MissionsJSON string `db:"missions_json"`
}

type leaderRow struct {
	RealmID    int    `db:"realm_id"`
	ID         int64  `db:"id"`
	PoolIndex  int    `db:"pool_index"`
	Name       string `db:"name"`
	Gender     int    `db:"gender"`
	Race       string `db:"race"`
	Homeworld  string `db:"homeworld"`
	Age        int    `db:"age"`
	Experience int    `db:"experience"`
	Level      int    `db:"level"`
	Job        int    `db:"job"`
	TimeInJob  int    `db:"time_in_job"`
	Title      string `db:"title"`
	Rank       int    `db:"military_rank"`
	ParentID   *int64 `db:"parent_id"`
	PerksJSON  string `db:"perks_json"`
	StatsJSON  string `db:"stats_json"`
	WealthUsed bool   `db:"wealth_used"`
}

func idPtr(id *leaders.LeaderID) *int64 {
	if id == nil {
		return nil
	}
	v := int64(*id)
	return &v
}

func leaderIDPtr(v *int64) *leaders.LeaderID {
	if v == nil {
		return nil
	}
	id := leaders.LeaderID(*v)
	return &id
}

// perkNames stores perks by name so the catalog order can change.
func perkNames(perks []leaders.Perk) []string {
	names := make([]string, len(perks))
	for i, p := range perks {
		names[i] = p.String()
	}
	return names
}

// SaveRealms writes all realms and their leader pools (full replace).
func (db *DB) SaveRealms(realms []*realm.Realm) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM realms"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM leaders"); err != nil {
		return err
	}

	leaderStmt, err := tx.Preparex(`INSERT INTO leaders
		(realm_id, id, pool_index, name, gender, race, homeworld, age, experience, level,
		 job, time_in_job, title, military_rank, parent_id, perks_json, stats_json, wealth_used)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer leaderStmt.Close()

	for _, r := range realms {
		fleetsJSON, err := json.Marshal(r.Fleets)
		if err != nil {
			return fmt.Errorf("marshal fleets of realm %d: %w", r.ID, err)
		}
		missionsJSON, err := json.Marshal(r.Missions.All())
		if err != nil {
			return fmt.Errorf("marshal missions of realm %d: %w", r.ID, err)
		}
		_, err = tx.Exec(`INSERT INTO realms
			(id, name, race, government, human, credits, ruler_id, fleets_json, missions_json)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.ID, r.EmpireName, r.Race.String(), r.Government.String(), r.Human, r.Credits,
			idPtr(r.RulerID), string(fleetsJSON), string(missionsJSON),
		)
		if err != nil {
			return fmt.Errorf("insert realm %d: %w", r.ID, err)
		}

		for i, l := range r.Leaders {
			perksJSON, err := json.Marshal(perkNames(l.Perks))
			if err != nil {
				return fmt.Errorf("marshal perks of leader %d: %w", l.ID, err)
			}
			statsJSON, err := json.Marshal(l.Stats)
			if err != nil {
				return fmt.Errorf("marshal stats of leader %d: %w", l.ID, err)
			}
			_, err = leaderStmt.Exec(
				r.ID, int64(l.ID), i, l.Name, int(l.Gender), l.Race.String(), l.Homeworld,
				l.Age, l.Experience, l.Level, int(l.Job), l.TimeInJob, l.Title, int(l.Rank),
				idPtr(l.ParentID), string(perksJSON), string(statsJSON), l.WealthUsed,
			)
			if err != nil {
				return fmt.Errorf("insert leader %d of realm %d: %w", l.ID, r.ID, err)
			}
		}
	}
	return tx.Commit()
}

// LoadRealms restores every realm with its leader pool in saved order.
func (db *DB) LoadRealms() ([]*realm.Realm, error) {
	var rows []realmRow
	if err := db.conn.Select(&rows, "SELECT * FROM realms ORDER BY id"); err != nil {
		return nil, fmt.Errorf("select realms: %w", err)
	}

	realms := make([]*realm.Realm, 0, len(rows))
	byID := make(map[int]*realm.Realm, len(rows))
	for _, row := range rows {
		race, ok := social.ParseRace(row.Race)
		if !ok {
			return nil, fmt.Errorf("realm %d: unknown race %q", row.ID, row.Race)
		}
		gov, ok := social.ParseGovernment(row.Government)
		if !ok {
			return nil, fmt.Errorf("realm %d: unknown government %q", row.ID, row.Government)
		}
		r := realm.New(row.ID, row.Name, race, gov)
		r.Human = row.Human
		r.Credits = row.Credits
		r.RulerID = leaderIDPtr(row.RulerID)
		if err := json.Unmarshal([]byte(row.FleetsJSON), &r.Fleets); err != nil {
			return nil, fmt.Errorf("realm %d fleets: %w", row.ID, err)
		}
		var missions []*realm.Mission
		if err := json.Unmarshal([]byte(row.MissionsJSON), &missions); err != nil {
			return nil, fmt.Errorf("realm %d missions: %w", row.ID, err)
		}
		for _, m := range missions {
			if r.FleetByName(m.Fleet) == nil {
				slog.Warn("dropping mission of missing fleet", "realm", row.ID, "fleet", m.Fleet)
				continue
			}
			r.Missions.Add(m)
		}
		realms = append(realms, r)
		byID[r.ID] = r
	}

	var lrows []leaderRow
	if err := db.conn.Select(&lrows, "SELECT * FROM leaders ORDER BY realm_id, pool_index"); err != nil {
		return nil, fmt.Errorf("select leaders: %w", err)
	}
	for _, row := range lrows {
		r := byID[row.RealmID]
		if r == nil {
			return nil, fmt.Errorf("leader %d: unknown realm %d", row.ID, row.RealmID)
		}
		l, err := row.leader()
		if err != nil {
			return nil, err
		}
		r.AddLeader(l)
	}
	return realms, nil
}

func (row leaderRow) leader() (*leaders.Leader, error) {
	race, ok := social.ParseRace(row.Race)
	if !ok {
		return nil, fmt.Errorf("leader %d: unknown race %q", row.ID, row.Race)
	}
	l := &leaders.Leader{
		ID:         leaders.LeaderID(row.ID),
		Name:       row.Name,
		Gender:     leaders.Gender(row.Gender),
		Race:       race,
		Homeworld:  row.Homeworld,
		Age:        row.Age,
		Experience: row.Experience,
		Level:      row.Level,
		Job:        leaders.Job(row.Job),
		TimeInJob:  row.TimeInJob,
		Title:      row.Title,
		Rank:       leaders.MilitaryRank(row.Rank),
		ParentID:   leaderIDPtr(row.ParentID),
		WealthUsed: row.WealthUsed,
	}

	var names []string
	if err := json.Unmarshal([]byte(row.PerksJSON), &names); err != nil {
		return nil, fmt.Errorf("leader %d perks: %w", row.ID, err)
	}
	for _, name := range names {
		p, ok := leaders.ParsePerk(name)
		if !ok {
			return nil, fmt.Errorf("leader %d: unknown perk %q", row.ID, name)
		}
		l.AddPerk(p)
	}
	if err := json.Unmarshal([]byte(row.StatsJSON), &l.Stats); err != nil {
		return nil, fmt.Errorf("leader %d stats: %w", row.ID, err)
	}
	return l, nil
}
