// Scenario setup: a fresh galaxy with one founded realm per homeworld.
package engine

import (
	"log/slog"

	"github.com/talgya/star-realms/internal/entropy"
	"github.com/talgya/star-realms/internal/realm"
	"github.com/talgya/star-realms/internal/social"
	"github.com/talgya/star-realms/internal/world"
)

// Scenario describes a new game.
type Scenario struct {
	Realms     int
	Radius     int
	Seed       int64
	HumanRealm bool // Realm 0 is played by a human
	Options    Options
}

// Starting resources for every realm.
const (
	startingCredits = 100
	contactRange    = 8 // Hex distance within which homeworlds know each other
)

// NewGame generates a star map and seats a realm with a crowned ruler and a
// home fleet on each homeworld.
func NewGame(s Scenario, src entropy.Source) *Court {
	gen := world.DefaultGenConfig()
	gen.Radius = s.Radius
	gen.Seed = s.Seed
	m := world.Generate(gen)
	homes := world.AssignHomeworlds(m, s.Realms, gen)

	realms := make([]*realm.Realm, 0, len(homes))
	used := make(map[string]bool)
	for i := range homes {
		race := social.Race(src.Intn(social.NumRaces))
		gov := social.GovernmentType(src.Intn(social.NumGovernments))
		name := race.String() + " " + gov.String()
		for used[name] {
			name += " II"
		}
		used[name] = true

		r := realm.New(i, name, race, gov)
		r.Human = s.HumanRealm && i == 0
		r.Credits = startingCredits
		r.AddFleet("Home Fleet")
		realms = append(realms, r)
	}

	c := NewCourt(m, realms, src)
	c.Options = s.Options
	for i, r := range realms {
		ruler := c.CreateLeader(r, homes[i], LevelStartRuler)
		r.AddLeader(ruler)
		c.AssignLeaderAsRuler(ruler, r)
		for j := 0; j < i; j++ {
			if world.Distance(homes[i].Coord, homes[j].Coord) <= contactRange {
				c.Meet(i, j)
			}
		}
		slog.Info("realm founded", "realm", r.EmpireName, "race", r.Race.String(),
			"government", r.Government.String(), "ruler", ruler.CallName(), "homeworld", homes[i].Name)
	}
	return c
}
