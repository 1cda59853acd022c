package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/star-realms/internal/entropy"
	"github.com/talgya/star-realms/internal/leaders"
	"github.com/talgya/star-realms/internal/world"
)

func TestNewGame(t *testing.T) {
	c := NewGame(Scenario{Realms: 4, Radius: 8, Seed: 7, HumanRealm: true, Options: DefaultOptions()}, entropy.NewDice(7))

	require.Len(t, c.Realms, 4)
	names := map[string]bool{}
	for i, r := range c.Realms {
		assert.Equal(t, i, r.ID)
		assert.Equal(t, i == 0, r.Human)
		assert.False(t, names[r.EmpireName], "realm names are unique")
		names[r.EmpireName] = true

		ruler := r.Ruler()
		require.NotNil(t, ruler, r.EmpireName)
		assert.Equal(t, leaders.JobRuler, ruler.Job)
		assert.NotEmpty(t, ruler.Title)
		assert.Equal(t, 1, ruler.Level)

		homes := c.Map.PlanetsOwnedBy(r.ID)
		require.Len(t, homes, 1)
		assert.Equal(t, homes[0].Name, ruler.Homeworld)
		assert.Equal(t, 1, homes[0].CountBuildings(world.BuildingBarracks))
		require.Len(t, r.Fleets, 1)
	}
	assert.Equal(t, DefaultOptions(), c.Options)
}

func TestNewGameIsReproducible(t *testing.T) {
	s := Scenario{Realms: 3, Radius: 6, Seed: 99, Options: DefaultOptions()}
	a := NewGame(s, entropy.NewDice(5))
	b := NewGame(s, entropy.NewDice(5))
	for i := range a.Realms {
		assert.Equal(t, a.Realms[i].EmpireName, b.Realms[i].EmpireName)
		assert.Equal(t, a.Realms[i].Leaders, b.Realms[i].Leaders)
	}
	assert.Equal(t, a.Contacts(), b.Contacts())
}

func TestNewGamePlaysTurns(t *testing.T) {
	c := NewGame(Scenario{Realms: 3, Radius: 6, Seed: 3, Options: DefaultOptions()}, entropy.NewDice(3))
	for i := 0; i < 30; i++ {
		c.PlayTurn()
	}
	assert.Equal(t, 30, c.Turn)
	for _, r := range c.Realms {
		assert.NotEmpty(t, r.LivingLeaders(), r.EmpireName)
		for _, l := range r.Leaders {
			if l.Job == leaders.JobGovernor {
				assert.NotNil(t, c.Map.PlanetGovernedBy(r.ID, l.ID), "governor %s has a seat", l.Name)
			}
			if l.Job == leaders.JobCommander {
				assert.NotNil(t, r.FleetCommandedBy(l.ID), "commander %s has a fleet", l.Name)
			}
		}
	}
}
