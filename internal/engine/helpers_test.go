package engine

import (
	"github.com/talgya/star-realms/internal/entropy"
	"github.com/talgya/star-realms/internal/leaders"
	"github.com/talgya/star-realms/internal/realm"
	"github.com/talgya/star-realms/internal/social"
	"github.com/talgya/star-realms/internal/world"
)

// newTestCourt builds a one-realm galaxy with a single homeworld.
func newTestCourt(gov social.GovernmentType, src entropy.Source) (*Court, *realm.Realm, *world.Planet) {
	m := world.NewStarMap(5)
	home := &world.Planet{Name: "Sol III", Owner: 0, Population: 10}
	m.AddPlanet(home)
	r := realm.New(0, "Terran Alliance", social.RaceHumans, gov)
	c := NewCourt(m, []*realm.Realm{r}, src)
	return c, r, home
}

// addLeader appends a leader with the given job and age to the pool.
func addLeader(r *realm.Realm, name string, job leaders.Job, age int, perks ...leaders.Perk) *leaders.Leader {
	l := &leaders.Leader{
		ID:    r.NextLeaderID(),
		Name:  name,
		Race:  r.Race,
		Age:   age,
		Job:   job,
		Level: 1,
	}
	for _, p := range perks {
		l.AddPerk(p)
	}
	r.AddLeader(l)
	return l
}

func childOf(l, parent *leaders.Leader) *leaders.Leader {
	id := parent.ID
	l.ParentID = &id
	return l
}
