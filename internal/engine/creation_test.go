package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talgya/star-realms/internal/entropy"
	"github.com/talgya/star-realms/internal/leaders"
	"github.com/talgya/star-realms/internal/realm"
	"github.com/talgya/star-realms/internal/social"
)

func TestCreatedPerkCountWithinBounds(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		c, r, home := newTestCourt(social.GovDemocracy, entropy.NewDice(seed))
		for _, level := range []int{1, 2, 3, 5} {
			l := c.CreateLeader(r, home, level)
			assert.GreaterOrEqual(t, len(l.Perks), level, "seed %d level %d", seed, level)
			assert.LessOrEqual(t, len(l.Perks), 2*level, "seed %d level %d", seed, level)
			assert.Equal(t, level, l.Level)
			assert.Equal(t, leaders.JobUnassigned, l.Job)
			assert.Zero(t, l.Experience)
			assert.Empty(t, l.Title)
			assert.Equal(t, "Sol III", l.Homeworld)
			assert.GreaterOrEqual(t, l.Age, 23)
			assert.Less(t, l.Age, 38)
		}
	}
}

func TestCreatedPerksRespectRace(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		c, _, _ := newTestCourt(social.GovAI, entropy.NewDice(seed))
		r := realm.New(1, "Mechion Collective", social.RaceMechions, social.GovCollective)
		for i := 0; i < 5; i++ {
			l := c.CreateLeader(r, nil, 6)
			for _, p := range l.Perks {
				assert.True(t, p.AllowedForRace(l.Race), p.String())
			}
			assert.Equal(t, leaders.GenderNone, l.Gender)
			assert.Equal(t, 1, l.Age, "regular mechions are brand new")
			assert.Equal(t, "Unknown", l.Homeworld)
		}
	}
}

func TestStartingRulerGender(t *testing.T) {
	tests := []struct {
		race social.Race
		gov  social.GovernmentType
		want leaders.Gender
	}{
		{social.RaceSpork, social.GovKingdom, leaders.GenderMale},
		{social.RaceCentaurs, social.GovEmpire, leaders.GenderFemale},
		{social.RaceReborgians, social.GovEmpire, leaders.GenderNone},
		{social.RaceSynthdroids, social.GovKingdom, leaders.GenderFemale},
		{social.RaceSynthdroids, social.GovDemocracy, leaders.GenderFemale},
	}
	for _, tt := range tests {
		t.Run(tt.race.String()+"/"+tt.gov.String(), func(t *testing.T) {
			for seed := int64(1); seed <= 10; seed++ {
				c, _, _ := newTestCourt(tt.gov, entropy.NewDice(seed))
				r := realm.New(1, "Test", tt.race, tt.gov)
				assert.Equal(t, tt.want, c.CreateLeader(r, nil, LevelStartRuler).Gender)
			}
		})
	}
}

func TestPatriarchyOutsideMonarchyIsRandom(t *testing.T) {
	seen := map[leaders.Gender]bool{}
	for seed := int64(1); seed <= 40; seed++ {
		c, _, _ := newTestCourt(social.GovDemocracy, entropy.NewDice(seed))
		r := realm.New(1, "Spork Union", social.RaceSpork, social.GovUnion)
		seen[c.CreateLeader(r, nil, LevelStartRuler).Gender] = true
	}
	assert.True(t, seen[leaders.GenderMale])
	assert.True(t, seen[leaders.GenderFemale])
}

func TestStartingRulerAge(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		c, human, _ := newTestCourt(social.GovDemocracy, entropy.NewDice(seed))
		l := c.CreateLeader(human, nil, LevelStartRuler)
		assert.Equal(t, 1, l.Level)
		assert.GreaterOrEqual(t, l.Age, 30)
		assert.Less(t, l.Age, 50)
		assert.NotEmpty(t, l.Perks)

		spork := realm.New(1, "Spork Nest", social.RaceSpork, social.GovNest)
		l = c.CreateLeader(spork, nil, LevelStartRuler)
		assert.GreaterOrEqual(t, l.Age, 25)
		assert.Less(t, l.Age, 35)

		mechions := realm.New(2, "Mechion Horde", social.RaceMechions, social.GovMechanicalHorde)
		l = c.CreateLeader(mechions, nil, LevelStartRuler)
		assert.GreaterOrEqual(t, l.Age, 4)
		assert.Less(t, l.Age, 14)
	}
}

func TestAddRandomPerks(t *testing.T) {
	// 0 < 60 picks the job pool, 50 >= 10 skips the bad draw.
	c, r, _ := newTestCourt(social.GovDemocracy, entropy.NewSequence(0, 0, 50))
	l := addLeader(r, "Admiral", leaders.JobCommander, 40)
	assert.Equal(t, 1, c.AddRandomPerks(l))
	assert.Len(t, l.Perks, 1)
	assert.True(t, l.Perks[0].IsCommanderPerk())

	// 70 >= 60 picks a good perk, 5 < 10 adds a bad one.
	c, r, _ = newTestCourt(social.GovDemocracy, entropy.NewSequence(70, 0, 5, 0))
	l = addLeader(r, "Idle", leaders.JobUnassigned, 40)
	assert.Equal(t, 2, c.AddRandomPerks(l))
	assert.Len(t, l.Perks, 2)
	bad := 0
	for _, p := range l.Perks {
		if p.IsBad() {
			bad++
		}
	}
	assert.Equal(t, 1, bad)
}

func TestAddRandomPerksFallsBackToGood(t *testing.T) {
	// Unassigned leaders have no job pool, so the 60% branch lands on a good perk.
	c, r, _ := newTestCourt(social.GovDemocracy, entropy.NewSequence(0, 0, 99))
	l := addLeader(r, "Idle", leaders.JobUnassigned, 40)
	assert.Equal(t, 1, c.AddRandomPerks(l))
	assert.False(t, l.Perks[0].IsBad())
}
