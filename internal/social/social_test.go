package social

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEveryGovernmentHasPolicy(t *testing.T) {
	for g := GovernmentType(0); g < NumGovernments; g++ {
		info := g.Info()
		assert.NotEmpty(t, info.Name, "government %d", g)
		assert.GreaterOrEqual(t, info.PoolLimit, 1, info.Name)
		assert.Greater(t, info.RecruitCost, 0, info.Name)

		parsed, ok := ParseGovernment(info.Name)
		assert.True(t, ok)
		assert.Equal(t, g, parsed)
	}
}

func TestPowerHungryKills(t *testing.T) {
	assert.True(t, GovKingdom.PowerHungryKills())
	assert.True(t, GovRegime.PowerHungryKills())
	assert.False(t, GovDemocracy.PowerHungryKills())
	assert.False(t, GovAI.PowerHungryKills())
}

func TestHereditary(t *testing.T) {
	assert.True(t, GovEmpire.Hereditary())
	assert.True(t, GovKingdom.Hereditary())
	assert.True(t, GovFeudalism.Hereditary())
	assert.False(t, GovHorde.Hereditary())
}

func TestRaceDescriptors(t *testing.T) {
	for r := Race(0); r < NumRaces; r++ {
		info := r.Info()
		assert.NotEmpty(t, info.Name)
		assert.Greater(t, info.LifeSpan, 0)
		parsed, ok := ParseRace(info.Name)
		assert.True(t, ok)
		assert.Equal(t, r, parsed)
	}
	assert.True(t, RaceMechions.IsMechanical())
	assert.True(t, RaceSynthdroids.IsRobotic())
	assert.Less(t, RaceSpork.LifeSpan(), 80)
	assert.Equal(t, SocialPatriarchy, RaceScaurians.SocialSystem())

	_, ok := ParseRace("Klingons")
	assert.False(t, ok)
	assert.Equal(t, "Unknown", Race(200).String())
}
