package leaders

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/star-realms/internal/entropy"
	"github.com/talgya/star-realms/internal/social"
)

func TestCatalogNamesRoundTrip(t *testing.T) {
	for _, p := range AllPerks() {
		got, ok := ParsePerk(p.String())
		require.True(t, ok, p.String())
		assert.Equal(t, p, got)
	}
	assert.Len(t, AllPerks(), NumPerks)
	assert.Equal(t, "Wealthy", PerkWealthy.String())
}

func TestPerkFlags(t *testing.T) {
	assert.True(t, PerkConvict.IsGainedPerk())
	assert.True(t, PerkConvict.IsBad())
	assert.True(t, PerkWarlord.IsRulerPerk())
	assert.True(t, PerkWarlord.IsCommanderPerk())
	assert.False(t, PerkWarlord.IsGovernorPerk())
	assert.True(t, PerkMerchant.IsGovernorPerk())
	assert.True(t, PerkStupid.IsMentalPerk())
	assert.False(t, PerkSkillful.IsBad())
}

func TestRaceRestrictions(t *testing.T) {
	assert.False(t, PerkAddicted.AllowedForRace(social.RaceMechions))
	assert.False(t, PerkAddicted.AllowedForRace(social.RaceLithorians))
	assert.True(t, PerkAddicted.AllowedForRace(social.RaceHumans))
	assert.False(t, PerkHealthy.AllowedForRace(social.RaceSynthdroids))
	assert.True(t, PerkHealthy.AllowedForRace(social.RaceLithorians))

	l := &Leader{Race: social.RaceMechions}
	assert.False(t, l.AddPerk(PerkAddicted))
	assert.Empty(t, l.Perks)
}

func TestAddPerkKeepsSetSortedAndUnique(t *testing.T) {
	l := &Leader{Race: social.RaceHumans}
	assert.True(t, l.AddPerk(PerkWealthy))
	assert.True(t, l.AddPerk(PerkAcademic))
	assert.False(t, l.AddPerk(PerkWealthy))
	assert.True(t, l.AddPerk(PerkMad))
	assert.Equal(t, []Perk{PerkAcademic, PerkMad, PerkWealthy}, l.Perks)

	assert.True(t, l.RemovePerk(PerkMad))
	assert.False(t, l.RemovePerk(PerkMad))
	assert.False(t, l.HasPerk(PerkMad))
}

func TestUseWealth(t *testing.T) {
	l := &Leader{Race: social.RaceHumans}
	assert.False(t, l.UseWealth())
	l.AddPerk(PerkWealthy)
	assert.True(t, l.UseWealth())
	assert.True(t, l.WealthUsed)
	assert.False(t, l.HasPerk(PerkWealthy))
	assert.NotContains(t, ProposeNewPerks(l, CategoryGood), PerkWealthy)
}

func TestProposeNewPerks(t *testing.T) {
	l := &Leader{Race: social.RaceHumans}
	l.AddPerk(PerkCombatMaster)

	commander := ProposeNewPerks(l, CategoryCommander)
	assert.NotContains(t, commander, PerkCombatMaster)
	assert.Contains(t, commander, PerkExplorer)
	for _, p := range commander {
		assert.True(t, p.IsCommanderPerk(), p.String())
	}

	bad := ProposeNewPerks(l, CategoryBad)
	assert.NotContains(t, bad, PerkConvict)
	assert.Contains(t, bad, PerkAddicted)

	robot := &Leader{Race: social.RaceReborgians}
	assert.NotContains(t, ProposeNewPerks(robot, CategoryBad), PerkAddicted)
	assert.NotContains(t, ProposeNewPerks(robot, CategoryGood), PerkHealthy)
}

func TestAssignJobResetsTime(t *testing.T) {
	l := &Leader{Job: JobGovernor, TimeInJob: 12}
	l.AssignJob(JobCommander)
	assert.Equal(t, JobCommander, l.Job)
	assert.Zero(t, l.TimeInJob)
	assert.True(t, JobCommander.Candidate())
	assert.False(t, JobPrison.Candidate())
	assert.False(t, JobTooYoung.Candidate())
}

func TestCallName(t *testing.T) {
	l := &Leader{Name: "Mira Voss"}
	assert.Equal(t, "Mira Voss", l.CallName())
	l.Title = "Queen"
	assert.Equal(t, "Queen Mira Voss", l.CallName())
}

func TestStats(t *testing.T) {
	var s Stats
	s.AddOne(StatBattles)
	s.Add(StatBattles, 2)
	assert.Equal(t, 3, s.Get(StatBattles))
	assert.Zero(t, s.Get(StatTrades))
}

func TestDeriveAttitude(t *testing.T) {
	tests := []struct {
		name  string
		perks []Perk
		want  Attitude
		ok    bool
	}{
		{"empty", nil, 0, false},
		{"merchant", []Perk{PerkMerchant}, AttitudeMerchantical, true},
		{"scientist beats explorer on tie", []Perk{PerkScientist, PerkExplorer}, AttitudeScientific, true},
		{"peaceful before backstabbing", []Perk{PerkWeakLeader, PerkRepulsive}, AttitudePeaceful, true},
		{"militaristic", []Perk{PerkMilitaristic}, AttitudeMilitaristic, true},
		{"cancel out", []Perk{PerkSlowLearner}, 0, false},
		{"charismatic is diplomatic", []Perk{PerkCharismatic}, AttitudeDiplomatic, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DeriveAttitude(tt.perks)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
	assert.Equal(t, AttitudeLogical, DeriveAttitudeOr(nil, AttitudeLogical))
	assert.Equal(t, "untrustworthy", AttitudeBackstabbing.Adjective())
}

func TestDeriveAttitudeIsPure(t *testing.T) {
	all := AllPerks()
	for i := range all {
		perks := all[i:min(i+4, len(all))]
		before := slices.Clone(perks)

		first, firstOK := DeriveAttitude(perks)
		second, secondOK := DeriveAttitude(perks)
		assert.Equal(t, firstOK, secondOK, "perks %v", perks)
		assert.Equal(t, first, second, "perks %v", perks)
		assert.Equal(t, AttitudeScores(perks), AttitudeScores(before))
		assert.Equal(t, before, perks, "input is not modified")

		reversed := slices.Clone(perks)
		slices.Reverse(reversed)
		third, thirdOK := DeriveAttitude(reversed)
		assert.Equal(t, firstOK, thirdOK, "order does not matter for %v", perks)
		assert.Equal(t, first, third, "order does not matter for %v", perks)
	}
}

func TestGenerateName(t *testing.T) {
	dice := entropy.NewDice(7)
	assert.Contains(t, GenerateName(dice, social.RaceHumans, GenderFemale), " ")
	assert.Regexp(t, `^M[A-Z]-\d{3}$`, GenerateName(dice, social.RaceMechions, GenderNone))
	assert.NotEmpty(t, GenerateName(dice, social.RaceGreyans, GenderMale))
}
