package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talgya/star-realms/internal/entropy"
	"github.com/talgya/star-realms/internal/leaders"
)

func leaderAged(age int, perks ...leaders.Perk) *leaders.Leader {
	l := &leaders.Leader{Age: age}
	for _, p := range perks {
		l.AddPerk(p)
	}
	return l
}

func TestStrongAgeCurve(t *testing.T) {
	tests := map[int]int{
		17: 0, 18: 33, 24: 39, 25: 45, 30: 40, 31: 37, 39: 29,
		40: 25, 49: 16, 50: 10, 59: 1, 60: 0, 90: 0,
	}
	for age, want := range tests {
		assert.Equal(t, want, FamilyStrong.AgeScore(age), "age %d", age)
	}
}

func TestAgeSteps(t *testing.T) {
	assert.Equal(t, 0, FamilyBusiness.AgeScore(30))
	assert.Equal(t, 4, FamilyBusiness.AgeScore(45))
	assert.Equal(t, 6, FamilyBusiness.AgeScore(90))
	assert.Equal(t, 6, FamilyDemocratic.AgeScore(75))
	assert.Equal(t, 1, FamilyDemocratic.AgeScore(85))
	assert.Equal(t, 6, FamilyScientist.AgeScore(85))
	assert.Equal(t, 7, FamilyFederation.AgeScore(85))
	assert.Equal(t, 4, FamilyHegemony.AgeScore(65))
	assert.Equal(t, 1, FamilyHegemony.AgeScore(85))
	assert.Equal(t, 0, FamilyAI.AgeScore(90))
	assert.Equal(t, 160, FamilyHeir.AgeScore(40))
}

func TestGoldenScores(t *testing.T) {
	zero := entropy.NewSequence(0)
	parent := leaders.LeaderID(99)

	tests := []struct {
		name   string
		family Family
		leader *leaders.Leader
		heir   bool
		src    entropy.Source
		want   int
	}{
		{"strong combat master pacifist", FamilyStrong, leaderAged(20, leaders.PerkCombatMaster, leaders.PerkPacifist), false, zero, 35 + 32 - 40},
		{"strong with parent", FamilyStrong, leaderAged(20, leaders.PerkWarlord), true, zero, 35 + 20 + 35},
		{"strong old and weak", FamilyStrong, leaderAged(65, leaders.PerkWeakLeader), false, zero, -30},
		{"heir without parent", FamilyHeir, leaderAged(40, leaders.PerkPowerHungry), false, zero, 0},
		{"heir", FamilyHeir, leaderAged(40, leaders.PerkPowerHungry, leaders.PerkConvict), true, zero, 160 + 10 - 10},
		{"business", FamilyBusiness, leaderAged(45, leaders.PerkMerchant, leaders.PerkWealthy, leaders.PerkConvict), false, zero, 4 + 20 + 30 - 20},
		{"democratic with vote", FamilyDemocratic, leaderAged(75, leaders.PerkCharismatic, leaders.PerkArtistic), false, entropy.NewSequence(7), 6 + 20 + 20 + 7},
		{"scientist", FamilyScientist, leaderAged(85, leaders.PerkScientist, leaders.PerkAcademic, leaders.PerkStupid), false, zero, 6 + 30 + 25 - 20},
		{"federation", FamilyFederation, leaderAged(85, leaders.PerkDiplomatic, leaders.PerkPacifist), false, entropy.NewSequence(19), 7 + 20 - 10 + 19},
		{"hegemony", FamilyHegemony, leaderAged(65, leaders.PerkAcademic, leaders.PerkMad), false, zero, 4 + 20 + 5},
		{"ai", FamilyAI, leaderAged(90, leaders.PerkLogical, leaders.PerkScientist, leaders.PerkPeaceful), false, zero, 20 + 20 - 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.heir {
				tt.leader.ParentID = &parent
			}
			assert.Equal(t, tt.want, Score(tt.family, tt.leader, tt.src))
		})
	}
}

func TestWeightTable(t *testing.T) {
	golden := map[Family]map[leaders.Perk]int{
		FamilyStrong: {
			leaders.PerkCombatMaster:    32,
			leaders.PerkCombatTactician: 20,
			leaders.PerkDiscipline:      22,
			leaders.PerkCharismatic:     5,
			leaders.PerkCounterAgent:    10,
			leaders.PerkCorrupted:       20,
			leaders.PerkConvict:         2,
			leaders.PerkMilitaristic:    25,
			leaders.PerkPacifist:        -40,
			leaders.PerkPowerHungry:     50,
			leaders.PerkWealthy:         10,
			leaders.PerkWarlord:         35,
			leaders.PerkWeakLeader:      -30,
			leaders.PerkExplorer:        7,
			leaders.PerkSkillful:        3,
			leaders.PerkIncompetent:     -10,
		},
		FamilyHeir: {
			leaders.PerkCombatMaster:    2,
			leaders.PerkCombatTactician: 2,
			leaders.PerkDiscipline:      2,
			leaders.PerkCharismatic:     2,
			leaders.PerkCounterAgent:    2,
			leaders.PerkCorrupted:       3,
			leaders.PerkMilitaristic:    2,
			leaders.PerkPowerHungry:     10,
			leaders.PerkWealthy:         10,
			leaders.PerkWarlord:         3,
			leaders.PerkWeakLeader:      -10,
			leaders.PerkExplorer:        1,
			leaders.PerkSkillful:        3,
			leaders.PerkIncompetent:     -10,
			leaders.PerkConvict:         -10,
		},
		FamilyBusiness: {
			leaders.PerkCharismatic:  15,
			leaders.PerkDiplomatic:   20,
			leaders.PerkCruel:        -30,
			leaders.PerkGoodLeader:   5,
			leaders.PerkIndustrial:   10,
			leaders.PerkMiner:        10,
			leaders.PerkMerchant:     20,
			leaders.PerkAcademic:     10,
			leaders.PerkAddicted:     5,
			leaders.PerkPowerHungry:  40,
			leaders.PerkWealthy:      30,
			leaders.PerkCorrupted:    10,
			leaders.PerkTrader:       10,
			leaders.PerkRepulsive:    -5,
			leaders.PerkMicroManager: 5,
			leaders.PerkSlowLearner:  -5,
			leaders.PerkStupid:       -10,
			leaders.PerkMad:          -20,
			leaders.PerkLogical:      10,
			leaders.PerkSkillful:     5,
			leaders.PerkIncompetent:  -10,
			leaders.PerkConvict:      -20,
		},
		FamilyDemocratic: {
			leaders.PerkCharismatic:  20,
			leaders.PerkCruel:        -30,
			leaders.PerkDiplomatic:   20,
			leaders.PerkGoodLeader:   20,
			leaders.PerkIndustrial:   5,
			leaders.PerkMiner:        5,
			leaders.PerkMerchant:     5,
			leaders.PerkAcademic:     15,
			leaders.PerkAddicted:     -5,
			leaders.PerkPowerHungry:  40,
			leaders.PerkWealthy:      10,
			leaders.PerkCorrupted:    -10,
			leaders.PerkArtistic:     20,
			leaders.PerkRepulsive:    -10,
			leaders.PerkMicroManager: 5,
			leaders.PerkSlowLearner:  -5,
			leaders.PerkStupid:       -10,
			leaders.PerkPacifist:     10,
			leaders.PerkPeaceful:     10,
			leaders.PerkLogical:      5,
			leaders.PerkMad:          -20,
			leaders.PerkSkillful:     5,
			leaders.PerkIncompetent:  -10,
			leaders.PerkConvict:      -10,
		},
		FamilyScientist: {
			leaders.PerkCruel:          -10,
			leaders.PerkDiplomatic:     1,
			leaders.PerkGoodLeader:     1,
			leaders.PerkIndustrial:     2,
			leaders.PerkMiner:          5,
			leaders.PerkMerchant:       2,
			leaders.PerkAcademic:       25,
			leaders.PerkAddicted:       -5,
			leaders.PerkPowerHungry:    -10,
			leaders.PerkWealthy:        3,
			leaders.PerkCorrupted:      -10,
			leaders.PerkArtistic:       2,
			leaders.PerkRepulsive:      -10,
			leaders.PerkMicroManager:   1,
			leaders.PerkSlowLearner:    -15,
			leaders.PerkStupid:         -20,
			leaders.PerkScientist:      30,
			leaders.PerkArchaeologist:  20,
			leaders.PerkExplorer:       3,
			leaders.PerkScannerExpert:  3,
			leaders.PerkFTLEngineer:    3,
			leaders.PerkMasterEngineer: 3,
			leaders.PerkLogical:        1,
			leaders.PerkMad:            -10,
			leaders.PerkSkillful:       1,
			leaders.PerkIncompetent:    -10,
		},
		FamilyFederation: {
			leaders.PerkCharismatic:  20,
			leaders.PerkDiplomatic:   20,
			leaders.PerkCruel:        -30,
			leaders.PerkGoodLeader:   20,
			leaders.PerkIndustrial:   10,
			leaders.PerkMiner:        5,
			leaders.PerkMerchant:     5,
			leaders.PerkAcademic:     10,
			leaders.PerkAddicted:     5,
			leaders.PerkPowerHungry:  40,
			leaders.PerkWealthy:      15,
			leaders.PerkCorrupted:    5,
			leaders.PerkMilitaristic: 10,
			leaders.PerkRepulsive:    -10,
			leaders.PerkMicroManager: 5,
			leaders.PerkSlowLearner:  -5,
			leaders.PerkStupid:       -5,
			leaders.PerkPacifist:     -10,
			leaders.PerkPeaceful:     -5,
			leaders.PerkAggressive:   5,
			leaders.PerkMad:          -20,
			leaders.PerkWarlord:      10,
			leaders.PerkSkillful:     5,
			leaders.PerkIncompetent:  -10,
			leaders.PerkConvict:      -10,
		},
		FamilyHegemony: {
			leaders.PerkCharismatic:    20,
			leaders.PerkDiplomatic:     10,
			leaders.PerkGoodLeader:     10,
			leaders.PerkScientist:      10,
			leaders.PerkArchaeologist:  10,
			leaders.PerkAcademic:       20,
			leaders.PerkAddicted:       -5,
			leaders.PerkPowerHungry:    40,
			leaders.PerkWealthy:        20,
			leaders.PerkCorrupted:      10,
			leaders.PerkExplorer:       10,
			leaders.PerkFTLEngineer:    10,
			leaders.PerkMasterEngineer: 10,
			leaders.PerkMicroManager:   5,
			leaders.PerkSlowLearner:    -10,
			leaders.PerkStupid:         -10,
			leaders.PerkScannerExpert:  10,
			leaders.PerkWeakLeader:     -20,
			leaders.PerkPeaceful:       5,
			leaders.PerkMad:            5,
			leaders.PerkSkillful:       5,
			leaders.PerkIncompetent:    -10,
			leaders.PerkConvict:        -10,
			leaders.PerkCruel:          -10,
		},
		FamilyAI: {
			leaders.PerkCharismatic:   10,
			leaders.PerkGoodLeader:    10,
			leaders.PerkScientist:     20,
			leaders.PerkArchaeologist: 10,
			leaders.PerkAcademic:      10,
			leaders.PerkAddicted:      -10,
			leaders.PerkPowerHungry:   40,
			leaders.PerkWealthy:       20,
			leaders.PerkCorrupted:     -10,
			leaders.PerkCruel:         -10,
			leaders.PerkMerchant:      10,
			leaders.PerkMilitaristic:  20,
			leaders.PerkPacifist:      -20,
			leaders.PerkPeaceful:      -15,
			leaders.PerkAggressive:    5,
			leaders.PerkDiplomatic:    10,
			leaders.PerkSlowLearner:   -20,
			leaders.PerkStupid:        -20,
			leaders.PerkRepulsive:     -15,
			leaders.PerkWeakLeader:    -20,
			leaders.PerkWarlord:       20,
			leaders.PerkLogical:       20,
			leaders.PerkSkillful:      5,
			leaders.PerkIncompetent:   -10,
			leaders.PerkConvict:       -10,
		},
	}
	for f, weights := range golden {
		t.Run(f.String(), func(t *testing.T) {
			for _, p := range leaders.AllPerks() {
				assert.Equal(t, weights[p], f.Weight(p), "perk %s", p)
			}
		})
	}

	assert.True(t, FamilyDemocratic.HasNoise())
	assert.True(t, FamilyFederation.HasNoise())
	assert.False(t, FamilyHegemony.HasNoise())
	assert.Equal(t, "federation", FamilyFederation.String())
}

func TestNoiseStaysBelowTwenty(t *testing.T) {
	dice := entropy.NewDice(3)
	l := leaderAged(20)
	for i := 0; i < 200; i++ {
		s := Score(FamilyDemocratic, l, dice)
		assert.GreaterOrEqual(t, s, 0)
		assert.Less(t, s, 20)
	}
}
