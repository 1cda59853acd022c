// Candidate scoring: per-family perk weights, age curves and noise.
package engine

import (
	"github.com/talgya/star-realms/internal/entropy"
	"github.com/talgya/star-realms/internal/leaders"
)

// Family is a way of judging a leader's fitness to rule.
type Family uint8

const (
	FamilyStrong     Family = iota // Might makes right
	FamilyHeir                     // Blood line
	FamilyBusiness                 // Guilds and enterprises
	FamilyDemocratic               // Elected by the people
	FamilyScientist                // Research lead
	FamilyFederation               // Elected by member worlds
	FamilyHegemony                 // Chosen by the ruling caste
	FamilyAI                       // Chosen by the machine
)

// ageStep adds delta when a leader is older than over.
type ageStep struct {
	over  int
	delta int
}

type scoring struct {
	name string
	// age returns the age term; nil means steps only.
	age   func(age int) int
	steps []ageStep
	// parentBonus is added when the leader has a parent.
	parentBonus int
	// heirOnly scores leaders without a parent as zero.
	heirOnly bool
	// noise is the exclusive upper bound of a uniform voting bonus; 0 disables it.
	noise   int
	weights map[leaders.Perk]int
}

// strongAge peaks in the early twenties and falls off with age.
func strongAge(age int) int {
	switch {
	case age >= 18 && age <= 24:
		return 15 + age
	case age >= 25 && age <= 30:
		return 70 - age
	case age >= 31 && age <= 39:
		return 68 - age
	case age >= 40 && age <= 49:
		return 65 - age
	case age >= 50 && age <= 59:
		return 60 - age
	}
	return 0
}

func heirAge(age int) int { return age * 4 }

var scorings = map[Family]scoring{
	FamilyStrong: {
		name:        "strong",
		age:         strongAge,
		parentBonus: 20,
		weights: map[leaders.Perk]int{
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
	},
	FamilyHeir: {
		name:     "heir",
		age:      heirAge,
		heirOnly: true,
		weights: map[leaders.Perk]int{
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
	},
	FamilyBusiness: {
		name:  "business",
		steps: []ageStep{{30, 2}, {40, 2}, {50, 2}},
		weights: map[leaders.Perk]int{
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
	},
	FamilyDemocratic: {
		name:  "democratic",
		steps: []ageStep{{30, 2}, {40, 2}, {50, 2}, {60, 2}, {70, -2}, {80, -5}},
		noise: 20,
		weights: map[leaders.Perk]int{
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
	},
	FamilyScientist: {
		name:  "scientist",
		steps: []ageStep{{30, 1}, {40, 1}, {50, 1}, {60, 1}, {70, 1}, {80, 1}},
		weights: map[leaders.Perk]int{
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
	},
	FamilyFederation: {
		name:  "federation",
		steps: []ageStep{{30, 1}, {40, 2}, {50, 2}, {60, 2}, {70, 2}, {80, -2}},
		noise: 20,
		weights: map[leaders.Perk]int{
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
	},
	FamilyHegemony: {
		name:  "hegemony",
		steps: []ageStep{{30, 2}, {40, 2}, {50, 1}, {60, -1}, {70, -1}, {80, -2}},
		weights: map[leaders.Perk]int{
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
	},
	FamilyAI: {
		name: "ai",
		weights: map[leaders.Perk]int{
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
	},
}

// String returns the family name.
func (f Family) String() string {
	if s, ok := scorings[f]; ok {
		return s.name
	}
	return "unknown"
}

// Weight returns the family's weight for a perk; zero when the family ignores it.
func (f Family) Weight(p leaders.Perk) int {
	return scorings[f].weights[p]
}

// HasNoise reports whether the family adds a random voting bonus.
func (f Family) HasNoise() bool {
	return scorings[f].noise > 0
}

// AgeScore returns the family's age term.
func (f Family) AgeScore(age int) int {
	s := scorings[f]
	score := 0
	if s.age != nil {
		score = s.age(age)
	}
	for _, step := range s.steps {
		if age > step.over {
			score += step.delta
		}
	}
	return score
}

// Score rates a leader under the family. Families with noise draw from src.
func Score(f Family, l *leaders.Leader, src entropy.Source) int {
	s := scorings[f]
	if s.heirOnly && !l.HasParent() {
		return 0
	}
	score := f.AgeScore(l.Age)
	if l.HasParent() {
		score += s.parentBonus
	}
	for _, p := range l.Perks {
		score += s.weights[p]
	}
	if s.noise > 0 {
		score += src.Intn(s.noise)
	}
	return score
}
