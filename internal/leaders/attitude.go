// Attitude derivation from a leader's perks.
package leaders

import "sort"

// Attitude is the dominant political leaning of a leader or realm.
type Attitude uint8

const (
	AttitudeAggressive Attitude = iota
	AttitudeBackstabbing
	AttitudeDiplomatic
	AttitudeExpansionist
	AttitudeLogical
	AttitudeMerchantical
	AttitudeMilitaristic
	AttitudePeaceful
	AttitudeScientific
)

// NumAttitudes is the number of attitude axes.
const NumAttitudes = 9

var attitudeNames = [NumAttitudes]string{
	"Aggressive", "Backstabbing", "Diplomatic", "Expansionist", "Logical",
	"Merchantical", "Militaristic", "Peaceful", "Scientific",
}

var attitudeAdjectives = [NumAttitudes]string{
	"aggressive", "untrustworthy", "diplomatic", "adventurous", "very logical",
	"merchantical", "militaristic", "calm and peaceful", "scientific",
}

// String returns the axis name.
func (a Attitude) String() string {
	if int(a) >= NumAttitudes {
		return "Unknown"
	}
	return attitudeNames[a]
}

// Adjective returns the word used to describe a leader with this attitude.
func (a Attitude) Adjective() string {
	if int(a) >= NumAttitudes {
		return ""
	}
	return attitudeAdjectives[a]
}

// tieOrder decides between axes with equal scores.
var tieOrder = [NumAttitudes]Attitude{
	AttitudeScientific, AttitudePeaceful, AttitudeMerchantical,
	AttitudeExpansionist, AttitudeBackstabbing, AttitudeAggressive,
	AttitudeMilitaristic, AttitudeLogical, AttitudeDiplomatic,
}

type nudge struct {
	axis  Attitude
	delta int
}

var attitudeTable = map[Perk][]nudge{
	PerkAcademic:        {{AttitudeScientific, 5}},
	PerkScientist:       {{AttitudeScientific, 5}},
	PerkArchaeologist:   {{AttitudeScientific, 5}},
	PerkArtistic:        {{AttitudePeaceful, 1}},
	PerkCharismatic:     {{AttitudePeaceful, 1}, {AttitudeDiplomatic, 5}},
	PerkChatterbox:      {{AttitudeDiplomatic, 1}},
	PerkCombatMaster:    {{AttitudeAggressive, 3}, {AttitudeMilitaristic, 1}, {AttitudePeaceful, -1}},
	PerkCombatTactician: {{AttitudeAggressive, 3}, {AttitudeMilitaristic, 1}, {AttitudePeaceful, -1}},
	PerkCorrupted:       {{AttitudeBackstabbing, 1}},
	PerkConvict:         {{AttitudeBackstabbing, 1}},
	PerkCruel:           {{AttitudeBackstabbing, 5}, {AttitudeAggressive, 1}},
	PerkCounterAgent:    {{AttitudeMilitaristic, 1}},
	PerkDiscipline:      {{AttitudeMilitaristic, 1}},
	PerkExplorer:        {{AttitudeExpansionist, 5}, {AttitudeScientific, 1}},
	PerkFTLEngineer:     {{AttitudeExpansionist, 3}, {AttitudeScientific, 1}},
	PerkScannerExpert:   {{AttitudeExpansionist, 3}, {AttitudeScientific, 1}},
	PerkMasterEngineer:  {{AttitudeExpansionist, 1}, {AttitudeScientific, 2}},
	PerkGoodLeader:      {{AttitudeLogical, 3}, {AttitudePeaceful, 1}, {AttitudeDiplomatic, 1}},
	PerkIndustrial:      {{AttitudeLogical, 1}, {AttitudeMerchantical, 1}},
	PerkAgricultural:    {{AttitudeMerchantical, 1}},
	PerkMiner:           {{AttitudeMerchantical, 1}},
	PerkMerchant:        {{AttitudeMerchantical, 5}},
	PerkTrader:          {{AttitudeMerchantical, 5}},
	PerkMilitaristic:    {{AttitudeMilitaristic, 5}, {AttitudePeaceful, -5}},
	PerkPacifist:        {{AttitudePeaceful, 5}, {AttitudeDiplomatic, 1}, {AttitudeMilitaristic, -5}, {AttitudeAggressive, -5}},
	PerkPowerHungry:     {{AttitudeAggressive, 3}, {AttitudeBackstabbing, 1}},
	PerkRepulsive:       {{AttitudeBackstabbing, 5}, {AttitudeDiplomatic, -5}},
	PerkAddicted:        {{AttitudeBackstabbing, 3}},
	PerkWeakLeader:      {{AttitudeAggressive, -5}, {AttitudeMilitaristic, -5}, {AttitudePeaceful, 5}},
	PerkSecretAgent:     {{AttitudeLogical, 3}},
	PerkSpyMaster:       {{AttitudeLogical, 3}},
	PerkSlowLearner:     {{AttitudeScientific, -1}},
	PerkStupid:          {{AttitudeScientific, -1}},
	PerkWarlord:         {{AttitudeBackstabbing, 1}, {AttitudeAggressive, 5}},
	PerkWealthy:         {{AttitudeMerchantical, 1}, {AttitudeDiplomatic, 1}},
	PerkPeaceful:        {{AttitudePeaceful, 5}, {AttitudeAggressive, -5}, {AttitudeMilitaristic, -5}},
	PerkLogical:         {{AttitudeLogical, 5}},
	PerkAggressive:      {{AttitudeAggressive, 5}},
	PerkMad:             {{AttitudeBackstabbing, 5}, {AttitudePeaceful, -5}, {AttitudeDiplomatic, -5}},
	PerkSkillful:        {{AttitudeLogical, 1}},
	PerkIncompetent:     {{AttitudeBackstabbing, 1}, {AttitudeLogical, -1}},
}

// AttitudeScores sums the attitude nudges of a perk set, indexed by Attitude.
func AttitudeScores(perks []Perk) [NumAttitudes]int {
	var scores [NumAttitudes]int
	for _, p := range perks {
		for _, n := range attitudeTable[p] {
			scores[n.axis] += n.delta
		}
	}
	return scores
}

// DeriveAttitude returns the axis with the highest positive score.
// Returns false when no axis scores above zero.
func DeriveAttitude(perks []Perk) (Attitude, bool) {
	scores := AttitudeScores(perks)
	order := tieOrder
	sort.SliceStable(order[:], func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})
	top := order[0]
	if scores[top] <= 0 {
		return 0, false
	}
	return top, true
}

// DeriveAttitudeOr is DeriveAttitude with a fallback for perk sets without a leaning.
func DeriveAttitudeOr(perks []Perk, fallback Attitude) Attitude {
	if a, ok := DeriveAttitude(perks); ok {
		return a
	}
	return fallback
}
