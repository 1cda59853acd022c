// Perk catalog: flags, race restrictions and job categories.
package leaders

import "github.com/talgya/star-realms/internal/social"

// Perk is a trait that modifies a leader's fitness for jobs and their narrative.
type Perk uint8

const (
	PerkAcademic Perk = iota
	PerkAddicted
	PerkAggressive
	PerkAgricultural
	PerkArchaeologist
	PerkArtistic
	PerkCharismatic
	PerkChatterbox
	PerkCombatMaster
	PerkCombatTactician
	PerkConvict
	PerkCorrupted
	PerkCounterAgent
	PerkCruel
	PerkDiplomatic
	PerkDiscipline
	PerkExplorer
	PerkFastLearner
	PerkFTLEngineer
	PerkGoodLeader
	PerkHealthy
	PerkIncompetent
	PerkIndustrial
	PerkLogical
	PerkMad
	PerkMasterEngineer
	PerkMerchant
	PerkMicroManager
	PerkMilitaristic
	PerkMiner
	PerkPacifist
	PerkPeaceful
	PerkPowerHungry
	PerkRepulsive
	PerkScannerExpert
	PerkScientist
	PerkSecretAgent
	PerkSkillful
	PerkSlowLearner
	PerkSpyMaster
	PerkStupid
	PerkTrader
	PerkWarlord
	PerkWeakLeader
	PerkWealthy
)

// NumPerks is the total number of catalog perks.
const NumPerks = 45

type perkFlags uint8

const (
	flagBad perkFlags = 1 << iota
	flagRuler
	flagGovernor
	flagCommander
	flagMental
	flagGained // Only awarded by incidents, never drawn
)

type perkInfo struct {
	name  string
	flags perkFlags
	// excluded returns true for races that can never hold the perk.
	excluded func(social.Race) bool
}

func robotic(r social.Race) bool { return r.IsRobotic() }

func roboticOrStone(r social.Race) bool {
	return r.IsRobotic() || r == social.RaceLithorians
}

var catalog = [NumPerks]perkInfo{
	PerkAcademic:        {name: "Academic", flags: flagRuler | flagGovernor},
	PerkAddicted:        {name: "Addicted", flags: flagBad | flagMental, excluded: roboticOrStone},
	PerkAggressive:      {name: "Aggressive", flags: flagBad | flagRuler | flagMental},
	PerkAgricultural:    {name: "Agricultural", flags: flagGovernor},
	PerkArchaeologist:   {name: "Archaeologist", flags: flagCommander},
	PerkArtistic:        {name: "Artistic", flags: flagRuler | flagGovernor},
	PerkCharismatic:     {name: "Charismatic", flags: flagRuler},
	PerkChatterbox:      {name: "Chatterbox", flags: flagBad | flagMental},
	PerkCombatMaster:    {name: "Combat master", flags: flagCommander},
	PerkCombatTactician: {name: "Combat tactician", flags: flagCommander},
	PerkConvict:         {name: "Convict", flags: flagBad | flagGained},
	PerkCorrupted:       {name: "Corrupted", flags: flagBad | flagRuler | flagGovernor},
	PerkCounterAgent:    {name: "Counter agent", flags: flagCommander},
	PerkCruel:           {name: "Cruel", flags: flagBad | flagRuler | flagMental},
	PerkDiplomatic:      {name: "Diplomatic", flags: flagRuler},
	PerkDiscipline:      {name: "Discipline", flags: flagCommander},
	PerkExplorer:        {name: "Explorer", flags: flagCommander},
	PerkFastLearner:     {name: "Fast learner", flags: flagMental},
	PerkFTLEngineer:     {name: "FTL engineer", flags: flagCommander},
	PerkGoodLeader:      {name: "Good leader", flags: flagRuler | flagGovernor},
	PerkHealthy:         {name: "Healthy", excluded: robotic},
	PerkIncompetent:     {name: "Incompetent", flags: flagBad},
	PerkIndustrial:      {name: "Industrial", flags: flagGovernor},
	PerkLogical:         {name: "Logical", flags: flagRuler | flagMental},
	PerkMad:             {name: "Mad", flags: flagBad | flagMental},
	PerkMasterEngineer:  {name: "Master engineer", flags: flagCommander},
	PerkMerchant:        {name: "Merchant", flags: flagGovernor | flagCommander},
	PerkMicroManager:    {name: "Micro manager", flags: flagGovernor},
	PerkMilitaristic:    {name: "Militaristic", flags: flagRuler | flagMental},
	PerkMiner:           {name: "Miner", flags: flagGovernor},
	PerkPacifist:        {name: "Pacifist", flags: flagRuler | flagMental},
	PerkPeaceful:        {name: "Peaceful", flags: flagRuler | flagMental},
	PerkPowerHungry:     {name: "Power hungry", flags: flagBad | flagRuler | flagMental},
	PerkRepulsive:       {name: "Repulsive", flags: flagBad},
	PerkScannerExpert:   {name: "Scanner expert", flags: flagCommander},
	PerkScientist:       {name: "Scientist", flags: flagGovernor},
	PerkSecretAgent:     {name: "Secret agent", flags: flagCommander},
	PerkSkillful:        {name: "Skillful"},
	PerkSlowLearner:     {name: "Slow learner", flags: flagBad | flagMental},
	PerkSpyMaster:       {name: "Spy master", flags: flagRuler},
	PerkStupid:          {name: "Stupid", flags: flagBad | flagMental},
	PerkTrader:          {name: "Trader", flags: flagCommander},
	PerkWarlord:         {name: "Warlord", flags: flagRuler | flagCommander},
	PerkWeakLeader:      {name: "Weak leader", flags: flagBad | flagRuler},
	PerkWealthy:         {name: "Wealthy"},
}

func (p Perk) info() perkInfo {
	if int(p) >= NumPerks {
		return perkInfo{name: "Unknown"}
	}
	return catalog[p]
}

// String returns the display name of the perk.
func (p Perk) String() string { return p.info().name }

// IsBad reports whether the perk is negative.
func (p Perk) IsBad() bool { return p.info().flags&flagBad != 0 }

// IsRulerPerk reports whether the perk can be gained while ruling.
func (p Perk) IsRulerPerk() bool { return p.info().flags&flagRuler != 0 }

// IsGovernorPerk reports whether the perk can be gained while governing.
func (p Perk) IsGovernorPerk() bool { return p.info().flags&flagGovernor != 0 }

// IsCommanderPerk reports whether the perk can be gained while commanding a fleet.
func (p Perk) IsCommanderPerk() bool { return p.info().flags&flagCommander != 0 }

// IsMentalPerk reports whether the perk describes the leader's mind.
func (p Perk) IsMentalPerk() bool { return p.info().flags&flagMental != 0 }

// IsGainedPerk reports whether the perk is only ever awarded by incidents.
func (p Perk) IsGainedPerk() bool { return p.info().flags&flagGained != 0 }

// AllowedForRace reports whether a leader of the race may hold the perk.
func (p Perk) AllowedForRace(r social.Race) bool {
	if int(p) >= NumPerks {
		return false
	}
	ex := catalog[p].excluded
	return ex == nil || !ex(r)
}

// AllPerks returns every catalog perk in catalog order.
func AllPerks() []Perk {
	perks := make([]Perk, NumPerks)
	for i := range perks {
		perks[i] = Perk(i)
	}
	return perks
}

// ParsePerk looks up a perk by display name.
func ParsePerk(name string) (Perk, bool) {
	for i, info := range catalog {
		if info.name == name {
			return Perk(i), true
		}
	}
	return 0, false
}

// PerkCategory selects a pool of perks for proposals.
type PerkCategory uint8

const (
	CategoryGood PerkCategory = iota
	CategoryBad
	CategoryGovernor
	CategoryRuler
	CategoryCommander
	CategoryMental
)

// Matches reports whether a perk belongs to the category.
func (c PerkCategory) Matches(p Perk) bool {
	switch c {
	case CategoryGood:
		return !p.IsBad()
	case CategoryBad:
		return p.IsBad()
	case CategoryGovernor:
		return p.IsGovernorPerk()
	case CategoryRuler:
		return p.IsRulerPerk()
	case CategoryCommander:
		return p.IsCommanderPerk()
	case CategoryMental:
		return p.IsMentalPerk()
	}
	return false
}

// CategoryForJob returns the perk category tied to a job, if any.
func CategoryForJob(j Job) (PerkCategory, bool) {
	switch j {
	case JobRuler:
		return CategoryRuler, true
	case JobGovernor:
		return CategoryGovernor, true
	case JobCommander:
		return CategoryCommander, true
	}
	return 0, false
}

// ProposeNewPerks returns every catalog perk of the category that the leader
// does not hold and may hold. Gained-only perks are never proposed, and
// Wealthy is not offered again once it has been spent.
func ProposeNewPerks(l *Leader, c PerkCategory) []Perk {
	var list []Perk
	for i := range catalog {
		p := Perk(i)
		if !c.Matches(p) || p.IsGainedPerk() {
			continue
		}
		if l.HasPerk(p) || !p.AllowedForRace(l.Race) {
			continue
		}
		if p == PerkWealthy && l.WealthUsed {
			continue
		}
		list = append(list, p)
	}
	return list
}
