// Government descriptors: pool limits, recruit costs and ruler title families.
package social

// GovernmentType represents how a realm is governed.
type GovernmentType uint8

const (
	GovDemocracy GovernmentType = iota
	GovUnion
	GovFederation
	GovRepublic
	GovEmpire
	GovKingdom
	GovFeudalism
	GovNest
	GovHorde
	GovMechanicalHorde
	GovClan
	GovUtopia
	GovEnterprise
	GovSyndicate
	GovGuild
	GovHegemony
	GovRegime
	GovCollective
	GovTechnocracy
	GovAI
	GovSpacePirates
	GovHivemind
	GovHierarchy
)

// NumGovernments is the total number of government types.
const NumGovernments = 23

// GovernmentInfo is the static policy descriptor of a government.
type GovernmentInfo struct {
	Name        string
	PoolLimit   int // Leaders a realm may hold before recruitment gets expensive
	RecruitCost int // Base credits per recruit
}

var governmentInfo = [NumGovernments]GovernmentInfo{
	GovDemocracy:       {Name: "Democracy", PoolLimit: 7, RecruitCost: 40},
	GovUnion:           {Name: "Union", PoolLimit: 7, RecruitCost: 40},
	GovFederation:      {Name: "Federation", PoolLimit: 8, RecruitCost: 40},
	GovRepublic:        {Name: "Republic", PoolLimit: 6, RecruitCost: 45},
	GovEmpire:          {Name: "Empire", PoolLimit: 6, RecruitCost: 50},
	GovKingdom:         {Name: "Kingdom", PoolLimit: 5, RecruitCost: 45},
	GovFeudalism:       {Name: "Feudalism", PoolLimit: 5, RecruitCost: 40},
	GovNest:            {Name: "Nest", PoolLimit: 4, RecruitCost: 30},
	GovHorde:           {Name: "Horde", PoolLimit: 4, RecruitCost: 30},
	GovMechanicalHorde: {Name: "Mechanical horde", PoolLimit: 4, RecruitCost: 30},
	GovClan:            {Name: "Clan", PoolLimit: 4, RecruitCost: 30},
	GovUtopia:          {Name: "Utopia", PoolLimit: 8, RecruitCost: 60},
	GovEnterprise:      {Name: "Enterprise", PoolLimit: 7, RecruitCost: 60},
	GovSyndicate:       {Name: "Syndicate", PoolLimit: 6, RecruitCost: 45},
	GovGuild:           {Name: "Guild", PoolLimit: 7, RecruitCost: 55},
	GovHegemony:        {Name: "Hegemony", PoolLimit: 6, RecruitCost: 50},
	GovRegime:          {Name: "Regime", PoolLimit: 5, RecruitCost: 50},
	GovCollective:      {Name: "Collective", PoolLimit: 8, RecruitCost: 40},
	GovTechnocracy:     {Name: "Technocracy", PoolLimit: 7, RecruitCost: 50},
	GovAI:              {Name: "AI", PoolLimit: 8, RecruitCost: 60},
	GovSpacePirates:    {Name: "Space pirates", PoolLimit: 4, RecruitCost: 25},
	GovHivemind:        {Name: "Hivemind", PoolLimit: 3, RecruitCost: 20},
	GovHierarchy:       {Name: "Hierarchy", PoolLimit: 5, RecruitCost: 45},
}

// Info returns the descriptor for the government.
func (g GovernmentType) Info() GovernmentInfo {
	if int(g) >= NumGovernments {
		return GovernmentInfo{Name: "Unknown", PoolLimit: 5, RecruitCost: 50}
	}
	return governmentInfo[g]
}

// String returns the government name.
func (g GovernmentType) String() string { return g.Info().Name }

// LeaderPoolLimit returns how many available leaders the realm may hold at base cost.
func (g GovernmentType) LeaderPoolLimit() int { return g.Info().PoolLimit }

// LeaderRecruitCost returns the base recruit cost in credits.
func (g GovernmentType) LeaderRecruitCost() int { return g.Info().RecruitCost }

// PowerHungryKills reports whether a power hungry leader may murder the ruler
// to take the throne under this government.
func (g GovernmentType) PowerHungryKills() bool {
	switch g {
	case GovClan, GovEmpire, GovHegemony, GovHierarchy, GovHivemind, GovHorde,
		GovKingdom, GovMechanicalHorde, GovNest, GovFeudalism, GovRegime:
		return true
	}
	return false
}

// Hereditary reports whether rulers of this government produce heirs.
func (g GovernmentType) Hereditary() bool {
	switch g {
	case GovEmpire, GovFeudalism, GovKingdom:
		return true
	}
	return false
}

// ParseGovernment looks up a government by its name (case-sensitive).
func ParseGovernment(name string) (GovernmentType, bool) {
	for i, info := range governmentInfo {
		if info.Name == name {
			return GovernmentType(i), true
		}
	}
	return 0, false
}
