// Package social provides the race and government descriptors that shape leaders,
// succession rules and recruitment policy.
package social

// Race identifies a playable space race.
type Race uint8

const (
	RaceHumans   Race = iota
	RaceMechions // Genderless machines, built rather than born
	RaceSpork    // Short-lived
	RaceGreyans
	RaceCentaurs
	RaceMothoids // Short-lived
	RaceTeuthidaes
	RaceScaurians
	RaceHomarians
	RaceChiraloids // Short-lived
	RaceReborgians // Genderless cyborgs
	RaceLithorians
	RaceAlteirians
	RaceSmaugirians
	RaceSynthdroids // Always female androids
)

// NumRaces is the total number of races.
const NumRaces = 15

// SocialSystem describes gender balance of a race's leadership.
type SocialSystem uint8

const (
	SocialEqual SocialSystem = iota
	SocialPatriarchy
	SocialMatriarchy
)

// RaceInfo is the static descriptor of a race.
type RaceInfo struct {
	Name         string
	LifeSpan     int // Years
	MinLeaderPop int // Minimum planet population to train leaders
	Robotic      bool
	Mechanical   bool // Leaders are assembled, age starts near zero
	Genderless   bool
	AlwaysFemale bool
	Social       SocialSystem
}

var raceInfo = [NumRaces]RaceInfo{
	RaceHumans:      {Name: "Humans", LifeSpan: 100, MinLeaderPop: 3, Social: SocialEqual},
	RaceMechions:    {Name: "Mechions", LifeSpan: 250, MinLeaderPop: 2, Robotic: true, Mechanical: true, Genderless: true},
	RaceSpork:       {Name: "Spork", LifeSpan: 60, MinLeaderPop: 3, Social: SocialPatriarchy},
	RaceGreyans:     {Name: "Greyans", LifeSpan: 120, MinLeaderPop: 3, Social: SocialEqual},
	RaceCentaurs:    {Name: "Centaurs", LifeSpan: 200, MinLeaderPop: 4, Social: SocialMatriarchy},
	RaceMothoids:    {Name: "Mothoids", LifeSpan: 50, MinLeaderPop: 2, Social: SocialMatriarchy},
	RaceTeuthidaes:  {Name: "Teuthidaes", LifeSpan: 90, MinLeaderPop: 3, Social: SocialEqual},
	RaceScaurians:   {Name: "Scaurians", LifeSpan: 120, MinLeaderPop: 3, Social: SocialPatriarchy},
	RaceHomarians:   {Name: "Homarians", LifeSpan: 110, MinLeaderPop: 3, Social: SocialMatriarchy},
	RaceChiraloids:  {Name: "Chiraloids", LifeSpan: 70, MinLeaderPop: 3, Social: SocialEqual},
	RaceReborgians:  {Name: "Reborgians", LifeSpan: 200, MinLeaderPop: 3, Robotic: true, Genderless: true},
	RaceLithorians:  {Name: "Lithorians", LifeSpan: 300, MinLeaderPop: 4, Social: SocialEqual},
	RaceAlteirians:  {Name: "Alteirians", LifeSpan: 150, MinLeaderPop: 3, Social: SocialEqual},
	RaceSmaugirians: {Name: "Smaugirians", LifeSpan: 80, MinLeaderPop: 3, Social: SocialPatriarchy},
	RaceSynthdroids: {Name: "Synthdroids", LifeSpan: 300, MinLeaderPop: 2, Robotic: true, AlwaysFemale: true},
}

// Info returns the descriptor for the race.
func (r Race) Info() RaceInfo {
	if int(r) >= NumRaces {
		return RaceInfo{Name: "Unknown", LifeSpan: 100, MinLeaderPop: 3}
	}
	return raceInfo[r]
}

// String returns the race name.
func (r Race) String() string { return r.Info().Name }

// LifeSpan returns the natural life span in years.
func (r Race) LifeSpan() int { return r.Info().LifeSpan }

// MinimumPopulationForLeader returns the planet population needed to train a leader.
func (r Race) MinimumPopulationForLeader() int { return r.Info().MinLeaderPop }

// IsRobotic reports whether the race is robotic.
func (r Race) IsRobotic() bool { return r.Info().Robotic }

// IsMechanical reports whether leaders of this race are assembled rather than born.
func (r Race) IsMechanical() bool { return r.Info().Mechanical }

// SocialSystem returns the race's social system.
func (r Race) SocialSystem() SocialSystem { return r.Info().Social }

// ParseRace looks up a race by its name (case-sensitive).
func ParseRace(name string) (Race, bool) {
	for i, info := range raceInfo {
		if info.Name == name {
			return Race(i), true
		}
	}
	return 0, false
}
