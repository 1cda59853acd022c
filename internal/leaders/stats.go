package leaders

// StatType enumerates lifetime counters kept for each leader.
type StatType uint8

const (
	StatRulerReignLength StatType = iota
	StatGovernorLength
	StatCommanderLength
	StatBattles
	StatPirateBattles
	StatAnomalies
	StatTrades
	StatPrivateering
	StatBuildingsBuilt
	StatShipsBuilt
	StatPopulationGrowth
	StatWarDeclarations
	StatDiplomaticTrades
	StatEspionage
	StatJailTime
	StatResearchArtifacts
)

// NumStats is the total number of stat counters.
const NumStats = 16

// Stats is a fixed-size array of lifetime counters, indexed by StatType.
type Stats [NumStats]int

// Get returns a counter value.
func (s *Stats) Get(t StatType) int {
	if int(t) >= NumStats {
		return 0
	}
	return s[t]
}

// Add increases a counter.
func (s *Stats) Add(t StatType, n int) {
	if int(t) >= NumStats {
		return
	}
	s[t] += n
}

// AddOne increments a counter.
func (s *Stats) AddOne(t StatType) {
	s.Add(t, 1)
}
