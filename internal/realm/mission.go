// Fleet missions planned by AI realms.
package realm

// MissionType is the kind of task an AI realm gave a fleet.
type MissionType uint8

const (
	MissionSpy       MissionType = iota // Planned spying trip
	MissionEspionage                    // Active espionage under a commander
)

var missionNames = [...]string{"Spy", "Espionage"}

// String returns the mission type name.
func (t MissionType) String() string {
	if int(t) >= len(missionNames) {
		return "Unknown"
	}
	return missionNames[t]
}

// MissionPhase tracks progress of a mission.
type MissionPhase uint8

const (
	PhasePlanning MissionPhase = iota
	PhaseLoading
	PhaseTrekking
	PhaseExecuting
)

var phaseNames = [...]string{"Planning", "Loading", "Trekking", "Executing"}

// String returns the phase name.
func (p MissionPhase) String() string {
	if int(p) >= len(phaseNames) {
		return "Unknown"
	}
	return phaseNames[p]
}

// Mission is a task bound to a fleet by name.
type Mission struct {
	Type   MissionType  `json:"type"`
	Phase  MissionPhase `json:"phase"`
	Fleet  string       `json:"fleet"`
	Target string       `json:"target"` // Planet or realm the mission aims at
}

// MissionRegistry holds a realm's missions.
type MissionRegistry struct {
	missions []*Mission
}

// NewMissionRegistry creates an empty registry.
func NewMissionRegistry() *MissionRegistry {
	return &MissionRegistry{}
}

// Add registers a mission.
func (m *MissionRegistry) Add(mission *Mission) {
	m.missions = append(m.missions, mission)
}

// ForFleet returns the first mission of the type bound to the fleet, or nil.
func (m *MissionRegistry) ForFleet(t MissionType, fleet string) *Mission {
	for _, mission := range m.missions {
		if mission.Type == t && mission.Fleet == fleet {
			return mission
		}
	}
	return nil
}

// Remove drops a mission. Returns false if it was not registered.
func (m *MissionRegistry) Remove(mission *Mission) bool {
	for i, have := range m.missions {
		if have == mission {
			m.missions = append(m.missions[:i], m.missions[i+1:]...)
			return true
		}
	}
	return false
}

// All returns every registered mission.
func (m *MissionRegistry) All() []*Mission {
	return m.missions
}
