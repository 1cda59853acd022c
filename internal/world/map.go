package world

import (
	"fmt"

	"github.com/talgya/star-realms/internal/leaders"
)

// NoOwner marks a planet no realm has colonised.
const NoOwner = -1

// Building is a planetary improvement.
type Building uint8

const (
	BuildingBarracks Building = iota
	BuildingSpaceAcademy
	BuildingFarm
	BuildingMine
	BuildingFactory
	BuildingResearchLab
)

var buildingNames = [...]string{
	"Barracks", "Space academy", "Farm", "Mine", "Factory", "Research lab",
}

// String returns the building's display name.
func (b Building) String() string {
	if int(b) >= len(buildingNames) {
		return "Unknown"
	}
	return buildingNames[b]
}

// Planet is a world that may be colonised and governed.
type Planet struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	Coord      Coord      `json:"coord"`
	Owner      int        `json:"owner"` // Realm ID, or NoOwner
	Population int        `json:"population"`
	Richness   float64    `json:"richness"` // 0.0 (barren) to 1.0 (lush)
	Buildings  []Building `json:"buildings"`

	// GovernorID is a weak reference into the owner's leader pool.
	GovernorID *leaders.LeaderID `json:"governor_id,omitempty"`
}

// CountBuildings returns how many buildings of the type stand on the planet.
func (p *Planet) CountBuildings(b Building) int {
	n := 0
	for _, have := range p.Buildings {
		if have == b {
			n++
		}
	}
	return n
}

// AddBuilding constructs a building.
func (p *Planet) AddBuilding(b Building) {
	p.Buildings = append(p.Buildings, b)
}

// TakeColonist removes one population unit. Returns false on an empty planet.
func (p *Planet) TakeColonist() bool {
	if p.Population <= 0 {
		return false
	}
	p.Population--
	return true
}

// SetGovernor installs a governor reference; nil clears the seat.
func (p *Planet) SetGovernor(id *leaders.LeaderID) {
	if id == nil {
		p.GovernorID = nil
		return
	}
	v := *id
	p.GovernorID = &v
}

// HasGovernor reports whether the seat refers to the given leader.
func (p *Planet) HasGovernor(id leaders.LeaderID) bool {
	return p.GovernorID != nil && *p.GovernorID == id
}

// StarMap holds every planet of the galaxy.
type StarMap struct {
	Radius  int       `json:"radius"`
	Planets []*Planet `json:"planets"`
}

// NewStarMap creates an empty star map with the given radius.
func NewStarMap(radius int) *StarMap {
	return &StarMap{Radius: radius}
}

// AddPlanet appends a planet, assigning the next planet ID.
func (m *StarMap) AddPlanet(p *Planet) {
	p.ID = len(m.Planets)
	m.Planets = append(m.Planets, p)
}

// Planet returns the planet with the ID, or nil.
func (m *StarMap) Planet(id int) *Planet {
	if id < 0 || id >= len(m.Planets) {
		return nil
	}
	return m.Planets[id]
}

// PlanetsOwnedBy returns the realm's planets in map order.
func (m *StarMap) PlanetsOwnedBy(owner int) []*Planet {
	var owned []*Planet
	for _, p := range m.Planets {
		if p.Owner == owner {
			owned = append(owned, p)
		}
	}
	return owned
}

// PlanetGovernedBy returns the planet whose governor seat refers to the leader.
func (m *StarMap) PlanetGovernedBy(owner int, id leaders.LeaderID) *Planet {
	for _, p := range m.Planets {
		if p.Owner == owner && p.HasGovernor(id) {
			return p
		}
	}
	return nil
}

// InBounds returns true if the coordinate is within the map radius.
func (m *StarMap) InBounds(c Coord) bool {
	return Distance(Coord{}, c) <= m.Radius
}

// String returns a summary of the map.
func (m *StarMap) String() string {
	return fmt.Sprintf("StarMap(radius=%d, planets=%d)", m.Radius, len(m.Planets))
}
