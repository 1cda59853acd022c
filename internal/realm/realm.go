// Package realm holds the per-faction state the leader subsystem works on:
// the ordered leader pool, the ruler seat, fleets, missions and messages.
package realm

import (
	"github.com/talgya/star-realms/internal/leaders"
	"github.com/talgya/star-realms/internal/social"
)

// Realm is one faction (a player or an AI empire).
type Realm struct {
	ID         int                   `json:"id"`
	EmpireName string                `json:"empire_name"`
	Race       social.Race           `json:"race"`
	Government social.GovernmentType `json:"government"`
	Human      bool                  `json:"human"`
	Credits    int                   `json:"credits"`

	// Leaders is the leader pool in recruitment order. Order matters for tie-breaks.
	Leaders []*leaders.Leader `json:"leaders"`
	// RulerID is a weak reference into Leaders.
	RulerID *leaders.LeaderID `json:"ruler_id,omitempty"`

	Fleets   []*Fleet         `json:"fleets"`
	Missions *MissionRegistry `json:"-"`
	Messages *MessageList     `json:"-"`

	nextLeaderID leaders.LeaderID
}

// New creates an empty realm.
func New(id int, empireName string, race social.Race, gov social.GovernmentType) *Realm {
	return &Realm{
		ID:         id,
		EmpireName: empireName,
		Race:       race,
		Government: gov,
		Missions:   NewMissionRegistry(),
		Messages:   &MessageList{},
	}
}

// NextLeaderID returns a fresh identifier for a leader of this realm.
// IDs are realm-scoped and never reused.
func (r *Realm) NextLeaderID() leaders.LeaderID {
	for _, l := range r.Leaders {
		if l.ID >= r.nextLeaderID {
			r.nextLeaderID = l.ID + 1
		}
	}
	id := r.nextLeaderID
	r.nextLeaderID++
	return id
}

// AddLeader appends a leader to the end of the pool.
func (r *Realm) AddLeader(l *leaders.Leader) {
	r.Leaders = append(r.Leaders, l)
}

// Leader looks up a pool member by ID.
func (r *Realm) Leader(id leaders.LeaderID) *leaders.Leader {
	for _, l := range r.Leaders {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// Parent resolves a leader's parent reference within the pool.
func (r *Realm) Parent(l *leaders.Leader) *leaders.Leader {
	if l.ParentID == nil {
		return nil
	}
	return r.Leader(*l.ParentID)
}

// Ruler returns the leader in the ruler seat, or nil.
func (r *Realm) Ruler() *leaders.Leader {
	if r.RulerID == nil {
		return nil
	}
	return r.Leader(*r.RulerID)
}

// SetRuler points the ruler seat at a leader; nil empties it.
func (r *Realm) SetRuler(l *leaders.Leader) {
	if l == nil {
		r.RulerID = nil
		return
	}
	id := l.ID
	r.RulerID = &id
}

// LivingLeaders returns every pool member that is not dead.
func (r *Realm) LivingLeaders() []*leaders.Leader {
	var living []*leaders.Leader
	for _, l := range r.Leaders {
		if l.IsAlive() {
			living = append(living, l)
		}
	}
	return living
}

// AddFleet appends a fleet and returns it.
func (r *Realm) AddFleet(name string) *Fleet {
	f := &Fleet{Name: name}
	r.Fleets = append(r.Fleets, f)
	return f
}

// FleetByName looks up a fleet.
func (r *Realm) FleetByName(name string) *Fleet {
	for _, f := range r.Fleets {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// FleetCommandedBy returns the fleet whose commander seat refers to the leader.
func (r *Realm) FleetCommandedBy(id leaders.LeaderID) *Fleet {
	for _, f := range r.Fleets {
		if f.HasCommander(id) {
			return f
		}
	}
	return nil
}

// Fleet is a named group of ships with an optional commander.
type Fleet struct {
	Name string `json:"name"`
	// CommanderID is a weak reference into the owning realm's pool.
	CommanderID *leaders.LeaderID `json:"commander_id,omitempty"`
}

// SetCommander installs a commander reference; nil clears the seat.
func (f *Fleet) SetCommander(id *leaders.LeaderID) {
	if id == nil {
		f.CommanderID = nil
		return
	}
	v := *id
	f.CommanderID = &v
}

// Commanded reports whether anyone holds the seat.
func (f *Fleet) Commanded() bool {
	return f.CommanderID != nil
}

// HasCommander reports whether the seat refers to the given leader.
func (f *Fleet) HasCommander(id leaders.LeaderID) bool {
	return f.CommanderID != nil && *f.CommanderID == id
}
