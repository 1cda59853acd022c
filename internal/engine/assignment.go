// Job assignment: governors, commanders and rulers, with displacement of the
// previous holder.
package engine

import (
	"log/slog"

	"github.com/talgya/star-realms/internal/leaders"
	"github.com/talgya/star-realms/internal/narrative"
	"github.com/talgya/star-realms/internal/realm"
	"github.com/talgya/star-realms/internal/world"
)

// Target is the post a leader is sent to: exactly one of a planet or a fleet.
// Build it with PlanetTarget or FleetTarget.
type Target struct {
	planet *world.Planet
	fleet  *realm.Fleet
}

// PlanetTarget targets the governor seat of a planet.
func PlanetTarget(p *world.Planet) Target {
	return Target{planet: p}
}

// FleetTarget targets the commander seat of a fleet.
func FleetTarget(f *realm.Fleet) Target {
	return Target{fleet: f}
}

// Planet returns the targeted planet, or nil for a fleet target.
func (t Target) Planet() *world.Planet { return t.planet }

// Fleet returns the targeted fleet, or nil for a planet target.
func (t Target) Fleet() *realm.Fleet { return t.fleet }

func (t Target) valid() bool {
	return (t.planet == nil) != (t.fleet == nil)
}

// commandedFleet returns the fleet the leader commands, if any.
func commandedFleet(r *realm.Realm, l *leaders.Leader) *realm.Fleet {
	return r.FleetCommandedBy(l.ID)
}

// releaseGovernorSeats clears every planet seat held by the leader.
func (c *Court) releaseGovernorSeats(r *realm.Realm, l *leaders.Leader) {
	for _, p := range c.Map.PlanetsOwnedBy(r.ID) {
		if p.HasGovernor(l.ID) {
			p.SetGovernor(nil)
		}
	}
}

// displace sends the living leader in a seat back to the pool.
func (c *Court) displace(r *realm.Realm, id *leaders.LeaderID) {
	if id == nil {
		return
	}
	if sitting := r.Leader(*id); sitting != nil && sitting.IsAlive() {
		sitting.AssignJob(leaders.JobUnassigned)
		narrative.RefreshTitle(sitting, r.Government)
	}
}

// AssignLeader moves an unassigned, commanding or governing leader to a new post.
// Planet targets must belong to the realm.
// A commander whose fleet is on an espionage mission cannot be recalled.
// Returns true if the leader was installed.
func (c *Court) AssignLeader(l *leaders.Leader, r *realm.Realm, target Target) bool {
	if l == nil || !target.valid() {
		return false
	}
	if p := target.planet; p != nil && p.Owner != r.ID {
		return false
	}
	switch l.Job {
	case leaders.JobUnassigned, leaders.JobCommander, leaders.JobGovernor:
	default:
		return false
	}

	if l.Job == leaders.JobCommander {
		if f := commandedFleet(r, l); f != nil {
			if r.Missions.ForFleet(realm.MissionEspionage, f.Name) != nil {
				slog.Debug("commander on espionage mission", "leader", l.Name, "fleet", f.Name)
				return false
			}
			f.SetCommander(nil)
		}
	}
	if l.Job == leaders.JobGovernor {
		c.releaseGovernorSeats(r, l)
	}

	if p := target.planet; p != nil {
		if !p.HasGovernor(l.ID) {
			c.displace(r, p.GovernorID)
		}
		p.SetGovernor(&l.ID)
		l.AssignJob(leaders.JobGovernor)
		narrative.RefreshTitle(l, r.Government)
		slog.Info("governor assigned", "realm", r.EmpireName, "leader", l.Name, "planet", p.Name)
		return true
	}

	f := target.fleet
	if !f.HasCommander(l.ID) {
		c.displace(r, f.CommanderID)
	}
	f.SetCommander(&l.ID)
	l.AssignJob(leaders.JobCommander)
	narrative.RefreshTitle(l, r.Government)
	if !r.Human {
		if m := r.Missions.ForFleet(realm.MissionSpy, f.Name); m != nil {
			m.Type = realm.MissionEspionage
			m.Phase = realm.PhaseTrekking
		}
	}
	slog.Info("commander assigned", "realm", r.EmpireName, "leader", l.Name, "fleet", f.Name)
	return true
}

// AssignLeaderAsRuler puts the leader on the throne, releasing any governor
// or commander post without checking missions. A living previous ruler
// returns to the pool. Returns false for leaders who cannot rule.
func (c *Court) AssignLeaderAsRuler(l *leaders.Leader, r *realm.Realm) bool {
	if l == nil {
		return false
	}
	switch l.Job {
	case leaders.JobUnassigned, leaders.JobCommander, leaders.JobGovernor, leaders.JobRuler:
	default:
		return false
	}

	if l.Job == leaders.JobCommander {
		if f := commandedFleet(r, l); f != nil {
			f.SetCommander(nil)
		}
	}
	if l.Job == leaders.JobGovernor {
		c.releaseGovernorSeats(r, l)
	}

	if prev := r.Ruler(); prev != nil && prev != l && prev.Job == leaders.JobRuler {
		prev.AssignJob(leaders.JobUnassigned)
		narrative.RefreshTitle(prev, r.Government)
	}
	r.SetRuler(l)
	l.AssignJob(leaders.JobRuler)
	narrative.RefreshTitle(l, r.Government)
	c.metrics.succession(r.Government.String())
	slog.Info("ruler assigned", "realm", r.EmpireName, "ruler", l.CallName())
	return true
}
