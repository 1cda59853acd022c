// Capture incidents: release, execution and imprisonment of caught spies.
package engine

import (
	"log/slog"

	"github.com/talgya/star-realms/internal/leaders"
	"github.com/talgya/star-realms/internal/narrative"
	"github.com/talgya/star-realms/internal/news"
	"github.com/talgya/star-realms/internal/realm"
	"github.com/talgya/star-realms/internal/world"
)

// Capture describes a commander caught spying on a foreign planet.
type Capture struct {
	Spy    *realm.Realm  // Realm whose commander was caught
	Planet *world.Planet // Planet being spied on; its owner is the captor
	Fleet  *realm.Fleet  // Fleet the captured leader commands
}

// commander resolves the captured leader.
func (cp Capture) commander() *leaders.Leader {
	if cp.Spy == nil || cp.Fleet == nil || cp.Fleet.CommanderID == nil {
		return nil
	}
	return cp.Spy.Leader(*cp.Fleet.CommanderID)
}

// notify posts the same text to the spying realm and the planet owner.
func (c *Court) notify(cp Capture, l *leaders.Leader, text string) {
	cp.Spy.Messages.Add(realm.Message{Kind: realm.MessageLeader, Text: text, Leader: &l.ID})
	if owner := c.Realm(cp.Planet.Owner); owner != nil && owner != cp.Spy {
		owner.Messages.Add(realm.Message{Kind: realm.MessageLeader, Text: text})
	}
	c.record(cp.Spy.ID, news.CategoryIncident, text)
}

// abortMissions drops the spying missions of a fleet that lost its commander.
func abortMissions(r *realm.Realm, fleet string) {
	for _, t := range []realm.MissionType{realm.MissionSpy, realm.MissionEspionage} {
		if m := r.Missions.ForFleet(t, fleet); m != nil {
			r.Missions.Remove(m)
		}
	}
}

// escape spends the leader's wealth to bribe a way out.
// Returns false if the leader is not wealthy.
func (c *Court) escape(cp Capture, l *leaders.Leader, escapedMsg string) bool {
	if !l.UseWealth() {
		return false
	}
	c.notify(cp, l, escapedMsg)
	c.metrics.incident("escaped")
	slog.Info("captured leader escaped", "realm", cp.Spy.EmpireName, "leader", l.Name)
	return true
}

// HandleLeaderReleased lets the captor send the leader home.
func (c *Court) HandleLeaderReleased(cp Capture, message string) bool {
	l := cp.commander()
	if l == nil || cp.Planet == nil {
		return false
	}
	c.notify(cp, l, message)
	c.metrics.incident("released")
	return true
}

// HandleLeaderKilled executes the captured leader unless wealth buys an escape.
func (c *Court) HandleLeaderKilled(cp Capture, escapedMsg, killedMsg string) bool {
	l := cp.commander()
	if l == nil || cp.Planet == nil {
		return false
	}
	if c.escape(cp, l, escapedMsg) {
		return true
	}
	c.notify(cp, l, killedMsg)
	l.AssignJob(leaders.JobDead)

	captor := c.Realm(cp.Planet.Owner)
	captorName := "unknown captors"
	if captor != nil {
		captorName = captor.EmpireName
	}
	if c.HumanHasMet(cp.Spy.ID) || (captor != nil && c.HumanHasMet(captor.ID)) {
		c.publish(news.LeaderKilled(l.CallName(), cp.Spy.EmpireName, "execution by "+captorName))
	}
	cp.Fleet.SetCommander(nil)
	abortMissions(cp.Spy, cp.Fleet.Name)
	c.metrics.incident("killed")
	c.metrics.died()
	slog.Info("captured leader executed", "realm", cp.Spy.EmpireName, "leader", l.Name, "captor", captorName)
	return true
}

// HandleLeaderPrison jails the captured leader for sentence turns unless
// wealth buys an escape.
func (c *Court) HandleLeaderPrison(cp Capture, escapedMsg, prisonMsg string, sentence int) bool {
	l := cp.commander()
	if l == nil || cp.Planet == nil {
		return false
	}
	if c.escape(cp, l, escapedMsg) {
		return true
	}
	c.notify(cp, l, prisonMsg)
	if c.HumanHasMet(cp.Spy.ID) {
		captorName := "unknown captors"
		if captor := c.Realm(cp.Planet.Owner); captor != nil {
			captorName = captor.EmpireName
		}
		c.publish(news.LeaderImprisoned(l.CallName(), cp.Spy.EmpireName, captorName, sentence))
	}
	l.AssignJob(leaders.JobPrison)
	l.TimeInJob = sentence
	l.AddPerk(leaders.PerkConvict)
	l.Stats.AddOne(leaders.StatJailTime)
	cp.Fleet.SetCommander(nil)
	abortMissions(cp.Spy, cp.Fleet.Name)
	narrative.RefreshTitle(l, cp.Spy.Government)
	c.metrics.incident("imprisoned")
	slog.Info("captured leader imprisoned", "realm", cp.Spy.EmpireName, "leader", l.Name, "sentence", sentence)
	return true
}
