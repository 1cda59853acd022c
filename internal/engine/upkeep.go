// Leader upkeep: aging, experience, prison sentences, deaths, heirs and coups.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/talgya/star-realms/internal/entropy"
	"github.com/talgya/star-realms/internal/leaders"
	"github.com/talgya/star-realms/internal/narrative"
	"github.com/talgya/star-realms/internal/news"
	"github.com/talgya/star-realms/internal/realm"
)

// Leader life cycle constants.
const (
	experiencePerTurn = 10
	adultAge          = 18
	heirMinParentAge  = 20
	heirMaxParentAge  = 60
)

// levelUpExperience is the experience needed to leave the level.
func levelUpExperience(level int) int {
	return level * 100
}

// jobStat maps a working job to the stat that counts its turns.
func jobStat(j leaders.Job) (leaders.StatType, bool) {
	switch j {
	case leaders.JobRuler:
		return leaders.StatRulerReignLength, true
	case leaders.JobGovernor:
		return leaders.StatGovernorLength, true
	case leaders.JobCommander:
		return leaders.StatCommanderLength, true
	}
	return 0, false
}

// AdvanceTurn runs one turn of leader upkeep for every realm.
func (c *Court) AdvanceTurn() {
	c.Turn++
	for _, r := range c.Realms {
		c.UpkeepLeaders(r)
	}
}

// UpkeepLeaders ages, trains, releases and buries the realm's leaders for one
// turn, then handles births, coups and an empty throne.
func (c *Court) UpkeepLeaders(r *realm.Realm) {
	birthday := c.Options.TurnsPerYear > 0 && c.Turn%c.Options.TurnsPerYear == 0

	for _, l := range r.Leaders {
		if !l.IsAlive() {
			continue
		}
		c.upkeepLeader(r, l, birthday)
	}
	c.maybeHeir(r)
	c.maybeCoup(r)
	c.EnsureRuler(r)
	for _, l := range r.Leaders {
		if l.IsAlive() {
			narrative.RefreshTitle(l, r.Government)
		}
	}
}

func (c *Court) upkeepLeader(r *realm.Realm, l *leaders.Leader, birthday bool) {
	switch l.Job {
	case leaders.JobPrison:
		l.TimeInJob--
		if l.TimeInJob <= 0 {
			l.AssignJob(leaders.JobUnassigned)
			c.record(r.ID, news.CategoryLeader, fmt.Sprintf("%s was released from prison.", l.Name))
		}
	case leaders.JobTooYoung:
		l.TimeInJob++
	default:
		l.TimeInJob++
		if stat, ok := jobStat(l.Job); ok {
			l.Stats.AddOne(stat)
			l.Experience += experiencePerTurn
		}
		for l.Experience >= levelUpExperience(l.Level) {
			l.Experience -= levelUpExperience(l.Level)
			l.Level++
			c.AddRandomPerks(l)
			slog.Debug("leader level up", "realm", r.EmpireName, "leader", l.Name, "level", l.Level)
		}
	}

	if !birthday {
		return
	}
	l.Age++
	if l.Job == leaders.JobTooYoung && l.Age >= adultAge {
		l.AssignJob(leaders.JobUnassigned)
		c.record(r.ID, news.CategoryLeader, fmt.Sprintf("%s has come of age.", l.Name))
	}
	if over := l.Age - r.Race.LifeSpan(); over > 0 && entropy.Chance(c.src, over) {
		c.buryLeader(r, l, "old age")
	}
}

// buryLeader marks a leader dead and frees any post it held.
func (c *Court) buryLeader(r *realm.Realm, l *leaders.Leader, cause string) {
	if f := r.FleetCommandedBy(l.ID); f != nil {
		f.SetCommander(nil)
	}
	c.releaseGovernorSeats(r, l)
	l.AssignJob(leaders.JobDead)
	if r.RulerID != nil && *r.RulerID == l.ID {
		r.SetRuler(nil)
	}
	c.metrics.died()
	text := fmt.Sprintf("%s of %s has died of %s.", l.CallName(), r.EmpireName, cause)
	r.Messages.Add(realm.Message{Kind: realm.MessageLeader, Text: text, Leader: &l.ID})
	c.record(r.ID, news.CategoryDeath, text)
	if c.HumanHasMet(r.ID) {
		c.publish(news.LeaderKilled(l.CallName(), r.EmpireName, cause))
	}
}

// maybeHeir gives a hereditary ruler a child now and then.
func (c *Court) maybeHeir(r *realm.Realm) {
	if !r.Government.Hereditary() || c.Options.HeirChance <= 0 {
		return
	}
	ruler := r.Ruler()
	if ruler == nil || !ruler.IsAlive() || ruler.Age < heirMinParentAge || ruler.Age > heirMaxParentAge {
		return
	}
	if !entropy.Chance(c.src, c.Options.HeirChance) {
		return
	}
	child := c.CreateLeader(r, nil, 1)
	child.Age = 0
	child.Homeworld = ruler.Homeworld
	child.ParentID = &ruler.ID
	child.AssignJob(leaders.JobTooYoung)
	narrative.RefreshTitle(child, r.Government)
	r.AddLeader(child)
	text := fmt.Sprintf("%s has a new heir, %s.", ruler.CallName(), child.CallName())
	r.Messages.Add(realm.Message{Kind: realm.MessageLeader, Text: text, Leader: &child.ID})
	c.record(r.ID, news.CategoryBirth, text)
}

// maybeCoup lets a power hungry leader murder the ruler where the government
// tolerates it. The throne is refilled by the usual succession.
func (c *Court) maybeCoup(r *realm.Realm) {
	if !r.Government.PowerHungryKills() || c.Options.CoupChance <= 0 {
		return
	}
	ruler := r.Ruler()
	if ruler == nil || !ruler.IsAlive() {
		return
	}
	for _, l := range r.Leaders {
		if l == ruler || !l.HasPerk(leaders.PerkPowerHungry) || !l.Job.Candidate() {
			continue
		}
		if !entropy.Chance(c.src, c.Options.CoupChance) {
			continue
		}
		c.buryLeader(r, ruler, fmt.Sprintf("assassination by %s", l.Name))
		slog.Info("ruler assassinated", "realm", r.EmpireName, "killer", l.Name)
		return
	}
}
