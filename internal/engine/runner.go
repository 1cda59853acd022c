// Turn loop: income, staffing, upkeep and succession for every realm.
package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/talgya/star-realms/internal/leaders"
	"github.com/talgya/star-realms/internal/realm"
)

// creditsPerPopulation is each realm's income per population unit per turn.
const creditsPerPopulation = 1

// PlayTurn collects income, lets every realm staff its posts and then runs
// leader upkeep.
func (c *Court) PlayTurn() {
	for _, r := range c.Realms {
		r.Messages.Clear()
		for _, p := range c.Map.PlanetsOwnedBy(r.ID) {
			r.Credits += p.Population * creditsPerPopulation
		}
		c.StaffPosts(r)
	}
	c.AdvanceTurn()
}

// StaffPosts recruits when the pool has room and sends free leaders to
// empty governor and commander seats.
func (c *Court) StaffPosts(r *realm.Realm) {
	if AvailableLeaders(r) < r.Government.LeaderPoolLimit() {
		c.RecruitLeader(r)
	}
	free := func() *leaders.Leader {
		for _, l := range r.Leaders {
			if l.Job == leaders.JobUnassigned {
				return l
			}
		}
		return nil
	}
	for _, p := range c.Map.PlanetsOwnedBy(r.ID) {
		if p.GovernorID != nil {
			continue
		}
		l := free()
		if l == nil {
			return
		}
		c.AssignLeader(l, r, PlanetTarget(p))
	}
	for _, f := range r.Fleets {
		if f.CommanderID != nil {
			continue
		}
		l := free()
		if l == nil {
			return
		}
		c.AssignLeader(l, r, FleetTarget(f))
	}
}

// Runner drives the court turn by turn.
type Runner struct {
	Court    *Court
	Interval time.Duration // Pause between turns; zero runs flat out
	// Mu is held for writing while a turn is played, so readers such as
	// the HTTP API see whole turns only.
	Mu *sync.RWMutex

	OnTurn func(turn int) // Called after every turn, outside the lock
}

// NewRunner creates a runner with its own lock.
func NewRunner(c *Court) *Runner {
	return &Runner{Court: c, Mu: &sync.RWMutex{}}
}

// Run plays turns until ctx is done or, when turns > 0, that many turns were played.
func (r *Runner) Run(ctx context.Context, turns int) error {
	slog.Info("simulation started", "turn", r.Court.Turn, "turns", turns, "interval", r.Interval)
	for played := 0; turns <= 0 || played < turns; played++ {
		if err := ctx.Err(); err != nil {
			slog.Info("simulation stopped", "turn", r.Court.Turn)
			return err
		}
		r.Mu.Lock()
		r.Court.PlayTurn()
		turn := r.Court.Turn
		r.Mu.Unlock()
		if r.OnTurn != nil {
			r.OnTurn(turn)
		}
		if r.Interval > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(r.Interval):
			}
		}
	}
	slog.Info("simulation finished", "turn", r.Court.Turn)
	return nil
}
