// Perk draws on level up.
package engine

import (
	"log/slog"

	"github.com/talgya/star-realms/internal/entropy"
	"github.com/talgya/star-realms/internal/leaders"
)

// Perk draw odds in percent.
const (
	jobPerkChance = 60
	badPerkChance = 10
)

// drawPerk grants one uniformly chosen perk of the category.
// Returns false when the leader has nothing left to gain there.
func (c *Court) drawPerk(l *leaders.Leader, cat leaders.PerkCategory) bool {
	pool := leaders.ProposeNewPerks(l, cat)
	i := entropy.Pick(c.src, len(pool))
	if i < 0 {
		return false
	}
	p := pool[i]
	l.AddPerk(p)
	slog.Debug("perk gained", "leader", l.Name, "perk", p.String())
	return true
}

// AddRandomPerks grants the perks a leader earns on levelling up: usually one
// tied to the current job, otherwise a generic good one, and rarely a bad one.
func (c *Court) AddRandomPerks(l *leaders.Leader) int {
	gained := 0
	jobPerk := false
	good := leaders.ProposeNewPerks(l, leaders.CategoryGood)
	if entropy.Chance(c.src, jobPerkChance) || len(good) == 0 {
		if cat, ok := leaders.CategoryForJob(l.Job); ok {
			jobPerk = c.drawPerk(l, cat)
		}
	}
	if jobPerk {
		gained++
	} else if c.drawPerk(l, leaders.CategoryGood) {
		gained++
	}
	if entropy.Chance(c.src, badPerkChance) && c.drawPerk(l, leaders.CategoryBad) {
		gained++
	}
	c.metrics.perks(gained)
	return gained
}
