// Package engine runs the leader subsystem: creating and recruiting leaders,
// granting perks, assigning jobs, resolving succession and handling incidents.
package engine

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/talgya/star-realms/internal/entropy"
	"github.com/talgya/star-realms/internal/news"
	"github.com/talgya/star-realms/internal/realm"
	"github.com/talgya/star-realms/internal/world"
)

// Options tunes the per-turn leader upkeep.
type Options struct {
	TurnsPerYear int // Turns between birthdays
	HeirChance   int // Percent per turn a hereditary ruler gets a child
	CoupChance   int // Percent per turn a power hungry leader kills the ruler
}

// DefaultOptions returns the standard upkeep tuning.
func DefaultOptions() Options {
	return Options{
		TurnsPerYear: 10,
		HeirChance:   2,
		CoupChance:   1,
	}
}

// Court holds the galaxy state the leader operations work on and the single
// random source every probabilistic choice draws from.
type Court struct {
	Map     *world.StarMap
	Realms  []*realm.Realm
	News    *news.Corp
	History *news.History
	Turn    int
	Options Options

	src      entropy.Source
	metrics  *Metrics
	contacts map[[2]int]bool
}

// NewCourt wires a court over the given map and realms.
func NewCourt(m *world.StarMap, realms []*realm.Realm, src entropy.Source) *Court {
	return &Court{
		Map:      m,
		Realms:   realms,
		News:     &news.Corp{},
		History:  &news.History{},
		Options:  DefaultOptions(),
		src:      src,
		contacts: make(map[[2]int]bool),
	}
}

// SetMetrics attaches counters; nil disables them.
func (c *Court) SetMetrics(m *Metrics) {
	c.metrics = m
}

// Realm returns the realm with the ID, or nil.
func (c *Court) Realm(id int) *realm.Realm {
	for _, r := range c.Realms {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func contactKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// Meet records that two realms know each other.
func (c *Court) Meet(a, b int) {
	c.contacts[contactKey(a, b)] = true
}

// HasMet reports whether two realms know each other. A realm knows itself.
func (c *Court) HasMet(a, b int) bool {
	return a == b || c.contacts[contactKey(a, b)]
}

// Contacts lists every pair of realms that have met, lowest ID first.
func (c *Court) Contacts() [][2]int {
	out := make([][2]int, 0, len(c.contacts))
	for k := range c.contacts {
		out = append(out, k)
	}
	slices.SortFunc(out, func(a, b [2]int) int {
		if a[0] != b[0] {
			return cmp.Compare(a[0], b[0])
		}
		return cmp.Compare(a[1], b[1])
	})
	return out
}

// HumanHasMet reports whether any human realm knows the given realm.
func (c *Court) HumanHasMet(id int) bool {
	for _, r := range c.Realms {
		if r.Human && c.HasMet(r.ID, id) {
			return true
		}
	}
	return false
}

// record appends a history event and logs it.
func (c *Court) record(realmID int, category, description string) {
	c.History.Add(c.Turn, realmID, category, description)
	slog.Info("history", "turn", c.Turn, "realm", realmID, "category", category, "event", description)
}

// publish adds a news story.
func (c *Court) publish(headline, body string) {
	c.News.Publish(c.Turn, headline, body)
	slog.Debug("news published", "turn", c.Turn, "headline", headline)
}
