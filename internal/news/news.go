// Package news records what happened in the galaxy: the Galactic Broadcast
// news corp that human players read, and the history log of notable events.
package news

import (
	"fmt"

	"github.com/google/uuid"
)

// Event categories used in the history log.
const (
	CategoryLeader     = "leader"
	CategorySuccession = "succession"
	CategoryIncident   = "incident"
	CategoryBirth      = "birth"
	CategoryDeath      = "death"
)

// Event is a single entry in the history log.
type Event struct {
	ID          uuid.UUID `json:"id"`
	Turn        int       `json:"turn"`
	Realm       int       `json:"realm"` // Realm the event concerns
	Description string    `json:"description"`
	Category    string    `json:"category"`
}

// maxHistory bounds the in-memory log; older events live in the database.
const maxHistory = 1000

// History is the append-only log of notable events.
type History struct {
	events []Event
}

// Add appends an event, assigning it an ID.
func (h *History) Add(turn, realm int, category, description string) Event {
	e := Event{
		ID:          uuid.New(),
		Turn:        turn,
		Realm:       realm,
		Description: description,
		Category:    category,
	}
	h.events = append(h.events, e)
	if len(h.events) > maxHistory {
		h.events = h.events[len(h.events)-maxHistory:]
	}
	return e
}

// Len returns the number of events held.
func (h *History) Len() int {
	return len(h.events)
}

// Events returns every held event, oldest first.
func (h *History) Events() []Event {
	return h.events
}

// Since returns events recorded at or after the turn.
func (h *History) Since(turn int) []Event {
	var out []Event
	for _, e := range h.events {
		if e.Turn >= turn {
			out = append(out, e)
		}
	}
	return out
}

// Item is one news story.
type Item struct {
	ID       uuid.UUID `json:"id"`
	Turn     int       `json:"turn"`
	Headline string    `json:"headline"`
	Body     string    `json:"body"`
}

// Corp is the news agency. Stories are only published when the human player
// has contact with the realms involved; the caller decides that.
type Corp struct {
	items []Item
}

// Publish adds a story.
func (c *Corp) Publish(turn int, headline, body string) Item {
	it := Item{ID: uuid.New(), Turn: turn, Headline: headline, Body: body}
	c.items = append(c.items, it)
	return it
}

// Items returns every published story.
func (c *Corp) Items() []Item {
	return c.items
}

// Len returns the number of published stories.
func (c *Corp) Len() int {
	return len(c.items)
}

// LeaderKilled writes the story of a leader's death.
func LeaderKilled(leaderName, realmName, reason string) (headline, body string) {
	headline = fmt.Sprintf("%s is dead!", leaderName)
	body = fmt.Sprintf("%s of %s has died. Cause of death was %s.", leaderName, realmName, reason)
	return headline, body
}

// LeaderImprisoned writes the story of a leader sent to jail.
func LeaderImprisoned(leaderName, realmName, captorName string, sentence int) (headline, body string) {
	headline = fmt.Sprintf("%s imprisoned!", leaderName)
	body = fmt.Sprintf("%s of %s was caught by %s and sentenced to prison for %d star years.",
		leaderName, realmName, captorName, sentence)
	return headline, body
}

// NewRuler writes the story of a throne changing hands.
func NewRuler(rulerName, realmName string) (headline, body string) {
	headline = fmt.Sprintf("New ruler for %s", realmName)
	body = fmt.Sprintf("%s is now leading %s.", rulerName, realmName)
	return headline, body
}
