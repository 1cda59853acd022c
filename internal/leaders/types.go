// Package leaders provides the leader data model: identity, jobs, perks,
// lifetime statistics and the political attitude derived from perks.
package leaders

import (
	"slices"

	"github.com/talgya/star-realms/internal/social"
)

// LeaderID is a unique identifier for a leader within a realm's pool.
type LeaderID uint64

// Gender of a leader. Genderless races use GenderNone.
type Gender uint8

const (
	GenderNone Gender = iota
	GenderMale
	GenderFemale
)

// String returns a lowercase gender name.
func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	default:
		return "none"
	}
}

// Job is the single post a leader holds.
type Job uint8

const (
	JobUnassigned Job = iota
	JobRuler
	JobGovernor
	JobCommander
	JobTooYoung // Heir not yet of age
	JobPrison   // TimeInJob holds the remaining sentence
	JobDead     // Terminal
)

// String returns the display name of the job.
func (j Job) String() string {
	switch j {
	case JobRuler:
		return "Ruler"
	case JobGovernor:
		return "Governor"
	case JobCommander:
		return "Commander"
	case JobTooYoung:
		return "Too young"
	case JobPrison:
		return "Prison"
	case JobDead:
		return "Dead"
	default:
		return "Unassigned"
	}
}

// Candidate reports whether a leader in this job may be considered for succession.
func (j Job) Candidate() bool {
	return j != JobDead && j != JobTooYoung && j != JobPrison
}

// MilitaryRank of a leader. Civilians are promoted to Ensign on their first command.
type MilitaryRank uint8

const (
	RankCivilian MilitaryRank = iota
	RankEnsign
	RankLieutenant
	RankCommander
	RankCaptain
	RankCommodore
	RankRearAdmiral
	RankViceAdmiral
	RankAdmiral
	RankFleetAdmiral
)

var rankNames = [...]string{
	"Civilian", "Ensign", "Lieutenant", "Commander", "Captain",
	"Commodore", "Rear admiral", "Vice admiral", "Admiral", "Fleet admiral",
}

// String returns the rank name used in titles.
func (r MilitaryRank) String() string {
	if int(r) >= len(rankNames) {
		return rankNames[0]
	}
	return rankNames[r]
}

// Leader is a named character that can rule, govern or command.
type Leader struct {
	ID        LeaderID    `json:"id"`
	Name      string      `json:"name"`
	Gender    Gender      `json:"gender"`
	Race      social.Race `json:"race"`
	Homeworld string      `json:"homeworld"`

	Age        int `json:"age"` // Years
	Experience int `json:"experience"`
	Level      int `json:"level"`

	Job       Job          `json:"job"`
	TimeInJob int          `json:"time_in_job"` // Turns in job, or remaining sentence in prison
	Title     string       `json:"title"`
	Rank      MilitaryRank `json:"military_rank"`

	// ParentID is a weak reference into the same realm pool.
	ParentID *LeaderID `json:"parent_id,omitempty"`

	Perks      []Perk `json:"perks"` // Unique, kept sorted
	Stats      Stats  `json:"stats"`
	WealthUsed bool   `json:"wealth_used"`
}

// IsAlive reports whether the leader is not dead.
func (l *Leader) IsAlive() bool {
	return l.Job != JobDead
}

// HasParent reports whether the leader is someone's heir.
func (l *Leader) HasParent() bool {
	return l.ParentID != nil
}

// HasPerk reports whether the leader holds the perk.
func (l *Leader) HasPerk(p Perk) bool {
	_, found := slices.BinarySearch(l.Perks, p)
	return found
}

// AddPerk adds a perk if not already held and allowed for the leader's race.
// Returns true if the perk set changed.
func (l *Leader) AddPerk(p Perk) bool {
	if !p.AllowedForRace(l.Race) {
		return false
	}
	i, found := slices.BinarySearch(l.Perks, p)
	if found {
		return false
	}
	l.Perks = slices.Insert(l.Perks, i, p)
	return true
}

// RemovePerk removes a perk. Returns true if it was held.
func (l *Leader) RemovePerk(p Perk) bool {
	i, found := slices.BinarySearch(l.Perks, p)
	if !found {
		return false
	}
	l.Perks = slices.Delete(l.Perks, i, i+1)
	return true
}

// UseWealth spends the one-time Wealthy perk, e.g. to bribe a way out of capture.
// Returns false if the leader is not wealthy.
func (l *Leader) UseWealth() bool {
	if !l.RemovePerk(PerkWealthy) {
		return false
	}
	l.WealthUsed = true
	return true
}

// AssignJob moves the leader to a job and restarts the time-in-job counter.
func (l *Leader) AssignJob(job Job) {
	l.Job = job
	l.TimeInJob = 0
}

// CallName returns the leader's name prefixed with the current title.
func (l *Leader) CallName() string {
	if l.Title == "" {
		return l.Name
	}
	return l.Title + " " + l.Name
}
