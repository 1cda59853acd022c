// Leader creation: gender, age and starting perks.
package engine

import (
	"log/slog"

	"github.com/talgya/star-realms/internal/entropy"
	"github.com/talgya/star-realms/internal/leaders"
	"github.com/talgya/star-realms/internal/realm"
	"github.com/talgya/star-realms/internal/social"
	"github.com/talgya/star-realms/internal/world"
)

// LevelStartRuler is the creation level that marks a realm's first ruler.
const LevelStartRuler = -1

// unknownHomeworld is used when a leader has no known planet of origin.
const unknownHomeworld = "Unknown"

func (c *Court) randomGender() leaders.Gender {
	if c.src.Intn(2) == 0 {
		return leaders.GenderMale
	}
	return leaders.GenderFemale
}

// leaderGender resolves gender from race, and for a starting monarch from
// the race's social system.
func (c *Court) leaderGender(r *realm.Realm, level int) leaders.Gender {
	info := r.Race.Info()
	gender := leaders.GenderNone
	if !info.Genderless {
		monarchy := r.Government == social.GovEmpire || r.Government == social.GovKingdom
		switch {
		case level == LevelStartRuler && monarchy && info.Social == social.SocialPatriarchy:
			gender = leaders.GenderMale
		case level == LevelStartRuler && monarchy && info.Social == social.SocialMatriarchy:
			gender = leaders.GenderFemale
		default:
			gender = c.randomGender()
		}
	}
	if info.AlwaysFemale {
		gender = leaders.GenderFemale
	}
	return gender
}

// CreateLeader makes a new leader for the realm without adding it to the pool.
// homeworld may be nil. Pass LevelStartRuler for the realm's first ruler.
func (c *Court) CreateLeader(r *realm.Realm, homeworld *world.Planet, level int) *leaders.Leader {
	gender := c.leaderGender(r, level)
	l := &leaders.Leader{
		ID:        r.NextLeaderID(),
		Name:      leaders.GenerateName(c.src, r.Race, gender),
		Gender:    gender,
		Race:      r.Race,
		Homeworld: unknownHomeworld,
		Job:       leaders.JobUnassigned,
	}
	if homeworld != nil {
		l.Homeworld = homeworld.Name
	}

	if level == LevelStartRuler {
		l.Level = 1
		l.Age = 30 + c.src.Intn(20)
		if r.Race.LifeSpan() < 80 {
			l.Age = 25 + c.src.Intn(10)
		}
		if r.Race.IsMechanical() {
			l.Age = 4 + c.src.Intn(10)
		}
	} else {
		l.Level = level
		l.Age = 23 + c.src.Intn(15)
		if r.Race.IsMechanical() {
			l.Age = 1
		}
	}

	for i := 0; i < l.Level; i++ {
		c.drawPerk(l, leaders.CategoryGood)
		if entropy.Chance(c.src, badPerkChance) {
			c.drawPerk(l, leaders.CategoryBad)
		}
	}
	slog.Debug("leader created", "realm", r.EmpireName, "leader", l.Name, "level", l.Level, "perks", len(l.Perks))
	return l
}
