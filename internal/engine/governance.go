// Succession: picking the next ruler by government.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/talgya/star-realms/internal/entropy"
	"github.com/talgya/star-realms/internal/leaders"
	"github.com/talgya/star-realms/internal/news"
	"github.com/talgya/star-realms/internal/realm"
	"github.com/talgya/star-realms/internal/social"
)

// selectBest returns the first pool member with the highest positive score.
// Dead and imprisoned leaders never qualify; too young ones only when
// allowYoung is set. Xenophobic selection scores other races as zero.
func (c *Court) selectBest(r *realm.Realm, f Family, xenophobic, allowYoung bool) *leaders.Leader {
	var best *leaders.Leader
	value := 0
	for _, l := range r.Leaders {
		if l.Job == leaders.JobDead || l.Job == leaders.JobPrison {
			continue
		}
		if l.Job == leaders.JobTooYoung && !allowYoung {
			continue
		}
		score := Score(f, l, c.src)
		if xenophobic && l.Race != r.Race {
			score = 0
		}
		if score > value {
			best, value = l, score
		}
	}
	return best
}

// StrongestLeader picks the fiercest candidate.
func (c *Court) StrongestLeader(r *realm.Realm, xenophobic bool) *leaders.Leader {
	return c.selectBest(r, FamilyStrong, xenophobic, false)
}

// NextHeir picks the ruler's heir among grown-up children.
func (c *Court) NextHeir(r *realm.Realm) *leaders.Leader {
	return c.selectBest(r, FamilyHeir, false, false)
}

// NextPossibleHeir is NextHeir but also counts children who are too young to rule.
func (c *Court) NextPossibleHeir(r *realm.Realm) *leaders.Leader {
	return c.selectBest(r, FamilyHeir, false, true)
}

// HasOnlyTooYoungHeirs reports whether the realm has heirs and every one
// still free and alive is too young to rule.
func HasOnlyTooYoungHeirs(r *realm.Realm) bool {
	heirs := false
	for _, l := range r.Leaders {
		if !l.HasParent() || l.Job == leaders.JobDead || l.Job == leaders.JobPrison {
			continue
		}
		heirs = true
		if l.Job != leaders.JobTooYoung {
			return false
		}
	}
	return heirs
}

// NextCEO picks the best business leader.
func (c *Court) NextCEO(r *realm.Realm) *leaders.Leader {
	return c.selectBest(r, FamilyBusiness, false, false)
}

// NextDemocraticRuler holds an election.
func (c *Court) NextDemocraticRuler(r *realm.Realm) *leaders.Leader {
	return c.selectBest(r, FamilyDemocratic, false, false)
}

// NextFederationRuler holds a federal election.
func (c *Court) NextFederationRuler(r *realm.Realm) *leaders.Leader {
	return c.selectBest(r, FamilyFederation, false, false)
}

// NextHegemonyRuler lets the ruling caste choose.
func (c *Court) NextHegemonyRuler(r *realm.Realm, xenophobic bool) *leaders.Leader {
	return c.selectBest(r, FamilyHegemony, xenophobic, false)
}

// NextAIRuler lets the machine choose.
func (c *Court) NextAIRuler(r *realm.Realm) *leaders.Leader {
	return c.selectBest(r, FamilyAI, false, false)
}

// BestScientist picks the leader most fit to lead research.
func (c *Court) BestScientist(r *realm.Realm) *leaders.Leader {
	return c.selectBest(r, FamilyScientist, false, false)
}

// RandomLivingLeader picks any leader who is not dead.
func (c *Court) RandomLivingLeader(r *realm.Realm) *leaders.Leader {
	living := r.LivingLeaders()
	if i := entropy.Pick(c.src, len(living)); i >= 0 {
		return living[i]
	}
	return nil
}

// NextRuler picks the realm's next ruler the way its government does it.
// Returns nil when nobody qualifies. A hereditary realm whose heirs are all
// too young gets a warning message instead of a ruler.
func (c *Court) NextRuler(r *realm.Realm) *leaders.Leader {
	switch r.Government {
	case social.GovHierarchy, social.GovRegime:
		return c.StrongestLeader(r, false)
	case social.GovEmpire, social.GovFeudalism, social.GovKingdom:
		if heir := c.NextHeir(r); heir != nil {
			return heir
		}
		if HasOnlyTooYoungHeirs(r) {
			text := fmt.Sprintf("%s has heirs but all are too young to be ruler. This is difficult time...", r.EmpireName)
			r.Messages.Add(realm.Message{Kind: realm.MessageLeader, Text: text})
			c.record(r.ID, news.CategorySuccession, text)
			return nil
		}
		return c.StrongestLeader(r, true)
	case social.GovGuild, social.GovEnterprise:
		return c.NextCEO(r)
	case social.GovDemocracy, social.GovTechnocracy, social.GovUnion:
		return c.NextDemocraticRuler(r)
	case social.GovFederation, social.GovRepublic:
		return c.NextFederationRuler(r)
	case social.GovHegemony:
		return c.NextHegemonyRuler(r, true)
	case social.GovUtopia:
		return c.NextHegemonyRuler(r, false)
	case social.GovAI, social.GovCollective:
		return c.NextAIRuler(r)
	default:
		return c.StrongestLeader(r, true)
	}
}

// EnsureRuler fills an empty or vacated throne. Returns the new ruler, or nil
// when the throne was occupied or nobody could take it.
func (c *Court) EnsureRuler(r *realm.Realm) *leaders.Leader {
	if ruler := r.Ruler(); ruler != nil && ruler.IsAlive() && ruler.Job == leaders.JobRuler {
		return nil
	}
	r.SetRuler(nil)
	next := c.NextRuler(r)
	if next == nil || !c.AssignLeaderAsRuler(next, r) {
		slog.Warn("throne stays empty", "realm", r.EmpireName, "government", r.Government.String())
		return nil
	}
	text := fmt.Sprintf("%s is the new ruler of %s.", next.CallName(), r.EmpireName)
	r.Messages.Add(realm.Message{Kind: realm.MessageLeader, Text: text, Leader: &next.ID})
	c.record(r.ID, news.CategorySuccession, text)
	if c.HumanHasMet(r.ID) {
		c.publish(news.NewRuler(next.CallName(), r.EmpireName))
	}
	return next
}
