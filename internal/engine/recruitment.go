// Recruitment: training planets and the rising cost of a crowded pool.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"

	"github.com/talgya/star-realms/internal/leaders"
	"github.com/talgya/star-realms/internal/realm"
	"github.com/talgya/star-realms/internal/world"
)

// Training bonuses for leader recruitment.
const (
	barracksTrainingValue = 20
	academyTrainingValue  = 40
	barracksExperience    = 50
	recruitCostCrowded    = 11  // Available leaders at which the floor applies
	recruitCostFloor      = 100 // Minimum cost once the pool is crowded
)

// BestTrainingPlanet returns the realm planet best suited to train a leader,
// or nil when no planet has enough population.
func (c *Court) BestTrainingPlanet(r *realm.Realm) *world.Planet {
	var best *world.Planet
	bestValue := 0
	for _, p := range c.Map.PlanetsOwnedBy(r.ID) {
		if p.Population < r.Race.MinimumPopulationForLeader() {
			continue
		}
		value := p.Population +
			barracksTrainingValue*p.CountBuildings(world.BuildingBarracks) +
			academyTrainingValue*p.CountBuildings(world.BuildingSpaceAcademy)
		if value > bestValue {
			best, bestValue = p, value
		}
	}
	return best
}

// AvailableLeaders counts parentless leaders that are working or free to work.
func AvailableLeaders(r *realm.Realm) int {
	n := 0
	for _, l := range r.Leaders {
		if l.HasParent() {
			continue
		}
		switch l.Job {
		case leaders.JobUnassigned, leaders.JobCommander, leaders.JobGovernor, leaders.JobRuler:
			n++
		}
	}
	return n
}

// RecruitCost returns the credits needed to recruit the next leader.
func RecruitCost(r *realm.Realm) int {
	base := r.Government.LeaderRecruitCost()
	count := AvailableLeaders(r)
	if count < r.Government.LeaderPoolLimit() {
		return base
	}
	cost := base * count
	if count >= recruitCostCrowded {
		cost = max(cost, recruitCostFloor)
	}
	return cost
}

// RecruitLeader trains a new leader on the realm's best training planet.
// Returns nil without changing anything when there is no planet or too few credits.
func (c *Court) RecruitLeader(r *realm.Realm) *leaders.Leader {
	planet := c.BestTrainingPlanet(r)
	cost := RecruitCost(r)
	if planet == nil || r.Credits < cost {
		return nil
	}
	r.Credits -= cost

	level := 1 + planet.CountBuildings(world.BuildingSpaceAcademy)
	l := c.CreateLeader(r, planet, level)
	if planet.CountBuildings(world.BuildingBarracks) > 0 {
		l.Experience = barracksExperience
	}
	l.AssignJob(leaders.JobUnassigned)
	r.AddLeader(l)
	planet.TakeColonist()

	r.Messages.Add(realm.Message{
		Kind:   realm.MessageLeader,
		Text:   fmt.Sprintf("%s was recruited on %s for %s credits.", l.Name, planet.Name, humanize.Comma(int64(cost))),
		Leader: &l.ID,
	})
	c.metrics.recruited()
	slog.Info("leader recruited", "realm", r.EmpireName, "leader", l.Name, "planet", planet.Name, "cost", cost)
	return l
}
