package engine

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/star-realms/internal/entropy"
	"github.com/talgya/star-realms/internal/leaders"
	"github.com/talgya/star-realms/internal/news"
	"github.com/talgya/star-realms/internal/realm"
	"github.com/talgya/star-realms/internal/social"
)

// newKingdom returns a court whose realm already has a crowned king and no
// random births, coups or birthdays.
func newKingdom(t *testing.T, src entropy.Source) (*Court, *realm.Realm, *leaders.Leader) {
	t.Helper()
	c, r, _ := newTestCourt(social.GovKingdom, src)
	c.Options = Options{}
	king := addLeader(r, "Aldric", leaders.JobUnassigned, 40)
	require.True(t, c.AssignLeaderAsRuler(king, r))
	r.Messages.Clear()
	return c, r, king
}

func TestPrisonerIsReleased(t *testing.T) {
	c, r, _ := newKingdom(t, entropy.NewDice(1))
	l := addLeader(r, "Vance", leaders.JobPrison, 30)
	l.TimeInJob = 2

	c.UpkeepLeaders(r)
	assert.Equal(t, leaders.JobPrison, l.Job)
	assert.Equal(t, 1, l.TimeInJob)

	c.UpkeepLeaders(r)
	assert.Equal(t, leaders.JobUnassigned, l.Job)
	assert.Zero(t, l.TimeInJob)
	require.Equal(t, 1, c.History.Len())
	assert.Contains(t, c.History.Events()[0].Description, "released")
}

func TestHeirComesOfAge(t *testing.T) {
	c, r, king := newKingdom(t, entropy.NewDice(1))
	c.Options.TurnsPerYear = 1
	prince := childOf(addLeader(r, "Edric", leaders.JobTooYoung, 17), king)

	c.UpkeepLeaders(r)
	assert.Equal(t, 18, prince.Age)
	assert.Equal(t, 41, king.Age)
	assert.Equal(t, leaders.JobUnassigned, prince.Job)
	assert.Equal(t, "Prince", prince.Title)
}

func TestWorkingLeaderLevelsUp(t *testing.T) {
	c, r, king := newKingdom(t, entropy.NewDice(7))
	king.Experience = 95

	c.UpkeepLeaders(r)
	assert.Equal(t, 2, king.Level)
	assert.Equal(t, 5, king.Experience)
	assert.Equal(t, 1, king.TimeInJob)
	assert.Equal(t, 1, king.Stats.Get(leaders.StatRulerReignLength))
	assert.NotEmpty(t, king.Perks)
}

func TestIdleLeaderGainsNoExperience(t *testing.T) {
	c, r, _ := newKingdom(t, entropy.NewDice(1))
	l := addLeader(r, "Idle", leaders.JobUnassigned, 30)

	c.UpkeepLeaders(r)
	assert.Zero(t, l.Experience)
	assert.Equal(t, 1, l.TimeInJob)
	assert.Equal(t, 1, l.Level)
}

func TestOldAgeDeath(t *testing.T) {
	c, r, king := newKingdom(t, entropy.NewSequence(0))
	c.Options.TurnsPerYear = 1
	king.Age = 150

	c.UpkeepLeaders(r)
	assert.Equal(t, leaders.JobDead, king.Job)
	assert.Nil(t, r.RulerID, "nobody left to inherit")

	var deaths int
	for _, e := range c.History.Events() {
		if e.Category == news.CategoryDeath {
			deaths++
		}
	}
	assert.Equal(t, 1, deaths)
	assert.Positive(t, r.Messages.Len())
}

func TestRulerGetsHeir(t *testing.T) {
	c, r, king := newKingdom(t, entropy.NewDice(2))
	c.Options.HeirChance = 100
	king.Homeworld = "Avalon"

	c.UpkeepLeaders(r)
	require.Len(t, r.Leaders, 2)
	child := r.Leaders[1]
	assert.Equal(t, leaders.JobTooYoung, child.Job)
	assert.Zero(t, child.Age)
	assert.Equal(t, "Avalon", child.Homeworld)
	require.NotNil(t, child.ParentID)
	assert.Equal(t, king.ID, *child.ParentID)
	assert.Equal(t, r.Parent(child), king)
	assert.Contains(t, []string{"Prince", "Princess"}, child.Title)

	require.Equal(t, 1, c.History.Len())
	assert.Equal(t, news.CategoryBirth, c.History.Events()[0].Category)
}

func TestNoHeirsOutsideHereditaryRule(t *testing.T) {
	c, r, _ := newTestCourt(social.GovDemocracy, entropy.NewDice(2))
	c.Options = Options{HeirChance: 100}
	president := addLeader(r, "Mira", leaders.JobUnassigned, 40)
	require.True(t, c.AssignLeaderAsRuler(president, r))

	c.UpkeepLeaders(r)
	assert.Len(t, r.Leaders, 1)
}

func TestPowerHungryCoup(t *testing.T) {
	c, r, king := newKingdom(t, entropy.NewDice(4))
	c.Options.CoupChance = 100
	plotter := addLeader(r, "Mordred", leaders.JobUnassigned, 35, leaders.PerkPowerHungry)

	c.UpkeepLeaders(r)
	assert.Equal(t, leaders.JobDead, king.Job)
	assert.True(t, plotter.IsAlive())
	ruler := r.Ruler()
	if ruler != nil {
		assert.NotEqual(t, king, ruler)
	}
}

func TestNoCoupInDemocracy(t *testing.T) {
	c, r, _ := newTestCourt(social.GovDemocracy, entropy.NewDice(4))
	c.Options = Options{CoupChance: 100}
	president := addLeader(r, "Mira", leaders.JobUnassigned, 40)
	require.True(t, c.AssignLeaderAsRuler(president, r))
	addLeader(r, "Mordred", leaders.JobUnassigned, 35, leaders.PerkPowerHungry)

	c.UpkeepLeaders(r)
	assert.True(t, president.IsAlive())
	assert.Equal(t, president, r.Ruler())
}

func TestStaffPosts(t *testing.T) {
	c, r, home := newTestCourt(social.GovDemocracy, entropy.NewDice(9))
	r.Credits = 40
	fleet := r.AddFleet("Home Guard")

	c.StaffPosts(r)
	require.Len(t, r.Leaders, 1)
	l := r.Leaders[0]
	assert.Equal(t, leaders.JobGovernor, l.Job)
	require.NotNil(t, home.GovernorID)
	assert.Equal(t, l.ID, *home.GovernorID)
	assert.False(t, fleet.Commanded(), "no one left for the fleet")
}

func TestPlayTurnCollectsIncome(t *testing.T) {
	c, r, _ := newTestCourt(social.GovDemocracy, entropy.NewDice(9))
	c.PlayTurn()
	assert.Equal(t, 1, c.Turn)
	assert.Equal(t, 10, r.Credits)
}

func TestRunnerPlaysTurns(t *testing.T) {
	c, _, _ := newTestCourt(social.GovKingdom, entropy.NewDice(11))
	runner := NewRunner(c)
	var seen []int
	runner.OnTurn = func(turn int) { seen = append(seen, turn) }

	require.NoError(t, runner.Run(context.Background(), 5))
	assert.Equal(t, 5, c.Turn)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, seen)
}

func TestRunnerStopsOnCancel(t *testing.T) {
	c, _, _ := newTestCourt(social.GovKingdom, entropy.NewDice(11))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewRunner(c).Run(ctx, 0)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, c.Turn)
}

func TestMetricsCount(t *testing.T) {
	c, r, _ := newTestCourt(social.GovKingdom, entropy.NewDice(13))
	m := NewMetrics(prometheus.NewRegistry())
	c.SetMetrics(m)
	r.Credits = 45

	l := c.RecruitLeader(r)
	require.NotNil(t, l)
	require.True(t, c.AssignLeaderAsRuler(l, r))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Recruitments))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Successions.WithLabelValues("Kingdom")))
}
