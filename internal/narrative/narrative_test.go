package narrative

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talgya/star-realms/internal/leaders"
	"github.com/talgya/star-realms/internal/social"
)

func TestRulerTitle(t *testing.T) {
	male := &leaders.Leader{Gender: leaders.GenderMale}
	female := &leaders.Leader{Gender: leaders.GenderFemale}
	none := &leaders.Leader{Gender: leaders.GenderNone}

	tests := []struct {
		gov    social.GovernmentType
		leader *leaders.Leader
		want   string
	}{
		{social.GovDemocracy, male, "President"},
		{social.GovRepublic, female, "President"},
		{social.GovEmpire, male, "Emperor"},
		{social.GovEmpire, female, "Empiress"},
		{social.GovKingdom, female, "Queen"},
		{social.GovNest, none, "King"},
		{social.GovClan, male, "Chief"},
		{social.GovUtopia, male, "Wise"},
		{social.GovEnterprise, male, "CEO"},
		{social.GovSyndicate, male, "Boss"},
		{social.GovSpacePirates, male, "Leader"},
		{social.GovTechnocracy, male, "Master engineer"},
		{social.GovAI, none, "Main Process"},
		{social.GovHivemind, none, "Master"},
		{social.GovHierarchy, male, "Lord"},
		{social.GovHierarchy, female, "Lady"},
	}
	for _, tt := range tests {
		t.Run(tt.gov.String()+"/"+tt.leader.Gender.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, RulerTitle(tt.leader, tt.gov))
		})
	}
}

func TestBuildTitle(t *testing.T) {
	parent := leaders.LeaderID(1)

	commander := &leaders.Leader{Job: leaders.JobCommander}
	assert.Equal(t, "Ensign", BuildTitle(commander, social.GovDemocracy))
	assert.Equal(t, leaders.RankEnsign, commander.Rank, "civilian commanders are promoted")

	governor := &leaders.Leader{Job: leaders.JobGovernor}
	assert.Equal(t, "Governor", BuildTitle(governor, social.GovKingdom))
	governor.ParentID = &parent
	governor.Gender = leaders.GenderFemale
	assert.Equal(t, "Princess", BuildTitle(governor, social.GovKingdom))

	heir := &leaders.Leader{Job: leaders.JobTooYoung, Gender: leaders.GenderMale}
	assert.Equal(t, "Prince", BuildTitle(heir, social.GovEmpire))

	veteran := &leaders.Leader{Job: leaders.JobPrison, Rank: leaders.RankCaptain}
	assert.Equal(t, "Captain", BuildTitle(veteran, social.GovEmpire))
	assert.Equal(t, "", BuildTitle(&leaders.Leader{Job: leaders.JobUnassigned}, social.GovEmpire))

	dead := &leaders.Leader{Job: leaders.JobDead, Title: "Emperor"}
	assert.Equal(t, "Emperor", BuildTitle(dead, social.GovEmpire))

	ruler := &leaders.Leader{Job: leaders.JobRuler, Gender: leaders.GenderMale, Name: "Kael"}
	RefreshTitle(ruler, social.GovEmpire)
	assert.Equal(t, "Emperor Kael", ruler.CallName())
}

func TestBestKnownFor(t *testing.T) {
	l := &leaders.Leader{}
	assert.Equal(t, "", BestKnownFor(l))

	l.Stats.Add(leaders.StatWarDeclarations, 4)
	l.Stats.Add(leaders.StatShipsBuilt, 9)
	assert.Equal(t, "war declarations and ship building", BestKnownFor(l))

	c := &leaders.Leader{}
	c.Stats.Add(leaders.StatBattles, 8)
	c.Stats.Add(leaders.StatPirateBattles, 4)
	assert.Equal(t, "space battles against space pirates", BestKnownFor(c))
	c.Stats.Add(leaders.StatBattles, 2)
	assert.Equal(t, "space battles", BestKnownFor(c))
}

func TestBiographyTooYoung(t *testing.T) {
	l := &leaders.Leader{Name: "Runa", Job: leaders.JobTooYoung}
	assert.Equal(t, "Runa is still growing up and will achieve many things later.",
		BuildBiography(l, social.GovKingdom))
}

func TestBiographyLivingRuler(t *testing.T) {
	l := &leaders.Leader{
		Name:   "Kael Voss",
		Gender: leaders.GenderMale,
		Race:   social.RaceHumans,
		Age:    52,
		Job:    leaders.JobRuler,
		Title:  "King",
	}
	l.Stats.Add(leaders.StatRulerReignLength, 10)
	l.AddPerk(leaders.PerkMerchant)

	want := "Kael Voss is the King. Currently Kael Voss is King. " +
		"King is still live and healthy and is able to achieve things. " +
		"King Kael Voss is known to be merchantical. "
	assert.Equal(t, want, BuildBiography(l, social.GovKingdom))
}

func TestBiographyDeadCommander(t *testing.T) {
	l := &leaders.Leader{
		Name:  "Mira",
		Race:  social.RaceHumans,
		Age:   70,
		Job:   leaders.JobDead,
		Title: "Captain",
		Rank:  leaders.RankCaptain,
	}
	l.Stats.Add(leaders.StatCommanderLength, 30)
	l.Stats.Add(leaders.StatAnomalies, 6)
	l.Stats.Add(leaders.StatJailTime, 2)
	l.Stats.Add(leaders.StatResearchArtifacts, 3)

	want := "Mira was working as Commander. " +
		"Captain will be remembered for exploring space anomalies. " +
		"Mira has been sentenced to jail 2 times. " +
		"Mira was famous ancient artifact researcher. "
	assert.Equal(t, want, BuildBiography(l, social.GovDemocracy))
}

func TestBiographyYoungJoblessRobot(t *testing.T) {
	l := &leaders.Leader{Name: "MK-417", Race: social.RaceMechions, Age: 5}
	l.Stats.Add(leaders.StatEspionage, 1)
	want := "MK-417 is jobless. Currently MK-417 is unassigned. " +
		"MK-417 is still young and is able to achieve many things. " +
		"MK-417 is suspected to be spy. "
	assert.Equal(t, want, BuildBiography(l, social.GovAI))
}
