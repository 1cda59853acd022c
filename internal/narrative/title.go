// Package narrative writes the text players read about leaders: titles and
// the biography composed from a leader's stats, perks and job history.
package narrative

import (
	"github.com/talgya/star-realms/internal/leaders"
	"github.com/talgya/star-realms/internal/social"
)

// RulerTitle returns the title a ruler of the government carries.
func RulerTitle(l *leaders.Leader, gov social.GovernmentType) string {
	female := l.Gender == leaders.GenderFemale
	switch gov {
	case social.GovEmpire:
		if female {
			return "Empiress"
		}
		return "Emperor"
	case social.GovFeudalism, social.GovNest, social.GovKingdom:
		if female {
			return "Queen"
		}
		return "King"
	case social.GovHorde, social.GovMechanicalHorde, social.GovClan:
		return "Chief"
	case social.GovUtopia:
		return "Wise"
	case social.GovEnterprise:
		return "CEO"
	case social.GovSyndicate:
		return "Boss"
	case social.GovGuild, social.GovHegemony, social.GovRegime,
		social.GovCollective, social.GovSpacePirates:
		return "Leader"
	case social.GovTechnocracy:
		return "Master engineer"
	case social.GovAI:
		return "Main Process"
	case social.GovHivemind:
		return "Master"
	case social.GovHierarchy:
		if female {
			return "Lady"
		}
		return "Lord"
	default:
		return "President"
	}
}

func royalTitle(l *leaders.Leader) string {
	if l.Gender == leaders.GenderFemale {
		return "Princess"
	}
	return "Prince"
}

// BuildTitle returns the title matching the leader's current job.
// A civilian given a fleet is promoted to Ensign. The dead keep their last title.
func BuildTitle(l *leaders.Leader, gov social.GovernmentType) string {
	switch l.Job {
	case leaders.JobRuler:
		return RulerTitle(l, gov)
	case leaders.JobCommander:
		if l.Rank == leaders.RankCivilian {
			l.Rank = leaders.RankEnsign
		}
		return l.Rank.String()
	case leaders.JobGovernor:
		if l.HasParent() {
			return royalTitle(l)
		}
		return "Governor"
	case leaders.JobTooYoung:
		return royalTitle(l)
	case leaders.JobUnassigned, leaders.JobPrison:
		if l.HasParent() {
			return royalTitle(l)
		}
		if l.Rank != leaders.RankCivilian {
			return l.Rank.String()
		}
		return ""
	default:
		return l.Title
	}
}

// RefreshTitle regenerates and stores the leader's title.
func RefreshTitle(l *leaders.Leader, gov social.GovernmentType) {
	l.Title = BuildTitle(l, gov)
}
