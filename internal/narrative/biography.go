// Leader biographies composed from a leader's career counters and perks.
package narrative

import (
	"strconv"
	"strings"

	"github.com/talgya/star-realms/internal/leaders"
	"github.com/talgya/star-realms/internal/social"
)

// youngAge is the age below which a living leader's story is still ahead.
const youngAge = 35

// mainJob names the job the leader spent most time in.
func mainJob(l *leaders.Leader, gov social.GovernmentType) string {
	ruler := l.Stats.Get(leaders.StatRulerReignLength)
	governor := l.Stats.Get(leaders.StatGovernorLength)
	commander := l.Stats.Get(leaders.StatCommanderLength)
	avg := (ruler + governor + commander) / 3
	switch {
	case ruler > avg:
		return RulerTitle(l, gov)
	case avg == 0:
		return "jobless"
	case governor > avg:
		return "Governor"
	case commander > avg:
		return "Commander"
	}
	return "between jobs"
}

// knownFor collects at most two achievements that stand out in the stats.
type knownFor struct {
	parts []string
}

func (k *knownFor) add(s string) {
	if len(k.parts) < 2 {
		k.parts = append(k.parts, s)
	}
}

func (k *knownFor) String() string {
	return strings.Join(k.parts, " and ")
}

// BestKnownFor describes what the leader's record is remembered for.
// Returns "" when nothing stands out.
func BestKnownFor(l *leaders.Leader) string {
	s := &l.Stats
	battles := s.Get(leaders.StatBattles)
	anomalies := s.Get(leaders.StatAnomalies)
	trades := s.Get(leaders.StatTrades)
	privateering := s.Get(leaders.StatPrivateering)
	commanderAvg := (anomalies + battles + trades + privateering) / 4

	buildings := s.Get(leaders.StatBuildingsBuilt)
	ships := s.Get(leaders.StatShipsBuilt)
	growth := s.Get(leaders.StatPopulationGrowth)
	governorAvg := (buildings + ships + growth) / 3

	wars := s.Get(leaders.StatWarDeclarations)
	diplomacy := s.Get(leaders.StatDiplomaticTrades)
	rulerAvg := (wars + diplomacy) / 2

	var k knownFor
	if rulerAvg >= commanderAvg && rulerAvg > 0 {
		if wars > diplomacy {
			k.add("war declarations")
		} else {
			k.add("diplomatic trades")
		}
	}
	if governorAvg >= commanderAvg {
		switch {
		case ships > buildings && ships > growth:
			k.add("ship building")
		case buildings > ships && buildings > growth:
			k.add("building projects")
		case growth > ships && growth > buildings:
			k.add("population growth")
		}
	}
	if commanderAvg >= governorAvg {
		switch {
		case battles > anomalies && battles > privateering && battles > trades:
			text := "space battles"
			if s.Get(leaders.StatPirateBattles) >= battles/2 {
				text += " against space pirates"
			}
			k.add(text)
		case anomalies > battles && anomalies > privateering && anomalies > trades:
			k.add("exploring space anomalies")
		case trades > battles && trades > privateering && trades > anomalies:
			k.add("trades")
		case privateering > battles && privateering > trades && privateering > anomalies:
			k.add("space pirating")
		}
	}
	return k.String()
}

// BuildBiography composes the leader's biography.
func BuildBiography(l *leaders.Leader, gov social.GovernmentType) string {
	living := l.IsAlive()
	young := living && l.Age < youngAge

	var b strings.Builder
	b.WriteString(l.Name)
	if l.Job == leaders.JobTooYoung {
		b.WriteString(" is still growing up and will achieve many things later.")
		return b.String()
	}
	b.WriteString(tense(living, " is ", " was "))

	ruler := l.Stats.Get(leaders.StatRulerReignLength)
	governor := l.Stats.Get(leaders.StatGovernorLength)
	commander := l.Stats.Get(leaders.StatCommanderLength)
	switch {
	case ruler > 0 && governor == 0 && commander == 0:
		b.WriteString("the ")
	case ruler == 0 && (governor > 0) != (commander > 0):
		b.WriteString("working as ")
	case ruler != 0 || governor != 0 || commander != 0:
		b.WriteString("mostly working as ")
	}
	b.WriteString(mainJob(l, gov))

	if living {
		b.WriteString(". Currently ")
		b.WriteString(l.Name)
		b.WriteString(" is ")
		switch l.Job {
		case leaders.JobRuler:
			b.WriteString(RulerTitle(l, gov))
		case leaders.JobCommander:
			b.WriteString(l.Rank.String())
		default:
			b.WriteString(strings.ToLower(l.Job.String()))
		}
	}
	b.WriteString(". ")

	subject := l.Title
	if subject == "" {
		subject = l.Name
	}
	b.WriteString(subject)
	if known := BestKnownFor(l); known != "" {
		b.WriteString(tense(living, " is known for ", " will be remembered for "))
		b.WriteString(known)
		b.WriteString(". ")
	} else {
		switch {
		case young:
			b.WriteString(" is still young and is able to achieve many things. ")
		case living:
			b.WriteString(" is still live and ")
			switch {
			case l.Race.IsRobotic():
				b.WriteString("functional and")
			case l.HasPerk(leaders.PerkHealthy):
				b.WriteString("has healthy lifestyle and")
			case !l.HasPerk(leaders.PerkAddicted):
				b.WriteString("healthy and")
			}
			b.WriteString(" is able to achieve things. ")
		default:
			b.WriteString(" has passed away with respect. ")
		}
	}

	if l.Stats.Get(leaders.StatEspionage) > 0 {
		b.WriteString(l.Name)
		b.WriteString(tense(living, " is suspected to be spy. ", " was suspected to be spy. "))
	}
	if jail := l.Stats.Get(leaders.StatJailTime); jail > 0 {
		b.WriteString(l.Name)
		if living {
			b.WriteString(" has been in jail. ")
		} else {
			b.WriteString(" has been sentenced to jail ")
			b.WriteString(strconv.Itoa(jail))
			b.WriteString(" times. ")
		}
	}
	if attitude, ok := leaders.DeriveAttitude(l.Perks); ok {
		b.WriteString(l.CallName())
		b.WriteString(tense(living, " is known to be ", " was known to be "))
		b.WriteString(attitude.Adjective())
		b.WriteString(". ")
	}
	if artifacts := l.Stats.Get(leaders.StatResearchArtifacts); artifacts > 0 {
		b.WriteString(l.Name)
		b.WriteString(tense(living, " is ", " was "))
		if artifacts > 2 {
			b.WriteString("famous ancient artifact researcher. ")
		} else {
			b.WriteString("interested in ancient artifact research. ")
		}
	}
	return b.String()
}

func tense(living bool, present, past string) string {
	if living {
		return present
	}
	return past
}
