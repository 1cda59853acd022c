// Leader name generation per race.
package leaders

import (
	"fmt"
	"strings"

	"github.com/talgya/star-realms/internal/entropy"
	"github.com/talgya/star-realms/internal/social"
)

// GenerateName draws a leader name in the naming style of the race.
func GenerateName(src entropy.Source, race social.Race, gender Gender) string {
	switch {
	case race.IsRobotic():
		return robotName(src, race)
	case race == social.RaceHumans:
		return humanName(src, gender)
	default:
		return alienName(src, gender)
	}
}

func humanName(src entropy.Source, gender Gender) string {
	firsts := maleNames
	if gender == GenderFemale {
		firsts = femaleNames
	}
	first := firsts[src.Intn(len(firsts))]
	last := lastNames[src.Intn(len(lastNames))]
	return first + " " + last
}

// robotName yields a serial designation such as "MK-417".
func robotName(src entropy.Source, race social.Race) string {
	prefix := strings.ToUpper(race.String()[:1]) + string(rune('A'+src.Intn(26)))
	return fmt.Sprintf("%s-%03d", prefix, src.Intn(1000))
}

func alienName(src entropy.Source, gender Gender) string {
	parts := 2 + src.Intn(2)
	var b strings.Builder
	for i := 0; i < parts; i++ {
		b.WriteString(syllables[src.Intn(len(syllables))])
	}
	if gender == GenderFemale {
		b.WriteString(femaleEndings[src.Intn(len(femaleEndings))])
	}
	name := b.String()
	clan := syllables[src.Intn(len(syllables))] + syllables[src.Intn(len(syllables))]
	return capitalize(name) + " " + capitalize(clan)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Name pools for procedural generation.
var maleNames = []string{
	"Aldric", "Bram", "Cedric", "Doran", "Erik", "Finn", "Gareth",
	"Halvard", "Ivan", "Jasper", "Kael", "Leif", "Magnus", "Nils",
	"Oswin", "Quinn", "Rowan", "Stellan", "Theron", "Ulric", "Varen",
}

var femaleNames = []string{
	"Astrid", "Brenna", "Calla", "Daria", "Elara", "Freya", "Greta",
	"Helene", "Iris", "Juno", "Kira", "Lena", "Mira", "Nessa",
	"Olwen", "Petra", "Runa", "Senna", "Thea", "Vera", "Yara",
}

var lastNames = []string{
	"Voss", "Ashford", "Dunmore", "Stormcrow", "Hearthstone", "Millward",
	"Ravenmoor", "Silverdale", "Stoneheart", "Brightwater", "Redforge",
	"Goldhaven", "Nightingale", "Riverstone", "Embercroft", "Holloway",
	"Dawnridge", "Farrow", "Caldwell", "Mercer", "Starling", "Orion",
}

var syllables = []string{
	"ka", "zor", "th", "ul", "mek", "sa", "rix", "vo", "an", "dre",
	"qua", "lo", "ith", "gar", "sh", "ne", "tor", "yx", "bel", "oo",
}

var femaleEndings = []string{"a", "ia", "ess", "ee"}
