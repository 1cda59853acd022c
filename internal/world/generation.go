// Star map generation using layered simplex noise.
package world

import (
	"fmt"
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// GenConfig holds star map generation parameters.
type GenConfig struct {
	Radius    int     // Hex grid radius in sectors
	Seed      int64   // Random seed (0 = random)
	Density   float64 // Noise threshold above which a sector holds a planet (0.0–1.0)
	MaxPop    int     // Population of the richest planet at colonisation
	Homeworld int     // Starting population of a realm homeworld
}

// DefaultGenConfig returns a reasonable starting configuration.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Radius:    12,
		Density:   0.55,
		MaxPop:    8,
		Homeworld: 10,
	}
}

// SmallTestConfig returns a tiny galaxy for rapid iteration.
func SmallTestConfig() GenConfig {
	return GenConfig{
		Radius:    5,
		Seed:      42,
		Density:   0.45,
		MaxPop:    6,
		Homeworld: 10,
	}
}

// Generate creates a star map with unowned planets.
func Generate(cfg GenConfig) *StarMap {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	// Independent layers: where stars cluster and how habitable they are.
	densityNoise := opensimplex.NewNormalized(seed)
	richNoise := opensimplex.NewNormalized(seed + 1)
	names := rand.New(rand.NewSource(seed + 2))

	m := NewStarMap(cfg.Radius)
	for q := -cfg.Radius; q <= cfg.Radius; q++ {
		for r := -cfg.Radius; r <= cfg.Radius; r++ {
			c := Coord{Q: q, R: r}
			if !m.InBounds(c) {
				continue
			}

			// Axial to cartesian for noise sampling.
			x := float64(q) + float64(r)*0.5
			y := float64(r) * math.Sqrt(3.0) / 2.0

			if octaveNoise(densityNoise, x, y, 3, 0.15, 0.5) < cfg.Density {
				continue
			}
			rich := octaveNoise(richNoise, x, y, 2, 0.1, 0.5)
			m.AddPlanet(&Planet{
				Name:       planetName(names),
				Coord:      c,
				Owner:      NoOwner,
				Population: int(math.Round(rich * float64(cfg.MaxPop))),
				Richness:   rich,
			})
		}
	}
	return m
}

// AssignHomeworlds gives each of count realms a starting planet, spreading
// them across the map: the richest planet goes first, every next pick
// maximises the distance to the homeworlds already chosen.
// Returns fewer planets than requested when the map runs out.
func AssignHomeworlds(m *StarMap, count int, cfg GenConfig) []*Planet {
	var homes []*Planet
	for owner := 0; owner < count; owner++ {
		var best *Planet
		bestScore := math.Inf(-1)
		for _, p := range m.Planets {
			if p.Owner != NoOwner {
				continue
			}
			score := p.Richness
			if len(homes) > 0 {
				nearest := math.MaxInt
				for _, h := range homes {
					nearest = min(nearest, Distance(h.Coord, p.Coord))
				}
				score += float64(nearest)
			}
			if score > bestScore {
				best, bestScore = p, score
			}
		}
		if best == nil {
			break
		}
		best.Owner = owner
		best.Population = cfg.Homeworld
		best.AddBuilding(BuildingBarracks)
		homes = append(homes, best)
	}
	return homes
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}

var starPrefixes = []string{
	"Ald", "Bet", "Cor", "Den", "Eri", "Fom", "Gal", "Hyd",
	"Izar", "Kor", "Lyr", "Mir", "Nash", "Ori", "Pol", "Rig",
	"Sirr", "Tau", "Ursa", "Veg", "Wez", "Zan",
}

var starSuffixes = []string{"a", "on", "ix", "us", "ara", "en", "is", "eth"}

var romanNumerals = []string{"I", "II", "III", "IV", "V", "VI", "VII"}

func planetName(rng *rand.Rand) string {
	return fmt.Sprintf("%s%s %s",
		starPrefixes[rng.Intn(len(starPrefixes))],
		starSuffixes[rng.Intn(len(starSuffixes))],
		romanNumerals[rng.Intn(len(romanNumerals))])
}
