// Package entropy provides the injectable random source that drives every
// probabilistic choice in the leader subsystem.
// Seeded sources replay deterministically; NewSeed draws a fresh seed from crypto/rand.
package entropy

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source is the random source consumed by the engine.
// Intn returns a uniform int in [0, n); n must be > 0.
type Source interface {
	Intn(n int) int
}

// Dice is a seedable Source backed by math/rand.
type Dice struct {
	rng  *rand.Rand
	seed int64
}

// NewDice creates dice with the given seed.
func NewDice(seed int64) *Dice {
	return &Dice{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Intn returns a uniform int in [0, n).
func (d *Dice) Intn(n int) int {
	return d.rng.Intn(n)
}

// Seed returns the seed the dice were created with.
func (d *Dice) Seed() int64 {
	return d.seed
}

// Chance reports whether a percentage roll succeeds: true with probability percent/100.
func Chance(src Source, percent int) bool {
	return src.Intn(100) < percent
}

// Pick returns a uniform index into a slice of length n, or -1 when n is 0.
func Pick(src Source, n int) int {
	if n <= 0 {
		return -1
	}
	return src.Intn(n)
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Sequence is a Source that replays a fixed list of values, wrapping around.
// Each value is reduced modulo n. Useful for forcing specific branches.
type Sequence struct {
	values []int
	next   int
}

// NewSequence creates a Sequence over values.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// Intn returns the next scripted value modulo n.
func (s *Sequence) Intn(n int) int {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	if v < 0 {
		v = -v
	}
	return v % n
}
