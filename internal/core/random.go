package core

import (
	"math"
	"math/rand"
)

// Random is the source of uniform randomness used by spawners.
// *rand.Rand satisfies it; tests substitute scripted sequences.
type Random interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// NewRandom returns a seeded source for deterministic gameplay.
func NewRandom(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RandomBetween returns a value in [min, max).
func RandomBetween(r Random, min, max float64) float64 {
	return r.Float64()*(max-min) + min
}

// RandomChoice picks one element uniformly. choices must not be empty.
func RandomChoice[T any](r Random, choices []T) T {
	i := int(math.Floor(r.Float64() * float64(len(choices))))
	if i >= len(choices) {
		i = len(choices) - 1
	}
	return choices[i]
}

// RandomAngle returns a heading in [0, 2π).
func RandomAngle(r Random) float64 {
	return r.Float64() * math.Pi * 2
}
