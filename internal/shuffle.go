package internal

import (
	"math/rand"
	"time"
)

// Shuffles the slice in place using the given random source.
// Every permutation is equally likely.
func Shuffle[S ~[]E, E any](slice S, rng *rand.Rand) {
	rng.Shuffle(
		len(slice),
		func(i, j int) { slice[i], slice[j] = slice[j], slice[i] },
	)
}

// Returns a shuffled copy of the slice. The original is left untouched.
func Shuffled[S ~[]E, E any](slice S, rng *rand.Rand) S {
	shuffled := make(S, len(slice))
	copy(shuffled, slice)
	Shuffle(shuffled, rng)
	return shuffled
}

func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Returns a random source seeded from the clock
func NewTimeRand() *rand.Rand {
	return NewRand(time.Now().UnixNano())
}
