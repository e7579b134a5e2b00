// Package rng provides the random streams used to shuffle decks.
package rng

import (
	"math/rand/v2"

	"lukechampine.com/frand"

	"github.com/randomtoy/coresim/internal/domain"
)

// Source implements ports.RandomSource.
//
// A zero seed yields independent frand generators seeded from the OS.
// Any other seed yields PCG streams, so the same (seed, stream) pair always
// produces the same sequence.
type Source struct{}

func NewSource() Source { return Source{} }

func (Source) Stream(seed, stream uint64) domain.RNG {
	if seed == 0 {
		return frand.New()
	}
	return pcg{r: rand.New(rand.NewPCG(seed, mix(stream)))}
}

type pcg struct{ r *rand.Rand }

func (p pcg) Intn(n int) int { return p.r.IntN(n) }

// mix spreads consecutive stream indexes across the PCG increment space.
func mix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
