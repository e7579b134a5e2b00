package ports

import "github.com/randomtoy/coresim/internal/domain"

// RandomSource hands out independent random streams, one per worker.
// A zero seed asks for non-reproducible streams.
type RandomSource interface {
	Stream(seed uint64, stream uint64) domain.RNG
}
