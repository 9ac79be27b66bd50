// Package rand provides the random source used by the allocators. Callers that
// need reproducible allocations seed it or supply their own Source.
package rand

import (
	"time"

	"github.com/MichaelTJones/pcg"
)

// Source is the subset of a random generator the allocators depend on.
type Source interface {
	// Intn returns a uniformly distributed value in [0, n). n must be positive.
	Intn(n int) int
}

// Rand is a PCG32-backed Source.
type Rand struct {
	r *pcg.PCG32
}

// New returns a Rand seeded from the clock.
func New() *Rand {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Rand with a fixed seed; equal seeds give equal sequences.
func NewSeeded(seed int64) *Rand {
	r := &Rand{r: pcg.NewPCG32()}
	r.Seed(seed)
	return r
}

func (r *Rand) Seed(s int64) {
	r.r.Seed(uint64(s), 0xda3e39cb94b95bdb)
}

func (r *Rand) Intn(n int) int {
	return int(r.r.Bounded(uint32(n)))
}

// SampleSlice uniformly samples an element of a non-empty slice.
func SampleSlice[T any](src Source, slice []T) T {
	return slice[src.Intn(len(slice))]
}

// Scripted replays a fixed sequence of choices, wrapping each into [0, n).
// It is meant for tests that need exact allocator outputs.
type Scripted struct {
	values []int
	next   int
}

func NewScripted(values ...int) *Scripted {
	return &Scripted{values: values}
}

func (s *Scripted) Intn(n int) int {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}
