// Package seedrand provides reproducible pseudo-random streams derived from
// string or numeric seeds. It is not suitable for cryptographic use.
package seedrand

import (
	"github.com/moontrade/numx/pkg/pmath"
	"github.com/moontrade/numx/pkg/xmur3"
)

// norm maps a raw 32-bit output into [0,1).
const norm = 1.0 / 4294967296.0

// Rand is a seeded stream. Two Rands built from the same seed yield the same
// sequence. A Rand is not safe for concurrent use; see Locked.
type Rand struct {
	h xmur3.Hasher
}

// NewString returns a stream seeded directly by seed.
func NewString(seed string) *Rand {
	return &Rand{h: xmur3.New(seed)}
}

// New returns a stream seeded by the string form of seed.
func New[S Seed](seed S) *Rand {
	return NewString(seedString(seed))
}

// FromAny is New for seeds whose type is only known at run time.
func FromAny(seed any) (*Rand, error) {
	s, err := SeedString(seed)
	if err != nil {
		return nil, err
	}
	return NewString(s), nil
}

// Uint32 returns the next raw 32-bit output.
func (r *Rand) Uint32() uint32 {
	return r.h.Next()
}

// Uint64 combines two steps, high word first. It makes *Rand a
// math/rand/v2 Source.
func (r *Rand) Uint64() uint64 {
	hi := r.h.Next()
	return uint64(hi)<<32 | uint64(r.h.Next())
}

// Float64 returns the next value in [0,1).
func (r *Rand) Float64() float64 {
	return float64(r.h.Next()) * norm
}

// Range returns the next value scaled onto [min,max).
func (r *Rand) Range(min, max float64) float64 {
	return pmath.Lerp(min, max, r.Float64(), false)
}

// Intn returns the next value in [0,n). It panics if n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		panic("seedrand: invalid argument to Intn")
	}
	return int(r.Float64() * float64(n))
}

// Func adapts the stream to a plain generator function.
func (r *Rand) Func() func() float64 {
	return r.Float64
}
