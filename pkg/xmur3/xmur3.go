// Package xmur3 implements the xmur3 string hash as a stateful 32-bit
// generator. Seed strings are mixed one UTF-16 code unit at a time so that
// hashes agree with implementations running on UTF-16 string hosts.
package xmur3

import (
	"math/bits"
	"unicode/utf16"
)

const (
	seedInit uint32 = 1779033703
	m0       uint32 = 3432918353
	m1       uint32 = 2246822507
	m2       uint32 = 3266489909

	// first rune that needs a surrogate pair
	surrSelf = 0x10000
)

// Hasher holds the mutable 32-bit hash state. Copying a Hasher forks the
// stream.
type Hasher struct {
	h uint32
}

// New mixes seed into a fresh Hasher.
func New(seed string) Hasher {
	h := seedInit ^ uint32(utf16Len(seed))
	for _, r := range seed {
		if r >= surrSelf {
			r1, r2 := utf16.EncodeRune(r)
			h = mix(h, uint32(r1))
			h = mix(h, uint32(r2))
			continue
		}
		h = mix(h, uint32(r))
	}
	return Hasher{h: h}
}

// NewUTF16 mixes raw UTF-16 code units. Unpaired surrogates are mixed as is.
func NewUTF16(units []uint16) Hasher {
	h := seedInit ^ uint32(len(units))
	for _, u := range units {
		h = mix(h, uint32(u))
	}
	return Hasher{h: h}
}

func mix(h, unit uint32) uint32 {
	return bits.RotateLeft32((h^unit)*m0, 13)
}

// utf16Len is the number of UTF-16 code units needed to encode s.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if r >= surrSelf {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// Next advances the state through the avalanche mix and returns it.
func (x *Hasher) Next() uint32 {
	h := x.h
	h = (h ^ (h >> 16)) * m1
	h = (h ^ (h >> 13)) * m2
	h ^= h >> 16
	x.h = h
	return h
}
