package seedrand

import (
	"golang.org/x/sys/cpu"

	"github.com/moontrade/numx/pkg/spinlock"
	"github.com/moontrade/numx/pkg/xmur3"
)

// Locked is a Rand whose steps are serialised, for streams shared between
// goroutines. Interleaving across callers is arbitrary but the multiset of
// values handed out matches the single-threaded sequence.
type Locked struct {
	mu spinlock.Mutex
	_  cpu.CacheLinePad
	r  Rand
}

func NewLocked(seed string) *Locked {
	l := &Locked{}
	l.r.h = xmur3.New(seed)
	return l
}

func LockedFromAny(seed any) (*Locked, error) {
	s, err := SeedString(seed)
	if err != nil {
		return nil, err
	}
	return NewLocked(s), nil
}

func (l *Locked) Uint32() uint32 {
	l.mu.Lock()
	v := l.r.Uint32()
	l.mu.Unlock()
	return v
}

// Uint64 takes both words under one lock acquisition.
func (l *Locked) Uint64() uint64 {
	l.mu.Lock()
	v := l.r.Uint64()
	l.mu.Unlock()
	return v
}

func (l *Locked) Float64() float64 {
	l.mu.Lock()
	v := l.r.Float64()
	l.mu.Unlock()
	return v
}
