// Package spinlock provides a CAS spin mutex for critical sections that are
// only a handful of instructions long, such as stepping a generator.
package spinlock

import (
	"runtime"
	"sync/atomic"
)

const maxBackoff = 16

// Mutex is a spin lock. The zero value is unlocked. A Mutex must not be
// copied after first use.
type Mutex struct {
	state atomic.Uint32
}

// Lock spins until the lock is acquired, yielding the processor with an
// exponentially growing number of Gosched calls between attempts.
func (m *Mutex) Lock() {
	for backoff := 1; !m.state.CompareAndSwap(0, 1); {
		for i := 0; i < backoff; i++ {
			runtime.Gosched()
		}
		if backoff < maxBackoff {
			backoff <<= 1
		}
	}
}

// TryLock acquires the lock if it is free and reports whether it did.
func (m *Mutex) TryLock() bool {
	return m.state.CompareAndSwap(0, 1)
}

// Unlock releases the lock. Unlocking an unlocked Mutex is a no-op.
func (m *Mutex) Unlock() {
	m.state.Store(0)
}
