// Package ring implements a bounded, lock-free, single-producer /
// multiple-consumer queue of fixed-size handles.
//
// The algorithm is the Vyukov sequenced-slot ring: each slot carries an
// atomic sequence number that gates visibility of the slot's payload. There
// is exactly one producer, so Push never needs a CAS; Pop is called from
// any number of goroutines and CASes the shared read cursor.
package ring

import (
	"runtime"
	"sync/atomic"
)

type slot[T any] struct {
	sequence atomic.Uint64
	value    T
}

// Ring is a bounded SPMC queue of capacity-many slots, where capacity is
// rounded up to the next power of two (minimum 2). T should be a small,
// trivially copyable handle, typically a pointer.
type Ring[T any] struct {
	mask  uint64
	slots []slot[T]

	writeCursor atomic.Uint64 // producer-owned index of the next slot to publish
	readCursor  atomic.Uint64 // shared index of the next slot to claim
}

// New builds a Ring with room for at least capacity items.
func New[T any](capacity int) *Ring[T] {
	if capacity < 2 {
		capacity = 2
	}
	n := nextPow2(uint64(capacity))

	r := &Ring[T]{
		mask:  n - 1,
		slots: make([]slot[T], n),
	}
	for i := range r.slots {
		r.slots[i].sequence.Store(uint64(i))
	}
	return r
}

func nextPow2(v uint64) uint64 {
	if v == 0 {
		return 1
	}
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v |= v >> 32
	return v + 1
}

// Cap returns the number of slots in the ring.
func (r *Ring[T]) Cap() int {
	return len(r.slots)
}

// TryPush publishes item to the ring. Returns false if the ring is full.
// Must be called from a single goroutine only.
func (r *Ring[T]) TryPush(item T) bool {
	pos := r.writeCursor.Load()
	s := &r.slots[pos&r.mask]

	if s.sequence.Load() != pos {
		return false // full
	}

	s.value = item
	s.sequence.Store(pos + 1)
	r.writeCursor.Store(pos + 1)
	return true
}

// TryPop claims the next published item. Safe to call from any number of
// goroutines concurrently. Returns false if the ring is empty.
func (r *Ring[T]) TryPop() (T, bool) {
	for {
		pos := r.readCursor.Load()
		s := &r.slots[pos&r.mask]
		seq := s.sequence.Load()

		switch {
		case seq == pos+1:
			if r.readCursor.CompareAndSwap(pos, pos+1) {
				v := s.value
				var zero T
				s.value = zero
				s.sequence.Store(pos + uint64(len(r.slots)))
				return v, true
			}
			// another consumer won the race; retry
		case seq < pos+1:
			var zero T
			return zero, false // empty
		default:
			// the slot was already claimed and released, so pos is stale
			// (the read cursor has moved on); reload and retry
		}
	}
}

// Backoff is a small progressive spin helper for the hot-loop relax hint
// the ring's producer and consumers use on a full/empty result. Go has no
// direct CPU pause intrinsic exposed to user code, so this substitutes
// runtime.Gosched after a short busy spin.
type Backoff struct {
	n int
}

// Spin performs one step of backoff. Call it in a loop each time TryPush
// or TryPop reports full/empty.
func (b *Backoff) Spin() {
	if b.n < 32 {
		b.n++
		for i := 0; i < b.n; i++ {
		}
		return
	}
	runtime.Gosched()
}

// Reset clears accumulated backoff state, used once work resumes.
func (b *Backoff) Reset() {
	b.n = 0
}
