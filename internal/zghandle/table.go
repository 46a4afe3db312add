// Package zghandle maps opaque integer handles to Go values.
//
// Go pointers cannot be handed to C and held there,
// so the C ABI gives guests a small integer instead,
// and resolves it through a [Table] on every call.
package zghandle

import (
	"math"
	"sync"

	"github.com/bits-and-blooms/bitset"
)

// Handle is an opaque reference to a value in a [Table].
// The zero Handle is the null handle and never refers to a value.
type Handle uint32

// Null is the handle that never refers to a value.
const Null Handle = 0

// Table is a set of live values addressed by [Handle].
//
// Slots freed by [*Table.Remove] are reused by later inserts,
// lowest slot first.
// Table is safe for concurrent use.
type Table[T any] struct {
	mu sync.Mutex

	// Bit i is set when vals[i] holds a live value
	// reachable through Handle(i+1).
	occupied *bitset.BitSet

	vals []T
}

// NewTable returns an empty table
// with room for sizeHint values before growing.
func NewTable[T any](sizeHint int) *Table[T] {
	return &Table[T]{
		occupied: bitset.New(uint(sizeHint)),
		vals:     make([]T, 0, sizeHint),
	}
}

// Insert stores v and returns a new non-null handle referring to it.
//
// Insert panics if the table already holds [math.MaxUint32] values.
func (t *Table[T]) Insert(v T) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx, ok := t.occupied.NextClear(0)
	if !ok || idx >= uint(len(t.vals)) {
		idx = uint(len(t.vals))
		if idx >= math.MaxUint32 {
			panic("BUG: handle table exhausted")
		}
		var zero T
		t.vals = append(t.vals, zero)
	}

	t.occupied.Set(idx)
	t.vals[idx] = v
	return Handle(idx + 1)
}

// Get returns the value for h.
// The boolean result is false for the null handle,
// for handles never issued, and for removed handles.
func (t *Table[T]) Get(h Handle) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx, ok := t.index(h)
	if !ok {
		var zero T
		return zero, false
	}
	return t.vals[idx], true
}

// Remove deletes h from the table and returns the value it referred to.
// Removing the null handle or an unknown handle is a no-op
// that returns false.
func (t *Table[T]) Remove(h Handle) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var zero T
	idx, ok := t.index(h)
	if !ok {
		return zero, false
	}

	v := t.vals[idx]
	t.vals[idx] = zero
	t.occupied.Clear(idx)
	return v, true
}

// Len reports the number of live handles.
func (t *Table[T]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return int(t.occupied.Count())
}

func (t *Table[T]) index(h Handle) (uint, bool) {
	if h == Null {
		return 0, false
	}
	idx := uint(h - 1)
	if idx >= uint(len(t.vals)) || !t.occupied.Test(idx) {
		return 0, false
	}
	return idx, true
}
