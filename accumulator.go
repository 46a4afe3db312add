package zkguest

import (
	"github.com/gordian-engine/zkguest/zgdigest"
	"github.com/gordian-engine/zkguest/zghash"
)

// AccumulatorState is the lifecycle position of an [Accumulator].
type AccumulatorState uint8

const (
	// Live accumulators own a hash state and accept updates.
	Live AccumulatorState = iota

	// Spent accumulators have been finalized and own nothing.
	Spent

	// Closed accumulators have been released. This state is terminal.
	Closed
)

func (s AccumulatorState) String() string {
	switch s {
	case Live:
		return "live"
	case Spent:
		return "spent"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// Accumulator is a streaming hash over every byte committed by a guest.
//
// The zero value is not usable; create one with [NewAccumulator]
// or [*Runtime.NewAccumulator].
// A nil *Accumulator is treated as the null handle:
// Update and Close are no-ops and Finalize reports no digest.
//
// Accumulator is not safe for concurrent use.
type Accumulator struct {
	h     zghash.Hasher
	state AccumulatorState
}

// NewAccumulator returns a live accumulator with no bytes absorbed.
func NewAccumulator(impl zghash.Impl) *Accumulator {
	return &Accumulator{h: impl.New()}
}

// WithAccumulator creates an accumulator, passes it to fn,
// and closes it when fn finishes,
// whether fn returns, panics, or calls runtime.Goexit.
func WithAccumulator(impl zghash.Impl, fn func(a *Accumulator)) {
	a := NewAccumulator(impl)
	defer a.Close()
	fn(a)
}

// State returns a's current lifecycle state.
// A nil accumulator reports [Closed].
func (a *Accumulator) State() AccumulatorState {
	if a == nil {
		return Closed
	}
	return a.state
}

// Update absorbs p into the hash state.
//
// Update on a nil accumulator, or with a nil p, does nothing.
// Update panics with an [AccumulatorStateError]
// if a has been finalized or closed.
func (a *Accumulator) Update(p []byte) {
	if a == nil || p == nil {
		return
	}
	a.mustBeLive("update")
	a.h.Update(p)
}

// Finalize consumes the hash state and returns its digest.
// Afterwards a is [Spent]; it must still be closed.
//
// On a nil accumulator Finalize returns the zero digest and false.
// Finalize panics with an [AccumulatorStateError]
// if a has already been finalized or closed,
// so a digest is produced at most once per accumulator.
func (a *Accumulator) Finalize() (zgdigest.Digest, bool) {
	if a == nil {
		return zgdigest.Zero, false
	}
	a.mustBeLive("finalize")

	h := a.h
	a.h = nil
	a.state = Spent
	return h.Finalize(), true
}

// Close releases a's hash state.
// Close is valid in any state, and it is a no-op
// on a nil or already closed accumulator.
func (a *Accumulator) Close() {
	if a == nil {
		return
	}
	a.h = nil
	a.state = Closed
}

func (a *Accumulator) mustBeLive(op string) {
	if a.state != Live {
		panic(AccumulatorStateError{Op: op, State: a.state})
	}
}
