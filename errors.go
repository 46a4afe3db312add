package zkguest

import "errors"

var (
	// ErrSpent is the underlying error when an [Accumulator]
	// is updated or finalized after it was already finalized.
	ErrSpent = errors.New("accumulator already finalized")

	// ErrClosed is the underlying error when an [Accumulator]
	// is used after [*Accumulator.Close].
	ErrClosed = errors.New("accumulator already closed")

	// ErrHaltReturned is the panic value from [*Runtime.Exit]
	// if the platform's Halt call returns.
	ErrHaltReturned = errors.New("BUG: platform halt returned")
)

// AccumulatorStateError is the panic value
// when an [Accumulator] operation is attempted in an invalid state.
// It unwraps to [ErrSpent] or [ErrClosed].
type AccumulatorStateError struct {
	Op    string
	State AccumulatorState
}

func (e AccumulatorStateError) Error() string {
	return "cannot " + e.Op + " accumulator in state " + e.State.String()
}

func (e AccumulatorStateError) Unwrap() error {
	switch e.State {
	case Spent:
		return ErrSpent
	case Closed:
		return ErrClosed
	default:
		return nil
	}
}
