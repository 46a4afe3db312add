package zgexec

import (
	"errors"
	"fmt"
)

var (
	// ErrNoHalt is returned from [*Executor.Run]
	// when the guest function returns without halting.
	ErrNoHalt = errors.New("guest returned without halting")

	// ErrOutputMismatch is the underlying error from [*Session.Verify]
	// when the halt output does not bind the recorded journal.
	ErrOutputMismatch = errors.New("halt output does not match journal")

	// ErrSectionTooLarge is the underlying error when decoding a session
	// whose section would decode to more than the allowed size.
	ErrSectionTooLarge = errors.New("session section too large")
)

// GuestPanicError is returned from [*Executor.Run]
// when the guest panics before halting.
type GuestPanicError struct {
	Value any
	Stack []byte
}

func (e GuestPanicError) Error() string {
	return fmt.Sprintf("guest panicked: %v", e.Value)
}

// Unwrap returns the panic value if it was an error,
// so that errors.Is can see accumulator misuse errors.
func (e GuestPanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// ChannelLimitError is returned from [*Executor.Run]
// when the guest writes more than the configured limit to a channel.
type ChannelLimitError struct {
	Channel string
	Limit   int
}

func (e ChannelLimitError) Error() string {
	return fmt.Sprintf("guest exceeded %d-byte limit on channel %s", e.Limit, e.Channel)
}

// UnsupportedChannelError is returned from [*Executor.Run]
// when the guest writes to a file number other than
// stdout, stderr, or the journal.
type UnsupportedChannelError struct {
	Fileno uint32
}

func (e UnsupportedChannelError) Error() string {
	return fmt.Sprintf("guest wrote to unsupported file number %d", e.Fileno)
}
