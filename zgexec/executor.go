package zgexec

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"runtime/debug"

	"github.com/gordian-engine/zkguest"
	"github.com/gordian-engine/zkguest/zghash"
	"github.com/gordian-engine/zkguest/zgsys"
)

// Guest is a guest program written in Go.
// It is expected to finish by calling [*zkguest.Runtime.Exit]
// (directly or through [*zkguest.Runtime.Main]).
type Guest func(rt *zkguest.Runtime)

// ExecutorConfig is the configuration for [NewExecutor].
type ExecutorConfig struct {
	// Hash primitive given to the guest runtime,
	// and used by [*Session.Verify].
	Impl zghash.Impl

	// Maximum number of bytes the guest may write to any single channel.
	// Zero means no limit.
	MaxChannelBytes int
}

// validate panics if there are any illegal settings in the configuration.
func (c ExecutorConfig) validate() {
	var panicErrs error

	if c.Impl == nil {
		panicErrs = errors.Join(
			panicErrs,
			errors.New("ExecutorConfig.Impl may not be nil"),
		)
	}

	if c.MaxChannelBytes < 0 {
		panicErrs = errors.Join(
			panicErrs,
			errors.New("ExecutorConfig.MaxChannelBytes must not be negative"),
		)
	}

	if panicErrs != nil {
		panic(panicErrs)
	}
}

// Executor runs [Guest] functions and records their sessions.
type Executor struct {
	log *slog.Logger

	impl     zghash.Impl
	maxBytes int
}

// NewExecutor returns a new Executor.
// It panics if cfg is invalid.
func NewExecutor(log *slog.Logger, cfg ExecutorConfig) *Executor {
	cfg.validate()

	return &Executor{
		log:      log,
		impl:     cfg.Impl,
		maxBytes: cfg.MaxChannelBytes,
	}
}

// Run executes g in a new goroutine and waits for it to halt.
//
// The returned session is only non-nil when the guest halted.
// If ctx is canceled first, Run returns ctx.Err() immediately;
// the guest goroutine is not interrupted,
// since guests have no suspension points.
func (e *Executor) Run(ctx context.Context, g Guest) (*Session, error) {
	p := &recordingPlatform{
		s:        new(Session),
		maxBytes: e.maxBytes,
	}

	result := make(chan error, 1)
	go func() {
		// A halting platform ends this goroutine through runtime.Goexit,
		// which runs deferred calls with recover returning nil.
		// So the result must be reported from a deferred call.
		defer func() {
			result <- guestResult(p, recover())
		}()

		g(zkguest.NewRuntime(p, e.impl))
	}()

	select {
	case <-ctx.Done():
		e.log.Info("Stopped waiting for guest", "cause", context.Cause(ctx))
		return nil, ctx.Err()
	case err := <-result:
		if err != nil {
			e.log.Info("Guest failed", "err", err)
			return nil, err
		}
	}

	e.log.Debug(
		"Guest halted",
		"exit_code", p.s.ExitCode,
		"journal_bytes", len(p.s.Journal),
		"stdout_bytes", len(p.s.Stdout),
		"stderr_bytes", len(p.s.Stderr),
	)
	return p.s, nil
}

// guestResult converts the recovered value of a finished guest goroutine
// into the error for [*Executor.Run].
func guestResult(p *recordingPlatform, r any) error {
	if r == nil {
		if p.halted {
			return nil
		}
		return ErrNoHalt
	}

	if err, ok := r.(error); ok {
		var limitErr ChannelLimitError
		var fdErr UnsupportedChannelError
		if errors.As(err, &limitErr) || errors.As(err, &fdErr) {
			return err
		}
	}

	return GuestPanicError{Value: r, Stack: debug.Stack()}
}

// recordingPlatform is the [zgsys.Platform] given to guests run by an [Executor].
type recordingPlatform struct {
	s *Session

	maxBytes int
	halted   bool
}

func (p *recordingPlatform) Write(fd zgsys.Fileno, b []byte) {
	var dst *[]byte
	switch fd {
	case zgsys.FilenoJournal:
		dst = &p.s.Journal
	case zgsys.FilenoStdout:
		dst = &p.s.Stdout
	case zgsys.FilenoStderr:
		dst = &p.s.Stderr
	default:
		panic(UnsupportedChannelError{Fileno: uint32(fd)})
	}

	if p.maxBytes > 0 && len(*dst)+len(b) > p.maxBytes {
		panic(ChannelLimitError{Channel: fd.String(), Limit: p.maxBytes})
	}
	*dst = append(*dst, b...)
}

func (p *recordingPlatform) Halt(code uint8, out zgsys.OutputWords) {
	if p.halted {
		panic("BUG: guest halted twice")
	}

	p.halted = true
	p.s.ExitCode = code
	p.s.Output = out

	runtime.Goexit()
}
