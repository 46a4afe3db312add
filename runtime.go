package zkguest

import (
	"io"

	"github.com/gordian-engine/zkguest/zghash"
	"github.com/gordian-engine/zkguest/zgsys"
)

// Runtime binds the hash primitive to the platform's system calls.
type Runtime struct {
	p    zgsys.Platform
	impl zghash.Impl
}

// NewRuntime returns a Runtime using the given platform and hash primitive.
func NewRuntime(p zgsys.Platform, impl zghash.Impl) *Runtime {
	if p == nil {
		panic("BUG: NewRuntime requires a non-nil platform")
	}
	if impl == nil {
		panic("BUG: NewRuntime requires a non-nil hash implementation")
	}
	return &Runtime{p: p, impl: impl}
}

// Impl returns the hash primitive rt was created with.
func (rt *Runtime) Impl() zghash.Impl {
	return rt.impl
}

// NewAccumulator returns a fresh accumulator using rt's hash primitive.
func (rt *Runtime) NewAccumulator() *Accumulator {
	return NewAccumulator(rt.impl)
}

// Commit absorbs p into a and then writes the same p to the journal channel.
//
// Both effects read the same slice,
// so the journal and the digest cannot observe different bytes.
// The hash sees p first; if a is not live, Commit panics
// before anything reaches the journal.
// Commit through a nil accumulator is a no-op:
// nothing is hashed, so nothing may reach the journal.
func (rt *Runtime) Commit(a *Accumulator, p []byte) {
	if a == nil {
		return
	}
	a.Update(p)
	rt.p.Write(zgsys.FilenoJournal, p)
}

// Journal returns an io.Writer whose writes are commits to a.
// This is convenient for committing with fmt or an encoder.
func (rt *Runtime) Journal(a *Accumulator) io.Writer {
	return journalWriter{rt: rt, a: a}
}

// Write writes p to the given output channel without committing it.
// Use it for diagnostic output a verifier does not need.
//
// Write panics if fd is the journal,
// since journal bytes must go through [*Runtime.Commit].
func (rt *Runtime) Write(fd zgsys.Fileno, p []byte) {
	if fd == zgsys.FilenoJournal {
		panic("BUG: journal writes must go through Commit")
	}
	rt.p.Write(fd, p)
}

// Stdout returns an io.Writer for the guest's stdout channel.
func (rt *Runtime) Stdout() io.Writer {
	return channelWriter{rt: rt, fd: zgsys.FilenoStdout}
}

// Stderr returns an io.Writer for the guest's stderr channel.
func (rt *Runtime) Stderr() io.Writer {
	return channelWriter{rt: rt, fd: zgsys.FilenoStderr}
}

// Exit finalizes a, builds the [Output] record with an empty assumptions set,
// and halts with code.
//
// Exit does not return.
// It panics if a is nil, since there is no journal digest to bind.
// Anything not committed before Exit is invisible to a verifier.
func (rt *Runtime) Exit(a *Accumulator, code uint8) {
	journal, ok := a.Finalize()
	if !ok {
		panic("BUG: Exit requires a non-nil accumulator")
	}
	out := Output{Journal: journal}

	rt.p.Halt(code, out.Words(rt.impl))
	panic(ErrHaltReturned)
}

// Main runs fn with a fresh accumulator
// and exits with the code fn returns.
// Like Exit, Main does not return.
func (rt *Runtime) Main(fn func(rt *Runtime, a *Accumulator) uint8) {
	a := rt.NewAccumulator()
	rt.Exit(a, fn(rt, a))
}

type journalWriter struct {
	rt *Runtime
	a  *Accumulator
}

func (w journalWriter) Write(p []byte) (int, error) {
	w.rt.Commit(w.a, p)
	return len(p), nil
}

type channelWriter struct {
	rt *Runtime
	fd zgsys.Fileno
}

func (w channelWriter) Write(p []byte) (int, error) {
	w.rt.Write(w.fd, p)
	return len(p), nil
}
