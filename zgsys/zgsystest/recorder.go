// Package zgsystest contains a [zgsys.Platform] for tests
// that records everything a guest emits.
package zgsystest

import (
	"bytes"
	"runtime"

	"github.com/gordian-engine/zkguest/zgsys"
)

// Recorder is a [zgsys.Platform] that keeps every write in memory
// and records the halt instead of ending the process.
//
// Recorder is not safe for concurrent use.
type Recorder struct {
	Channels map[zgsys.Fileno]*bytes.Buffer

	Halted   bool
	ExitCode uint8
	Output   zgsys.OutputWords

	// If set, Halt calls runtime.Goexit after recording,
	// so that code after the guest's exit call is never reached.
	// Only use this when the guest runs in its own goroutine,
	// for instance through [Recorder.RunGuest].
	GoexitOnHalt bool
}

// NewRecorder returns an initialized Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		Channels: make(map[zgsys.Fileno]*bytes.Buffer),
	}
}

func (r *Recorder) Write(fd zgsys.Fileno, p []byte) {
	b := r.Channels[fd]
	if b == nil {
		b = new(bytes.Buffer)
		r.Channels[fd] = b
	}
	_, _ = b.Write(p)
}

func (r *Recorder) Halt(code uint8, out zgsys.OutputWords) {
	if r.Halted {
		panic("BUG: Recorder halted twice")
	}

	r.Halted = true
	r.ExitCode = code
	r.Output = out

	if r.GoexitOnHalt {
		runtime.Goexit()
	}
}

// Bytes returns everything written to fd so far.
func (r *Recorder) Bytes(fd zgsys.Fileno) []byte {
	b := r.Channels[fd]
	if b == nil {
		return nil
	}
	return b.Bytes()
}

// Journal is shorthand for r.Bytes(zgsys.FilenoJournal).
func (r *Recorder) Journal() []byte {
	return r.Bytes(zgsys.FilenoJournal)
}

// RunGuest runs fn in a new goroutine against r
// with GoexitOnHalt set,
// and blocks until fn either returns or halts.
// If fn panics, RunGuest panics with the same value
// on the calling goroutine.
func (r *Recorder) RunGuest(fn func()) {
	r.GoexitOnHalt = true

	var panicked bool
	var panicVal any
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() {
			// recover is nil both for a clean return and for Goexit.
			if v := recover(); v != nil {
				panicked = true
				panicVal = v
			}
		}()
		fn()
	}()
	<-done

	if panicked {
		panic(panicVal)
	}
}
