// Package zgsys describes the system calls the guest runtime depends on.
//
// Inside a real zkVM these are ecalls handled by the prover.
// On a host, [zgsystest.Recorder] and the zgexec package
// provide implementations that capture what the guest emitted.
package zgsys

import "github.com/gordian-engine/zkguest/zgdigest"

// Fileno identifies an output channel for [Platform.Write].
type Fileno uint32

const (
	FilenoStdin   Fileno = 0
	FilenoStdout  Fileno = 1
	FilenoStderr  Fileno = 2
	FilenoJournal Fileno = 3
)

func (f Fileno) String() string {
	switch f {
	case FilenoStdin:
		return "stdin"
	case FilenoStdout:
		return "stdout"
	case FilenoStderr:
		return "stderr"
	case FilenoJournal:
		return "journal"
	default:
		return "unknown"
	}
}

// OutputWords is the fixed-size word sequence handed to [Platform.Halt].
type OutputWords = [zgdigest.WordCount]uint32

// Platform is the pair of system calls the exit protocol uses.
type Platform interface {
	// Write appends p to the channel identified by fd.
	// Implementations must not retain p.
	Write(fd Fileno, p []byte)

	// Halt ends guest execution with the given exit code and output.
	// Halt must not return.
	Halt(code uint8, out OutputWords)
}
