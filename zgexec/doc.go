// Package zgexec runs Go guest programs on the host
// against a platform that records their output.
//
// It stands in for the zkVM when developing or testing guests:
// an [Executor] captures the journal, the stdout and stderr channels,
// and the halt output of a guest into a [Session],
// and [*Session.Verify] checks the journal against the halt output
// the same way a verifier of a real receipt would.
package zgexec
