// Package zkguest contains the guest-side runtime for a zero-knowledge virtual machine.
//
// A guest program creates one [Accumulator],
// calls [*Runtime.Commit] any number of times,
// and finishes with [*Runtime.Exit].
// Every committed byte is both absorbed into the accumulator
// and written to the journal channel,
// so a verifier hashing the journal it observed
// reproduces the journal digest embedded in the halt output.
//
// The hash primitive and the system calls are supplied by the caller,
// through [zghash.Impl] and [zgsys.Platform] respectively.
package zkguest
