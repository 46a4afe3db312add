package main

import "github.com/gordian-engine/zkguest"

// sampleGuest returns the built-in guest program:
// it commits payload and halts with exitCode.
func sampleGuest(payload []byte, exitCode uint8) func(rt *zkguest.Runtime) {
	return func(rt *zkguest.Runtime) {
		rt.Main(func(rt *zkguest.Runtime, a *zkguest.Accumulator) uint8 {
			rt.Commit(a, payload)
			return exitCode
		})
	}
}
