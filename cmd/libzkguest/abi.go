package main

import (
	"github.com/gordian-engine/zkguest"
	"github.com/gordian-engine/zkguest/internal/zghandle"
	"github.com/gordian-engine/zkguest/zgdigest"
	"github.com/gordian-engine/zkguest/zghash"
	"github.com/gordian-engine/zkguest/zgsys"
)

// guestABI holds the state behind the exported C functions.
// The C side only ever sees handles into accs.
type guestABI struct {
	rt   *zkguest.Runtime
	accs *zghandle.Table[*zkguest.Accumulator]
}

func newGuestABI(p zgsys.Platform, impl zghash.Impl) *guestABI {
	return &guestABI{
		rt: zkguest.NewRuntime(p, impl),

		// Guests normally hold a single accumulator.
		accs: zghandle.NewTable[*zkguest.Accumulator](1),
	}
}

func (g *guestABI) initAccumulator() zghandle.Handle {
	return g.accs.Insert(g.rt.NewAccumulator())
}

// lookup resolves h, returning nil for the null handle
// and for handles that were never issued or already freed.
// A nil accumulator turns every operation below into its null-handle no-op.
func (g *guestABI) lookup(h zghandle.Handle) *zkguest.Accumulator {
	a, _ := g.accs.Get(h)
	return a
}

func (g *guestABI) update(h zghandle.Handle, p []byte) {
	g.lookup(h).Update(p)
}

func (g *guestABI) finalize(h zghandle.Handle) (zgdigest.Digest, bool) {
	return g.lookup(h).Finalize()
}

func (g *guestABI) free(h zghandle.Handle) {
	a, ok := g.accs.Remove(h)
	if !ok {
		return
	}
	a.Close()
}

func (g *guestABI) commit(h zghandle.Handle, p []byte) {
	g.rt.Commit(g.lookup(h), p)
}

func (g *guestABI) exit(h zghandle.Handle, code uint8) {
	g.rt.Exit(g.lookup(h), code)
}
