package main

import (
	"testing"

	"github.com/gordian-engine/zkguest"
	"github.com/gordian-engine/zkguest/internal/zghandle"
	"github.com/gordian-engine/zkguest/zghash/zgsha256"
	"github.com/gordian-engine/zkguest/zgsys/zgsystest"
	"github.com/stretchr/testify/require"
)

func TestGuestABI_sampleGuest(t *testing.T) {
	t.Parallel()

	impl := zgsha256.Impl{}
	r := zgsystest.NewRecorder()
	g := newGuestABI(r, impl)

	r.RunGuest(func() {
		h := g.initAccumulator()
		g.commit(h, []byte{0, 1, 2, 3})
		g.exit(h, 0)
	})

	require.True(t, r.Halted)
	require.Zero(t, r.ExitCode)
	require.Equal(t, []byte{0, 1, 2, 3}, r.Journal())

	want := zkguest.Output{Journal: impl.HashBytes([]byte{0, 1, 2, 3})}
	require.Equal(t, want.Words(impl), r.Output)
}

func TestGuestABI_hashLifecycle(t *testing.T) {
	t.Parallel()

	impl := zgsha256.Impl{}
	g := newGuestABI(zgsystest.NewRecorder(), impl)

	h := g.initAccumulator()
	require.NotEqual(t, zghandle.Null, h)

	g.update(h, []byte("hello"))
	g.update(h, nil)
	g.update(h, []byte("world"))

	d, ok := g.finalize(h)
	require.True(t, ok)
	require.Equal(t, impl.HashBytes([]byte("helloworld")), d)

	// The handle survives finalize until freed.
	require.Equal(t, 1, g.accs.Len())
	g.free(h)
	require.Zero(t, g.accs.Len())

	// Freed handles resolve to null.
	require.NotPanics(t, func() {
		g.update(h, []byte("late"))
		g.free(h)
	})
	_, ok = g.finalize(h)
	require.False(t, ok)
}

func TestGuestABI_nullHandle(t *testing.T) {
	t.Parallel()

	g := newGuestABI(zgsystest.NewRecorder(), zgsha256.Impl{})

	require.NotPanics(t, func() {
		g.update(zghandle.Null, []byte("x"))
		g.free(zghandle.Null)
	})

	_, ok := g.finalize(zghandle.Null)
	require.False(t, ok)
}

func TestGuestABI_doubleFinalize(t *testing.T) {
	t.Parallel()

	g := newGuestABI(zgsystest.NewRecorder(), zgsha256.Impl{})

	h := g.initAccumulator()
	defer g.free(h)

	_, ok := g.finalize(h)
	require.True(t, ok)

	require.Panics(t, func() {
		_, _ = g.finalize(h)
	})
}

func TestGuestABI_independentHandles(t *testing.T) {
	t.Parallel()

	impl := zgsha256.Impl{}
	g := newGuestABI(zgsystest.NewRecorder(), impl)

	h1 := g.initAccumulator()
	h2 := g.initAccumulator()
	defer g.free(h1)
	defer g.free(h2)

	g.update(h1, []byte("one"))
	g.update(h2, []byte("two"))

	d1, _ := g.finalize(h1)
	d2, _ := g.finalize(h2)
	require.Equal(t, impl.HashBytes([]byte("one")), d1)
	require.Equal(t, impl.HashBytes([]byte("two")), d2)
}

func TestGuestABI_commitFreedHandle(t *testing.T) {
	t.Parallel()

	r := zgsystest.NewRecorder()
	g := newGuestABI(r, zgsha256.Impl{})

	h := g.initAccumulator()
	g.commit(h, []byte("kept"))
	g.free(h)

	g.commit(h, []byte("dropped"))
	g.commit(zghandle.Null, []byte("dropped"))

	require.Equal(t, "kept", string(r.Journal()))
}
