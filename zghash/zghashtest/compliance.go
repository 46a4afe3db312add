package zghashtest

import (
	"testing"

	"github.com/gordian-engine/zkguest/internal/dtest"
	"github.com/gordian-engine/zkguest/zghash"
	"github.com/stretchr/testify/require"
)

type ImplFactory func() zghash.Impl

// TestImplCompliance runs a set of subtests
// that every [zghash.Impl] is expected to pass.
func TestImplCompliance(t *testing.T, f ImplFactory) {
	t.Run("finalize is deterministic", func(t *testing.T) {
		t.Parallel()

		impl := f()
		data := dtest.RandomDataForTest(t, 1024)

		h1 := impl.New()
		h1.Update(data)

		h2 := impl.New()
		h2.Update(data)

		require.Equal(t, h1.Finalize(), h2.Finalize())
	})

	t.Run("streaming matches one-shot", func(t *testing.T) {
		t.Parallel()

		impl := f()
		data := dtest.RandomDataForTest(t, 1500)

		h := impl.New()
		h.Update(data[:1])
		h.Update(data[1:700])
		h.Update(nil)
		h.Update(data[700:])

		require.Equal(t, impl.HashBytes(data), h.Finalize())
	})

	t.Run("chunking does not matter", func(t *testing.T) {
		t.Parallel()

		impl := f()

		h1 := impl.New()
		h1.Update([]byte("ab"))
		h1.Update([]byte("c"))

		h2 := impl.New()
		h2.Update([]byte("a"))
		h2.Update([]byte("bc"))

		require.Equal(t, h1.Finalize(), h2.Finalize())
	})

	t.Run("order matters", func(t *testing.T) {
		t.Parallel()

		impl := f()

		h1 := impl.New()
		h1.Update([]byte("ab"))
		h1.Update([]byte("c"))

		h2 := impl.New()
		h2.Update([]byte("c"))
		h2.Update([]byte("ab"))

		require.NotEqual(t, h1.Finalize(), h2.Finalize())
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		impl := f()

		h := impl.New()
		got := h.Finalize()
		require.Equal(t, impl.HashBytes(nil), got)
		require.False(t, got.IsZero())
	})

	t.Run("single byte change", func(t *testing.T) {
		t.Parallel()

		impl := f()
		data := dtest.RandomDataForTest(t, 64)
		d1 := impl.HashBytes(data)

		data[17] ^= 0x01
		d2 := impl.HashBytes(data)

		require.NotEqual(t, d1, d2)
	})
}
