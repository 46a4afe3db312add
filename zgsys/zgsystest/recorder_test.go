package zgsystest_test

import (
	"testing"

	"github.com/gordian-engine/zkguest/zgsys"
	"github.com/gordian-engine/zkguest/zgsys/zgsystest"
	"github.com/stretchr/testify/require"
)

func TestRecorder_RunGuest(t *testing.T) {
	t.Parallel()

	t.Run("halt stops the guest", func(t *testing.T) {
		t.Parallel()

		r := zgsystest.NewRecorder()
		after := false
		r.RunGuest(func() {
			r.Write(zgsys.FilenoJournal, []byte("j"))
			r.Halt(4, zgsys.OutputWords{1})
			after = true
		})

		require.False(t, after)
		require.True(t, r.Halted)
		require.Equal(t, uint8(4), r.ExitCode)
		require.Equal(t, zgsys.OutputWords{1}, r.Output)
		require.Equal(t, "j", string(r.Journal()))
	})

	t.Run("guest panic reaches the caller", func(t *testing.T) {
		t.Parallel()

		r := zgsystest.NewRecorder()
		require.PanicsWithValue(t, "guest failure", func() {
			r.RunGuest(func() {
				panic("guest failure")
			})
		})
		require.False(t, r.Halted)
	})

	t.Run("return without halt", func(t *testing.T) {
		t.Parallel()

		r := zgsystest.NewRecorder()
		require.NotPanics(t, func() {
			r.RunGuest(func() {})
		})
		require.False(t, r.Halted)
	})
}
