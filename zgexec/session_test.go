package zgexec_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/gordian-engine/zkguest"
	"github.com/gordian-engine/zkguest/internal/dtest"
	"github.com/gordian-engine/zkguest/zgexec"
	"github.com/gordian-engine/zkguest/zghash/zgsha256"
	"github.com/stretchr/testify/require"
)

func validSession(t *testing.T) *zgexec.Session {
	t.Helper()

	impl := zgsha256.Impl{}
	journal := dtest.RandomDataForTest(t, 3000)
	return &zgexec.Session{
		ExitCode: 4,
		Output:   zkguest.Output{Journal: impl.HashBytes(journal)}.Words(impl),
		Journal:  journal,
		Stdout:   bytes.Repeat([]byte("log line\n"), 50),
	}
}

func TestSession_Verify(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		s := validSession(t)
		require.NoError(t, s.Verify(zgsha256.Impl{}))
		require.Equal(t, zgsha256.Impl{}.HashBytes(s.Journal), s.JournalDigest(zgsha256.Impl{}))
	})

	t.Run("tampered journal", func(t *testing.T) {
		t.Parallel()

		s := validSession(t)
		s.Journal[0] ^= 1
		require.ErrorIs(t, s.Verify(zgsha256.Impl{}), zgexec.ErrOutputMismatch)
	})

	t.Run("tampered output", func(t *testing.T) {
		t.Parallel()

		s := validSession(t)
		s.Output[7]++
		require.ErrorIs(t, s.Verify(zgsha256.Impl{}), zgexec.ErrOutputMismatch)
	})

	t.Run("side channels are not bound", func(t *testing.T) {
		t.Parallel()

		s := validSession(t)
		s.Stdout = []byte("anything")
		s.Stderr = []byte("else")
		require.NoError(t, s.Verify(zgsha256.Impl{}))
	})
}

func TestSession_binaryEncoding(t *testing.T) {
	t.Parallel()

	s := validSession(t)

	b, err := s.MarshalBinary()
	require.NoError(t, err)

	// Repetitive stdout compresses well.
	require.Less(t, len(b), 4+1+32+len(s.Journal)+len(s.Stdout))

	var got zgexec.Session
	require.NoError(t, got.UnmarshalBinary(b))
	require.Equal(t, *s, got)
	require.NoError(t, got.Verify(zgsha256.Impl{}))

	t.Run("bad magic", func(t *testing.T) {
		t.Parallel()

		bad := append([]byte(nil), b...)
		bad[0] = 'x'
		require.Error(t, new(zgexec.Session).UnmarshalBinary(bad))
	})

	t.Run("truncated", func(t *testing.T) {
		t.Parallel()

		for _, n := range []int{0, 3, 10, len(b) - 1} {
			require.Error(t, new(zgexec.Session).UnmarshalBinary(b[:n]), "length %d", n)
		}
	})

	t.Run("trailing bytes", func(t *testing.T) {
		t.Parallel()

		extra := append(append([]byte(nil), b...), 0)
		require.Error(t, new(zgexec.Session).UnmarshalBinary(extra))
	})
}

func TestSession_UnmarshalBinary_sectionLimit(t *testing.T) {
	t.Parallel()

	// Header, exit code, and zeroed output words.
	header := []byte{'z', 'g', 's', 1, 0}
	header = append(header, make([]byte, 32)...)

	t.Run("declared length over limit", func(t *testing.T) {
		t.Parallel()

		// A snappy block is a uvarint decoded length and then the body.
		// This one claims 1 GiB with a single body byte.
		enc := binary.AppendUvarint(nil, 1<<30)
		enc = append(enc, 0)

		data := append([]byte(nil), header...)
		data = binary.AppendUvarint(data, uint64(len(enc)))
		data = append(data, enc...)

		err := new(zgexec.Session).UnmarshalBinary(data)
		require.ErrorIs(t, err, zgexec.ErrSectionTooLarge)
	})

	t.Run("custom limit", func(t *testing.T) {
		t.Parallel()

		s := &zgexec.Session{Journal: bytes.Repeat([]byte{'j'}, 100)}
		b, err := s.MarshalBinary()
		require.NoError(t, err)

		err = new(zgexec.Session).UnmarshalBinaryLimit(b, 99)
		require.ErrorIs(t, err, zgexec.ErrSectionTooLarge)

		var got zgexec.Session
		require.NoError(t, got.UnmarshalBinaryLimit(b, 100))
		require.Equal(t, s.Journal, got.Journal)
	})
}
