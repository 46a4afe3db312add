package zgdigest_test

import (
	"testing"

	"github.com/gordian-engine/zkguest/zgdigest"
	"github.com/stretchr/testify/require"
)

func TestDigest_Words(t *testing.T) {
	t.Parallel()

	var d zgdigest.Digest
	for i := range d {
		d[i] = byte(i)
	}

	w := d.Words()
	require.Equal(t, uint32(0x03020100), w[0])
	require.Equal(t, uint32(0x1f1e1d1c), w[7])

	require.Equal(t, d, zgdigest.FromWords(w))
}

func TestDigest_Zero(t *testing.T) {
	t.Parallel()

	require.True(t, zgdigest.Zero.IsZero())
	require.Equal(t, [zgdigest.WordCount]uint32{}, zgdigest.Zero.Words())

	d := zgdigest.Digest{31: 1}
	require.False(t, d.IsZero())
}

func TestParseHex(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		const s = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
		d, err := zgdigest.ParseHex(s)
		require.NoError(t, err)
		require.Equal(t, s, d.String())

		text, err := d.MarshalText()
		require.NoError(t, err)

		var got zgdigest.Digest
		require.NoError(t, got.UnmarshalText(text))
		require.Equal(t, d, got)
	})

	t.Run("wrong length", func(t *testing.T) {
		t.Parallel()

		_, err := zgdigest.ParseHex("abcd")
		require.Error(t, err)
	})

	t.Run("bad characters", func(t *testing.T) {
		t.Parallel()

		_, err := zgdigest.ParseHex(
			"zz" + "b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		)
		require.Error(t, err)
	})
}
