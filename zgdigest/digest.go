// Package zgdigest contains the fixed-size digest value
// shared by the guest runtime, the tagged struct encoder, and the host executor.
package zgdigest

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

const (
	// Size is the number of bytes in a [Digest].
	Size = 32

	// WordCount is the number of 32-bit words in a [Digest].
	WordCount = Size / 4
)

// Digest is the output of finalizing a hash state.
type Digest [Size]byte

// Zero is the all-zero digest.
// The output record uses it to indicate an empty assumptions set.
var Zero Digest

// Words returns the digest as little-endian 32-bit words,
// which is how the zkVM represents a digest in registers and in the halt output.
func (d Digest) Words() [WordCount]uint32 {
	var w [WordCount]uint32
	for i := range w {
		w[i] = binary.LittleEndian.Uint32(d[4*i:])
	}
	return w
}

// FromWords is the inverse of [Digest.Words].
func FromWords(w [WordCount]uint32) Digest {
	var d Digest
	for i, x := range w {
		binary.LittleEndian.PutUint32(d[4*i:], x)
	}
	return d
}

// IsZero reports whether d is the [Zero] digest.
func (d Digest) IsZero() bool {
	return d == Zero
}

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// MarshalText encodes d as lowercase hex.
func (d Digest) MarshalText() ([]byte, error) {
	out := make([]byte, hex.EncodedLen(Size))
	hex.Encode(out, d[:])
	return out, nil
}

// UnmarshalText decodes a hex string produced by [Digest.MarshalText].
func (d *Digest) UnmarshalText(text []byte) error {
	p, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*d = p
	return nil
}

// ParseHex parses a 64-character hex string into a Digest.
func ParseHex(s string) (Digest, error) {
	var d Digest
	if len(s) != hex.EncodedLen(Size) {
		return d, fmt.Errorf(
			"digest hex must be %d characters (got %d)",
			hex.EncodedLen(Size), len(s),
		)
	}
	if _, err := hex.Decode(d[:], []byte(s)); err != nil {
		return d, fmt.Errorf("failed to decode digest hex: %w", err)
	}
	return d, nil
}
