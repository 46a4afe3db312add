// Package dtest contains helpers shared by tests across the module.
package dtest

import (
	"crypto/sha256"
	"math/rand/v2"
	"testing"
)

// newTestRand returns a ChaCha8 source seeded from the test name,
// so every test gets stable data that differs from other tests.
func newTestRand(t *testing.T, label string) *rand.ChaCha8 {
	// A SHA-256 digest is exactly the ChaCha8 seed size.
	return rand.NewChaCha8(sha256.Sum256([]byte(t.Name() + "\x00" + label)))
}

// RandomDataForTest returns sz pseudorandom bytes
// derived from the test name.
func RandomDataForTest(t *testing.T, sz int) []byte {
	out := make([]byte, sz)
	if _, err := newTestRand(t, "data").Read(out); err != nil {
		panic(err)
	}
	return out
}

// RandomChunksForTest splits data into consecutive non-empty chunks
// of pseudorandom length no greater than maxChunk.
// Concatenating the chunks always yields data.
func RandomChunksForTest(t *testing.T, data []byte, maxChunk int) [][]byte {
	if maxChunk < 1 {
		panic("BUG: maxChunk must be positive")
	}

	r := rand.New(newTestRand(t, "chunks"))
	var chunks [][]byte
	for len(data) > 0 {
		n := 1 + r.IntN(maxChunk)
		if n > len(data) {
			n = len(data)
		}
		chunks = append(chunks, data[:n])
		data = data[n:]
	}
	return chunks
}
