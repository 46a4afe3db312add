package main

import (
	"unsafe"

	"github.com/gordian-engine/zkguest/zgdigest"
)

// digestWordsSize is the byte size of the word buffer sha256_finalize returns.
const digestWordsSize = 4 * zgdigest.WordCount

// bytesAt views n bytes of C memory at ptr as a slice.
// A nil ptr is the NULL pointer and yields a nil slice,
// which every operation treats as a no-op.
func bytesAt(ptr unsafe.Pointer, n uint32) []byte {
	if ptr == nil {
		return nil
	}
	return unsafe.Slice((*byte)(ptr), int(n))
}

// putDigestWords writes d as 8 little-endian words
// into the digestWordsSize bytes of C memory at dst.
func putDigestWords(dst unsafe.Pointer, d zgdigest.Digest) {
	words := (*[zgdigest.WordCount]uint32)(dst)
	*words = d.Words()
}
