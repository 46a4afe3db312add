// Package zgtag encodes tagged structures:
// a named tag plus an ordered list of child digests and data words,
// hashed into a single digest.
//
// The encoding is
//
//	H( H(tag) || down[0] || ... || down[n-1] || LE32(data[0]) || ... || LE16(n) )
//
// where H is the [zghash.Impl] in use.
// The trailing child count keeps structures with different
// numbers of children from colliding.
package zgtag

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gordian-engine/zkguest/zgdigest"
	"github.com/gordian-engine/zkguest/zghash"
)

// Struct returns the digest of the tagged structure
// described by tag, down, and data.
//
// Struct panics if there are more than [math.MaxUint16] children.
func Struct(impl zghash.Impl, tag string, down []zgdigest.Digest, data []uint32) zgdigest.Digest {
	if len(down) > math.MaxUint16 {
		panic(fmt.Errorf(
			"BUG: tagged struct %q has too many children (%d)", tag, len(down),
		))
	}

	tagDigest := impl.HashBytes([]byte(tag))

	buf := make([]byte, 0, zgdigest.Size*(1+len(down))+4*len(data)+2)
	buf = append(buf, tagDigest[:]...)
	for _, d := range down {
		buf = append(buf, d[:]...)
	}
	for _, w := range data {
		buf = binary.LittleEndian.AppendUint32(buf, w)
	}
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(down)))

	return impl.HashBytes(buf)
}
