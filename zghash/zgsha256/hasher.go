package zgsha256

import (
	"crypto/sha256"
	"hash"

	"github.com/gordian-engine/zkguest/zgdigest"
	"github.com/gordian-engine/zkguest/zghash"
)

// Impl is a [zghash.Impl] backed by SHA-256.
type Impl struct{}

func (Impl) New() zghash.Hasher {
	return &hasher{h: sha256.New()}
}

func (Impl) HashBytes(in []byte) zgdigest.Digest {
	return sha256.Sum256(in)
}

type hasher struct {
	h hash.Hash
}

func (h *hasher) Update(in []byte) {
	_, _ = h.h.Write(in)
}

func (h *hasher) Finalize() zgdigest.Digest {
	var d zgdigest.Digest
	h.h.Sum(d[:0])
	h.h = nil
	return d
}
