// Package zghash defines the hash primitive consumed by the guest runtime.
//
// The runtime never hashes directly.
// It asks an [Impl] for a fresh streaming [Hasher],
// absorbs committed bytes into it,
// and finalizes it exactly once into a [zgdigest.Digest].
package zghash

import "github.com/gordian-engine/zkguest/zgdigest"

// Impl is the user-provided hash primitive.
//
// Impl methods must be safe to call concurrently,
// but the Hasher values they return need not be.
type Impl interface {
	// New returns a fresh hash state
	// with no bytes absorbed.
	New() Hasher

	// HashBytes is a one-shot hash of in.
	// It must equal absorbing in into a fresh Hasher and finalizing it.
	HashBytes(in []byte) zgdigest.Digest
}

// Hasher is a streaming hash state.
//
// Update absorbs bytes in call order;
// the result depends only on the concatenation of all Update inputs.
// Finalize applies the primitive's padding and returns the digest.
// A Hasher must not be used after Finalize.
type Hasher interface {
	Update(in []byte)
	Finalize() zgdigest.Digest
}
