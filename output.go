package zkguest

import (
	"github.com/gordian-engine/zkguest/zgdigest"
	"github.com/gordian-engine/zkguest/zghash"
	"github.com/gordian-engine/zkguest/zgsys"
	"github.com/gordian-engine/zkguest/zgtag"
)

// OutputTag is the tagged-struct name of the output record.
const OutputTag = "risc0.output"

// Output is the record a guest hands to halt.
type Output struct {
	// Digest of every byte committed to the journal.
	Journal zgdigest.Digest

	// Digest of the assumptions set.
	// [*Runtime.Exit] always sets this to [zgdigest.Zero],
	// meaning the execution makes no additional assumptions.
	Assumptions zgdigest.Digest
}

// Digest returns the tagged-struct digest of o.
func (o Output) Digest(impl zghash.Impl) zgdigest.Digest {
	return zgtag.Struct(impl, OutputTag, []zgdigest.Digest{o.Journal, o.Assumptions}, nil)
}

// Words returns o's digest in the word layout expected by [zgsys.Platform.Halt].
func (o Output) Words(impl zghash.Impl) zgsys.OutputWords {
	return o.Digest(impl).Words()
}
