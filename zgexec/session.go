package zgexec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/golang/snappy"
	"github.com/gordian-engine/zkguest"
	"github.com/gordian-engine/zkguest/zgdigest"
	"github.com/gordian-engine/zkguest/zghash"
	"github.com/gordian-engine/zkguest/zgsys"
)

// Session is everything a guest emitted during one execution.
type Session struct {
	ExitCode uint8

	// The words the guest passed to halt.
	Output zgsys.OutputWords

	// Bytes written to the journal, stdout, and stderr channels.
	// Only the journal is bound by Output.
	Journal []byte
	Stdout  []byte
	Stderr  []byte
}

// OutputDigest returns the halt output as a digest.
func (s *Session) OutputDigest() zgdigest.Digest {
	return zgdigest.FromWords(s.Output)
}

// JournalDigest returns the digest of the recorded journal.
func (s *Session) JournalDigest(impl zghash.Impl) zgdigest.Digest {
	return impl.HashBytes(s.Journal)
}

// Verify reports whether s's halt output is the output record
// binding s's journal with an empty assumptions set.
// On mismatch the returned error wraps [ErrOutputMismatch].
func (s *Session) Verify(impl zghash.Impl) error {
	want := zkguest.Output{Journal: s.JournalDigest(impl)}.Digest(impl)
	got := s.OutputDigest()
	if want != got {
		return fmt.Errorf(
			"%w: journal of %d bytes binds to %s, halt output is %s",
			ErrOutputMismatch, len(s.Journal), want, got,
		)
	}
	return nil
}

// sessionMagic prefixes every encoded session.
// The final byte is the encoding version.
var sessionMagic = [4]byte{'z', 'g', 's', 1}

// MarshalBinary encodes s.
//
// The layout is the magic bytes, the exit code,
// the 8 output words as little-endian uint32 values,
// and then the journal, stdout, and stderr sections in that order.
// Each section is a uvarint length followed by that many bytes
// of snappy block-encoded data.
func (s *Session) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, len(sessionMagic)+1+4*len(s.Output)+3*binary.MaxVarintLen64)
	buf = append(buf, sessionMagic[:]...)
	buf = append(buf, s.ExitCode)
	for _, w := range s.Output {
		buf = binary.LittleEndian.AppendUint32(buf, w)
	}

	for _, section := range [][]byte{s.Journal, s.Stdout, s.Stderr} {
		enc := snappy.Encode(nil, section)
		buf = binary.AppendUvarint(buf, uint64(len(enc)))
		buf = append(buf, enc...)
	}

	return buf, nil
}

// DefaultMaxSectionBytes is the largest decoded section
// that [*Session.UnmarshalBinary] accepts.
const DefaultMaxSectionBytes = 64 << 20

// UnmarshalBinary decodes data produced by [*Session.MarshalBinary],
// rejecting any section that decodes to more than [DefaultMaxSectionBytes].
func (s *Session) UnmarshalBinary(data []byte) error {
	return s.UnmarshalBinaryLimit(data, DefaultMaxSectionBytes)
}

// UnmarshalBinaryLimit is like [*Session.UnmarshalBinary]
// but rejects any section whose decoded size exceeds maxSection bytes.
// The decoded size is checked before anything is allocated for it,
// so untrusted input cannot force a large allocation.
// On rejection the returned error wraps [ErrSectionTooLarge].
func (s *Session) UnmarshalBinaryLimit(data []byte, maxSection int) error {
	if maxSection < 0 {
		panic(fmt.Errorf("BUG: maxSection must not be negative (got %d)", maxSection))
	}

	r := bytes.NewReader(data)

	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return fmt.Errorf("failed to read session header: %w", err)
	}
	if magic != sessionMagic {
		return fmt.Errorf("unrecognized session header %x", magic[:])
	}

	var out Session

	code, err := r.ReadByte()
	if err != nil {
		return fmt.Errorf("failed to read exit code: %w", err)
	}
	out.ExitCode = code

	var words [4 * zgdigest.WordCount]byte
	if _, err := io.ReadFull(r, words[:]); err != nil {
		return fmt.Errorf("failed to read output words: %w", err)
	}
	for i := range out.Output {
		out.Output[i] = binary.LittleEndian.Uint32(words[4*i:])
	}

	for _, sec := range []struct {
		name string
		dst  *[]byte
	}{
		{name: "journal", dst: &out.Journal},
		{name: "stdout", dst: &out.Stdout},
		{name: "stderr", dst: &out.Stderr},
	} {
		b, err := readSection(r, maxSection)
		if err != nil {
			return fmt.Errorf("failed to read %s section: %w", sec.name, err)
		}
		*sec.dst = b
	}

	if r.Len() != 0 {
		return fmt.Errorf("%d trailing bytes after session", r.Len())
	}

	*s = out
	return nil
}

func readSection(r *bytes.Reader, maxSection int) ([]byte, error) {
	n, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read length: %w", err)
	}
	if n > uint64(r.Len()) {
		return nil, fmt.Errorf("length %d exceeds remaining %d bytes", n, r.Len())
	}

	enc := make([]byte, n)
	if _, err := io.ReadFull(r, enc); err != nil {
		return nil, err
	}

	decLen, err := snappy.DecodedLen(enc)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded length: %w", err)
	}
	if decLen > maxSection {
		return nil, fmt.Errorf(
			"%w: decoded length %d exceeds limit %d",
			ErrSectionTooLarge, decLen, maxSection,
		)
	}

	dec, err := snappy.Decode(nil, enc)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress: %w", err)
	}
	if len(dec) == 0 {
		return nil, nil
	}
	return dec, nil
}
