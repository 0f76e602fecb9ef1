// Package walk implements the read-side verifier for the packed DAWG
// format: spec §4.5 calls this walk the authoritative definition of what a
// compiled file means, so everything here must match that algorithm
// exactly, not just approximate it.
//
// Open uses golang.org/x/exp/mmap the way the teacher package's dawg-dict
// variant loads its on-disk Finder: the packed array is mapped, not read
// into a buffer, so verifying a file up to the format's ~128 MiB ceiling
// (2^25 records) does not copy it into process memory; Enumerate itself
// only keeps a handful of live frames on its explicit stack.
package walk

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/exp/mmap"

	"github.com/kbrandt/dawgc/internal/pack"
)

// Walker reads a packed DAWG file (or any io.ReaderAt holding one) without
// materializing it in memory.
type Walker struct {
	r      io.ReaderAt
	size   int64
	closer io.Closer
}

// Open memory-maps the packed DAWG file at path for reading.
func Open(path string) (*Walker, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dawg: could not open packed file %q", path)
	}
	return &Walker{r: r, size: int64(r.Len()), closer: r}, nil
}

// FromReaderAt wraps an already-open reader holding size bytes of packed
// records, for in-process verification of a just-built DAWG without a
// round trip through the filesystem.
func FromReaderAt(r io.ReaderAt, size int64) *Walker {
	return &Walker{r: r, size: size}
}

// Close releases the underlying mapping, if Open created one.
func (w *Walker) Close() error {
	if w.closer == nil {
		return nil
	}
	return w.closer.Close()
}

// NumRecords returns how many 32-bit records the file holds.
func (w *Walker) NumRecords() int64 {
	return w.size / 4
}

func (w *Walker) hasRecord(index int) bool {
	return int64(index)*4+4 <= w.size
}

func (w *Walker) read(index int) uint32 {
	var buf [4]byte
	if _, err := w.r.ReadAt(buf[:], int64(index)*4); err != nil {
		panic(errors.Wrapf(err, "dawg: short read at packed record %d", index))
	}
	return binary.LittleEndian.Uint32(buf[:])
}

// findSibling scans the sibling list starting at index for a record whose
// letter field equals letter (1..26), stopping at the end-of-node marker.
func (w *Walker) findSibling(index, letter int) (record uint32, ok bool) {
	for w.hasRecord(index) {
		record = w.read(index)
		if pack.Letter(record) == letter {
			return record, true
		}
		if pack.EndOfNode(record) {
			return 0, false
		}
		index++
	}
	return 0, false
}
