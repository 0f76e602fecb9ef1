// Package pack implements the two-pass flattener and little-endian
// serializer that turn a minimized DAWG into the packed binary layout spec
// §4.3/§4.4 defines.
//
// The packing scheme itself (letter/eow/eon/next bitfields inside a single
// word) is lifted directly from original_source/main.c's PACK_CHAR/PACK_EOW/
// PACK_EON/PACK_NEXT macros — that bit layout *is* the external format
// contract (spec §6) and is not a place for creative reinterpretation.
// Serialization style (small io.Writer helper functions that return
// wrapped errors on short writes) follows the teacher package's disk.go.
package pack

const (
	letterBits = 5
	letterMask = (1 << letterBits) - 1

	eowBit = 1 << 5
	eonBit = 1 << 6

	nextShift = 7
	nextBits  = 25
	nextMask  = (1 << nextBits) - 1

	// MaxRecords is the hard ceiling spec §4.3/§7 imposes: a 25-bit next
	// pointer can address at most 2^25 records.
	MaxRecords = 1 << nextBits
)

// Encode packs one sibling-list entry into the 32-bit record layout:
// bits 0-4 letter (1..26), bit 5 end-of-word, bit 6 end-of-node, bits 7-31
// the target's base offset.
func Encode(letter int, endOfWord, endOfNode bool, next int) uint32 {
	v := uint32(letter) & letterMask
	if endOfWord {
		v |= eowBit
	}
	if endOfNode {
		v |= eonBit
	}
	v |= (uint32(next) & nextMask) << nextShift
	return v
}

// Letter extracts the 1..26 letter field ('a'=1) from a packed record.
func Letter(record uint32) int {
	return int(record & letterMask)
}

// EndOfWord reports whether record's edge terminates a word.
func EndOfWord(record uint32) bool {
	return record&eowBit != 0
}

// EndOfNode reports whether record is the last sibling in its list.
func EndOfNode(record uint32) bool {
	return record&eonBit != 0
}

// Next extracts the base offset of record's target node; 0 means the
// target is a leaf with no children.
func Next(record uint32) int {
	return int((record >> nextShift) & nextMask)
}
