package pack

import (
	"fmt"
	"io"
)

// Dump writes a human-readable table of records to w, one line per entry,
// the way original_source/main.c's packed_dawg_dump prints the packed
// array while it is still small enough to read. The CLI gates calling this
// on the same node-count threshold the reference used for its own dump.
func Dump(w io.Writer, records []uint32) {
	fmt.Fprintf(w, "packed dawg: %d entries (%d bytes)\n", len(records), 4*len(records))
	fmt.Fprintf(w, "%-6s %-6s %-5s %-5s %-6s\n", "index", "char", "eow", "eon", "next")
	for i, record := range records {
		letter := Letter(record)
		ch := byte('.')
		if letter > 0 {
			ch = byte('a' + letter - 1)
		}
		eow, eon := 0, 0
		if EndOfWord(record) {
			eow = 1
		}
		if EndOfNode(record) {
			eon = 1
		}
		fmt.Fprintf(w, "%-6d %-6c %-5d %-5d %-6d\n", i, ch, eow, eon, Next(record))
	}
}
