package walk

import "github.com/kbrandt/dawgc/internal/pack"

// frame is one pending sibling-list position in the explicit-stack walk.
// depth is the position in the word buffer this frame's letter occupies.
type frame struct {
	index int
	depth int
}

// Enumerate visits every word the DAWG encodes, in the letter-ordered,
// depth-first sequence spec §4.5 defines, calling fn with each one. fn
// returning false stops the walk early (mirroring the teacher package's
// EnumFn Stop result).
//
// This performs the same traversal original_source/main.c's
// packed_dawg_walk does recursively, but with an explicit stack instead of
// the call stack — spec §9 flags the reference's recursive walker as a
// potential stack-overflow hazard on pathological long words, and the fix
// it suggests is exactly this: an explicit stack, so word length no longer
// bounds traversal depth.
func (w *Walker) Enumerate(fn func(word string) bool) {
	if !w.hasRecord(0) {
		return
	}

	stack := []frame{{index: 0, depth: 0}}
	prefix := make([]byte, 0, 64)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if !w.hasRecord(top.index) {
			stack = stack[:len(stack)-1]
			continue
		}

		record := w.read(top.index)
		depth := top.depth

		if cap(prefix) < depth+1 {
			grown := make([]byte, depth+1)
			copy(grown, prefix)
			prefix = grown
		}
		prefix = prefix[:depth+1]
		prefix[depth] = byte('a' + pack.Letter(record) - 1)

		stop := false
		if pack.EndOfWord(record) && !fn(string(prefix)) {
			stop = true
		}

		eon := pack.EndOfNode(record)
		next := pack.Next(record)

		if eon {
			stack = stack[:len(stack)-1]
		} else {
			top.index++
		}

		if stop {
			return
		}
		if next != 0 {
			stack = append(stack, frame{index: next, depth: depth + 1})
		}
	}
}

// CountWords returns the total number of words the DAWG encodes, by
// enumerating all of them. This is what the CLI uses to produce the
// "verification word count" spec §6 requires on standard output.
func (w *Walker) CountWords() int {
	var count int
	w.Enumerate(func(string) bool {
		count++
		return true
	})
	return count
}
