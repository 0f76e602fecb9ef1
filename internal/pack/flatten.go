package pack

import (
	"github.com/kbrandt/dawgc/internal/dawgcore"
	"github.com/kbrandt/dawgc/internal/trie"
	"github.com/pkg/errors"
)

// ErrCapacityOverflow is returned by Flatten when the packed array would
// need more records than a 25-bit next pointer can address (spec §4.3/§7).
var ErrCapacityOverflow = errors.New("dawg: packed array exceeds 2^25 records")

// Flatten runs the two-pass BFS layout from spec §4.3 over t, which must
// already be minimized (dawgcore.Minimize), and returns the packed record
// array. Pass 1 assigns every internal node a base offset equal to the
// running total of children counts seen so far in BFS order; pass 2 walks
// the same BFS order again and writes one record per outgoing edge, now
// that every target's offset is known.
func Flatten(t *trie.Trie) ([]uint32, error) {
	offset, total, err := assignOffsets(t)
	if err != nil {
		return nil, err
	}

	records := make([]uint32, total)
	fillRecords(t, offset, records)
	return records, nil
}

// assignOffsets is pass 1. offset[id] is the base offset of node id's
// sibling list, or 0 if id is a leaf (spec's "0 means no children"
// sentinel) or has not been reached via BFS from the root.
func assignOffsets(t *trie.Trie) (offset []int, total int, err error) {
	offset = make([]int, t.NumNodes())
	assigned := make([]bool, t.NumNodes())

	root := t.Root()
	total = dawgcore.NumChildren(t.Node(root))
	assigned[root] = true

	queue := []int{root}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		node := t.Node(id)
		for letter := 0; letter < trie.AlphabetSize; letter++ {
			child := node.Child[letter]
			if child == trie.Empty || assigned[child] {
				continue
			}
			assigned[child] = true

			count := dawgcore.NumChildren(t.Node(child))
			if count == 0 {
				// Leaf: offset stays 0, never enqueued.
				continue
			}

			offset[child] = total
			total += count
			if total > MaxRecords {
				return nil, 0, ErrCapacityOverflow
			}
			queue = append(queue, child)
		}
	}

	return offset, total, nil
}

// fillRecords is pass 2: another BFS in the same order, writing each
// node's sibling list into records at its already-known base offset.
func fillRecords(t *trie.Trie, offset []int, records []uint32) {
	visited := make([]bool, t.NumNodes())
	root := t.Root()
	visited[root] = true

	queue := []int{root}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		node := t.Node(id)
		base := offset[id]
		slot := 0
		lastLetter := lastNonEmptySlot(node)

		for letter := 0; letter < trie.AlphabetSize; letter++ {
			child := node.Child[letter]
			if child == trie.Empty {
				continue
			}

			records[base+slot] = Encode(
				letter+1,
				node.EdgeTerminal[letter],
				letter == lastLetter,
				offset[child],
			)
			slot++

			if !visited[child] {
				visited[child] = true
				if dawgcore.NumChildren(t.Node(child)) > 0 {
					queue = append(queue, child)
				}
			}
		}
	}
}

func lastNonEmptySlot(node *trie.Node) int {
	last := -1
	for letter, child := range node.Child {
		if child != trie.Empty {
			last = letter
		}
	}
	return last
}
