// Package dawgcore implements the bottom-up minimization pass (spec §4.2)
// that collapses a trie's subtree-isomorphic nodes into a single canonical
// representative, turning the tree into the DAG a Directed Acyclic Word
// Graph is named for.
//
// The algorithm is grounded in original_source/main.c's dawg_compress: a
// post-order walk guarded by a per-node "done" flag to survive re-entry
// through a second parent, feeding a hash table keyed by outgoing
// structure. The teacher package (smhanov-dawg) contributes the Go idiom of
// keeping node identity a small integer handle rather than a pointer, which
// is what makes the signature table below a plain comparable-array map key
// instead of smhanov's hand-built string key (nameOf) or the reference C's
// open-hashing HashMap — the fixed 26-letter alphabet makes every node's
// arity constant, so a [26]int64 signature is both exact and natively
// hashable by Go's map implementation.
package dawgcore

import "github.com/kbrandt/dawgc/internal/trie"

// signature is the equality key from spec §4.2: the ordered 26-tuple of
// (canonical child identity, edge-terminal flag). Each slot packs a node ID
// and its terminal bit into one int64 so the whole tuple is a single
// comparable Go array, usable directly as a map key. trie.Empty (0) can
// never collide with a real child ID here because the root, whose ID is 0,
// is never the target of an edge (data model invariant 1).
type signature [trie.AlphabetSize]int64

// Minimize performs the bottom-up minimization pass over t in place: every
// reachable node's Child slots are rewritten to point at canonical
// representatives, and the returned canonical map lets callers translate
// any non-root node ID encountered during insertion into the representative
// that survived minimization (the root's own entry stays -1). t must have
// already had MigrateEdgeTerminals
// called on it; the root (t.Root()) is never looked up in the signature
// table and so can never be merged into another node, satisfying spec's
// root-uniqueness invariant.
func Minimize(t *trie.Trie) (canonical []int) {
	n := t.NumNodes()
	canonical = make([]int, n)
	for i := range canonical {
		canonical[i] = -1
	}

	table := make(map[signature]int)

	var visit func(id int) int
	visit = func(id int) int {
		if canonical[id] != -1 {
			return canonical[id]
		}

		node := t.Node(id)
		var sig signature
		for letter := 0; letter < trie.AlphabetSize; letter++ {
			child := node.Child[letter]
			if child == trie.Empty {
				continue
			}

			rep := visit(child)
			node.Child[letter] = rep

			var bit int64
			if node.EdgeTerminal[letter] {
				bit = 1
			}
			sig[letter] = int64(rep)<<1 | bit
		}

		if rep, ok := table[sig]; ok {
			canonical[id] = rep
			return rep
		}

		table[sig] = id
		canonical[id] = id
		return id
	}

	root := t.Node(t.Root())
	for letter := 0; letter < trie.AlphabetSize; letter++ {
		if child := root.Child[letter]; child != trie.Empty {
			root.Child[letter] = visit(child)
		}
	}

	return canonical
}

// NumChildren reports how many of n's 26 slots are non-empty.
func NumChildren(n *trie.Node) int {
	var count int
	for _, child := range n.Child {
		if child != trie.Empty {
			count++
		}
	}
	return count
}
