// Package trie builds the in-memory trie that the DAWG compiler minimizes.
//
// A Trie stores nodes in a flat slice and refers to them by small integer
// IDs rather than pointers, the way the teacher package keeps node identity
// a plain int so that the signature and offset tables downstream can stay
// integer-keyed. Node 0 is always the root; since the root is never the
// target of an edge (an invariant carried through minimization and layout),
// 0 doubles as the "no child" sentinel in a node's Child array.
package trie

// AlphabetSize is the number of edge labels a node can have: lowercase a-z.
const AlphabetSize = 26

// Empty is the sentinel value for a Child slot or edge-terminal offset that
// has no target; it is also the root's own ID, which an edge may never
// target.
const Empty = 0

// Node carries two parallel 26-element arrays indexed by letter position
// (0='a' .. 25='z'). Child holds the ID of the node a letter leads to, or
// Empty. EdgeTerminal is meaningful only where the matching Child slot is
// non-empty.
type Node struct {
	Child        [AlphabetSize]int
	EdgeTerminal [AlphabetSize]bool

	// terminal is the node's own end-of-word flag, used only during
	// insertion. It is migrated onto incoming edges by MigrateEdgeTerminals
	// and must not be read afterwards.
	terminal bool
}

// Trie is a mutable prefix tree of lowercase words, indexed by small integer
// node IDs.
type Trie struct {
	nodes []Node
}

// New returns an empty Trie containing only the root.
func New() *Trie {
	return &Trie{nodes: make([]Node, 1)}
}

// Root is the ID of the trie's unique entry point.
func (t *Trie) Root() int {
	return 0
}

// NumNodes returns the number of nodes allocated so far, including the root.
func (t *Trie) NumNodes() int {
	return len(t.nodes)
}

// Node returns a pointer to the node with the given ID for direct
// inspection or mutation. The pointer is invalidated by any further call to
// newNode (i.e. any further Insert), since the backing slice may be
// reallocated.
func (t *Trie) Node(id int) *Node {
	return &t.nodes[id]
}

func (t *Trie) newNode() int {
	t.nodes = append(t.nodes, Node{})
	return len(t.nodes) - 1
}

// Insert adds word to the trie, creating new nodes for any suffix not
// already present. Inserting the same word twice is idempotent: the second
// insertion walks the existing path and re-sets the same terminal flag.
// Words may be inserted in any order; unlike an online Aho–Corasick-style
// builder that must minimize as it goes, this trie is built fully before
// the bottom-up pass in dawgcore runs, so there is no alphabetical-order
// requirement on callers.
func (t *Trie) Insert(word string) {
	node := t.Root()
	for i := 0; i < len(word); i++ {
		letter := int(word[i] - 'a')
		child := t.nodes[node].Child[letter]
		if child == Empty {
			child = t.newNode()
			t.nodes[node].Child[letter] = child
		}
		node = child
	}
	t.nodes[node].terminal = true
}

// MigrateEdgeTerminals rewrites the per-node end-of-word flag onto the
// incoming edge of every node that has one, per spec §4.1. After this call
// runs, Node.terminal is stale everywhere and must not be consulted again;
// node identity (used by dawgcore.Minimize) depends only on EdgeTerminal
// from here on. Traversal order does not matter: every write touches a
// parent's slot using only the read-only terminal flag of an already
// existing child.
func (t *Trie) MigrateEdgeTerminals() {
	for i := range t.nodes {
		node := &t.nodes[i]
		for letter, child := range node.Child {
			if child != Empty {
				node.EdgeTerminal[letter] = t.nodes[child].terminal
			}
		}
	}
}

// CountNodes returns the number of nodes reachable from the root, counting
// each node once regardless of how many parents point to it. Called before
// minimization the trie is a tree so this equals NumNodes(); called on a
// graph that has already been partially or fully canonicalized it reports
// the (smaller) number of distinct surviving nodes, which is how the CLI
// derives the "before/after" reduction percentage (spec §6).
func (t *Trie) CountNodes() int {
	seen := make([]bool, len(t.nodes))
	var count int
	var visit func(id int)
	visit = func(id int) {
		if seen[id] {
			return
		}
		seen[id] = true
		count++
		for _, child := range t.nodes[id].Child {
			if child != Empty {
				visit(child)
			}
		}
	}
	visit(t.Root())
	return count
}
