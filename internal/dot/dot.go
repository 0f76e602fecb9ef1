// Package dot renders a minimized DAWG as Graphviz DOT, for the small
// inputs where looking at the graph is actually useful. Spec.md lists DOT
// visualization as an out-of-scope external collaborator; this is the
// feature original_source/main.c's dawg_export_dot implements, carried
// forward per SPEC_FULL.md §C since nothing in the spec's Non-goals
// excludes it.
package dot

import (
	"fmt"
	"io"

	"github.com/kbrandt/dawgc/internal/trie"
)

// Export writes a DOT digraph of t (which must already be minimized) to w.
// Terminal edges are styled green and bold, matching the reference's
// dawg_write_dot_edges.
func Export(w io.Writer, t *trie.Trie) error {
	ids := map[int]int{}
	order := []int{}

	var assign func(id int) int
	assign = func(id int) int {
		if dotID, ok := ids[id]; ok {
			return dotID
		}
		dotID := len(ids)
		ids[id] = dotID
		order = append(order, id)
		return dotID
	}

	root := t.Root()
	assign(root)

	// BFS discovery order, matching the reference's queue-based traversal,
	// so that node numbering does not depend on Go map iteration order.
	queue := []int{root}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, child := range t.Node(id).Child {
			if child == trie.Empty {
				continue
			}
			if _, seen := ids[child]; !seen {
				assign(child)
				queue = append(queue, child)
			}
		}
	}

	fmt.Fprintln(w, "digraph DAWG {")
	fmt.Fprintln(w, "  rankdir=TB;")
	fmt.Fprintln(w, "  node [shape=circle width=0.3 fontsize=10];")
	fmt.Fprintln(w, "  edge [fontsize=12];")
	fmt.Fprintln(w, "  n0 [label=\"\" shape=doublecircle];")

	for _, id := range order[1:] {
		fmt.Fprintf(w, "  n%d [label=\"%d\"];\n", ids[id], ids[id])
	}

	for _, id := range order {
		node := t.Node(id)
		parentID := ids[id]
		for letter, child := range node.Child {
			if child == trie.Empty {
				continue
			}
			childID := ids[child]
			ch := byte('a' + letter)
			if node.EdgeTerminal[letter] {
				fmt.Fprintf(w, "  n%d -> n%d [label=\"%c\" color=green fontcolor=green penwidth=2.0];\n",
					parentID, childID, ch)
			} else {
				fmt.Fprintf(w, "  n%d -> n%d [label=\"%c\"];\n", parentID, childID, ch)
			}
		}
	}

	fmt.Fprintln(w, "}")
	return nil
}
