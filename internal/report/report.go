// Package report prints the human-readable compile summary spec §6
// requires on standard output, separate from the structured zap log that
// internal/buildlog writes. Styling follows the corpus's convention of
// reaching for fatih/color for CLI stdout instead of hand-rolled ANSI
// escapes.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Stats is everything spec §6 requires the report to show.
type Stats struct {
	BuildID string

	WordsLoaded  int
	WordsSkipped int

	TrieNodes int
	DAWGNodes int

	PackedRecords int
	PackedBytes   int64

	Verified      bool
	VerifiedWords int
}

// ReductionPercent is how much smaller the minimized graph is than the
// trie it was built from, as spec §6's report field.
func (s Stats) ReductionPercent() float64 {
	if s.TrieNodes == 0 {
		return 0
	}
	return 100 * (1 - float64(s.DAWGNodes)/float64(s.TrieNodes))
}

// Print writes a formatted summary of s to w. useColor disables styling for
// non-terminal output (piped logs, CI), following the --color flag.
func Print(w io.Writer, s Stats, useColor bool) {
	header := color.New(color.FgCyan, color.Bold)
	label := color.New(color.FgWhite)
	value := color.New(color.FgGreen, color.Bold)
	warn := color.New(color.FgYellow)

	if !useColor {
		color.NoColor = true
	}

	header.Fprintln(w, "DAWG compile summary")
	fmt.Fprintf(w, "  build id:          %s\n", s.BuildID)

	label.Fprint(w, "  words loaded:      ")
	value.Fprintln(w, s.WordsLoaded)

	label.Fprint(w, "  words skipped:     ")
	if s.WordsSkipped > 0 {
		warn.Fprintln(w, s.WordsSkipped)
	} else {
		value.Fprintln(w, s.WordsSkipped)
	}

	label.Fprint(w, "  trie nodes:        ")
	value.Fprintln(w, s.TrieNodes)

	label.Fprint(w, "  dawg nodes:        ")
	value.Fprintln(w, s.DAWGNodes)

	label.Fprint(w, "  reduction:         ")
	value.Fprintf(w, "%.1f%%\n", s.ReductionPercent())

	label.Fprint(w, "  packed records:    ")
	value.Fprintln(w, s.PackedRecords)

	label.Fprint(w, "  packed bytes:      ")
	value.Fprintln(w, s.PackedBytes)

	label.Fprint(w, "  verified:          ")
	if !s.Verified {
		warn.Fprintln(w, "skipped")
	} else {
		value.Fprintf(w, "yes (%d words)\n", s.VerifiedWords)
	}
}
