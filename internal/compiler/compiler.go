// Package compiler orchestrates one end-to-end compile run: load words,
// build the trie, minimize it, flatten and pack it, write it out, and
// optionally verify and export it. It is the single place that knows the
// pipeline order spec §4 lays out, so cmd/dawgc stays a thin flag-parsing
// shell around it (the split the teacher package draws between its library
// code and the dawg-dict command line tool).
package compiler

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/kbrandt/dawgc/internal/buildlog"
	"github.com/kbrandt/dawgc/internal/config"
	"github.com/kbrandt/dawgc/internal/dawgcore"
	"github.com/kbrandt/dawgc/internal/dot"
	"github.com/kbrandt/dawgc/internal/pack"
	"github.com/kbrandt/dawgc/internal/report"
	"github.com/kbrandt/dawgc/internal/trie"
	"github.com/kbrandt/dawgc/internal/walk"
	"github.com/kbrandt/dawgc/internal/wordlist"
)

// dotExportNodeLimit is the node-count ceiling past which a DOT export is
// skipped as impractical to render, matching original_source/main.c's own
// threshold for calling dawg_export_dot.
const dotExportNodeLimit = 100

// Kind classifies a Run failure into the exit-code families spec §7
// distinguishes, so cmd/dawgc can map an error straight to a process exit
// status without re-inspecting its text.
type Kind int

const (
	// KindInternal covers anything not otherwise classified: a violated
	// invariant, a panic recovered at the CLI boundary, programmer error.
	KindInternal Kind = iota
	// KindInputOpen is failure to open or read the input word list.
	KindInputOpen
	// KindOutputWrite is failure to create, write, or close the output file.
	KindOutputWrite
	// KindCapacityOverflow is pack.ErrCapacityOverflow: the input needs more
	// than 2^25 packed records.
	KindCapacityOverflow
	// KindVerifyFailed is a word that round-tripped incorrectly during
	// post-write verification.
	KindVerifyFailed
)

// Error wraps a pipeline failure with its Kind, so callers can branch on
// Kind without string-matching the message.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

func fail(kind Kind, err error) error {
	return &Error{Kind: kind, Err: err}
}

// Result is everything a successful Run produced, for cmd/dawgc to report.
type Result struct {
	Stats report.Stats
}

// Run executes the full pipeline described by conf: read conf.Input, build
// and minimize the DAWG, write it to conf.Output, and (per conf.Verify /
// conf.DOT / conf.Dump) verify and export it.
func Run(conf config.Config) (Result, error) {
	log := buildlog.L()

	in, err := os.Open(conf.Input)
	if err != nil {
		return Result{}, fail(KindInputOpen, errors.Wrapf(err, "dawg: could not open input %q", conf.Input))
	}
	defer in.Close()

	loaded, err := wordlist.Load(in, conf.MaxWordLength)
	if err != nil {
		return Result{}, fail(KindInputOpen, err)
	}
	log.Infow("loaded word list", "loaded", loaded.Loaded, "skipped", loaded.Skipped)

	t := trie.New()
	for _, word := range loaded.Words {
		t.Insert(word)
	}
	trieNodes := t.NumNodes()
	log.Infow("built trie", "nodes", trieNodes)

	t.MigrateEdgeTerminals()
	dawgcore.Minimize(t)
	dawgNodes := t.CountNodes()
	log.Infow("minimized graph", "nodes", dawgNodes)

	records, err := pack.Flatten(t)
	if err != nil {
		if errors.Is(err, pack.ErrCapacityOverflow) {
			return Result{}, fail(KindCapacityOverflow, err)
		}
		return Result{}, fail(KindInternal, err)
	}

	packedBytes, err := pack.Save(conf.Output, records)
	if err != nil {
		return Result{}, fail(KindOutputWrite, err)
	}
	log.Infow("wrote packed dawg", "path", conf.Output, "bytes", packedBytes, "records", len(records))

	stats := report.Stats{
		BuildID:       buildlog.BuildID(),
		WordsLoaded:   loaded.Loaded,
		WordsSkipped:  loaded.Skipped,
		TrieNodes:     trieNodes,
		DAWGNodes:     dawgNodes,
		PackedRecords: len(records),
		PackedBytes:   packedBytes,
	}

	if conf.Verify {
		if err := verify(conf.Output, loaded.Words, &stats); err != nil {
			return Result{}, fail(KindVerifyFailed, err)
		}
	}

	if conf.DOT {
		if dawgNodes > dotExportNodeLimit {
			log.Infow("skipping dot export, graph too large", "nodes", dawgNodes, "limit", dotExportNodeLimit)
		} else if err := exportDOT(conf.DOTPath, t); err != nil {
			return Result{}, fail(KindOutputWrite, err)
		}
	}

	if conf.Dump {
		if dawgNodes > dotExportNodeLimit {
			log.Infow("skipping packed dump, graph too large", "nodes", dawgNodes, "limit", dotExportNodeLimit)
		} else {
			pack.Dump(os.Stderr, records)
		}
	}

	return Result{Stats: stats}, nil
}

func verify(path string, words []string, stats *report.Stats) error {
	w, err := walk.Open(path)
	if err != nil {
		return errors.Wrapf(err, "dawg: could not reopen %q for verification", path)
	}
	defer w.Close()

	for _, word := range words {
		if !w.Contains(word) {
			return errors.Errorf("dawg: verification failed, word %q did not round-trip", word)
		}
	}

	stats.Verified = true
	stats.VerifiedWords = w.CountWords()
	return nil
}

func exportDOT(path string, t *trie.Trie) error {
	var buf bytes.Buffer
	if err := dot.Export(&buf, t); err != nil {
		return errors.Wrap(err, "dawg: could not render dot export")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "dawg: could not create dot export %q", path)
	}
	defer f.Close()

	if _, err := io.Copy(f, &buf); err != nil {
		return errors.Wrapf(err, "dawg: could not write dot export %q", path)
	}
	return nil
}
