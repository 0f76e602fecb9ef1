// Package wordlist is the external collaborator spec §6 describes: it
// reads candidate lines from storage, trims and case-folds them, and
// rejects anything that is not a clean lowercase a-z word before the core
// pipeline (internal/trie onward) ever sees it.
package wordlist

import (
	"bufio"
	"io"
	"unicode"

	"github.com/pkg/errors"
)

// Result is the outcome of loading a word list: the accepted words, in
// file order including duplicates, plus the counts spec §6's stdout report
// needs.
type Result struct {
	Words   []string
	Loaded  int
	Skipped int
}

// DefaultMaxWordLength is the fallback for SPEC_FULL.md's Open Question
// resolution: 256 runes, matching original_source/main.c's fixed 256-byte
// line and recursion buffers.
const DefaultMaxWordLength = 256

// Load reads newline-separated candidate words from r. Each line is
// trimmed of trailing whitespace; empty lines are dropped without being
// counted as skipped. A line is accepted iff, after folding ASCII
// uppercase to lowercase, every remaining character is in a..z and its
// length does not exceed maxWordLength; anything else is rejected and
// counted in Skipped. A maxWordLength of 0 or less means
// DefaultMaxWordLength.
func Load(r io.Reader, maxWordLength int) (Result, error) {
	if maxWordLength <= 0 {
		maxWordLength = DefaultMaxWordLength
	}

	var result Result
	scanner := bufio.NewScanner(r)
	// Word-list lines can exceed bufio.Scanner's 64KiB default token size
	// in adversarial input; let the buffer grow to 1MiB so such a line is
	// simply rejected below. A line longer than 1MiB still ends the load
	// with an error.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		line = trimTrailingSpace(line)
		if len(line) == 0 {
			continue
		}

		word, ok := fold(line)
		if !ok || len(word) > maxWordLength {
			result.Skipped++
			continue
		}

		result.Loaded++
		result.Words = append(result.Words, word)
	}

	if err := scanner.Err(); err != nil {
		return result, errors.Wrap(err, "dawg: failed reading word list")
	}
	return result, nil
}

func trimTrailingSpace(s string) string {
	end := len(s)
	for end > 0 && unicode.IsSpace(rune(s[end-1])) {
		end--
	}
	return s[:end]
}

// fold lowercases ASCII uppercase letters and reports whether every
// character in the result is in a..z.
func fold(s string) (string, bool) {
	buf := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
			buf[i] = c - 'A' + 'a'
		case c >= 'a' && c <= 'z':
			buf[i] = c
		default:
			return "", false
		}
	}
	return string(buf), true
}
