package walk

import "github.com/kbrandt/dawgc/internal/pack"

// Contains reports whether word was one of the strings the DAWG was built
// from. word must already be lowercase a-z; the wordlist package is
// responsible for rejecting or folding anything else before it ever
// reaches the trie, so this layer does not re-validate it.
//
// The empty string can never be a member: the packed format only ever
// records an end-of-word flag on an edge, and the empty word traverses no
// edge, so there is no bit anywhere in the file that could represent it
// (this mirrors original_source/main.c, where an empty line is dropped by
// the loader before it ever reaches the trie).
func (w *Walker) Contains(word string) bool {
	if word == "" {
		return false
	}

	index := 0
	for i := 0; i < len(word); i++ {
		letter := int(word[i]-'a') + 1
		record, ok := w.findSibling(index, letter)
		if !ok {
			return false
		}

		if i == len(word)-1 {
			return pack.EndOfWord(record)
		}

		next := pack.Next(record)
		if next == 0 {
			return false
		}
		index = next
	}
	return false
}
