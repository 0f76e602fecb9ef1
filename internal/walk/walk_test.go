package walk

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kbrandt/dawgc/internal/dawgcore"
	"github.com/kbrandt/dawgc/internal/pack"
	"github.com/kbrandt/dawgc/internal/trie"
)

func compile(t *testing.T, words ...string) *Walker {
	t.Helper()
	tr := trie.New()
	for _, w := range words {
		tr.Insert(w)
	}
	tr.MigrateEdgeTerminals()
	dawgcore.Minimize(tr)

	records, err := pack.Flatten(tr)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = pack.Write(&buf, records)
	require.NoError(t, err)

	data := buf.Bytes()
	return FromReaderAt(bytes.NewReader(data), int64(len(data)))
}

func TestContainsAcceptsMembers(t *testing.T) {
	words := []string{"cat", "cats", "car", "cars", "dog", "dogs"}
	w := compile(t, words...)

	for _, word := range words {
		require.True(t, w.Contains(word), "expected %q to be a member", word)
	}
}

func TestContainsRejectsNonMembersAndPrefixes(t *testing.T) {
	w := compile(t, "cats", "dogs")

	require.False(t, w.Contains("cat"))
	require.False(t, w.Contains("do"))
	require.False(t, w.Contains("catsup"))
	require.False(t, w.Contains("bird"))
}

func TestContainsRejectsEmptyString(t *testing.T) {
	w := compile(t, "a")
	require.False(t, w.Contains(""))
}

func TestEnumerateVisitsEveryWordExactlyOnce(t *testing.T) {
	words := []string{"cat", "cats", "car", "cars", "dog", "dogs", "do", "done"}
	w := compile(t, words...)

	seen := map[string]int{}
	w.Enumerate(func(word string) bool {
		seen[word]++
		return true
	})

	require.Len(t, seen, len(words))
	for _, word := range words {
		require.Equal(t, 1, seen[word], "word %q", word)
	}
}

func TestEnumerateStopsEarly(t *testing.T) {
	w := compile(t, "a", "ab", "ac", "ad")

	var visited []string
	w.Enumerate(func(word string) bool {
		visited = append(visited, word)
		return false
	})

	require.Len(t, visited, 1)
}

func TestCountWordsMatchesInputCardinality(t *testing.T) {
	words := []string{"a", "an", "ant", "ants", "bee", "bees"}
	w := compile(t, words...)
	require.Equal(t, len(words), w.CountWords())
}

func TestCountWordsOnEmptyDawg(t *testing.T) {
	w := FromReaderAt(bytes.NewReader(nil), 0)
	require.Equal(t, 0, w.CountWords())
	require.False(t, w.Contains("anything"))
}
