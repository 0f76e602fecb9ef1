package compiler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kbrandt/dawgc/internal/buildlog"
	"github.com/kbrandt/dawgc/internal/config"
	"github.com/kbrandt/dawgc/internal/walk"
)

func init() {
	// Compiler logs through buildlog.L(); tests other than
	// TestBuildIDPresentInStats do not call buildlog.Init, so until that
	// test runs L() falls back to a no-op logger.
}

func writeInput(t *testing.T, dir string, words ...string) string {
	t.Helper()
	path := filepath.Join(dir, "words.txt")
	var content string
	for _, w := range words {
		content += w + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunCompilesAndVerifies(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "cat", "cats", "dog", "DOG", "co2", "")
	output := filepath.Join(dir, "out.bin")

	conf := config.Defaults()
	conf.Input = input
	conf.Output = output
	conf.Verify = true

	result, err := Run(conf)
	require.NoError(t, err)

	require.Equal(t, 4, result.Stats.WordsLoaded)  // cat, cats, dog, dog (DOG folds to dog)
	require.Equal(t, 1, result.Stats.WordsSkipped) // co2
	require.True(t, result.Stats.Verified)

	w, err := walk.Open(output)
	require.NoError(t, err)
	defer w.Close()

	require.True(t, w.Contains("cat"))
	require.True(t, w.Contains("cats"))
	require.True(t, w.Contains("dog"))
	require.False(t, w.Contains("co2"))
}

func TestRunVerifiedWordsReflectsDuplicateCollapse(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "cat", "cat", "cat")
	output := filepath.Join(dir, "out.bin")

	conf := config.Defaults()
	conf.Input = input
	conf.Output = output
	conf.Verify = true

	result, err := Run(conf)
	require.NoError(t, err)

	require.Equal(t, 3, result.Stats.WordsLoaded)
	require.True(t, result.Stats.Verified)
	// Three copies of the same word collapse to one word in the packed
	// file; VerifiedWords must come from walking the file, not from
	// counting the (duplicated) input lines.
	require.Equal(t, 1, result.Stats.VerifiedWords)

	w, err := walk.Open(output)
	require.NoError(t, err)
	defer w.Close()
	require.Equal(t, 1, w.CountWords())
}

func TestRunFailsOnMissingInput(t *testing.T) {
	dir := t.TempDir()
	conf := config.Defaults()
	conf.Input = filepath.Join(dir, "missing.txt")
	conf.Output = filepath.Join(dir, "out.bin")

	_, err := Run(conf)
	require.Error(t, err)

	var ce *Error
	require.ErrorAs(t, err, &ce)
	require.Equal(t, KindInputOpen, ce.Kind)
}

func TestRunFailsOnUnwritableOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "cat")

	conf := config.Defaults()
	conf.Input = input
	conf.Output = filepath.Join(dir, "nonexistent-subdir", "out.bin")

	_, err := Run(conf)
	require.Error(t, err)

	var ce *Error
	require.ErrorAs(t, err, &ce)
	require.Equal(t, KindOutputWrite, ce.Kind)
}

func TestRunExportsDOTWhenSmallEnough(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "a", "b", "c")

	conf := config.Defaults()
	conf.Input = input
	conf.Output = filepath.Join(dir, "out.bin")
	conf.DOT = true
	conf.DOTPath = filepath.Join(dir, "out.dot")

	_, err := Run(conf)
	require.NoError(t, err)

	data, err := os.ReadFile(conf.DOTPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "digraph DAWG")
}

func TestBuildIDPresentInStats(t *testing.T) {
	require.NoError(t, buildlog.Init(buildlog.Conf{Output: "stderr"}))
	defer buildlog.Sync()

	dir := t.TempDir()
	input := writeInput(t, dir, "a")

	conf := config.Defaults()
	conf.Input = input
	conf.Output = filepath.Join(dir, "out.bin")

	result, err := Run(conf)
	require.NoError(t, err)
	require.NotEmpty(t, result.Stats.BuildID)
}
