package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func newTestCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "dawgc"}
	BindFlags(cmd)
	return cmd
}

func TestFromCommandDefaults(t *testing.T) {
	cmd := newTestCommand()
	require.NoError(t, cmd.Flags().Parse(nil))

	conf, err := FromCommand(cmd, nil)
	require.NoError(t, err)
	require.Equal(t, Defaults(), conf)
}

func TestFromCommandPositionalArgsOverrideInputOutput(t *testing.T) {
	cmd := newTestCommand()
	require.NoError(t, cmd.Flags().Parse(nil))

	conf, err := FromCommand(cmd, []string{"in.txt", "out.bin"})
	require.NoError(t, err)
	require.Equal(t, "in.txt", conf.Input)
	require.Equal(t, "out.bin", conf.Output)
}

func TestFromCommandExplicitFlagWins(t *testing.T) {
	cmd := newTestCommand()
	require.NoError(t, cmd.Flags().Parse([]string{"--max-word-length=64", "--verify=false"}))

	conf, err := FromCommand(cmd, nil)
	require.NoError(t, err)
	require.Equal(t, 64, conf.MaxWordLength)
	require.False(t, conf.Verify)
}

func TestFromCommandEnvOverridesUnsetFlag(t *testing.T) {
	t.Setenv("DAWGC_LOG_LEVEL", "debug")

	cmd := newTestCommand()
	require.NoError(t, cmd.Flags().Parse(nil))

	conf, err := FromCommand(cmd, nil)
	require.NoError(t, err)
	require.Equal(t, "debug", conf.LogLevel)
}

func TestFromCommandConfigFileOverridesDefaultsWhenUntouchedByFlagOrEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dawgc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: custom.bin\nmax_word_length: 42\n"), 0o644))

	cmd := newTestCommand()
	require.NoError(t, cmd.Flags().Parse([]string{"--config=" + path}))

	conf, err := FromCommand(cmd, nil)
	require.NoError(t, err)
	require.Equal(t, "custom.bin", conf.Output)
	require.Equal(t, 42, conf.MaxWordLength)
}

func TestFromCommandExplicitFlagStillWinsOverConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dawgc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: custom.bin\n"), 0o644))

	cmd := newTestCommand()
	require.NoError(t, cmd.Flags().Parse([]string{"--config=" + path, "--output=flag.bin"}))

	conf, err := FromCommand(cmd, nil)
	require.NoError(t, err)
	require.Equal(t, "flag.bin", conf.Output)
}
