// Package config binds the compiler's knobs to command-line flags, an
// optional config file, and environment variables, following the
// viper+pflag convention the corpus's daemon configs use (go-arcade-arcade's
// internal/agent/config) scaled down to a one-shot CLI: there is no
// fsnotify watch here, since a batch compiler reads its configuration
// exactly once per run.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kbrandt/dawgc/internal/wordlist"
)

// Config holds every user-tunable knob of a single compile run.
type Config struct {
	Input  string `mapstructure:"input"`
	Output string `mapstructure:"output"`

	MaxWordLength int    `mapstructure:"max_word_length"`
	Verify        bool   `mapstructure:"verify"`
	DOT           bool   `mapstructure:"dot"`
	DOTPath       string `mapstructure:"dot_path"`
	Dump          bool   `mapstructure:"dump"`

	LogLevel  string `mapstructure:"log_level"`
	LogOutput string `mapstructure:"log_output"`
	LogPath   string `mapstructure:"log_path"`
	Color     bool   `mapstructure:"color"`
}

// Defaults returns a Config with every knob set to the values spec §6/§7 and
// SPEC_FULL.md's Open Question resolutions call for absent any user input.
func Defaults() Config {
	return Config{
		Input:         "words.txt",
		Output:        "dawg.bin",
		MaxWordLength: wordlist.DefaultMaxWordLength,
		Verify:        true,
		DOT:           false,
		DOTPath:       "dawg.dot",
		Dump:          false,
		LogLevel:      "info",
		LogOutput:     "stderr",
		Color:         true,
	}
}

// BindFlags registers every Config knob onto cmd's flag set, seeded with
// the values from Defaults().
func BindFlags(cmd *cobra.Command) {
	d := Defaults()
	flags := cmd.Flags()

	flags.String("output", d.Output, "path to write the packed DAWG to")
	flags.Int("max-word-length", d.MaxWordLength, "reject input lines longer than this many characters")
	flags.Bool("verify", d.Verify, "re-open the packed file after writing and confirm every input word round-trips")
	flags.Bool("dot", d.DOT, "also export a Graphviz DOT rendering, when the graph is small enough")
	flags.String("dot-path", d.DOTPath, "path to write the DOT export to")
	flags.Bool("dump", d.Dump, "print a human-readable dump of the packed records to stderr")
	flags.String("log-level", d.LogLevel, "log level: debug, info, warn, error")
	flags.String("log-output", d.LogOutput, "log sink: stderr, stdout, or file")
	flags.String("log-path", d.LogPath, "log file path, used when --log-output=file")
	flags.Bool("color", d.Color, "colorize the stdout summary report")
	flags.String("config", "", "optional config file (yaml, toml, json) overriding the defaults above")
}

// FromCommand resolves a Config for one compile run. Precedence, lowest to
// highest: Defaults(), the --config file if given, DAWGC_-prefixed
// environment variables, then explicit flags, then positional args for
// input/output.
func FromCommand(cmd *cobra.Command, args []string) (Config, error) {
	conf := Defaults()
	flags := cmd.Flags()

	if configFile, _ := flags.GetString("config"); configFile != "" {
		if err := applyConfigFile(&conf, configFile); err != nil {
			return conf, err
		}
	}

	v := viper.New()
	v.SetEnvPrefix("DAWGC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	applyString(flags, v, "output", &conf.Output)
	applyInt(flags, v, "max-word-length", &conf.MaxWordLength)
	applyBool(flags, v, "verify", &conf.Verify)
	applyBool(flags, v, "dot", &conf.DOT)
	applyString(flags, v, "dot-path", &conf.DOTPath)
	applyBool(flags, v, "dump", &conf.Dump)
	applyString(flags, v, "log-level", &conf.LogLevel)
	applyString(flags, v, "log-output", &conf.LogOutput)
	applyString(flags, v, "log-path", &conf.LogPath)
	applyBool(flags, v, "color", &conf.Color)

	switch len(args) {
	case 0:
	case 1:
		conf.Input = args[0]
	default:
		conf.Input = args[0]
		conf.Output = args[1]
	}

	return conf, nil
}

func applyConfigFile(conf *Config, path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "dawg: could not read config file %q", path)
	}
	if err := v.Unmarshal(conf); err != nil {
		return errors.Wrapf(err, "dawg: could not parse config file %q", path)
	}
	return nil
}

// applyString takes the flag's value if it was explicitly set on the
// command line, else the environment's value if present, else leaves dst
// untouched — it already holds whatever Defaults()/applyConfigFile left
// there, and re-reading the flag's registered default here would clobber
// that.
func applyString(flags *pflag.FlagSet, v *viper.Viper, name string, dst *string) {
	if flags.Changed(name) {
		*dst, _ = flags.GetString(name)
		return
	}
	if envVal := v.GetString(envKey(name)); envVal != "" {
		*dst = envVal
	}
}

func applyInt(flags *pflag.FlagSet, v *viper.Viper, name string, dst *int) {
	if flags.Changed(name) {
		*dst, _ = flags.GetInt(name)
		return
	}
	if v.IsSet(envKey(name)) {
		*dst = v.GetInt(envKey(name))
	}
}

func applyBool(flags *pflag.FlagSet, v *viper.Viper, name string, dst *bool) {
	if flags.Changed(name) {
		*dst, _ = flags.GetBool(name)
		return
	}
	if v.IsSet(envKey(name)) {
		*dst = v.GetBool(envKey(name))
	}
}

func envKey(flagName string) string {
	return strings.ReplaceAll(flagName, "-", "_")
}
