// Command dawgc compiles a newline-separated word list into a packed DAWG
// file, the way the teacher package's dawg-dict tool builds its on-disk
// dictionary — but driven by cobra rather than bare flag parsing, since the
// expanded command surface here (verify/dot/dump/log/config knobs) is wide
// enough to want subcommand-style help and usage text.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kbrandt/dawgc/internal/buildlog"
	"github.com/kbrandt/dawgc/internal/compiler"
	"github.com/kbrandt/dawgc/internal/config"
	"github.com/kbrandt/dawgc/internal/report"
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	defer func() {
		if r := recover(); r != nil {
			buildlog.L().Errorw("compile panicked", "panic", r)
			fmt.Fprintln(os.Stderr, "dawgc: internal error:", r)
			code = 1
		}
	}()

	root := newRootCommand()
	if err := root.Execute(); err != nil {
		// cobra's own error and usage output is silenced; exitCode prints
		// the single diagnostic line.
		return exitCode(err)
	}
	return 0
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dawgc [input] [output]",
		Short: "Compile a word list into a packed Directed Acyclic Word Graph",
		Long: "dawgc builds a minimized DAWG from a newline-separated word list " +
			"and writes it as a flat array of little-endian 32-bit records.",
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, args)
		},
	}
	config.BindFlags(cmd)
	return cmd
}

func runCompile(cmd *cobra.Command, args []string) error {
	conf, err := config.FromCommand(cmd, args)
	if err != nil {
		return err
	}

	if err := buildlog.Init(buildlog.Conf{
		Level:  conf.LogLevel,
		Output: conf.LogOutput,
		Path:   conf.LogPath,
	}); err != nil {
		return err
	}
	defer buildlog.Sync()

	result, err := compiler.Run(conf)
	if err != nil {
		logFailure(err)
		return err
	}

	report.Print(os.Stdout, result.Stats, conf.Color)
	return nil
}

func logFailure(err error) {
	var ce *compiler.Error
	if cerr, ok := err.(*compiler.Error); ok {
		ce = cerr
	}
	if ce == nil {
		buildlog.L().Errorw("compile failed", "error", err)
		return
	}
	buildlog.L().Errorw("compile failed", "error", ce.Err, "kind", kindName(ce.Kind))
}

func kindName(kind compiler.Kind) string {
	switch kind {
	case compiler.KindInputOpen:
		return "input_open"
	case compiler.KindOutputWrite:
		return "output_write"
	case compiler.KindCapacityOverflow:
		return "capacity_overflow"
	case compiler.KindVerifyFailed:
		return "verify_failed"
	default:
		return "internal"
	}
}

// exitCode maps a pipeline failure to the process exit status spec §7's
// error taxonomy calls for: distinct small integers per failure family, so
// scripts driving this tool can branch without parsing stderr.
func exitCode(err error) int {
	ce, ok := err.(*compiler.Error)
	if !ok {
		fmt.Fprintln(os.Stderr, "dawgc:", err)
		return 1
	}

	fmt.Fprintln(os.Stderr, "dawgc:", ce.Error())
	switch ce.Kind {
	case compiler.KindInputOpen:
		return 2
	case compiler.KindOutputWrite:
		return 3
	case compiler.KindCapacityOverflow:
		return 4
	case compiler.KindVerifyFailed:
		return 5
	default:
		return 1
	}
}
