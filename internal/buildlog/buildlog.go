// Package buildlog is the structured logger every compiler stage writes
// through. It follows the teacher corpus's convention (go-arcade-arcade's
// pkg/log) of a package-level *zap.SugaredLogger configured once at
// startup rather than threading a logger through every call, and tags
// every record with a build correlation ID so a single compiler
// invocation's log lines can be grepped out of a shared log stream.
package buildlog

import (
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Conf controls where log output goes and how verbose it is.
type Conf struct {
	// Level is one of "debug", "info", "warn", "error". Empty means "info".
	Level string
	// Output is "stderr", "stdout", or "file". Empty means "stderr".
	Output string
	// Path is the file path to log to when Output == "file".
	Path string
}

var (
	sugar   *zap.SugaredLogger
	buildID string
)

// Init configures the package-level logger from conf and mints a fresh
// build correlation ID. It must be called once before any of the package
// functions below are used; cmd/dawgc does this as soon as its
// configuration is resolved, before the compile run starts.
func Init(conf Conf) error {
	level, err := parseLevel(conf.Level)
	if err != nil {
		return err
	}

	sink, err := openSink(conf)
	if err != nil {
		return err
	}

	encoderConf := zap.NewProductionEncoderConfig()
	encoderConf.TimeKey = "ts"
	encoderConf.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConf), sink, level)
	buildID = uuid.NewString()
	logger := zap.New(core).With(zap.String("build_id", buildID))
	sugar = logger.Sugar()
	return nil
}

// BuildID returns the correlation ID minted by Init, for embedding in the
// human-readable stdout report alongside the structured log.
func BuildID() string {
	return buildID
}

// L returns the package-level logger. It is a no-op logger if Init has not
// been called, so tests that never touch logging configuration don't panic.
func L() *zap.SugaredLogger {
	if sugar == nil {
		return zap.NewNop().Sugar()
	}
	return sugar
}

// Sync flushes any buffered log entries. Errors from syncing stderr/stdout
// are expected on some platforms and are deliberately ignored by callers.
func Sync() error {
	if sugar == nil {
		return nil
	}
	return sugar.Sync()
}

func parseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return zapcore.InfoLevel, nil
	}
	var l zapcore.Level
	if err := l.Set(level); err != nil {
		return 0, errors.Wrapf(err, "dawg: invalid log level %q", level)
	}
	return l, nil
}

func openSink(conf Conf) (zapcore.WriteSyncer, error) {
	switch conf.Output {
	case "", "stderr":
		return zapcore.AddSync(os.Stderr), nil
	case "stdout":
		return zapcore.AddSync(os.Stdout), nil
	case "file":
		f, err := os.OpenFile(conf.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, errors.Wrapf(err, "dawg: could not open log file %q", conf.Path)
		}
		return zapcore.AddSync(f), nil
	default:
		return nil, errors.Errorf("dawg: unknown log output %q", conf.Output)
	}
}
