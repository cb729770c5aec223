// Package logger provides the structured run log for autoprobe, built on zap.
//
// Console output goes to stdout or stderr. A file output is appended to and
// mirrored on stderr, so stdout carries only the run summary.
package logger

import (
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dbsmedya/autoprobe/internal/config"
)

// Logger wraps zap.SugaredLogger with run, endpoint and query context.
type Logger struct {
	*zap.SugaredLogger
	base *zap.Logger

	// log file opened by New; shared by every derived Logger
	file *os.File
}

// New creates a Logger from the logging section of the configuration. It
// fails on an unknown level or a log file that cannot be opened.
func New(cfg *config.LoggingConfig) (*Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	sink, file, err := openSink(cfg.Output)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(buildEncoder(cfg.Format), sink, level)
	base := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))

	return &Logger{
		SugaredLogger: base.Sugar(),
		base:          base,
		file:          file,
	}, nil
}

// FromZap wraps an existing zap logger, e.g. one built on an observer core.
func FromZap(base *zap.Logger) *Logger {
	return &Logger{
		SugaredLogger: base.Sugar(),
		base:          base,
	}
}

// NewNop returns a Logger that discards everything.
func NewNop() *Logger {
	return FromZap(zap.NewNop())
}

func parseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return zapcore.InfoLevel, nil
	}
	l, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return l, nil
}

// buildEncoder returns a JSON encoder for "json" and a colored console
// encoder with short timestamps otherwise.
func buildEncoder(format string) zapcore.Encoder {
	cfg := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	if format == "json" {
		return zapcore.NewJSONEncoder(cfg)
	}

	cfg.CallerKey = zapcore.OmitKey
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	cfg.EncodeDuration = zapcore.StringDurationEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

// openSink resolves the output setting. The returned file is non-nil only
// when a log file was opened.
func openSink(output string) (zapcore.WriteSyncer, *os.File, error) {
	switch output {
	case "stdout", "":
		return zapcore.Lock(os.Stdout), nil, nil
	case "stderr":
		return zapcore.Lock(os.Stderr), nil, nil
	}

	file, err := os.OpenFile(output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	sink := zapcore.NewMultiWriteSyncer(
		zapcore.AddSync(file),
		zapcore.Lock(os.Stderr),
	)
	return sink, file, nil
}

func (l *Logger) with(args ...interface{}) *Logger {
	return &Logger{
		SugaredLogger: l.SugaredLogger.With(args...),
		base:          l.base,
		file:          l.file,
	}
}

// WithRun returns a Logger tagged with the exploration run ID.
func (l *Logger) WithRun(runID string) *Logger {
	return l.with("run_id", runID)
}

// WithEndpoint returns a Logger with endpoint context.
func (l *Logger) WithEndpoint(path string) *Logger {
	return l.with("endpoint", path)
}

// WithQuery returns a Logger with query context.
func (l *Logger) WithQuery(query string) *Logger {
	return l.with("query", query)
}

// WithFields returns a Logger with additional fields, added in key order.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]interface{}, 0, len(fields)*2)
	for _, k := range keys {
		args = append(args, k, fields[k])
	}
	return l.with(args...)
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.base.Sync()
}

// Close flushes the log and closes the log file, if any. Loggers derived
// from this one must not be used afterwards.
func (l *Logger) Close() error {
	// Syncing a terminal fails on some platforms; only the file matters.
	_ = l.base.Sync()
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
