package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/bnema/sortcell/internal/ports"
	"github.com/sirupsen/logrus"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

type Options struct {
	Level  string
	Format string
	Output io.Writer
}

// Logger adapts a logrus entry to ports.Logger.
type Logger struct {
	entry *logrus.Entry
}

var _ ports.Logger = (*Logger)(nil)

func New(opts Options) (*Logger, error) {
	base := logrus.New()
	if opts.Output != nil {
		base.SetOutput(opts.Output)
	}

	level := logrus.InfoLevel
	if opts.Level != "" {
		parsed, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}
	base.SetLevel(level)

	switch strings.ToLower(opts.Format) {
	case "", FormatText:
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case FormatJSON:
		base.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	return &Logger{entry: logrus.NewEntry(base)}, nil
}

// With returns a logger that attaches the given pairs to every record.
func (l *Logger) With(keysAndValues ...any) *Logger {
	return &Logger{entry: l.entry.WithFields(fields(keysAndValues))}
}

func (l *Logger) Debug(msg string, keysAndValues ...any) {
	l.entry.WithFields(fields(keysAndValues)).Debug(msg)
}

func (l *Logger) Info(msg string, keysAndValues ...any) {
	l.entry.WithFields(fields(keysAndValues)).Info(msg)
}

func (l *Logger) Warn(msg string, keysAndValues ...any) {
	l.entry.WithFields(fields(keysAndValues)).Warn(msg)
}

func (l *Logger) Error(msg string, keysAndValues ...any) {
	l.entry.WithFields(fields(keysAndValues)).Error(msg)
}

func fields(keysAndValues []any) logrus.Fields {
	out := make(logrus.Fields, (len(keysAndValues)+1)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])
		if i+1 >= len(keysAndValues) {
			out[key] = "(missing)"
			break
		}

		value := keysAndValues[i+1]
		if err, ok := value.(error); ok {
			value = err.Error()
		}
		out[key] = value
	}

	return out
}
