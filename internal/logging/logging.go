// Package logging builds the zerolog logger used by the demo runner.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/charmingruby/functional/internal/config"
)

// New creates a logger from cfg. The returned close function releases the
// output file when Output names one and is a no-op otherwise.
func New(cfg config.LoggingConfig) (zerolog.Logger, func() error, error) {
	output, outputFile, err := selectOutput(cfg.Output)
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("failed to open log output: %w", err)
	}

	closer := func() error { return nil }
	if outputFile != nil && outputFile != os.Stdout && outputFile != os.Stderr {
		closer = outputFile.Close
	}

	return NewWithWriter(cfg, output, usePretty(cfg.Format, outputFile)), closer, nil
}

// NewWithWriter creates a logger writing to w. pretty selects the console
// writer over JSON lines.
func NewWithWriter(cfg config.LoggingConfig, w io.Writer, pretty bool) zerolog.Logger {
	if pretty {
		w = consoleWriter(w)
	}
	return zerolog.New(w).
		Level(cfg.ParseLevel()).
		With().
		Timestamp().
		Logger()
}

// WithRunID returns a child logger tagged with a fresh run_id.
func WithRunID(logger zerolog.Logger) (zerolog.Logger, string) {
	id := uuid.NewString()
	return logger.With().Str("run_id", id).Logger(), id
}

func selectOutput(output string) (io.Writer, *os.File, error) {
	switch output {
	case "", "stdout":
		return os.Stdout, os.Stdout, nil
	case "stderr":
		return os.Stderr, os.Stderr, nil
	default:
		f, err := os.OpenFile(filepath.Clean(output), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, err
		}
		return f, f, nil
	}
}

func usePretty(format string, outputFile *os.File) bool {
	switch strings.ToLower(format) {
	case config.FormatConsole:
		return true
	case config.FormatJSON:
		return false
	default:
		return outputFile != nil && isatty.IsTerminal(outputFile.Fd())
	}
}

func consoleWriter(w io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		FormatMessage: func(i any) string {
			if i == nil {
				return ""
			}
			return fmt.Sprintf("-> %s", i)
		},
	}
}
