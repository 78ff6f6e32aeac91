// Package config loads the settings of the fgpdemo runner.
package config

import (
	"strings"

	"github.com/rs/zerolog"
)

// Log levels accepted in LoggingConfig.Level.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Log formats accepted in LoggingConfig.Format.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
	FormatAuto    = "auto"
)

// Config is the root of the demo configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
	Demo    DemoConfig    `yaml:"demo" toml:"demo"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`   // debug, info, warn, error
	Format string `yaml:"format" toml:"format"` // json, console, auto
	Output string `yaml:"output" toml:"output"` // stdout, stderr, or file path
}

// DemoConfig holds the inputs of the demonstration suites.
type DemoConfig struct {
	// Suites limits a run to the named suites. Empty runs all of them.
	Suites []string `yaml:"suites" toml:"suites"`

	// CounterStart is the first value handed out by the effect counter.
	CounterStart uint64 `yaml:"counter_start" toml:"counter_start"`

	// FactorialOf and FibonacciOf are the inputs of the fixed-point suite.
	FactorialOf int `yaml:"factorial_of" toml:"factorial_of"`
	FibonacciOf int `yaml:"fibonacci_of" toml:"fibonacci_of"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  LevelInfo,
			Format: FormatAuto,
			Output: "stdout",
		},
		Demo: DemoConfig{
			CounterStart: 1,
			FactorialOf:  5,
			FibonacciOf:  10,
		},
	}
}

// ParseLevel converts the configured level to a zerolog.Level, falling back
// to info.
func (l *LoggingConfig) ParseLevel() zerolog.Level {
	switch strings.ToLower(l.Level) {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
