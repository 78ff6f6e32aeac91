package config

import "strings"

var validLogLevels = map[string]bool{
	"":         true,
	LevelDebug: true,
	LevelInfo:  true,
	LevelWarn:  true,
	LevelError: true,
}

var validLogFormats = map[string]bool{
	"":            true,
	FormatJSON:    true,
	FormatConsole: true,
	FormatAuto:    true,
}

// Largest inputs the fixed-point suite accepts. 20! is the last factorial
// that fits in a uint64 and the naive Fibonacci recursion grows
// exponentially.
const (
	maxFactorialOf = 20
	maxFibonacciOf = 32
)

// Validate checks the configuration and reports every problem at once.
func (c *Config) Validate() error {
	errs := &ValidationError{}
	validateLogging(c, errs)
	validateDemo(c, errs)
	return errs.ToError()
}

func validateLogging(c *Config, errs *ValidationError) {
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		errs.Addf("logging.level is invalid (got %q, valid: debug, info, warn, error)", c.Logging.Level)
	}
	if !validLogFormats[strings.ToLower(c.Logging.Format)] {
		errs.Addf("logging.format is invalid (got %q, valid: json, console, auto)", c.Logging.Format)
	}
}

func validateDemo(c *Config, errs *ValidationError) {
	for i, name := range c.Demo.Suites {
		if strings.TrimSpace(name) == "" {
			errs.Addf("demo.suites[%d] is empty", i)
		}
	}
	if c.Demo.FactorialOf < 0 || c.Demo.FactorialOf > maxFactorialOf {
		errs.Addf("demo.factorial_of must be between 0 and %d (got %d)", maxFactorialOf, c.Demo.FactorialOf)
	}
	if c.Demo.FibonacciOf < 0 || c.Demo.FibonacciOf > maxFibonacciOf {
		errs.Addf("demo.fibonacci_of must be between 0 and %d (got %d)", maxFibonacciOf, c.Demo.FibonacciOf)
	}
}
