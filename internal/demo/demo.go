// Package demo runs named demonstration suites over the library and logs
// every step with its stringified result.
package demo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/charmingruby/functional/internal/config"
	"github.com/charmingruby/functional/internal/logging"
)

// ErrUnknownSuite is returned when a requested suite does not exist.
var ErrUnknownSuite = errors.New("unknown suite")

var errEmptyInput = errors.New("empty input")

// Step is one observed value of a suite.
type Step struct {
	Name   string
	Result string
}

// Suite is a named group of steps.
type Suite struct {
	Name        string
	Description string
	run         func(cfg config.DemoConfig) []Step
}

// SuiteResult holds the steps one suite produced.
type SuiteResult struct {
	Suite string
	Steps []Step
}

// Report is the outcome of a Run.
type Report struct {
	RunID   string
	Results []SuiteResult
}

var suites = []Suite{
	{Name: "curry", Description: "currying of values, functions, closures, handles and methods", run: currySuite},
	{Name: "combinator", Description: "recursion through the Y combinator", run: combinatorSuite},
	{Name: "tuple", Description: "typed cons-list tuples and products", run: tupleSuite},
	{Name: "typeclass", Description: "functor, applicative and monad over option, result, effect, seq and validated", run: typeclassSuite},
}

// Suites returns every registered suite in run order.
func Suites() []Suite {
	return append([]Suite(nil), suites...)
}

// Names returns the names of every registered suite.
func Names() []string {
	return lo.Map(suites, func(s Suite, _ int) string { return s.Name })
}

// Select resolves names to suites, keeping the requested order and dropping
// duplicates. No names selects every suite.
func Select(names []string) ([]Suite, error) {
	if len(names) == 0 {
		return Suites(), nil
	}
	names = lo.Uniq(names)
	if unknown := lo.Without(names, Names()...); len(unknown) > 0 {
		return nil, fmt.Errorf("%w: %s (available: %s)",
			ErrUnknownSuite, strings.Join(unknown, ", "), strings.Join(Names(), ", "))
	}
	byName := lo.KeyBy(suites, func(s Suite) string { return s.Name })
	return lo.Map(names, func(n string, _ int) Suite { return byName[n] }), nil
}

// Runner executes suites and logs their steps.
type Runner struct {
	logger zerolog.Logger
	cfg    config.DemoConfig
}

// NewRunner returns a Runner logging to logger.
func NewRunner(logger zerolog.Logger, cfg config.DemoConfig) *Runner {
	return &Runner{logger: logger, cfg: cfg}
}

// Run executes the named suites, or the configured ones when names is
// empty, or all of them when neither names a suite.
func (r *Runner) Run(names []string) (Report, error) {
	if len(names) == 0 {
		names = r.cfg.Suites
	}
	selected, err := Select(names)
	if err != nil {
		return Report{}, err
	}

	logger, runID := logging.WithRunID(r.logger)
	logger.Info().
		Strs("suites", lo.Map(selected, func(s Suite, _ int) string { return s.Name })).
		Msg("demo run started")

	report := Report{RunID: runID}
	for _, s := range selected {
		steps := s.run(r.cfg)
		for _, st := range steps {
			logger.Info().
				Str("suite", s.Name).
				Str("step", st.Name).
				Str("result", st.Result).
				Msg("step")
		}
		report.Results = append(report.Results, SuiteResult{Suite: s.Name, Steps: steps})
	}

	logger.Info().Int("suites", len(report.Results)).Msg("demo run finished")
	return report, nil
}

type recorder struct {
	steps []Step
}

func (r *recorder) add(name string, v any) {
	r.steps = append(r.steps, Step{Name: name, Result: fmt.Sprint(v)})
}
