package demo_test

import (
	"bytes"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charmingruby/functional/internal/config"
	"github.com/charmingruby/functional/internal/demo"
	"github.com/charmingruby/functional/internal/logging"
)

func newRunner(t *testing.T, buf *bytes.Buffer, cfg config.DemoConfig) *demo.Runner {
	t.Helper()
	logger := logging.NewWithWriter(config.LoggingConfig{Level: "info"}, buf, false)
	return demo.NewRunner(logger, cfg)
}

func results(t *testing.T, report demo.Report, suite string) map[string]string {
	t.Helper()
	res, ok := lo.Find(report.Results, func(r demo.SuiteResult) bool { return r.Suite == suite })
	require.True(t, ok, "suite %s missing", suite)
	return lo.SliceToMap(res.Steps, func(s demo.Step) (string, string) { return s.Name, s.Result })
}

func TestRunAllSuites(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	report, err := newRunner(t, &buf, config.Default().Demo).Run(nil)
	require.NoError(t, err)

	assert.Equal(t, demo.Names(), lo.Map(report.Results, func(r demo.SuiteResult, _ int) string { return r.Suite }))
	assert.Len(t, report.RunID, 36)
	assert.Contains(t, buf.String(), report.RunID)
	assert.Contains(t, buf.String(), "demo run finished")
}

func TestCurrySuite(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	report, err := newRunner(t, &buf, config.Default().Demo).Run([]string{"curry"})
	require.NoError(t, err)

	got := results(t, report, "curry")
	assert.Equal(t, "10", got["value"])
	assert.Equal(t, "5", got["func0"])
	assert.Equal(t, "25", got["func1"])
	assert.Equal(t, "15", got["func2"])
	assert.Equal(t, "7.5", got["func3"])
	assert.Equal(t, "52.5", got["func4"])
	assert.Equal(t, "50", got["closure0"])
	assert.Equal(t, "150", got["closure2"])
	assert.Equal(t, "15", got["curried"])
	assert.Equal(t, "(5)", got["bound"])
	assert.Equal(t, "15", got["handle"])
	assert.Equal(t, "15", got["method pointer"])
	assert.Equal(t, "15", got["method value"])
	assert.Equal(t, "2500", got["compose"])
}

func TestCombinatorSuiteUsesConfig(t *testing.T) {
	t.Parallel()

	cfg := config.Default().Demo
	cfg.FactorialOf = 10
	cfg.FibonacciOf = 12

	var buf bytes.Buffer
	report, err := newRunner(t, &buf, cfg).Run([]string{"combinator"})
	require.NoError(t, err)

	got := results(t, report, "combinator")
	assert.Equal(t, "3628800", got["factorial"])
	assert.Equal(t, "144", got["fibonacci"])
}

func TestTupleSuite(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	report, err := newRunner(t, &buf, config.Default().Demo).Run([]string{"tuple"})
	require.NoError(t, err)

	got := results(t, report, "tuple")
	assert.Equal(t, "1", got["first"])
	assert.Equal(t, "2", got["second"])
	assert.Equal(t, "A", got["third"])
	assert.Equal(t, "(1, 2, B)", got["updated"])
	assert.Equal(t, "3", got["length"])
	assert.Equal(t, "{right left}", got["swap"])
}

func TestTypeclassSuite(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	report, err := newRunner(t, &buf, config.Default().Demo).Run([]string{"typeclass"})
	require.NoError(t, err)

	got := results(t, report, "typeclass")
	assert.Equal(t, "Some(0.5)", got["option bind"])
	assert.Equal(t, "None", got["option divide by zero"])
	assert.Equal(t, "None", got["option bind absent"])
	assert.Equal(t, "Some(5.5)", got["option bindFunc"])
	assert.Equal(t, "Some(5)", got["option bindVal"])
	assert.Equal(t, "None", got["option ap absent argument"])
	assert.Equal(t, "Ok(5)", got["result bind"])
	assert.Equal(t, "Err(empty input)", got["result bind error"])
	assert.Equal(t, "[11 12 10 20]", got["seq ap"])
	assert.Equal(t, "5", got["validated ap"])
	assert.Equal(t, "[-1 is not positive 0 is not positive]", got["validated ap accumulates"])
	assert.Equal(t, "Effect(6)", got["effect nested counter"])
}

func TestCounterStartShiftsEffectTotal(t *testing.T) {
	t.Parallel()

	cfg := config.Default().Demo
	cfg.CounterStart = 10

	var buf bytes.Buffer
	report, err := newRunner(t, &buf, cfg).Run([]string{"typeclass"})
	require.NoError(t, err)
	assert.Equal(t, "Effect(33)", results(t, report, "typeclass")["effect nested counter"])
}

func TestRunUsesConfiguredSuites(t *testing.T) {
	t.Parallel()

	cfg := config.Default().Demo
	cfg.Suites = []string{"tuple"}

	var buf bytes.Buffer
	report, err := newRunner(t, &buf, cfg).Run(nil)
	require.NoError(t, err)
	require.Len(t, report.Results, 1)
	assert.Equal(t, "tuple", report.Results[0].Suite)
}

func TestSelect(t *testing.T) {
	t.Parallel()

	selected, err := demo.Select([]string{"typeclass", "curry", "typeclass"})
	require.NoError(t, err)
	assert.Equal(t, []string{"typeclass", "curry"},
		lo.Map(selected, func(s demo.Suite, _ int) string { return s.Name }))

	_, err = demo.Select([]string{"curry", "monads"})
	require.ErrorIs(t, err, demo.ErrUnknownSuite)
	assert.Contains(t, err.Error(), "monads")
}
