package seq_test

import (
	"reflect"
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charmingruby/functional/curry"
	"github.com/charmingruby/functional/seq"
	"github.com/charmingruby/functional/tuple"
)

func TestBindEnumeratesCombinations(t *testing.T) {
	pairs := seq.Bind(curry.Func1(func(x int) []string {
		return seq.Fmap(curry.Func1(func(y string) string {
			return strconv.Itoa(x) + y
		}), []string{"a", "b"})
	}), []int{1, 2})
	assert.Equal(t, []string{"1a", "1b", "2a", "2b"}, pairs)
}

func TestEmptyShortCircuits(t *testing.T) {
	calls := 0
	f := curry.Func1(func(x int) []int {
		calls++
		return []int{x, x}
	})
	assert.Empty(t, seq.Bind(f, []int{}))
	assert.Empty(t, seq.BindFunc(curry.Func1(func(x int) int { return x }), nil))
	assert.Zero(t, calls)
}

func TestApAndBindVal(t *testing.T) {
	fns := []curry.Applyable1[int, int]{
		curry.Func1(func(i int) int { return i + 1 }),
		curry.Func1(func(i int) int { return i * 10 }),
	}
	assert.Equal(t, []int{2, 3, 10, 20}, seq.Ap(fns, []int{1, 2}))
	assert.Equal(t, []string{"x", "x", "x"}, seq.BindVal([]string{"x"}, []int{1, 2, 3}))
	assert.Equal(t, seq.Pure(4), seq.Unit(4))
}

func TestZip(t *testing.T) {
	got := seq.Zip([]int{1, 2, 3}, []string{"a", "b"})
	want := []tuple.Pair[int, string]{tuple.NewPair(1, "a"), tuple.NewPair(2, "b")}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected zip %v", got)
	}
}

func TestSeqLaws(t *testing.T) {
	properties := gopter.NewProperties(nil)

	twice := curry.Func1(func(x int) []int { return []int{x, x + 1} })
	unit := curry.Func1(seq.Unit[int])
	id := curry.Func1(func(x int) int { return x })

	properties.Property("left identity", prop.ForAll(
		func(v int) bool {
			return reflect.DeepEqual(seq.Bind(twice, seq.Unit(v)), twice.Call(v))
		},
		gen.Int(),
	))
	properties.Property("right identity", prop.ForAll(
		func(xs []int) bool {
			return reflect.DeepEqual(seq.Bind(unit, xs), append([]int{}, xs...))
		},
		gen.SliceOf(gen.Int()),
	))
	properties.Property("functor identity", prop.ForAll(
		func(xs []int) bool {
			return reflect.DeepEqual(seq.Fmap(id, xs), append([]int{}, xs...))
		},
		gen.SliceOf(gen.Int()),
	))

	require.True(t, properties.Run(gopter.ConsoleReporter(false)))
}
