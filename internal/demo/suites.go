package demo

import (
	"strconv"

	"github.com/charmingruby/functional/combinator"
	"github.com/charmingruby/functional/curry"
	"github.com/charmingruby/functional/effect"
	"github.com/charmingruby/functional/fp"
	"github.com/charmingruby/functional/internal/config"
	"github.com/charmingruby/functional/option"
	"github.com/charmingruby/functional/result"
	"github.com/charmingruby/functional/seq"
	"github.com/charmingruby/functional/tuple"
	"github.com/charmingruby/functional/validated"
)

func f0() int { return 5 }

func f1(i int) int { return i * i }

func f2(i, j int) int { return i + j }

func f3(i, j int, f float32) float32 { return float32(i+j) * f }

func f4(i int, j int64, f float32, d float64) float64 {
	return float64(int64(i)*j) + float64(f)*d
}

type adder struct {
	k int
}

func (a *adder) add(i, j int) int { return i + j + a.k }

func (a adder) sum(i, j int) int { return i + j + a.k }

func currySuite(config.DemoConfig) []Step {
	var r recorder
	v0 := 10

	r.add("value", curry.Value(v0))
	r.add("func0", curry.Func0(f0))
	r.add("func1", curry.Func1(f1).Call(5))
	r.add("func2", curry.Func2(f2).Call(5).Call(10))
	r.add("func3", curry.Func3(f3).Call(5).Call(10).Call(0.5))
	r.add("func4", curry.Func4(f4).Call(5).Call(10).Call(0.5).Call(5.0))

	r.add("closure0", curry.Func0(func() int { return 5 * v0 }))
	r.add("closure2", curry.Func2(func(i, j int) int { return (i + j) * v0 }).Call(5).Call(10))

	cr := curry.Func2(f2)
	r.add("curried", curry.Of(cr).Call(5).Call(10))
	r.add("bound", cr.Call(5).Bound())

	var h curry.Applyable2[int, int, int] = cr
	r.add("handle", curry.Apply2(h).Call(5).Call(10))

	a := adder{k: 3}
	r.add("method pointer", curry.Method2(&a, (*adder).add).Call(5).Call(7))
	r.add("method value", curry.Method2(a, adder.sum).Call(5).Call(7))

	r.add("compose", fp.Compose(f1, func(i int) int { return i * 10 })(5))
	return r.steps
}

func combinatorSuite(cfg config.DemoConfig) []Step {
	var r recorder

	fac := combinator.Y1(func(self curry.Applyable1[int, uint64], n int) uint64 {
		if n == 0 {
			return 1
		}
		return uint64(n) * self.Apply(n-1)
	})
	fib := combinator.Y1(func(self curry.Applyable1[int, int], n int) int {
		switch n {
		case 0:
			return 0
		case 1:
			return 1
		default:
			return self.Apply(n-1) + self.Apply(n-2)
		}
	})

	r.add("factorial", fac.Apply(cfg.FactorialOf))
	r.add("fibonacci", fib.Apply(cfg.FibonacciOf))
	return r.steps
}

func tupleSuite(config.DemoConfig) []Step {
	var r recorder

	t := tuple.Of3(1, float32(2.0), "A")
	r.add("first", t.Head)
	r.add("second", t.Tail.Head)
	r.add("third", t.Tail.Tail.Head)

	t.Tail.Tail.Head = "B"
	r.add("updated", t)
	r.add("length", t.Len())
	r.add("swap", tuple.NewPair("left", "right").Swap())
	return r.steps
}

func divide(n, d float64) option.Option[float64] {
	if d == 0 {
		return option.None[float64]()
	}
	return option.Some(n / d)
}

func typeclassSuite(cfg config.DemoConfig) []Step {
	var r recorder

	addFive := curry.Func2(func(x, y float64) float64 { return x + y }).Call(5)
	halve := curry.Func1(func(x float64) option.Option[float64] { return divide(x, 2) })

	r.add("option bind", option.Bind(halve, option.Some(1.0)))
	r.add("option divide by zero", divide(1, 0))
	r.add("option bind absent", option.Bind(halve, divide(1, 0)))
	r.add("option bindFunc", option.BindFunc(addFive, divide(1, 2)))
	r.add("option bindVal", option.BindVal(option.Some(5.0), divide(1, 2)))
	r.add("option ap absent argument",
		option.Ap(option.Pure[curry.Applyable1[float64, float64]](addFive), option.None[float64]()))

	parse := curry.Func1(func(s string) result.Result[int] {
		if s == "" {
			return result.Err[int](errEmptyInput)
		}
		return result.Ok(len(s))
	})
	r.add("result bind", result.Bind(parse, result.Ok("curry")))
	r.add("result bind error", result.Bind(parse, result.Ok("")))

	offsets := []curry.Applyable1[int, int]{
		curry.Func2(func(a, b int) int { return a + b }).Call(10),
		curry.Func2(func(a, b int) int { return a * b }).Call(10),
	}
	r.add("seq ap", seq.Ap(offsets, []int{1, 2}))

	positive := func(n int) validated.Validated[string, int] {
		if n <= 0 {
			return validated.Invalid[string, int](strconv.Itoa(n) + " is not positive")
		}
		return validated.Valid[string](n)
	}
	sum := curry.Func1(curry.Func2(func(a, b int) int { return a + b }).Bind)
	r.add("validated ap", validated.Ap(validated.Fmap[string, int, curry.Applyable1[int, int]](sum, positive(2)), positive(3)).UnsafeValue())
	r.add("validated ap accumulates",
		validated.Ap(validated.Fmap[string, int, curry.Applyable1[int, int]](sum, positive(-1)), positive(0)).Errors())

	c := effect.NewCounter(cfg.CounterStart)
	identity := curry.Func1(func(x uint64) uint64 { return x })
	inner := curry.Func1(func(x uint64) uint64 {
		return x + effect.BindFunc(identity, c.Next()).Unwrap()
	})
	outer := curry.Func1(func(x uint64) uint64 {
		return x + effect.BindFunc(inner, c.Next()).Unwrap()
	})
	r.add("effect nested counter", effect.BindFunc(outer, c.Next()))
	return r.steps
}
