package fp_test

import (
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/charmingruby/functional/curry"
	"github.com/charmingruby/functional/fp"
)

func TestPipeComposeCurry(t *testing.T) {
	sum := func(a, b int) int { return a + b }
	curried := fp.Curry(sum)
	if curried(2)(3) != 5 {
		t.Fatalf("unexpected curry result")
	}
	if fp.Uncurry(curried)(2, 3) != 5 {
		t.Fatalf("unexpected uncurry result")
	}
	pipeline := fp.ComposeAll(
		func(i int) int { return i * 2 },
		func(i int) int { return i + 1 },
	)
	if pipeline(3) != 8 {
		t.Fatalf("compose result mismatch")
	}
	final := fp.Pipe(1, func(i int) int { return i + 1 }, func(i int) int { return i * 5 })
	if final != 10 {
		t.Fatalf("pipe result mismatch")
	}
}

func TestComposeCurried(t *testing.T) {
	square := curry.Func1(func(i int) int { return i * i })
	tenfold := func(i int) int { return i * 10 }
	if got := fp.Compose(square.Call, tenfold)(5); got != 2500 {
		t.Fatalf("expected 2500, got %d", got)
	}
	show := fp.Compose(strconv.Itoa, square.Call)
	if got := show(4); got != "16" {
		t.Fatalf("expected \"16\", got %q", got)
	}
	if got := fp.Flip(func(a, b int) int { return a - b })(1, 10); got != 9 {
		t.Fatalf("flip mismatch: %d", got)
	}
	if fp.Identity("x") != "x" || fp.Constant(7)() != 7 {
		t.Fatalf("identity/constant mismatch")
	}
}

func TestComposeLaw_Properties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	f := func(s string) int { return len(s) * 3 }
	g := func(n int) string { return strconv.Itoa(n) + "!" }

	properties.Property("compose(f, g)(x) == f(g(x))", prop.ForAll(
		func(x int) bool {
			return fp.Compose(f, g)(x) == f(g(x))
		},
		gen.Int(),
	))

	properties.Property("identity is neutral on both sides", prop.ForAll(
		func(x int) bool {
			left := fp.Compose(fp.Identity[string], g)(x)
			right := fp.Compose(g, fp.Identity[int])(x)
			return left == g(x) && right == g(x)
		},
		gen.Int(),
	))

	properties.TestingRun(t)
}
