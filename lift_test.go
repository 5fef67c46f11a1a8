// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package accum_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/accum"
	"code.hybscloud.com/accum/eff"
	"code.hybscloud.com/accum/either"
	"code.hybscloud.com/accum/monoid"
)

type config struct {
	Name  string
	Depth int
}

func TestAsk(t *testing.T) {
	r := eff.Reader[config]{}
	w := accum.Ask(r, str)

	p := eff.RunReader[config, accum.Pair[config, string]](config{Name: "svc"}, accum.Run(w))
	assert.Equal(t, accum.MakePair(config{Name: "svc"}, ""), p)
}

func TestAsks(t *testing.T) {
	r := eff.Reader[config]{}
	w := accum.Chain(r, str, accum.Asks(r, str, func(c config) string { return c.Name }), func(name string) accum.AccumT[string, int, eff.Eff] {
		return accum.Writer(r, len(name), "name="+name)
	})

	p := eff.RunReader[config, accum.Pair[int, string]](config{Name: "svc"}, accum.Run(w))
	assert.Equal(t, accum.MakePair(3, "name=svc"), p)
}

func TestLocalScopesEnvironment(t *testing.T) {
	r := eff.Reader[config]{}
	depth := func(tag string) accum.AccumT[string, int, eff.Eff] {
		return accum.Chain(r, str, accum.Asks(r, str, func(c config) int { return c.Depth }), func(d int) accum.AccumT[string, int, eff.Eff] {
			return accum.Writer(r, d, tag+strconv.Itoa(d)+";")
		})
	}
	deeper := func(c config) config { c.Depth++; return c }

	w := accum.Then(r, str, depth("outer"),
		accum.Then(r, str, accum.Local(r, deeper, accum.Local(r, deeper, depth("inner"))), depth("after")))

	p := eff.RunReader[config, accum.Pair[int, string]](config{}, accum.Run(w))
	assert.Equal(t, 0, p.Fst)
	assert.Equal(t, "outer0;inner2;after0;", p.Snd)
}

func TestLocalKeepsOutput(t *testing.T) {
	r := eff.Reader[int]{}
	inner := accum.Then(r, ints, accum.Tell(r, []int{1}), accum.Asks(r, ints, func(n int) int { return n * 10 }))
	w := accum.Local(r, func(n int) int { return n + 1 }, inner)

	p := eff.RunReader[int, accum.Pair[int, []int]](4, accum.Run(w))
	assert.Equal(t, accum.MakePair(50, []int{1}), p)
}

func TestGetPutModify(t *testing.T) {
	st := eff.Stateful[int]{}
	w := accum.Chain(st, str, accum.Get(st, str), func(s int) accum.AccumT[string, int, eff.Eff] {
		return accum.Then(st, str, accum.Tell(st, "got "+strconv.Itoa(s)+";"),
			accum.Then(st, str, accum.Put(st, str, s*2),
				accum.Modify(st, str, func(n int) int { return n + 1 })))
	})

	p, final := eff.RunState[int, accum.Pair[int, string]](5, accum.Run(w))
	assert.Equal(t, accum.MakePair(11, "got 5;"), p)
	assert.Equal(t, 11, final)
}

func TestState(t *testing.T) {
	st := eff.Stateful[[]string]{}
	pop := accum.State(st, ints, func(s []string) (string, []string) { return s[0], s[1:] })
	w := accum.Chain(st, ints, pop, func(head string) accum.AccumT[[]int, string, eff.Eff] {
		return accum.Writer(st, head, []int{len(head)})
	})

	p, rest := eff.RunState[[]string, accum.Pair[string, []int]]([]string{"abc", "de"}, accum.Run(w))
	assert.Equal(t, accum.MakePair("abc", []int{3}), p)
	assert.Equal(t, []string{"de"}, rest)
}

func TestCallCCExit(t *testing.T) {
	ctl := em
	w := accum.Then(ctl, str, accum.Tell(ctl, "outer;"),
		accum.CallCC(ctl, str, func(exit func(int) accum.AccumT[string, int, eff.Eff]) accum.AccumT[string, int, eff.Eff] {
			return accum.Then(ctl, str, accum.Tell(ctl, "before;"),
				accum.Chain(ctl, str, exit(7), func(int) accum.AccumT[string, int, eff.Eff] {
					return accum.Writer(ctl, 99, "unreachable;")
				}))
		}))

	assert.Equal(t, accum.MakePair(7, "outer;"), runEff(w))
}

func TestCallCCNormalReturn(t *testing.T) {
	w := accum.CallCC(em, str, func(func(int) accum.AccumT[string, struct{}, eff.Eff]) accum.AccumT[string, int, eff.Eff] {
		return accum.Writer(em, 1, "kept")
	})
	assert.Equal(t, accum.MakePair(1, "kept"), runEff(w))
}

func TestCallCCConditionalExit(t *testing.T) {
	find := func(xs []int, target int) accum.AccumT[[]int, int, eff.Eff] {
		return accum.CallCC(em, ints, func(exit func(int) accum.AccumT[[]int, struct{}, eff.Eff]) accum.AccumT[[]int, int, eff.Eff] {
			w := accum.Of(em, ints, struct{}{})
			for i, x := range xs {
				w = accum.Then(em, ints, w, accum.Tell(em, []int{x}))
				if x == target {
					w = accum.Then(em, ints, w, exit(i))
				}
			}
			return accum.Then(em, ints, w, accum.Of(em, ints, -1))
		})
	}

	assert.Equal(t, accum.MakePair(1, []int(nil)), runEff(find([]int{4, 5, 6}, 5)))
	assert.Equal(t, accum.MakePair(-1, []int{4, 5, 6}), runEff(find([]int{4, 5, 6}, 9)))
}

func TestThrowCatchEither(t *testing.T) {
	ex := either.Monad[string]{}
	body := accum.Then(ex, str, accum.Tell(ex, "w1"), accum.Throw[int](ex, str, "boom"))
	w := accum.Catch(ex, body, func(err string) accum.AccumT[string, int, either.Result[string]] {
		return accum.Writer(ex, len(err), "w2")
	})

	p, ok := runEither(w).GetRight()
	require.True(t, ok)
	assert.Equal(t, accum.MakePair(4, "w2"), p, "output before the throw is discarded")
}

func TestCatchSuccessKeepsOutput(t *testing.T) {
	ex := either.Monad[string]{}
	w := accum.Catch(ex, accum.Writer(ex, 1, "ok"), func(string) accum.AccumT[string, int, either.Result[string]] {
		return accum.Writer(ex, 0, "handler")
	})

	p, ok := runEither(w).GetRight()
	require.True(t, ok)
	assert.Equal(t, accum.MakePair(1, "ok"), p)
}

func TestCatchKeepsOuterOutput(t *testing.T) {
	ex := either.Monad[string]{}
	caught := accum.Catch(ex, accum.Throw[int](ex, str, "x"), func(string) accum.AccumT[string, int, either.Result[string]] {
		return accum.Writer(ex, 2, "h;")
	})
	w := accum.Then(ex, str, accum.Tell(ex, "pre;"), caught)

	p, ok := runEither(w).GetRight()
	require.True(t, ok)
	assert.Equal(t, accum.MakePair(2, "pre;h;"), p)
}

func TestUncaughtThrowEither(t *testing.T) {
	ex := either.Monad[string]{}
	w := accum.Then(ex, str, accum.Tell(ex, "w1"), accum.Throw[int](ex, str, "boom"))

	err, ok := runEither(w).GetLeft()
	require.True(t, ok)
	assert.Equal(t, "boom", err)
}

func TestThrowCatchEff(t *testing.T) {
	ex := eff.Exception[string]{}
	body := accum.Then(ex, str, accum.Tell(ex, "w1"), accum.Throw[int](ex, str, "boom"))
	w := accum.Catch(ex, body, func(err string) accum.AccumT[string, int, eff.Eff] {
		return accum.Writer(ex, len(err), "w2")
	})

	r := eff.RunError[string, accum.Pair[int, string]](accum.Run(w))
	p, ok := r.GetRight()
	require.True(t, ok)
	assert.Equal(t, accum.MakePair(4, "w2"), p)
}

func TestUncaughtThrowEff(t *testing.T) {
	ex := eff.Exception[string]{}
	w := accum.Then(ex, str, accum.Tell(ex, "w1"), accum.Throw[int](ex, str, "boom"))

	r := eff.RunError[string, accum.Pair[int, string]](accum.Run(w))
	err, ok := r.GetLeft()
	require.True(t, ok)
	assert.Equal(t, "boom", err)
}

func TestCatchRethrow(t *testing.T) {
	ex := eff.Exception[string]{}
	inner := accum.Catch(ex, accum.Throw[int](ex, str, "inner"), func(err string) accum.AccumT[string, int, eff.Eff] {
		return accum.Throw[int](ex, str, err+"+rethrown")
	})
	w := accum.Catch(ex, inner, func(err string) accum.AccumT[string, int, eff.Eff] {
		return accum.Writer(ex, 0, err)
	})

	r := eff.RunError[string, accum.Pair[int, string]](accum.Run(w))
	p, ok := r.GetRight()
	require.True(t, ok)
	assert.Equal(t, accum.MakePair(0, "inner+rethrown"), p)
}

func TestCatchWithErrorsMonoid(t *testing.T) {
	// Errors collected as output survive alongside a recovered failure.
	errs := monoid.Errors{}
	ex := either.Monad[error]{}
	errA := errors.New("a")
	errFatal := errors.New("fatal")

	step := accum.Then(ex, errs, accum.Tell(ex, errA), accum.Of(ex, errs, 1))
	body := accum.Then(ex, errs, step, accum.Throw[int](ex, errs, errFatal))
	w := accum.Then(ex, errs, step, accum.Catch(ex, body, func(err error) accum.AccumT[error, int, either.Result[error]] {
		return accum.Writer(ex, -1, err)
	}))

	r := either.Typed[accum.Pair[int, error]](accum.Run(w))
	p, ok := r.GetRight()
	require.True(t, ok)
	assert.Equal(t, -1, p.Fst)
	assert.ErrorIs(t, p.Snd, errA)
	assert.ErrorIs(t, p.Snd, errFatal)
}

func TestCatchRestoresEnvironment(t *testing.T) {
	// A throw inside Local unwinds the override along with the failed branch.
	type env = int
	x := eff.Exception[string]{}
	r := eff.Reader[env]{}
	body := accum.Local(r, func(n env) env { return n + 100 },
		accum.Then(x, str, accum.Tell(x, "lost"), accum.Throw[int](x, str, "boom")))
	w := accum.Catch(x, body, func(string) accum.AccumT[string, int, eff.Eff] {
		return accum.Asks(r, str, func(n env) int { return n })
	})

	res, _ := eff.RunAll[env, struct{}, string, accum.Pair[int, string]](1, struct{}{}, accum.Run(w))
	p, ok := res.GetRight()
	require.True(t, ok)
	assert.Equal(t, accum.MakePair(1, ""), p)
}

func TestCatchKeepsState(t *testing.T) {
	x := eff.Exception[string]{}
	st := eff.Stateful[int]{}
	body := accum.Then(x, str, accum.Put(st, str, 42), accum.Throw[int](x, str, "boom"))
	w := accum.Catch(x, body, func(string) accum.AccumT[string, int, eff.Eff] {
		return accum.Get(st, str)
	})

	res, final := eff.RunAll[struct{}, int, string, accum.Pair[int, string]](struct{}{}, 0, accum.Run(w))
	p, ok := res.GetRight()
	require.True(t, ok)
	assert.Equal(t, accum.MakePair(42, ""), p)
	assert.Equal(t, 42, final)
}

func TestCallCCExitLeavesCatch(t *testing.T) {
	ex := eff.Exception[string]{}
	runs := 0
	escape := accum.CallCC(ex, str, func(exit func(int) accum.AccumT[string, int, eff.Eff]) accum.AccumT[string, int, eff.Eff] {
		return accum.Catch(ex, exit(1), func(string) accum.AccumT[string, int, eff.Eff] {
			return accum.Writer(ex, 99, "handler;")
		})
	})
	w := accum.Chain(ex, str, escape, func(n int) accum.AccumT[string, int, eff.Eff] {
		runs++
		assert.Equal(t, 1, n)
		return accum.Then(ex, str, accum.Tell(ex, "after;"), accum.Throw[int](ex, str, "late"))
	})

	r := eff.RunError[string, accum.Pair[int, string]](accum.Run(w))
	err, ok := r.GetLeft()
	require.True(t, ok, "a throw after the exit is not caught by the abandoned Catch")
	assert.Equal(t, "late", err)
	assert.Equal(t, 1, runs)
}

func TestCallCCExitLeavesLocal(t *testing.T) {
	r := eff.Reader[int]{}
	escape := accum.CallCC(r, str, func(exit func(int) accum.AccumT[string, int, eff.Eff]) accum.AccumT[string, int, eff.Eff] {
		return accum.Local(r, func(n int) int { return n + 100 }, exit(1))
	})
	w := accum.Chain(r, str, escape, func(n int) accum.AccumT[string, int, eff.Eff] {
		return accum.Asks(r, str, func(env int) int { return n*1000 + env })
	})

	p := eff.RunReader[int, accum.Pair[int, string]](1, accum.Run(w))
	assert.Equal(t, accum.MakePair(1001, ""), p)
}
