// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import (
	"code.hybscloud.com/accum"
	"code.hybscloud.com/accum/either"
)

// none fills the runtime slot of an effect family a runner does not handle,
// so that operations of that family stay unhandled.
type none struct{}

// catchFrame is an installed error handler.
type catchFrame[E, X any] struct {
	handler func(X) Eff
	k       func(accum.Erased) Resumed
	env     E
}

// runtime handles Reader, State and Error effects from a single handler.
type runtime[E, S, X any] struct {
	name    string
	env     E
	state   S
	catches []catchFrame[E, X]
	err     X
	failed  bool
}

// Dispatch implements Handler for the composed runtime.
func (rt *runtime[E, S, X]) Dispatch(op Operation) (Resumed, bool) {
	switch o := op.(type) {
	case Ask[E]:
		return rt.env, true
	case Local[E]:
		prev := rt.env
		rt.env = o.F(prev)
		return prev, true
	case restoreEnv[E]:
		rt.env = as[E](o.env)
		return struct{}{}, true
	case Get[S]:
		return rt.state, true
	case Put[S]:
		rt.state = o.Value
		return struct{}{}, true
	case State[S]:
		v, next := o.F(rt.state)
		rt.state = next
		return v, true
	case Throw[X]:
		return rt.throw(o.Err)
	case catchOp[X]:
		rt.catches = append(rt.catches, catchFrame[E, X]{handler: o.handler, k: o.k, env: rt.env})
		return struct{}{}, true
	case uncatch[X]:
		rt.catches = rt.catches[:len(rt.catches)-1]
		return struct{}{}, true
	}
	unhandledEffect(rt.name, op)
	return nil, false
}

// throw unwinds to the innermost catch frame, or aborts the run.
func (rt *runtime[E, S, X]) throw(err X) (Resumed, bool) {
	n := len(rt.catches)
	if n == 0 {
		rt.err = err
		rt.failed = true
		return nil, false
	}
	f := rt.catches[n-1]
	rt.catches = rt.catches[:n-1]
	rt.env = f.env
	return &bounce{thunk: func() Resumed { return f.handler(err)(f.k) }}, true
}

func (rt *runtime[E, S, X]) enter() scope {
	return scope{depth: len(rt.catches), env: rt.env}
}

func (rt *runtime[E, S, X]) exit(to scope) {
	if len(rt.catches) > to.depth {
		clear(rt.catches[to.depth:])
		rt.catches = rt.catches[:to.depth]
	}
	rt.env = as[E](to.env)
}

// Run runs a computation that performs no effects.
// Panics if the computation performs an effect.
func Run[A any](m Eff) A {
	rt := &runtime[none, none, none]{name: "Run"}
	return as[A](Handle(m, rt))
}

// RunReader runs a computation with the given environment.
func RunReader[E, A any](env E, m Eff) A {
	rt := &runtime[E, none, none]{name: "RunReader", env: env}
	return as[A](Handle(m, rt))
}

// RunState runs a stateful computation and returns both the result and final state.
func RunState[S, A any](initial S, m Eff) (A, S) {
	rt := &runtime[none, S, none]{name: "RunState", state: initial}
	result := as[A](Handle(m, rt))
	return result, rt.state
}

// RunError runs a computation that may throw errors of type X.
func RunError[X, A any](m Eff) either.Either[X, A] {
	rt := &runtime[none, none, X]{name: "RunError"}
	result := Handle(m, rt)
	if rt.failed {
		return either.Left[X, A](rt.err)
	}
	return either.Right[X](as[A](result))
}

// RunAll runs a computation with Reader, State and Error effects.
// Returns (Either[X, A], S); state is always available, even on error.
func RunAll[E, S, X, A any](env E, initial S, m Eff) (either.Either[X, A], S) {
	rt := &runtime[E, S, X]{name: "RunAll", env: env, state: initial}
	result := Handle(m, rt)
	if rt.failed {
		return either.Left[X, A](rt.err), rt.state
	}
	return either.Right[X](as[A](result)), rt.state
}
