// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import "code.hybscloud.com/accum"

// Reader effect operations.

// Ask is the effect operation for reading the environment.
// Perform(Ask[E]{}) returns the current environment of type E.
type Ask[E any] struct{}

// Local is the effect operation for overriding the environment.
// Perform(Local[E]{F: f}) replaces the environment with f applied to it
// and returns the previous environment.
type Local[E any] struct{ F func(E) E }

// restoreEnv reinstates the environment saved by Local.
type restoreEnv[E any] struct{ env accum.Erased }

// AskEnv performs Ask.
func AskEnv[E any]() Eff {
	return Perform(Ask[E]{})
}

// LocalEnv runs body with the environment modified by f and restores the
// previous environment when body completes.
func LocalEnv[E any](f func(E) E, body Eff) Eff {
	return func(k func(accum.Erased) Resumed) Resumed {
		return acquireMarker(Local[E]{F: f}, func(prev accum.Erased) Resumed {
			return body(func(v accum.Erased) Resumed {
				return acquireMarker(restoreEnv[E]{env: prev}, func(accum.Erased) Resumed {
					return k(v)
				})
			})
		})
	}
}

// State effect operations.

// Get is the effect operation for reading state.
type Get[S any] struct{}

// Put is the effect operation for writing state.
type Put[S any] struct{ Value S }

// State is the effect operation for a combined read and write.
// Perform(State[S]{F: f}) applies f to the state, stores the second
// result and returns the first.
type State[S any] struct{ F func(S) (accum.Erased, S) }

// GetState performs Get.
func GetState[S any]() Eff {
	return Perform(Get[S]{})
}

// PutState performs Put.
func PutState[S any](s S) Eff {
	return Perform(Put[S]{Value: s})
}

// Error effect operations.

// Throw is the effect operation for raising an error.
// Perform(Throw[X]{Err: e}) abandons the computation up to the nearest
// enclosing CatchError, or aborts the run with e.
type Throw[X any] struct{ Err X }

// catchOp installs an error handler for the rest of a CatchError body.
type catchOp[X any] struct {
	handler func(X) Eff
	k       func(accum.Erased) Resumed
}

// uncatch removes the handler installed by the matching catchOp.
type uncatch[X any] struct{}

// ThrowError performs Throw. The continuation is never called.
func ThrowError[X any](err X) Eff {
	return Perform(Throw[X]{Err: err})
}

// CatchError runs body; if body throws, the environment is restored to what
// it was on entry and handler's computation replaces the rest of body.
// State changes made by body before the throw are kept.
func CatchError[X any](body Eff, handler func(X) Eff) Eff {
	return func(k func(accum.Erased) Resumed) Resumed {
		return acquireMarker(catchOp[X]{handler: handler, k: k}, func(accum.Erased) Resumed {
			return body(func(v accum.Erased) Resumed {
				return acquireMarker(uncatch[X]{}, func(accum.Erased) Resumed {
					return k(v)
				})
			})
		})
	}
}

// Control operations.

// scope is the runtime position a CallCC exit returns to: the catch depth
// and the environment seen when CallCC was entered.
type scope struct {
	depth int
	env   accum.Erased
}

// enterScope records the current scope. It is answered by the evaluation
// loop, never by a Handler.
type enterScope struct{}

// exitScope drops catch frames above the recorded depth and reinstates the
// recorded environment.
type exitScope struct{ to scope }

// scoped is implemented by handlers that keep a catch stack or an
// environment. Other handlers see scope operations as no-ops.
type scoped interface {
	enter() scope
	exit(to scope)
}

// dispatchScope answers scope operations for h.
// It reports false for every other operation.
func dispatchScope(h any, op Operation) (Resumed, bool) {
	sh, _ := h.(scoped)
	switch o := op.(type) {
	case enterScope:
		if sh == nil {
			return scope{}, true
		}
		return sh.enter(), true
	case exitScope:
		if sh != nil {
			sh.exit(o.to)
		}
		return struct{}{}, true
	}
	return nil, false
}

// Escape calls f with an exit function that abandons the rest of f and
// resumes the continuation of Escape with its argument, like [CallCC].
// Unlike CallCC on a bare Cont, the exit also unwinds the runtime: catch
// frames installed by [CatchError] inside f are removed and the environment
// overridden by [LocalEnv] inside f is restored.
func Escape(f func(exit func(accum.Erased) Eff) Eff) Eff {
	return Bind(Perform(enterScope{}), func(at accum.Erased) Eff {
		return CallCC[Resumed, accum.Erased, accum.Erased](func(exit func(accum.Erased) Eff) Eff {
			return f(func(v accum.Erased) Eff {
				return Then(Perform(exitScope{to: at.(scope)}), exit(v))
			})
		})
	})
}
