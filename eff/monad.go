// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import "code.hybscloud.com/accum"

// Monad is the capability dictionary for Eff.
// It implements accum.MonadRec and accum.Control.
type Monad struct{}

func (Monad) Of(a accum.Erased) Eff { return Pure(a) }

func (Monad) Map(m Eff, f func(accum.Erased) accum.Erased) Eff {
	return Map(m, f)
}

// Zip runs x, then y.
func (Monad) Zip(x, y Eff, f func(a, b accum.Erased) accum.Erased) Eff {
	return Bind(x, func(a accum.Erased) Eff {
		return Map(y, func(b accum.Erased) accum.Erased { return f(a, b) })
	})
}

func (Monad) Chain(m Eff, f func(accum.Erased) Eff) Eff {
	return Bind(m, f)
}

// TailRec is stack-safe under every runner and under Step.
func (Monad) TailRec(seed accum.Erased, step func(accum.Erased) Eff) Eff {
	return tailRec(seed, step)
}

// CallCC is [Escape]: an exit leaves every CatchError and LocalEnv scope
// entered inside f.
func (Monad) CallCC(f func(exit func(accum.Erased) Eff) Eff) Eff {
	return Escape(f)
}

// Reader extends Monad with the Reader effect; it implements accum.Reader.
type Reader[E any] struct{ Monad }

func (Reader[E]) Ask() Eff { return AskEnv[E]() }

func (Reader[E]) Local(f func(E) E, m Eff) Eff { return LocalEnv(f, m) }

// Stateful extends Monad with the State effect; it implements accum.Stateful.
type Stateful[S any] struct{ Monad }

func (Stateful[S]) State(f func(S) (accum.Erased, S)) Eff {
	return Perform(State[S]{F: f})
}

// Exception extends Monad with the Error effect; it implements
// accum.Exception and accum.Choice.
type Exception[X any] struct{ Monad }

func (Exception[X]) Throw(err X) Eff { return ThrowError(err) }

func (Exception[X]) Catch(m Eff, handler func(X) Eff) Eff {
	return CatchError(m, handler)
}

// Alt runs y if x throws.
func (Exception[X]) Alt(x, y Eff) Eff {
	return CatchError(x, func(X) Eff { return y })
}
