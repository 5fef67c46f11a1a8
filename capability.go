// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package accum

// Capability interfaces for base computations.
//
// Each capability is a separate interface over the erased base kind M.
// A base package provides concrete dictionary values implementing the
// subset it supports, and AccumT operations accept exactly the
// capabilities they use.

// Functor maps the result of a base computation.
type Functor[M any] interface {
	Map(m M, f func(Erased) Erased) M
}

// Pointed lifts a bare value into a base computation with no effects.
type Pointed[M any] interface {
	Of(a Erased) M
}

// Apply combines two independent base computations.
// The order in which x and y run is decided by the base.
type Apply[M any] interface {
	Functor[M]
	Zip(x, y M, f func(a, b Erased) Erased) M
}

// Applicative is Apply with Pointed.
type Applicative[M any] interface {
	Apply[M]
	Pointed[M]
}

// Bind sequences base computations.
type Bind[M any] interface {
	Apply[M]
	Chain(m M, f func(Erased) M) M
}

// Monad is Applicative with Bind.
type Monad[M any] interface {
	Applicative[M]
	Chain(m M, f func(Erased) M) M
}

// Choice is left-biased choice: Alt runs x and falls back to y when x
// fails in the base's own sense of failure.
type Choice[M any] interface {
	Functor[M]
	Alt(x, y M) M
}

// Plus is Choice with an identity element: Zero is a computation that
// always fails, and Alt(Zero(), y) behaves as y.
type Plus[M any] interface {
	Choice[M]
	Zero() M
}

// MonadRec provides stack-safe iteration.
// TailRec repeatedly applies step, starting from seed, until step yields
// a [Bounce] with Done set; the Go stack must not grow per iteration.
type MonadRec[M any] interface {
	Monad[M]
	TailRec(seed Erased, step func(Erased) M) M
}

// Reader provides read-only access to an environment of type E.
type Reader[M, E any] interface {
	Monad[M]
	Ask() M
	Local(f func(E) E, m M) M
}

// Stateful provides gettable and settable state of type S.
// State applies f to the current state, yields the first result and
// stores the second.
type Stateful[M, S any] interface {
	Monad[M]
	State(f func(S) (Erased, S)) M
}

// Control provides continuation capture for early return.
// CallCC passes f an exit function; calling exit abandons the rest of f's
// computation and makes CallCC yield the exit value.
type Control[M any] interface {
	Monad[M]
	CallCC(f func(exit func(Erased) M) M) M
}

// Exception provides error throwing and catching with errors of type E.
type Exception[M, E any] interface {
	Monad[M]
	Throw(err E) M
	Catch(m M, handler func(E) M) M
}
