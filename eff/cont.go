// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import "code.hybscloud.com/accum"

// Cont represents a continuation-passing computation.
// Cont[R, A] computes a value of type A, with final result type R.
type Cont[R, A any] func(k func(A) R) R

// Resumed is the type of values flowing through effect suspension and resumption.
type Resumed = any

// Eff is the erased base kind used with accum.AccumT: an effectful
// computation whose result is type-erased.
type Eff = Cont[Resumed, accum.Erased]

// Return lifts a pure value into the continuation monad.
func Return[R, A any](a A) Cont[R, A] {
	return func(k func(A) R) R {
		return k(a)
	}
}

// Pure lifts a value into Eff with no effects.
func Pure(a accum.Erased) Eff {
	return Return[Resumed, accum.Erased](a)
}

// Suspend creates a continuation from a CPS function.
func Suspend[R, A any](f func(func(A) R) R) Cont[R, A] {
	return Cont[R, A](f)
}

// Bind sequences two continuations (monadic bind).
func Bind[R, A, B any](m Cont[R, A], f func(A) Cont[R, B]) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(a A) R {
			return f(a)(k)
		})
	}
}

// Map applies a pure function to the result of a continuation.
func Map[R, A, B any](m Cont[R, A], f func(A) B) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(a A) R {
			return k(f(a))
		})
	}
}

// Then sequences two continuations, discarding the first result.
func Then[R, A, B any](m Cont[R, A], n Cont[R, B]) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(_ A) R {
			return n(k)
		})
	}
}

// CallCC calls f with an exit function that, when applied, abandons the
// rest of f and resumes the continuation of CallCC with its argument.
// Runtime scopes entered inside f are not unwound; use [Escape] for that.
//
// Example:
//
//	CallCC(func(exit func(int) Cont[int, string]) Cont[int, int] {
//	    return Bind(exit(1), func(string) Cont[int, int] {
//	        return Return[int](2) // never reached
//	    })
//	})
//	// Result: 1
func CallCC[R, A, B any](f func(exit func(A) Cont[R, B]) Cont[R, A]) Cont[R, A] {
	return func(k func(A) R) R {
		exit := func(a A) Cont[R, B] {
			return func(func(B) R) R { return k(a) }
		}
		return f(exit)(k)
	}
}

// identity is the identity continuation for RunCont.
func identity[A any](a A) A { return a }

// RunCont executes a pure continuation with the identity continuation.
// Effectful Eff values are run with [Run] and the other runners instead.
func RunCont[A any](m Cont[A, A]) A {
	return m(identity[A])
}

// toResumed is the identity continuation for Eff entry points.
func toResumed(a accum.Erased) Resumed { return a }

// as recovers a concrete value from an erased result.
// Nil completes with the zero value of A.
func as[A any](v accum.Erased) A {
	if v == nil {
		var zero A
		return zero
	}
	return v.(A)
}
