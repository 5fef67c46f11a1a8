// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package either provides a synchronous base computation with failure.
//
// [Either] is the typed sum of an error (Left) and a success (Right).
// [Result] is its erased form used as the base kind of [accum.AccumT];
// the [Monad] and [Alternative] dictionaries give it exceptions,
// left-biased choice and tail recursion.
package either

import "code.hybscloud.com/accum"

// Either holds a failure of type E (Left) or a success of type A (Right).
// The zero value is a Left holding the zero E.
type Either[E, A any] struct {
	isRight bool
	left    E
	right   A
}

// Left wraps a failure.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{isRight: false, left: e}
}

// Right wraps a success.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{isRight: true, right: a}
}

// IsRight reports whether e holds a success.
func (e Either[E, A]) IsRight() bool {
	return e.isRight
}

// IsLeft reports whether e holds a failure.
func (e Either[E, A]) IsLeft() bool {
	return !e.isRight
}

// GetRight returns the success and true, or the zero A and false.
func (e Either[E, A]) GetRight() (A, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero A
	return zero, false
}

// GetLeft returns the failure and true, or the zero E and false.
func (e Either[E, A]) GetLeft() (E, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero E
	return zero, false
}

// Match calls onLeft or onRight depending on which side e holds.
func Match[E, A, T any](e Either[E, A], onLeft func(E) T, onRight func(A) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// Map rewrites the success with f.
func Map[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	if e.isRight {
		return Right[E](f(e.right))
	}
	return Left[E, B](e.left)
}

// FlatMap continues with f on a success and passes a failure through.
func FlatMap[E, A, B any](e Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if e.isRight {
		return f(e.right)
	}
	return Left[E, B](e.left)
}

// MapLeft rewrites the failure with f.
func MapLeft[E, F, A any](e Either[E, A], f func(E) F) Either[F, A] {
	if e.isRight {
		return Right[F](e.right)
	}
	return Left[F, A](f(e.left))
}

// OrElse returns the success, or fallback applied to the failure.
func OrElse[E, A any](e Either[E, A], fallback func(E) A) A {
	if e.isRight {
		return e.right
	}
	return fallback(e.left)
}

// Result is the erased base kind: an Either whose Right side is type-erased.
type Result[E any] = Either[E, accum.Erased]

// Of lifts a success value into Result.
func Of[E, A any](a A) Result[E] {
	return Right[E, accum.Erased](a)
}

// Fail creates a failed Result.
func Fail[E any](err E) Result[E] {
	return Left[E, accum.Erased](err)
}

// Typed recovers the concrete Right type of a Result.
func Typed[A, E any](r Result[E]) Either[E, A] {
	if !r.isRight {
		return Left[E, A](r.left)
	}
	if r.right == nil {
		var zero A
		return Right[E](zero)
	}
	return Right[E](r.right.(A))
}

// Erase forgets the concrete Right type, turning a typed Either into a
// Result that can be lifted with [accum.Lift]. It is the inverse of Typed.
func Erase[E, A any](e Either[E, A]) Result[E] {
	if !e.isRight {
		return Left[E, accum.Erased](e.left)
	}
	return Right[E, accum.Erased](e.right)
}
