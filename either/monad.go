// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package either

import "code.hybscloud.com/accum"

// Monad is the capability dictionary for Result[E].
// It implements accum.MonadRec, accum.Exception and accum.Choice.
type Monad[E any] struct{}

func (Monad[E]) Of(a accum.Erased) Result[E] { return Right[E, accum.Erased](a) }

func (Monad[E]) Map(m Result[E], f func(accum.Erased) accum.Erased) Result[E] {
	return Map(m, f)
}

// Zip short-circuits on the first Left, checking x before y.
func (Monad[E]) Zip(x, y Result[E], f func(a, b accum.Erased) accum.Erased) Result[E] {
	if !x.isRight {
		return x
	}
	if !y.isRight {
		return y
	}
	return Right[E, accum.Erased](f(x.right, y.right))
}

func (Monad[E]) Chain(m Result[E], f func(accum.Erased) Result[E]) Result[E] {
	return FlatMap(m, f)
}

// TailRec iterates step in a loop until it yields a done Bounce or a Left.
func (Monad[E]) TailRec(seed accum.Erased, step func(accum.Erased) Result[E]) Result[E] {
	current := seed
	for {
		r := step(current)
		if !r.isRight {
			return r
		}
		b := r.right.(accum.Bounce)
		if b.Done {
			return Right[E, accum.Erased](b.Value)
		}
		current = b.Value
	}
}

func (Monad[E]) Throw(err E) Result[E] { return Left[E, accum.Erased](err) }

// Catch passes a Left to handler; a Right is returned unchanged.
func (Monad[E]) Catch(m Result[E], handler func(E) Result[E]) Result[E] {
	if m.isRight {
		return m
	}
	return handler(m.left)
}

// Alt returns x if it is a Right, otherwise y.
func (Monad[E]) Alt(x, y Result[E]) Result[E] {
	if x.isRight {
		return x
	}
	return y
}

// Alternative extends Monad with a failing computation, making Result[E]
// an accum.Plus. Zero fails with Empty.
type Alternative[E any] struct {
	Monad[E]
	Empty E
}

func (a Alternative[E]) Zero() Result[E] { return Left[E, accum.Erased](a.Empty) }
