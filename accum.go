// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package accum

// Erased represents a type-erased value produced by a base computation.
// Base computations are concrete Go types whose results flow through Erased;
// AccumT recovers the concrete Pair type via type assertion at the boundary.
type Erased = any

// Pair holds a result and the output accumulated while producing it.
type Pair[A, W any] struct {
	Fst A
	Snd W
}

// MakePair creates a Pair from a result and an accumulator.
func MakePair[A, W any](a A, w W) Pair[A, W] {
	return Pair[A, W]{Fst: a, Snd: w}
}

// AccumT pairs the result of a base computation with accumulated output.
// AccumT[W, A, M] wraps a base computation of kind M that yields Pair[A, W].
//
// W and A are phantom parameters: the base kind M is erased, so the type
// parameters carry the shape the wrapped computation promises to produce.
type AccumT[W, A, M any] struct {
	m M
}

// Make wraps a base computation that yields Pair[A, W].
//
// Example:
//
//	t := accum.Make[string, int](identity.Of(accum.MakePair(42, "log")))
func Make[W, A, M any](m M) AccumT[W, A, M] {
	return AccumT[W, A, M]{m: m}
}

// Run returns the wrapped base computation unchanged.
func Run[W, A, M any](t AccumT[W, A, M]) M {
	return t.m
}

// Exec returns a base computation that yields only the accumulated output.
func Exec[W, A, M any](fn Functor[M], t AccumT[W, A, M]) M {
	return fn.Map(t.m, snd[A, W])
}

// Remap transforms the wrapped base computation as a whole.
// The result type, the accumulator type and the base kind may all change;
// f receives a base computation of Pair[A, W1] and must return one of Pair[B, W2].
//
// Example:
//
//	u := accum.Remap[string, int](t, func(m identity.Identity) eff.Eff {
//	    return eff.Pure(identity.Run[accum.Pair[int, string]](m))
//	})
func Remap[W2, B, W1, A, M, N any](t AccumT[W1, A, M], f func(M) N) AccumT[W2, B, N] {
	return AccumT[W2, B, N]{m: f(t.m)}
}

// snd projects the accumulator of an erased pair.
// Named generic function produces a static function value per instantiation.
func snd[A, W any](v Erased) Erased {
	return v.(Pair[A, W]).Snd
}
