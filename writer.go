// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package accum

// Writer operations.

// Tell appends w to the accumulated output around a unit result.
func Tell[W, M any](pt Pointed[M], w W) AccumT[W, struct{}, M] {
	return AccumT[W, struct{}, M]{m: pt.Of(Pair[struct{}, W]{Snd: w})}
}

// Writer constructs an AccumT directly from a result and its output.
func Writer[W, A, M any](pt Pointed[M], a A, w W) AccumT[W, A, M] {
	return AccumT[W, A, M]{m: pt.Of(Pair[A, W]{Fst: a, Snd: w})}
}

// Listen runs t and exposes its output alongside its result.
// The outer accumulator is unchanged.
func Listen[W, A, M any](fn Functor[M], t AccumT[W, A, M]) AccumT[W, Pair[A, W], M] {
	return AccumT[W, Pair[A, W], M]{m: fn.Map(t.m, func(v Erased) Erased {
		p := v.(Pair[A, W])
		return Pair[Pair[A, W], W]{Fst: p, Snd: p.Snd}
	})}
}

// Listens is Listen with a projection f applied to the exposed output.
func Listens[W, A, B, M any](fn Functor[M], t AccumT[W, A, M], f func(W) B) AccumT[W, Pair[A, B], M] {
	return AccumT[W, Pair[A, B], M]{m: fn.Map(t.m, func(v Erased) Erased {
		p := v.(Pair[A, W])
		return Pair[Pair[A, B], W]{Fst: Pair[A, B]{Fst: p.Fst, Snd: f(p.Snd)}, Snd: p.Snd}
	})}
}

// Pass runs t, whose result pairs a value with an output transform, and
// applies the transform to the output t emitted. This edits output after
// it has been produced, e.g. filtering or tagging entries.
func Pass[W, A, M any](fn Functor[M], t AccumT[W, Pair[A, func(W) W], M]) AccumT[W, A, M] {
	return AccumT[W, A, M]{m: fn.Map(t.m, func(v Erased) Erased {
		p := v.(Pair[Pair[A, func(W) W], W])
		return Pair[A, W]{Fst: p.Fst.Fst, Snd: p.Fst.Snd(p.Snd)}
	})}
}

// Censor runs t and applies f to its output.
func Censor[W, A, M any](fn Functor[M], t AccumT[W, A, M], f func(W) W) AccumT[W, A, M] {
	return Pass(fn, Map(fn, t, func(a A) Pair[A, func(W) W] {
		return Pair[A, func(W) W]{Fst: a, Snd: f}
	}))
}
