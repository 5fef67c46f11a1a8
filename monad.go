// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package accum

// Functor, applicative and monad operations for AccumT.
//
// Accumulators always combine left to right: the output of the stage that
// runs first in program order is the left operand of Combine.

// Map applies a pure function to the result, leaving the accumulator untouched.
func Map[W, A, B, M any](fn Functor[M], t AccumT[W, A, M], f func(A) B) AccumT[W, B, M] {
	return AccumT[W, B, M]{m: fn.Map(t.m, func(v Erased) Erased {
		p := v.(Pair[A, W])
		return Pair[B, W]{Fst: f(p.Fst), Snd: p.Snd}
	})}
}

// Ap applies the function produced by tf to the value produced by ta.
// The result accumulator is Combine(wf, wa).
func Ap[W, A, B, M any](ap Apply[M], sg Semigroup[W], tf AccumT[W, func(A) B, M], ta AccumT[W, A, M]) AccumT[W, B, M] {
	return AccumT[W, B, M]{m: ap.Zip(tf.m, ta.m, func(x, y Erased) Erased {
		pf := x.(Pair[func(A) B, W])
		pa := y.(Pair[A, W])
		return Pair[B, W]{Fst: pf.Fst(pa.Fst), Snd: sg.Combine(pf.Snd, pa.Snd)}
	})}
}

// Zip combines the results of ta and tb with f.
// The result accumulator is Combine(wa, wb).
func Zip[W, A, B, C, M any](ap Apply[M], sg Semigroup[W], ta AccumT[W, A, M], tb AccumT[W, B, M], f func(A, B) C) AccumT[W, C, M] {
	return AccumT[W, C, M]{m: ap.Zip(ta.m, tb.m, func(x, y Erased) Erased {
		pa := x.(Pair[A, W])
		pb := y.(Pair[B, W])
		return Pair[C, W]{Fst: f(pa.Fst, pb.Fst), Snd: sg.Combine(pa.Snd, pb.Snd)}
	})}
}

// Of lifts a pure value into AccumT with the empty accumulator.
func Of[W, A, M any](pt Pointed[M], mo Monoid[W], a A) AccumT[W, A, M] {
	return AccumT[W, A, M]{m: pt.Of(Pair[A, W]{Fst: a, Snd: mo.Empty()})}
}

// Chain sequences t and the continuation f (monadic bind).
// It runs t, passes its result to f, runs the returned AccumT and yields
// (b, Combine(w, w')), where t produced w and the continuation produced w'.
// Effects occur in whatever order the base's own Chain imposes.
func Chain[W, A, B, M any](bd Bind[M], sg Semigroup[W], t AccumT[W, A, M], f func(A) AccumT[W, B, M]) AccumT[W, B, M] {
	return AccumT[W, B, M]{m: bd.Chain(t.m, func(v Erased) M {
		p := v.(Pair[A, W])
		return bd.Map(f(p.Fst).m, func(u Erased) Erased {
			q := u.(Pair[B, W])
			return Pair[B, W]{Fst: q.Fst, Snd: sg.Combine(p.Snd, q.Snd)}
		})
	})}
}

// Then sequences t and u, discarding the result of t.
func Then[W, A, B, M any](bd Bind[M], sg Semigroup[W], t AccumT[W, A, M], u AccumT[W, B, M]) AccumT[W, B, M] {
	return Chain(bd, sg, t, func(A) AccumT[W, B, M] { return u })
}

// Lift wraps a base computation yielding A, pairing it with the empty accumulator.
//
// The base kind is erased, so A is given explicitly:
//
//	t := accum.Lift[int](identity.Monad{}, monoid.String{}, identity.Of(42))
func Lift[A, W, M any](fn Functor[M], mo Monoid[W], m M) AccumT[W, A, M] {
	return AccumT[W, A, M]{m: fn.Map(m, func(v Erased) Erased {
		return Pair[A, W]{Fst: as[A](v), Snd: mo.Empty()}
	})}
}

// as recovers a concrete value from an erased base result.
// A nil erased value is the zero value of A; this lets bases pass nil for
// struct{} results, following the nil completion convention of eff runners.
func as[A any](v Erased) A {
	if v == nil {
		var zero A
		return zero
	}
	return v.(A)
}
