// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package accum

// Capabilities propagated from the base computation.
// Plain operations are lifted and paired with the empty accumulator.
// Operations that take a continuation unwrap, delegate to the base and rewrap.

// Ask reads the base's environment.
func Ask[E, W, M any](r Reader[M, E], mo Monoid[W]) AccumT[W, E, M] {
	return Lift[E, W, M](r, mo, r.Ask())
}

// Asks reads the base's environment through the projection f.
func Asks[E, A, W, M any](r Reader[M, E], mo Monoid[W], f func(E) A) AccumT[W, A, M] {
	return Map[W, E, A, M](r, Ask(r, mo), f)
}

// Local runs t with the environment modified by f.
// The override applies to the inner base computation only.
func Local[E, W, A, M any](r Reader[M, E], f func(E) E, t AccumT[W, A, M]) AccumT[W, A, M] {
	return Remap[W, A](t, func(m M) M { return r.Local(f, m) })
}

// State applies f to the base's state, storing the new state and yielding
// the result.
func State[S, A, W, M any](st Stateful[M, S], mo Monoid[W], f func(S) (A, S)) AccumT[W, A, M] {
	return Lift[A, W, M](st, mo, st.State(func(s S) (Erased, S) {
		a, next := f(s)
		return a, next
	}))
}

// Get reads the base's state.
func Get[S, W, M any](st Stateful[M, S], mo Monoid[W]) AccumT[W, S, M] {
	return State[S, S, W, M](st, mo, func(s S) (S, S) { return s, s })
}

// Put replaces the base's state.
func Put[S, W, M any](st Stateful[M, S], mo Monoid[W], s S) AccumT[W, struct{}, M] {
	return State[S, struct{}, W, M](st, mo, func(S) (struct{}, S) { return struct{}{}, s })
}

// Modify applies f to the base's state and yields the new state.
func Modify[S, W, M any](st Stateful[M, S], mo Monoid[W], f func(S) S) AccumT[W, S, M] {
	return State[S, S, W, M](st, mo, func(s S) (S, S) {
		next := f(s)
		return next, next
	})
}

// CallCC captures the current continuation of the base.
// f receives exit; exit(a) abandons the rest of f and makes CallCC yield a
// with the empty accumulator, so output emitted inside f before the exit
// is not part of the result.
func CallCC[W, A, B, M any](c Control[M], mo Monoid[W], f func(exit func(A) AccumT[W, B, M]) AccumT[W, A, M]) AccumT[W, A, M] {
	return AccumT[W, A, M]{m: c.CallCC(func(k func(Erased) M) M {
		exit := func(a A) AccumT[W, B, M] {
			return AccumT[W, B, M]{m: k(Pair[A, W]{Fst: a, Snd: mo.Empty()})}
		}
		return f(exit).m
	})}
}

// Throw raises err in the base.
//
// The result type is never produced, so it is given explicitly:
//
//	t := accum.Throw[int](either.Monad[string]{}, monoid.String{}, "boom")
func Throw[A, W, E, M any](ex Exception[M, E], mo Monoid[W], err E) AccumT[W, A, M] {
	return Lift[A, W, M](ex, mo, ex.Throw(err))
}

// Catch runs t and recovers from a base error with handler.
// On recovery the result is exactly the handler's pair: output that t
// emitted before the error is discarded along with the failed branch.
func Catch[W, A, E, M any](ex Exception[M, E], t AccumT[W, A, M], handler func(E) AccumT[W, A, M]) AccumT[W, A, M] {
	return AccumT[W, A, M]{m: ex.Catch(t.m, func(err E) M {
		return handler(err).m
	})}
}
