// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package accum

// Step is the outcome of one loop iteration: continue with a new seed of
// type A, or finish with a result of type B.
type Step[A, B any] struct {
	done   bool
	next   A
	result B
}

// Loop continues iteration with seed a.
func Loop[B, A any](a A) Step[A, B] {
	return Step[A, B]{next: a}
}

// Done finishes iteration with result b.
func Done[A, B any](b B) Step[A, B] {
	return Step[A, B]{done: true, result: b}
}

// IsDone reports whether the step finishes the loop.
func (s Step[A, B]) IsDone() bool {
	return s.done
}

// Next returns the seed of a continuing step and true, or zero and false.
func (s Step[A, B]) Next() (A, bool) {
	if !s.done {
		return s.next, true
	}
	var zero A
	return zero, false
}

// Result returns the result of a finishing step and true, or zero and false.
func (s Step[A, B]) Result() (B, bool) {
	if s.done {
		return s.result, true
	}
	var zero B
	return zero, false
}

// Bounce is the type-erased loop step handed to [MonadRec.TailRec].
// A base's TailRec inspects the Bounce yielded by each step computation:
// Done false re-enters the step with Value, Done true finishes with Value.
type Bounce struct {
	Done  bool
	Value Erased
}

// TailRec runs f repeatedly, starting from seed, until it yields Done.
// Each iteration's output is combined into a running total, so the final
// accumulator equals what the equivalent chain of [Chain] calls produces;
// iteration is delegated to the base's stack-safe TailRec.
func TailRec[W, A, B, M any](rec MonadRec[M], mo Monoid[W], seed A, f func(A) AccumT[W, Step[A, B], M]) AccumT[W, B, M] {
	step := func(v Erased) M {
		p := v.(Pair[A, W])
		return rec.Map(f(p.Fst).m, func(u Erased) Erased {
			q := u.(Pair[Step[A, B], W])
			w := mo.Combine(p.Snd, q.Snd)
			if q.Fst.done {
				return Bounce{Done: true, Value: Pair[B, W]{Fst: q.Fst.result, Snd: w}}
			}
			return Bounce{Value: Pair[A, W]{Fst: q.Fst.next, Snd: w}}
		})
	}
	return AccumT[W, B, M]{m: rec.TailRec(Pair[A, W]{Fst: seed, Snd: mo.Empty()}, step)}
}
