// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import (
	"sync/atomic"

	"code.hybscloud.com/accum"
)

// Stepping boundary for external runtimes.
// Step provides shallow one-effect-at-a-time evaluation, unlike the
// runners which drive the trampoline to completion.

// Suspension represents a computation suspended on an effect operation.
// It holds the pending operation and a one-shot resumption handle.
//
// Suspension enforces affine semantics: Resume may be called at most once.
// Calling Resume twice panics. Use Discard to explicitly abandon a suspension.
type Suspension struct {
	used atomic.Uintptr
	op   Operation
	m    *marker
}

// Op returns the effect operation that caused the suspension.
func (s *Suspension) Op() Operation { return s.op }

// Resume advances the computation with the given value.
// Returns either a completed value (with nil suspension) or the next suspension.
// Panics if the suspension has already been resumed or discarded.
func (s *Suspension) Resume(v Resumed) (accum.Erased, *Suspension) {
	if s.used.Add(1) != 1 {
		panic("eff: suspension resumed twice")
	}
	return classify(s.m.resume(v))
}

// TryResume attempts to advance the computation.
// Returns (value, suspension, true) on success, or (nil, nil, false) if already used.
func (s *Suspension) TryResume(v Resumed) (accum.Erased, *Suspension, bool) {
	if s.used.Add(1) != 1 {
		return nil, nil, false
	}
	a, next := classify(s.m.resume(v))
	return a, next, true
}

// Discard marks the suspension as consumed without resuming.
func (s *Suspension) Discard() {
	if s.used.Add(1) == 1 {
		releaseMarker(s.m)
	}
}

// Step drives a computation until it either completes or suspends on an
// effect operation. Trampoline bounces are taken internally and never
// surface as suspensions.
//
// Example:
//
//	v, susp := Step(computation)
//	for susp != nil {
//	    v, susp = susp.Resume(handleOp(susp.Op()))
//	}
func Step(m Eff) (accum.Erased, *Suspension) {
	return classify(m(toResumed))
}

// classify runs pending bounces and classifies the outcome as either a
// completed value or a suspension.
func classify(result Resumed) (accum.Erased, *Suspension) {
	for {
		switch s := result.(type) {
		case *bounce:
			result = s.thunk()
		case *marker:
			if v, ok := dispatchScope(nil, s.op); ok {
				result = s.resume(v)
				continue
			}
			return nil, &Suspension{op: s.op, m: s}
		default:
			return result, nil
		}
	}
}
