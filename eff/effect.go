// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import (
	"fmt"
	"sync"

	"code.hybscloud.com/accum"
)

// Operation is an effect operation passed to Handler.Dispatch.
type Operation = any

// unhandledEffect panics with a descriptive message for unmatched operations.
// Extracted as a noinline function so that Dispatch methods remain inlineable.
//
//go:noinline
func unhandledEffect(handler string, op Operation) {
	panic(fmt.Sprintf("eff: unhandled effect %T in %s", op, handler))
}

// Handler is the F-bounded interface for effect handlers.
//
// Dispatch returns (resumeValue, true) to continue the computation, or
// (finalResult, false) to short-circuit and return immediately.
type Handler[H Handler[H]] interface {
	Dispatch(op Operation) (Resumed, bool)
}

// handlerFunc wraps a dispatch function as a concrete Handler.
type handlerFunc struct {
	f func(op Operation) (Resumed, bool)
}

func (h *handlerFunc) Dispatch(op Operation) (Resumed, bool) {
	return h.f(op)
}

// HandleFunc creates a handler from a dispatch function.
//
// Example:
//
//	HandleFunc(func(op Operation) (Resumed, bool) {
//	    switch op.(type) {
//	    case Ask[int]:
//	        return 42, true
//	    default:
//	        panic("unhandled effect")
//	    }
//	})
func HandleFunc(f func(op Operation) (Resumed, bool)) *handlerFunc {
	return &handlerFunc{f: f}
}

var markerPool = sync.Pool{
	New: func() any { return new(marker) },
}

// marker is a computation suspended on an effect operation.
// A marker is resumed at most once and returns to the pool when resumed
// or discarded.
type marker struct {
	op Operation
	k  func(accum.Erased) Resumed
}

func acquireMarker(op Operation, k func(accum.Erased) Resumed) *marker {
	m := markerPool.Get().(*marker)
	m.op = op
	m.k = k
	return m
}

func releaseMarker(m *marker) {
	m.op = nil
	m.k = nil
	markerPool.Put(m)
}

func (m *marker) resume(v Resumed) Resumed {
	k := m.k
	releaseMarker(m)
	return k(v)
}

// bounce is a trampoline step: rather than calling the next part of the
// computation, a continuation returns a bounce and the evaluation loop
// calls thunk, so the Go stack unwinds between steps.
//
// A handler may also answer Dispatch with a bounce; the suspended
// continuation is then abandoned and evaluation continues with thunk.
type bounce struct {
	thunk func() Resumed
}

// Perform triggers an effect operation and suspends the computation.
// The handler receives the operation via [Handler.Dispatch] and provides
// a resume value, or short-circuits with a final result.
func Perform(op Operation) Eff {
	return func(k func(accum.Erased) Resumed) Resumed {
		return acquireMarker(op, k)
	}
}

// Handle runs a computation with an F-bounded effect handler.
func Handle[H Handler[H]](m Eff, h H) accum.Erased {
	return handleDispatch(m(toResumed), h)
}

// handleDispatch is the trampoline loop shared by every runner.
func handleDispatch[H Handler[H]](result Resumed, h H) Resumed {
	for {
		switch s := result.(type) {
		case *bounce:
			result = s.thunk()
		case *marker:
			if v, ok := dispatchScope(h, s.op); ok {
				result = s.resume(v)
				continue
			}
			v, shouldResume := h.Dispatch(s.op)
			if !shouldResume {
				releaseMarker(s)
				return v
			}
			if b, ok := v.(*bounce); ok {
				releaseMarker(s)
				result = b.thunk()
				continue
			}
			result = s.resume(v)
		default:
			return result
		}
	}
}

// tailRec iterates step through the trampoline: every continuing Bounce
// returns a bounce to the evaluation loop instead of re-entering step.
func tailRec(seed accum.Erased, step func(accum.Erased) Eff) Eff {
	return func(k func(accum.Erased) Resumed) Resumed {
		var loop func(accum.Erased) Resumed
		loop = func(v accum.Erased) Resumed {
			b := v.(accum.Bounce)
			if b.Done {
				return k(b.Value)
			}
			return &bounce{thunk: func() Resumed { return step(b.Value)(loop) }}
		}
		return step(seed)(loop)
	}
}
