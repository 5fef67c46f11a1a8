// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package eff provides a suspending base computation for [accum.AccumT],
// built on continuation-passing style and algebraic effects.
//
// [Cont] is the core CPS type; [Eff] is Cont[Resumed, accum.Erased], the
// erased kind AccumT wraps. A computation suspends only where it performs
// an effect: [Perform] hands the operation to a [Handler] and the
// continuation waits in a pooled marker until the handler resumes it.
//
// # Standard Effects
//
//   - Reader: [Ask], [Local], [AskEnv], [LocalEnv]
//   - State: [Get], [Put], [State], [GetState], [PutState]
//   - Error: [Throw], [ThrowError], [CatchError]
//
// CatchError is delimited: a throw unwinds to the innermost enclosing
// CatchError, restoring the environment it saw on entry, and the handler's
// computation continues where CatchError would have returned. State is not
// rolled back.
//
// # Escapes
//
// [Escape], which backs [Monad.CallCC], exits early through every
// CatchError and LocalEnv entered since the escape began: their handlers
// are removed and the environment is restored before the exit value is
// delivered. [CallCC] on a bare Cont carries no runtime and does neither.
//
// # Runners
//
//   - [Run]: no effects
//   - [RunReader], [RunState], [RunError]: a single effect family
//   - [RunAll]: Reader + State + Error from one composed handler
//   - [Handle]: any F-bounded [Handler], e.g. one built with [HandleFunc]
//
// Every runner evaluates through one trampoline loop, so [Monad.TailRec]
// iterates in constant Go stack.
//
// # Stepping Boundary
//
// [Step] drives a computation until it completes or suspends, returning a
// one-shot [Suspension] for external runtimes that handle effects
// asynchronously.
//
// # Capability Dictionaries
//
//   - [Monad]: accum.MonadRec and accum.Control
//   - [Reader]: accum.Reader
//   - [Stateful]: accum.Stateful
//   - [Exception]: accum.Exception and accum.Choice
package eff
