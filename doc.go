// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package accum provides a composable accumulating wrapper (a writer effect)
// over an arbitrary base computation.
//
// The core type [AccumT] pairs the result of a base computation with output
// accumulated in a monoid W. The base computation never sees the output:
// AccumT threads it alongside, combining left to right, and lifts the base's
// own capabilities so they compose with accumulation.
//
// # Erased Base Kinds
//
// Go has no higher-kinded types, so a base computation is an erased kind: a
// concrete type M whose values produce an [Erased] result. AccumT[W, A, M]
// keeps W and A as type parameters, so every operation on AccumT is typed;
// the concrete [Pair] is recovered by type assertion where the base hands
// its result back.
//
// Base packages in this module:
//
//   - identity: synchronous, no effects
//   - either: failure, exceptions and left-biased choice
//   - eff: suspending CPS computations with Reader, State and Error effects
//
// # Capabilities
//
// Each base capability is its own interface, and each operation takes only
// the capabilities it uses:
//
//   - [Functor], [Pointed], [Apply], [Applicative], [Bind], [Monad]
//   - [Choice], [Plus]: left-biased choice and its identity
//   - [MonadRec]: stack-safe iteration
//   - [Reader], [Stateful], [Control], [Exception]: environment, state,
//     continuation capture and errors
//
// The accumulator is described by a [Semigroup] or a [Monoid]. Operations
// that produce "no output" ([Of], [Lift], [TailRec], the lifted
// capabilities) require a Monoid; this is checked at compile time.
//
// # Core Operations
//
//   - [Make], [Run]: wrap and unwrap
//   - [Exec]: run, keeping only the accumulated output
//   - [Remap]: transform result, output and base kind at once
//   - [Map], [Ap], [Zip], [Of], [Chain], [Then], [Lift]
//   - [Alt], [Empty]: choice, with per-branch output
//   - [TailRec], [Loop], [Done]: stack-safe loops
//
// # Writer Operations
//
//   - [Tell], [Writer]: emit output
//   - [Listen], [Listens]: observe output emitted by a computation
//   - [Pass], [Censor]: edit output after it has been emitted
//
// # Propagated Capabilities
//
//   - [Ask], [Asks], [Local]
//   - [State], [Get], [Put], [Modify]
//   - [CallCC]
//   - [Throw], [Catch]
//
// [Catch] replaces a failed computation with the handler's computation: the
// output the failed branch emitted before the error is discarded.
//
// # Example
//
//	m := identity.Monad{}
//	s := monoid.String{}
//	t := accum.Chain(m, s, accum.Tell(m, "hello "), func(struct{}) accum.AccumT[string, int, identity.Identity] {
//	    return accum.Writer(m, 42, "world")
//	})
//	p := identity.Run[accum.Pair[int, string]](accum.Run(t))
//	// p.Fst == 42, p.Snd == "hello world"
package accum
