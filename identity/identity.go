// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package identity provides the synchronous base computation for
// [accum.AccumT]: a value computed eagerly, with no effects of its own.
package identity

import "code.hybscloud.com/accum"

// Identity is a completed computation holding an erased value.
type Identity struct {
	value accum.Erased
}

// Of lifts a value into Identity.
func Of[A any](a A) Identity {
	return Identity{value: a}
}

// Run returns the value held by m.
func Run[A any](m Identity) A {
	if m.value == nil {
		var zero A
		return zero
	}
	return m.value.(A)
}

// Monad is the capability dictionary for Identity.
// It implements accum.MonadRec[Identity].
type Monad struct{}

func (Monad) Of(a accum.Erased) Identity { return Identity{value: a} }

func (Monad) Map(m Identity, f func(accum.Erased) accum.Erased) Identity {
	return Identity{value: f(m.value)}
}

// Zip evaluates x before y.
func (Monad) Zip(x, y Identity, f func(a, b accum.Erased) accum.Erased) Identity {
	return Identity{value: f(x.value, y.value)}
}

func (Monad) Chain(m Identity, f func(accum.Erased) Identity) Identity {
	return f(m.value)
}

// TailRec iterates step in a loop; the Go stack does not grow per iteration.
func (Monad) TailRec(seed accum.Erased, step func(accum.Erased) Identity) Identity {
	current := seed
	for {
		b := step(current).value.(accum.Bounce)
		if b.Done {
			return Identity{value: b.Value}
		}
		current = b.Value
	}
}
