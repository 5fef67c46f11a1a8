// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package accum

// Semigroup is an associative combine operation on W:
//
//	Combine(Combine(x, y), z) == Combine(x, Combine(y, z))
type Semigroup[W any] interface {
	Combine(x, y W) W
}

// Monoid is a Semigroup with an identity element:
//
//	Combine(Empty(), x) == x
//	Combine(x, Empty()) == x
//
// Operations that pair a result with "no output" (Of, Lift, TailRec and the
// lifted capabilities) require a Monoid rather than a Semigroup.
type Monoid[W any] interface {
	Semigroup[W]
	Empty() W
}

// monoidFunc adapts an identity element and a combine function.
type monoidFunc[W any] struct {
	empty   W
	combine func(x, y W) W
}

func (m monoidFunc[W]) Empty() W         { return m.empty }
func (m monoidFunc[W]) Combine(x, y W) W { return m.combine(x, y) }

// MonoidFunc creates a Monoid from an identity element and a combine function.
// The caller is responsible for the monoid laws.
func MonoidFunc[W any](empty W, combine func(x, y W) W) Monoid[W] {
	return monoidFunc[W]{empty: empty, combine: combine}
}
