// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package monoid provides ready-made accumulators for [accum.AccumT].
//
// Every type here is a small dictionary value satisfying accum.Monoid for
// its element type:
//
//	t := accum.Of(identity.Monad{}, monoid.Sum[int]{}, "result")
package monoid

import (
	"go.uber.org/multierr"

	"code.hybscloud.com/accum"
)

// String concatenates strings.
type String struct{}

func (String) Empty() string             { return "" }
func (String) Combine(x, y string) string { return x + y }

// Slice concatenates slices.
// Combine always allocates a fresh backing array, so combined results never
// alias either operand.
type Slice[T any] struct{}

func (Slice[T]) Empty() []T { return nil }

func (Slice[T]) Combine(x, y []T) []T {
	if len(x) == 0 && len(y) == 0 {
		return nil
	}
	out := make([]T, 0, len(x)+len(y))
	out = append(out, x...)
	return append(out, y...)
}

// Number is the constraint for numeric accumulators.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Sum adds numbers.
type Sum[N Number] struct{}

func (Sum[N]) Empty() N         { return 0 }
func (Sum[N]) Combine(x, y N) N { return x + y }

// Product multiplies numbers.
type Product[N Number] struct{}

func (Product[N]) Empty() N         { return 1 }
func (Product[N]) Combine(x, y N) N { return x * y }

// Dual flips the combine order of an underlying monoid.
type Dual[W any] struct {
	M accum.Monoid[W]
}

func (d Dual[W]) Empty() W         { return d.M.Empty() }
func (d Dual[W]) Combine(x, y W) W { return d.M.Combine(y, x) }

// Errors accumulates errors with multierr.
// The identity is nil; Combine flattens nested multierr values, so
// multierr.Errors of any grouping lists the same errors in the same order.
type Errors struct{}

func (Errors) Empty() error             { return nil }
func (Errors) Combine(x, y error) error { return multierr.Append(x, y) }
