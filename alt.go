// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package accum

// Alt tries x and falls back to y when x fails in the base's sense.
// Accumulators are per branch: whichever branch succeeds supplies its own
// output, and nothing from a failed branch is merged in.
func Alt[W, A, M any](c Choice[M], x, y AccumT[W, A, M]) AccumT[W, A, M] {
	return AccumT[W, A, M]{m: c.Alt(x.m, y.m)}
}

// Empty is the failing computation of the base, the identity of Alt.
func Empty[W, A, M any](p Plus[M]) AccumT[W, A, M] {
	return AccumT[W, A, M]{m: p.Zero()}
}
