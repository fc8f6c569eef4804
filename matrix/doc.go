// SPDX-License-Identifier: MIT
// Package matrix provides a small row-major Dense matrix and the oriented
// incidence matrix of a spin network.
//
// What:
//   - Dense: r×c float64 storage with bounds-checked At/Set, Mul, MulVec, T.
//   - Incidence: |V|×|E| matrix with +1 at the source row and −1 at the target
//     row of every edge column (edge ids map to columns, node ids to rows).
//   - GaussResiduals: B·j, the signed spin sum of every node in one product.
//   - Laplacian: B·Bᵀ, the graph Laplacian of the underlying topology.
//
// Determinism:
//   - Rows follow node ids; columns follow edge ids; products accumulate in
//     ascending index order.
//
// Errors:
//   - ErrBadShape, ErrOutOfRange, ErrDimensionMismatch, ErrGraphNil.
package matrix
