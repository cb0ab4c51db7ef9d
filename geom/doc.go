// Package geom provides the float32 linear algebra used by the scene kernel:
// fixed-arity vectors (Vec2, Vec3, Vec4), square row-major matrices (Mat2,
// Mat3, Mat4), quaternions, and a pinhole Camera.
//
// Determinants are computed by cofactor expansion along the first row, each
// NxN kernel delegating its minors to the (N-1)x(N-1) kernel. Inversion is
// adjugate-based and panics on an exactly zero determinant: a singular
// inversion is a caller bug, not a runtime condition, and is surfaced loudly.
// The zero check is deliberately strict equality; near-singular matrices
// invert "successfully" with the usual float32 instability.
//
// Out-of-range component indexing panics for the same reason. Normalizing a
// zero-length vector yields NaN components with no error signaled; callers
// guard degenerate inputs themselves.
//
// Equality on vectors, matrices and quaternions is approximate with an
// absolute per-component tolerance of [Epsilon].
package geom

// Epsilon is the absolute per-component tolerance used by the Approx
// methods in this package.
const Epsilon = 1e-6
