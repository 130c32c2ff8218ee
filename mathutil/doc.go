// Package mathutil implements single-precision 3D rotation math: vectors,
// quaternions and the quaternion exponential map used for interpolation.
//
// All types are plain values and every function is pure, so they are safe to
// use from any goroutine. Degenerate inputs follow floating-point semantics
// (NaN/Inf) instead of returning errors.
package mathutil
