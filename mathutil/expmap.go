package mathutil

import "github.com/chewxy/math32"

// direction returns v/|v|, or the zero vector when |v| is zero.
// Only the exponential map uses the guarded form; Vector3.Normalize stays raw.
func direction(v Vector3, m float32) Vector3 {
	if m == 0 {
		return Vector3{}
	}
	return Vector3{v.X / m, v.Y / m, v.Z / m}
}

// QuatExp returns e^w * (sin|v| * v/|v|, cos|v|).
// A zero vector part contributes no imaginary component.
func QuatExp(q Quaternion) Quaternion {
	v := q.vector()
	vm := v.Magnitude()
	vn := direction(v, vm)
	sinV := math32.Sin(vm)
	expW := math32.Exp(q.W)

	return Quaternion{
		vn.X * sinV * expW,
		vn.Y * sinV * expW,
		vn.Z * sinV * expW,
		math32.Cos(vm) * expW,
	}
}

// QuatLog returns (v/|v| * acos(w/|q|), ln|q|).
// w/|q| outside [-1, 1] gives NaN; a zero quaternion gives -Inf in w.
func QuatLog(q Quaternion) Quaternion {
	v := q.vector()
	vn := direction(v, v.Magnitude())
	m := q.Magnitude()
	a := math32.Acos(q.W / m)

	return Quaternion{
		vn.X * a,
		vn.Y * a,
		vn.Z * a,
		math32.Log(m),
	}
}

// QuatPow raises q to a real power through the log/exp maps.
func QuatPow(q Quaternion, n float32) Quaternion {
	return QuatExp(QuatLog(q).Scale(n))
}

// Slerp interpolates from q1 to q2 at constant angular velocity.
// t is clamped to [0, 1]. Inputs are assumed unit length and the path is not
// forced to the shorter arc; see SlerpShortest.
func Slerp(q1, q2 Quaternion, t float32) Quaternion {
	t = clamp01(t)
	return QuatMul(q1, QuatPow(QuatMul(q1.Inverse(), q2), t))
}

// SlerpShortest negates q2 when it lies in the opposite hemisphere of q1,
// so the interpolation takes the shorter of the two arcs.
func SlerpShortest(q1, q2 Quaternion, t float32) Quaternion {
	if q1.Dot(q2) < 0 {
		q2 = q2.Scale(-1)
	}
	return Slerp(q1, q2, t)
}

func clamp01(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
