package mathutil

import "github.com/chewxy/math32"

// Quaternion represents w + xi + yj + zk.
// Rotation helpers assume unit length but never enforce it.
type Quaternion struct {
	X, Y, Z, W float32
}

// QuatIdentity returns the no-rotation quaternion (0, 0, 0, 1).
func QuatIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1}
}

// Array returns the components in x, y, z, w order.
func (q Quaternion) Array() [4]float32 {
	return [4]float32{q.X, q.Y, q.Z, q.W}
}

func (q Quaternion) Magnitude() float32 {
	return math32.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize divides by the magnitude. A zero quaternion yields NaN components.
func (q Quaternion) Normalize() Quaternion {
	m := q.Magnitude()
	return Quaternion{q.X / m, q.Y / m, q.Z / m, q.W / m}
}

func (q Quaternion) Scale(s float32) Quaternion {
	return Quaternion{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

func (q Quaternion) Dot(o Quaternion) float32 {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

// Inverse returns the conjugate divided by the squared magnitude.
// A zero quaternion returns the zero quaternion instead of NaN.
func (q Quaternion) Inverse() Quaternion {
	m := q.Magnitude()
	if m == 0 {
		return Quaternion{}
	}
	m *= m
	return Quaternion{-q.X / m, -q.Y / m, -q.Z / m, q.W / m}
}

// vector returns the imaginary part.
func (q Quaternion) vector() Vector3 {
	return Vector3{q.X, q.Y, q.Z}
}

// QuatMul returns the Hamilton product a × b. Order matters.
func QuatMul(a, b Quaternion) Quaternion {
	return Quaternion{
		a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
		a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
	}
}

// QuatDifference returns the relative rotation taking a to b: inv(a) × b.
func QuatDifference(a, b Quaternion) Quaternion {
	return QuatMul(a.Inverse(), b)
}
