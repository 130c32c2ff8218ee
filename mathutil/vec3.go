package mathutil

import "github.com/chewxy/math32"

// Vector3 is a 3-component vector (value type, stack-allocated).
type Vector3 struct {
	X, Y, Z float32
}

// Array returns the components in x, y, z order.
func (v Vector3) Array() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

func (v Vector3) Magnitude() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize divides each component by the magnitude.
// The zero vector yields NaN components; there is no guard.
func (v Vector3) Normalize() Vector3 {
	m := v.Magnitude()
	return Vector3{v.X / m, v.Y / m, v.Z / m}
}
