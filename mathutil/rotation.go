package mathutil

import "github.com/chewxy/math32"

// EulerToQuat converts Euler angles (radians) to a quaternion. The result
// equals qz × qy × qx: X is applied first, then Y, then Z. Angles are not wrapped.
//
// The w term is cx*cy*cz + sx*sy*sz. Some write-ups of this formula print
// cx*cy*cz + sx*sy*cz instead; that variant is not unit length for general
// angles and does not match the qz × qy × qx product, so it is not used here.
func EulerToQuat(e Vector3) Quaternion {
	cx, sx := math32.Cos(e.X*0.5), math32.Sin(e.X*0.5)
	cy, sy := math32.Cos(e.Y*0.5), math32.Sin(e.Y*0.5)
	cz, sz := math32.Cos(e.Z*0.5), math32.Sin(e.Z*0.5)

	return Quaternion{
		sx*cy*cz - cx*sy*sz, // x
		cx*sy*cz + sx*cy*sz, // y
		cx*cy*sz - sx*sy*cz, // z
		cx*cy*cz + sx*sy*sz, // w
	}
}

// RotationMatrix converts a unit quaternion to a homogeneous rotation matrix.
// q is not normalized first.
func RotationMatrix(q Quaternion) Mat4 {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	xx, yy, zz := x*x, y*y, z*z

	return Mat4{
		1 - 2*yy - 2*zz, 2*x*y + 2*z*w, 2*x*z - 2*y*w, 0,
		2*x*y - 2*z*w, 1 - 2*xx - 2*zz, 2*y*z + 2*x*w, 0,
		2*x*z + 2*y*w, 2*y*z - 2*x*w, 1 - 2*xx - 2*yy, 0,
		0, 0, 0, 1,
	}
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float32) float32 {
	return d * math32.Pi / 180
}
