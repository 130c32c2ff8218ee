package mathutil

// Mat4 is a 4×4 matrix stored column-major: element (r, c) is at c*4+r.
// Only produced by RotationMatrix; ready for GL-style uniform upload.
type Mat4 [16]float32

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element in row r, column c.
func (m Mat4) At(r, c int) float32 {
	return m[c*4+r]
}
