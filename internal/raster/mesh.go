package raster

import (
	"image/color"

	"quatrot/mathutil"
)

// Triangle indexes three vertices and their UVs. Color is used when no
// texture is bound.
type Triangle struct {
	VI    [3]int
	TI    [3]int
	Color color.NRGBA
}

// Mesh is an indexed triangle list in model space.
type Mesh struct {
	Verts []mathutil.Vector3
	UVs   [][2]float32
	Tris  []Triangle
}

// Face colors of the unit cube, in +X, -X, +Y, -Y, +Z, -Z order.
var CubeColors = [6]color.NRGBA{
	{220, 40, 40, 255},
	{40, 200, 60, 255},
	{50, 80, 220, 255},
	{230, 210, 40, 255},
	{230, 120, 30, 255},
	{170, 60, 200, 255},
}

// Cube returns a unit cube centered on the origin: 8 corners, 12 triangles.
func Cube() *Mesh {
	const h = 0.5
	verts := []mathutil.Vector3{
		{X: -h, Y: -h, Z: -h}, // 0
		{X: h, Y: -h, Z: -h},  // 1
		{X: h, Y: h, Z: -h},   // 2
		{X: -h, Y: h, Z: -h},  // 3
		{X: -h, Y: -h, Z: h},  // 4
		{X: h, Y: -h, Z: h},   // 5
		{X: h, Y: h, Z: h},    // 6
		{X: -h, Y: h, Z: h},   // 7
	}
	uvs := [][2]float32{{0, 1}, {1, 1}, {1, 0}, {0, 0}}

	// quads listed counter-clockwise seen from outside
	quads := [6][4]int{
		{1, 2, 6, 5}, // +X
		{0, 4, 7, 3}, // -X
		{3, 7, 6, 2}, // +Y
		{0, 1, 5, 4}, // -Y
		{4, 5, 6, 7}, // +Z
		{0, 3, 2, 1}, // -Z
	}

	tris := make([]Triangle, 0, 12)
	for f, q := range quads {
		c := CubeColors[f]
		tris = append(tris,
			Triangle{VI: [3]int{q[0], q[1], q[2]}, TI: [3]int{0, 1, 2}, Color: c},
			Triangle{VI: [3]int{q[0], q[2], q[3]}, TI: [3]int{0, 2, 3}, Color: c},
		)
	}

	return &Mesh{Verts: verts, UVs: uvs, Tris: tris}
}
