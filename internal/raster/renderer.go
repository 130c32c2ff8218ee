package raster

import (
	"image"

	"quatrot/mathutil"
)

// Options controls how a mesh is framed.
type Options struct {
	Size        int
	Supersample int
	// View is the camera orientation, applied after the model rotation.
	// The zero value means no camera rotation.
	View    mathutil.Quaternion
	Texture *image.NRGBA
}

// DefaultView looks down at the cube from above and to the side, close to
// the camera of the original demo page.
func DefaultView() mathutil.Quaternion {
	return mathutil.EulerToQuat(mathutil.Vector3{
		X: mathutil.Deg2Rad(25),
		Y: mathutil.Deg2Rad(-35),
	})
}

// RenderMesh draws mesh rotated by rot into an NRGBA image of
// Size*Supersample pixels per side. The framing only depends on the mesh's
// bounding sphere, so every orientation is drawn at the same scale.
func RenderMesh(mesh *Mesh, rot mathutil.Quaternion, opts Options) *image.NRGBA {
	ss := max(opts.Supersample, 1)
	renderSize := opts.Size * ss

	view := opts.View
	if view == (mathutil.Quaternion{}) {
		view = mathutil.QuatIdentity()
	}
	m := mathutil.RotationMatrix(mathutil.QuatMul(view, rot))

	var radius float32
	for _, v := range mesh.Verts {
		radius = max(radius, v.Magnitude())
	}
	if radius < 0.001 {
		radius = 0.001
	}

	margin := 8 * ss
	scale := float64(renderSize-2*margin) / float64(2*radius)
	center := float64(renderSize) / 2

	n := len(mesh.Verts)
	px := make([]float64, n)
	py := make([]float64, n)
	pz := make([]float64, n)
	for i, v := range mesh.Verts {
		x, y, z := transformPoint(m, v)
		px[i] = center + x*scale
		py[i] = center - y*scale
		pz[i] = z * scale
	}

	fb := NewFrameBuffer(renderSize, renderSize)
	lc := DefaultLightConfig()
	for _, tri := range mesh.Tris {
		RasterizeTriangle(fb, px, py, pz, mesh.UVs, tri, opts.Texture, &lc)
	}

	return fb.Image()
}

// transformPoint multiplies the column-major matrix m by (v, 1).
func transformPoint(m mathutil.Mat4, v mathutil.Vector3) (x, y, z float64) {
	x = float64(m.At(0, 0)*v.X + m.At(0, 1)*v.Y + m.At(0, 2)*v.Z + m.At(0, 3))
	y = float64(m.At(1, 0)*v.X + m.At(1, 1)*v.Y + m.At(1, 2)*v.Z + m.At(1, 3))
	z = float64(m.At(2, 0)*v.X + m.At(2, 1)*v.Y + m.At(2, 2)*v.Z + m.At(2, 3))
	return x, y, z
}
