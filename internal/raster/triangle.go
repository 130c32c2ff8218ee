package raster

import (
	"image"
	"math"
)

// RasterizeTriangle fills one flat-shaded triangle with z-buffering.
// px, py are screen coordinates and pz grows toward the viewer. When tex is
// nil, or the triangle's UV indices are out of range, tri.Color is used.
func RasterizeTriangle(
	fb *FrameBuffer,
	px, py, pz []float64,
	uvs [][2]float32,
	tri Triangle,
	tex *image.NRGBA,
	lc *LightConfig,
) {
	nv := len(px)
	for _, i := range tri.VI {
		if i < 0 || i >= nv {
			return
		}
	}

	i0, i1, i2 := tri.VI[0], tri.VI[1], tri.VI[2]
	x0, y0, z0 := px[i0], py[i0], pz[i0]
	x1, y1, z1 := px[i1], py[i1], pz[i1]
	x2, y2, z2 := px[i2], py[i2], pz[i2]

	hasUV := tex != nil
	for _, i := range tri.TI {
		if i < 0 || i >= len(uvs) {
			hasUV = false
			break
		}
	}

	var u [3]float64
	var v [3]float64
	if hasUV {
		for k, i := range tri.TI {
			u[k], v[k] = float64(uvs[i][0]), float64(uvs[i][1])
		}
	}

	// Face normal for flat shading
	e1x, e1y, e1z := x1-x0, y1-y0, z1-z0
	e2x, e2y, e2z := x2-x0, y2-y0, z2-z0
	nx := e1y*e2z - e1z*e2y
	ny := e1z*e2x - e1x*e2z
	nz := e1x*e2y - e1y*e2x
	nl := math.Sqrt(nx*nx + ny*ny + nz*nz)
	if nl < 1e-8 {
		return
	}
	// screen y points down; flip back to view space for lighting
	shade := lc.Shade(nx/nl, -ny/nl, nz/nl)

	// Bounding box
	minX := max(int(math.Min(math.Min(x0, x1), x2)), 0)
	maxX := min(int(math.Max(math.Max(x0, x1), x2))+1, fb.Width-1)
	minY := max(int(math.Min(math.Min(y0, y1), y2)), 0)
	maxY := min(int(math.Max(math.Max(y0, y1), y2))+1, fb.Height-1)
	if minX >= maxX || minY >= maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	base := [4]uint8{tri.Color.R, tri.Color.G, tri.Color.B, tri.Color.A}

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}

			c := base
			if hasUV {
				c = SampleTexture(tex,
					w0*u[0]+w1*u[1]+w2*u[2],
					w0*v[0]+w1*v[1]+w2*v[2])
			}

			// Skip transparent texels
			if c[3] < 8 {
				continue
			}
			fb.ZBuf[zIdx] = z

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = lc.Apply(c[0], shade)
			fb.Color[pxIdx+1] = lc.Apply(c[1], shade)
			fb.Color[pxIdx+2] = lc.Apply(c[2], shade)
			fb.Color[pxIdx+3] = c[3]
		}
	}
}
