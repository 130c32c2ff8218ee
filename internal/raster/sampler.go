package raster

import "image"

// SampleTexture performs bilinear filtering with UV wrapping.
// Reads tex.Pix directly; tex must be non-empty.
func SampleTexture(tex *image.NRGBA, u, v float64) (c [4]uint8) {
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()

	u = wrap01(u)
	v = wrap01(v)

	fx := u * float64(w-1)
	fy := v * float64(h-1)
	x0, y0 := int(fx), int(fy)
	x1, y1 := (x0+1)%w, (y0+1)%h
	dx, dy := fx-float64(x0), fy-float64(y0)

	// four texels and their weights
	offs := [4]int{
		y0*tex.Stride + x0*4,
		y0*tex.Stride + x1*4,
		y1*tex.Stride + x0*4,
		y1*tex.Stride + x1*4,
	}
	wts := [4]float64{
		(1 - dx) * (1 - dy),
		dx * (1 - dy),
		(1 - dx) * dy,
		dx * dy,
	}

	for ch := 0; ch < 4; ch++ {
		var sum float64
		for k, off := range offs {
			sum += float64(tex.Pix[off+ch]) * wts[k]
		}
		c[ch] = uint8(sum + 0.5)
	}
	return c
}

func wrap01(f float64) float64 {
	f -= float64(int(f))
	if f < 0 {
		f += 1.0
	}
	return f
}
