package raster

import (
	"math"

	"quatrot/mathutil"
)

// LightConfig holds precomputed lighting parameters.
type LightConfig struct {
	LightDir mathutil.Vector3
	RimDir   mathutil.Vector3
	HalfMain mathutil.Vector3 // precomputed half-vector for Blinn-Phong
	Ambient  float64
	Hemi     float64
	Direct   float64
	Rim      float64
	SpecInt  float64
	SpecPow  float64
	Exposure float64
	InvGamma float64
}

// DefaultLightConfig returns a key light from the upper right and a rim
// light from behind, viewed along -Z.
func DefaultLightConfig() LightConfig {
	lightDir := mathutil.Vector3{X: 180, Y: 260, Z: 300}.Normalize()
	rimDir := mathutil.Vector3{X: -160, Y: 130, Z: -210}.Normalize()
	viewDir := mathutil.Vector3{Z: -1}

	halfMain := mathutil.Vector3{
		X: lightDir.X - viewDir.X,
		Y: lightDir.Y - viewDir.Y,
		Z: lightDir.Z - viewDir.Z,
	}.Normalize()

	return LightConfig{
		LightDir: lightDir,
		RimDir:   rimDir,
		HalfMain: halfMain,
		Ambient:  0.30,
		Hemi:     0.25,
		Direct:   0.90,
		Rim:      0.25,
		SpecInt:  0.30,
		SpecPow:  12.0,
		Exposure: 1.0,
		InvGamma: 1.0 / 2.2,
	}
}

func dot(v mathutil.Vector3, x, y, z float64) float64 {
	return float64(v.X)*x + float64(v.Y)*y + float64(v.Z)*z
}

// Shade returns the combined lighting scalar for a unit face normal.
func (lc *LightConfig) Shade(nx, ny, nz float64) float64 {
	// Lambertian (abs for double-sided)
	ndlMain := math.Abs(dot(lc.LightDir, nx, ny, nz))
	ndlRim := math.Abs(dot(lc.RimDir, nx, ny, nz))

	// Hemisphere fill
	hemi := (1.0-math.Abs(ny))*0.5 + 0.5

	// Blinn-Phong specular
	ndh := math.Max(dot(lc.HalfMain, nx, ny, nz), 0)
	spec := math.Pow(ndh, lc.SpecPow) * lc.SpecInt

	return lc.Ambient + hemi*lc.Hemi + ndlMain*lc.Direct + ndlRim*lc.Rim + spec
}

// Precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float64

func init() {
	for i := range srgbToLinear {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, 2.2)
	}
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}

// Apply lights an sRGB channel value and encodes it back to sRGB.
func (lc *LightConfig) Apply(c uint8, shade float64) uint8 {
	lin := srgbToLinear[c] * shade * lc.Exposure
	return clamp255(math.Pow(ACESTonemap(lin), lc.InvGamma) * 255)
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
