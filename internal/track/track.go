package track

import (
	"fmt"

	"quatrot/internal/config"
	"quatrot/mathutil"
)

// Frame is one sampled orientation of the animation.
type Frame struct {
	Index    int
	T        float32
	Rotation mathutil.Quaternion
}

// EulerDeg converts Euler XYZ angles in degrees to a quaternion.
func EulerDeg(deg [3]float32) mathutil.Quaternion {
	return mathutil.EulerToQuat(mathutil.Vector3{
		X: mathutil.Deg2Rad(deg[0]),
		Y: mathutil.Deg2Rad(deg[1]),
		Z: mathutil.Deg2Rad(deg[2]),
	})
}

// Sample returns n frames with t evenly spaced over [0, 1], both ends included.
func Sample(start, end mathutil.Quaternion, n int, mode string) ([]Frame, error) {
	if n < 2 {
		return nil, fmt.Errorf("track: need at least 2 frames, got %d", n)
	}

	interp := mathutil.Slerp
	switch mode {
	case config.ModeSlerp:
	case config.ModeShortest:
		interp = mathutil.SlerpShortest
	default:
		return nil, fmt.Errorf("track: unknown mode %q", mode)
	}

	frames := make([]Frame, n)
	for i := range frames {
		t := float32(i) / float32(n-1)
		frames[i] = Frame{Index: i, T: t, Rotation: interp(start, end, t)}
	}
	return frames, nil
}

// Compose applies rotation b first, then a, given as Euler XYZ degrees.
func Compose(a, b [3]float32) mathutil.Quaternion {
	return mathutil.QuatMul(mathutil.QuatMul(EulerDeg(a), EulerDeg(b)), mathutil.QuatIdentity())
}
