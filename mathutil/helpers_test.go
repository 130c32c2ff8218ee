package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-5

// samples are unit rotations spread over all three axes.
var samples = []Quaternion{
	QuatIdentity(),
	EulerToQuat(Vector3{0.3, 0, 0}),
	EulerToQuat(Vector3{0, -1.2, 0}),
	EulerToQuat(Vector3{0, 0, 2.5}),
	EulerToQuat(Vector3{0.4, -0.7, 1.1}),
	EulerToQuat(Vector3{-2.0, 0.9, -0.3}),
}

func assertQuatInDelta(t *testing.T, want, got Quaternion, delta float64, msgAndArgs ...any) {
	t.Helper()
	w, g := want.Array(), got.Array()
	assert.InDeltaSlice(t, w[:], g[:], delta, msgAndArgs...)
}

func toFloat64(a []float32) []float64 {
	out := make([]float64, len(a))
	for i, v := range a {
		out[i] = float64(v)
	}
	return out
}
