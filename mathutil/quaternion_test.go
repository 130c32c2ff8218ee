package mathutil

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuatIdentity(t *testing.T) {
	assert.Equal(t, Quaternion{0, 0, 0, 1}, QuatIdentity())
	assert.Equal(t, QuatIdentity(), QuatMul(QuatIdentity(), QuatIdentity()))
}

func TestQuaternionNormalize(t *testing.T) {
	for _, q := range []Quaternion{{1, 2, 3, 4}, {0, 0, 0, -7}, {0.001, 0, 0.002, 0}} {
		assert.InDelta(t, 1, q.Normalize().Magnitude(), eps, "%v", q)
	}

	n := Quaternion{}.Normalize()
	for _, c := range n.Array() {
		assert.True(t, math32.IsNaN(c))
	}
}

func TestQuaternionScale(t *testing.T) {
	assert.Equal(t, Quaternion{2, -4, 6, 1}, Quaternion{1, -2, 3, 0.5}.Scale(2))
}

func TestQuaternionConjugate(t *testing.T) {
	assert.Equal(t, Quaternion{-1, 2, -3, 4}, Quaternion{1, -2, 3, 4}.Conjugate())
}

func TestQuatMulIdentity(t *testing.T) {
	qs := append([]Quaternion{{1, 2, 3, 4}, {-0.5, 0.25, 8, -1}}, samples...)
	for _, q := range qs {
		assertQuatInDelta(t, q, QuatMul(QuatIdentity(), q), eps)
		assertQuatInDelta(t, q, QuatMul(q, QuatIdentity()), eps)
	}
}

func TestQuatMulOrder(t *testing.T) {
	i := Quaternion{1, 0, 0, 0}
	j := Quaternion{0, 1, 0, 0}
	k := Quaternion{0, 0, 1, 0}

	assert.Equal(t, k, QuatMul(i, j))
	assert.Equal(t, k.Scale(-1), QuatMul(j, i))
	assert.Equal(t, i, QuatMul(j, k))
	assert.Equal(t, Quaternion{0, 0, 0, -1}, QuatMul(i, i))
}

func TestQuatMulMatchesMathgl(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			want := toMgl(a).Mul(toMgl(b))
			got := QuatMul(a, b)
			assertQuatInDelta(t, Quaternion{want.V[0], want.V[1], want.V[2], want.W}, got, eps)
		}
	}
}

func TestQuaternionInverse(t *testing.T) {
	for _, q := range samples {
		assertQuatInDelta(t, QuatIdentity(), QuatMul(q, q.Inverse()), eps, "%v", q)
		assertQuatInDelta(t, q.Conjugate(), q.Inverse(), eps)
	}

	// non-unit: conjugate over squared magnitude
	q := Quaternion{0, 0, 0, 2}
	assert.Equal(t, Quaternion{0, 0, 0, 0.5}, q.Inverse())
	assertQuatInDelta(t, QuatIdentity(), QuatMul(Quaternion{1, 2, 3, 4}, Quaternion{1, 2, 3, 4}.Inverse()), eps)
}

func TestQuaternionInverseZero(t *testing.T) {
	inv := Quaternion{}.Inverse()
	require.Equal(t, Quaternion{}, inv)
	for _, c := range inv.Array() {
		assert.False(t, math32.IsNaN(c))
	}
}

func TestQuatDifference(t *testing.T) {
	for _, q := range samples {
		assertQuatInDelta(t, QuatIdentity(), QuatDifference(q, q), eps)
	}

	a, b := samples[4], samples[5]
	assertQuatInDelta(t, b, QuatMul(a, QuatDifference(a, b)), eps)
}

func TestQuaternionDot(t *testing.T) {
	assert.Equal(t, float32(30), Quaternion{1, 2, 3, 4}.Dot(Quaternion{1, 2, 3, 4}))
	for _, q := range samples {
		assert.InDelta(t, 1, q.Dot(q), eps)
	}
}

func toMgl(q Quaternion) mgl32.Quat {
	return mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
}
