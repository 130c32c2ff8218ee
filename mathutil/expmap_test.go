package mathutil

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/num/quat"
)

func toGonum(q Quaternion) quat.Number {
	return quat.Number{Real: float64(q.W), Imag: float64(q.X), Jmag: float64(q.Y), Kmag: float64(q.Z)}
}

func fromGonum(n quat.Number) Quaternion {
	return Quaternion{float32(n.Imag), float32(n.Jmag), float32(n.Kmag), float32(n.Real)}
}

var general = []Quaternion{
	{1, 2, 3, 4},
	{-0.5, 0.25, 0.1, 0.3},
	{0.2, -0.1, 0.05, -2},
}

func TestQuatExpMatchesGonum(t *testing.T) {
	for _, q := range append(general, samples[1:]...) {
		assertQuatInDelta(t, fromGonum(quat.Exp(toGonum(q))), QuatExp(q), 1e-4, "%v", q)
	}
}

func TestQuatLogMatchesGonum(t *testing.T) {
	for _, q := range append(general, samples[1:]...) {
		assertQuatInDelta(t, fromGonum(quat.Log(toGonum(q))), QuatLog(q), 1e-4, "%v", q)
	}
}

func TestQuatExpLogRoundTrip(t *testing.T) {
	for _, q := range append(general, samples[1:]...) {
		assertQuatInDelta(t, q, QuatExp(QuatLog(q)), 1e-4, "%v", q)
	}
}

func TestQuatExpZeroVector(t *testing.T) {
	assert.Equal(t, QuatIdentity(), QuatExp(Quaternion{}))
	assertQuatInDelta(t, Quaternion{0, 0, 0, float32(math.E)}, QuatExp(Quaternion{0, 0, 0, 1}), eps)
}

func TestQuatLogIdentity(t *testing.T) {
	assert.Equal(t, Quaternion{}, QuatLog(QuatIdentity()))
}

func TestQuatLogZero(t *testing.T) {
	l := QuatLog(Quaternion{})
	assert.True(t, math32.IsNaN(l.X))
	assert.True(t, math32.IsInf(l.W, -1))
}

func TestQuatPow(t *testing.T) {
	for _, q := range samples {
		assertQuatInDelta(t, q, QuatPow(q, 1), 1e-4, "%v", q)
		assertQuatInDelta(t, QuatIdentity(), QuatPow(q, 0), eps)
		assertQuatInDelta(t, QuatMul(q, q), QuatPow(q, 2), 1e-4)
	}

	for _, q := range general {
		for _, n := range []float32{0.5, 1.5, -1} {
			want := quat.Pow(toGonum(q), quat.Number{Real: float64(n)})
			assertQuatInDelta(t, fromGonum(want), QuatPow(q, n), 1e-3, "%v^%v", q, n)
		}
	}
}

func TestQuatPowHalfAngle(t *testing.T) {
	q := EulerToQuat(Vector3{0, 0, math32.Pi / 2})
	assertQuatInDelta(t, EulerToQuat(Vector3{0, 0, math32.Pi / 4}), QuatPow(q, 0.5), eps)
}

func TestSlerpEndpoints(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			assertQuatInDelta(t, a, Slerp(a, b, 0), 1e-4, "%v -> %v", a, b)
			assertQuatInDelta(t, b, Slerp(a, b, 1), 1e-4, "%v -> %v", a, b)
		}
	}
}

func TestSlerpClampsT(t *testing.T) {
	a, b := samples[4], samples[5]
	assert.Equal(t, Slerp(a, b, 0), Slerp(a, b, -1))
	assert.Equal(t, Slerp(a, b, 1), Slerp(a, b, 2))
}

func TestSlerpMatchesMathgl(t *testing.T) {
	a, b := samples[1], samples[4]
	for _, tt := range []float32{0.1, 0.25, 0.5, 0.9} {
		want := mgl32.QuatSlerp(toMgl(a), toMgl(b), tt)
		got := Slerp(a, b, tt)
		assertQuatInDelta(t, Quaternion{want.V[0], want.V[1], want.V[2], want.W}, got, 1e-4, "t=%v", tt)
	}
}

func TestSlerpConstantAngularVelocity(t *testing.T) {
	a := QuatIdentity()
	b := EulerToQuat(Vector3{0, 0, 2})
	for _, tt := range []float32{0.25, 0.5, 0.75} {
		assertQuatInDelta(t, EulerToQuat(Vector3{0, 0, 2 * tt}), Slerp(a, b, tt), 1e-4)
	}
}

func TestSlerpKeepsLongArc(t *testing.T) {
	start := EulerToQuat(Vector3{0, -3 * math32.Pi / 2, 0})
	end := QuatIdentity()
	assert.Less(t, start.Dot(end), float32(0))

	// halfway along the 270 degree arc
	mid := Slerp(start, end, 0.5)
	assertQuatInDelta(t, EulerToQuat(Vector3{0, -3 * math32.Pi / 4, 0}), mid, 1e-4)

	// the shortest path only covers 90 degrees
	short := SlerpShortest(start, end, 0.5)
	angle := 2 * math.Acos(math.Abs(float64(QuatDifference(short, end).W)))
	assert.InDelta(t, math.Pi/4, angle, 1e-3)
}

func TestSlerpShortestEndpoints(t *testing.T) {
	start := EulerToQuat(Vector3{0, -3 * math32.Pi / 2, 0})
	end := QuatIdentity()

	assertQuatInDelta(t, start, SlerpShortest(start, end, -3), 1e-4)
	// the far endpoint is the negated quaternion, the same rotation
	assertQuatInDelta(t, end.Scale(-1), SlerpShortest(start, end, 1), 1e-4)
}
