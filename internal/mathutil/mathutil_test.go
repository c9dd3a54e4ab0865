package mathutil

import (
	"math"
	"testing"
)

func assertVecNear(t *testing.T, got, want Vec3, epsilon float64) {
	t.Helper()
	if d := got.Sub(want).Len(); d > epsilon {
		t.Fatalf("got %v, expected %v", got, want)
	}
}

func TestRotationBasis(t *testing.T) {
	const epsilon = 1e-12
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	z := Vec3{0, 0, 1}

	// Quarter turns map basis vectors onto each other.
	assertVecNear(t, RotX(math.Pi/2).MulVec3(y), z, epsilon)
	assertVecNear(t, RotY(math.Pi/2).MulVec3(z), x, epsilon)
	assertVecNear(t, RotZ(math.Pi/2).MulVec3(x), y, epsilon)
}

func TestMat3Inverse(t *testing.T) {
	const epsilon = 1e-9
	m := Mat3Mul(Mat3Mul(RotZ(0.3), RotX(-1.1)), RotY(2.5))
	inv := m.Inverse()

	for _, v := range []Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {3, -4, 5}} {
		assertVecNear(t, inv.MulVec3(m.MulVec3(v)), v, epsilon)
	}

	// For a pure rotation the inverse is the transpose.
	tr := m.Transpose()
	for i := range m {
		if math.Abs(inv[i]-tr[i]) > epsilon {
			t.Fatalf("inverse differs from transpose at %d: %v vs %v", i, inv[i], tr[i])
		}
	}
}

func TestMat4AffineInverse(t *testing.T) {
	const epsilon = 1e-9
	m := FromMat3Translation(Mat3Mul(RotY(0.7), RotZ(-0.2)), Vec3{10, -20, 5})
	inv := m.AffineInverse()

	if !Mat4Mul(m, inv).IsIdentity() {
		t.Fatalf("m · inv(m) is not identity: %v", Mat4Mul(m, inv))
	}

	p := Vec3{-3, 8, 1}
	assertVecNear(t, inv.MulPoint(m.MulPoint(p)), p, epsilon)
}

func TestMat4MulPoint(t *testing.T) {
	const epsilon = 1e-12
	m := FromMat3Translation(RotZ(math.Pi/2), Vec3{100, 0, 0})
	assertVecNear(t, m.MulPoint(Vec3{1, 0, 0}), Vec3{100, 1, 0}, epsilon)
}

func TestDeg2Rad(t *testing.T) {
	if got := Deg2Rad(180); math.Abs(got-math.Pi) > 1e-15 {
		t.Fatalf("Deg2Rad(180) = %v, expected π", got)
	}
}
