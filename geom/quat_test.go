package geom

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	id := QuatIdentity()
	q := QuatFromAngleY(0.7)
	if got := id.Mul(q); !got.Approx(q) {
		t.Errorf("identity * q = %v, want %v", got, q)
	}
	if got := q.Mul(id); !got.Approx(q) {
		t.Errorf("q * identity = %v, want %v", got, q)
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	half := float32(math.Pi / 2)
	q := QuatFromAngleZ(half)
	s := float32(math.Sqrt(0.5))
	if !q.Approx(Quat{Z: s, W: s}) {
		t.Errorf("QuatFromAngleZ(pi/2) = %v, want (0, 0, %v, %v)", q, s, s)
	}
	if !approxEq(q.Vec4().Length(), 1) {
		t.Errorf("axis-angle quaternion not unit length: %v", q.Vec4().Length())
	}
}

func TestQuatMulComposes(t *testing.T) {
	// Two quarter turns about the same axis equal one half turn.
	quarter := QuatFromAngleX(float32(math.Pi / 2))
	halfTurn := QuatFromAngleX(float32(math.Pi))
	if got := quarter.Mul(quarter); !got.Approx(halfTurn) {
		t.Errorf("quarter^2 = %v, want %v", got, halfTurn)
	}
}

func TestQuatConjugateCancels(t *testing.T) {
	q := QuatFromAxisAngle(V3(1, 2, 2).Normalized(), 1.3)
	if got := q.Mul(q.Conjugate()); !got.Approx(QuatIdentity()) {
		t.Errorf("q * q^-1 = %v, want identity", got)
	}
}

func TestQuatVec4Layout(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	if got := q.Vec4(); got != V4(1, 2, 3, 4) {
		t.Errorf("Vec4 = %v, want (1, 2, 3, 4)", got)
	}
}
