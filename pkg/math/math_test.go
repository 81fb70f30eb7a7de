package math

import (
	gomath "math"
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 0}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}

	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero vector Normalize() = %v, want zero", got)
	}
}

func TestVec3Mul(t *testing.T) {
	got := Vec3{2, 3, 4}.Mul(Vec3{1, 0, -1})
	want := Vec3{2, 0, -4}
	if got != want {
		t.Errorf("Vec3.Mul() = %v, want %v", got, want)
	}
}

func TestMat4IdentityTransform(t *testing.T) {
	p := Vec3{1, 2, 3}
	got := Identity().TransformVec3(p)
	if got != p {
		t.Errorf("Identity().TransformVec3(%v) = %v", p, got)
	}
}

func TestMat4Translate(t *testing.T) {
	m := Translate(1, 2, 3)
	got := m.TransformVec3(Vec3{0, 0, 0})
	want := Vec3{1, 2, 3}
	if got != want {
		t.Errorf("Translate transform = %v, want %v", got, want)
	}
}

func TestMat4RotateY(t *testing.T) {
	m := RotateY(float32(gomath.Pi / 2))
	got := m.TransformVec3(Vec3{0, 0, 1})
	// +Z rotates to +X
	want := Vec3{1, 0, 0}
	if gomath.Abs(float64(got.X-want.X)) > 1e-5 ||
		gomath.Abs(float64(got.Y-want.Y)) > 1e-5 ||
		gomath.Abs(float64(got.Z-want.Z)) > 1e-5 {
		t.Errorf("RotateY(pi/2) transform = %v, want %v", got, want)
	}
}

func TestMat4MulOrder(t *testing.T) {
	// Translate then rotate vs rotate then translate must differ.
	a := Translate(1, 0, 0).Mul(RotateY(float32(gomath.Pi / 2)))
	b := RotateY(float32(gomath.Pi / 2)).Mul(Translate(1, 0, 0))
	pa := a.TransformVec3(Vec3{0, 0, 1})
	pb := b.TransformVec3(Vec3{0, 0, 1})
	if gomath.Abs(float64(pa.X-pb.X)) < 1e-5 &&
		gomath.Abs(float64(pa.Z-pb.Z)) < 1e-5 {
		t.Errorf("matrix multiplication should not commute: %v vs %v", pa, pb)
	}
}
