package ms3

import (
	"testing"

	math "github.com/chewxy/math32"
)

func TestTransformMat4(t *testing.T) {
	const tol = 1e-5
	q := RotationQuat(math.Pi/2, Vec{Y: 1})
	p := Vec{X: 1, Y: 2, Z: 3}
	v := Vec{X: 1}

	got := TransformMat4(p, q).MulPosition(v)
	want := Add(q.Rotate(v), p)
	if !EqualElem(got, want, tol) {
		t.Errorf("transform(p,q)*v want %v, got %v", want, got)
	}
}

func TestMulVec4PerspectiveDivide(t *testing.T) {
	const tol = 1e-4
	// World point directly ahead of an identity-pose camera looking along +y,
	// matching the end-to-end projection scenario: camera at origin,
	// forward=+y, up=+z, right=+x, point at (0,2,0) should land at screen
	// center after NDC remap.
	proj := ProjectionMat4(60*math.Pi/180, 4.0/3.0, 0.1, 1000)
	view := CameraMat4(Vec{}, Vec{Y: 1}, Vec{Z: 1}, Vec{X: 1})
	mvp := MulMat4(proj, view)

	t4 := mvp.MulVec4(Vec{Y: 2})
	if t4.W <= 0 {
		t.Fatalf("expected positive w for point in front of camera, got %v", t4.W)
	}
	ndc := t4.PerspectiveDivide()
	if math.Abs(ndc.X) > tol {
		t.Errorf("expected x centered, got %v", ndc.X)
	}
	if math.Abs(ndc.Y) > tol {
		t.Errorf("expected y centered, got %v", ndc.Y)
	}
}

func TestLookAtMatchesCamera(t *testing.T) {
	const tol = 1e-4
	eye := Vec{Z: -5}
	target := Vec{}
	up := Vec{Y: 1}

	got := LookAt(eye, target, up)
	forward := UnitQuirk(Sub(target, eye))
	orthoUp := UnitQuirk(Sub(up, Scale(Dot(up, forward), forward)))
	right := Cross(forward, orthoUp)
	want := CameraMat4(eye, forward, orthoUp, right)

	if !EqualMat4(got, want, tol) {
		t.Errorf("lookat mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestQuatEulerIdentity(t *testing.T) {
	const tol = 1e-6
	q := QuatEuler(Vec{})
	if !EqualElem(q.V, QuatIdent().V, tol) || math.Abs(q.W-QuatIdent().W) > tol {
		t.Errorf("zero euler angles should yield identity quaternion, got %v", q)
	}
}

// TestRotationFromQuatMatchesMat4 cross-checks two independent rotation
// derivations against each other: Quat.Mat4's sandwich-the-basis-vectors
// construction, and Mat.RotationFromQuat's closed-form
// w^2*I - dot(q,q)*I + 2*q*qT + 2*w*skew(q) expansion. They must agree on
// every unit quaternion.
func TestRotationFromQuatMatchesMat4(t *testing.T) {
	const tol = 1e-5
	q := RotationQuat(math.Pi/3, Vec{X: 1, Y: 2, Z: -1}).Unit()

	want := q.Mat4()

	var r Mat
	r.RotationFromQuat(q)

	got := [3][3]float32{
		{r.At(0, 0), r.At(0, 1), r.At(0, 2)},
		{r.At(1, 0), r.At(1, 1), r.At(1, 2)},
		{r.At(2, 0), r.At(2, 1), r.At(2, 2)},
	}
	wantArr := [3][3]float32{
		{want.x00, want.x01, want.x02},
		{want.x10, want.x11, want.x12},
		{want.x20, want.x21, want.x22},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(got[i][j]-wantArr[i][j]) > tol {
				t.Errorf("element (%d,%d): RotationFromQuat=%v, Mat4=%v", i, j, got[i][j], wantArr[i][j])
			}
		}
	}
}

func TestUnitQuirkMagnitude(t *testing.T) {
	const tol = 1e-5
	v := Vec{X: 3, Y: 4}
	got := Norm2(UnitQuirk(v))
	want := float32(1) / Norm2(v)
	if math.Abs(got-want) > tol {
		t.Errorf("UnitQuirk(%v) should have squared-length 1/|v|^2=%v, got %v", v, want, got)
	}
}
