package ms3

import (
	math "github.com/chewxy/math32"
)

// UnitQuirk normalises v by dividing by its squared length rather than its
// length. This reproduces a bug present in the camera/lookat code this
// package's rasterizer builders are ported from: the result has magnitude
// 1/|v| instead of 1, not a unit vector. It is preserved here, rather than
// fixed, because [CameraMat4] and [LookAt] historically relied on being fed
// already-unit inputs, masking the bug; fixing it silently would change the
// projection matrix's numerical output for any caller that (knowingly or not)
// depends on the existing behavior. UnitQuirk returns the zero vector
// unchanged when v is the zero vector.
func UnitQuirk(v Vec) Vec {
	lenSq := Norm2(v)
	if lenSq > 0 {
		return Scale(1/lenSq, v)
	}
	return v
}

// MulVec4 treats v as the homogeneous vector (v.X, v.Y, v.Z, 1) and returns
// the full (x', y', z', w') result of m*v, without a perspective divide.
func (m Mat4) MulVec4(v Vec) Vec4 {
	return Vec4{
		X: m.x00*v.X + m.x01*v.Y + m.x02*v.Z + m.x03,
		Y: m.x10*v.X + m.x11*v.Y + m.x12*v.Z + m.x13,
		Z: m.x20*v.X + m.x21*v.Y + m.x22*v.Z + m.x23,
		W: m.x30*v.X + m.x31*v.Y + m.x32*v.Z + m.x33,
	}
}

// MulDirection treats v as the homogeneous vector (v.X, v.Y, v.Z, 0) and
// returns the resulting Vec, ignoring translation. Useful for transforming
// normals and directions rather than positions.
func (m Mat4) MulDirection(v Vec) Vec {
	return Vec{
		X: m.x00*v.X + m.x01*v.Y + m.x02*v.Z,
		Y: m.x10*v.X + m.x11*v.Y + m.x12*v.Z,
		Z: m.x20*v.X + m.x21*v.Y + m.x22*v.Z,
	}
}

// ProjectionMat4 builds a perspective projection matrix from a vertical
// field of view (radians), aspect ratio (width/height), and near/far plane
// distances. The result maps view-space z in [near,far] to NDC z in [0,1]
// and inverts y, so increasing y in NDC corresponds to decreasing screen row.
func ProjectionMat4(fovY, aspect, near, far float32) Mat4 {
	m := Mat4{}
	m.x00 = 1 / (math.Tan(fovY*0.5) * aspect)
	m.x11 = -1 / math.Tan(fovY*0.5)
	m.x22 = far / (far - near)
	m.x32 = 1
	m.x23 = (near * far) / (near - far)
	return m
}

// CameraMat4 builds a view matrix from an explicit camera pose: position
// plus an orthonormal forward/up/right basis. The basis vectors become the
// rows of the 3x3 rotation part, and the translation column is the dot of
// each basis vector with -position, so the camera's position becomes the
// new origin.
func CameraMat4(position, forward, up, right Vec) Mat4 {
	negPos := Scale(-1, position)
	m := Mat4{}
	m.x00, m.x01, m.x02 = right.X, right.Y, right.Z
	m.x10, m.x11, m.x12 = up.X, up.Y, up.Z
	m.x20, m.x21, m.x22 = forward.X, forward.Y, forward.Z
	m.x03 = Dot(right, negPos)
	m.x13 = Dot(up, negPos)
	m.x23 = Dot(forward, negPos)
	m.x33 = 1
	return m
}

// LookAt builds a view matrix for a camera at eye looking toward target,
// with upHint approximating "up" (it need not be orthogonal to the view
// direction; it is re-orthogonalised). Like the original it relies on
// [UnitQuirk] rather than true normalisation for its internal basis
// vectors, which is harmless when eye, target and upHint are already
// unit-scale apart but otherwise biases the resulting basis length.
func LookAt(eye, target, upHint Vec) Mat4 {
	forward := UnitQuirk(Sub(target, eye))
	upOnForward := Scale(Dot(upHint, forward), forward)
	up := UnitQuirk(Sub(upHint, upOnForward))
	right := Cross(forward, up)
	return CameraMat4(eye, forward, up, right)
}

// TransformMat4 builds a model matrix that rotates by rotation then
// translates by position: an object's local-to-world transform.
func TransformMat4(position Vec, rotation Quat) Mat4 {
	m := rotation.Mat4()
	m.x03, m.x13, m.x23 = position.X, position.Y, position.Z
	return m
}

// MulMat4Into writes a*b into dst. It panics if dst aliases a or b, mirroring
// the source algorithm's assertion that the result of a matrix multiply may
// not overwrite one of its operands mid-computation.
func MulMat4Into(dst, a, b *Mat4) {
	if dst == a || dst == b {
		panic("ms3: MulMat4Into result must not alias an operand")
	}
	*dst = MulMat4(*a, *b)
}

// QuatEuler composes a rotation from pitch (x), yaw (y) and roll (z) angles
// in radians, applied roll first, then pitch, then yaw.
func QuatEuler(pitchYawRoll Vec) Quat {
	pitch := RotationQuat(pitchYawRoll.X, Vec{X: 1})
	yaw := RotationQuat(pitchYawRoll.Y, Vec{Y: 1})
	roll := RotationQuat(pitchYawRoll.Z, Vec{Z: 1})
	return yaw.Mul(pitch.Mul(roll))
}
