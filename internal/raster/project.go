package raster

import "github.com/soypat/balder/math/ms3"

// ScreenVertex is a vertex after the MVP transform, perspective divide and
// NDC-to-screen remap: X and Y are pixel coordinates (not necessarily
// integral, nor clamped to the viewport), Z is the post-divide NDC depth
// used directly by the depth test.
type ScreenVertex struct {
	X, Y, Z float32
}

// Project maps each world-space vertex in verts through mvp, performs the
// perspective divide, and remaps the result into screen space, writing into
// out (which must have the same length as verts).
//
// The perspective divide is not guarded: a w of zero produces +/-Inf or
// NaN coordinates, and a negative w (a vertex behind the camera) divides
// x, y and z by a negative number, mirroring the vertex instead of
// discarding it. There is no explicit near-plane clip.
func Project(mvp ms3.Mat4, verts []ms3.Vec, out []ScreenVertex) {
	for i, v := range verts {
		t := mvp.MulVec4(v)
		t.X /= t.W
		t.Y /= t.W
		t.Z /= t.W
		out[i] = ScreenVertex{
			X: (t.X + 1) / 2 * Width,
			Y: (t.Y - 1) / -2 * Height,
			Z: t.Z,
		}
	}
}
