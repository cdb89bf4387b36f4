package raster

import (
	"testing"

	"github.com/soypat/balder/math/ms2"
)

func solidTexture(c [3]byte) *Texture {
	return &Texture{Width: 1, Height: 1, Pixels: []byte{c[0], c[1], c[2]}}
}

func pixelAt(r *Renderer, x, y int32) [3]byte {
	o := pixelIndex(x, y) * 3
	return [3]byte{r.Frame[o], r.Frame[o+1], r.Frame[o+2]}
}

// TestDrawTriangleFillsCoveredPixelsOnly covers the spec's solid-fill
// scenario: a triangle comfortably inside the viewport should leave its
// interior colored and pixels clearly outside it untouched (clear color).
func TestDrawTriangleFillsCoveredPixelsOnly(t *testing.T) {
	cfg := DefaultConfig()
	r := NewRenderer(cfg)

	red := solidTexture([3]byte{255, 0, 0})
	pos := [3]ScreenVertex{
		{X: 10, Y: 10, Z: 0.5},
		{X: 60, Y: 10, Z: 0.5},
		{X: 10, Y: 60, Z: 0.5},
	}
	var uv [3]ms2.Vec
	r.DrawTriangle(pos, uv, red)

	// Well inside the triangle's hypotenuse.
	if got := pixelAt(r, 20, 20); got != [3]byte{255, 0, 0} {
		t.Errorf("expected interior pixel (20,20) to be red, got %v", got)
	}
	// Outside the triangle entirely, but within the viewport.
	if got := pixelAt(r, 300, 300); got != cfg.ClearColor {
		t.Errorf("expected untouched pixel (300,300) to be clear color %v, got %v", cfg.ClearColor, got)
	}
	// Depth buffer must have been written where the triangle drew.
	if r.Depth[pixelIndex(20, 20)] != 0.5 {
		t.Errorf("expected depth 0.5 at (20,20), got %v", r.Depth[pixelIndex(20, 20)])
	}
}

// TestDrawTriangleDepthTestOcclusion covers the spec's occlusion scenario:
// a nearer triangle drawn after a farther one at the same pixels must win,
// and drawn before it must still win, since the depth test is symmetric in
// draw order.
func TestDrawTriangleDepthTestOcclusion(t *testing.T) {
	near := solidTexture([3]byte{0, 255, 0})
	far := solidTexture([3]byte{0, 0, 255})
	quad := [3]ScreenVertex{
		{X: 0, Y: 0},
		{X: 100, Y: 0},
		{X: 0, Y: 100},
	}
	var uv [3]ms2.Vec

	t.Run("far then near", func(t *testing.T) {
		r := NewRenderer(DefaultConfig())
		farPos, nearPos := quad, quad
		for i := range farPos {
			farPos[i].Z = 0.9
			nearPos[i].Z = 0.1
		}
		r.DrawTriangle(farPos, uv, far)
		r.DrawTriangle(nearPos, uv, near)
		if got := pixelAt(r, 20, 20); got != [3]byte{0, 255, 0} {
			t.Errorf("expected near (green) triangle to win, got %v", got)
		}
	})

	t.Run("near then far", func(t *testing.T) {
		r := NewRenderer(DefaultConfig())
		farPos, nearPos := quad, quad
		for i := range farPos {
			farPos[i].Z = 0.9
			nearPos[i].Z = 0.1
		}
		r.DrawTriangle(nearPos, uv, near)
		r.DrawTriangle(farPos, uv, far)
		if got := pixelAt(r, 20, 20); got != [3]byte{0, 255, 0} {
			t.Errorf("expected near (green) triangle to still win when drawn first, got %v", got)
		}
	})
}

// TestDrawModelCullsBackfaces covers the spec's backface-cull scenario: a
// triangle wound clockwise in screen space (negative cross-z under this
// package's convention) must leave the framebuffer completely unchanged.
func TestDrawModelCullsBackfaces(t *testing.T) {
	cfg := DefaultConfig()
	r := NewRenderer(cfg)

	before := make([]byte, len(r.Frame))
	copy(before, r.Frame)

	tex := solidTexture([3]byte{255, 255, 255})
	screen := []ScreenVertex{
		{X: 10, Y: 60, Z: 0.5}, // reverse winding vs. the front-facing test above
		{X: 60, Y: 10, Z: 0.5},
		{X: 10, Y: 10, Z: 0.5},
	}
	backfaceModel := &Model{
		Texcoords: []ms2.Vec{{}, {}, {}},
		Triangles: []int32{0, 1, 2},
		DrawCalls: []DrawCall{{TriangleStart: 0, TriangleCount: 1, Texture: tex}},
	}
	r.DrawModel(backfaceModel, screen)

	for i := range r.Frame {
		if r.Frame[i] != before[i] {
			t.Fatalf("backface triangle modified the framebuffer at byte %d: %d != %d", i, r.Frame[i], before[i])
		}
	}
}

func TestScreenCrossZSign(t *testing.T) {
	ccwFront := [3]ScreenVertex{{X: 10, Y: 10}, {X: 60, Y: 10}, {X: 10, Y: 60}}
	if screenCrossZ(ccwFront) <= 0 {
		t.Errorf("expected positive cross-z for front-facing winding, got %v", screenCrossZ(ccwFront))
	}
	reversed := [3]ScreenVertex{ccwFront[0], ccwFront[2], ccwFront[1]}
	if screenCrossZ(reversed) >= 0 {
		t.Errorf("expected negative cross-z for reversed winding, got %v", screenCrossZ(reversed))
	}
	degenerate := [3]ScreenVertex{{X: 5, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 5}}
	if screenCrossZ(degenerate) != 0 {
		t.Errorf("expected exactly zero cross-z for a degenerate triangle, got %v", screenCrossZ(degenerate))
	}
}
