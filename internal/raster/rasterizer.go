package raster

import (
	math "github.com/chewxy/math32"

	"github.com/soypat/balder/math/ms2"
)

// Renderer bundles every piece of process-wide mutable state the core
// render path touches: the color and depth buffers, and the per-scanline
// scratch the edge walker and scanline fill communicate through. Bundling
// it into a single owned object (rather than package-level globals) means
// a caller could run more than one Renderer, even though nothing here
// synchronizes concurrent use of one.
type Renderer struct {
	cfg Config

	// Frame is the 24-bit color buffer, Width*Height*3 bytes, row-major,
	// channel order matching whatever textures are sampled into it.
	Frame []byte
	// Depth is the per-pixel depth buffer, Width*Height float32s.
	Depth []float32

	// Per-scanline scratch: valid only within a single DrawTriangle call,
	// for the rows that triangle spans.
	minX, maxX         []int32
	minDepth, maxDepth []float32
	minUV, maxUV       []ms2.Vec
}

// NewRenderer allocates a Renderer sized for [Width]x[Height] and clears it.
func NewRenderer(cfg Config) *Renderer {
	r := &Renderer{
		cfg:      cfg,
		Frame:    make([]byte, Width*Height*3),
		Depth:    make([]float32, Width*Height),
		minX:     make([]int32, Height),
		maxX:     make([]int32, Height),
		minDepth: make([]float32, Height),
		maxDepth: make([]float32, Height),
		minUV:    make([]ms2.Vec, Height),
		maxUV:    make([]ms2.Vec, Height),
	}
	r.Clear()
	return r
}

// Clear resets the color buffer to cfg.ClearColor and the depth buffer to
// +Inf, as if no triangle had ever been drawn.
func (r *Renderer) Clear() {
	c := r.cfg.ClearColor
	if c == [3]byte{} {
		for i := range r.Frame {
			r.Frame[i] = 0
		}
	} else {
		for i := 0; i < len(r.Frame); i += 3 {
			r.Frame[i], r.Frame[i+1], r.Frame[i+2] = c[0], c[1], c[2]
		}
	}
	inf := math.Inf(1)
	for i := range r.Depth {
		r.Depth[i] = inf
	}
}

func pixelIndex(x, y int32) int32 { return y*Width + x }

// DrawModel rasterizes every draw call of model, consuming the
// already-projected screen-space vertices in screen (indexed the same way
// as model.Vertices/model.Triangles — typically the output of [Project]).
// Triangles are rasterized in draw-call order and, within a draw call, in
// index order; this order is only observable where two triangles tie in
// depth at a pixel, since the depth test otherwise enforces visual
// ordering independently of rasterization order.
func (r *Renderer) DrawModel(model *Model, screen []ScreenVertex) {
	var pos [3]ScreenVertex
	var uv [3]ms2.Vec
	for _, dc := range model.DrawCalls {
		for i := int32(0); i < dc.TriangleCount; i++ {
			base := (dc.TriangleStart + i) * 3
			i0, i1, i2 := model.Triangles[base], model.Triangles[base+1], model.Triangles[base+2]
			pos[0], pos[1], pos[2] = screen[i0], screen[i1], screen[i2]
			uv[0], uv[1], uv[2] = model.Texcoords[i0], model.Texcoords[i1], model.Texcoords[i2]
			if !anyVertexOnScreen(pos) {
				continue
			}
			if screenCrossZ(pos) <= 0 {
				continue // backface, or exactly edge-on
			}
			r.DrawTriangle(pos, uv, dc.Texture)
		}
	}
}

// anyVertexOnScreen is the trivial visibility test: a triangle is a
// candidate for rasterization only if at least one vertex falls within
// [0,Width)x[0,Height). This is not clipping — a triangle with one vertex
// on screen and two far outside it is still rasterized in full, clamped
// only by row/column bounds during the scanline fill.
func anyVertexOnScreen(pos [3]ScreenVertex) bool {
	for _, p := range pos {
		if p.X >= 0 && p.X < Width && p.Y >= 0 && p.Y < Height {
			return true
		}
	}
	return false
}

// screenCrossZ returns the z component of cross(p0-p1, p0-p2) in screen
// space. Positive means front-facing under this package's projection
// convention; zero (exactly edge-on) is treated as a backface.
func screenCrossZ(pos [3]ScreenVertex) float32 {
	ax, ay := pos[0].X-pos[1].X, pos[0].Y-pos[1].Y
	bx, by := pos[0].X-pos[2].X, pos[0].Y-pos[2].Y
	return ax*by - ay*bx
}

// DrawTriangle rasterizes one triangle directly: edge-traces its three
// sides to build per-row [min_x,max_x] spans with interpolated depth and
// UV, then fills each covered row with a depth-tested, nearest-sampled
// write. It never fails: out-of-range writes are prevented by explicit
// row/column clamping, and it performs no visibility or backface test of
// its own (see [Renderer.DrawModel] for that).
func (r *Renderer) DrawTriangle(pos [3]ScreenVertex, uv [3]ms2.Vec, tex *Texture) {
	y0, y1, y2 := int32(pos[0].Y), int32(pos[1].Y), int32(pos[2].Y)
	yMin := maxOf(int32(0), minOf(minOf(y0, y1), y2))
	yMax := minOf(int32(Height-1), maxOf(maxOf(y0, y1), y2))
	for y := yMin; y <= yMax; y++ {
		r.minX[y] = Width
		r.maxX[y] = -1
	}

	r.triangleEdge(pos[0], pos[1], uv[0], uv[1])
	r.triangleEdge(pos[1], pos[2], uv[1], uv[2])
	r.triangleEdge(pos[2], pos[0], uv[2], uv[0])

	for y := maxOf(yMin, 0); y <= yMax; y++ {
		xEnd := minOf(r.maxX[y], int32(Width-1))
		for x := maxOf(r.minX[y], 0); x <= xEnd; x++ {
			t := float32(0)
			if r.minX[y] != r.maxX[y] {
				t = float32(x-r.minX[y]) / float32(r.maxX[y]-r.minX[y])
			}
			depth := lerp(r.minDepth[y], r.maxDepth[y], t)

			offset := pixelIndex(x, y)
			if r.Depth[offset] > depth {
				r.Depth[offset] = depth
				texcoord := lerpVec2(r.minUV[y], r.maxUV[y], t)
				c := tex.SampleNearest(texcoord.X, texcoord.Y)
				frameOffset := offset * 3
				r.Frame[frameOffset] = c[0]
				r.Frame[frameOffset+1] = c[1]
				r.Frame[frameOffset+2] = c[2]
			}
		}
	}
}

// triangleEdge traces the integer DDA between a and b, recording per-row
// extrema into the renderer's scratch arrays. For each row y it visits, x
// becomes the new min_x[y] (with interpolated depth/uv) if it is less than
// the current min, and symmetrically for max — overwrite-on-extreme, not
// union, so two edges meeting at a shared vertex leave consistent
// per-row attributes.
func (r *Renderer) triangleEdge(a, b ScreenVertex, aUV, bUV ms2.Vec) {
	x1, y1 := int32(a.X), int32(a.Y)
	x2, y2 := int32(b.X), int32(b.Y)

	deltaX := x2 - x1
	deltaY := y2 - y1
	deltaX2 := int32Abs(deltaX + deltaX)
	deltaY2 := int32Abs(deltaY + deltaY)

	edgeLenSq := (x2-x1)*(x2-x1) + (y2-y1)*(y2-y1)

	xStep := int32(1)
	if deltaX < 0 {
		xStep = -1
	}
	yStep := int32(1)
	if deltaY < 0 {
		yStep = -1
	}

	x, y := x1, y1
	var error_ int32
	for {
		yEnd := y
		for error_ >= deltaX && yEnd != y2 {
			yEnd += yStep
			error_ -= deltaX2
		}
		error_ += deltaY2
		// An extra y-step is taken whenever the inner loop above moved at
		// all, so a perfectly diagonal edge doesn't look like stairs.
		if yEnd != y {
			y += yStep
		}

		for {
			if y >= 0 && y < Height {
				distSq := (x-x1)*(x-x1) + (y-y1)*(y-y1)
				t := math.Sqrt(float32(distSq) / float32(edgeLenSq))
				if x < r.minX[y] {
					r.minX[y] = x
					r.minDepth[y] = lerp(a.Z, b.Z, t)
					r.minUV[y] = lerpVec2(aUV, bUV, t)
				}
				if x > r.maxX[y] {
					r.maxX[y] = x
					r.maxDepth[y] = lerp(a.Z, b.Z, t)
					r.maxUV[y] = lerpVec2(aUV, bUV, t)
				}
			}
			if y == yEnd {
				break
			}
			y += yStep
		}

		if x == x2 {
			break
		}
		x += xStep
	}
}

// DrawLine rasterizes a plain line from p1 to p2 with color, independent of
// the triangle path — useful for wireframe or debug overlays. It is not on
// the per-triangle hot path and shares only its DDA shape with
// [Renderer.triangleEdge], not its per-row attribute bookkeeping.
func (r *Renderer) DrawLine(p1, p2 ScreenVertex, color [3]byte) {
	if p1.X > p2.X {
		p1, p2 = p2, p1
	}
	x1, y1 := int32(p1.X), int32(p1.Y)
	x2, y2 := int32(p2.X), int32(p2.Y)

	deltaX := x2 - x1
	deltaY := y2 - y1
	deltaX2 := int32Abs(deltaX + deltaX)
	deltaY2 := int32Abs(deltaY + deltaY)

	yStep := int32(1)
	if deltaY < 0 {
		yStep = -1
	}

	var error_ int32
	x, y := x1, y1
	for ; x <= x2; x++ {
		yEnd := y
		for error_ >= deltaX && yEnd != y2 {
			yEnd += yStep
			error_ -= deltaX2
		}
		error_ += deltaY2
		if yEnd != y {
			y += yStep
		}
		for {
			r.plot(x, y, color)
			if y == yEnd {
				break
			}
			y += yStep
		}
	}
}

func (r *Renderer) plot(x, y int32, color [3]byte) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	offset := pixelIndex(x, y) * 3
	r.Frame[offset], r.Frame[offset+1], r.Frame[offset+2] = color[0], color[1], color[2]
}

func int32Abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func lerp(a, b, t float32) float32 {
	return a*(1-t) + b*t
}

func lerpVec2(a, b ms2.Vec, t float32) ms2.Vec {
	return ms2.Vec{X: lerp(a.X, b.X, t), Y: lerp(a.Y, b.Y, t)}
}
