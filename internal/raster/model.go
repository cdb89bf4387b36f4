package raster

import (
	"github.com/soypat/balder/math/ms2"
	"github.com/soypat/balder/math/ms3"
)

// DrawCall names a contiguous span of triangles in a Model's index array
// that all share one texture. TriangleStart and TriangleCount are measured
// in triangles, not indices (each triangle occupies 3 entries of
// Model.Triangles).
type DrawCall struct {
	TriangleStart, TriangleCount int32
	Texture                     *Texture
}

// Model is a loaded, renderable mesh: deduplicated vertex attributes, a
// flat triangle index array, and the draw-call spans that group those
// triangles by texture.
//
// Invariants: every entry of Triangles is in [0,len(Vertices)); the
// DrawCalls spans are disjoint and, concatenated in order, cover
// [0,len(Triangles)/3); len(Vertices) == len(Texcoords) == len(Normals),
// each equal to the number of unique (position-index, texcoord-index,
// normal-index) triples observed in the source OBJ.
type Model struct {
	Vertices  []ms3.Vec
	Texcoords []ms2.Vec
	// Normals are loaded but unused by the core render path: no shading
	// term is computed from them. Retained for collaborators that want them.
	Normals   []ms3.Vec
	Triangles []int32
	DrawCalls []DrawCall
}

// TriangleCount returns the number of triangles in the model.
func (m *Model) TriangleCount() int32 {
	return int32(len(m.Triangles) / 3)
}

// Bounds returns the axis-aligned bounding box enclosing every vertex of
// the model, in model space. Callers use it to frame a camera around a
// model of unknown scale instead of hardcoding a viewing distance.
func (m *Model) Bounds() ms3.Box {
	if len(m.Vertices) == 0 {
		return ms3.Box{}
	}
	box := ms3.Box{Min: m.Vertices[0], Max: m.Vertices[0]}
	for _, v := range m.Vertices[1:] {
		box = box.IncludePoint(v)
	}
	return box
}
