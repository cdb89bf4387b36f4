package raster

import (
	"fmt"
	"log/slog"
	"path"

	"github.com/soypat/balder/math/ms3"
)

// degenerateTol is the world-space distance tolerance below which a
// triangle's farthest vertex from its longest side is considered
// collinear, per [ms3.Triangle.IsDegenerate].
const degenerateTol = 1e-6

// Loader builds Models from OBJ+MTL+BMP files on disk. It never reads files
// itself: the byte-oriented "read entire file" operation is supplied by the
// caller as a ReadFile, keeping generic file I/O an external collaborator
// the way the rest of this package treats it.
type Loader struct {
	Read   ReadFile
	Cache  *TextureCache
	Logger *slog.Logger
}

// NewLoader constructs a Loader. If cache is nil a fresh TextureCache backed
// by read is created; if log is nil, slog.Default() is used.
func NewLoader(read ReadFile, cache *TextureCache, log *slog.Logger) *Loader {
	if log == nil {
		log = slog.Default()
	}
	if cache == nil {
		cache = NewTextureCache(read, log)
	}
	return &Loader{Read: read, Cache: cache, Logger: log}
}

// LoadModel reads and parses the OBJ file at objPath (and, if referenced, its
// MTL library and the textures its materials name), returning a fully
// resolved, render-ready Model. Any asset problem — a missing file, a
// malformed OBJ, a usemtl referencing an undeclared material, or a material
// missing a map_Kd — is asset-fatal and returned as a non-nil error rather
// than silently producing a partially-built Model.
func (l *Loader) LoadModel(objPath string) (*Model, error) {
	raw, err := l.Read(objPath)
	if err != nil {
		return nil, fmt.Errorf("raster: reading obj %q: %w", objPath, err)
	}
	parsed, err := parseOBJ(raw)
	if err != nil {
		return nil, fmt.Errorf("raster: parsing obj %q: %w", objPath, err)
	}

	dir := path.Dir(objPath)

	var materials map[string]string
	if parsed.MTLLib != "" {
		mtlPath := path.Join(dir, parsed.MTLLib)
		mtlRaw, err := l.Read(mtlPath)
		if err != nil {
			return nil, fmt.Errorf("raster: reading mtllib %q: %w", mtlPath, err)
		}
		materials, err = parseMTL(mtlRaw)
		if err != nil {
			return nil, fmt.Errorf("raster: parsing mtllib %q: %w", mtlPath, err)
		}
	}

	T := int32(len(parsed.Triangles) / 3)
	drawCalls := make([]DrawCall, 0, len(parsed.UseMTL))
	for i, span := range parsed.UseMTL {
		count := T - span.TriangleStart
		if i+1 < len(parsed.UseMTL) {
			count = parsed.UseMTL[i+1].TriangleStart - span.TriangleStart
		}
		relPath, ok := materials[span.Name]
		if !ok {
			return nil, fmt.Errorf("raster: obj %q: usemtl %q not declared in %q", objPath, span.Name, parsed.MTLLib)
		}
		if relPath == "" {
			return nil, fmt.Errorf("raster: obj %q: material %q has no map_Kd", objPath, span.Name)
		}
		texPath := path.Join(dir, relPath)
		tex, err := l.Cache.Get(texPath)
		if err != nil {
			return nil, fmt.Errorf("raster: obj %q: %w", objPath, err)
		}
		drawCalls = append(drawCalls, DrawCall{
			TriangleStart: span.TriangleStart,
			TriangleCount: count,
			Texture:       tex,
		})
	}
	if T > 0 && len(drawCalls) == 0 {
		return nil, fmt.Errorf("raster: obj %q: has triangles but no usemtl draw call", objPath)
	}

	degenerate := countDegenerateTriangles(parsed.Vertices, parsed.Triangles)
	if degenerate > 0 {
		l.Logger.Warn("model has degenerate triangles", "path", objPath, "count", degenerate)
	}

	l.Logger.Debug("loaded model", "path", objPath, "vertices", len(parsed.Vertices), "triangles", T, "drawcalls", len(drawCalls))

	return &Model{
		Vertices:  parsed.Vertices,
		Texcoords: parsed.Texcoords,
		Normals:   parsed.Normals,
		Triangles: parsed.Triangles,
		DrawCalls: drawCalls,
	}, nil
}

// countDegenerateTriangles reports how many world-space triangles collapse
// to (near-)zero area, which would rasterize as backface-culled or
// near-invisible slivers regardless of winding.
func countDegenerateTriangles(verts []ms3.Vec, tris []int32) int {
	count := 0
	for i := 0; i+2 < len(tris); i += 3 {
		tri := ms3.Triangle{verts[tris[i]], verts[tris[i+1]], verts[tris[i+2]]}
		if tri.IsDegenerate(degenerateTol) {
			count++
		}
	}
	return count
}
