package raster

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/soypat/balder/math/ms2"
	"github.com/soypat/balder/math/ms3"
)

// useMTLSpan records a "usemtl" boundary while scanning: the material name
// in effect starting at TriangleStart (inclusive), open until the next
// useMTLSpan or end of file.
type useMTLSpan struct {
	Name          string
	TriangleStart int32
}

// parsedOBJ is the result of parsing the OBJ subset in isolation, before
// usemtl spans are resolved against a material table and texture cache
// (that resolution needs file I/O, so it lives in Loader, see loader.go).
type parsedOBJ struct {
	Vertices  []ms3.Vec
	Texcoords []ms2.Vec
	Normals   []ms3.Vec
	Triangles []int32
	MTLLib    string
	UseMTL    []useMTLSpan
}

// vertexTriple is the (position, texcoord, normal) index triple a face
// vertex resolves to, 1-based exactly as written in the file. It is the
// deduplication key: two face vertices referencing the same triple collapse
// to the same output vertex.
type vertexTriple struct {
	Pos, Tex, Norm int32
}

// parseOBJ parses the OBJ subset described by the loader's external
// interface: v/vt/vn/f/mtllib/usemtl, LF-delimited, 1-based indices,
// exactly three vertices per face. It deduplicates (pos,tex,norm) triples
// into the returned Vertices/Texcoords/Normals arrays as it goes, so
// len(Vertices) == len(Texcoords) == len(Normals) == the number of unique
// triples observed in the face list.
func parseOBJ(data []byte) (*parsedOBJ, error) {
	var rawV []ms3.Vec
	var rawVT []ms2.Vec
	var rawVN []ms3.Vec

	uniqueIndex := make(map[vertexTriple]int32)
	var out parsedOBJ

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "vt"):
			v, err := readFloats2(line[2:])
			if err != nil {
				return nil, fmt.Errorf("raster: obj line %d: %w", lineNo, err)
			}
			rawVT = append(rawVT, v)
		case strings.HasPrefix(line, "vn"):
			v, err := readFloats3(line[2:])
			if err != nil {
				return nil, fmt.Errorf("raster: obj line %d: %w", lineNo, err)
			}
			rawVN = append(rawVN, v)
		case strings.HasPrefix(line, "v"):
			v, err := readFloats3(line[1:])
			if err != nil {
				return nil, fmt.Errorf("raster: obj line %d: %w", lineNo, err)
			}
			rawV = append(rawV, v)
		case strings.HasPrefix(line, "f "):
			fields := strings.Fields(line[1:])
			if len(fields) != 3 {
				return nil, fmt.Errorf("raster: obj line %d: face has %d vertices, only triangles are supported", lineNo, len(fields))
			}
			var tri [3]int32
			for i, field := range fields {
				triple, err := parseFaceVertex(field)
				if err != nil {
					return nil, fmt.Errorf("raster: obj line %d: %w", lineNo, err)
				}
				idx, ok := uniqueIndex[triple]
				if !ok {
					idx = int32(len(out.Vertices))
					uniqueIndex[triple] = idx
					pos, err := indexInto(rawV, triple.Pos)
					if err != nil {
						return nil, fmt.Errorf("raster: obj line %d: position index: %w", lineNo, err)
					}
					tex, err := indexInto(rawVT, triple.Tex)
					if err != nil {
						return nil, fmt.Errorf("raster: obj line %d: texcoord index: %w", lineNo, err)
					}
					norm, err := indexInto(rawVN, triple.Norm)
					if err != nil {
						return nil, fmt.Errorf("raster: obj line %d: normal index: %w", lineNo, err)
					}
					out.Vertices = append(out.Vertices, pos)
					out.Texcoords = append(out.Texcoords, tex)
					out.Normals = append(out.Normals, norm)
				}
				tri[i] = idx
			}
			out.Triangles = append(out.Triangles, tri[0], tri[1], tri[2])
		case strings.HasPrefix(line, "mtllib"):
			out.MTLLib = strings.TrimSpace(line[len("mtllib"):])
		case strings.HasPrefix(line, "usemtl"):
			out.UseMTL = append(out.UseMTL, useMTLSpan{
				Name:          strings.TrimSpace(line[len("usemtl"):]),
				TriangleStart: int32(len(out.Triangles) / 3),
			})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("raster: reading obj: %w", err)
	}
	return &out, nil
}

// parseFaceVertex parses one face-vertex field of the form
// pos[/tex[/norm]]. A field that specifies fewer than three components
// copies its last given index into the missing trailing ones (plain "v"
// becomes pos/pos/pos; "v/t" becomes pos/t/t); an explicitly empty
// component between two slashes ("v//n") is rejected rather than silently
// treated as index 0, since there is no vertex 0 in 1-based OBJ indexing.
func parseFaceVertex(field string) (vertexTriple, error) {
	parts := strings.Split(field, "/")
	pos, err := strconv.ParseInt(parts[0], 10, 32)
	if err != nil {
		return vertexTriple{}, fmt.Errorf("bad face vertex %q: %w", field, err)
	}
	t := vertexTriple{Pos: int32(pos), Tex: int32(pos), Norm: int32(pos)}
	switch len(parts) {
	case 1:
	case 2:
		tex, err := strconv.ParseInt(parts[1], 10, 32)
		if err != nil {
			return vertexTriple{}, fmt.Errorf("bad face vertex %q: %w", field, err)
		}
		t.Tex = int32(tex)
		t.Norm = int32(tex)
	case 3:
		if parts[1] == "" {
			return vertexTriple{}, fmt.Errorf("bad face vertex %q: empty texcoord index not supported", field)
		}
		tex, err := strconv.ParseInt(parts[1], 10, 32)
		if err != nil {
			return vertexTriple{}, fmt.Errorf("bad face vertex %q: %w", field, err)
		}
		if parts[2] == "" {
			return vertexTriple{}, fmt.Errorf("bad face vertex %q: empty normal index not supported", field)
		}
		norm, err := strconv.ParseInt(parts[2], 10, 32)
		if err != nil {
			return vertexTriple{}, fmt.Errorf("bad face vertex %q: %w", field, err)
		}
		t.Tex = int32(tex)
		t.Norm = int32(norm)
	default:
		return vertexTriple{}, fmt.Errorf("bad face vertex %q: too many components", field)
	}
	return t, nil
}

// indexInto resolves a 1-based OBJ index into arr. arr may legitimately be
// empty when the file has no entries of that attribute (e.g. normals
// omitted); the index a face vertex inherited for it is then ignored and the
// zero value is returned.
func indexInto[T any](arr []T, idx int32) (T, error) {
	var zero T
	if len(arr) == 0 {
		return zero, nil
	}
	if idx < 1 || int(idx) > len(arr) {
		return zero, fmt.Errorf("index %d out of range [1,%d]", idx, len(arr))
	}
	return arr[idx-1], nil
}

func readFloats3(s string) (ms3.Vec, error) {
	fields := strings.Fields(s)
	if len(fields) < 3 {
		return ms3.Vec{}, fmt.Errorf("expected 3 floats, got %q", s)
	}
	x, err := strconv.ParseFloat(fields[0], 32)
	if err != nil {
		return ms3.Vec{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		return ms3.Vec{}, err
	}
	z, err := strconv.ParseFloat(fields[2], 32)
	if err != nil {
		return ms3.Vec{}, err
	}
	return ms3.Vec{X: float32(x), Y: float32(y), Z: float32(z)}, nil
}

func readFloats2(s string) (ms2.Vec, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return ms2.Vec{}, fmt.Errorf("expected 2 floats, got %q", s)
	}
	x, err := strconv.ParseFloat(fields[0], 32)
	if err != nil {
		return ms2.Vec{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		return ms2.Vec{}, err
	}
	return ms2.Vec{X: float32(x), Y: float32(y)}, nil
}
