package raster

import (
	"fmt"
	"testing"

	"github.com/soypat/balder/math/ms3"
)

func fakeFiles(files map[string][]byte) ReadFile {
	return func(path string) ([]byte, error) {
		data, ok := files[path]
		if !ok {
			return nil, fmt.Errorf("no such file: %s", path)
		}
		return data, nil
	}
}

func TestLoadModelResolvesDrawCalls(t *testing.T) {
	bmp, err := EncodeBMP([]byte{200, 100, 50}, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	files := map[string][]byte{
		"scene.obj": []byte(`
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
mtllib scene.mtl
usemtl skin
f 1/1 2/2 3/3
`),
		"scene.mtl": []byte("newmtl skin\nmap_Kd tex.bmp\n"),
		"tex.bmp":   bmp,
	}
	loader := NewLoader(fakeFiles(files), nil, nil)
	model, err := loader.LoadModel("scene.obj")
	if err != nil {
		t.Fatalf("LoadModel: %v", err)
	}
	if len(model.DrawCalls) != 1 {
		t.Fatalf("expected 1 draw call, got %d", len(model.DrawCalls))
	}
	dc := model.DrawCalls[0]
	if dc.TriangleStart != 0 || dc.TriangleCount != 1 {
		t.Errorf("draw call span wrong: %+v", dc)
	}
	if dc.Texture == nil || dc.Texture.Width != 1 {
		t.Errorf("expected resolved 1x1 texture, got %+v", dc.Texture)
	}
}

func TestLoadModelUndeclaredMaterial(t *testing.T) {
	files := map[string][]byte{
		"scene.obj": []byte(`
v 0 0 0
v 1 0 0
v 0 1 0
usemtl missing
f 1 2 3
mtllib scene.mtl
`),
		"scene.mtl": []byte("newmtl other\nmap_Kd tex.bmp\n"),
	}
	loader := NewLoader(fakeFiles(files), nil, nil)
	if _, err := loader.LoadModel("scene.obj"); err == nil {
		t.Error("expected error for usemtl referencing undeclared material")
	}
}

func TestLoadModelMissingMapKd(t *testing.T) {
	files := map[string][]byte{
		"scene.obj": []byte(`
v 0 0 0
v 1 0 0
v 0 1 0
mtllib scene.mtl
usemtl bare
f 1 2 3
`),
		"scene.mtl": []byte("newmtl bare\n"),
	}
	loader := NewLoader(fakeFiles(files), nil, nil)
	if _, err := loader.LoadModel("scene.obj"); err == nil {
		t.Error("expected error for material with no map_Kd")
	}
}

func TestLoadModelTrianglesWithoutDrawCall(t *testing.T) {
	files := map[string][]byte{
		"scene.obj": []byte(`
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`),
	}
	loader := NewLoader(fakeFiles(files), nil, nil)
	if _, err := loader.LoadModel("scene.obj"); err == nil {
		t.Error("expected error: triangles present but no usemtl span covers them")
	}
}

func TestCountDegenerateTriangles(t *testing.T) {
	verts := []ms3.Vec{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0}, // collinear with the first two: degenerate
		{X: 0, Y: 1, Z: 0}, // not collinear: a real triangle
	}
	tris := []int32{
		0, 1, 2, // degenerate
		0, 1, 3, // not degenerate
	}
	if got := countDegenerateTriangles(verts, tris); got != 1 {
		t.Errorf("expected 1 degenerate triangle, got %d", got)
	}
}
