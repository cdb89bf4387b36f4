package raster

import "testing"

func TestParseOBJVertexDedup(t *testing.T) {
	const src = `
v 0 0 0
v 1 0 0
v 0 1 0
v 1 1 0
vt 0 0
vt 1 0
vn 0 0 1
f 1/1/1 2/1/1 3/1/1
f 1/1/1 2/2/1 4/1/1
`
	got, err := parseOBJ([]byte(src))
	if err != nil {
		t.Fatalf("parseOBJ: %v", err)
	}
	// Triples observed: (1,1,1) (2,1,1) (3,1,1) (2,2,1) (4,1,1) -- five
	// unique triples even though only four distinct position indices are
	// referenced, because vertex 2 is referenced with two different
	// texcoord indices across the two faces.
	if len(got.Vertices) != 5 {
		t.Errorf("expected 5 unique vertices, got %d", len(got.Vertices))
	}
	if len(got.Texcoords) != len(got.Vertices) || len(got.Normals) != len(got.Vertices) {
		t.Errorf("attribute arrays must stay parallel to Vertices: got %d texcoords, %d normals, %d vertices",
			len(got.Texcoords), len(got.Normals), len(got.Vertices))
	}
	if len(got.Triangles) != 6 {
		t.Fatalf("expected 2 triangles (6 indices), got %d", len(got.Triangles))
	}
	// The second face's first vertex repeats the first face's triple (1,1,1)
	// and must reuse its index; its second vertex is (2,2,1), which differs
	// from the first face's (2,1,1), so it must get an index of its own.
	if got.Triangles[0] != got.Triangles[3] {
		t.Errorf("both faces share face-vertex (1,1,1), expected same dedup index: got %d and %d",
			got.Triangles[0], got.Triangles[3])
	}
	if got.Triangles[1] == got.Triangles[4] {
		t.Errorf("face-vertices (2,1,1) and (2,2,1) must NOT dedup to the same index")
	}
}

func TestParseFaceVertexInheritance(t *testing.T) {
	tests := []struct {
		field   string
		want    vertexTriple
		wantErr bool
	}{
		{field: "5", want: vertexTriple{Pos: 5, Tex: 5, Norm: 5}},
		{field: "5/7", want: vertexTriple{Pos: 5, Tex: 7, Norm: 7}},
		{field: "5/7/9", want: vertexTriple{Pos: 5, Tex: 7, Norm: 9}},
		{field: "5//9", wantErr: true},
		{field: "5//", wantErr: true},
	}
	for _, tc := range tests {
		got, err := parseFaceVertex(tc.field)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseFaceVertex(%q): expected error, got %v", tc.field, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseFaceVertex(%q): unexpected error: %v", tc.field, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseFaceVertex(%q) = %+v, want %+v", tc.field, got, tc.want)
		}
	}
}

func TestParseOBJRejectsNonTriangleFace(t *testing.T) {
	const src = `
v 0 0 0
v 1 0 0
v 0 1 0
v 1 1 0
f 1 2 3 4
`
	if _, err := parseOBJ([]byte(src)); err == nil {
		t.Error("expected error for quad face, got nil")
	}
}

func TestParseOBJUseMTLSpans(t *testing.T) {
	const src = `
v 0 0 0
v 1 0 0
v 0 1 0
v 1 1 0
usemtl red
f 1 2 3
usemtl blue
f 1 3 4
`
	got, err := parseOBJ([]byte(src))
	if err != nil {
		t.Fatalf("parseOBJ: %v", err)
	}
	if len(got.UseMTL) != 2 {
		t.Fatalf("expected 2 usemtl spans, got %d", len(got.UseMTL))
	}
	if got.UseMTL[0].Name != "red" || got.UseMTL[0].TriangleStart != 0 {
		t.Errorf("first span wrong: %+v", got.UseMTL[0])
	}
	if got.UseMTL[1].Name != "blue" || got.UseMTL[1].TriangleStart != 1 {
		t.Errorf("second span wrong: %+v", got.UseMTL[1])
	}
}
