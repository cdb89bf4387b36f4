package raster

import (
	"testing"

	"github.com/soypat/balder/math/ms3"
)

func TestModelBoundsEmpty(t *testing.T) {
	m := &Model{}
	if got := m.Bounds(); got != (ms3.Box{}) {
		t.Errorf("expected zero Box for model with no vertices, got %+v", got)
	}
}

func TestModelBoundsEnclosesVertices(t *testing.T) {
	m := &Model{
		Vertices: []ms3.Vec{
			{X: -1, Y: 0, Z: 2},
			{X: 3, Y: -5, Z: 0},
			{X: 0, Y: 4, Z: -2},
		},
	}
	got := m.Bounds()
	want := ms3.Box{Min: ms3.Vec{X: -1, Y: -5, Z: -2}, Max: ms3.Vec{X: 3, Y: 4, Z: 2}}
	if got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
	for _, v := range m.Vertices {
		if !got.Contains(v) {
			t.Errorf("bounds %+v does not contain vertex %+v", got, v)
		}
	}
}
