package raster

import "testing"

// checkerboard builds a 2x2 texture: (0,0) and (1,1) are white, the other
// two cells are black.
func checkerboard() *Texture {
	white := [3]byte{255, 255, 255}
	black := [3]byte{0, 0, 0}
	px := make([]byte, 2*2*3)
	set := func(x, y int, c [3]byte) {
		i := (y*2 + x) * 3
		px[i], px[i+1], px[i+2] = c[0], c[1], c[2]
	}
	set(0, 0, white)
	set(1, 0, black)
	set(0, 1, black)
	set(1, 1, white)
	return &Texture{Width: 2, Height: 2, Pixels: px}
}

func TestSampleNearestUVWrap(t *testing.T) {
	tex := checkerboard()
	pairs := [][2][2]float32{
		{{0, 0}, {0, 0}},
		{{3.5, 0}, {1.5, 0}},
		{{0, 3.5}, {0, 1.5}},
	}
	for _, p := range pairs {
		a := tex.SampleNearest(p[0][0], p[0][1])
		b := tex.SampleNearest(p[1][0], p[1][1])
		if a != b {
			t.Errorf("uv %v and %v should wrap to the same texel: got %v and %v", p[0], p[1], a, b)
		}
	}
}

func TestWrapUV(t *testing.T) {
	tests := []struct{ in, want float32 }{
		{0, 0},
		{1.5, 0.5},
		{3.5, 0.5},
		{-0.5, 0.5},
	}
	const tol = 1e-5
	for _, tc := range tests {
		got := wrapUV(tc.in)
		if got < tc.want-tol || got > tc.want+tol {
			t.Errorf("wrapUV(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestTextureCacheIdempotent(t *testing.T) {
	reads := 0
	raw, err := EncodeBMP(make([]byte, 2*2*3), 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	read := func(path string) ([]byte, error) {
		reads++
		return raw, nil
	}
	cache := NewTextureCache(read, nil)

	t1, err := cache.Get("a.bmp")
	if err != nil {
		t.Fatal(err)
	}
	t2, err := cache.Get("a.bmp")
	if err != nil {
		t.Fatal(err)
	}
	if t1 != t2 {
		t.Error("expected same *Texture reference on repeat Get")
	}
	if reads != 1 {
		t.Errorf("expected exactly 1 file read, got %d", reads)
	}
}
