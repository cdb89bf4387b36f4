package raster

import (
	"bytes"
	"testing"
)

func TestBMPRoundTrip(t *testing.T) {
	// w=4 gives rowSize=12, already a multiple of 4 (no padding); w=5 gives
	// rowSize=15, which needs 1 byte of row padding -- the case that
	// exercises stride handling on both the encode and decode side.
	cases := []struct{ w, h uint32 }{
		{4, 3},
		{5, 3},
	}
	for _, c := range cases {
		pixels := make([]byte, c.w*c.h*3)
		for i := range pixels {
			pixels[i] = byte(i * 7)
		}

		encoded, err := EncodeBMP(pixels, c.w, c.h)
		if err != nil {
			t.Fatalf("EncodeBMP(%dx%d): %v", c.w, c.h, err)
		}
		tex, err := DecodeBMP(encoded)
		if err != nil {
			t.Fatalf("DecodeBMP(%dx%d): %v", c.w, c.h, err)
		}
		if tex.Width != c.w || tex.Height != c.h {
			t.Fatalf("dimensions mismatch: got %dx%d want %dx%d", tex.Width, tex.Height, c.w, c.h)
		}
		if !bytes.Equal(tex.Pixels, pixels) {
			t.Errorf("decode(encode(pixels, %d, %d)) != pixels", c.w, c.h)
		}
	}
}

func TestDecodeBMPRejectsBadMagic(t *testing.T) {
	raw := make([]byte, 60)
	if _, err := DecodeBMP(raw); err == nil {
		t.Error("expected error for bad magic, got nil")
	}
}

func TestDecodeBMPRejectsNon24Bit(t *testing.T) {
	raw, err := EncodeBMP(make([]byte, 2*2*3), 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	raw[28] = 32 // bits per pixel
	raw[29] = 0
	if _, err := DecodeBMP(raw); err == nil {
		t.Error("expected error for non-24-bit bmp, got nil")
	}
}

func TestDecodeBMPTooShort(t *testing.T) {
	if _, err := DecodeBMP([]byte{0x42, 0x4D}); err == nil {
		t.Error("expected error for truncated bmp, got nil")
	}
}
