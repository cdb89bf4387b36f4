package raster

import math "github.com/chewxy/math32"

// Texture is a 24-bit pixel grid: width, height and a borrowed pixel buffer
// of width*height*3 bytes in row-major order. Channel order matches
// whatever the decoder that produced it used (BMP stores B,G,R); Texture
// itself never interprets the three bytes, it only copies them. The pixel
// buffer must outlive every DrawCall that references the Texture — callers
// get this for free through [TextureCache], which never evicts.
type Texture struct {
	Width, Height uint32
	Pixels        []byte
}

// At returns the three raw channel bytes at pixel (x,y). x and y must be
// in range; callers sampling with arbitrary floats should go through
// [Texture.SampleNearest] instead.
func (t *Texture) At(x, y uint32) [3]byte {
	i := (y*t.Width + x) * 3
	return [3]byte{t.Pixels[i], t.Pixels[i+1], t.Pixels[i+2]}
}

// wrapUV wraps an arbitrary float coordinate so textures tile outside the
// unit square. Non-negative f maps to f - floor(f), in [0,1); negative f
// maps to 1 - (|f| mod 1), which is in (0,1] and equals 1 for negative
// integers (SampleNearest clamps that to the last texel).
func wrapUV(f float32) float32 {
	if f >= 0 {
		return f - math.Floor(f)
	}
	return 1 - math.Mod(math.Abs(f), 1)
}

// SampleNearest wraps (u,v) into [0,1), then nearest-neighbour samples the
// texture, returning the three channel bytes in the texture's native order.
func (t *Texture) SampleNearest(u, v float32) [3]byte {
	u, v = wrapUV(u), wrapUV(v)
	tx := clamp(uint32(math.Floor(u*float32(t.Width))), 0, t.Width-1)
	ty := clamp(uint32(math.Floor(v*float32(t.Height))), 0, t.Height-1)
	return t.At(tx, ty)
}
