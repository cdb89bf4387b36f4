// Package raster implements a CPU-only triangle rasterizer: projection,
// scanline fill with depth test and nearest-neighbour texturing, and the
// OBJ/MTL/BMP asset pipeline that feeds it. It renders into a fixed-size
// 24-bit framebuffer; presenting that framebuffer to a window is left to
// package host.
package raster

import math "github.com/chewxy/math32"

// Fixed dimensions the color buffer, depth buffer and per-scanline scratch
// are sized around. These are compile-time invariants, not configuration:
// changing them requires re-sizing every process-wide buffer in [Renderer].
const (
	Width  = 640
	Height = 480

	// FrameRate is the target frames per second the scene driver paces to.
	FrameRate = 60

	// FovY is the vertical field of view used to build the projection matrix.
	FovY = 60 * math.Pi / 180
	Near = 0.1
	Far  = 1000
)

// FrameDuration is the wall-clock budget of a single frame at [FrameRate].
const FrameDuration = float32(1) / FrameRate

// Config holds the per-run parameters that legitimately vary between
// invocations, as opposed to the hard sizing constants above.
type Config struct {
	// Title is shown in the host window's title bar.
	Title string
	// ClearColor is the RGB (native channel order, see [Texture]) the color
	// buffer is reset to at the start of every frame. Zero value is black.
	ClearColor [3]byte
}

// DefaultConfig returns the Config a demo or test harness should start from.
func DefaultConfig() Config {
	return Config{Title: "balder"}
}
