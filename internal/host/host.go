//go:build !tinygo && cgo

// Package host presents a raster.Renderer's framebuffer in a native window.
// It is the out-of-scope "windowing/host shell" collaborator the rasterizer
// calls into: window creation, the message pump and the "blit framebuffer
// to window surface" operation all live here, never in package raster.
package host

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/soypat/balder/internal/raster"
	"github.com/soypat/balder/v4.6-core/glgl"
)

// blitShader draws a single fullscreen triangle textured with the
// rasterizer's framebuffer; the fragment shader samples it with nearest
// filtering, matching the nearest-neighbour convention of the renderer
// itself, so presentation never introduces filtering the core didn't do.
const blitShader = `
#shader vertex
#version 410
out vec2 uv;
void main() {
	vec2 pos = vec2((gl_VertexID << 1) & 2, gl_VertexID & 2);
	uv = pos;
	gl_Position = vec4(pos * 2.0 - 1.0, 0.0, 1.0);
}

#shader fragment
#version 410
in vec2 uv;
out vec4 outputColor;
uniform sampler2D frameTex;
void main() {
	outputColor = vec4(texture(frameTex, uv).rgb, 1.0);
}
` + "\x00"

// Window is a GLFW+OpenGL backed presentation surface for a raster.Renderer.
type Window struct {
	win       *glfw.Window
	terminate func()
	prog      glgl.Program
	vao       glgl.VertexArray
	texID     uint32
	log       *slog.Logger
}

// NewWindow creates a window of raster.Width x raster.Height pixels titled
// cfg.Title and prepares the GPU resources used to blit a framebuffer to
// it. log defaults to slog.Default() when nil.
func NewWindow(cfg raster.Config, log *slog.Logger) (*Window, error) {
	if log == nil {
		log = slog.Default()
	}
	win, terminate, err := glgl.InitWithCurrentWindow33(glgl.WindowConfig{
		Title:        cfg.Title,
		Width:        raster.Width,
		Height:       raster.Height,
		NotResizable: true,
	})
	if err != nil {
		return nil, fmt.Errorf("host: creating window: %w", err)
	}
	log.Debug("opengl context ready", slog.String("version", glgl.Version()))

	source, err := glgl.ParseCombined(strings.NewReader(blitShader))
	if err != nil {
		terminate()
		return nil, fmt.Errorf("host: parsing blit shader: %w", err)
	}
	prog, err := glgl.CompileProgram(source)
	if err != nil {
		terminate()
		return nil, fmt.Errorf("host: compiling blit shader: %w", err)
	}
	prog.BindFrag("outputColor\x00")

	vao := glgl.NewVAO()

	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB, raster.Width, raster.Height, 0, gl.RGB, gl.UNSIGNED_BYTE, nil)

	return &Window{win: win.Window, terminate: terminate, prog: prog, vao: vao, texID: texID, log: log}, nil
}

// ShouldClose reports whether the host requested the window close (close
// button, or Escape in the default key handling of [Window.PollEvents]).
func (w *Window) ShouldClose() bool { return w.win.ShouldClose() }

// PollEvents dispatches pending window/input events. Escape requests close.
func (w *Window) PollEvents() {
	glfw.PollEvents()
	if w.win.GetKey(glfw.KeyEscape) == glfw.Press {
		w.win.SetShouldClose(true)
	}
}

// Present uploads frame (raster.Width*raster.Height*3 bytes, the BGR-order
// bytes raster.Renderer.Frame holds) to the GPU and draws it as a fullscreen
// textured triangle, then swaps buffers. frame's rows run bottom-up, which
// is also the row order GL uses for texture uploads, so rows are uploaded
// and sampled as they are, without re-ordering.
func (w *Window) Present(frame []byte) error {
	if len(frame) != raster.Width*raster.Height*3 {
		return fmt.Errorf("host: present: got %d bytes, want %d", len(frame), raster.Width*raster.Height*3)
	}
	gl.Viewport(0, 0, raster.Width, raster.Height)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	w.prog.Bind()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, w.texID)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, raster.Width, raster.Height, gl.BGR, gl.UNSIGNED_BYTE, gl.Ptr(frame))

	loc, err := w.prog.UniformLocation("frameTex\x00")
	if err == nil {
		w.prog.SetUniformi(loc, 0)
	}

	w.vao.Bind()
	gl.DrawArrays(gl.TRIANGLES, 0, 3)

	w.win.SwapBuffers()
	return glgl.Err()
}

// Close releases the window and its GPU resources.
func (w *Window) Close() {
	gl.DeleteTextures(1, &w.texID)
	w.prog.Delete()
	w.terminate()
}
