package raster

import (
	"log/slog"

	"github.com/soypat/balder/math/ms3"
)

// Camera is an explicit-basis camera pose: position plus an orthonormal
// forward/up/right triple. [ms3.LookAt] builds the equivalent view matrix
// directly from a target point.
type Camera struct {
	Position, Forward, Up, Right ms3.Vec
}

// ViewMatrix builds this camera's view matrix.
func (c Camera) ViewMatrix() ms3.Mat4 {
	return ms3.CameraMat4(c.Position, c.Forward, c.Up, c.Right)
}

// SceneObject places a Model in the world with a position and rotation.
type SceneObject struct {
	Model    *Model
	Position ms3.Vec
	Rotation ms3.Quat
}

// ModelMatrix builds this object's local-to-world transform.
func (o SceneObject) ModelMatrix() ms3.Mat4 {
	return ms3.TransformMat4(o.Position, o.Rotation)
}

// FrameStats tracks per-frame timing the original project logged every
// frame via QueryPerformanceCounter. It is observability, not a rendered
// feature: nothing in the core render path reads it back.
type FrameStats struct {
	FrameIndex uint64
	// FPS is 1/dt of the most recent RenderFrame call with dt > 0; it
	// stays 0 until such a call.
	FPS float32
}

// Scene drives the per-frame clear -> build matrices -> project/draw ->
// present loop described by the rasterizer's top-level contract. It owns a
// Renderer and the list of objects to draw against a single camera; the
// caller (see cmd/balder-demo) is responsible for pacing calls to RenderFrame
// at the target frame rate and presenting Renderer.Frame to a surface
// afterward.
type Scene struct {
	Renderer *Renderer
	Camera   Camera
	Objects  []SceneObject
	Stats    FrameStats

	logger  *slog.Logger
	scratch []ScreenVertex
}

// NewScene constructs a Scene around an existing Renderer. If log is nil,
// slog.Default() is used.
func NewScene(r *Renderer, cam Camera, log *slog.Logger) *Scene {
	if log == nil {
		log = slog.Default()
	}
	return &Scene{Renderer: r, Camera: cam, logger: log}
}

// Add appends obj to the scene's draw list.
func (s *Scene) Add(obj SceneObject) {
	s.Objects = append(s.Objects, obj)
}

// RenderFrame clears the framebuffer, builds the view-projection matrix
// once, then for each object composes its model matrix, projects its
// vertices to screen space and rasterizes it. dt is the elapsed time since
// the previous frame in seconds, used only to update Stats.
func (s *Scene) RenderFrame(dt float32) {
	s.Renderer.Clear()

	proj := ms3.ProjectionMat4(FovY, float32(Width)/float32(Height), Near, Far)
	view := s.Camera.ViewMatrix()
	viewProj := ms3.MulMat4(proj, view)

	for _, obj := range s.Objects {
		if obj.Model == nil || len(obj.Model.Vertices) == 0 {
			continue
		}
		mvp := ms3.MulMat4(viewProj, obj.ModelMatrix())

		if cap(s.scratch) < len(obj.Model.Vertices) {
			s.scratch = make([]ScreenVertex, len(obj.Model.Vertices))
		}
		screen := s.scratch[:len(obj.Model.Vertices)]
		Project(mvp, obj.Model.Vertices, screen)

		s.Renderer.DrawModel(obj.Model, screen)
	}

	s.Stats.FrameIndex++
	if dt > 0 {
		s.Stats.FPS = 1 / dt
	}
	s.logger.Debug("frame rendered", "index", s.Stats.FrameIndex, "fps", s.Stats.FPS, "objects", len(s.Objects))
}
