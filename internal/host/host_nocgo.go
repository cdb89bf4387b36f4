//go:build tinygo || !cgo

package host

import (
	"errors"
	"log/slog"

	"github.com/soypat/balder/internal/raster"
)

var errNoCgo = errors.New("host: windowing requires cgo (GLFW/OpenGL bindings)")

// Window is the no-op stand-in used on builds without cgo. NewWindow and
// Present return errNoCgo, ShouldClose reports true, and PollEvents and
// Close do nothing, so callers built without cgo fail loudly at the
// windowing boundary instead of silently doing nothing, while package
// raster itself stays fully usable and testable without a display.
type Window struct{}

func NewWindow(cfg raster.Config, log *slog.Logger) (*Window, error) {
	return nil, errNoCgo
}

func (w *Window) ShouldClose() bool          { return true }
func (w *Window) PollEvents()                {}
func (w *Window) Present(frame []byte) error { return errNoCgo }
func (w *Window) Close()                     {}
