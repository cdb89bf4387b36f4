// Command balder-demo loads an OBJ model and spins it in front of a fixed
// camera, rendering it with the CPU rasterizer and presenting the result in
// a native window.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"runtime"
	"time"

	math "github.com/chewxy/math32"

	"github.com/soypat/balder/internal/host"
	"github.com/soypat/balder/internal/raster"
	"github.com/soypat/balder/math/ms3"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	objPath := flag.String("model", "", "path to .obj file to render")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *objPath == "" {
		logger.Error("missing -model flag")
		os.Exit(2)
	}

	loader := raster.NewLoader(os.ReadFile, nil, logger)
	model, err := loader.LoadModel(*objPath)
	if err != nil {
		log.Fatalf("loading model: %v", err)
	}

	cfg := raster.DefaultConfig()
	renderer := raster.NewRenderer(cfg)
	// Back the camera off far enough to frame the whole model regardless of
	// its scale: distance scales with the model's bounding diagonal instead
	// of a fixed, model-specific constant.
	bounds := model.Bounds()
	dist := bounds.Diagonal()
	if dist == 0 {
		dist = 5
	}
	cam := raster.Camera{
		Position: ms3.Vec{Z: -dist},
		Forward:  ms3.Vec{Z: 1},
		Up:       ms3.Vec{Y: 1},
		Right:    ms3.Vec{X: 1},
	}
	scene := raster.NewScene(renderer, cam, logger)
	scene.Add(raster.SceneObject{Model: model})

	win, err := host.NewWindow(cfg, logger)
	if err != nil {
		log.Fatalf("creating window: %v", err)
	}
	defer win.Close()

	const frameDuration = time.Second / raster.FrameRate
	lastFrame := time.Now()
	var spin float32
	for !win.ShouldClose() {
		now := time.Now()
		if now.Sub(lastFrame) < frameDuration {
			win.PollEvents()
			continue
		}
		dt := now.Sub(lastFrame).Seconds()
		lastFrame = lastFrame.Add(frameDuration)

		spin += math.Pi / 2 * float32(dt)
		scene.Objects[0].Rotation = ms3.RotationQuat(spin, ms3.Vec{Y: 1})

		scene.RenderFrame(float32(dt))
		if err := win.Present(renderer.Frame); err != nil {
			logger.Warn("present failed", "error", err)
		}
		win.PollEvents()
	}
}
