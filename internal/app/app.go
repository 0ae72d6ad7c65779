// Package app implements the viewer's main loop.
package app

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/cylview/internal/assets"
	"github.com/Faultbox/cylview/internal/config"
	"github.com/Faultbox/cylview/internal/engine/camera"
	"github.com/Faultbox/cylview/internal/engine/debug"
	"github.com/Faultbox/cylview/internal/engine/input"
	"github.com/Faultbox/cylview/internal/engine/renderer"
	"github.com/Faultbox/cylview/internal/engine/window"
	"github.com/Faultbox/cylview/internal/logger"
	"github.com/Faultbox/cylview/pkg/mesh"
)

// Scene is the rendering side of the viewer.
type Scene interface {
	Resize(width, height int)
	SetView(view mgl32.Mat4, eye mgl32.Vec3)
	Begin()
	DrawMesh()
	End() error
	ReadPixels() ([]byte, int, int)
	Close()
}

// App owns the window, the scene and the camera state shared between
// input handling and rendering.
type App struct {
	cfg     *config.Config
	running bool
	log     *zap.Logger

	window window.Window
	scene  Scene
	input  *input.Input

	cylinder   *mesh.Cylinder
	camera     *camera.OrbitCamera
	controller *camera.OrbitController

	screenshots       *debug.ScreenshotCapture
	screenshotPending bool

	// Window size in cursor coordinates
	width, height int
}

// New builds the mesh, opens the window and uploads everything to the GPU.
func New(cfg *config.Config) (*App, error) {
	log := logger.Named("app")

	cyl, err := mesh.NewCylinder(cfg.Mesh.Segments, cfg.Mesh.Sectors)
	if err != nil {
		return nil, fmt.Errorf("building cylinder: %w", err)
	}
	log.Info("cylinder generated",
		zap.Int("segments", cyl.Segments),
		zap.Int("sectors", cyl.Sectors),
		zap.Int("vertices", cyl.VertexCount()),
	)

	store := assets.NewManager()
	for _, dir := range cfg.Assets.SearchPaths {
		if err := store.AddDir(dir); err != nil {
			return nil, err
		}
	}
	defer store.Close()

	vertexSrc, err := store.LoadString(cfg.Assets.VertexShader)
	if err != nil {
		return nil, fmt.Errorf("loading vertex shader: %w", err)
	}
	fragmentSrc, err := store.LoadString(cfg.Assets.FragmentShader)
	if err != nil {
		return nil, fmt.Errorf("loading fragment shader: %w", err)
	}

	// Create window (this also creates OpenGL context)
	win, err := window.New(windowConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	if cfg.Assets.Icon != "" {
		if err := loadIcon(store, win, cfg.Assets.Icon); err != nil {
			log.Warn("window icon not set", zap.String("icon", cfg.Assets.Icon), zap.Error(err))
		}
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	fbWidth, fbHeight := win.GetFramebufferSize()
	r, err := renderer.New(rendererConfig(cfg, fbWidth, fbHeight), vertexSrc, fragmentSrc)
	if err != nil {
		win.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	mat := materialFromConfig(cfg.Material)
	if err := r.UploadMesh(cyl, mat); err != nil {
		r.Close()
		win.Close()
		return nil, fmt.Errorf("failed to upload mesh: %w", err)
	}
	r.SetMaterial(mat)
	r.SetLight(mgl32.Vec3(cfg.Light.Position))

	a := newApp(cfg, win, r, cyl)
	log.Info("viewer initialized", zap.String("backend", win.Backend()))
	return a, nil
}

// newApp wires already created collaborators together.
func newApp(cfg *config.Config, win window.Window, scene Scene, cyl *mesh.Cylinder) *App {
	cam := camera.NewOrbitCamera(cfg.Camera.Distance, cfg.Camera.Sensitivity)

	a := &App{
		cfg:         cfg,
		log:         logger.Named("app"),
		window:      win,
		scene:       scene,
		input:       input.New(),
		cylinder:    cyl,
		camera:      cam,
		controller:  camera.NewOrbitController(cam),
		screenshots: debug.NewScreenshotCapture(cfg.Assets.ScreenshotDir, "cylinder"),
	}
	a.width, a.height = win.GetSize()
	a.pushView()
	return a
}

// Run starts the main loop. It returns when the window is closed.
func (a *App) Run() error {
	a.running = true

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting main loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if a.input.Update(a.window) {
			a.running = false
			break
		}
		a.handleEvents(a.input.Events())
		if !a.running {
			break
		}

		// 2. Render
		a.scene.Begin()
		a.scene.DrawMesh()
		if err := a.scene.End(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}

		if a.screenshotPending {
			a.screenshotPending = false
			a.captureScreenshot()
		}

		// 3. Present
		a.window.SwapBuffers()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frameCount), zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)))
			if a.cfg.Graphics.ShowFPS {
				a.window.SetTitle(fmt.Sprintf("%s - %d FPS", a.cfg.Graphics.Title, frameCount))
			}
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up viewer resources.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.scene != nil {
		a.scene.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

// handleEvents applies one frame's events to the viewer state.
func (a *App) handleEvents(events []input.Event) {
	for _, event := range events {
		switch event.Type {
		case input.EventWindowResize:
			a.width, a.height = event.Width, event.Height
			a.scene.Resize(a.window.GetFramebufferSize())

		case input.EventMouseMove:
			if a.controller.HandleMouseMove(event.MouseX, event.MouseY, event.LeftHeld, a.width, a.height) {
				a.pushView()
			}

		case input.EventKeyDown:
			switch event.Key {
			case input.KeyEscape:
				a.running = false
			case input.KeyR:
				a.camera.Reset()
				a.pushView()
			case input.KeyF12:
				a.screenshotPending = true
			}
		}
	}
}

// pushView uploads the current camera to the scene.
func (a *App) pushView() {
	a.scene.SetView(a.camera.ViewMatrix(), a.camera.Position())
}

func (a *App) captureScreenshot() {
	pixels, w, h := a.scene.ReadPixels()
	path, err := a.screenshots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

func loadIcon(store *assets.Manager, win window.Window, path string) error {
	data, err := store.Load(path)
	if err != nil {
		return err
	}
	img, err := window.DecodeIcon(data)
	if err != nil {
		return err
	}
	return win.SetIcon(img)
}

func windowConfig(cfg *config.Config) window.Config {
	return window.Config{
		Title:      cfg.Graphics.Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		Backend:    cfg.Graphics.Backend,
	}
}

func rendererConfig(cfg *config.Config, width, height int) renderer.Config {
	return renderer.Config{
		Width:      width,
		Height:     height,
		FOVDegrees: cfg.Graphics.FOVDegrees,
		Near:       cfg.Graphics.Near,
		Far:        cfg.Graphics.Far,
		ClearColor: cfg.Graphics.ClearColor,
	}
}

func materialFromConfig(m config.MaterialConfig) renderer.Material {
	return renderer.Material{
		Ka:            m.Ka,
		Kd:            m.Kd,
		Ks:            m.Ks,
		AmbientColor:  mgl32.Vec3(m.AmbientColor),
		DiffuseColor:  mgl32.Vec3(m.DiffuseColor),
		SpecularColor: mgl32.Vec3(m.SpecularColor),
		CapColor:      mgl32.Vec4(m.CapColor),
		SideColor:     mgl32.Vec4(m.SideColor),
	}
}
