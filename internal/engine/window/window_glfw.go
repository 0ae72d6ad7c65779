package window

import (
	"fmt"
	"image"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/Faultbox/cylview/internal/engine/input"
	"github.com/Faultbox/cylview/internal/logger"
)

// glfwWindow wraps a GLFW window. GLFW delivers input through callbacks,
// which run inside glfw.PollEvents; they queue events until the next
// PollEvents call on this window hands them out.
type glfwWindow struct {
	config  Config
	window  *glfw.Window
	pending []input.Event
	log     *zap.Logger
}

func newGLFWWindow(cfg Config) (*glfwWindow, error) {
	w := &glfwWindow{
		config:  cfg,
		pending: make([]input.Event, 0, 16),
		log:     logger.Named("window.glfw"),
	}

	w.log.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw.Init failed: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}
	w.window = win

	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w.installCallbacks()

	w.log.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

func (w *glfwWindow) installCallbacks() {
	w.window.SetCursorPosCallback(func(win *glfw.Window, xpos, ypos float64) {
		w.pending = append(w.pending, input.Event{
			Type:     input.EventMouseMove,
			MouseX:   xpos,
			MouseY:   ypos,
			LeftHeld: win.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press,
		})
	})

	w.window.SetMouseButtonCallback(func(win *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		typ := input.EventMouseDown
		if action == glfw.Release {
			typ = input.EventMouseUp
		}
		x, y := win.GetCursorPos()
		w.pending = append(w.pending, input.Event{
			Type:     typ,
			MouseX:   x,
			MouseY:   y,
			Button:   glfwButton(button),
			LeftHeld: win.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press,
		})
	})

	w.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		var typ input.EventType
		switch action {
		case glfw.Press:
			typ = input.EventKeyDown
		case glfw.Release:
			typ = input.EventKeyUp
		default:
			return // ignore repeats
		}
		w.pending = append(w.pending, input.Event{Type: typ, Key: glfwKey(key)})
	})

	// Window coordinates, matching cursor positions
	w.window.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		w.pending = append(w.pending, input.Event{
			Type:   input.EventWindowResize,
			Width:  width,
			Height: height,
		})
	})
}

func glfwKey(key glfw.Key) input.Key {
	switch key {
	case glfw.KeyEscape:
		return input.KeyEscape
	case glfw.KeyR:
		return input.KeyR
	case glfw.KeyF12:
		return input.KeyF12
	default:
		return input.KeyUnknown
	}
}

func glfwButton(b glfw.MouseButton) input.MouseButton {
	switch b {
	case glfw.MouseButtonLeft:
		return input.MouseButtonLeft
	case glfw.MouseButtonMiddle:
		return input.MouseButtonMiddle
	case glfw.MouseButtonRight:
		return input.MouseButtonRight
	default:
		return input.MouseButtonNone
	}
}

// PollEvents processes pending GLFW events and returns the queued ones.
func (w *glfwWindow) PollEvents(dst []input.Event) []input.Event {
	glfw.PollEvents()

	dst = append(dst, w.pending...)
	w.pending = w.pending[:0]

	if w.window.ShouldClose() {
		dst = append(dst, input.Event{Type: input.EventQuit})
	}
	return dst
}

// SwapBuffers swaps the OpenGL buffers.
func (w *glfwWindow) SwapBuffers() {
	w.window.SwapBuffers()
}

// GetSize returns the window size in screen coordinates.
func (w *glfwWindow) GetSize() (int, int) {
	return w.window.GetSize()
}

// GetFramebufferSize returns the drawable size in pixels.
func (w *glfwWindow) GetFramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}

// SetTitle sets the window title.
func (w *glfwWindow) SetTitle(title string) {
	w.window.SetTitle(title)
}

// SetIcon sets the window icon.
func (w *glfwWindow) SetIcon(img image.Image) error {
	w.window.SetIcon([]image.Image{IconImage(img, IconSize)})
	return nil
}

// Backend returns the backend name.
func (w *glfwWindow) Backend() string {
	return BackendGLFW
}

// Close destroys the window and terminates GLFW.
func (w *glfwWindow) Close() {
	w.log.Info("closing window")

	if w.window != nil {
		w.window.Destroy()
	}
	glfw.Terminate()
}
