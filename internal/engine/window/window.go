// Package window handles window and OpenGL context creation.
//
// Two backends are available: SDL2 and GLFW. Both create an OpenGL 4.1 core
// context on the calling thread and translate native events into
// input.Event values.
package window

import (
	"fmt"
	"image"
	"runtime"
	"strings"

	"github.com/Faultbox/cylview/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Backend names.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
	Backend    string
}

// Window is a native window with a current OpenGL context.
type Window interface {
	input.Source

	// SwapBuffers presents the back buffer.
	SwapBuffers()

	// GetSize returns the window size in screen coordinates, the space
	// mouse positions are reported in.
	GetSize() (int, int)

	// GetFramebufferSize returns the drawable size in pixels.
	GetFramebufferSize() (int, int)

	SetTitle(title string)
	SetIcon(img image.Image) error

	// Backend returns the backend name.
	Backend() string

	// Close destroys the window and shuts the backend down.
	Close()
}

// New creates a window using the configured backend.
func New(cfg Config) (Window, error) {
	var (
		w   Window
		err error
	)
	switch strings.ToLower(cfg.Backend) {
	case "", BackendSDL:
		w, err = newSDLWindow(cfg)
	case BackendGLFW:
		w, err = newGLFWWindow(cfg)
	default:
		return nil, fmt.Errorf("unknown window backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}
