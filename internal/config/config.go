// Package config handles viewer configuration loading and management.
package config

import (
	"fmt"
	"strings"
)

// Window backends.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Mesh     MeshConfig     `yaml:"mesh"`
	Camera   CameraConfig   `yaml:"camera"`
	Material MaterialConfig `yaml:"material"`
	Light    LightConfig    `yaml:"light"`
	Assets   AssetsConfig   `yaml:"assets"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Title      string     `yaml:"title"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	Backend    string     `yaml:"backend"`
	ShowFPS    bool       `yaml:"show_fps"`
	FOVDegrees float32    `yaml:"fov_degrees"`
	Near       float32    `yaml:"near"`
	Far        float32    `yaml:"far"`
	ClearColor [3]float32 `yaml:"clear_color"`
}

// MeshConfig holds cylinder tessellation settings.
type MeshConfig struct {
	Segments int `yaml:"segments"` // Height subdivisions
	Sectors  int `yaml:"sectors"`  // Vertices per ring
}

// CameraConfig holds orbit camera settings.
type CameraConfig struct {
	Distance    float32 `yaml:"distance"`
	Sensitivity float64 `yaml:"sensitivity"` // Degrees per pixel of drag
}

// MaterialConfig holds surface parameters passed to the shader.
type MaterialConfig struct {
	Ka            float32    `yaml:"ka"`
	Kd            float32    `yaml:"kd"`
	Ks            float32    `yaml:"ks"`
	AmbientColor  [3]float32 `yaml:"ambient_color"`
	DiffuseColor  [3]float32 `yaml:"diffuse_color"`
	SpecularColor [3]float32 `yaml:"specular_color"`
	CapColor      [4]float32 `yaml:"cap_color"`
	SideColor     [4]float32 `yaml:"side_color"`
}

// LightConfig holds the point light settings.
type LightConfig struct {
	Position [3]float32 `yaml:"position"`
}

// AssetsConfig holds asset locations.
type AssetsConfig struct {
	SearchPaths    []string `yaml:"search_paths"` // Directories checked before embedded assets
	VertexShader   string   `yaml:"vertex_shader"`
	FragmentShader string   `yaml:"fragment_shader"`
	Icon           string   `yaml:"icon"`
	ScreenshotDir  string   `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Title:      "Cylinder Viewer",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			Backend:    BackendSDL,
			ShowFPS:    false,
			FOVDegrees: 45,
			Near:       1,
			Far:        150,
			ClearColor: [3]float32{0.07, 0.13, 0.17},
		},
		Mesh: MeshConfig{
			Segments: 127,
			Sectors:  127,
		},
		Camera: CameraConfig{
			Distance:    5.0,
			Sensitivity: 1.0,
		},
		Material: MaterialConfig{
			Ka:            0.1,
			Kd:            1.0,
			Ks:            1.0,
			AmbientColor:  [3]float32{1, 1, 1},
			DiffuseColor:  [3]float32{1, 1, 1},
			SpecularColor: [3]float32{1, 1, 1},
			CapColor:      [4]float32{1.0, 0.96, 0.58, 1.0},
			SideColor:     [4]float32{0.92, 0.0, 0.54, 1.0},
		},
		Light: LightConfig{
			Position: [3]float32{-3, 3, 5},
		},
		Assets: AssetsConfig{
			SearchPaths:    nil,
			VertexShader:   "shaders/cylinder.vert",
			FragmentShader: "shaders/cylinder.frag",
			Icon:           "",
			ScreenshotDir:  "screenshots",
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			MaxSizeMB:  50,
			MaxBackups: 3,
		},
	}
}

// Validate checks settings the viewer cannot run without.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height)
	}
	switch strings.ToLower(c.Graphics.Backend) {
	case BackendSDL, BackendGLFW:
	default:
		return fmt.Errorf("graphics: unknown backend %q", c.Graphics.Backend)
	}
	if c.Graphics.Near <= 0 || c.Graphics.Far <= c.Graphics.Near {
		return fmt.Errorf("graphics: invalid depth range [%g, %g]", c.Graphics.Near, c.Graphics.Far)
	}
	if c.Graphics.FOVDegrees <= 0 || c.Graphics.FOVDegrees >= 180 {
		return fmt.Errorf("graphics: fov_degrees must be in (0, 180), got %g", c.Graphics.FOVDegrees)
	}
	if c.Mesh.Segments <= 0 || c.Mesh.Sectors <= 0 {
		return fmt.Errorf("mesh: segments and sectors must be positive, got %d and %d", c.Mesh.Segments, c.Mesh.Sectors)
	}
	if c.Camera.Distance <= 0 {
		return fmt.Errorf("camera: distance must be positive, got %g", c.Camera.Distance)
	}
	return nil
}
