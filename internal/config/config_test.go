package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test graphics defaults
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Graphics.Backend != BackendSDL {
		t.Errorf("expected backend %q, got %q", BackendSDL, cfg.Graphics.Backend)
	}

	// Test mesh defaults
	if cfg.Mesh.Segments != 127 || cfg.Mesh.Sectors != 127 {
		t.Errorf("expected 127x127 mesh, got %dx%d", cfg.Mesh.Segments, cfg.Mesh.Sectors)
	}

	// Test camera defaults
	if cfg.Camera.Distance != 5.0 {
		t.Errorf("expected camera distance 5, got %f", cfg.Camera.Distance)
	}
	if cfg.Camera.Sensitivity != 1.0 {
		t.Errorf("expected sensitivity 1, got %f", cfg.Camera.Sensitivity)
	}

	// Test light defaults
	if cfg.Light.Position != [3]float32{-3, 3, 5} {
		t.Errorf("unexpected light position %v", cfg.Light.Position)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  backend: glfw
  show_fps: true
  clear_color: [0.2, 0.2, 0.2]

mesh:
  segments: 16
  sectors: 32

camera:
  distance: 8
  sensitivity: 0.25

material:
  ka: 0.3
  side_color: [0.1, 0.2, 0.3, 1.0]

light:
  position: [1, 2, 3]

assets:
  search_paths: ["./data"]
  icon: "cylinder.png"

logging:
  level: "debug"
  log_file: "viewer.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 1080 {
		t.Errorf("expected height 1080, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Graphics.Backend != BackendGLFW {
		t.Errorf("expected backend glfw, got %s", cfg.Graphics.Backend)
	}
	if cfg.Graphics.ClearColor != [3]float32{0.2, 0.2, 0.2} {
		t.Errorf("unexpected clear color %v", cfg.Graphics.ClearColor)
	}

	if cfg.Mesh.Segments != 16 || cfg.Mesh.Sectors != 32 {
		t.Errorf("expected 16x32 mesh, got %dx%d", cfg.Mesh.Segments, cfg.Mesh.Sectors)
	}

	if cfg.Camera.Distance != 8 {
		t.Errorf("expected distance 8, got %f", cfg.Camera.Distance)
	}
	if cfg.Camera.Sensitivity != 0.25 {
		t.Errorf("expected sensitivity 0.25, got %f", cfg.Camera.Sensitivity)
	}

	if cfg.Material.Ka != 0.3 {
		t.Errorf("expected ka 0.3, got %f", cfg.Material.Ka)
	}
	// Unset material fields keep defaults
	if cfg.Material.Kd != 1.0 {
		t.Errorf("expected kd to keep default 1.0, got %f", cfg.Material.Kd)
	}
	if cfg.Material.SideColor != [4]float32{0.1, 0.2, 0.3, 1.0} {
		t.Errorf("unexpected side color %v", cfg.Material.SideColor)
	}

	if cfg.Light.Position != [3]float32{1, 2, 3} {
		t.Errorf("unexpected light position %v", cfg.Light.Position)
	}

	if len(cfg.Assets.SearchPaths) != 1 || cfg.Assets.SearchPaths[0] != "./data" {
		t.Errorf("unexpected search paths %v", cfg.Assets.SearchPaths)
	}
	if cfg.Assets.Icon != "cylinder.png" {
		t.Errorf("expected icon cylinder.png, got %s", cfg.Assets.Icon)
	}
	if cfg.Assets.VertexShader != "shaders/cylinder.vert" {
		t.Errorf("expected default vertex shader, got %s", cfg.Assets.VertexShader)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "viewer.log" {
		t.Errorf("expected log file 'viewer.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	// Create temporary config file with invalid YAML
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Try to load - should error
	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }},
		{"negative height", func(c *Config) { c.Graphics.Height = -10 }},
		{"unknown backend", func(c *Config) { c.Graphics.Backend = "vulkan" }},
		{"bad depth range", func(c *Config) { c.Graphics.Far = c.Graphics.Near }},
		{"bad fov", func(c *Config) { c.Graphics.FOVDegrees = 180 }},
		{"zero segments", func(c *Config) { c.Mesh.Segments = 0 }},
		{"negative sectors", func(c *Config) { c.Mesh.Sectors = -1 }},
		{"zero distance", func(c *Config) { c.Camera.Distance = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}

	cfg := Default()
	cfg.Graphics.Backend = "GLFW"
	if err := cfg.Validate(); err != nil {
		t.Errorf("backend should be case-insensitive: %v", err)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Just verify it returns a non-empty path
	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	// Verify path is absolute
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	// Save current directory
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	// Keep the user's real config dir out of the search
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	// Create temp directory and change to it
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	// Create config.yaml in current directory
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	// Should find it now
	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Mesh.Sectors = 64
	cfg.Graphics.Backend = BackendGLFW
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.Mesh.Sectors != 64 {
		t.Errorf("expected sectors 64 after reload, got %d", loaded.Mesh.Sectors)
	}
	if loaded.Graphics.Backend != BackendGLFW {
		t.Errorf("expected backend glfw after reload, got %s", loaded.Graphics.Backend)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Graphics.ShowFPS {
					t.Error("expected show_fps to be enabled with debug flag")
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "backend flag",
			setup: func() {
				*flagBackend = BackendGLFW
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Backend != BackendGLFW {
					t.Errorf("expected backend glfw, got %s", cfg.Graphics.Backend)
				}
			},
			teardown: func() {
				*flagBackend = ""
			},
		},
		{
			name: "windowed flag",
			setup: func() {
				*flagWindowed = true
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() {
				*flagWindowed = false
			},
		},
		{
			name: "fullscreen flag",
			setup: func() {
				*flagFullscreen = true
			},
			verify: func(cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() {
				*flagFullscreen = false
			},
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Graphics.Width)
				}
				if cfg.Graphics.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "tessellation flags",
			setup: func() {
				*flagSegments = 8
				*flagSectors = 24
			},
			verify: func(cfg *Config) {
				if cfg.Mesh.Segments != 8 || cfg.Mesh.Sectors != 24 {
					t.Errorf("expected 8x24 mesh, got %dx%d", cfg.Mesh.Segments, cfg.Mesh.Sectors)
				}
			},
			teardown: func() {
				*flagSegments = 0
				*flagSectors = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			tt.setup()
			defer tt.teardown()

			// Apply flags to default config
			cfg := Default()
			applyFlags(cfg)

			// Verify
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
mesh:
  sectors: 12
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}

	// Height should be from file (900) since no flag override
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}

	if cfg.Mesh.Sectors != 12 {
		t.Errorf("expected sectors 12 from file, got %d", cfg.Mesh.Sectors)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("mesh:\n  sectors: 0\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected validation error for zero sectors")
	}
}
