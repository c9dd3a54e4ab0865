package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all configurable render and viewer settings.
type Config struct {
	// Viewer
	WindowWidth  int `json:"window_width"`
	WindowHeight int `json:"window_height"`

	// Render settings
	RenderSize  int `json:"render_size"`
	Supersample int `json:"supersample"`
	WebPQuality int `json:"webp_quality"`
	Workers     int `json:"workers"`

	// Bone geometry
	BoneRadius float64 `json:"bone_radius"`
	Segments   int     `json:"segments"`

	// Optional resources
	TexturePath string `json:"texture_path"`
	PresetFile  string `json:"preset_file"`
	OutputDir   string `json:"output_dir"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir  string
	PresetFile string
	Quality    int
	Workers    int
	Size       int
}

// Resolve fills in any empty fields with defaults. CLI flags take priority
// when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.PresetFile != "" {
		c.PresetFile = flags.PresetFile
	}
	if flags.Quality > 0 {
		c.WebPQuality = flags.Quality
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}

	if c.WindowWidth <= 0 {
		c.WindowWidth = 960
	}
	if c.WindowHeight <= 0 {
		c.WindowHeight = 640
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 512
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.WebPQuality <= 0 {
		c.WebPQuality = 90
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.BoneRadius <= 0 {
		c.BoneRadius = 14
	}
	if c.Segments <= 0 {
		c.Segments = 32
	}
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
}
