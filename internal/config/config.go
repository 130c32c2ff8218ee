package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Interpolation modes.
const (
	ModeSlerp    = "slerp"
	ModeShortest = "shortest"
)

// Output formats.
const (
	FormatWebP = "webp"
	FormatTGA  = "tga"
)

// Config holds output paths, render settings and the rotation endpoints.
// Angles are Euler XYZ in degrees.
type Config struct {
	// Paths
	OutputDir string `yaml:"output_dir"`
	Texture   string `yaml:"texture"`

	// Render settings
	RenderSize   int    `yaml:"render_size"`
	Supersample  int    `yaml:"supersample"`
	Format       string `yaml:"format"`
	Workers      int    `yaml:"workers"`
	ContactSheet bool   `yaml:"contact_sheet"`

	// Animation. Start and End are nil when the file leaves them out.
	Frames int         `yaml:"frames"`
	Mode   string      `yaml:"mode"`
	Start  *[3]float32 `yaml:"start"`
	End    *[3]float32 `yaml:"end"`
}

// Load reads a YAML config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir string
	Frames    int
	Mode      string
	Format    string
	Workers   int
}

// Resolve applies flag overrides, then fills any empty field with a default.
// When neither start nor end is given the original demo is reproduced: a cube
// turning from yaw -270° back to rest. A single missing endpoint is the zero
// rotation, and explicit angles (zeros included) are always kept.
// After Resolve both Start and End are non-nil.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Mode != "" {
		c.Mode = flags.Mode
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.OutputDir == "" {
		cwd, _ := os.Getwd()
		c.OutputDir = filepath.Join(cwd, "frames")
	} else if !filepath.IsAbs(c.OutputDir) {
		if abs, err := filepath.Abs(c.OutputDir); err == nil {
			c.OutputDir = abs
		}
	}

	if c.Start == nil && c.End == nil {
		c.Start = &[3]float32{0, -270, 0}
	}
	if c.Start == nil {
		c.Start = &[3]float32{}
	}
	if c.End == nil {
		c.End = &[3]float32{}
	}

	// Defaults for render settings
	if c.RenderSize <= 0 {
		c.RenderSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Format == "" {
		c.Format = FormatWebP
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Frames <= 0 {
		c.Frames = 24
	}
	if c.Mode == "" {
		c.Mode = ModeSlerp
	}
}

// Validate rejects settings Resolve cannot repair.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeSlerp, ModeShortest:
	default:
		return fmt.Errorf("config: unknown mode %q", c.Mode)
	}
	switch c.Format {
	case FormatWebP, FormatTGA:
	default:
		return fmt.Errorf("config: unknown format %q", c.Format)
	}
	if c.Frames < 2 {
		return fmt.Errorf("config: need at least 2 frames, got %d", c.Frames)
	}
	return nil
}
