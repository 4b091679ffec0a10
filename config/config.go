package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Filename is looked up in the resource root when no -config flag is given.
const Filename = "config.yml"

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

type Camera struct {
	// FOV is the horizontal-fixed field of view in degrees.
	FOV       float32 `yaml:"fov"`
	Near      float32 `yaml:"near"`
	Far       float32 `yaml:"far"`
	Distance  float32 `yaml:"distance"`   // initial offset along +Z
	DollyStep float32 `yaml:"dolly_step"` // per key press
}

type Stars struct {
	Max    int   `yaml:"max"`    // count is drawn from [0, Max)
	Extent int   `yaml:"extent"` // coordinates are drawn from [0, Extent)
	Seed   int64 `yaml:"seed"`   // 0 = seeded from the clock
}

type Skydome struct {
	Radius float32 `yaml:"radius"`
}

// Config holds every tunable of the demo. Zero-valued fields in a YAML file
// keep their defaults.
type Config struct {
	Window   Window  `yaml:"window"`
	Camera   Camera  `yaml:"camera"`
	Stars    Stars   `yaml:"stars"`
	Skydome  Skydome `yaml:"skydome"`
	LogLevel string  `yaml:"log_level"`
	Debug    bool    `yaml:"debug"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:  2048,
			Height: 960,
			Title:  "Solar System",
			VSync:  false,
		},
		Camera: Camera{
			FOV:       60,
			Near:      0.1,
			Far:       100,
			Distance:  40,
			DollyStep: 0.1,
		},
		Stars: Stars{
			Max:    200,
			Extent: 25,
		},
		Skydome:  Skydome{Radius: 90},
		LogLevel: "info",
	}
}

// Load reads path and overlays it on Default. A missing file is not an
// error when optional is set.
func Load(path string, optional bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("camera fov must be in (0, 180), got %v", c.Camera.FOV)
	}
	if c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far {
		return fmt.Errorf("camera near/far invalid: %v/%v", c.Camera.Near, c.Camera.Far)
	}
	if c.Stars.Max < 0 || c.Stars.Extent <= 0 {
		return fmt.Errorf("stars max/extent invalid: %d/%d", c.Stars.Max, c.Stars.Extent)
	}
	if c.Skydome.Radius <= 0 || c.Skydome.Radius >= c.Camera.Far {
		return fmt.Errorf("skydome radius must be in (0, far), got %v", c.Skydome.Radius)
	}
	return nil
}

// ResourcePath returns the resource root: the first positional argument if
// present, otherwise ../../resources/ relative to the executable's directory.
// The result always ends with a separator.
func ResourcePath(args []string, exe string) string {
	var root string
	if len(args) > 0 && args[0] != "" {
		root = args[0]
	} else {
		root = filepath.Join(filepath.Dir(exe), "..", "..", "resources")
	}
	if root[len(root)-1] != filepath.Separator && root[len(root)-1] != '/' {
		root += string(filepath.Separator)
	}
	return root
}
