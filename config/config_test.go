package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate(): %v", err)
	}
}

func TestDefaultWindow(t *testing.T) {
	w := Default().Window
	if w.Width != 2048 || w.Height != 960 || w.Title != "Solar System" {
		t.Errorf("unexpected default window %+v", w)
	}
}

func TestLoadMissingOptional(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), Filename), true)
	if err != nil {
		t.Fatalf("Load: unexpected error %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load: expected defaults, got %+v", cfg)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), Filename), false); err == nil {
		t.Error("Load: expected error for missing required file")
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), Filename)
	data := `
window:
  width: 800
  height: 1200
camera:
  distance: 25
stars:
  seed: 7
log_level: debug
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path, false)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Window.Width != 800 || cfg.Window.Height != 1200 {
		t.Errorf("window: expected 800x1200, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != Default().Window.Title {
		t.Errorf("title: expected default %q, got %q", Default().Window.Title, cfg.Window.Title)
	}
	if cfg.Camera.Distance != 25 {
		t.Errorf("camera distance: expected 25, got %v", cfg.Camera.Distance)
	}
	if cfg.Camera.DollyStep != 0.1 {
		t.Errorf("dolly step: expected default 0.1, got %v", cfg.Camera.DollyStep)
	}
	if cfg.Stars.Seed != 7 || cfg.Stars.Max != 200 {
		t.Errorf("stars: expected seed 7 max 200, got %+v", cfg.Stars)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level: expected debug, got %q", cfg.LogLevel)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "window: [1, 2"},
		{"zero width", "window:\n  width: -1\n"},
		{"near past far", "camera:\n  near: 200\n"},
		{"dome outside far plane", "skydome:\n  radius: 150\n"},
		{"fov too wide", "camera:\n  fov: 180\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), Filename)
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path, false); err == nil {
				t.Errorf("Load(%q): expected error", tt.data)
			}
		})
	}
}

func TestResourcePath(t *testing.T) {
	sep := string(filepath.Separator)

	got := ResourcePath([]string{"/data/res"}, "/opt/solar/bin/solar")
	if got != "/data/res"+sep {
		t.Errorf("explicit: expected %q, got %q", "/data/res"+sep, got)
	}

	got = ResourcePath([]string{"/data/res/"}, "/opt/solar/bin/solar")
	if got != "/data/res/" {
		t.Errorf("explicit with slash: expected %q, got %q", "/data/res/", got)
	}

	got = ResourcePath(nil, filepath.Join("/opt", "solar", "build", "bin", "solar"))
	want := filepath.Join("/opt", "solar", "resources") + sep
	if got != want {
		t.Errorf("default: expected %q, got %q", want, got)
	}
	if !strings.HasSuffix(got, sep) {
		t.Errorf("default: expected trailing separator in %q", got)
	}
}
