package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Window.Width != 1000 || cfg.Window.Height != 700 {
		t.Errorf("window = %dx%d, want 1000x700", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Sim.ShowHUD {
		t.Error("show_hud = false, want true")
	}
	if cfg.Sim.Seed != 1 {
		t.Errorf("seed = %d, want 1", cfg.Sim.Seed)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Errorf("logging = %+v, want info/console", cfg.Logging)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gale.toml")
	data := `
[window]
width = 1280
height = 720

[sim]
seed = 42
night = true
show_fps = true

[logging]
format = "json"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Errorf("window = %dx%d, want 1280x720", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != Default().Window.Title {
		t.Errorf("title = %q, want default preserved", cfg.Window.Title)
	}
	if cfg.Sim.Seed != 42 || !cfg.Sim.Night || !cfg.Sim.ShowFPS {
		t.Errorf("sim = %+v, want overrides applied", cfg.Sim)
	}
	if !cfg.Sim.ShowHUD {
		t.Error("show_hud should keep its default when unset")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("format = %q, want json", cfg.Logging.Format)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("level = %q, want default info", cfg.Logging.Level)
	}
}

func TestLoadBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[window\nwidth="), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load should fail on malformed TOML")
	}
}
