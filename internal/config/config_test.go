package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tilefit/internal/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg TilefitConfig
	if err := yaml.Unmarshal(defaultTilefitYAML, &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}

	if cfg != DefaultTilefitConfig() {
		t.Errorf("embedded defaults differ from DefaultTilefitConfig():\n%+v\n%+v", cfg, DefaultTilefitConfig())
	}
}

func TestLoadTilefitCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := "timing:\n  win: 1000\ntheme:\n  background: red\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTilefit(path)
	if err != nil {
		t.Fatalf("LoadTilefit failed: %v", err)
	}

	if cfg.Timing.Win != 1000 {
		t.Errorf("Timing.Win = %v, expected 1000", cfg.Timing.Win)
	}
	if cfg.Timing.Cancel != 200 {
		t.Errorf("unset Timing.Cancel = %v, expected default 200", cfg.Timing.Cancel)
	}
	if cfg.Theme.Background != "red" {
		t.Errorf("Theme.Background = %q", cfg.Theme.Background)
	}
}

func TestLoadTilefitErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadTilefit(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("timing: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTilefit(bad); err == nil {
		t.Error("malformed custom config should fail")
	}
}

func TestLoadTilefitFallback(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadTilefit("")
	if err != nil {
		t.Fatalf("LoadTilefit failed: %v", err)
	}
	if cfg != DefaultTilefitConfig() {
		t.Errorf("fallback config differs from defaults: %+v", cfg)
	}
}

func TestLoadTilefitLocalDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "tilefit.yaml"), []byte("audio:\n  enabled: false\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTilefit("")
	if err != nil {
		t.Fatalf("LoadTilefit failed: %v", err)
	}
	if cfg.Audio.Enabled {
		t.Error("local config should disable audio")
	}
	if cfg.Audio.MusicVolume != 0.1 {
		t.Errorf("MusicVolume = %v, expected default 0.1", cfg.Audio.MusicVolume)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input    string
		expected core.Color
		wantErr  bool
	}{
		{"#3978a8", "#3978a8", false},
		{"#3978A8", "#3978a8", false},
		{"white", "#ffffff", false},
		{"rgb(255, 0, 0)", "#ff0000", false},
		{"", core.ColorDefault, false},
		{"not-a-colour", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseColor(%q) should fail", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) failed: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseColor(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPalette(t *testing.T) {
	p := DefaultPalette()
	if p.Background != "#3978a8" {
		t.Errorf("Background = %q", p.Background)
	}

	theme := DefaultTilefitConfig().Theme
	theme.Shape = "nope"
	if _, err := theme.Palette(); err == nil {
		t.Error("invalid theme colour should fail")
	}
}
