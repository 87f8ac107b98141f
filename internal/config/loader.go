package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	css "github.com/mazznoer/csscolorparser"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tilefit/internal/core"
)

// LoadTilefit loads the tilefit configuration.
// Search order: customPath -> ~/.tilefit/configs/tilefit.yaml -> ./configs/tilefit.yaml -> embedded default
// Values missing from a file keep their defaults.
func LoadTilefit(customPath string) (TilefitConfig, error) {
	cfg := DefaultTilefitConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserPath("configs", "tilefit.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultTilefitConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/tilefit.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultTilefitConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTilefitYAML, &cfg); err != nil {
		return DefaultTilefitConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// UserPath returns a path under ~/.tilefit, or empty if home is unavailable.
func UserPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, ".tilefit"}, elem...)...)
}

// Palette is a resolved theme.
type Palette struct {
	Background core.Color
	Tile       core.Color
	Cell       core.Color
	CellAccept core.Color
	CellReject core.Color
	CellFilled core.Color
	Shape      core.Color
	Cursor     core.Color
	Button     core.Color
	ButtonHot  core.Color
	Curtain    core.Color
	Text       core.Color
}

// Palette parses every theme colour.
func (t ThemeConfig) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		src  string
		dst  *core.Color
	}{
		{"background", t.Background, &p.Background},
		{"tile", t.Tile, &p.Tile},
		{"cell", t.Cell, &p.Cell},
		{"cell_accept", t.CellAccept, &p.CellAccept},
		{"cell_reject", t.CellReject, &p.CellReject},
		{"cell_filled", t.CellFilled, &p.CellFilled},
		{"shape", t.Shape, &p.Shape},
		{"cursor", t.Cursor, &p.Cursor},
		{"button", t.Button, &p.Button},
		{"button_hot", t.ButtonHot, &p.ButtonHot},
		{"curtain", t.Curtain, &p.Curtain},
		{"text", t.Text, &p.Text},
	}

	for _, f := range fields {
		c, err := ParseColor(f.src)
		if err != nil {
			return p, fmt.Errorf("theme %s: %w", f.name, err)
		}
		*f.dst = c
	}
	return p, nil
}

// DefaultPalette returns the palette of the default theme.
func DefaultPalette() Palette {
	p, err := DefaultTilefitConfig().Theme.Palette()
	if err != nil {
		panic(fmt.Sprintf("config: default theme invalid: %v", err))
	}
	return p
}

// ParseColor parses a CSS colour string into a "#rrggbb" colour.
// The empty string is the terminal default colour.
func ParseColor(s string) (core.Color, error) {
	if s == "" {
		return core.ColorDefault, nil
	}
	c, err := css.Parse(s)
	if err != nil {
		return core.ColorDefault, err
	}
	return core.Color(fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))), nil
}

func to8(v float64) uint8 {
	return uint8(math.Round(core.Clamp(v, 0, 1) * 255))
}
