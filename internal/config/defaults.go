package config

import (
	_ "embed"
)

//go:embed defaults/tilefit.yaml
var defaultTilefitYAML []byte

// DefaultTilefitConfig returns the default configuration.
func DefaultTilefitConfig() TilefitConfig {
	return TilefitConfig{
		Timing: TimingConfig{
			Hover:       120,
			Cancel:      200,
			Commit:      200,
			CommitHold:  100,
			Shake:       200,
			Win:         2000,
			Restart:     200,
			DoubleClick: 120,
			Wiggle:      300,
		},
		Background: BackgroundConfig{
			Speed:    1,
			Boost:    200,
			Recovery: 200,
		},
		Audio: AudioConfig{
			Enabled:     true,
			MusicVolume: 0.1,
			SFXVolume:   0.5,
			SampleRate:  44100,
		},
		Theme: ThemeConfig{
			Background: "#3978a8",
			Tile:       "#4a8cbc",
			Cell:       "#e8e0c8",
			CellAccept: "#7ac74f",
			CellReject: "#d95763",
			CellFilled: "#8f563b",
			Shape:      "#df7126",
			Cursor:     "white",
			Button:     "#fbf236",
			ButtonHot:  "#ffffff",
			Curtain:    "#222034",
			Text:       "#ffffff",
		},
	}
}
