// Package config provides YAML-based configuration loading for tilefit:
// engine timings, background motion, audio and the colour theme.
package config

// TilefitConfig contains all tunable configuration.
type TilefitConfig struct {
	Timing     TimingConfig     `yaml:"timing"`
	Background BackgroundConfig `yaml:"background"`
	Audio      AudioConfig      `yaml:"audio"`
	Theme      ThemeConfig      `yaml:"theme"`
}

// TimingConfig defines animation and transition durations in milliseconds.
type TimingConfig struct {
	Hover       float64 `yaml:"hover"`        // hover highlight after the cursor leaves
	Cancel      float64 `yaml:"cancel"`       // snap-back to the tray
	Commit      float64 `yaml:"commit"`       // committed shape blink
	CommitHold  float64 `yaml:"commit_hold"`  // extra hold before the committed shape is discarded
	Shake       float64 `yaml:"shake"`        // filled-cell shake after a commit
	Win         float64 `yaml:"win"`          // win animation before the next button shows
	Restart     float64 `yaml:"restart"`      // restart transition
	DoubleClick float64 `yaml:"double_click"` // double-click window
	Wiggle      float64 `yaml:"wiggle"`       // half period of the hover wiggle
}

// BackgroundConfig defines the scrolling background.
type BackgroundConfig struct {
	Speed    float64 `yaml:"speed"`    // baseline scroll speed, units per second
	Boost    float64 `yaml:"boost"`    // speed approached during a restart
	Recovery float64 `yaml:"recovery"` // speed units recovered per second
}

// AudioConfig defines audio playback.
type AudioConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Dir         string  `yaml:"dir"`          // directory with cue files; empty uses synthesized cues
	MusicVolume float64 `yaml:"music_volume"` // ambient loop volume, 0..1
	SFXVolume   float64 `yaml:"sfx_volume"`   // effect cue volume, 0..1
	SampleRate  int     `yaml:"sample_rate"`
}

// ThemeConfig defines colours as CSS colour strings (names, hex, rgb()).
type ThemeConfig struct {
	Background string `yaml:"background"`
	Tile       string `yaml:"tile"` // scrolling background tiles
	Cell       string `yaml:"cell"`
	CellAccept string `yaml:"cell_accept"`
	CellReject string `yaml:"cell_reject"`
	CellFilled string `yaml:"cell_filled"`
	Shape      string `yaml:"shape"`
	Cursor     string `yaml:"cursor"`
	Button     string `yaml:"button"`
	ButtonHot  string `yaml:"button_hot"`
	Curtain    string `yaml:"curtain"`
	Text       string `yaml:"text"`
}
