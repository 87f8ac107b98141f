package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilefit/internal/audio"
	"github.com/vovakirdan/tilefit/internal/config"
	"github.com/vovakirdan/tilefit/internal/games/tilefit/levels"
	"github.com/vovakirdan/tilefit/internal/platform/tui"
	"github.com/vovakirdan/tilefit/internal/registry"
	"github.com/vovakirdan/tilefit/internal/storage"
)

var (
	flagResume  bool
	flagLevel   int
	flagLogFile string
	flagMute    bool
)

var playCmd = &cobra.Command{
	Use:   "play [pack]",
	Short: "Play a level pack",
	Long: `Start playing a level pack. The pack is a registered pack id or a
path to a pack file. Without an argument the classic pack is played.

Controls:
  Mouse      - Drag shapes from the tray onto the grid
  N/Enter    - Next level (after a clear)
  R          - Restart level
  M          - Mute audio
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Examples:
  tilefit play
  tilefit play classic --level 5
  tilefit play --resume
  tilefit play ./packs/hard.yaml
  tilefit play --log-file ./tilefit.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagResume, "resume", false, "Resume from saved progress")
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start at (1-based)")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discarded)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable audio")
}

func runPlay(_ *cobra.Command, args []string) {
	ref := levels.BuiltinID
	if len(args) > 0 {
		ref = args[0]
	}

	pack, err := levels.Resolve(ref)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'tilefit levels' to see available packs.")
		os.Exit(1)
	}
	if flagLevel < 1 || flagLevel > pack.Len() {
		fmt.Fprintf(os.Stderr, "Error: level %d out of range 1-%d\n", flagLevel, pack.Len())
		os.Exit(1)
	}

	cfg := loadConfig()
	logger, closeLog := fileLogger(flagLogFile)
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	start := flagLevel - 1
	if flagResume {
		start = resumeLevel(store, pack, logger)
	}

	player := newAudio(cfg, logger)
	defer player.Close()

	_, runErr := tui.Run(tui.GameOptions{
		Pack:       pack,
		StartLevel: start,
		Config:     &cfg,
		Runtime:    runtimeConfig(),
		Store:      store,
		Audio:      player,
		Logger:     logger,
	})
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// resumeLevel returns the saved level of pack, or 0.
func resumeLevel(store *storage.Store, pack registry.Pack, logger *log.Logger) int {
	if store == nil {
		return 0
	}
	level, ok, err := store.Progress(pack.ID())
	if err != nil {
		logger.Warn("could not read progress", "pack", pack.ID(), "error", err)
		return 0
	}
	if !ok || level < 0 || level >= pack.Len() {
		return 0
	}
	return level
}

// fileLogger logs to path, or discards when path is empty. The alt screen
// owns the terminal, so terminal hosts never log to stderr.
func fileLogger(path string) (*log.Logger, func()) {
	if path == "" {
		return newLogger(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return newLogger(io.Discard), func() {}
	}
	return newLogger(f), func() { f.Close() }
}

// newAudio creates the speaker player. Audio problems never stop the game.
func newAudio(cfg config.TilefitConfig, logger *log.Logger) *audio.Player {
	if flagMute {
		cfg.Audio.Enabled = false
	}
	player := audio.NewPlayer(cfg.Audio, logger)
	if loaded, err := player.Load(cfg.Audio.Dir); err != nil {
		logger.Warn("using synthesized audio", "error", err)
	} else if len(loaded) > 0 {
		logger.Debug("loaded audio cues", "cues", loaded)
	}
	if err := player.Init(); err != nil {
		logger.Warn("audio disabled", "error", err)
	}
	return player
}
