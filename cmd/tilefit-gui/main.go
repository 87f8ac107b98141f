// tilefit-gui plays tilefit in a window with mouse or touch input.
//
// Usage:
//
//	tilefit-gui [pack]   - Play a pack (default: classic)
//
// Flags:
//
//	--scale <n>         - Window scale of the 160x90 canvas (default: 4)
//	--sheet <path>      - PNG sprite sheet (default: generated)
//	--level <n>         - Level to start at (1-based)
//	--resume            - Resume from saved progress
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible tray layouts
//	--db <path>         - Set database path (default: ~/.tilefit/tilefit.db)
//	--config <path>     - Use a custom config YAML
//	--packs <dir>       - Load extra level packs (default: ~/.tilefit/packs)
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilefit/internal/config"
	"github.com/vovakirdan/tilefit/internal/games/tilefit/levels"
	"github.com/vovakirdan/tilefit/internal/platform/gui"
	"github.com/vovakirdan/tilefit/internal/storage"
)

var (
	flagScale    int
	flagSheet    string
	flagLevel    int
	flagResume   bool
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagPacksDir string
	flagLogLevel string
	flagMute     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilefit-gui [pack]",
	Short: "tilefit - Drag shapes onto the grid until it is full",
	Long: `Play tilefit in a window. The pack is a registered pack id or a path
to a pack file.

Controls:
  Mouse/Touch  - Drag shapes from the tray onto the grid
  N/Enter      - Next level (after a clear)
  R            - Restart level
  M            - Mute audio
  Esc/Q        - Quit

Examples:
  tilefit-gui
  tilefit-gui --resume
  tilefit-gui --scale 6 ./packs/hard.yaml`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	f := rootCmd.Flags()
	f.IntVar(&flagScale, "scale", gui.DefaultScale, "Window scale of the 160x90 canvas")
	f.StringVar(&flagSheet, "sheet", "", "PNG sprite sheet (default: generated)")
	f.IntVar(&flagLevel, "level", 1, "Level to start at (1-based)")
	f.BoolVar(&flagResume, "resume", false, "Resume from saved progress")
	f.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	f.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	f.StringVar(&flagDBPath, "db", "~/.tilefit/tilefit.db", "Path to progress database")
	f.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	f.StringVar(&flagPacksDir, "packs", "", "Directory with extra level packs (default ~/.tilefit/packs)")
	f.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	f.BoolVar(&flagMute, "mute", false, "Disable audio")
}

func run(_ *cobra.Command, args []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tilefit-gui",
		Level:           level,
	})

	packsDir := flagPacksDir
	if packsDir == "" {
		packsDir = config.UserPath("packs")
	}
	if packsDir != "" {
		skipped, err := levels.RegisterDir(packsDir)
		if err != nil {
			logger.Warn("could not load packs", "dir", packsDir, "error", err)
		}
		for _, path := range skipped {
			logger.Warn("skipping pack, id already registered", "file", path)
		}
	}

	ref := levels.BuiltinID
	if len(args) > 0 {
		ref = args[0]
	}
	pack, err := levels.Resolve(ref)
	if err != nil {
		return err
	}
	if flagLevel < 1 || flagLevel > pack.Len() {
		return fmt.Errorf("level %d out of range 1-%d", flagLevel, pack.Len())
	}

	cfg, err := config.LoadTilefit(flagConfig)
	if err != nil {
		return err
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open progress database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	start := flagLevel - 1
	if flagResume && store != nil {
		if saved, ok, err := store.Progress(pack.ID()); err != nil {
			logger.Warn("could not read progress", "pack", pack.ID(), "error", err)
		} else if ok && saved >= 0 && saved < pack.Len() {
			start = saved
		}
	}

	player := gui.NewAudioPlayer(cfg.Audio, logger)
	defer player.Close()

	logger.Info("starting", "pack", pack.ID(), "level", start+1)
	return gui.Run(gui.Options{
		Pack:       pack,
		StartLevel: start,
		Config:     &cfg,
		Seed:       flagSeed,
		TickRate:   flagFPS,
		Scale:      flagScale,
		SheetPath:  flagSheet,
		Store:      store,
		Audio:      player,
		Logger:     logger,
	})
}
