// tilefit is a drag-and-place tile puzzle for the terminal.
//
// Usage:
//
//	tilefit play [pack]          - Play a pack (default: classic)
//	tilefit menu                 - Pick packs and levels interactively
//	tilefit levels               - List available level packs
//	tilefit validate <file>...   - Check level pack files
//	tilefit stats [pack]         - Show best times and completions
//	tilefit serve                - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible tray layouts
//	--db <path>         - Set database path (default: ~/.tilefit/tilefit.db)
//	--config <path>     - Use a custom config YAML
//	--packs <dir>       - Load extra level packs (default: ~/.tilefit/packs)
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilefit/internal/config"
	"github.com/vovakirdan/tilefit/internal/core"
	"github.com/vovakirdan/tilefit/internal/games/tilefit/levels"
	"github.com/vovakirdan/tilefit/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagPacksDir string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilefit",
	Short: "tilefit - Drag shapes onto the grid until it is full",
	Long: `tilefit is a tile-fitting puzzle played with the mouse in your terminal.
Drag each shape from the tray onto the grid. A level is cleared when every
shape has found its place.

Available commands:
  play      - Play a pack directly
  menu      - Interactive pack and level picker
  levels    - Show all level packs
  validate  - Check level pack files
  stats     - View best times
  serve     - Start SSH server for remote play

Examples:
  tilefit play
  tilefit play --resume
  tilefit play ./my-pack.yaml
  tilefit menu
  tilefit serve --ssh :2222
  tilefit stats classic`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if _, err := log.ParseLevel(flagLogLevel); err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		registerUserPacks()
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tilefit/tilefit.db", "Path to progress database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPacksDir, "packs", "", "Directory with extra level packs (default ~/.tilefit/packs)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger creates a logger writing to w at the --log-level.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tilefit",
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// registerUserPacks adds the packs of the user pack directory to the
// registry. A missing default directory is not an error.
func registerUserPacks() {
	dir := flagPacksDir
	if dir == "" {
		dir = config.UserPath("packs")
		if dir == "" {
			return
		}
		if _, err := os.Stat(dir); err != nil {
			return
		}
	}

	skipped, err := levels.RegisterDir(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load packs from %s: %v\n", dir, err)
		return
	}
	for _, path := range skipped {
		fmt.Fprintf(os.Stderr, "Warning: skipping %s: pack id already registered\n", path)
	}
}

// loadConfig loads the configuration or exits.
func loadConfig() config.TilefitConfig {
	cfg, err := config.LoadTilefit(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// runtimeConfig returns the runtime config for the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the progress database. Failure is reported and the
// caller continues without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open progress database: %v\n", err)
		return nil
	}
	return store
}
