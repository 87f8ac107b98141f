package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilefit/internal/audio"
	"github.com/vovakirdan/tilefit/internal/platform/tui"
	"github.com/vovakirdan/tilefit/internal/registry"
	"github.com/vovakirdan/tilefit/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start tilefit with a pack picker menu",
	Long: `Start tilefit in interactive menu mode.

Pick a pack, then a level or resume where you left off.
Leaving a game returns to the level list.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Best times
  Esc/B        - Back
  Q            - Quit

Examples:
  tilefit menu
  tilefit menu --fps 30
  tilefit menu --db ./tilefit.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discarded)")
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable audio")
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, closeLog := fileLogger(flagLogFile)
	defer closeLog()

	store := openStore()
	player := newAudio(cfg, logger)
	rt := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, rt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		rt = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, rt.ScreenW, rt.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		pack, err := registry.Create(menuResult.Item.PackID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		// Level list loop: leaving a game comes back here
		for {
			sel, quit, selErr := tui.RunLevelSelector(pack, store, rt)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				break
			}
			if quit {
				finish(player, store)
				return
			}
			if sel == nil {
				break // Back to pack menu
			}

			// Fresh tray layout for each game
			if flagSeed == 0 {
				rt.Seed = time.Now().UnixNano()
			}

			back, runErr := tui.Run(tui.GameOptions{
				Pack:       pack,
				StartLevel: sel.Level,
				Config:     &cfg,
				Runtime:    rt,
				Store:      store,
				Audio:      player,
				Logger:     logger,
				Menu:       true,
			})
			if runErr != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
				break
			}
			if !back {
				finish(player, store)
				return
			}
		}
	}

	finish(player, store)
}

// finish releases the audio device and the database.
func finish(player *audio.Player, store *storage.Store) {
	player.Close()
	if store != nil {
		store.Close()
	}
}
