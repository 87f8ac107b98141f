package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilefit/internal/games/tilefit/levels"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check level pack files",
	Long: `Parse each level pack file and validate every level in it.

A level is valid when its corner cell is empty, it seeds between one and
six shapes, and the shapes cover exactly the cells the grid shows.

Examples:
  tilefit validate ./packs/hard.yaml
  tilefit validate ~/.tilefit/packs/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	Run:  runValidate,
}

func runValidate(_ *cobra.Command, args []string) {
	if failed := validateFiles(os.Stdout, args); failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d packs failed validation\n", failed, len(args))
		os.Exit(1)
	}
}

// validateFiles reports on each pack file and returns the number of
// failures.
func validateFiles(w io.Writer, paths []string) int {
	failed := 0
	for _, path := range paths {
		pack, err := levels.LoadPackFile(path)
		if err == nil {
			err = pack.Validate()
		}
		if err != nil {
			failed++
			var verr levels.ValidationError
			if errors.As(err, &verr) {
				fmt.Fprintf(w, "FAIL  %s: %v\n", path, err)
			} else {
				fmt.Fprintf(w, "ERROR %s: %v\n", path, err)
			}
			continue
		}
		fmt.Fprintf(w, "OK    %s (%s, %d levels)\n", path, pack.ID(), pack.Len())
	}
	return failed
}
