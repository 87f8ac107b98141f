package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilefit/internal/registry"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available level packs",
	Long: `Shows the built-in pack and every pack loaded from the packs directory
(--packs, default ~/.tilefit/packs).`,
	Run: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	packs := registry.List()

	if len(packs) == 0 {
		fmt.Println("No packs available.")
		return
	}

	fmt.Println("Available packs:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range packs {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Levels", "Title")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "------", "-----")

	for _, p := range packs {
		fmt.Printf("  %-*s  %-6d  %s\n", maxIDLen, p.ID, p.Levels, p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'tilefit play <id>' to play a pack.")
}
