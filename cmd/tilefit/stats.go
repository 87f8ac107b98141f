package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilefit/internal/registry"
	"github.com/vovakirdan/tilefit/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats [pack]",
	Short: "Show best times and completions",
	Long: `Display per-level best times and clear counts for a pack, or a summary
of every pack played when no pack is given.

Examples:
  tilefit stats
  tilefit stats classic`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func runStats(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening progress database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		err = printAllStats(os.Stdout, store)
	} else {
		err = printPackStats(os.Stdout, store, args[0])
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

// formatDuration renders d with its two largest units.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%d milliseconds", d.Milliseconds())
	}
	return durafmt.Parse(d.Truncate(time.Millisecond)).LimitFirstN(2).String()
}

// packTitle returns the registered title of id, or id itself.
func packTitle(id string) string {
	if p, err := registry.Create(id); err == nil {
		return p.Title()
	}
	return id
}

func printPackStats(w io.Writer, store *storage.Store, packID string) error {
	stats, err := store.LevelStats(packID)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Best Times - %s\n", packTitle(packID))
	fmt.Fprintln(w)

	if len(stats) == 0 {
		fmt.Fprintln(w, "No levels cleared yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'tilefit play %s' to set the first best time!\n", packID)
		return nil
	}

	fmt.Fprintf(w, "  %-5s  %-16s  %-6s  %-26s  %s\n", "Level", "Name", "Clears", "Best", "Last played")
	fmt.Fprintf(w, "  %-5s  %-16s  %-6s  %-26s  %s\n", "-----", "----", "------", "----", "-----------")
	for _, s := range stats {
		fmt.Fprintf(w, "  %-5d  %-16s  %-6s  %-26s  %s\n",
			s.Level+1, s.LevelName, humanize.Comma(int64(s.Count)),
			formatDuration(s.Best), humanize.Time(s.LastPlayed))
	}

	ps, err := store.GetPackStats(packID)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Cleared %s times across %d levels, %s in total.\n",
		humanize.Comma(int64(ps.Completions)), ps.LevelsPlayed, formatDuration(ps.TotalTime))

	if level, ok, err := store.Progress(packID); err == nil && ok {
		fmt.Fprintf(w, "Resume at level %d.\n", level+1)
	}
	return nil
}

func printAllStats(w io.Writer, store *storage.Store) error {
	all, err := store.GetAllPacksStats()
	if err != nil {
		return err
	}

	if len(all) == 0 {
		fmt.Fprintln(w, "No levels cleared yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'tilefit play' to set the first best time!")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(w, "  %-20s  %-6s  %-6s  %-26s  %s\n", "Pack", "Clears", "Levels", "Total time", "Last played")
	fmt.Fprintf(w, "  %-20s  %-6s  %-6s  %-26s  %s\n", "----", "------", "------", "----------", "-----------")
	for _, id := range ids {
		ps := all[id]
		fmt.Fprintf(w, "  %-20s  %-6s  %-6d  %-26s  %s\n",
			packTitle(id), humanize.Comma(int64(ps.Completions)), ps.LevelsPlayed,
			formatDuration(ps.TotalTime), humanize.Time(ps.LastPlayed))
	}
	return nil
}
