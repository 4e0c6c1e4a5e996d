package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/soldeveloper00/DeadAim/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate play statistics",
	Long: `Display statistics across all recorded runs: total runs, best score,
deepest wave reached, and average score.

Examples:
  deadaim stats
  deadaim stats --db ./scores.db`,
	Run: runStats,
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.GetStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("DeadAim Statistics")
	fmt.Println()

	if stats.Runs == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  Runs:        %d\n", stats.Runs)
	fmt.Printf("  Best score:  %d\n", stats.HighScore)
	fmt.Printf("  Best level:  %d\n", stats.BestLevel)
	fmt.Printf("  Avg score:   %.1f\n", stats.AvgScore)
	fmt.Printf("  Total score: %d\n", stats.TotalScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
