// deadaim is a turn-paced terminal shooter. Waves of enemies wander a grid,
// and the player shoots the nearest one each turn while dodging collisions.
//
// Usage:
//
//	deadaim play             - Play directly
//	deadaim menu             - Start with the main menu
//	deadaim serve            - Start SSH server for remote play
//	deadaim scores           - Show high scores
//	deadaim stats            - Show aggregate play statistics
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.deadaim/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "deadaim",
	Short: "DeadAim - A turn-paced grid shooter for your terminal",
	Long: `DeadAim is a terminal shooter. Enemies wander a grid and close in on
you; every shot hits the nearest one. Chain hits to grow your score
multiplier, but one collision resets it and costs you health.

Available commands:
  play     - Play directly
  menu     - Start with the main menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  stats    - View aggregate play statistics

Examples:
  deadaim play
  deadaim play --difficulty hard
  deadaim menu
  deadaim serve --ssh :2222
  deadaim scores`,
	Run: runMenu, // Default to the menu when no subcommand is given
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.deadaim/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
}
