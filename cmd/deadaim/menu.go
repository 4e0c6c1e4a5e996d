package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/soldeveloper00/DeadAim/internal/core"
	"github.com/soldeveloper00/DeadAim/internal/game"
	"github.com/soldeveloper00/DeadAim/internal/platform/tui"
	"github.com/soldeveloper00/DeadAim/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start DeadAim with the main menu",
	Long: `Start DeadAim in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a round ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  deadaim menu
  deadaim menu --fps 30
  deadaim menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Choice == tui.MenuChoiceQuit {
			break
		}

		if menuResult.Choice == tui.MenuChoiceScores {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		// Fresh seed for each round
		cfg.Seed = time.Now().UnixNano()

		game.SetConfigPath(flagConfig)
		game.SetDifficultyPreset(flagDifficulty)

		if err := tui.Run(game.New(), store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
