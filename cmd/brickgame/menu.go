package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickgame/internal/config"
	"github.com/vovakirdan/brickgame/internal/games/brickgame"
	"github.com/vovakirdan/brickgame/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode and difficulty interactively",
	Long: `Start BrickGame in interactive menu mode.

Use arrow keys or j/k to pick a mode, left/right to change the difficulty
and Enter to play. Quitting a game returns to the menu.

Controls:
  Up/Down/j/k     - Select mode
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Play
  Q/Esc           - Quit

Examples:
  brickgame menu
  brickgame menu --fps 30`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closer, err := openSessionLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	cfg := runtimeConfig()
	preset := config.DifficultyPreset(flagDifficulty)

	for {
		result, err := tui.RunMenu(cfg, preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Update config with any size changes
		cfg = result.Config
		if result.Quit || result.GameID == "" {
			return
		}

		preset = result.Difficulty
		brickgame.SetDifficultyPreset(preset)
		logger.Info("mode selected", "mode", result.GameID, "difficulty", string(preset))

		if err := playMode(result.GameID, logger, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
	}
}
