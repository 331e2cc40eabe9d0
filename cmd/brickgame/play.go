package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickgame/internal/core"
	"github.com/vovakirdan/brickgame/internal/platform/tui"
	"github.com/vovakirdan/brickgame/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: brickgame).

Controls:
  Left/A, Right/D  - Move
  Up/W             - Rotate
  Down/S           - Move down one row
  Space/X          - Hard drop
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Pieces start falling every 1000ms
  normal - Pieces start falling every 800ms
  hard   - Pieces start falling every 500ms
  fixed  - No speed-up with score

Examples:
  brickgame play
  brickgame play brickgame_bag
  brickgame play --difficulty hard
  brickgame play --config ./my-brickgame.yaml --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "brickgame"
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'brickgame list' to see available modes.")
		os.Exit(1)
	}

	logger, closer, err := openSessionLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	if err := playMode(gameID, logger, runtimeConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		closer.Close()
		os.Exit(1)
	}
}

// playMode creates the mode and runs it until the player quits.
func playMode(gameID string, logger *log.Logger, cfg core.RuntimeConfig) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	return tui.Run(game, logger, cfg)
}

// runtimeConfig builds the runtime config from flags and the terminal size.
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

// openSessionLogger opens the log file named by --log-file.
func openSessionLogger() (*log.Logger, io.Closer, error) {
	return tui.NewLogger(expandHome(flagLogFile), flagLogLevel)
}
