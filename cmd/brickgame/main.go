// brickgame is a falling-block puzzle for the terminal.
//
// Usage:
//
//	brickgame play [mode]      - Play a mode (default: brickgame)
//	brickgame menu             - Pick mode and difficulty interactively
//	brickgame list             - List available modes
//	brickgame config           - Print the default config YAML
//	brickgame demo             - Run a headless game and print the result
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log-file <path>     - Session log (default: ~/.brickgame/brickgame.log)
//	--log-level <level>   - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickgame/internal/config"
	// Import the game to register its modes
	"github.com/vovakirdan/brickgame/internal/games/brickgame"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickgame",
	Short: "BrickGame - stack falling bricks in your terminal",
	Long: `BrickGame is a falling-block puzzle on an 8x16 board.

Complete rows vanish; runs of three or more consecutive rows earn a chain
bonus. Pieces fall faster as the score grows.

Available commands:
  play     - Play a mode directly
  menu     - Interactive mode and difficulty picker
  list     - Show all available modes
  config   - Print the default configuration
  demo     - Headless run for quick checks

Examples:
  brickgame play
  brickgame play brickgame_bag --difficulty hard
  brickgame menu
  brickgame demo --pieces 200 --seed 7`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		brickgame.SetConfigPath(flagConfig)
		brickgame.SetDifficultyPreset(preset)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/"+config.HomeDirName+"/brickgame.log", "Session log file (empty disables logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(demoCmd)
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
