package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickgame/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [mode]",
	Short: "Print the default configuration",
	Long: `Print the embedded default YAML for a mode.

Save it to ~/.brickgame/configs/brickgame.yaml or ./configs/brickgame.yaml
and edit it, or pass any file with --config.

Examples:
  brickgame config > my-brickgame.yaml
  brickgame play --config my-brickgame.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	gameID := "brickgame"
	if len(args) == 1 {
		gameID = args[0]
	}

	data := config.GetDefaultYAML(gameID)
	if data == nil {
		return fmt.Errorf("no default config for %q", gameID)
	}
	_, err := cmd.OutOrStdout().Write(data)
	return err
}
