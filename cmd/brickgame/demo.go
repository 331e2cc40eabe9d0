package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickgame/internal/config"
	"github.com/vovakirdan/brickgame/internal/core"
	"github.com/vovakirdan/brickgame/internal/games/brickgame"
)

var flagPieces int

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a headless game and print the result",
	Long: `Play a game without a terminal UI. Every piece gets a random rotation
and column, then is hard-dropped. The final board and score are printed.

The same --seed always produces the same game.

Examples:
  brickgame demo
  brickgame demo --pieces 500 --seed 42
  brickgame demo --difficulty fixed --config ./my-brickgame.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		stderr := log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "brickgame",
		})

		cfg, err := config.LoadBrick(flagConfig)
		if err != nil {
			return err
		}
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplyBrickPreset(&cfg, preset)

		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
			stderr.Info("using random seed", "seed", seed)
		}

		return runDemo(cmd.OutOrStdout(), cfg, seed, flagPieces)
	},
}

func init() {
	demoCmd.Flags().IntVar(&flagPieces, "pieces", 100, "Maximum number of pieces to drop")
}

// demoResult summarizes a headless run.
type demoResult struct {
	Pieces int
	Lines  int
	Score  uint64
	Over   bool
	Board  string
}

// playDemo drops up to pieces pieces with random rotations and columns.
func playDemo(cfg config.BrickConfig, seed int64, pieces int) demoResult {
	game := brickgame.NewWithConfig(cfg)
	game.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	rng := rand.New(rand.NewSource(seed))

	engine := game.Engine()
	dropped := 0
	for dropped < pieces && !engine.GameOver() {
		in := core.NewInputFrame()
		for range rng.Intn(4) {
			in.Set(core.ActionRotate)
		}
		shift := rng.Intn(brickgame.Cols) - brickgame.Cols/2
		for ; shift < 0; shift++ {
			in.Set(core.ActionLeft)
		}
		for ; shift > 0; shift-- {
			in.Set(core.ActionRight)
		}
		in.Set(core.ActionHardDrop)

		dropped += game.Step(in).Locked
	}

	var board strings.Builder
	for y := range brickgame.Rows {
		board.WriteString(engine.RowBits(y).String())
		board.WriteByte('\n')
	}

	return demoResult{
		Pieces: dropped,
		Lines:  engine.Lines(),
		Score:  engine.Score(),
		Over:   engine.GameOver(),
		Board:  board.String(),
	}
}

// runDemo plays a headless game and writes the result to w.
func runDemo(w io.Writer, cfg config.BrickConfig, seed int64, pieces int) error {
	if pieces <= 0 {
		return fmt.Errorf("--pieces must be positive, got %d", pieces)
	}

	res := playDemo(cfg, seed, pieces)

	status := "stopped"
	if res.Over {
		status = "game over"
	}
	_, err := fmt.Fprintf(w, "%s\nseed: %d\npieces: %d\nlines: %d\nscore: %d\nstatus: %s\n",
		res.Board, seed, res.Pieces, res.Lines, res.Score, status)
	return err
}
