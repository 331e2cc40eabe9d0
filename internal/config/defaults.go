package config

import (
	_ "embed"
)

//go:embed defaults/brickgame.yaml
var defaultBrickYAML []byte

// DefaultBrickConfig returns the default BrickGame configuration.
func DefaultBrickConfig() BrickConfig {
	return BrickConfig{
		Gravity: GravityConfig{
			BaseIntervalMS: 800,
			MinIntervalMS:  1,
			ScoreDivisor:   10,
			PausedPollMS:   5,
		},
		Scoring: ScoringConfig{
			LinePoints:  10,
			Chain3Bonus: 25,
			Chain4Bonus: 50,
			ChainStep:   10,
		},
		Queue: QueueConfig{
			Randomizer: RandomizerUniform,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "brickgame", "brickgame_bag":
		return defaultBrickYAML
	default:
		return nil
	}
}
