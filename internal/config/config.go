// Package config provides YAML-based game configuration loading and
// difficulty presets for BrickGame.
package config

import (
	"errors"
	"fmt"
)

// BrickConfig contains all configuration for BrickGame.
type BrickConfig struct {
	Gravity GravityConfig `yaml:"gravity"`
	Scoring ScoringConfig `yaml:"scoring"`
	Queue   QueueConfig   `yaml:"queue"`
}

// GravityConfig defines how fast pieces fall.
type GravityConfig struct {
	BaseIntervalMS int `yaml:"base_interval_ms"`
	MinIntervalMS  int `yaml:"min_interval_ms"`
	ScoreDivisor   int `yaml:"score_divisor"` // 0 disables speed-up
	PausedPollMS   int `yaml:"paused_poll_ms"`
}

// ScoringConfig defines points for cleared rows and chains.
type ScoringConfig struct {
	LinePoints  int `yaml:"line_points"`
	Chain3Bonus int `yaml:"chain3_bonus"`
	Chain4Bonus int `yaml:"chain4_bonus"`
	ChainStep   int `yaml:"chain_step"`
}

// QueueConfig selects how upcoming pieces are generated.
type QueueConfig struct {
	Randomizer string `yaml:"randomizer"` // "uniform" or "bag"
}

// Randomizer names accepted in QueueConfig.
const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

// Validate checks that the config describes a playable game.
func (c BrickConfig) Validate() error {
	var errs []error

	if c.Gravity.BaseIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("gravity.base_interval_ms must be positive, got %d", c.Gravity.BaseIntervalMS))
	}
	if c.Gravity.MinIntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("gravity.min_interval_ms must be positive, got %d", c.Gravity.MinIntervalMS))
	}
	if c.Gravity.ScoreDivisor < 0 {
		errs = append(errs, fmt.Errorf("gravity.score_divisor must not be negative, got %d", c.Gravity.ScoreDivisor))
	}
	if c.Gravity.PausedPollMS <= 0 {
		errs = append(errs, fmt.Errorf("gravity.paused_poll_ms must be positive, got %d", c.Gravity.PausedPollMS))
	}

	s := c.Scoring
	if s.LinePoints < 0 || s.Chain3Bonus < 0 || s.Chain4Bonus < 0 || s.ChainStep < 0 {
		errs = append(errs, errors.New("scoring values must not be negative"))
	}

	switch c.Queue.Randomizer {
	case RandomizerUniform, RandomizerBag:
	default:
		errs = append(errs, fmt.Errorf("queue.randomizer must be %q or %q, got %q",
			RandomizerUniform, RandomizerBag, c.Queue.Randomizer))
	}

	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. An empty string means no
// preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// BaseIntervalForPreset returns the starting gravity period for a preset.
// Fixed keeps whatever the config says.
func BaseIntervalForPreset(preset DifficultyPreset, current int) int {
	switch preset {
	case DifficultyEasy:
		return 1000
	case DifficultyNormal:
		return 800
	case DifficultyHard:
		return 500
	default:
		return current
	}
}

// ApplyBrickPreset modifies the config based on a difficulty preset.
func ApplyBrickPreset(cfg *BrickConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Gravity.BaseIntervalMS = BaseIntervalForPreset(preset, cfg.Gravity.BaseIntervalMS)
	if preset == DifficultyFixed {
		cfg.Gravity.ScoreDivisor = 0
	}
}
