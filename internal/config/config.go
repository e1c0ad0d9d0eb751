// Package config provides YAML-based tuning for the game: tick pacing,
// board minimums and difficulty presets.
package config

import (
	"time"

	"github.com/termsnake/termsnake/internal/snake"
)

// Config is the full game configuration.
type Config struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
}

// BoardConfig holds the minimum playable field size. The engine enforces its
// own 10x5 floor; these let a config ask for a larger minimum, never smaller.
type BoardConfig struct {
	MinWidth  int `yaml:"min_width"`
	MinHeight int `yaml:"min_height"`
}

// TimingConfig holds the tick pacing constants in milliseconds.
type TimingConfig struct {
	BaseTickMs          int `yaml:"base_tick_ms"`
	ReductionPerLevelMs int `yaml:"reduction_per_level_ms"`
	MinTickMs           int `yaml:"min_tick_ms"`
}

// Tuning converts the timing section to engine tuning.
func (c Config) Tuning() snake.Tuning {
	return snake.Tuning{
		BaseTick:  time.Duration(c.Timing.BaseTickMs) * time.Millisecond,
		Reduction: time.Duration(c.Timing.ReductionPerLevelMs) * time.Millisecond,
		MinTick:   time.Duration(c.Timing.MinTickMs) * time.Millisecond,
	}
}

// Normalize clamps nonsense values back to sane ones so a hand-edited config
// cannot produce a zero or inverted tick range.
func (c *Config) Normalize() {
	def := DefaultConfig()

	if c.Timing.BaseTickMs <= 0 {
		c.Timing.BaseTickMs = def.Timing.BaseTickMs
	}
	if c.Timing.MinTickMs <= 0 {
		c.Timing.MinTickMs = def.Timing.MinTickMs
	}
	if c.Timing.ReductionPerLevelMs < 0 {
		c.Timing.ReductionPerLevelMs = 0
	}
	if c.Timing.MinTickMs > c.Timing.BaseTickMs {
		c.Timing.MinTickMs = c.Timing.BaseTickMs
	}

	if c.Board.MinWidth < snake.MinWidth {
		c.Board.MinWidth = snake.MinWidth
	}
	if c.Board.MinHeight < snake.MinHeight {
		c.Board.MinHeight = snake.MinHeight
	}
}

// DifficultyPreset names a predefined pacing adjustment.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a user-supplied name to a preset. The normal preset is
// accepted and means the defaults as-is.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name), true
	}
	return "", false
}

// ApplyPreset adjusts the config for a difficulty preset. Easy and hard
// scale the base interval; fixed disables the per-level speed-up entirely.
// Unknown presets (including the empty string) leave the config untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.BaseTickMs = 200
	case DifficultyHard:
		cfg.Timing.BaseTickMs = 120
	case DifficultyFixed:
		cfg.Timing.ReductionPerLevelMs = 0
	}
}
