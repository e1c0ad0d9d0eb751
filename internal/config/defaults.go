package config

import (
	_ "embed"
)

//go:embed defaults/termsnake.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration, used as the
// last fallback when even the embedded YAML fails to parse.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			MinWidth:  10,
			MinHeight: 5,
		},
		Timing: TimingConfig{
			BaseTickMs:          160,
			ReductionPerLevelMs: 10,
			MinTickMs:           40,
		},
	}
}
