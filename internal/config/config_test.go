package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded default %+v differs from hardcoded %+v", cfg, DefaultConfig())
	}
}

func TestTuningConversion(t *testing.T) {
	cfg := DefaultConfig()
	tuning := cfg.Tuning()

	if tuning.BaseTick != 160*time.Millisecond {
		t.Errorf("BaseTick = %v, expected 160ms", tuning.BaseTick)
	}
	if tuning.Reduction != 10*time.Millisecond {
		t.Errorf("Reduction = %v, expected 10ms", tuning.Reduction)
	}
	if tuning.MinTick != 40*time.Millisecond {
		t.Errorf("MinTick = %v, expected 40ms", tuning.MinTick)
	}
}

func TestNormalizeClampsNonsense(t *testing.T) {
	cfg := Config{
		Board:  BoardConfig{MinWidth: 2, MinHeight: 1},
		Timing: TimingConfig{BaseTickMs: -5, ReductionPerLevelMs: -1, MinTickMs: 0},
	}
	cfg.Normalize()

	def := DefaultConfig()
	if cfg.Timing.BaseTickMs != def.Timing.BaseTickMs {
		t.Errorf("BaseTickMs = %d, expected default %d", cfg.Timing.BaseTickMs, def.Timing.BaseTickMs)
	}
	if cfg.Timing.ReductionPerLevelMs != 0 {
		t.Errorf("ReductionPerLevelMs = %d, expected 0", cfg.Timing.ReductionPerLevelMs)
	}
	if cfg.Timing.MinTickMs != def.Timing.MinTickMs {
		t.Errorf("MinTickMs = %d, expected default %d", cfg.Timing.MinTickMs, def.Timing.MinTickMs)
	}
	if cfg.Board.MinWidth != 10 || cfg.Board.MinHeight != 5 {
		t.Errorf("board minimums = %dx%d, expected at least 10x5", cfg.Board.MinWidth, cfg.Board.MinHeight)
	}
}

func TestNormalizeInvertedTickRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timing.MinTickMs = 500 // Above base
	cfg.Normalize()

	if cfg.Timing.MinTickMs != cfg.Timing.BaseTickMs {
		t.Errorf("MinTickMs = %d, expected clamped to base %d", cfg.Timing.MinTickMs, cfg.Timing.BaseTickMs)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset        DifficultyPreset
		wantBase      int
		wantReduction int
	}{
		{DifficultyEasy, 200, 10},
		{DifficultyNormal, 160, 10},
		{DifficultyHard, 120, 10},
		{DifficultyFixed, 160, 0},
		{DifficultyPreset(""), 160, 10},
		{DifficultyPreset("bogus"), 160, 10},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultConfig()
			ApplyPreset(&cfg, tc.preset)

			if cfg.Timing.BaseTickMs != tc.wantBase {
				t.Errorf("BaseTickMs = %d, expected %d", cfg.Timing.BaseTickMs, tc.wantBase)
			}
			if cfg.Timing.ReductionPerLevelMs != tc.wantReduction {
				t.Errorf("ReductionPerLevelMs = %d, expected %d", cfg.Timing.ReductionPerLevelMs, tc.wantReduction)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"easy", "normal", "hard", "fixed"} {
		if p, ok := ParsePreset(name); !ok || string(p) != name {
			t.Errorf("ParsePreset(%q) = %q, %v", name, p, ok)
		}
	}
	if _, ok := ParsePreset("impossible"); ok {
		t.Error("ParsePreset should reject unknown names")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	body := []byte("timing:\n  base_tick_ms: 100\n  reduction_per_level_ms: 5\n  min_tick_ms: 30\n")
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Timing.BaseTickMs != 100 || cfg.Timing.ReductionPerLevelMs != 5 || cfg.Timing.MinTickMs != 30 {
		t.Errorf("loaded timing = %+v", cfg.Timing)
	}
	// Missing board section is normalized up to the engine floor
	if cfg.Board.MinWidth != 10 || cfg.Board.MinHeight != 5 {
		t.Errorf("board minimums = %+v, expected 10x5", cfg.Board)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for an explicit missing config path")
	}
}
