package config

import (
	"testing"
	"time"
)

func TestSpawnIntervalDefaultIsExact(t *testing.T) {
	d := NewDifficultyManager(DefaultQuickMathsConfig().Difficulty)

	for _, kills := range []int{0, 10, 1000} {
		got := d.SpawnInterval(2*time.Second, kills, time.Hour)
		if got != 2*time.Second {
			t.Errorf("SpawnInterval(kills=%d) = %v, expected 2s", kills, got)
		}
	}
}

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "kills", MaxKills: 10},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		kills    int
		expected float64
	}{
		{0, 0.0},
		{5, 0.5},
		{10, 1.0},
		{50, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(tc.kills, 0); got != tc.expected {
			t.Errorf("Level(%d) = %v, expected %v", tc.kills, got, tc.expected)
		}
	}

	d.SetInitialLevel(0.5)
	if got := d.Level(0, 0); got != 0.5 {
		t.Errorf("Level(0) with initial 0.5 = %v, expected 0.5", got)
	}
	if got := d.Level(10, 0); got != 1.0 {
		t.Errorf("Level(10) with initial 0.5 = %v, expected 1.0", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxTime: time.Minute},
	})
	if got := d.Level(0, 30*time.Second); got != 0.5 {
		t.Errorf("Level(30s) = %v, expected 0.5", got)
	}
}

func TestSpawnIntervalShrinksWithFloor(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "kills", MaxKills: 10},
		Scaling:     ScalingConfig{SpawnReduction: 0.5, MinSpawnInterval: 1500 * time.Millisecond},
	})

	if got := d.SpawnInterval(2*time.Second, 0, 0); got != 2*time.Second {
		t.Errorf("SpawnInterval(0 kills) = %v, expected 2s", got)
	}
	// Level 1 would give 1s; the floor holds it at 1.5s.
	if got := d.SpawnInterval(2*time.Second, 10, 0); got != 1500*time.Millisecond {
		t.Errorf("SpawnInterval(10 kills) = %v, expected 1.5s", got)
	}
}
