package config

import (
	"math"
	"time"
)

// DifficultyManager calculates dynamic level parameters based on kills/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none" && d.cfg.Progression.Type != ""
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(kills int, elapsed time.Duration) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "kills":
		maxAt := float64(d.cfg.Progression.MaxKills)
		if maxAt <= 0 {
			maxAt = 1 // Prevent division by zero
		}
		progress = float64(kills) / maxAt
	case "time":
		maxAt := d.cfg.Progression.MaxTime
		if maxAt <= 0 {
			maxAt = time.Second
		}
		progress = float64(elapsed) / float64(maxAt)
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SpawnInterval returns the time between level spawns. At level 0 it is
// exactly base; it shrinks towards base*(1-SpawnReduction) at level 1 but
// never below MinSpawnInterval.
func (d *DifficultyManager) SpawnInterval(base time.Duration, kills int, elapsed time.Duration) time.Duration {
	level := d.Level(kills, elapsed)
	if level == 0 {
		return base
	}
	reduction := clampF(d.cfg.Scaling.SpawnReduction, 0.0, 1.0)
	result := time.Duration(float64(base) * (1.0 - level*reduction))
	if floor := d.cfg.Scaling.MinSpawnInterval; floor > 0 && result < floor {
		result = floor
	}
	if result <= 0 {
		result = time.Millisecond
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
