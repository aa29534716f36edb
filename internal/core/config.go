package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW    int     // Screen width in driver units (cells or pixels)
	ScreenH    int     // Screen height in driver units
	CellAspect float64 // Height/width ratio of one unit (2 for terminal cells, 1 for pixels)
	TickRate   int     // Frames per second requested from the driver (default 60)
	Seed       int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		CellAspect: 2,
		TickRate:   60,
		Seed:       0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score      int    // Enemies destroyed in the current run
	Scene      string // Name of the active scene
	PlayerDead bool   // Player is dead and waiting for the scene to reload
	Paused     bool   // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation frame.
type StepResult struct {
	State GameState
}
