// Package quickmaths adapts the Quick Maths scenes to the arcade platform:
// it owns configuration loading, maps driver input into the arena and draws
// the active scene into a terminal screen buffer.
package quickmaths

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/quickmaths/internal/config"
	"github.com/vovakirdan/quickmaths/internal/core"
	"github.com/vovakirdan/quickmaths/internal/games/quickmaths/scene"
	"github.com/vovakirdan/quickmaths/internal/games/quickmaths/sim"
	"github.com/vovakirdan/quickmaths/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// cuePlayer receives the audio cues of every new game.
var cuePlayer core.CuePlayer = core.NopCuePlayer{}

// logger receives scene and lifecycle logs.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetCuePlayer sets the audio backend used by games created afterwards.
func SetCuePlayer(p core.CuePlayer) {
	if p == nil {
		p = core.NopCuePlayer{}
	}
	cuePlayer = p
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// LoadConfig loads the configuration selected via SetConfigPath and applies
// the difficulty preset.
func LoadConfig() (config.QuickMathsConfig, error) {
	cfg, err := config.LoadQuickMaths(configPath)
	if err != nil {
		return cfg, err
	}
	config.ApplyQuickMathsPreset(&cfg, difficultyPreset)
	return cfg, nil
}

// Game implements registry.Game for Quick Maths.
type Game struct {
	id    string
	title string
	start scene.Kind

	rt       core.RuntimeConfig
	cfg      config.QuickMathsConfig
	director *scene.Director
	view     Viewport
	paused   bool
}

// New creates a game that opens on the title screen.
func New() *Game {
	return &Game{id: "quickmaths", title: "Quick Maths", start: scene.KindTitle}
}

// NewEndless creates a game that skips straight to the level.
func NewEndless() *Game {
	return &Game{id: "quickmaths_endless", title: "Quick Maths (Endless)", start: scene.KindLevel}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset loads configuration and starts over at the first scene.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := LoadConfig()
	if err != nil {
		logger.Warn("falling back to default config", "err", err)
		cfg = config.DefaultQuickMathsConfig()
	}

	g.rt = rt
	g.cfg = cfg
	g.paused = false
	env := scene.NewEnv(cfg, core.NewRandom(rt.Seed), cuePlayer, logger)
	g.director = scene.NewDirector(env, g.start)
	g.Resize(rt.ScreenW, rt.ScreenH)
}

// Resize refits the arena to a new surface without touching game state.
func (g *Game) Resize(w, h int) {
	g.rt.ScreenW = w
	g.rt.ScreenH = h
	g.view = NewViewport(w, h, g.rt.CellAspect, g.cfg.Arena)
}

// Step advances the active scene by dt. The cursor is given in driver
// units and mapped into the arena here.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	arenaIn := in
	arenaIn.Cursor = g.view.ToArena(in.Cursor.X, in.Cursor.Y)
	g.director.Update(arenaIn, dt)

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{Paused: g.paused}
	if g.director == nil {
		return st
	}
	cur := g.director.Current()
	st.Scene = cur.Kind().String()
	if s, ok := cur.(scene.Simulated); ok {
		st.Score = s.Simulation().Killed
		st.PlayerDead = s.Simulation().Player.Dead
	}
	return st
}

// Scene returns the active scene for drivers that draw it themselves.
func (g *Game) Scene() scene.Scene {
	return g.director.Current()
}

// Config returns the configuration loaded by the last Reset.
func (g *Game) Config() config.QuickMathsConfig {
	return g.cfg
}

// Viewport returns the current arena mapping.
func (g *Game) Viewport() Viewport {
	return g.view
}

// Snapshot returns the simulation state of the active scene, or the zero
// snapshot on the title screen.
func (g *Game) Snapshot() sim.Snapshot {
	if s, ok := g.director.Current().(scene.Simulated); ok {
		return s.Simulation().Snapshot()
	}
	return sim.Snapshot{}
}

func init() {
	registry.Register("quickmaths", func() registry.Game {
		return New()
	})
	registry.Register("quickmaths_endless", func() registry.Game {
		return NewEndless()
	})
}
