// Package scene drives the Quick Maths scene flow: the title card, the
// scripted tutorial and the endless level, with radial wipes between them.
package scene

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/quickmaths/internal/config"
	"github.com/vovakirdan/quickmaths/internal/core"
)

// Kind identifies a scene variant.
type Kind int

const (
	KindTitle Kind = iota
	KindTutorial
	KindLevel
)

// String returns the scene name used in logs.
func (k Kind) String() string {
	switch k {
	case KindTitle:
		return "title"
	case KindTutorial:
		return "tutorial"
	case KindLevel:
		return "level"
	default:
		return "unknown"
	}
}

// Switcher receives scene requests. Both take effect after the current
// update returns.
type Switcher interface {
	ChangeScene(k Kind)
	ReloadScene()
}

// Scene is one variant of the scene state machine. Each value owns its
// whole state; switching scenes discards it.
type Scene interface {
	Kind() Kind
	Update(sw Switcher, in core.InputFrame, dt time.Duration)
}

// Env carries the collaborators every scene is built with.
type Env struct {
	Config     config.QuickMathsConfig
	Rand       core.Random
	Cues       core.CuePlayer
	Logger     *log.Logger
	Difficulty *config.DifficultyManager
}

// NewEnv fills in defaults for missing collaborators.
func NewEnv(cfg config.QuickMathsConfig, rng core.Random, cues core.CuePlayer, logger *log.Logger) Env {
	if cues == nil {
		cues = core.NopCuePlayer{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Env{
		Config:     cfg,
		Rand:       rng,
		Cues:       cues,
		Logger:     logger,
		Difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// New constructs a fresh scene of the given kind.
func New(env Env, k Kind) Scene {
	switch k {
	case KindTutorial:
		return NewTutorial(env)
	case KindLevel:
		return NewLevel(env)
	default:
		return NewTitle(env)
	}
}
