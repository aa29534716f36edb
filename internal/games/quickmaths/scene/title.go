package scene

import (
	"time"

	"github.com/vovakirdan/quickmaths/internal/core"
)

// Title waits for a click, then wipes out into the tutorial.
type Title struct {
	Wipe    Transition
	Leaving bool
}

// NewTitle creates the title scene.
func NewTitle(env Env) *Title {
	return &Title{Wipe: NewTransition(env.Config.Scenes.TransitionDuration, WipeOut)}
}

// Kind implements Scene.
func (t *Title) Kind() Kind { return KindTitle }

// Update implements Scene.
func (t *Title) Update(sw Switcher, in core.InputFrame, dt time.Duration) {
	if !t.Leaving {
		t.Leaving = in.Clicked
		return
	}
	t.Wipe.Update(dt)
	if t.Wipe.Done() {
		sw.ChangeScene(KindTutorial)
	}
}
