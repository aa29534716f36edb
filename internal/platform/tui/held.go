package tui

import (
	"time"

	"github.com/vovakirdan/quickmaths/internal/core"
)

// DefaultHoldWindow is how long a key stays held after its last press or
// auto-repeat. Terminals report no key releases, so a key counts as held
// while repeats keep arriving.
const DefaultHoldWindow = 200 * time.Millisecond

// HeldKeys approximates key-held state from press events.
type HeldKeys struct {
	window time.Duration
	until  map[core.Action]time.Time
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(window time.Duration) *HeldKeys {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HeldKeys{
		window: window,
		until:  make(map[core.Action]time.Time),
	}
}

// Press marks an action held from now. Pressing a direction releases its
// opposite.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	if o := opposite(a); o != core.ActionNone {
		delete(h.until, o)
	}
	h.until[a] = now.Add(h.window)
}

// Apply sets every action still held at now on the frame and forgets the
// expired ones.
func (h *HeldKeys) Apply(frame *core.InputFrame, now time.Time) {
	for a, until := range h.until {
		if now.After(until) {
			delete(h.until, a)
			continue
		}
		frame.Set(a)
	}
}

// Held reports whether a is held at now.
func (h *HeldKeys) Held(a core.Action, now time.Time) bool {
	until, ok := h.until[a]
	return ok && !now.After(until)
}

// Reset releases everything.
func (h *HeldKeys) Reset() {
	clear(h.until)
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	}
	return core.ActionNone
}
