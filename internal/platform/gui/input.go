package gui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/quickmaths/internal/core"
)

// movementKeys maps held keys to movement actions.
var movementKeys = map[core.Action][]ebiten.Key{
	core.ActionLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	core.ActionRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	core.ActionUp:    {ebiten.KeyW, ebiten.KeyArrowUp},
	core.ActionDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
}

var (
	pauseKeys = []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}
	quitKeys  = []ebiten.Key{ebiten.KeyQ}
	shootKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter}
)

// inputState is what one Update reads from the devices.
type inputState struct {
	pressed     func(ebiten.Key) bool // held now
	justPressed func(ebiten.Key) bool // went down this tick
	clicked     bool
	cursorX     int
	cursorY     int
}

// frame builds the game input for one tick. quit reports a quit request.
func (s inputState) frame() (frame core.InputFrame, quit bool) {
	frame = core.NewInputFrame()
	for a, keys := range movementKeys {
		if anyKey(s.pressed, keys) {
			frame.Set(a)
		}
	}
	if anyKey(s.justPressed, pauseKeys) {
		frame.Set(core.ActionPause)
	}

	frame.Cursor = core.V(float64(s.cursorX), float64(s.cursorY))
	if s.clicked || anyKey(s.justPressed, shootKeys) {
		frame.Clicked = true
	}
	return frame, anyKey(s.justPressed, quitKeys)
}

func anyKey(f func(ebiten.Key) bool, keys []ebiten.Key) bool {
	for _, k := range keys {
		if f(k) {
			return true
		}
	}
	return false
}
