package gui

import (
	"math"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/quickmaths/internal/config"
	"github.com/vovakirdan/quickmaths/internal/core"
	"github.com/vovakirdan/quickmaths/internal/games/quickmaths/scene"
)

func keys(ks ...ebiten.Key) func(ebiten.Key) bool {
	set := make(map[ebiten.Key]bool, len(ks))
	for _, k := range ks {
		set[k] = true
	}
	return func(k ebiten.Key) bool { return set[k] }
}

func TestInputFrame(t *testing.T) {
	tests := []struct {
		name    string
		state   inputState
		actions []core.Action
		clicked bool
		quit    bool
	}{
		{
			name:    "wasd and arrows",
			state:   inputState{pressed: keys(ebiten.KeyA, ebiten.KeyArrowUp), justPressed: keys()},
			actions: []core.Action{core.ActionLeft, core.ActionUp},
		},
		{
			name:    "pause is an edge",
			state:   inputState{pressed: keys(ebiten.KeyP), justPressed: keys(ebiten.KeyEscape)},
			actions: []core.Action{core.ActionPause},
		},
		{
			name:    "mouse click",
			state:   inputState{pressed: keys(), justPressed: keys(), clicked: true},
			clicked: true,
		},
		{
			name:    "space shoots",
			state:   inputState{pressed: keys(ebiten.KeySpace), justPressed: keys(ebiten.KeySpace)},
			clicked: true,
		},
		{
			name:  "quit",
			state: inputState{pressed: keys(), justPressed: keys(ebiten.KeyQ)},
			quit:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, quit := tt.state.frame()
			if len(frame.Actions) != len(tt.actions) {
				t.Errorf("actions = %v, expected %v", frame.Actions, tt.actions)
			}
			for _, a := range tt.actions {
				if !frame.Has(a) {
					t.Errorf("missing action %v", a)
				}
			}
			if frame.Clicked != tt.clicked {
				t.Errorf("Clicked = %v, expected %v", frame.Clicked, tt.clicked)
			}
			if quit != tt.quit {
				t.Errorf("quit = %v, expected %v", quit, tt.quit)
			}
		})
	}
}

func TestInputCursorInPixels(t *testing.T) {
	frame, _ := inputState{pressed: keys(), justPressed: keys(), cursorX: 120, cursorY: 45}.frame()
	if frame.Cursor != core.V(120, 45) {
		t.Errorf("Cursor = %v, expected (120, 45)", frame.Cursor)
	}
}

func TestRGBAPremultiplied(t *testing.T) {
	c := rgba(core.ColorPaper, 0.5)
	if c.A != 127 {
		t.Errorf("A = %d, expected 127", c.A)
	}
	if c.R > c.A || c.G > c.A || c.B > c.A {
		t.Errorf("rgba() = %v is not premultiplied", c)
	}
	if got := rgba(core.ColorPaper, 3); got.A != 255 {
		t.Errorf("A for alpha 3 = %d, expected 255", got.A)
	}
}

func TestVisibleRadius(t *testing.T) {
	arena := config.ArenaConfig{Width: 100, Height: 100}
	full := math.Hypot(100, 100) / 2

	done := scene.NewTransition(500*time.Millisecond, scene.WipeIn)
	done.Update(time.Second)
	if _, masked := visibleRadius([]scene.Transition{done}, arena); masked {
		t.Error("finished wipe-in still masks the scene")
	}

	half := scene.NewTransition(500*time.Millisecond, scene.WipeIn)
	half.Update(250 * time.Millisecond)
	r, masked := visibleRadius([]scene.Transition{done, half}, arena)
	if !masked {
		t.Fatal("half wipe-in does not mask the scene")
	}
	if math.Abs(r-full/2) > 1e-9 {
		t.Errorf("radius = %v, expected %v", r, full/2)
	}
}
