package quickmaths

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/quickmaths/internal/config"
	"github.com/vovakirdan/quickmaths/internal/core"
	"github.com/vovakirdan/quickmaths/internal/games/quickmaths/scene"
	"github.com/vovakirdan/quickmaths/internal/registry"
)

const frame = 16 * time.Millisecond

// useDefaultConfig pins the config file so a user config cannot leak into tests.
func useDefaultConfig(t *testing.T) {
	t.Helper()
	data, err := config.Marshal(config.DefaultQuickMathsConfig())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	path := filepath.Join(t.TempDir(), "quickmaths.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	SetDifficultyPreset("")
	t.Cleanup(func() { SetConfigPath("") })
}

func newTestGame(t *testing.T, g *Game, seed int64) *Game {
	t.Helper()
	useDefaultConfig(t)
	g.Reset(core.RuntimeConfig{ScreenW: 200, ScreenH: 50, CellAspect: 2, Seed: seed})
	return g
}

func TestViewportLetterbox(t *testing.T) {
	arena := config.ArenaConfig{Width: 100, Height: 100}
	v := NewViewport(200, 50, 2, arena)

	if v.Scale != 1 {
		t.Errorf("Scale = %v, expected 1", v.Scale)
	}
	if v.OffsetX != 50 || v.OffsetY != 0 {
		t.Errorf("Offset = (%v, %v), expected (50, 0)", v.OffsetX, v.OffsetY)
	}

	x, y := v.ToScreen(core.V(50, 50))
	if x != 100 || y != 25 {
		t.Errorf("ToScreen(50, 50) = (%v, %v), expected (100, 25)", x, y)
	}

	b := v.Bounds()
	expected := core.NewRect(50, 0, 100, 50)
	if b != expected {
		t.Errorf("Bounds() = %+v, expected %+v", b, expected)
	}
}

func TestViewportRoundTrip(t *testing.T) {
	arena := config.ArenaConfig{Width: 100, Height: 100}
	tests := []struct {
		name   string
		w, h   int
		aspect float64
	}{
		{"terminal wide", 200, 50, 2},
		{"terminal tall", 80, 60, 2},
		{"pixels", 640, 480, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewport(tt.w, tt.h, tt.aspect, arena)
			for _, p := range []core.Vec2{core.V(0, 0), core.V(25, 75), core.V(100, 100)} {
				x, y := v.ToScreen(p)
				back := v.ToArena(x, y)
				if math.Abs(back.X-p.X) > 1e-9 || math.Abs(back.Y-p.Y) > 1e-9 {
					t.Errorf("ToArena(ToScreen(%v)) = %v", p, back)
				}
			}
		})
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"quickmaths", "quickmaths_endless"} {
		if !registry.Exists(id) {
			t.Errorf("registry.Exists(%q) = false, expected true", id)
		}
	}
}

func TestStartScenes(t *testing.T) {
	tests := []struct {
		name     string
		game     *Game
		expected string
	}{
		{"story", New(), "title"},
		{"endless", NewEndless(), "level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, tt.game, 1)
			if got := g.State().Scene; got != tt.expected {
				t.Errorf("State().Scene = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, NewEndless(), 1)

	g.Step(core.NewInputFrame(), frame)
	before := g.Snapshot().Clock

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	res := g.Step(pause, frame)
	if !res.State.Paused {
		t.Fatal("State.Paused = false after pause, expected true")
	}

	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame(), frame)
	}
	if got := g.Snapshot().Clock; got != before {
		t.Errorf("Clock while paused = %v, expected %v", got, before)
	}

	res = g.Step(pause, frame)
	if res.State.Paused {
		t.Error("State.Paused = true after second pause, expected false")
	}
	if got := g.Snapshot().Clock; got <= before {
		t.Errorf("Clock after resume = %v, expected > %v", got, before)
	}
}

func TestDeterministicReplay(t *testing.T) {
	run := func() uint64 {
		g := newTestGame(t, NewEndless(), 42)
		for i := 0; i < 600; i++ {
			in := core.NewInputFrame()
			if i%40 < 20 {
				in.Set(core.ActionLeft)
			} else {
				in.Set(core.ActionUp)
			}
			in.Cursor = core.V(100, 10)
			if i%25 == 0 {
				in.Clicked = true
			}
			g.Step(in, frame)
		}
		return g.Snapshot().Hash()
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("replay hashes differ: %x vs %x", a, b)
	}
}

func TestClickLeavesTitle(t *testing.T) {
	g := newTestGame(t, New(), 1)

	click := core.NewInputFrame()
	click.Click(core.V(100, 25))
	g.Step(click, frame)

	// The title wipe takes half a second.
	for i := 0; i < 40; i++ {
		g.Step(core.NewInputFrame(), frame)
	}
	if got := g.State().Scene; got != "tutorial" {
		t.Errorf("State().Scene = %q, expected %q", got, "tutorial")
	}
}

func TestRenderTitle(t *testing.T) {
	g := newTestGame(t, New(), 1)
	screen := core.NewScreen(200, 50)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Quick Maths") {
		t.Error("title screen does not contain the game name")
	}
	if got := screen.Get(49, 0); got != '│' {
		t.Errorf("frame left edge = %q, expected '│'", got)
	}
}

func TestRenderLevelShowsPlayer(t *testing.T) {
	g := newTestGame(t, NewEndless(), 1)
	// Let the fade-in finish.
	for i := 0; i < 40; i++ {
		g.Step(core.NewInputFrame(), frame)
	}

	screen := core.NewScreen(200, 50)
	g.Render(screen)

	s, ok := g.Scene().(scene.Simulated)
	if !ok {
		t.Fatalf("Scene() = %T, expected a simulated scene", g.Scene())
	}
	col, row := g.Viewport().Cell(s.Simulation().Player.Pos)
	if got := screen.Get(col, row); got != PlayerChar {
		t.Errorf("cell under player = %q, expected %q", got, PlayerChar)
	}
}
