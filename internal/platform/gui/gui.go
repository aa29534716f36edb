// Package gui provides the Ebiten frame driver: real key-held state, mouse
// aiming and vector drawing of the game.
package gui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/quickmaths/internal/core"
	"github.com/vovakirdan/quickmaths/internal/games/quickmaths"
)

// Default window size in pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 800
)

// Window implements ebiten.Game around one quickmaths game.
type Window struct {
	game   *quickmaths.Game
	logger *log.Logger
	dt     time.Duration
	width  int
	height int
	scene  *ebiten.Image
	mask   *ebiten.Image
}

// NewWindow resets the game for a window of the configured size.
func NewWindow(game *quickmaths.Game, cfg core.RuntimeConfig, logger *log.Logger) *Window {
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		cfg.ScreenW, cfg.ScreenH = DefaultWidth, DefaultHeight
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.CellAspect = 1
	game.Reset(cfg)

	return &Window{
		game:   game,
		logger: logger,
		dt:     time.Second / time.Duration(cfg.TickRate),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
}

// Update steps the game by one fixed tick.
func (w *Window) Update() error {
	x, y := ebiten.CursorPosition()
	in, quit := inputState{
		pressed:     ebiten.IsKeyPressed,
		justPressed: inpututil.IsKeyJustPressed,
		clicked:     inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		cursorX:     x,
		cursorY:     y,
	}.frame()
	if quit {
		return ebiten.Termination
	}

	w.game.Step(in, w.dt)
	return nil
}

// Draw renders the scene offscreen, then copies it through the wipe mask.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(rgba(core.ColorInk, 1))
	if w.scene == nil {
		return
	}

	w.scene.Clear()
	p := painter{dst: w.scene, view: w.game.Viewport(), arena: w.game.Config().Arena}
	drawScene(p, w.game)

	r, masked := visibleRadius(wipes(w.game.Scene()), p.arena)
	if !masked {
		screen.DrawImage(w.scene, nil)
		return
	}

	w.mask.Clear()
	p.dst = w.mask
	p.fillCircle(core.V(p.arena.Width/2, p.arena.Height/2), r, rgba(core.ColorPaper, 1))
	w.mask.DrawImage(w.scene, &ebiten.DrawImageOptions{Blend: ebiten.BlendSourceIn})
	screen.DrawImage(w.mask, nil)
}

// Layout follows the window size and refits the arena when it changes.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != w.width || outsideHeight != w.height || w.scene == nil {
		w.width, w.height = outsideWidth, outsideHeight
		w.game.Resize(outsideWidth, outsideHeight)
		w.scene = ebiten.NewImage(max(outsideWidth, 1), max(outsideHeight, 1))
		w.mask = ebiten.NewImage(max(outsideWidth, 1), max(outsideHeight, 1))
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and blocks until it is closed or q is pressed.
func Run(game *quickmaths.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	w := NewWindow(game, cfg, logger)

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(int(time.Second / w.dt))

	if logger != nil {
		logger.Info("opening window", "game", game.ID(), "size", fmt.Sprintf("%dx%d", w.width, w.height))
	}
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: run: %w", err)
	}
	return nil
}
