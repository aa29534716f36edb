package gui

import (
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/quickmaths/internal/config"
	"github.com/vovakirdan/quickmaths/internal/core"
	"github.com/vovakirdan/quickmaths/internal/games/quickmaths"
	"github.com/vovakirdan/quickmaths/internal/games/quickmaths/scene"
	"github.com/vovakirdan/quickmaths/internal/games/quickmaths/sim"
)

var face font.Face = basicfont.Face7x13

// rgba converts a palette colour with an opacity in [0, 1].
func rgba(c core.Color, alpha float64) color.RGBA {
	r, g, b := c.RGB()
	a := core.ClampF(alpha, 0, 1)
	// Premultiplied, as ebiten expects.
	return color.RGBA{
		R: uint8(float64(r) * a),
		G: uint8(float64(g) * a),
		B: uint8(float64(b) * a),
		A: uint8(255 * a),
	}
}

// painter draws arena-space shapes onto an ebiten image.
type painter struct {
	dst   *ebiten.Image
	view  quickmaths.Viewport
	arena config.ArenaConfig
}

func (p painter) pos(v core.Vec2) (float32, float32) {
	x, y := p.view.ToScreen(v)
	return float32(x), float32(y)
}

func (p painter) length(r float64) float32 {
	return float32(r * p.view.Scale)
}

func (p painter) fillCircle(at core.Vec2, r float64, c color.Color) {
	x, y := p.pos(at)
	vector.FillCircle(p.dst, x, y, p.length(r), c, true)
}

func (p painter) strokeCircle(at core.Vec2, r float64, c color.Color) {
	x, y := p.pos(at)
	vector.StrokeCircle(p.dst, x, y, p.length(r), 1, c, true)
}

// text draws s centred on an arena point.
func (p painter) text(at core.Vec2, s string, c color.Color) {
	if s == "" {
		return
	}
	x, y := p.pos(at)
	w := font.MeasureString(face, s).Ceil()
	h := face.Metrics().Ascent.Ceil()
	text.Draw(p.dst, s, face, int(x)-w/2, int(y)+h/2, c)
}

func (p painter) background() {
	x, y := p.pos(core.V(0, 0))
	vector.FillRect(p.dst, x, y, p.length(p.arena.Width), p.length(p.arena.Height), rgba(core.ColorInk, 1), false)
}

func (p painter) title() {
	mid := core.V(p.arena.Width/2, p.arena.Height/2)
	p.text(mid, "Quick Maths", rgba(core.ColorAccent, 1))
	p.text(mid.Add(core.V(0, 12)), "click to start", rgba(core.ColorPaper, 1))
}

func (p painter) simulation(s *sim.Sim, cfg config.QuickMathsConfig) {
	for _, d := range s.DeadEnemies {
		a := d.Alpha()
		p.strokeCircle(d.Pos, d.Radius, rgba(core.ColorEnemy, a))
		p.text(d.Pos, d.Text, rgba(core.ColorPaper, a))
	}

	for _, e := range s.Enemies {
		if !e.Active() {
			p.strokeCircle(e.Pos, e.Radius*e.SpawnProgress(), rgba(core.ColorGray, 1))
			p.text(e.Pos, e.Text, rgba(core.ColorGray, 1))
		}
	}
	for _, e := range s.Enemies {
		if e.Active() {
			p.fillCircle(e.Pos, e.Radius, rgba(core.ColorEnemy, 1))
			p.text(e.Pos, e.Text, rgba(core.ColorPaper, 1))
		}
	}

	for _, pt := range s.Bullets.Particles {
		p.fillCircle(pt.Pos, pt.Radius, rgba(core.ColorParticle, pt.Alpha(cfg.Bullets.ParticleLifetime)))
	}
	for _, b := range s.Bullets.Projectiles {
		p.fillCircle(b.Pos, b.Radius, rgba(core.ColorBullet, 1))
	}

	p.player(s.Player)

	if s.Player.Dead {
		mid := core.V(p.arena.Width/2, p.arena.Height/2)
		p.text(mid.Sub(core.V(0, 8)), "YOU DIED", rgba(core.ColorAccent, 1))
		p.text(mid, s.Player.DeathReason, rgba(core.ColorHighlight, 1))
	}
}

// player draws the avatar as a square tilted by its walking angle.
func (p painter) player(pl sim.Player) {
	c := rgba(core.ColorHighlight, 1)
	if pl.Dead {
		c = rgba(core.ColorAccent, 1)
	}
	p.fillCircle(pl.Pos, pl.Radius*0.7, c)

	var corners [4]core.Vec2
	for i := range corners {
		angle := pl.Angle + math.Pi/4 + float64(i)*math.Pi/2
		corners[i] = pl.Pos.Add(core.FromAngle(angle).Scale(pl.Radius * math.Sqrt2))
	}
	for i := range corners {
		x0, y0 := p.pos(corners[i])
		x1, y1 := p.pos(corners[(i+1)%4])
		vector.StrokeLine(p.dst, x0, y0, x1, y1, 2, c, true)
	}
}

// progressBar runs along the bottom edge of the arena.
func (p painter) progressBar(progress float64) {
	x, y := p.pos(core.V(0, p.arena.Height-2))
	w := p.length(p.arena.Width)
	h := p.length(2)
	vector.FillRect(p.dst, x, y, w, h, rgba(core.ColorGray, 0.5), false)
	vector.FillRect(p.dst, x, y, w*float32(core.ClampF(progress, 0, 1)), h, rgba(core.ColorAccent, 1), false)
}

// drawScene draws everything the active scene shows, without wipes.
func drawScene(p painter, g *quickmaths.Game) {
	cfg := g.Config()
	p.background()

	switch s := g.Scene().(type) {
	case *scene.Title:
		p.title()
	case *scene.Tutorial:
		p.simulation(s.Sim, cfg)
		p.text(core.V(p.arena.Width/2, p.arena.Height/8), s.VisibleHelp(), rgba(core.ColorPaper, 1))
		p.progressBar(s.VisualProgress)
	case *scene.Level:
		p.simulation(s.Sim, cfg)
		p.text(core.V(p.arena.Width/2, 6), strconv.Itoa(s.Sim.Killed), rgba(core.ColorHighlight, 1))
	}

	if g.State().Paused {
		p.text(core.V(p.arena.Width/2, p.arena.Height/2), "PAUSED", rgba(core.ColorHighlight, 1))
	}
}

// wipes returns the transitions currently masking the scene.
func wipes(s scene.Scene) []scene.Transition {
	switch s := s.(type) {
	case *scene.Title:
		return []scene.Transition{s.Wipe}
	case *scene.Tutorial:
		if s.Exiting() {
			return []scene.Transition{s.FadeIn, s.Exit}
		}
		return []scene.Transition{s.FadeIn}
	case *scene.Level:
		return []scene.Transition{s.FadeIn}
	}
	return nil
}

// visibleRadius is the smallest wipe radius, or ok=false when nothing is
// masked.
func visibleRadius(ts []scene.Transition, arena config.ArenaConfig) (r float64, ok bool) {
	full := math.Hypot(arena.Width, arena.Height) / 2
	r = full
	for _, t := range ts {
		r = math.Min(r, t.Radius(arena))
	}
	return r, r < full
}
