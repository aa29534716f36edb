package quickmaths

import (
	"math"
	"strconv"

	"github.com/vovakirdan/quickmaths/internal/config"
	"github.com/vovakirdan/quickmaths/internal/core"
	"github.com/vovakirdan/quickmaths/internal/games/quickmaths/scene"
	"github.com/vovakirdan/quickmaths/internal/games/quickmaths/sim"
)

// Visual characters for rendering
const (
	PlayerChar   = '■'
	EnemyChar    = '●'
	PendingChar  = '◌'
	BulletChar   = '•'
	ParticleChar = '·'
	DeadChar     = '∙'
	BarFullChar  = '█'
	BarEmptyChar = '░'
)

// Render draws the active scene into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.director == nil {
		return
	}

	r := renderer{dst: dst, view: g.view, arena: g.cfg.Arena}
	b := g.view.Bounds()
	dst.DrawBox(core.NewRect(b.X-1, b.Y-1, b.W+2, b.H+2), core.ColorGray)

	switch s := g.director.Current().(type) {
	case *scene.Title:
		r.title()
		r.wipe(s.Wipe)
	case *scene.Tutorial:
		r.simulation(s.Sim, g.cfg)
		r.textAt(core.V(g.cfg.Arena.Width/2, g.cfg.Arena.Height/8), s.VisibleHelp(), core.ColorPaper)
		r.progressBar(s.VisualProgress)
		r.wipe(s.FadeIn)
		if s.Exiting() {
			r.wipe(s.Exit)
		}
	case *scene.Level:
		r.simulation(s.Sim, g.cfg)
		r.textAt(core.V(g.cfg.Arena.Width/2, 6), strconv.Itoa(s.Sim.Killed), core.ColorHighlight)
		r.wipe(s.FadeIn)
	}

	if g.paused {
		r.textAt(core.V(g.cfg.Arena.Width/2, g.cfg.Arena.Height/2), " PAUSED ", core.ColorHighlight)
	}
}

// renderer draws arena-space shapes onto a cell grid.
type renderer struct {
	dst   *core.Screen
	view  Viewport
	arena config.ArenaConfig
}

func (r renderer) title() {
	mid := core.V(r.arena.Width/2, r.arena.Height/2)
	r.textAt(mid, "Quick Maths", core.ColorAccent)
	r.textAt(mid.Add(core.V(0, 12)), "click to start", core.ColorPaper)
}

func (r renderer) simulation(s *sim.Sim, cfg config.QuickMathsConfig) {
	for _, d := range s.DeadEnemies {
		if d.Alpha() > 0.5 {
			r.textAt(d.Pos, d.Text, core.ColorGray)
		} else {
			r.disc(d.Pos, d.Radius/2, DeadChar, core.ColorGray)
		}
	}

	// Pending enemies sit under active ones.
	for _, e := range s.Enemies {
		if !e.Active() {
			r.disc(e.Pos, e.Radius*e.SpawnProgress(), PendingChar, core.ColorGray)
			r.textAt(e.Pos, e.Text, core.ColorGray)
		}
	}
	for _, e := range s.Enemies {
		if e.Active() {
			r.disc(e.Pos, e.Radius, EnemyChar, core.ColorEnemy)
			r.textAt(e.Pos, e.Text, core.ColorPaper)
		}
	}

	for _, p := range s.Bullets.Particles {
		if p.Alpha(cfg.Bullets.ParticleLifetime) > 0.3 {
			r.point(p.Pos, ParticleChar, core.ColorParticle)
		}
	}
	for _, b := range s.Bullets.Projectiles {
		r.point(b.Pos, BulletChar, core.ColorBullet)
	}

	r.disc(s.Player.Pos, s.Player.Radius, PlayerChar, core.ColorAccent)

	if s.Player.Dead {
		mid := core.V(r.arena.Width/2, r.arena.Height/2)
		r.textAt(mid.Sub(core.V(0, 8)), " YOU DIED ", core.ColorAccent)
		r.textAt(mid, " "+s.Player.DeathReason+" ", core.ColorHighlight)
	}
}

// progressBar fills the bottom row of the arena.
func (r renderer) progressBar(progress float64) {
	b := r.view.Bounds()
	row := b.Bottom() - 1
	full := int(math.Round(core.ClampF(progress, 0, 1) * float64(b.W)))
	r.dst.DrawHLine(b.X, row, full, BarFullChar, core.ColorHighlight)
	r.dst.DrawHLine(b.X+full, row, b.W-full, BarEmptyChar, core.ColorGray)
}

// wipe blanks every cell outside the transition's visible disc.
func (r renderer) wipe(t scene.Transition) {
	radius := t.Radius(r.arena)
	centre := core.V(r.arena.Width/2, r.arena.Height/2)
	if radius >= math.Hypot(r.arena.Width, r.arena.Height)/2 {
		return
	}
	b := r.view.Bounds()
	for row := b.Y; row < b.Bottom(); row++ {
		for col := b.X; col < b.Right(); col++ {
			if r.view.CellCenter(col, row).Dist(centre) > radius {
				r.dst.SetCell(col, row, ' ', core.ColorDefault)
			}
		}
	}
}

// disc fills every cell whose centre lies inside the circle. Circles
// smaller than a cell still mark the cell under their centre.
func (r renderer) disc(centre core.Vec2, radius float64, ch rune, c core.Color) {
	col0, row0 := r.view.Cell(centre.Sub(core.V(radius, radius)))
	col1, row1 := r.view.Cell(centre.Add(core.V(radius, radius)))
	drawn := false
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			if r.view.CellCenter(col, row).Dist(centre) <= radius {
				r.dst.SetCell(col, row, ch, c)
				drawn = true
			}
		}
	}
	if !drawn {
		r.point(centre, ch, c)
	}
}

func (r renderer) point(p core.Vec2, ch rune, c core.Color) {
	col, row := r.view.Cell(p)
	r.dst.SetCell(col, row, ch, c)
}

func (r renderer) textAt(p core.Vec2, text string, c core.Color) {
	if text == "" {
		return
	}
	col, row := r.view.Cell(p)
	r.dst.DrawTextCentered(col, row, text, c)
}
