package quickmaths

import (
	"math"

	"github.com/vovakirdan/quickmaths/internal/config"
	"github.com/vovakirdan/quickmaths/internal/core"
)

// Viewport letterboxes the square arena into a driver surface. Driver units
// may be non-square: Aspect is the height of one unit divided by its width
// (2 for terminal cells, 1 for pixels).
type Viewport struct {
	OffsetX float64 // driver units
	OffsetY float64
	Scale   float64 // horizontal driver units per arena unit
	Aspect  float64
	arena   config.ArenaConfig
}

// NewViewport fits the arena into a w x h surface, centred.
func NewViewport(w, h int, aspect float64, arena config.ArenaConfig) Viewport {
	if aspect <= 0 {
		aspect = 1
	}
	scale := math.Min(float64(w)/arena.Width, float64(h)*aspect/arena.Height)
	if scale <= 0 {
		scale = 1
	}
	return Viewport{
		OffsetX: (float64(w) - arena.Width*scale) / 2,
		OffsetY: (float64(h) - arena.Height*scale/aspect) / 2,
		Scale:   scale,
		Aspect:  aspect,
		arena:   arena,
	}
}

// ToScreen maps an arena point to driver units.
func (v Viewport) ToScreen(p core.Vec2) (x, y float64) {
	return v.OffsetX + p.X*v.Scale, v.OffsetY + p.Y*v.Scale/v.Aspect
}

// ToArena maps a driver point back to arena units.
func (v Viewport) ToArena(x, y float64) core.Vec2 {
	return core.V((x-v.OffsetX)/v.Scale, (y-v.OffsetY)*v.Aspect/v.Scale)
}

// Cell returns the integer cell containing an arena point.
func (v Viewport) Cell(p core.Vec2) (col, row int) {
	x, y := v.ToScreen(p)
	return int(math.Floor(x)), int(math.Floor(y))
}

// CellCenter returns the arena point at the centre of a cell.
func (v Viewport) CellCenter(col, row int) core.Vec2 {
	return v.ToArena(float64(col)+0.5, float64(row)+0.5)
}

// Bounds returns the cells covered by the arena.
func (v Viewport) Bounds() core.Rect {
	x0, y0 := v.Cell(core.V(0, 0))
	x1, y1 := v.ToScreen(core.V(v.arena.Width, v.arena.Height))
	return core.NewRect(x0, y0, int(math.Ceil(x1))-x0, int(math.Ceil(y1))-y0)
}
