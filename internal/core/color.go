package core

// Color represents a foreground color for a screen cell.
// Platforms translate these into terminal or RGB colors.
type Color uint8

// Palette colors. The first four form the game's four-tone palette.
const (
	ColorDefault   Color = iota
	ColorInk             // deep teal: shadows, text on light backgrounds
	ColorAccent          // coral: hazard highlights, progress bar, death text
	ColorHighlight       // peach: player, title prompt
	ColorPaper           // off-white: arena floor
	ColorEnemy           // red: live enemies
	ColorBullet          // pale blue: bullets
	ColorParticle        // faint blue: bullet trail particles
	ColorGray            // pending (not yet spawned) enemies, letterbox
)

// RGB returns the 8-bit components for a palette color.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorInk:
		return 0x00, 0x30, 0x3b
	case ColorAccent:
		return 0xff, 0x77, 0x77
	case ColorHighlight:
		return 0xff, 0xce, 0x96
	case ColorPaper:
		return 0xf1, 0xf2, 0xda
	case ColorEnemy:
		return 0xe0, 0x20, 0x20
	case ColorBullet:
		return 0x88, 0x88, 0xaa
	case ColorParticle:
		return 0xdd, 0xdd, 0xff
	case ColorGray:
		return 0x80, 0x80, 0x80
	default:
		return 0xff, 0xff, 0xff
	}
}
