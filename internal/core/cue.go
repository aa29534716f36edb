package core

// Cue identifies a fire-and-forget audio cue raised by the simulation.
type Cue int

const (
	CueShoot  Cue = iota // a bullet was fired
	CueHit               // a bullet or the player touched an enemy
	CueDing              // a tutorial step completed
	CueLetter            // a help-text character was revealed
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueShoot:
		return "shoot"
	case CueHit:
		return "hit"
	case CueDing:
		return "ding"
	case CueLetter:
		return "letter"
	default:
		return "unknown"
	}
}

// CuePlayer receives cues. Play must not block and has no result.
type CuePlayer interface {
	Play(c Cue)
}

// NopCuePlayer discards every cue.
type NopCuePlayer struct{}

// Play implements CuePlayer.
func (NopCuePlayer) Play(Cue) {}
