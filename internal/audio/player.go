package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/quickmaths/internal/core"
)

// Player plays cues through the system speaker. Every cue is mixed into one
// long-running stream so overlapping cues never block each other.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	open   bool
}

// Open initialises the speaker and starts the mixer. volume is clamped to
// [0, 1].
func Open(volume float64) (*Player, error) {
	p := &Player{
		mixer:  &beep.Mixer{},
		volume: core.ClampF(volume, 0, 1),
	}

	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.open = true
	return p, nil
}

// OpenOrNop opens the speaker, falling back to a silent player with a
// warning when no audio device is available.
func OpenOrNop(volume float64, logger *log.Logger) core.CuePlayer {
	p, err := Open(volume)
	if err != nil {
		if logger != nil {
			logger.Warn("audio disabled", "err", err)
		}
		return core.NopCuePlayer{}
	}
	return p
}

// Play implements core.CuePlayer.
func (p *Player) Play(c core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.open {
		return
	}
	s := Sound(c, p.volume, SampleRate)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences all cues. Later Play calls are ignored.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.open {
		return
	}
	speaker.Clear()
	p.open = false
}
