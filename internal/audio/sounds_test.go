package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/quickmaths/internal/core"
)

// drain streams s to exhaustion and returns the sample count and peak level.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			for _, v := range smp {
				if v < 0 {
					v = -v
				}
				if v > peak {
					peak = v
				}
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never drained")
	return 0, 0
}

func TestSoundLengths(t *testing.T) {
	rate := beep.SampleRate(44100)
	cues := []core.Cue{core.CueShoot, core.CueHit, core.CueDing, core.CueLetter}

	for _, c := range cues {
		t.Run(c.String(), func(t *testing.T) {
			s := Sound(c, 1, rate)
			if s == nil {
				t.Fatalf("Sound(%v) = nil", c)
			}
			n, peak := drain(t, s)
			if expected := rate.N(Duration(c)); n != expected {
				t.Errorf("samples = %d, expected %d", n, expected)
			}
			if peak <= 0 || peak > 1 {
				t.Errorf("peak = %v, expected in (0, 1]", peak)
			}
		})
	}
}

func TestSoundUnknownCue(t *testing.T) {
	if s := Sound(core.Cue(99), 1, SampleRate); s != nil {
		t.Errorf("Sound(99) = %v, expected nil", s)
	}
	if d := Duration(core.Cue(99)); d != 0 {
		t.Errorf("Duration(99) = %v, expected 0", d)
	}
}

func TestSoundMuted(t *testing.T) {
	_, peak := drain(t, Sound(core.CueShoot, 0, SampleRate))
	if peak != 0 {
		t.Errorf("peak at volume 0 = %v, expected 0", peak)
	}
}

func TestOscillatorRange(t *testing.T) {
	tests := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewSweep(440, 110, 20*time.Millisecond, tt.wave, SampleRate)
			_, peak := drain(t, osc)
			if peak > 1 {
				t.Errorf("peak = %v, expected <= 1", peak)
			}
		})
	}
}

func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(1, 100*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("Stream() n = %d, expected 100", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, expected 0 (attack start)", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("sustain sample = %v, expected 1", buf[50][0])
	}
	if v := buf[99][0]; v <= 0 || v > 0.2 {
		t.Errorf("last sample = %v, expected a small positive release value", v)
	}
}
