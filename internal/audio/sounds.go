// Package audio synthesises the game's cue sounds with beep.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/quickmaths/internal/core"
)

// SampleRate is the output rate of every synthesised cue.
const SampleRate = beep.SampleRate(44100)

// Cue timings.
const (
	shootDuration  = 200 * time.Millisecond
	hitDuration    = 90 * time.Millisecond
	dingDuration   = 350 * time.Millisecond
	letterDuration = 18 * time.Millisecond
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a wave whose frequency glides exponentially from
// freq to endFreq over its duration.
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates a constant-pitch oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from freq to endFreq. Both must be
// positive except for noise, which ignores them.
func NewSweep(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewSource(1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.frequency() / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) frequency() float64 {
	if o.freq == o.endFreq || o.freq <= 0 || o.endFreq <= 0 || o.duration == 0 {
		return o.freq
	}
	t := float64(o.position) / float64(o.duration)
	return o.freq * math.Pow(o.endFreq/o.freq, t)
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with an attack ramp and a release ramp.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. math.Log2(0) is -Inf, so zero is
// mapped to silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// shootSound is a falling sawtooth.
func shootSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(100, 20, shootDuration, WaveSaw, rate)
	return NewEnvelope(osc, shootDuration, 2*time.Millisecond, shootDuration*3/4, rate)
}

// hitSound is a short noise burst.
func hitSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(0, hitDuration, WaveNoise, rate)
	return NewEnvelope(osc, hitDuration, time.Millisecond, hitDuration-time.Millisecond, rate)
}

// dingSound is a bell: a fundamental plus an octave that dies faster.
func dingSound(rate beep.SampleRate) beep.Streamer {
	fund := NewEnvelope(NewOscillator(880, dingDuration, WaveSine, rate), dingDuration, 5*time.Millisecond, dingDuration-5*time.Millisecond, rate)
	over := NewEnvelope(NewOscillator(1760, dingDuration, WaveSine, rate), dingDuration, 5*time.Millisecond, dingDuration/2, rate)
	return beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
}

// letterSound is a tiny square blip.
func letterSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(1200, letterDuration, WaveSquare, rate)
	return NewEnvelope(osc, letterDuration, time.Millisecond, letterDuration/2, rate)
}

// Sound returns a fresh streamer for the cue scaled by volume, or nil for
// an unknown cue.
func Sound(c core.Cue, volume float64, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch c {
	case core.CueShoot:
		s = newVolume(shootSound(rate), 0.5)
	case core.CueHit:
		s = newVolume(hitSound(rate), 0.4)
	case core.CueDing:
		s = dingSound(rate)
	case core.CueLetter:
		s = newVolume(letterSound(rate), 0.15)
	default:
		return nil
	}
	return newVolume(s, volume)
}

// Duration returns how long the cue's sound lasts.
func Duration(c core.Cue) time.Duration {
	switch c {
	case core.CueShoot:
		return shootDuration
	case core.CueHit:
		return hitDuration
	case core.CueDing:
		return dingDuration
	case core.CueLetter:
		return letterDuration
	default:
		return 0
	}
}
