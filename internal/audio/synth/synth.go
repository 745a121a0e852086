// Package synth builds the gameplay cue sounds from simple oscillators.
package synth

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/bricks/internal/audio"
)

// SampleRate is the rate every cue is rendered at.
const SampleRate = beep.SampleRate(44100)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
	WaveSaw
)

// Tone is a single note.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Wave     Wave
}

// Sound is a sequence of tones played back to back.
type Sound []Tone

// Length returns the total duration of the sound.
func (s Sound) Length() time.Duration {
	var d time.Duration
	for _, t := range s {
		d += t.Duration
	}
	return d
}

// Sounds maps every cue to its sound.
var Sounds = map[audio.Cue]Sound{
	audio.CueBounce: {
		{Freq: 880, Duration: 40 * time.Millisecond, Wave: WaveSquare},
		{Freq: 660, Duration: 40 * time.Millisecond, Wave: WaveSquare},
	},
	audio.CuePaddleHit: {
		{Freq: 160, Duration: 90 * time.Millisecond, Wave: WaveTriangle},
	},
	audio.CueBrick: {
		{Freq: 120, Duration: 60 * time.Millisecond, Wave: WaveSaw},
		{Freq: 80, Duration: 120 * time.Millisecond, Wave: WaveSaw},
	},
	audio.CueWin: {
		{Freq: 523.25, Duration: 120 * time.Millisecond, Wave: WaveSine},
		{Freq: 659.25, Duration: 120 * time.Millisecond, Wave: WaveSine},
		{Freq: 783.99, Duration: 120 * time.Millisecond, Wave: WaveSine},
		{Freq: 1046.5, Duration: 300 * time.Millisecond, Wave: WaveSine},
	},
	audio.CueReset: {
		{Freq: 440, Duration: 80 * time.Millisecond, Wave: WaveSine},
		{Freq: 660, Duration: 120 * time.Millisecond, Wave: WaveSine},
	},
}

// gain keeps the summed output well under clipping.
const gain = 0.3

// Stream renders the sound for cue at sr.
func Stream(cue audio.Cue, sr beep.SampleRate) (beep.Streamer, error) {
	sound, ok := Sounds[cue]
	if !ok {
		return nil, fmt.Errorf("synth: no sound for cue %q", cue)
	}

	parts := make([]beep.Streamer, 0, len(sound))
	for _, t := range sound {
		osc, err := oscillator(t, sr)
		if err != nil {
			return nil, fmt.Errorf("synth: cue %q: %w", cue, err)
		}
		n := sr.N(t.Duration)
		parts = append(parts, newFade(beep.Take(n, osc), n, sr.N(10*time.Millisecond)))
	}
	return beep.Seq(parts...), nil
}

// WithVolume scales s linearly by vol, clamped to [0, 1]. Muted streams and
// zero volume play silently but keep their length.
func WithVolume(s beep.Streamer, vol float64, muted bool) *effects.Volume {
	vol = math.Min(vol, 1)
	if muted || vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func oscillator(t Tone, sr beep.SampleRate) (beep.Streamer, error) {
	switch t.Wave {
	case WaveSquare:
		return generators.SquareTone(sr, t.Freq)
	case WaveTriangle:
		return generators.TriangleTone(sr, t.Freq)
	case WaveSaw:
		return generators.SawtoothTone(sr, t.Freq)
	default:
		return generators.SineTone(sr, t.Freq)
	}
}

// fade scales a stream by gain and ramps the last release samples to zero
// so consecutive tones do not click.
type fade struct {
	streamer beep.Streamer
	pos      int
	total    int
	release  int
}

func newFade(s beep.Streamer, total, release int) *fade {
	return &fade{streamer: s, total: total, release: min(release, total)}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := range n {
		vol := gain
		if left := f.total - f.pos; left < f.release {
			vol *= float64(left) / float64(f.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }
