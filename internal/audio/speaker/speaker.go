// Package speaker plays cue sounds on the system audio device.
package speaker

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/bricks/internal/audio"
	"github.com/vovakirdan/bricks/internal/audio/synth"
)

// Output is an audio.Output backed by the beep speaker. Completion is
// reported from the speaker goroutine once the whole cue has been played.
type Output struct {
	mu     sync.Mutex
	volume float64 // 0..1
	closed bool
	logger *log.Logger
}

// New initializes the audio device. volume is clamped to [0, 1].
func New(volume float64, logger *log.Logger) (*Output, error) {
	sr := synth.SampleRate
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("speaker: init: %w", err)
	}
	return &Output{
		volume: math.Max(0, math.Min(1, volume)),
		logger: logger,
	}, nil
}

// Start implements audio.Output. Muted cues are streamed silently so the
// caller's latch is held for the cue's full length.
func (o *Output) Start(cue audio.Cue, muted bool, done func()) {
	o.mu.Lock()
	closed := o.closed
	vol := o.volume
	o.mu.Unlock()

	if closed {
		done()
		return
	}

	s, err := synth.Stream(cue, synth.SampleRate)
	if err != nil {
		if o.logger != nil {
			o.logger.Warn("cue not playable", "cue", cue, "error", err)
		}
		done()
		return
	}

	speaker.Play(beep.Seq(synth.WithVolume(s, vol, muted), beep.Callback(done)))
}

// Close stops playback and releases the device.
func (o *Output) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}
	o.closed = true
	speaker.Clear()
	speaker.Close()
}
