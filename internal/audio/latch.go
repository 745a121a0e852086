package audio

import "sync"

// Stats counts cue requests seen by a Latch.
type Stats struct {
	Played  int // Requests that started playback
	Dropped int // Requests dropped because a cue was playing
}

// Latch is the cue requester. It is safe for concurrent use: the game loop
// calls Play while the audio backend calls the completion from its own
// goroutine.
type Latch struct {
	mu      sync.Mutex
	out     Output
	playing bool
	muted   bool
	current Cue
	gen     uint64
	stats   Stats
}

// NewLatch creates a latch over out. A nil out discards all cues.
func NewLatch(out Output, muted bool) *Latch {
	if out == nil {
		out = Discard{}
	}
	return &Latch{out: out, muted: muted}
}

// Play requests cue. It returns false when another cue is still playing.
// Mute does not bypass the latch.
func (l *Latch) Play(cue Cue) bool {
	l.mu.Lock()
	if l.playing {
		l.stats.Dropped++
		l.mu.Unlock()
		return false
	}
	l.playing = true
	l.current = cue
	l.gen++
	gen := l.gen
	muted := l.muted
	l.stats.Played++
	l.mu.Unlock()

	// Start outside the lock: outputs may complete synchronously.
	l.out.Start(cue, muted, func() { l.finish(gen) })
	return true
}

// finish clears the latch for the playback identified by gen. Late or
// duplicate completions are ignored.
func (l *Latch) finish(gen uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.playing && l.gen == gen {
		l.playing = false
		l.current = ""
	}
}

// SetMuted toggles audible output for subsequent cues.
func (l *Latch) SetMuted(muted bool) {
	l.mu.Lock()
	l.muted = muted
	l.mu.Unlock()
}

// Muted reports the mute state.
func (l *Latch) Muted() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.muted
}

// Playing returns the cue currently playing, if any.
func (l *Latch) Playing() (Cue, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current, l.playing
}

// Stats returns request counters.
func (l *Latch) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stats
}
