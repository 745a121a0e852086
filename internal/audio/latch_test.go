package audio

import (
	"sync"
	"testing"
)

// recorder is an Output that holds completions until released.
type recorder struct {
	mu      sync.Mutex
	started []Cue
	muted   []bool
	pending []func()
}

func (r *recorder) Start(cue Cue, muted bool, done func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = append(r.started, cue)
	r.muted = append(r.muted, muted)
	r.pending = append(r.pending, done)
}

func (r *recorder) finishAll() {
	r.mu.Lock()
	pending := r.pending
	r.pending = nil
	r.mu.Unlock()
	for _, done := range pending {
		done()
	}
}

func TestLatchDropsWhilePlaying(t *testing.T) {
	out := &recorder{}
	l := NewLatch(out, false)

	if !l.Play(CueBounce) {
		t.Fatal("first Play should start playback")
	}
	if l.Play(CueBrick) {
		t.Error("second Play before completion should be dropped")
	}

	if len(out.started) != 1 || out.started[0] != CueBounce {
		t.Fatalf("expected exactly one playback of bounce, got %v", out.started)
	}
	if st := l.Stats(); st.Played != 1 || st.Dropped != 1 {
		t.Errorf("stats = %+v, expected 1 played 1 dropped", st)
	}
	if cue, ok := l.Playing(); !ok || cue != CueBounce {
		t.Errorf("Playing() = %q, %v; expected bounce, true", cue, ok)
	}
}

func TestLatchCompletionReleases(t *testing.T) {
	out := &recorder{}
	l := NewLatch(out, false)

	l.Play(CueWin)
	out.finishAll()

	if _, ok := l.Playing(); ok {
		t.Error("latch should be clear after completion")
	}
	if !l.Play(CueReset) {
		t.Error("Play after completion should start playback")
	}
	if len(out.started) != 2 {
		t.Errorf("expected 2 playbacks, got %v", out.started)
	}
}

func TestLatchMuteKeepsLatch(t *testing.T) {
	out := &recorder{}
	l := NewLatch(out, true)

	if !l.Play(CuePaddleHit) {
		t.Fatal("muted Play should still start (silent) playback")
	}
	if !out.muted[0] {
		t.Error("output should be told to play silently")
	}
	if l.Play(CueBounce) {
		t.Error("mute must not bypass the in-progress latch")
	}

	out.finishAll()
	l.SetMuted(false)
	if l.Muted() {
		t.Error("Muted() should report false after SetMuted(false)")
	}
	l.Play(CueBounce)
	if out.muted[1] {
		t.Error("unmuted playback should be audible")
	}
}

func TestLatchIgnoresStaleCompletion(t *testing.T) {
	out := &recorder{}
	l := NewLatch(out, false)

	l.Play(CueBounce)
	first := out.pending[0]
	out.finishAll()
	l.Play(CueBrick)

	// A duplicate completion from the first playback must not free the second.
	first()
	if cue, ok := l.Playing(); !ok || cue != CueBrick {
		t.Errorf("stale completion released the latch, Playing() = %q, %v", cue, ok)
	}
}

func TestLatchDiscardCompletesImmediately(t *testing.T) {
	l := NewLatch(nil, false)
	for _, cue := range Cues() {
		if !l.Play(cue) {
			t.Errorf("Play(%s) should start with Discard output", cue)
		}
	}
	if st := l.Stats(); st.Played != len(Cues()) || st.Dropped != 0 {
		t.Errorf("stats = %+v", st)
	}
}
