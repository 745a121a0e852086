// Package audio selects and gates short gameplay sound cues. At most one cue
// plays at a time; requests made while a cue is playing are dropped.
package audio

// Cue identifies a gameplay sound.
type Cue string

const (
	CueBounce    Cue = "bounce"
	CuePaddleHit Cue = "paddle-hit"
	CueBrick     Cue = "brick"
	CueWin       Cue = "win"
	CueReset     Cue = "reset"
)

// Cues lists every cue in a stable order.
func Cues() []Cue {
	return []Cue{CueBounce, CuePaddleHit, CueBrick, CueWin, CueReset}
}

// Output starts the actual playback of a cue. Implementations must call done
// exactly once when playback ends, from any goroutine. When muted the output
// still runs for the cue's duration but produces silence.
type Output interface {
	Start(cue Cue, muted bool, done func())
}

// Discard is an Output that finishes every cue immediately.
type Discard struct{}

// Start implements Output.
func (Discard) Start(_ Cue, _ bool, done func()) {
	done()
}
