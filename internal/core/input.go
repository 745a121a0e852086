package core

// Direction is the horizontal intent for the paddle.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Sign returns -1, 0 or +1 for left, none and right.
func (d Direction) Sign() float64 {
	switch d {
	case DirLeft:
		return -1
	case DirRight:
		return 1
	default:
		return 0
	}
}

// IntentKind identifies what an Intent carries.
type IntentKind int

const (
	IntentDirection IntentKind = iota // Dir is set
	IntentPreset                      // Preset is set
	IntentMute                        // Muted is set
)

// Intent is a single input message produced by a frontend from raw key or UI
// events. Intents are queued and consumed at the start of the next tick, so
// frontends never touch simulation state directly.
type Intent struct {
	Kind   IntentKind
	Dir    Direction
	Preset string
	Muted  bool
}

// DirectionIntent builds a paddle direction intent.
func DirectionIntent(d Direction) Intent {
	return Intent{Kind: IntentDirection, Dir: d}
}

// PresetIntent builds a difficulty preset intent.
func PresetIntent(name string) Intent {
	return Intent{Kind: IntentPreset, Preset: name}
}

// MuteIntent builds a mute toggle intent.
func MuteIntent(muted bool) Intent {
	return Intent{Kind: IntentMute, Muted: muted}
}

// Inbox is a FIFO of intents owned by the game loop.
type Inbox struct {
	queue []Intent
}

// Post appends an intent to the inbox.
func (b *Inbox) Post(in Intent) {
	b.queue = append(b.queue, in)
}

// Drain returns all queued intents in arrival order and empties the inbox.
func (b *Inbox) Drain() []Intent {
	if len(b.queue) == 0 {
		return nil
	}
	out := b.queue
	b.queue = nil
	return out
}

// Len returns the number of pending intents.
func (b *Inbox) Len() int {
	return len(b.queue)
}

// DirectionKeys turns press and release of the left and right keys into a
// paddle direction. The most recently pressed key wins; releasing it falls
// back to the other key if that one is still down.
type DirectionKeys struct {
	left, right bool
	current     Direction
}

// Press records a key going down and returns the resulting direction and
// whether it changed.
func (k *DirectionKeys) Press(d Direction) (Direction, bool) {
	switch d {
	case DirLeft:
		k.left = true
	case DirRight:
		k.right = true
	default:
		return k.current, false
	}
	return k.set(d)
}

// Release records a key going up.
func (k *DirectionKeys) Release(d Direction) (Direction, bool) {
	switch d {
	case DirLeft:
		k.left = false
	case DirRight:
		k.right = false
	default:
		return k.current, false
	}
	if k.current != d {
		return k.current, false
	}
	switch {
	case k.left:
		return k.set(DirLeft)
	case k.right:
		return k.set(DirRight)
	default:
		return k.set(DirNone)
	}
}

// Current returns the direction in effect.
func (k *DirectionKeys) Current() Direction {
	return k.current
}

func (k *DirectionKeys) set(d Direction) (Direction, bool) {
	changed := k.current != d
	k.current = d
	return d, changed
}
