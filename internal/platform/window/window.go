// Package window runs the game in a desktop window with Ebitengine.
package window

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/bricks/internal/config"
	"github.com/vovakirdan/bricks/internal/core"
	"github.com/vovakirdan/bricks/internal/games/breakout"
)

// Debug font cell size in pixels.
const (
	debugGlyphW = 6
	debugGlyphH = 16
)

// Title is the window title.
const Title = "Bricks"

// Options configures the window frontend.
type Options struct {
	TickRate int
	Muted    bool
	Scale    float64 // Window size relative to the field; 0 means 1
	Logger   *log.Logger
}

// Host adapts a breakout session to ebiten.Game.
type Host struct {
	game   *breakout.Game
	keys   core.DirectionKeys
	logger *log.Logger

	muted    bool
	showHelp bool
}

// NewHost wraps game for ebiten.
func NewHost(game *breakout.Game, opts Options) *Host {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Host{game: game, logger: logger, muted: opts.Muted}
}

var (
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
)

// Update implements ebiten.Game: input becomes intents, then one tick runs.
func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	h.directionInput(core.DirLeft, leftKeys)
	h.directionInput(core.DirRight, rightKeys)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		h.game.Post(core.PresetIntent(string(config.PresetLow)))
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		h.game.Post(core.PresetIntent(string(config.PresetMiddle)))
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		h.game.Post(core.PresetIntent(string(config.PresetHigh)))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		h.muted = !h.muted
		h.game.Post(core.MuteIntent(h.muted))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.showHelp = !h.showHelp
	}

	h.game.Tick()
	return nil
}

// directionInput feeds key down and key up edges for one direction.
func (h *Host) directionInput(d core.Direction, keys []ebiten.Key) {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			if dir, changed := h.keys.Press(d); changed {
				h.game.Post(core.DirectionIntent(dir))
			}
		}
		if inpututil.IsKeyJustReleased(k) && !anyPressed(keys) {
			if dir, changed := h.keys.Release(d); changed {
				h.game.Post(core.DirectionIntent(dir))
			}
		}
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	h.game.Render(imageCanvas{dst: screen})

	field := h.game.Field()
	if msg := h.game.Message(); msg != "" {
		x := int(field.W)/2 - len(msg)*debugGlyphW/2
		ebitenutil.DebugPrintAt(screen, msg, x, int(field.H)/2-3*debugGlyphH)
	}

	status := fmt.Sprintf("preset %s", h.game.Preset())
	if h.muted {
		status += " | muted"
	}
	ebitenutil.DebugPrintAt(screen, status+" | H: help", 8, int(field.H)-debugGlyphH-4)

	if h.showHelp {
		h.drawOverlay(screen, field)
	}
}

var instructions = []string{
	"HOW TO PLAY",
	"",
	"Left/Right or A/D   move the paddle",
	"1 / 2 / 3           preset low / middle / high",
	"M                   mute",
	"H                   close this panel",
	"Q / Esc             quit",
	"",
	"Break every brick to win the round.",
	"Missing the ball rebuilds the wall.",
}

func (h *Host) drawOverlay(screen *ebiten.Image, field breakout.Field) {
	w := 0
	for _, line := range instructions {
		w = max(w, len(line))
	}
	pw := float32(w*debugGlyphW + 40)
	ph := float32(len(instructions)*debugGlyphH + 40)
	px := float32(field.W)/2 - pw/2
	py := float32(field.H)/2 - ph/2

	vector.DrawFilledRect(screen, px, py, pw, ph, color.RGBA{0x10, 0x20, 0x30, 0xe0}, false)
	ebitenutil.DebugPrintAt(screen, strings.Join(instructions, "\n"), int(px)+20, int(py)+20)
}

// Layout implements ebiten.Game. The logical screen is the field.
func (h *Host) Layout(_, _ int) (int, int) {
	f := h.game.Field()
	return int(f.W), int(f.H)
}

// Run opens the window and blocks until it is closed.
func Run(game *breakout.Game, opts Options) error {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	tps := opts.TickRate
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}

	f := game.Field()
	ebiten.SetWindowSize(int(f.W*scale), int(f.H*scale))
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps)

	host := NewHost(game, opts)
	host.logger.Info("window opened", "width", f.W, "height", f.H, "tps", tps)

	if err := ebiten.RunGame(host); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
