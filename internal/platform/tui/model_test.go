package tui

import (
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bricks/internal/config"
	"github.com/vovakirdan/bricks/internal/core"
	"github.com/vovakirdan/bricks/internal/games/breakout"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10}
	game := breakout.New(config.DefaultBricksConfig(), rt)
	return NewModel(game, rt, Options{
		HoldDuration:  500 * time.Millisecond,
		ScreenshotDir: t.TempDir(),
	})
}

func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func tick(m Model, n int) Model {
	for range n {
		m, _ = send(m, TickMsg(time.Now()))
	}
	return m
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHeldKeyReleasesAfterHoldWindow(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(m, 10)

	// 5 hold ticks: the paddle moves on the first 4, the 5th releases.
	if p := m.game.Paddle(); p.X != 360-4*8 || p.DX != 0 {
		t.Errorf("paddle = %+v, expected stopped at %v", p, 360-4*8)
	}
}

func TestAutoRepeatExtendsHold(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(m, 3)
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(m, 4)

	if p := m.game.Paddle(); p.X != 360-7*8 || p.DX != -8 {
		t.Errorf("paddle = %+v, expected still moving left at %v", p, 360-7*8)
	}
}

func TestStopKeyReleases(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyRight})
	m = tick(m, 2)
	m, _ = send(m, tea.KeyMsg{Type: tea.KeySpace})
	m = tick(m, 2)

	if p := m.game.Paddle(); p.X != 360+2*8 || p.DX != 0 {
		t.Errorf("paddle = %+v, expected stopped at %v", p, 360+2*8)
	}
}

func TestPresetAndMuteKeys(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(m, runeKey("3"))
	m, _ = send(m, runeKey("m"))
	m = tick(m, 1)

	if m.game.Preset() != config.PresetHigh {
		t.Errorf("preset = %q, expected high", m.game.Preset())
	}
	if m.game.Ball().Speed != 4 {
		t.Errorf("ball speed = %v, expected 4", m.game.Ball().Speed)
	}
	if !m.muted || !strings.Contains(m.statusLine(), "muted") {
		t.Error("mute key should toggle muted state")
	}

	m, _ = send(m, runeKey("1"))
	m = tick(m, 1)
	if m.game.Preset() != config.PresetLow || m.game.Paddle().W != 140 {
		t.Errorf("preset = %q width %v, expected low and 140", m.game.Preset(), m.game.Paddle().W)
	}
}

func TestHelpOverlayToggle(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(m, runeKey("?"))
	if !strings.Contains(m.View(), "How to play") {
		t.Error("overlay not shown")
	}
	before := m.game.Snapshot()
	_ = m.View()
	after := m.game.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("overlay changed session state")
	}

	m, _ = send(m, runeKey("h"))
	if strings.Contains(m.View(), "How to play") {
		t.Error("overlay not hidden")
	}
}

func TestViewShowsScoreAndHeading(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	if !strings.Contains(view, "Score: 0") {
		t.Error("view missing score")
	}
	if !strings.Contains(view, "B R I C K S") {
		t.Error("view missing title heading")
	}
}

func TestTooSmall(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(m, tea.WindowSizeMsg{Width: 10, Height: 5})
	if !strings.Contains(m.View(), "too small") {
		t.Errorf("view = %q, expected too small message", m.View())
	}

	m, _ = send(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if strings.Contains(m.View(), "too small") {
		t.Error("view still too small after resize")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)

	m, cmd := send(m, runeKey("q"))
	if cmd == nil || !m.quitting {
		t.Fatal("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestScreenshot(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(m.screenshotDir)
	if err != nil {
		t.Fatalf("read screenshot dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("screenshots = %d, expected 1", len(entries))
	}
	data, err := os.ReadFile(m.screenshotDir + "/" + entries[0].Name())
	if err != nil {
		t.Fatalf("read screenshot: %v", err)
	}
	if !strings.Contains(string(data), "Score: 0") {
		t.Error("screenshot missing score text")
	}
}

func TestPresetPicker(t *testing.T) {
	presets := config.DefaultBricksConfig().Presets
	m := NewPresetPickerModel(presets, config.PresetHigh, 80, 24)

	if !strings.Contains(m.View(), "Paddle width") {
		t.Error("picker view missing table header")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(PresetPickerModel)

	if cmd == nil {
		t.Error("select should quit the picker")
	}
	if sel := m.Selected(); sel == nil || *sel != config.PresetMiddle {
		t.Errorf("selected = %v, expected middle", sel)
	}
}
