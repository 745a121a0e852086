package tui

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bricks/internal/config"
	"github.com/vovakirdan/bricks/internal/core"
	"github.com/vovakirdan/bricks/internal/games/breakout"
)

// Layout constants
const (
	minWidth  = 24 // Smallest terminal that still shows a usable field
	minHeight = 10
	chromeW   = 2 // Field border
	chromeH   = 4 // Heading, status line and field border
)

// DefaultHoldDuration is how long a direction key counts as held after its
// last press or auto-repeat. Terminals never report key release.
const DefaultHoldDuration = 250 * time.Millisecond

// Options configures the terminal frontend.
type Options struct {
	Muted         bool
	HoldDuration  time.Duration
	ScreenshotDir string
	Logger        *log.Logger
}

// Model is the Bubble Tea model running one game session.
type Model struct {
	game   *breakout.Game
	screen *core.Screen
	canvas *core.CellCanvas
	config core.RuntimeConfig
	keys   KeyMap
	help   help.Model
	logger *log.Logger

	screenshotDir string

	// Paddle direction emulation
	held      core.Direction
	holdTicks int
	holdLeft  int

	muted    bool
	showHelp bool
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(game *breakout.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	hold := opts.HoldDuration
	if hold <= 0 {
		hold = DefaultHoldDuration
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	dir := opts.ScreenshotDir
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".bricks", "screenshots")
	}

	m := Model{
		game:          game,
		config:        cfg,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		logger:        logger,
		screenshotDir: dir,
		holdTicks:     max(1, int(math.Ceil(hold.Seconds()*float64(cfg.TickRate)))),
		muted:         opts.Muted,
	}
	m.resize(cfg.ScreenW, cfg.ScreenH)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey turns keyboard input into intents for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keys.Left):
		m.hold(core.DirLeft)
	case key.Matches(msg, m.keys.Right):
		m.hold(core.DirRight)
	case key.Matches(msg, m.keys.Stop):
		m.release()
	case key.Matches(msg, m.keys.Low):
		m.game.Post(core.PresetIntent(string(config.PresetLow)))
	case key.Matches(msg, m.keys.Middle):
		m.game.Post(core.PresetIntent(string(config.PresetMiddle)))
	case key.Matches(msg, m.keys.High):
		m.game.Post(core.PresetIntent(string(config.PresetHigh)))
	case key.Matches(msg, m.keys.Mute):
		m.muted = !m.muted
		m.game.Post(core.MuteIntent(m.muted))
	}
	return m, nil
}

// hold presses d, or keeps it pressed on auto-repeat.
func (m *Model) hold(d core.Direction) {
	if m.held != d {
		m.game.Post(core.DirectionIntent(d))
	}
	m.held = d
	m.holdLeft = m.holdTicks
}

// release lets go of the held direction.
func (m *Model) release() {
	if m.held != core.DirNone {
		m.game.Post(core.DirectionIntent(core.DirNone))
	}
	m.held = core.DirNone
	m.holdLeft = 0
}

// handleTick expires the held key and advances the simulation.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.held != core.DirNone {
		m.holdLeft--
		if m.holdLeft <= 0 {
			m.release()
		}
	}

	m.game.Tick()

	return m, tickCmd(m.config.TickRate)
}

// resize rebuilds the field buffer for a terminal of width x height.
func (m *Model) resize(width, height int) {
	m.config.ScreenW = width
	m.config.ScreenH = height
	m.help.Width = width

	fw, fh := max(width-chromeW, 0), max(height-chromeH, 0)
	if m.screen == nil {
		m.screen = core.NewScreen(fw, fh)
	} else {
		m.screen.Resize(fw, fh)
	}
	field := m.game.Field()
	m.canvas = core.NewCellCanvas(m.screen, core.NewRect(0, 0, fw, fh), field.W, field.H)
}

// tooSmall reports whether the terminal cannot fit a playable field.
func (m Model) tooSmall() bool {
	return m.config.ScreenW < minWidth || m.config.ScreenH < minHeight
}

// saveScreenshot saves the current field to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.canvas)

	if err := os.MkdirAll(m.screenshotDir, 0o750); err != nil {
		m.logger.Warn("screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("bricks_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot not saved", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// heading returns the round message, or the title when there is none.
func (m Model) heading() string {
	if msg := m.game.Message(); msg != "" {
		return msg
	}
	return "B R I C K S"
}

// statusLine shows the preset, mute state and short key help.
func (m Model) statusLine() string {
	state := fmt.Sprintf("preset %s", m.game.Preset())
	if m.muted {
		state += " · muted"
	}
	return statusStyle.Render(state+"  ") + m.help.ShortHelpView(m.keys.ShortHelp())
}

// overlay renders the instructions panel.
func (m Model) overlay() string {
	var b strings.Builder
	b.WriteString(overlayTitleStyle.Render("How to play"))
	b.WriteString("\n")
	b.WriteString("Move the paddle to keep the ball in play.\n")
	b.WriteString("Break every brick to win the round.\n")
	b.WriteString("Missing the ball rebuilds the wall.\n\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	return overlayStyle.Render(b.String())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		msg := fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d",
			minWidth, minHeight, m.config.ScreenW, m.config.ScreenH)
		return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, msg)
	}

	if m.showHelp {
		return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, m.overlay())
	}

	m.game.Render(m.canvas)

	field := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(RenderScreen(m.screen))

	return lipgloss.JoinVertical(lipgloss.Left,
		centerText(headingStyle.Render(m.heading()), m.config.ScreenW),
		field,
		m.statusLine(),
	)
}

// Run starts the Bubble Tea program for the session.
func Run(game *breakout.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
