package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bricks/internal/config"
)

// PresetKeyMap defines the key bindings for the preset picker.
type PresetKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PresetKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PresetKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

// DefaultPresetKeyMap returns default key bindings.
func DefaultPresetKeyMap() PresetKeyMap {
	return PresetKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// PresetPickerModel lets the user choose the starting difficulty.
type PresetPickerModel struct {
	presets  []config.Preset
	table    table.Model
	help     help.Model
	keys     PresetKeyMap
	width    int
	height   int
	selected *config.Preset
	quitting bool
}

// NewPresetPickerModel creates a picker over the presets in table, with the
// cursor on current.
func NewPresetPickerModel(presets config.PresetTable, current config.Preset, width, height int) PresetPickerModel {
	order := config.Presets()

	rows := make([]table.Row, 0, len(order))
	cursor := 0
	for i, p := range order {
		params := presets[p]
		rows = append(rows, table.Row{
			string(p),
			fmt.Sprintf("%g", params.BallSpeed),
			fmt.Sprintf("%g", params.PaddleWidth),
		})
		if p == current {
			cursor = i
		}
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Preset", Width: 10},
			{Title: "Ball speed", Width: 12},
			{Title: "Paddle width", Width: 14},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("#0095dd")).
		Bold(false)
	t.SetStyles(s)
	t.SetCursor(cursor)

	return PresetPickerModel{
		presets: order,
		table:   t,
		help:    help.New(),
		keys:    DefaultPresetKeyMap(),
		width:   width,
		height:  height,
	}
}

// Init initializes the model.
func (m PresetPickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PresetPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			p := m.presets[m.table.Cursor()]
			m.selected = &p
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)
		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)
		}
	}
	return m, nil
}

// View renders the picker.
func (m PresetPickerModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(headingStyle.Render("B R I C K S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for _, line := range strings.Split(m.table.View(), "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.ShortHelpView(m.keys.ShortHelp()), m.width))
	return b.String()
}

// Selected returns the chosen preset, or nil if none was chosen.
func (m PresetPickerModel) Selected() *config.Preset {
	return m.selected
}

// RunPresetPicker shows the picker and returns the chosen preset, or nil
// when the user quit.
func RunPresetPicker(presets config.PresetTable, current config.Preset, width, height int) (*config.Preset, error) {
	model := NewPresetPickerModel(presets, current, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("tui: preset picker: %w", err)
	}

	m, ok := finalModel.(PresetPickerModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}
