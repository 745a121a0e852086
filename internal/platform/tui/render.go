package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bricks/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightBlue:  lipgloss.NewStyle().Foreground(lipgloss.Color("#0095dd")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0095dd"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#0095dd")).
			Padding(1, 3)
	overlayTitleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// centerText pads text on the left to center it in width columns.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
