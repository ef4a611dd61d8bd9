package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/paper-flight/internal/core"
)

// cellStyle returns the lipgloss style of a cell's colours. Unset colours
// keep the terminal default.
func cellStyle(c core.Cell) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c.FG.IsSet() {
		style = style.Foreground(lipgloss.Color(c.FG.Hex()))
	}
	if c.BG.IsSet() {
		style = style.Background(lipgloss.Color(c.BG.Hex()))
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		cells := s.Cells(y)
		x := 0
		for x < len(cells) {
			start := cells[x]

			var run strings.Builder
			for x < len(cells) && cells[x].FG == start.FG && cells[x].BG == start.BG {
				run.WriteRune(cells[x].Ch)
				x++
			}

			if !start.FG.IsSet() && !start.BG.IsSet() {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(cellStyle(start).Render(run.String()))
		}
	}
	return sb.String()
}
