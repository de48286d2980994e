package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snake-village/internal/core"
)

// styleCache holds one lipgloss style per colour. Shared by every SSH
// session, hence the sync.Map.
var styleCache sync.Map

func styleFor(c core.Color) lipgloss.Style {
	if v, ok := styleCache.Load(c); ok {
		return v.(lipgloss.Style)
	}
	style := lipgloss.NewStyle()
	if c != core.ColorDefault {
		style = style.Foreground(lipgloss.Color(string(c)))
	}
	styleCache.Store(c, style)
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if startColor == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
