package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/raygrid/arcade/internal/core"
)

// styleCache memoizes lipgloss styles per (FG, BG) pair. A raycast frame uses
// many distinct truecolor pairs but far fewer than one per cell, so caching
// keeps style construction off the hot path.
var styleCache = map[[2]core.Color]lipgloss.Style{}

func styleFor(fg, bg core.Color) lipgloss.Style {
	key := [2]core.Color{fg, bg}
	if s, ok := styleCache[key]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if fg.IsSet() {
		s = s.Foreground(lipgloss.Color(fg.Hex()))
	}
	if bg.IsSet() {
		s = s.Background(lipgloss.Color(bg.Hex()))
	}
	styleCache[key] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells sharing the same color pair are grouped into one styled run
// to minimize ANSI escape sequences; a full-width raycast row typically
// collapses into a few dozen runs.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			fg, bg := cell.FG, cell.BG

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.FG != fg || cell.BG != bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if !fg.IsSet() && !bg.IsSet() {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(fg, bg).Render(run.String()))
		}
	}
	return sb.String()
}
