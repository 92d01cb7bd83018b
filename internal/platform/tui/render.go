package tui

import (
	"strings"

	"github.com/vovakirdan/t2048/internal/core"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same role and weight share one escape sequence.
func RenderScreen(s *core.Screen, p Palette) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start.Color || cell.Bold != start.Bold {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.Style(start.Color, start.Bold).Render(run.String()))
		}
	}
	return sb.String()
}
