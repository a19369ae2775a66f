package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"commsdash/internal/ui/textutil"
)

// titledBox draws body inside a double border of exactly width x height cells,
// with title centered in the top edge. Boxes too small for a border come back blank.
func titledBox(title, body string, width, height int, style lipgloss.Style) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if width < 2 || height < 2 {
		return textutil.FitBlock("", width, height)
	}

	b := lipgloss.DoubleBorder()
	inner := width - 2
	title = ansi.Truncate(title, inner, "")
	tw := ansi.StringWidth(title)
	left := (inner - tw) / 2

	top := b.TopLeft + strings.Repeat(b.Top, left) + title + strings.Repeat(b.Top, inner-tw-left) + b.TopRight
	bottom := b.BottomLeft + strings.Repeat(b.Bottom, inner) + b.BottomRight

	lines := make([]string, 0, height)
	lines = append(lines, style.Render(top))
	if height > 2 {
		for _, row := range strings.Split(textutil.FitBlock(body, inner, height-2), "\n") {
			lines = append(lines, style.Render(b.Left)+style.Render(row)+style.Render(b.Right))
		}
	}
	lines = append(lines, style.Render(bottom))
	return strings.Join(lines, "\n")
}
