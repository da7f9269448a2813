package alert

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// dim strips styling from content, pads it to width x height and renders
// it faint. Terminals have no blur; this is the closest stand-in.
func dim(content string, width, height int) string {
	lines := strings.Split(ansi.Strip(content), "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}

	for i, line := range lines {
		if w := ansi.StringWidth(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		lines[i] = dimStyle.Render(line)
	}

	return strings.Join(lines, "\n")
}

// placeOverlay draws fg over bg with its top-left corner at column x,
// row y. Cells of bg outside fg are kept.
func placeOverlay(x, y int, fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")
	for len(bgLines) < y+len(fgLines) {
		bgLines = append(bgLines, "")
	}

	for i, fgLine := range fgLines {
		row := y + i
		bgLine := bgLines[row]

		left := ansi.Truncate(bgLine, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		right := ansi.TruncateLeft(bgLine, x+ansi.StringWidth(fgLine), "")

		bgLines[row] = left + fgLine + right
	}

	return strings.Join(bgLines, "\n")
}
