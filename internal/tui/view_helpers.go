package tui

import (
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

// Layout of renderPage: title, divider and a blank line precede the data,
// and every data line is indented.
const (
	pageDataTop    = 3
	pageDataIndent = 2
)

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", pageDataIndent))
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString(strings.Repeat(" ", pageDataIndent))
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)

	if strings.TrimSpace(hotKeys) != "" {
		for _, line := range strings.Split(hotKeys, "\n") {
			b.WriteString("\n  ")
			b.WriteString(line)
		}
	}

	return b.String()
}
