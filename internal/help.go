package internal

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// renderHelp replaces both panes with the key reference. Keys are padded to
// the widest key across all sections so the descriptions line up.
func renderHelp(f *Frame, sections []HelpSection) {
	divider := strings.Repeat("=", f.Width)

	keyWidth := 0
	for _, section := range sections {
		for _, e := range section.Entries {
			keyWidth = max(keyWidth, runewidth.StringWidth(e.Key))
		}
	}

	lines := []string{divider, "HELP", divider, ""}
	for _, section := range sections {
		lines = append(lines, section.Title)
		for _, e := range section.Entries {
			lines = append(lines, fmt.Sprintf("  %s  - %s", runewidth.FillRight(e.Key, keyWidth), e.Desc))
		}
		lines = append(lines, "")
	}
	lines = append(lines, divider)

	for y, line := range lines {
		f.Draw(0, y, line, false)
	}
}
