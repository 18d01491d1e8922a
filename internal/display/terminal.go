package display

import (
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
)

// RenderTitle returns text horizontally centred for width columns, with a
// rule underneath.
func RenderTitle(text string, width int) string {
	w := len(text)
	pad := 0
	if width > w {
		pad = (width - w) / 2
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(TitleStyle.Render(text))
	b.WriteByte('\n')
	b.WriteString(leaderStyle.Render(strings.Repeat("─", max(width, w))))
	return b.String()
}

// termWidth returns the current terminal column count, or 80 as fallback.
func termWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 80
}
