package display

import (
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
)

const bannerRaw = `
 _ __ ___  ___(_)_ __   ___  ___ ___  ___| |_
| '__/ _ \/ __| | '_ \ / _ \/ __/ _ \/ __| __|
| | |  __/ (__| | |_) |  __/ (_| (_) \__ \ |_
|_|  \___|\___|_| .__/ \___|\___\___/|___/\__|
                |_|
`

// RenderBanner returns the banner art horizontally centred for width
// columns. A width of zero or less means the current terminal width.
func RenderBanner(width int) string {
	if width <= 0 {
		width = TermWidth()
	}

	lines := strings.Split(strings.Trim(bannerRaw, "\n"), "\n")

	maxW := 0
	for _, l := range lines {
		if len(l) > maxW {
			maxW = len(l)
		}
	}

	var b strings.Builder
	for _, l := range lines {
		if width > maxW {
			b.WriteString(strings.Repeat(" ", (width-maxW)/2))
		}
		b.WriteString(BannerStyle.Render(l))
		b.WriteByte('\n')
	}
	return b.String()
}

// TermWidth returns the current terminal column count, or 80 as fallback.
func TermWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 80
}
