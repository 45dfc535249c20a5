package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// helpMarkdown is the help overlay source. Rendered with glamour so it
// picks up the terminal's background style.
const helpMarkdown = `# ingrid

A keyboard-driven outline editor. The outline is saved after every
command; quitting loses nothing.

## Keys

| Key | Action |
|---|---|
| enter | new line after the cursor |
| ↑ / k | previous line (pre-order) |
| ↓ / j | next line (pre-order) |
| tab / > | indent under the previous sibling |
| shift+tab / < | outdent to the parent's level |
| → / l | expand (show children) |
| ← / h | collapse (hide children) |
| i / F2 | edit the current title |
| y | yank the current title to the clipboard |
| ? | toggle this help |
| q | quit |

Navigation walks the complete outline, including lines hidden inside
collapsed parents; the status bar always names the current line.
`

// renderHelp renders the help overlay to the given width.
func renderHelp(width int) string {
	wrap := width - 4
	if wrap < 40 {
		wrap = 40
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return strings.TrimRight(out, "\n") + "\n" + fmt.Sprintf("%*s", wrap, "press any key to close")
}
