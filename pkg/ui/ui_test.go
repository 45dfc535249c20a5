package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// testRenderer returns a renderer detached from the terminal so rendered
// output carries no escape sequences.
func testRenderer() *lipgloss.Renderer {
	return lipgloss.NewRenderer(io.Discard)
}
