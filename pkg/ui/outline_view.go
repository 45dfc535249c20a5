package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/jigargosar/ingrid/pkg/model"
	"github.com/jigargosar/ingrid/pkg/outline"
)

// row is one rendered line of the outline: a node id at a nesting depth.
type row struct {
	id    string
	depth int
}

// visibleRows flattens the document into its on-screen rows: the root
// first, then every descendant whose ancestors all show their children.
// This is the rendering-level filter; cursor navigation is not limited to
// these rows.
func visibleRows(doc *model.Document) []row {
	rows := make([]row, 0, doc.Len())
	var walk func(n *model.Node, depth int)
	walk = func(n *model.Node, depth int) {
		rows = append(rows, row{id: n.ID, depth: depth})
		for _, child := range outline.VisibleChildren(n, doc) {
			walk(child, depth+1)
		}
	}
	if root := doc.Root(); root != nil {
		walk(root, 0)
	}
	return rows
}

// rowIndexOf returns the position of id in rows, or -1 when the node is
// hidden inside a collapsed subtree.
func rowIndexOf(rows []row, id string) int {
	for i, r := range rows {
		if r.id == id {
			return i
		}
	}
	return -1
}

// expandIndicator returns the marker rendered before a node's title.
func expandIndicator(n *model.Node) string {
	if !n.HasChildren() {
		return "•"
	}
	if n.Collapsed {
		return "▸"
	}
	return "▾"
}

// renderOutline renders the visible rows, highlighting the cursor row.
// Each row is exactly one line so the enclosing viewport can scroll by
// row index.
func renderOutline(doc *model.Document, theme Theme, width int) string {
	rows := visibleRows(doc)
	r := theme.Renderer
	indicatorStyle := r.NewStyle().Foreground(theme.Secondary)

	var sb strings.Builder
	for i, rw := range rows {
		n, ok := doc.Node(rw.id)
		if !ok {
			continue
		}

		indent := strings.Repeat("  ", rw.depth)
		indicator := expandIndicator(n)

		maxTitle := width - len(indent) - 2
		if maxTitle < 8 {
			maxTitle = 8
		}
		title := runewidth.Truncate(n.Title, maxTitle, "…")

		if rw.id == doc.CurrentID {
			line := indent + indicator + " " + title
			sb.WriteString(theme.Selected.Render(line))
		} else {
			sb.WriteString(indent)
			sb.WriteString(indicatorStyle.Render(indicator))
			sb.WriteString(" ")
			sb.WriteString(title)
		}
		if i < len(rows)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
