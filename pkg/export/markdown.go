// Package export provides data export functionality for ingrid.
package export

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jigargosar/ingrid/pkg/model"
)

// GenerateMarkdown renders the whole outline as a nested Markdown bullet
// list with a short summary header. The export covers the full structure;
// collapse state only affects the on-screen view, not the document.
func GenerateMarkdown(doc *model.Document, title string) (string, error) {
	if err := doc.Validate(); err != nil {
		return "", fmt.Errorf("refusing to export invalid document: %w", err)
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", title))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", time.Now().Format(time.RFC1123)))

	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- **Lines**: %d\n", doc.Len()-1))
	sb.WriteString(fmt.Sprintf("- **Depth**: %d\n\n", maxDepth(doc)))

	sb.WriteString("## Outline\n\n")
	root := doc.Root()
	if len(root.ChildIDs) == 0 {
		sb.WriteString("_Empty outline._\n")
		return sb.String(), nil
	}
	for _, childID := range root.ChildIDs {
		writeBullets(&sb, doc, childID, 0)
	}
	return sb.String(), nil
}

// WriteMarkdown generates the report and writes it to path.
func WriteMarkdown(doc *model.Document, title, path string) error {
	content, err := GenerateMarkdown(doc, title)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write markdown export: %w", err)
	}
	return nil
}

// writeBullets emits one node and recurses into its children.
func writeBullets(sb *strings.Builder, doc *model.Document, id string, depth int) {
	n, ok := doc.Node(id)
	if !ok {
		return
	}
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString("- ")
	sb.WriteString(n.Title)
	sb.WriteString("\n")
	for _, childID := range n.ChildIDs {
		writeBullets(sb, doc, childID, depth+1)
	}
}

// maxDepth returns the depth of the deepest line, with direct children of
// the root at depth 1.
func maxDepth(doc *model.Document) int {
	var depthOf func(id string, depth int) int
	depthOf = func(id string, depth int) int {
		n, ok := doc.Node(id)
		if !ok {
			return depth
		}
		deepest := depth
		for _, childID := range n.ChildIDs {
			if d := depthOf(childID, depth+1); d > deepest {
				deepest = d
			}
		}
		return deepest
	}
	return depthOf(model.RootID, 0)
}
