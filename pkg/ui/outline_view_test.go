package ui

import (
	"strings"
	"testing"

	"github.com/jigargosar/ingrid/pkg/model"
)

// newViewDoc builds the rendering fixture:
//
//	ROOT
//	  a          (expanded)
//	    a1
//	  b          (collapsed)
//	    b1
//	  c          (leaf)
func newViewDoc() *model.Document {
	doc := model.NewDocument()
	doc.ByID["a"] = &model.Node{ID: "a", Title: "alpha", ChildIDs: []string{"a1"}}
	doc.ByID["a1"] = &model.Node{ID: "a1", Title: "alpha one"}
	doc.ByID["b"] = &model.Node{ID: "b", Title: "bravo", Collapsed: true, ChildIDs: []string{"b1"}}
	doc.ByID["b1"] = &model.Node{ID: "b1", Title: "bravo one"}
	doc.ByID["c"] = &model.Node{ID: "c", Title: "charlie"}
	doc.Root().ChildIDs = []string{"a", "b", "c"}
	return doc
}

// TestVisibleRows verifies collapsed subtrees are skipped and depth tracks
// nesting.
func TestVisibleRows(t *testing.T) {
	rows := visibleRows(newViewDoc())

	want := []row{
		{id: model.RootID, depth: 0},
		{id: "a", depth: 1},
		{id: "a1", depth: 2},
		{id: "b", depth: 1},
		{id: "c", depth: 1},
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d: %v", len(rows), len(want), rows)
	}
	for i, r := range rows {
		if r != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, r, want[i])
		}
	}
}

// TestRowIndexOf verifies hidden nodes report -1.
func TestRowIndexOf(t *testing.T) {
	rows := visibleRows(newViewDoc())

	if got := rowIndexOf(rows, "a1"); got != 2 {
		t.Errorf("rowIndexOf(a1) = %d, want 2", got)
	}
	if got := rowIndexOf(rows, "b1"); got != -1 {
		t.Errorf("rowIndexOf(b1) = %d, want -1 for hidden node", got)
	}
	if got := rowIndexOf(rows, "nope"); got != -1 {
		t.Errorf("rowIndexOf(nope) = %d, want -1", got)
	}
}

// TestExpandIndicator covers the three marker states.
func TestExpandIndicator(t *testing.T) {
	doc := newViewDoc()

	cases := []struct {
		id   string
		want string
	}{
		{"c", "•"},
		{"b", "▸"},
		{"a", "▾"},
	}
	for _, tc := range cases {
		n, _ := doc.Node(tc.id)
		if got := expandIndicator(n); got != tc.want {
			t.Errorf("expandIndicator(%s) = %q, want %q", tc.id, got, tc.want)
		}
	}
}

// TestRenderOutlineLines verifies one line per visible row, with titles and
// indentation.
func TestRenderOutlineLines(t *testing.T) {
	doc := newViewDoc()
	out := renderOutline(doc, DefaultTheme(testRenderer()), 80)

	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[2], "alpha one") {
		t.Errorf("line 2 = %q, want the nested title", lines[2])
	}
	if !strings.HasPrefix(lines[2], "    ") {
		t.Errorf("line 2 = %q, want two-level indent", lines[2])
	}
	if strings.Contains(out, "bravo one") {
		t.Error("collapsed child should not be rendered")
	}
}

// TestRenderOutlineTruncates verifies long titles are cut to the viewport
// width.
func TestRenderOutlineTruncates(t *testing.T) {
	doc := model.NewDocument()
	doc.ByID["a"] = &model.Node{ID: "a", Title: strings.Repeat("x", 200)}
	doc.Root().ChildIDs = []string{"a"}

	out := renderOutline(doc, DefaultTheme(testRenderer()), 40)
	for _, line := range strings.Split(out, "\n") {
		if strings.Count(line, "x") > 40 {
			t.Errorf("line not truncated to width: %d x's", strings.Count(line, "x"))
		}
	}
	if !strings.Contains(out, "…") {
		t.Error("expected truncation ellipsis")
	}
}
