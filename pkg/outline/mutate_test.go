package outline

import (
	"testing"

	"github.com/jigargosar/ingrid/pkg/model"
)

// checkAfter asserts the document still holds all invariants after a
// mutation under test.
func checkAfter(t *testing.T, doc *model.Document) {
	t.Helper()
	if err := CheckInvariants(doc); err != nil {
		t.Fatalf("invariants broken after mutation: %v", err)
	}
}

// childIDs returns the recorded children of id.
func childIDs(t *testing.T, doc *model.Document, id string) []string {
	t.Helper()
	return mustNode(t, doc, id).ChildIDs
}

// TestInsertChildLast verifies new nodes land at the end of the parent's
// children.
func TestInsertChildLast(t *testing.T) {
	doc := model.NewDocument()
	root := doc.Root()

	first := model.NewNode("n1", "First")
	if err := InsertChildLast(root, first, doc); err != nil {
		t.Fatalf("InsertChildLast: %v", err)
	}
	second := model.NewNode("n2", "Second")
	if err := InsertChildLast(root, second, doc); err != nil {
		t.Fatalf("InsertChildLast: %v", err)
	}

	got := childIDs(t, doc, model.RootID)
	if len(got) != 2 || got[0] != "n1" || got[1] != "n2" {
		t.Errorf("root children = %v, want [n1 n2]", got)
	}
	checkAfter(t, doc)
}

// TestInsertSiblingAfter verifies splicing directly after the reference
// node, not at the end.
func TestInsertSiblingAfter(t *testing.T) {
	doc := newFixtureDoc(t)

	n := model.NewNode("x", "Spliced")
	if err := InsertSiblingAfter(mustNode(t, doc, "a1"), n, doc); err != nil {
		t.Fatalf("InsertSiblingAfter: %v", err)
	}

	got := childIDs(t, doc, "a")
	want := []string{"a1", "x", "a2"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("a children = %v, want %v", got, want)
		}
	}
	checkAfter(t, doc)
}

// TestIndentMovesUnderPreviousSibling verifies indent reparents under the
// previous sibling, appends last, and force-expands the new parent.
func TestIndentMovesUnderPreviousSibling(t *testing.T) {
	doc := newFixtureDoc(t)
	b := mustNode(t, doc, "b")
	b.Collapsed = true
	doc.CurrentID = "d"

	changed, err := Indent(doc)
	if err != nil {
		t.Fatalf("Indent: %v", err)
	}
	if !changed {
		t.Fatal("expected indent to change the document")
	}

	rootChildren := childIDs(t, doc, model.RootID)
	if len(rootChildren) != 2 || rootChildren[1] != "b" {
		t.Errorf("root children = %v, want [a b]", rootChildren)
	}
	bChildren := childIDs(t, doc, "b")
	if len(bChildren) != 2 || bChildren[1] != "d" {
		t.Errorf("b children = %v, want [b1 d]", bChildren)
	}
	if b.Collapsed {
		t.Error("expected the new parent to be force-expanded")
	}
	if doc.CurrentID != "d" {
		t.Errorf("cursor moved to %s, want unchanged d", doc.CurrentID)
	}
	checkAfter(t, doc)
}

// TestIndentNoOps verifies indent does nothing on the root and on first
// children.
func TestIndentNoOps(t *testing.T) {
	doc := newFixtureDoc(t)

	doc.CurrentID = model.RootID
	if changed, err := Indent(doc); err != nil || changed {
		t.Errorf("Indent(root) = %v, %v; want no-op", changed, err)
	}

	doc.CurrentID = "a1" // first child of a
	if changed, err := Indent(doc); err != nil || changed {
		t.Errorf("Indent(first child) = %v, %v; want no-op", changed, err)
	}

	doc.CurrentID = "a" // first child of root
	if changed, err := Indent(doc); err != nil || changed {
		t.Errorf("Indent(first top-level) = %v, %v; want no-op", changed, err)
	}
	checkAfter(t, doc)
}

// TestOutdentInsertsAfterFormerParent verifies outdent lifts the node to
// the grandparent level directly after its former parent.
func TestOutdentInsertsAfterFormerParent(t *testing.T) {
	doc := newFixtureDoc(t)
	doc.CurrentID = "a21"

	changed, err := Outdent(doc)
	if err != nil {
		t.Fatalf("Outdent: %v", err)
	}
	if !changed {
		t.Fatal("expected outdent to change the document")
	}

	if got := childIDs(t, doc, "a2"); len(got) != 0 {
		t.Errorf("a2 children = %v, want empty", got)
	}
	got := childIDs(t, doc, "a")
	want := []string{"a1", "a2", "a21"}
	if len(got) != len(want) {
		t.Fatalf("a children = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("a children[%d] = %s, want %s", i, got[i], want[i])
		}
	}
	if doc.CurrentID != "a21" {
		t.Errorf("cursor moved to %s, want unchanged a21", doc.CurrentID)
	}
	checkAfter(t, doc)
}

// TestOutdentNoOps verifies outdent does nothing on the root and on
// direct children of the root.
func TestOutdentNoOps(t *testing.T) {
	doc := newFixtureDoc(t)

	doc.CurrentID = model.RootID
	if changed, err := Outdent(doc); err != nil || changed {
		t.Errorf("Outdent(root) = %v, %v; want no-op", changed, err)
	}

	doc.CurrentID = "b" // direct child of root
	if changed, err := Outdent(doc); err != nil || changed {
		t.Errorf("Outdent(top-level) = %v, %v; want no-op", changed, err)
	}
	checkAfter(t, doc)
}

// TestIndentOutdentInverse verifies outdent restores the position an
// indent moved away from.
func TestIndentOutdentInverse(t *testing.T) {
	doc := newFixtureDoc(t)
	doc.CurrentID = "a2" // second child of a

	before := append([]string(nil), childIDs(t, doc, "a")...)

	if changed, err := Indent(doc); err != nil || !changed {
		t.Fatalf("Indent = %v, %v; want change", changed, err)
	}
	if changed, err := Outdent(doc); err != nil || !changed {
		t.Fatalf("Outdent = %v, %v; want change", changed, err)
	}

	after := childIDs(t, doc, "a")
	if len(after) != len(before) {
		t.Fatalf("a children = %v, want %v", after, before)
	}
	for i := range before {
		if after[i] != before[i] {
			t.Errorf("a children[%d] = %s, want %s", i, after[i], before[i])
		}
	}
	checkAfter(t, doc)
}

// TestCollapseGating verifies expand/collapse only fire when eligible and
// always flip to the opposite state.
func TestCollapseGating(t *testing.T) {
	doc := newFixtureDoc(t)

	// Leaf: neither applies.
	doc.CurrentID = "d"
	if Expand(doc) || Collapse(doc) {
		t.Error("expected leaf expand/collapse to be no-ops")
	}

	// Expanded parent: collapse fires, expand does not.
	doc.CurrentID = "a"
	if Expand(doc) {
		t.Error("expand on an expanded parent must be a no-op")
	}
	if !Collapse(doc) {
		t.Error("collapse on an expanded parent must fire")
	}
	if !mustNode(t, doc, "a").Collapsed {
		t.Error("collapse must set the flag")
	}

	// Now collapsed: expand fires, collapse does not.
	if Collapse(doc) {
		t.Error("collapse on a collapsed parent must be a no-op")
	}
	if !Expand(doc) {
		t.Error("expand on a collapsed parent must fire")
	}
	if mustNode(t, doc, "a").Collapsed {
		t.Error("expand must clear the flag")
	}
	checkAfter(t, doc)
}
