package outline

import (
	"github.com/jigargosar/ingrid/pkg/model"
)

// Mutation operations follow a strict no-op policy: a structurally
// ineligible command (indent on a first child, outdent directly under the
// root, expand on a leaf) leaves the document unchanged and is not an
// error. Errors are reserved for invariant breaches. Every operation
// resolves all lookups before touching the document, so a returned error
// always means the document was left in its pre-call state.

// indexOf returns the position of id within ids, or -1.
func indexOf(ids []string, id string) int {
	for i, candidate := range ids {
		if candidate == id {
			return i
		}
	}
	return -1
}

// removeAt returns ids without the element at position i.
func removeAt(ids []string, i int) []string {
	return append(ids[:i:i], ids[i+1:]...)
}

// insertAt returns ids with id spliced in at position i.
func insertAt(ids []string, i int, id string) []string {
	out := make([]string, 0, len(ids)+1)
	out = append(out, ids[:i]...)
	out = append(out, id)
	out = append(out, ids[i:]...)
	return out
}

// InsertChildLast registers newNode and appends it to the end of parent's
// children. Used when a new line is requested with the cursor on the root.
func InsertChildLast(parent, newNode *model.Node, doc *model.Document) error {
	if _, ok := doc.Node(parent.ID); !ok {
		return notFound(parent.ID, "byId")
	}
	doc.ByID[newNode.ID] = newNode
	parent.ChildIDs = append(parent.ChildIDs, newNode.ID)
	return nil
}

// InsertSiblingAfter registers newNode and splices it into after's
// parent's children immediately following after. A cursor node missing
// from its own parent's recorded children is a broken invariant and
// reported as ErrNotFound.
func InsertSiblingAfter(after, newNode *model.Node, doc *model.Document) error {
	parent, err := ParentOf(after, doc)
	if err != nil {
		return err
	}
	idx := indexOf(parent.ChildIDs, after.ID)
	if idx < 0 {
		return notFound(after.ID, "parent "+parent.ID+" childIds")
	}
	doc.ByID[newNode.ID] = newNode
	parent.ChildIDs = insertAt(parent.ChildIDs, idx+1, newNode.ID)
	return nil
}

// Indent moves the current node to become the last child of its previous
// sibling, which is force-expanded so the moved node stays visible. No-op
// when the cursor is on the root or on a first child. The cursor id is
// unchanged. Reports whether the document changed.
func Indent(doc *model.Document) (bool, error) {
	current := doc.Current()
	if current == nil || current.IsRoot() {
		return false, nil
	}
	prevSibID, err := PrevSiblingID(current, doc)
	if err != nil {
		return false, err
	}
	if prevSibID == "" {
		return false, nil
	}
	parent, err := ParentOf(current, doc)
	if err != nil {
		return false, err
	}
	prevSib, ok := doc.Node(prevSibID)
	if !ok {
		return false, notFound(prevSibID, "byId")
	}
	idx := indexOf(parent.ChildIDs, current.ID)
	if idx < 0 {
		return false, notFound(current.ID, "parent "+parent.ID+" childIds")
	}

	parent.ChildIDs = removeAt(parent.ChildIDs, idx)
	prevSib.ChildIDs = append(prevSib.ChildIDs, current.ID)
	prevSib.Collapsed = false
	return true, nil
}

// Outdent moves the current node up one level, inserted among the
// grandparent's children immediately after its former parent. No-op when
// the cursor is on the root or on a direct child of the root. The cursor
// id is unchanged. Reports whether the document changed.
func Outdent(doc *model.Document) (bool, error) {
	current := doc.Current()
	if current == nil || current.IsRoot() {
		return false, nil
	}
	parent, err := ParentOf(current, doc)
	if err != nil {
		return false, err
	}
	if parent.IsRoot() {
		return false, nil
	}
	grandparent, err := ParentOf(parent, doc)
	if err != nil {
		return false, err
	}
	childIdx := indexOf(parent.ChildIDs, current.ID)
	if childIdx < 0 {
		return false, notFound(current.ID, "parent "+parent.ID+" childIds")
	}
	parentIdx := indexOf(grandparent.ChildIDs, parent.ID)
	if parentIdx < 0 {
		return false, notFound(parent.ID, "grandparent "+grandparent.ID+" childIds")
	}

	parent.ChildIDs = removeAt(parent.ChildIDs, childIdx)
	grandparent.ChildIDs = insertAt(grandparent.ChildIDs, parentIdx+1, current.ID)
	return true, nil
}

// Expand reveals the current node's children. No-op unless the node has
// children and is collapsed. Reports whether the document changed.
func Expand(doc *model.Document) bool {
	current := doc.Current()
	if current == nil || !current.CanExpand() {
		return false
	}
	current.Collapsed = false
	return true
}

// Collapse hides the current node's children. No-op unless the node has
// children and is expanded. Reports whether the document changed.
func Collapse(doc *model.Document) bool {
	current := doc.Current()
	if current == nil || !current.CanCollapse() {
		return false
	}
	current.Collapsed = true
	return true
}
