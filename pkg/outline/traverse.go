package outline

import (
	"github.com/jigargosar/ingrid/pkg/model"
)

// The traversal engine walks the actual tree structure. It deliberately
// ignores the collapsed flag: navigation covers the complete document even
// when the renderer hides collapsed children. The rendering-level
// visibility filter is VisibleChildren, which is separate.

// FirstChildID returns the first child id of n, or "" if n is childless.
func FirstChildID(n *model.Node) string {
	if len(n.ChildIDs) == 0 {
		return ""
	}
	return n.ChildIDs[0]
}

// siblingID returns the id offset positions away from n within its
// parent's childIds, or "" when n is the root or the offset falls outside
// the sibling list. Returns ErrNotFound when n is missing from its own
// parent's recorded children, which indicates a broken invariant.
func siblingID(n *model.Node, doc *model.Document, offset int) (string, error) {
	if n.IsRoot() {
		return "", nil
	}
	parent, err := ParentOf(n, doc)
	if err != nil {
		return "", err
	}
	idx := -1
	for i, childID := range parent.ChildIDs {
		if childID == n.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return "", notFound(n.ID, "parent "+parent.ID+" childIds")
	}
	at := idx + offset
	if at < 0 || at >= len(parent.ChildIDs) {
		return "", nil
	}
	return parent.ChildIDs[at], nil
}

// NextSiblingID returns the id of the sibling following n, or "" if n is
// the root or the last of its siblings.
func NextSiblingID(n *model.Node, doc *model.Document) (string, error) {
	return siblingID(n, doc, 1)
}

// PrevSiblingID returns the id of the sibling preceding n, or "" if n is
// the root or the first of its siblings.
func PrevSiblingID(n *model.Node, doc *model.Document) (string, error) {
	return siblingID(n, doc, -1)
}

// NextSiblingOfNearestAncestor walks upward from n until an ancestor with
// a next sibling is found, returning that sibling's id, or "" once the
// root is reached. Terminates because the tree has finite depth and the
// root has no parent.
func NextSiblingOfNearestAncestor(n *model.Node, doc *model.Document) (string, error) {
	current := n
	for !current.IsRoot() {
		parent, err := ParentOf(current, doc)
		if err != nil {
			return "", err
		}
		siblingID, err := NextSiblingID(parent, doc)
		if err != nil {
			return "", err
		}
		if siblingID != "" {
			return siblingID, nil
		}
		current = parent
	}
	return "", nil
}

// LastDescendantOrSelf descends repeatedly into the last child starting
// from nodeID, returning the first childless node reached. Terminates only
// because the tree is finite and acyclic; invariant preservation is what
// guarantees this never loops.
func LastDescendantOrSelf(nodeID string, doc *model.Document) (string, error) {
	current, ok := doc.Node(nodeID)
	if !ok {
		return "", notFound(nodeID, "byId")
	}
	for current.HasChildren() {
		lastID := current.ChildIDs[len(current.ChildIDs)-1]
		next, ok := doc.Node(lastID)
		if !ok {
			return "", notFound(lastID, "byId")
		}
		current = next
	}
	return current.ID, nil
}

// NextID computes the pre-order successor of n: first child, else next
// sibling, else the next sibling of the nearest ancestor. Returns "" at
// the end of the document.
func NextID(n *model.Node, doc *model.Document) (string, error) {
	if id := FirstChildID(n); id != "" {
		return id, nil
	}
	id, err := NextSiblingID(n, doc)
	if err != nil || id != "" {
		return id, err
	}
	return NextSiblingOfNearestAncestor(n, doc)
}

// PrevID computes the pre-order predecessor of n: the last descendant of
// the previous sibling if one exists, else n's parent. Returns "" when n
// is the root.
func PrevID(n *model.Node, doc *model.Document) (string, error) {
	if n.IsRoot() {
		return "", nil
	}
	prevSibID, err := PrevSiblingID(n, doc)
	if err != nil {
		return "", err
	}
	if prevSibID != "" {
		return LastDescendantOrSelf(prevSibID, doc)
	}
	return ParentIDOf(n.ID, doc), nil
}

// VisibleChildren is the rendering-level visibility filter: the node's
// children in order when the node shows them, else nothing. Distinct from
// the traversal above, which ignores collapse.
func VisibleChildren(n *model.Node, doc *model.Document) []*model.Node {
	if !n.CanCollapse() {
		return nil
	}
	children := make([]*model.Node, 0, len(n.ChildIDs))
	for _, childID := range n.ChildIDs {
		if child, ok := doc.Node(childID); ok {
			children = append(children, child)
		}
	}
	return children
}
