// Package outline implements the outline engine on top of the document
// model: the derived parent index, pre-order traversal, the structural
// mutation operations, and the cursor controller that binds them into
// named keyboard commands.
package outline

import (
	"github.com/jigargosar/ingrid/pkg/model"
)

// BuildParentIndex derives the child-to-parent mapping by scanning every
// node's childIds. The index is computed per query and never cached across
// mutations: there is no second source of truth to drift from the forward
// links. Cost is O(nodes + child references), fine for interactively
// sized documents.
func BuildParentIndex(doc *model.Document) map[string]string {
	parents := make(map[string]string, len(doc.ByID))
	for id, n := range doc.ByID {
		for _, childID := range n.ChildIDs {
			parents[childID] = id
		}
	}
	return parents
}

// ParentIDOf returns the parent id of the given node, or "" if the node is
// the root or unreferenced.
func ParentIDOf(nodeID string, doc *model.Document) string {
	return BuildParentIndex(doc)[nodeID]
}

// ParentOf resolves the parent node of n. The root has no parent, so
// callers must check IsRoot first; asking for the root's parent (or the
// parent of an unreferenced node) returns ErrNotFound.
func ParentOf(n *model.Node, doc *model.Document) (*model.Node, error) {
	parentID := ParentIDOf(n.ID, doc)
	if parentID == "" {
		return nil, notFound(n.ID, "parent index")
	}
	parent, ok := doc.Node(parentID)
	if !ok {
		return nil, notFound(parentID, "byId")
	}
	return parent, nil
}
