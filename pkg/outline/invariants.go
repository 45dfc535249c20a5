package outline

import (
	"fmt"

	"github.com/jigargosar/ingrid/pkg/model"
)

// CheckInvariants verifies the structural contract of the document on top
// of the shape contract checked by Document.Validate:
//
//  1. every id reachable from the root via childIds exists in byId
//  2. the child graph is a tree rooted at RootID: no cycles, no node with
//     two parents, no node unreachable from the root
//  3. currentId resolves to an existing node
//
// It is invoked after every mutation; a non-nil result denotes a core
// defect, not bad user input.
func CheckInvariants(doc *model.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	// Single-parent check over the whole store.
	owner := make(map[string]string, len(doc.ByID))
	for _, id := range doc.IDs() {
		n := doc.ByID[id]
		for _, childID := range n.ChildIDs {
			if _, ok := doc.ByID[childID]; !ok {
				return fmt.Errorf("node %s references missing child %s", id, childID)
			}
			if childID == model.RootID {
				return fmt.Errorf("node %s claims the root as a child", id)
			}
			if prev, claimed := owner[childID]; claimed {
				return fmt.Errorf("node %s has two parents: %s and %s", childID, prev, id)
			}
			owner[childID] = id
		}
	}

	// Walk from the root; the single-parent check above means each node is
	// visited at most once unless there is a cycle through the root's
	// reachable set.
	reached := make(map[string]bool, len(doc.ByID))
	var walk func(id string, onPath map[string]bool) error
	walk = func(id string, onPath map[string]bool) error {
		if onPath[id] {
			return fmt.Errorf("cycle detected through node %s", id)
		}
		onPath[id] = true
		reached[id] = true
		for _, childID := range doc.ByID[id].ChildIDs {
			if err := walk(childID, onPath); err != nil {
				return err
			}
		}
		delete(onPath, id)
		return nil
	}
	if err := walk(model.RootID, make(map[string]bool)); err != nil {
		return err
	}

	for _, id := range doc.IDs() {
		if !reached[id] {
			return fmt.Errorf("node %s is not reachable from the root", id)
		}
	}
	return nil
}
