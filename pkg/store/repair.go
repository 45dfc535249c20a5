package store

import (
	"sort"

	"github.com/jigargosar/ingrid/pkg/model"
)

// Repair merges a cached (and possibly stale or damaged) snapshot over a
// freshly constructed default document and returns a document that holds
// all structural invariants:
//
//   - a missing root is recreated; the root title is forced
//   - dangling, duplicate, self and root-targeting child references are
//     dropped
//   - a node claimed by two parents keeps its first claim in sorted scan
//     order
//   - subtrees disconnected from the root (orphans and cycles) are
//     re-attached under the root, smallest id first
//   - a stale cursor falls back to the root
//
// Every choice is deterministic so that repairing the same snapshot twice
// yields the same document.
func Repair(cached *model.Document) *model.Document {
	doc := model.NewDocument()
	if cached == nil || cached.ByID == nil {
		return doc
	}

	// Overlay cached nodes onto the defaults.
	cachedIDs := make([]string, 0, len(cached.ByID))
	for id := range cached.ByID {
		cachedIDs = append(cachedIDs, id)
	}
	sort.Strings(cachedIDs)

	for _, id := range cachedIDs {
		n := cached.ByID[id]
		if id == "" || n == nil {
			continue
		}
		node := n.Clone()
		node.ID = id // the map key wins over a mismatched embedded id
		if id == model.RootID {
			node.Title = model.RootTitle
		}
		doc.ByID[id] = &node
	}

	sanitizeChildren(doc)
	dropDuplicateParents(doc)
	attachDisconnected(doc)

	if _, ok := doc.ByID[cached.CurrentID]; ok {
		doc.CurrentID = cached.CurrentID
	} else {
		doc.CurrentID = model.RootID
	}
	return doc
}

// sanitizeChildren drops child references that cannot be valid under any
// interpretation of the snapshot.
func sanitizeChildren(doc *model.Document) {
	for _, id := range doc.IDs() {
		n := doc.ByID[id]
		if len(n.ChildIDs) == 0 {
			continue
		}
		kept := n.ChildIDs[:0]
		seen := make(map[string]bool, len(n.ChildIDs))
		for _, childID := range n.ChildIDs {
			if childID == "" || childID == id || childID == model.RootID || seen[childID] {
				continue
			}
			if _, ok := doc.ByID[childID]; !ok {
				continue
			}
			seen[childID] = true
			kept = append(kept, childID)
		}
		n.ChildIDs = kept
	}
}

// dropDuplicateParents keeps each node's first parent claim in sorted scan
// order and removes the rest.
func dropDuplicateParents(doc *model.Document) {
	claimed := make(map[string]bool, len(doc.ByID))
	for _, id := range doc.IDs() {
		n := doc.ByID[id]
		kept := n.ChildIDs[:0]
		for _, childID := range n.ChildIDs {
			if claimed[childID] {
				continue
			}
			claimed[childID] = true
			kept = append(kept, childID)
		}
		n.ChildIDs = kept
	}
}

// attachDisconnected reparents subtrees unreachable from the root (true
// orphans and cycle members) under the root, smallest id first. Each pass
// strictly grows the reachable set, so this terminates.
func attachDisconnected(doc *model.Document) {
	parentOf := func() map[string]string {
		parents := make(map[string]string, len(doc.ByID))
		for id, n := range doc.ByID {
			for _, childID := range n.ChildIDs {
				parents[childID] = id
			}
		}
		return parents
	}

	for {
		reached := make(map[string]bool, len(doc.ByID))
		var walk func(id string)
		walk = func(id string) {
			if reached[id] {
				return
			}
			reached[id] = true
			for _, childID := range doc.ByID[id].ChildIDs {
				walk(childID)
			}
		}
		walk(model.RootID)

		var lost []string
		for _, id := range doc.IDs() {
			if !reached[id] {
				lost = append(lost, id)
			}
		}
		if len(lost) == 0 {
			return
		}

		// Re-attach the smallest lost id. If it sits inside a cycle, cut
		// the edge from its claimed parent first.
		id := lost[0]
		if parentID, ok := parentOf()[id]; ok {
			parent := doc.ByID[parentID]
			kept := parent.ChildIDs[:0]
			for _, childID := range parent.ChildIDs {
				if childID != id {
					kept = append(kept, childID)
				}
			}
			parent.ChildIDs = kept
		}
		root := doc.Root()
		root.ChildIDs = append(root.ChildIDs, id)
	}
}
