// Package model defines the outline document: a flat id-indexed node store
// with forward (parent to child) links only. Backward links are derived on
// demand by the outline package and are never stored, so they can never
// drift from the childIds they are computed from.
package model

import (
	"fmt"
	"sort"
)

// RootID is the well-known id of the root node. The root always exists,
// has no parent, and is never destroyed.
const RootID = "ROOT"

// RootTitle is the fixed display title of the root node.
const RootTitle = "Root"

// Node is a single titled line of the outline.
type Node struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Collapsed bool     `json:"collapsed,omitempty"`
	ChildIDs  []string `json:"childIds"`
}

// NewNode creates a node with the given id and title and no children.
func NewNode(id, title string) *Node {
	return &Node{ID: id, Title: title}
}

// Clone creates a deep copy of the node.
func (n Node) Clone() Node {
	clone := n
	if n.ChildIDs != nil {
		clone.ChildIDs = make([]string, len(n.ChildIDs))
		copy(clone.ChildIDs, n.ChildIDs)
	}
	return clone
}

// Validate checks if the node data is logically valid.
func (n *Node) Validate() error {
	if n.ID == "" {
		return fmt.Errorf("node ID cannot be empty")
	}
	if n.ID == RootID && n.Title != RootTitle {
		return fmt.Errorf("root node title must be %q, got %q", RootTitle, n.Title)
	}
	seen := make(map[string]bool, len(n.ChildIDs))
	for _, childID := range n.ChildIDs {
		if childID == "" {
			return fmt.Errorf("node %s has an empty child id", n.ID)
		}
		if childID == n.ID {
			return fmt.Errorf("node %s lists itself as a child", n.ID)
		}
		if seen[childID] {
			return fmt.Errorf("node %s lists child %s twice", n.ID, childID)
		}
		seen[childID] = true
	}
	return nil
}

// IsRoot reports whether this node is the distinguished root.
func (n *Node) IsRoot() bool {
	return n.ID == RootID
}

// HasChildren reports whether the node has at least one child.
func (n *Node) HasChildren() bool {
	return len(n.ChildIDs) > 0
}

// CanCollapse reports whether a collapse command would change the node:
// it must have children and currently show them.
func (n *Node) CanCollapse() bool {
	return n.HasChildren() && !n.Collapsed
}

// CanExpand reports whether an expand command would change the node:
// it must have children and currently hide them.
func (n *Node) CanExpand() bool {
	return n.HasChildren() && n.Collapsed
}

// Document aggregates the node store and the cursor. It is the unit of
// validation and persistence: {byId, currentId} is exactly the snapshot
// handed to the store after every command.
type Document struct {
	ByID      map[string]*Node `json:"byId"`
	CurrentID string           `json:"currentId"`
}

// NewDocument creates a document containing only the root node, with the
// cursor on the root.
func NewDocument() *Document {
	root := NewNode(RootID, RootTitle)
	return &Document{
		ByID:      map[string]*Node{RootID: root},
		CurrentID: RootID,
	}
}

// Node returns the node with the given id, if present.
func (d *Document) Node(id string) (*Node, bool) {
	n, ok := d.ByID[id]
	return n, ok
}

// Root returns the root node. The root is created at initialization and
// never removed, so this only returns nil on a corrupted document.
func (d *Document) Root() *Node {
	return d.ByID[RootID]
}

// Current returns the node under the cursor, or nil on a corrupted document.
func (d *Document) Current() *Node {
	return d.ByID[d.CurrentID]
}

// Len returns the number of nodes in the document, root included.
func (d *Document) Len() int {
	return len(d.ByID)
}

// IDs returns all node ids in sorted order. Useful for deterministic
// iteration over the otherwise unordered store.
func (d *Document) IDs() []string {
	ids := make([]string, 0, len(d.ByID))
	for id := range d.ByID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clone creates a deep copy of the document.
func (d *Document) Clone() *Document {
	clone := &Document{
		ByID:      make(map[string]*Node, len(d.ByID)),
		CurrentID: d.CurrentID,
	}
	for id, n := range d.ByID {
		c := n.Clone()
		clone.ByID[id] = &c
	}
	return clone
}

// Validate checks the document's shape contract: every node is keyed by its
// own id and individually valid, the root exists, and the cursor resolves.
// Structural invariants (reachability, acyclicity, single parent) are
// checked by outline.CheckInvariants, which owns the derived parent index.
func (d *Document) Validate() error {
	if d.ByID == nil {
		return fmt.Errorf("document byId map is nil")
	}
	for id, n := range d.ByID {
		if n == nil {
			return fmt.Errorf("document entry %s is nil", id)
		}
		if n.ID != id {
			return fmt.Errorf("document entry %s holds node with id %s", id, n.ID)
		}
		if err := n.Validate(); err != nil {
			return fmt.Errorf("invalid node %s: %w", id, err)
		}
	}
	if d.Root() == nil {
		return fmt.Errorf("document has no root node (id %s)", RootID)
	}
	if d.CurrentID == "" {
		return fmt.Errorf("document currentId is empty")
	}
	if _, ok := d.ByID[d.CurrentID]; !ok {
		return fmt.Errorf("document currentId %s does not resolve to a node", d.CurrentID)
	}
	return nil
}
