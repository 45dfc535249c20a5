package outline

import (
	"github.com/jigargosar/ingrid/pkg/model"
)

// Generator supplies fresh ids and placeholder titles for new lines. The
// title side is deliberately swappable; see namegen for the default.
type Generator interface {
	NewID() string
	NewTitle() string
}

// Controller is the command surface of the editor: seven named,
// argument-free actions over a single shared document. It owns no state
// beyond references; the cursor lives in the document itself so it
// survives a round-trip through the persistence cache.
//
// Commands run synchronously and exactly one at a time. Each one finishes
// with a full invariant check; a violation is returned as *InvariantError
// and is expected to be treated as fatal by the dispatch boundary.
type Controller struct {
	doc      *model.Document
	gen      Generator
	onChange func(doc *model.Document)
}

// NewController creates a controller over doc using gen for new lines.
func NewController(doc *model.Document, gen Generator) *Controller {
	return &Controller{doc: doc, gen: gen}
}

// Document returns the shared document. Callers must not mutate it while
// a command is in flight.
func (c *Controller) Document() *model.Document {
	return c.doc
}

// SetOnChange registers a notification hook invoked after every command
// that changed the document (structure or cursor). The hook observes the
// fully-post state only; this is where persistence is driven from.
func (c *Controller) SetOnChange(fn func(doc *model.Document)) {
	c.onChange = fn
}

// finish validates the post-state and fires the change notification.
func (c *Controller) finish(op string, changed bool) error {
	if !changed {
		return nil
	}
	if err := CheckInvariants(c.doc); err != nil {
		return &InvariantError{Op: op, Cause: err}
	}
	if c.onChange != nil {
		c.onChange(c.doc)
	}
	return nil
}

// currentNode resolves the cursor node, turning an unresolvable cursor
// into the same fatal error path a post-mutation check would take.
func (c *Controller) currentNode(op string) (*model.Node, error) {
	current := c.doc.Current()
	if current == nil {
		return nil, &InvariantError{Op: op, Cause: notFound(c.doc.CurrentID, "byId")}
	}
	return current, nil
}

// freshID draws ids from the generator until one is unused. A collision
// essentially never happens with the default generator, but a cheap
// membership check keeps the uniqueness contract unconditional.
func (c *Controller) freshID() string {
	for {
		id := c.gen.NewID()
		if _, taken := c.doc.ByID[id]; !taken && id != "" {
			return id
		}
	}
}

// AddLine creates a new node and moves the cursor to it: as the root's
// last child when the cursor is on the root, otherwise as the current
// node's next sibling. This is the only way new nodes are created.
func (c *Controller) AddLine() error {
	current, err := c.currentNode("addLine")
	if err != nil {
		return err
	}
	newNode := model.NewNode(c.freshID(), c.gen.NewTitle())

	if current.IsRoot() {
		err = InsertChildLast(current, newNode, c.doc)
	} else {
		err = InsertSiblingAfter(current, newNode, c.doc)
	}
	if err != nil {
		return &InvariantError{Op: "addLine", Cause: err}
	}
	c.doc.CurrentID = newNode.ID
	return c.finish("addLine", true)
}

// MoveNext moves the cursor one pre-order step down the document. No-op
// at the last node.
func (c *Controller) MoveNext() error {
	current, err := c.currentNode("moveNext")
	if err != nil {
		return err
	}
	id, err := NextID(current, c.doc)
	if err != nil {
		return &InvariantError{Op: "moveNext", Cause: err}
	}
	if id == "" {
		return nil
	}
	c.doc.CurrentID = id
	return c.finish("moveNext", true)
}

// MovePrev moves the cursor one pre-order step up the document. No-op on
// the root.
func (c *Controller) MovePrev() error {
	current, err := c.currentNode("movePrev")
	if err != nil {
		return err
	}
	id, err := PrevID(current, c.doc)
	if err != nil {
		return &InvariantError{Op: "movePrev", Cause: err}
	}
	if id == "" {
		return nil
	}
	c.doc.CurrentID = id
	return c.finish("movePrev", true)
}

// Indent nests the current node under its previous sibling.
func (c *Controller) Indent() error {
	changed, err := Indent(c.doc)
	if err != nil {
		return &InvariantError{Op: "indent", Cause: err}
	}
	return c.finish("indent", changed)
}

// Outdent lifts the current node to its parent's level.
func (c *Controller) Outdent() error {
	changed, err := Outdent(c.doc)
	if err != nil {
		return &InvariantError{Op: "outdent", Cause: err}
	}
	return c.finish("outdent", changed)
}

// Expand reveals the current node's children.
func (c *Controller) Expand() error {
	return c.finish("expand", Expand(c.doc))
}

// Collapse hides the current node's children.
func (c *Controller) Collapse() error {
	return c.finish("collapse", Collapse(c.doc))
}

// SetTitle replaces the current node's title. The root's title is fixed.
// Reports nothing to the caller beyond errors: an unchanged title is a
// no-op like every other ineligible command.
func (c *Controller) SetTitle(title string) error {
	current, err := c.currentNode("setTitle")
	if err != nil {
		return err
	}
	if current.IsRoot() || current.Title == title {
		return nil
	}
	current.Title = title
	return c.finish("setTitle", true)
}
