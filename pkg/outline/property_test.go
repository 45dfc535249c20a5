package outline

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/jigargosar/ingrid/pkg/model"
)

// applyCommand dispatches one numbered command on the controller.
func applyCommand(t *rapid.T, ctrl *Controller, op int) {
	var err error
	switch op {
	case 0:
		err = ctrl.AddLine()
	case 1:
		err = ctrl.MoveNext()
	case 2:
		err = ctrl.MovePrev()
	case 3:
		err = ctrl.Indent()
	case 4:
		err = ctrl.Outdent()
	case 5:
		err = ctrl.Expand()
	case 6:
		err = ctrl.Collapse()
	}
	if err != nil {
		t.Fatalf("command %d failed: %v", op, err)
	}
}

// TestCommandSequencesPreserveInvariants drives random command sequences
// from the initial model and re-checks the full structural contract after
// every single command.
func TestCommandSequencesPreserveInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		doc := model.NewDocument()
		ctrl := NewController(doc, &seqGen{})

		ops := rapid.SliceOfN(rapid.IntRange(0, 6), 1, 200).Draw(t, "ops")
		for _, op := range ops {
			applyCommand(t, ctrl, op)
			if err := CheckInvariants(doc); err != nil {
				t.Fatalf("invariants broken after command %d: %v", op, err)
			}
		}
	})
}

// TestMoveNextPrevInverse verifies that on any reachable document state,
// a moveNext that moved the cursor is undone by movePrev, and vice versa.
func TestMoveNextPrevInverse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		doc := model.NewDocument()
		ctrl := NewController(doc, &seqGen{})

		// Build an arbitrary tree shape first.
		ops := rapid.SliceOfN(rapid.IntRange(0, 6), 0, 60).Draw(t, "ops")
		for _, op := range ops {
			applyCommand(t, ctrl, op)
		}

		start := doc.CurrentID
		if err := ctrl.MoveNext(); err != nil {
			t.Fatalf("MoveNext: %v", err)
		}
		if doc.CurrentID != start {
			if err := ctrl.MovePrev(); err != nil {
				t.Fatalf("MovePrev: %v", err)
			}
			if doc.CurrentID != start {
				t.Fatalf("movePrev after moveNext landed on %s, want %s", doc.CurrentID, start)
			}
		}

		if err := ctrl.MovePrev(); err != nil {
			t.Fatalf("MovePrev: %v", err)
		}
		if doc.CurrentID != start {
			if err := ctrl.MoveNext(); err != nil {
				t.Fatalf("MoveNext: %v", err)
			}
			if doc.CurrentID != start {
				t.Fatalf("moveNext after movePrev landed on %s, want %s", doc.CurrentID, start)
			}
		}
	})
}

// TestIndentOutdentInverseProperty verifies that whenever indent changes
// the document, outdent restores the former parent and sibling position.
func TestIndentOutdentInverseProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		doc := model.NewDocument()
		ctrl := NewController(doc, &seqGen{})

		ops := rapid.SliceOfN(rapid.IntRange(0, 6), 0, 60).Draw(t, "ops")
		for _, op := range ops {
			applyCommand(t, ctrl, op)
		}

		current := doc.Current()
		if current.IsRoot() {
			return
		}
		parentID := ParentIDOf(current.ID, doc)
		parentBefore := append([]string(nil), doc.ByID[parentID].ChildIDs...)

		changed, err := Indent(doc)
		if err != nil {
			t.Fatalf("Indent: %v", err)
		}
		if !changed {
			return
		}
		if _, err := Outdent(doc); err != nil {
			t.Fatalf("Outdent: %v", err)
		}

		parentAfter := doc.ByID[parentID].ChildIDs
		if len(parentAfter) != len(parentBefore) {
			t.Fatalf("parent children = %v, want %v", parentAfter, parentBefore)
		}
		for i := range parentBefore {
			if parentAfter[i] != parentBefore[i] {
				t.Fatalf("parent children = %v, want %v", parentAfter, parentBefore)
			}
		}
		if err := CheckInvariants(doc); err != nil {
			t.Fatalf("invariants broken after indent/outdent pair: %v", err)
		}
	})
}
