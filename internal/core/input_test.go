package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionLeft) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionLeft)
	f.Set(ActionUp)
	if !f.Has(ActionLeft) || !f.Has(ActionUp) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("unset action reported as held")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear should remove actions")
	}
	if !clone.Has(ActionLeft) {
		t.Error("Clone should not share the action map")
	}
}

func TestInputFrameClickEdge(t *testing.T) {
	f := NewInputFrame()
	f.Click(V(10, 20))

	if !f.Clicked || f.Cursor != V(10, 20) {
		t.Fatalf("Click() did not record edge, got %+v", f)
	}

	f.ResetClicked()
	if f.Clicked {
		t.Error("ResetClicked should clear the edge")
	}
	if f.Cursor != V(10, 20) {
		t.Error("ResetClicked should keep the cursor")
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" {
		t.Errorf("ActionLeft.String() = %q, expected %q", ActionLeft.String(), "Left")
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q, expected Unknown", Action(99).String())
	}
}
