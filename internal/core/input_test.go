package core

import "testing"

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionNone)
	f.Set(ActionLeft)
	f.Set(ActionRotate)

	expected := []Action{ActionLeft, ActionLeft, ActionRotate}
	if len(f.Actions) != len(expected) {
		t.Fatalf("Actions = %v, expected %v", f.Actions, expected)
	}
	for i, a := range expected {
		if f.Actions[i] != a {
			t.Errorf("Actions[%d] = %v, expected %v", i, f.Actions[i], a)
		}
	}
}

func TestInputFrameHasAndClear(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionPause) {
		t.Error("Empty frame should not have Pause")
	}

	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Frame should have Pause after Set")
	}
	if f.Has(ActionHardDrop) {
		t.Error("Frame should not have HardDrop")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionPause) {
		t.Error("Frame should be empty after Clear")
	}
	if !clone.Has(ActionPause) {
		t.Error("Clone should not be affected by Clear")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionHardDrop, "HardDrop"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", int(tc.action), got, tc.expected)
		}
	}
}
