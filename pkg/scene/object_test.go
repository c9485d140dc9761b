package scene

import "testing"

// TestNewObject_UniqueIDs verifies every object gets a distinct non-zero ID.
func TestNewObject_UniqueIDs(t *testing.T) {
	a := NewObject("a")
	b := NewObject("a")

	if a.ID() == 0 || b.ID() == 0 {
		t.Error("objects should have non-zero IDs")
	}
	if a.ID() == b.ID() {
		t.Error("objects should have different IDs even with equal names")
	}
}

// TestObject_Name verifies name retention and the diagnostic form.
func TestObject_Name(t *testing.T) {
	o := NewObject("badge")
	if o.Name() != "badge" {
		t.Errorf("Name = %q, want %q", o.Name(), "badge")
	}
	if o.String() != "badge" {
		t.Errorf("String = %q, want %q", o.String(), "badge")
	}
}
