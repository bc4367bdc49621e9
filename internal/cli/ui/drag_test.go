package ui

import "testing"

func TestDrag_OffsetArithmetic(t *testing.T) {
	var d Drag
	d.PointerDown(100, 50, TargetNone)
	if !d.Dragging() {
		t.Fatalf("drag must start on a non-interactive target")
	}
	d.PointerMove(130, 70)
	if x, y := d.Position(); x != 30 || y != 20 {
		t.Fatalf("position after move: (%d,%d)", x, y)
	}
	d.PointerUp()
	if d.Dragging() {
		t.Fatalf("drag must end on pointer-up")
	}

	// a second gesture continues from the stuck position
	d.PointerDown(10, 10, TargetNone)
	d.PointerMove(15, 5)
	if x, y := d.Position(); x != 35 || y != 15 {
		t.Fatalf("position after second gesture: (%d,%d)", x, y)
	}
}

func TestDrag_SuppressedOnInteractiveTargets(t *testing.T) {
	for _, target := range []TargetKind{TargetInput, TargetTextarea, TargetSelect, TargetButton, TargetLink} {
		var d Drag
		d.PointerDown(40, 40, target)
		if d.Dragging() {
			t.Fatalf("drag must not start on %q", target)
		}
		d.PointerMove(80, 80)
		if x, y := d.Position(); x != 0 || y != 0 {
			t.Fatalf("position must not move for %q: (%d,%d)", target, x, y)
		}
	}
}

func TestDrag_MoveWithoutDownIsNoop(t *testing.T) {
	var d Drag
	d.PointerMove(500, 500)
	if x, y := d.Position(); x != 0 || y != 0 {
		t.Fatalf("move without down moved the modal: (%d,%d)", x, y)
	}
}
