package ui

// TargetKind names the widget under the pointer when a drag gesture starts.
type TargetKind string

const (
	TargetNone     TargetKind = ""
	TargetInput    TargetKind = "input"
	TargetTextarea TargetKind = "textarea"
	TargetSelect   TargetKind = "select"
	TargetButton   TargetKind = "button"
	TargetLink     TargetKind = "link"
)

// interactive widgets must keep their clicks; a drag never starts on them.
var interactiveTargets = map[TargetKind]bool{
	TargetInput:    true,
	TargetTextarea: true,
	TargetSelect:   true,
	TargetButton:   true,
	TargetLink:     true,
}

// Drag is the free-form repositioning behavior shared by the modal views:
// pointer-down captures the offset between the pointer and the current
// position, pointer-move recomputes the position from that offset, and
// pointer-up releases the gesture.
type Drag struct {
	dragging         bool
	posX, posY       int
	offsetX, offsetY int
}

// PointerDown starts a drag unless the pointer landed on an interactive
// child widget, so buttons, inputs and links inside the modal keep working.
func (d *Drag) PointerDown(x, y int, target TargetKind) {
	if interactiveTargets[target] {
		return
	}
	d.dragging = true
	d.offsetX = x - d.posX
	d.offsetY = y - d.posY
}

// PointerMove updates the position while a drag is active; otherwise it is
// a no-op.
func (d *Drag) PointerMove(x, y int) {
	if !d.dragging {
		return
	}
	d.posX = x - d.offsetX
	d.posY = y - d.offsetY
}

// PointerUp ends the gesture; the position sticks.
func (d *Drag) PointerUp() {
	d.dragging = false
}

// Dragging reports whether a gesture is in progress.
func (d *Drag) Dragging() bool {
	return d.dragging
}

// Position returns the accumulated offset from the modal's initial spot.
func (d *Drag) Position() (x, y int) {
	return d.posX, d.posY
}
