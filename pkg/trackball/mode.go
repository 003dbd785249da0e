package trackball

import "fmt"

// Mode selects orbit or first person semantics.
type Mode int

// Modes.
const (
	// Orbit moves the eye on a sphere around the target. Zoom changes
	// the distance, the field of view is fixed.
	Orbit Mode = iota

	// FirstPerson keeps the eye fixed and turns the look direction. Zoom changes
	// the field of view, the distance is fixed.
	FirstPerson
)

func (m Mode) String() string {
	switch m {
	case Orbit:
		return "Orbit"
	case FirstPerson:
		return "FirstPerson"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// DragKind is the gesture of an active drag.
type DragKind int

// Drag kinds.
const (
	DragRotate DragKind = iota
	DragPan
)

func (k DragKind) String() string {
	switch k {
	case DragRotate:
		return "Rotate"
	case DragPan:
		return "Pan"
	default:
		return fmt.Sprintf("DragKind(%d)", int(k))
	}
}
