package input

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// OpKind specifies an abstract trackball operation.
type OpKind int

// Trackball operations.
const (
	BeginRotate OpKind = iota
	BeginPan
	ContinueDrag
	EndDrag
	Zoom
	Reset
	ToggleFirstPerson
	ToggleOrthographic
	SetViewport
)

func (k OpKind) String() string {
	switch k {
	case BeginRotate:
		return "BeginRotate"
	case BeginPan:
		return "BeginPan"
	case ContinueDrag:
		return "ContinueDrag"
	case EndDrag:
		return "EndDrag"
	case Zoom:
		return "Zoom"
	case Reset:
		return "Reset"
	case ToggleFirstPerson:
		return "ToggleFirstPerson"
	case ToggleOrthographic:
		return "ToggleOrthographic"
	case SetViewport:
		return "SetViewport"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is an abstract trackball operation produced by the Mapper.
type Op struct {
	Kind OpKind

	// ContinueDrag: pointer position in pixels.
	Pos mgl32.Vec2

	// Zoom: scroll amount, positive zooms in.
	Delta float32

	// SetViewport: framebuffer size in pixels.
	Size mgl32.Vec2
}

// Drag creates a ContinueDrag operation.
func Drag(x, y float32) Op {
	return Op{Kind: ContinueDrag, Pos: mgl32.Vec2{x, y}}
}

// ZoomBy creates a Zoom operation.
func ZoomBy(delta float32) Op {
	return Op{Kind: Zoom, Delta: delta}
}

// Viewport creates a SetViewport operation.
func Viewport(width, height float32) Op {
	return Op{Kind: SetViewport, Size: mgl32.Vec2{width, height}}
}

// Of creates an operation that carries no arguments.
func Of(kind OpKind) Op {
	return Op{Kind: kind}
}
