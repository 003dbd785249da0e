package input

import "fmt"

// EventKind specifies the kind of a raw device event.
type EventKind int

// Event kinds.
const (
	PointerMoved EventKind = iota
	ButtonChanged
	Scrolled
	KeyChanged
	Resized
)

func (k EventKind) String() string {
	switch k {
	case PointerMoved:
		return "PointerMoved"
	case ButtonChanged:
		return "ButtonChanged"
	case Scrolled:
		return "Scrolled"
	case KeyChanged:
		return "KeyChanged"
	case Resized:
		return "Resized"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Button is a pointer button.
type Button int

// Pointer buttons.
const (
	ButtonLeft Button = iota + 1
	ButtonRight
	ButtonMiddle
)

// Modifier is a bit set of held modifier keys.
type Modifier uint8

// Modifier bits.
const (
	ModShift Modifier = 1 << iota
	ModControl
	ModAlt
	ModSuper

	// AnyModifiers matches a binding regardless of held modifiers.
	AnyModifiers Modifier = 1 << 7
)

// Key is a keyboard key.
type Key int

// Keys known to the default configuration and the host adapters.
const (
	KeyUnknown Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyEnter
	KeyEscape
	KeySpace
	KeyBackspace
	KeyTab
	KeyLeftShift
	KeyRightShift
)

// Event is a raw device event received from the host's event loop.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind EventKind

	// PointerMoved: pointer position in pixels, origin at the top left.
	X, Y float32

	// ButtonChanged.
	Button Button

	// KeyChanged.
	Key Key

	// ButtonChanged and KeyChanged.
	Pressed bool
	Mods    Modifier

	// Scrolled: positive scrolls in (zoom in).
	Delta float32

	// Resized: framebuffer size in pixels.
	Width, Height float32
}

// PointerMove creates a PointerMoved event.
func PointerMove(x, y float32) Event {
	return Event{Kind: PointerMoved, X: x, Y: y}
}

// ButtonChange creates a ButtonChanged event.
func ButtonChange(b Button, pressed bool, mods Modifier) Event {
	return Event{Kind: ButtonChanged, Button: b, Pressed: pressed, Mods: mods}
}

// Scroll creates a Scrolled event.
func Scroll(delta float32) Event {
	return Event{Kind: Scrolled, Delta: delta}
}

// KeyChange creates a KeyChanged event.
func KeyChange(k Key, pressed bool, mods Modifier) Event {
	return Event{Kind: KeyChanged, Key: k, Pressed: pressed, Mods: mods}
}

// Resize creates a Resized event.
func Resize(width, height float32) Event {
	return Event{Kind: Resized, Width: width, Height: height}
}
