package input

import (
	"github.com/chewxy/math32"
	"github.com/joomcode/errorx"
)

// Config selects which device inputs drive which trackball operations.
// It is supplied by the embedder and only kept in memory.
type Config struct {
	// RotateButton starts a rotate drag when pressed with RotateMods held.
	// Releasing it ends the drag. Zero disables rotation.
	RotateButton Button
	RotateMods   Modifier

	// PanButton starts a pan drag when pressed with PanMods held.
	// Releasing it ends the drag. Zero disables the binding.
	PanButton Button
	PanMods   Modifier

	// AltPanButton is a second pan binding, by default the rotate button with
	// shift held. Exact modifier bindings win over AnyModifiers bindings.
	AltPanButton Button
	AltPanMods   Modifier

	// ZoomScroll maps scroll deltas to Zoom. When false scrolling is ignored.
	ZoomScroll bool

	// ZoomAtCursor zooms about the point under the pointer in orbit mode
	// rather than about the target.
	ZoomAtCursor bool

	// ClickToFocus slides the target to the clicked point when the rotate
	// button is released without moving, in orbit mode.
	ClickToFocus bool

	// ResetKey maps a key press to Reset. KeyUnknown disables it.
	ResetKey Key

	// ToggleFirstPersonKey maps a key press to ToggleFirstPerson.
	ToggleFirstPersonKey Key

	// ToggleOrthographicKey maps a key press to ToggleOrthographic.
	ToggleOrthographicKey Key

	// RotationSensitivity scales normalized drag displacement before it is
	// turned into a rotation. At 1 a drag of one trackball radius rotates by
	// one radian.
	RotationSensitivity float32

	// PanSensitivity scales pan offsets. At 1 the point at target depth
	// follows the pointer.
	PanSensitivity float32

	// ZoomSensitivity scales scroll deltas: each unit scales distance (orbit)
	// or field of view (first person) by exp(-ZoomSensitivity).
	ZoomSensitivity float32
}

// DefaultConfig returns the default input configuration.
func DefaultConfig() Config {
	return Config{
		RotateButton:          ButtonLeft,
		RotateMods:            AnyModifiers,
		PanButton:             ButtonRight,
		PanMods:               AnyModifiers,
		AltPanButton:          ButtonLeft,
		AltPanMods:            ModShift,
		ZoomScroll:            true,
		ZoomAtCursor:          true,
		ClickToFocus:          true,
		ResetKey:              KeyEnter,
		ToggleFirstPersonKey:  KeyF,
		ToggleOrthographicKey: KeyO,
		RotationSensitivity:   1,
		PanSensitivity:        1,
		ZoomSensitivity:       0.1,
	}
}

// Validate reports configuration errors.
func (c Config) Validate() error {
	for _, s := range []struct {
		name  string
		value float32
	}{
		{"rotation sensitivity", c.RotationSensitivity},
		{"pan sensitivity", c.PanSensitivity},
		{"zoom sensitivity", c.ZoomSensitivity},
	} {
		if math32.IsNaN(s.value) || math32.IsInf(s.value, 0) || s.value <= 0 {
			return errorx.IllegalArgument.New("%s must be positive and finite, got %v", s.name, s.value)
		}
	}
	if c.RotateButton != 0 && c.RotateButton == c.PanButton && c.RotateMods == c.PanMods {
		return errorx.IllegalArgument.New("rotate and pan share the binding %v+%v", c.RotateButton, c.RotateMods)
	}
	if c.RotateButton != 0 && c.RotateButton == c.AltPanButton && c.RotateMods == c.AltPanMods {
		return errorx.IllegalArgument.New("rotate and alternate pan share the binding %v+%v", c.RotateButton, c.RotateMods)
	}

	keys := map[Key]string{}
	for _, k := range []struct {
		name string
		key  Key
	}{
		{"reset", c.ResetKey},
		{"toggle first person", c.ToggleFirstPersonKey},
		{"toggle orthographic", c.ToggleOrthographicKey},
	} {
		if k.key == KeyUnknown {
			continue
		}
		if other, ok := keys[k.key]; ok {
			return errorx.IllegalArgument.New("%s and %s share the key %v", other, k.name, k.key)
		}
		keys[k.key] = k.name
	}
	return nil
}

type trigger int

const (
	triggerButton trigger = iota
	triggerKey
)

type binding struct {
	trigger trigger
	code    int
	mods    Modifier
}

// Table is an immutable mapping from device bindings to operations.
type Table struct {
	entries    map[binding]OpKind
	dragButton map[Button]bool
	zoomScroll bool
}

// NewTable builds the mapping table for cfg.
func NewTable(cfg Config) (*Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errorx.Decorate(err, "invalid input configuration")
	}

	t := &Table{
		entries:    map[binding]OpKind{},
		dragButton: map[Button]bool{},
		zoomScroll: cfg.ZoomScroll,
	}

	t.button(cfg.RotateButton, cfg.RotateMods, BeginRotate)
	t.button(cfg.PanButton, cfg.PanMods, BeginPan)
	t.button(cfg.AltPanButton, cfg.AltPanMods, BeginPan)
	t.key(cfg.ResetKey, Reset)
	t.key(cfg.ToggleFirstPersonKey, ToggleFirstPerson)
	t.key(cfg.ToggleOrthographicKey, ToggleOrthographic)

	return t, nil
}

func (t *Table) button(b Button, mods Modifier, kind OpKind) {
	if b == 0 {
		return
	}
	t.entries[binding{triggerButton, int(b), mods}] = kind
	t.dragButton[b] = true
}

func (t *Table) key(k Key, kind OpKind) {
	if k == KeyUnknown {
		return
	}
	t.entries[binding{triggerKey, int(k), AnyModifiers}] = kind
}

// lookup finds the exact modifier binding first, then the AnyModifiers one.
func (t *Table) lookup(tr trigger, code int, mods Modifier) (OpKind, bool) {
	if kind, ok := t.entries[binding{tr, code, mods &^ AnyModifiers}]; ok {
		return kind, true
	}
	kind, ok := t.entries[binding{tr, code, AnyModifiers}]
	return kind, ok
}
