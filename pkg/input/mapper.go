package input

// Mapper classifies raw device events into trackball operations.
// It keeps no per-event state.
type Mapper struct {
	table *Table
}

// NewMapper creates a mapper over a mapping table.
func NewMapper(table *Table) *Mapper {
	return &Mapper{table: table}
}

// NewDefaultMapper creates a mapper for DefaultConfig.
func NewDefaultMapper() *Mapper {
	t, err := NewTable(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return NewMapper(t)
}

// Map translates a single event. The second return value is false when the
// event maps to nothing.
func (m *Mapper) Map(e Event) (Op, bool) {
	switch e.Kind {
	case PointerMoved:
		return Drag(e.X, e.Y), true

	case ButtonChanged:
		if !e.Pressed {
			if m.table.dragButton[e.Button] {
				return Of(EndDrag), true
			}
			return Op{}, false
		}
		if kind, ok := m.table.lookup(triggerButton, int(e.Button), e.Mods); ok {
			return Of(kind), true
		}

	case Scrolled:
		if m.table.zoomScroll && e.Delta != 0 {
			return ZoomBy(e.Delta), true
		}

	case KeyChanged:
		if !e.Pressed {
			return Op{}, false
		}
		if kind, ok := m.table.lookup(triggerKey, int(e.Key), e.Mods); ok {
			return Of(kind), true
		}

	case Resized:
		return Viewport(e.Width, e.Height), true
	}

	return Op{}, false
}

// MapAll translates events in order, skipping unmapped ones.
func (m *Mapper) MapAll(events []Event) []Op {
	ops := make([]Op, 0, len(events))
	for _, e := range events {
		if op, ok := m.Map(e); ok {
			ops = append(ops, op)
		}
	}
	return ops
}
