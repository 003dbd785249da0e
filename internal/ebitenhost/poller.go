// Package ebitenhost turns ebiten's per-tick input state into input events.
package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/mgnsk/trackball/pkg/input"
)

var buttons = []struct {
	ebiten ebiten.MouseButton
	input  input.Button
}{
	{ebiten.MouseButtonLeft, input.ButtonLeft},
	{ebiten.MouseButtonRight, input.ButtonRight},
	{ebiten.MouseButtonMiddle, input.ButtonMiddle},
}

var keys = map[ebiten.Key]input.Key{
	ebiten.KeyEnter:       input.KeyEnter,
	ebiten.KeyNumpadEnter: input.KeyEnter,
	ebiten.KeyEscape:      input.KeyEscape,
	ebiten.KeySpace:       input.KeySpace,
	ebiten.KeyBackspace:   input.KeyBackspace,
	ebiten.KeyTab:         input.KeyTab,
	ebiten.KeyShiftLeft:   input.KeyLeftShift,
	ebiten.KeyShiftRight:  input.KeyRightShift,
}

// Key translates an ebiten key.
func Key(k ebiten.Key) input.Key {
	if k >= ebiten.KeyA && k <= ebiten.KeyZ {
		return input.KeyA + input.Key(k-ebiten.KeyA)
	}
	if key, ok := keys[k]; ok {
		return key
	}
	return input.KeyUnknown
}

// Mods returns the held modifier keys.
func Mods() input.Modifier {
	var mods input.Modifier
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= input.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= input.ModControl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= input.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= input.ModSuper
	}
	return mods
}

// Poller diffs input state between ticks. Call Poll once per Update.
type Poller struct {
	x, y          int
	width, height int
	polled        bool
	keys          []ebiten.Key
}

// Poll pushes the events of the current tick to q. width and height are the
// layout size in pixels.
func (p *Poller) Poll(q *input.Queue, width, height int) {
	if !p.polled || width != p.width || height != p.height {
		p.width, p.height = width, height
		q.Push(input.Resize(float32(width), float32(height)))
	}

	// Motion before buttons so a press anchors at the current position.
	x, y := ebiten.CursorPosition()
	if !p.polled || x != p.x || y != p.y {
		p.x, p.y = x, y
		q.Push(input.PointerMove(float32(x), float32(y)))
	}
	p.polled = true

	mods := Mods()
	for _, b := range buttons {
		switch {
		case inpututil.IsMouseButtonJustPressed(b.ebiten):
			q.Push(input.ButtonChange(b.input, true, mods))
		case inpututil.IsMouseButtonJustReleased(b.ebiten):
			q.Push(input.ButtonChange(b.input, false, mods))
		}
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		q.Push(input.Scroll(float32(dy)))
	}

	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		q.Push(input.KeyChange(Key(k), true, mods))
	}
	p.keys = inpututil.AppendJustReleasedKeys(p.keys[:0])
	for _, k := range p.keys {
		q.Push(input.KeyChange(Key(k), false, mods))
	}
}
