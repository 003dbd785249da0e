// Package glfwhost feeds GLFW window events into an input queue.
package glfwhost

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/mgnsk/trackball/pkg/input"
)

var keys = map[glfw.Key]input.Key{
	glfw.KeyEnter:      input.KeyEnter,
	glfw.KeyKPEnter:    input.KeyEnter,
	glfw.KeyEscape:     input.KeyEscape,
	glfw.KeySpace:      input.KeySpace,
	glfw.KeyBackspace:  input.KeyBackspace,
	glfw.KeyTab:        input.KeyTab,
	glfw.KeyLeftShift:  input.KeyLeftShift,
	glfw.KeyRightShift: input.KeyRightShift,
}

// Key translates a GLFW key.
func Key(k glfw.Key) input.Key {
	if k >= glfw.KeyA && k <= glfw.KeyZ {
		return input.KeyA + input.Key(k-glfw.KeyA)
	}
	if key, ok := keys[k]; ok {
		return key
	}
	return input.KeyUnknown
}

// Button translates a GLFW mouse button.
func Button(b glfw.MouseButton) (input.Button, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return input.ButtonLeft, true
	case glfw.MouseButtonRight:
		return input.ButtonRight, true
	case glfw.MouseButtonMiddle:
		return input.ButtonMiddle, true
	default:
		return 0, false
	}
}

// Mods translates GLFW modifier bits.
func Mods(m glfw.ModifierKey) input.Modifier {
	var mods input.Modifier
	if m&glfw.ModShift != 0 {
		mods |= input.ModShift
	}
	if m&glfw.ModControl != 0 {
		mods |= input.ModControl
	}
	if m&glfw.ModAlt != 0 {
		mods |= input.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		mods |= input.ModSuper
	}
	return mods
}

// Attach installs callbacks on win that push events to q. Pointer positions are
// reported in framebuffer pixels. The current framebuffer size is pushed first.
// Events arrive during glfw.PollEvents, drain q after polling.
func Attach(win *glfw.Window, q *input.Queue) {
	pixelScale := func() (float32, float32) {
		ww, wh := win.GetSize()
		fw, fh := win.GetFramebufferSize()
		if ww == 0 || wh == 0 {
			return 1, 1
		}
		return float32(fw) / float32(ww), float32(fh) / float32(wh)
	}

	fw, fh := win.GetFramebufferSize()
	q.Push(input.Resize(float32(fw), float32(fh)))

	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		sx, sy := pixelScale()
		q.Push(input.PointerMove(float32(x)*sx, float32(y)*sy))
	})

	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		b, ok := Button(button)
		if !ok || action == glfw.Repeat {
			return
		}
		q.Push(input.ButtonChange(b, action == glfw.Press, Mods(mods)))
	})

	win.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		q.Push(input.Scroll(float32(yoff)))
	})

	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}
		q.Push(input.KeyChange(Key(key), action == glfw.Press, Mods(mods)))
	})

	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		q.Push(input.Resize(float32(width), float32(height)))
	})
}
