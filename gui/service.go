// This file is part of Voxpaint.
//
// Voxpaint is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Voxpaint is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Voxpaint.  If not, see <https://www.gnu.org/licenses/>.

package gui

import (
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/voxpaint/voxpaint/drawing"
	"github.com/voxpaint/voxpaint/geometry"
	"github.com/voxpaint/voxpaint/logger"
	"github.com/voxpaint/voxpaint/plugin"
	"github.com/voxpaint/voxpaint/stroke"
)

// Service is one iteration of the gui: poll input, advance the autosaver,
// draw and present. Returns false when the application should end.
//
// MUST ONLY be called from the gui thread.
func (img *GUI) Service() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			img.quit = true

		case *sdl.TextInputEvent:
			img.io.AddInputCharacters(string(ev.Text[:]))

		case *sdl.KeyboardEvent:
			img.serviceKeyboard(ev)

		case *sdl.MouseWheelEvent:
			var deltaX, deltaY float32
			if ev.X > 0 {
				deltaX++
			} else if ev.X < 0 {
				deltaX--
			}
			if ev.Y > 0 {
				deltaY++
			} else if ev.Y < 0 {
				deltaY--
			}
			img.io.AddMouseWheelDelta(-deltaX/4, deltaY/4)
		}
	}

	img.autosave.service()

	img.renderFrame()

	return !img.quit
}

func (img *GUI) renderFrame() {
	img.plt.newFrame()
	imgui.NewFrame()

	img.draw()

	// this call only creates the draw data list. actual rendering to the
	// framebuffer is done below
	imgui.Render()

	img.rnd.preRender()
	img.screen.render()
	img.rnd.render()
	img.plt.postRender()
}

func (img *GUI) serviceKeyboard(ev *sdl.KeyboardEvent) {
	if ev.Repeat == 1 {
		return
	}

	if ev.Type == sdl.KEYUP && !imgui.IsAnyItemActive() {
		handled := true

		shift := ev.Keysym.Mod&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT || ev.Keysym.Mod&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT
		ctrl := ev.Keysym.Mod&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL || ev.Keysym.Mod&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL

		switch ev.Keysym.Scancode {
		case sdl.SCANCODE_ESCAPE:
			// an in-progress stroke is abandoned rather than committed
			img.endStroke(true)

		case sdl.SCANCODE_Z:
			if ctrl && shift {
				img.redo()
			} else if ctrl {
				img.undo()
			} else {
				handled = false
			}

		case sdl.SCANCODE_Y:
			if ctrl {
				img.redo()
			} else {
				handled = false
			}

		case sdl.SCANCODE_S:
			if ctrl {
				img.save()
			} else {
				handled = false
			}

		case sdl.SCANCODE_PAGEUP:
			img.doView(func(v *drawing.View) { v.PrevLayer() })

		case sdl.SCANCODE_PAGEDOWN:
			img.doView(func(v *drawing.View) { v.NextLayer() })

		case sdl.SCANCODE_H:
			img.doView(func(v *drawing.View) { v.ToggleLayer() })

		case sdl.SCANCODE_X:
			if !ctrl {
				img.toolkit.swapColors(img.view.Drawing.Palette())
			} else {
				handled = false
			}

		case sdl.SCANCODE_EQUALS:
			img.zoom(1)

		case sdl.SCANCODE_MINUS:
			img.zoom(-1)

		default:
			handled = false
		}

		if !handled && !ctrl && !shift {
			handled = img.toolkit.selectByKey(ev.Keysym.Scancode)
		}

		if handled {
			return
		}
	}

	// remaining keypresses forwarded to imgui io system
	switch ev.Type {
	case sdl.KEYDOWN:
		img.io.KeyPress(int(ev.Keysym.Scancode))
		img.plt.updateKeyModifier()
	case sdl.KEYUP:
		img.io.KeyRelease(int(ev.Keysym.Scancode))
		img.plt.updateKeyModifier()
	}
}

func (img *GUI) zoom(delta int) {
	z := img.view.Zoom + delta
	if z < 1 {
		z = 1
	}
	if z > 32 {
		z = 32
	}
	img.view.Zoom = z
}

// doView queues a view manipulation on the executor, where it is ordered
// with strokes and other edits.
func (img *GUI) doView(f func(v *drawing.View)) {
	v := img.view
	img.exec.Do(func() { f(v) })
}

// doViewErr is doView for manipulations that can fail. failure is logged.
func (img *GUI) doViewErr(f func(v *drawing.View) error) {
	v := img.view
	img.exec.Do(func() {
		if err := f(v); err != nil {
			logger.Logf(logger.Allow, "gui", "%v", err)
		}
	})
}

// runPlugin queues the named plugin on the executor, where it runs as a
// single reversible edit.
func (img *GUI) runPlugin(name string) {
	d := img.view.Drawing
	img.exec.Do(func() {
		if err := plugin.Run(name, d); err != nil {
			logger.Logf(logger.Allow, "gui", "%v", err)
		}
	})
}

func (img *GUI) undo() {
	d := img.view.Drawing
	img.exec.Do(func() {
		if _, ok := d.CanUndo(); ok {
			d.Undo()
		}
	})
}

func (img *GUI) redo() {
	d := img.view.Drawing
	img.exec.Do(func() {
		if _, ok := d.CanRedo(); ok {
			d.Redo()
		}
	})
}

// beginStroke builds a tool from the current toolkit state and queues the
// stroke on the executor. background selects the palette's background color.
func (img *GUI) beginStroke(p geometry.Point, background bool) {
	if img.strokeEvents != nil {
		img.endStroke(true)
	}

	t := img.toolkit.make(img.view.Drawing, background)
	img.strokeEvents = img.exec.Stroke(img.view, t, nil)
	img.strokeEvents <- stroke.Event{Kind: stroke.Begin, Pos: p}
	img.lastStrokePos = p
}

// strokeDraw forwards a pointer movement to the in-progress stroke.
func (img *GUI) strokeDraw(p geometry.Point) {
	if img.strokeEvents == nil {
		return
	}
	select {
	case img.strokeEvents <- stroke.Event{Kind: stroke.Draw, Pos: p}:
		img.lastStrokePos = p
	default:
		// the tool has fallen behind; this position coalesces into the next
	}
}

// endStroke finishes the in-progress stroke, committing it unless abort is
// set. safe to call when no stroke is in progress.
func (img *GUI) endStroke(abort bool) {
	if img.strokeEvents == nil {
		return
	}

	kind := stroke.End
	if abort {
		kind = stroke.Abort
	}

	// the terminal event must reach the stroke worker or it waits on the
	// channel forever. the send can stall briefly when the tool has fallen
	// behind but the worker always drains the channel
	img.strokeEvents <- stroke.Event{Kind: kind, Pos: img.lastStrokePos}
	img.strokeEvents = nil
}
