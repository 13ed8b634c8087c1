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
	"github.com/voxpaint/voxpaint/drawing"
	"github.com/voxpaint/voxpaint/plugin"
)

// window is any imgui window managed by the manager.
type window interface {
	id() string
	isOpen() bool
	setOpen(open bool)
	draw()
}

// windowManagement is the open/close state common to all managed windows.
// embed in the window implementation.
type windowManagement struct {
	open bool
}

func (wm *windowManagement) isOpen() bool {
	return wm.open
}

func (wm *windowManagement) setOpen(open bool) {
	wm.open = open
}

// manager handles the main menu and the collection of managed windows.
type manager struct {
	img *GUI

	canvas  *winCanvas
	tools   *winTools
	layers  *winLayers
	palette *winPalette
	log     *winLog
	saveAs  *winSaveAs

	// list of the above, in draw order
	windows []window
}

func newManager(img *GUI) *manager {
	wm := &manager{
		img:     img,
		canvas:  newWinCanvas(img),
		tools:   newWinTools(img),
		layers:  newWinLayers(img),
		palette: newWinPalette(img),
		log:     newWinLog(img),
		saveAs:  newWinSaveAs(img),
	}

	wm.windows = []window{
		wm.canvas, wm.tools, wm.layers, wm.palette, wm.log, wm.saveAs,
	}

	wm.canvas.setOpen(true)
	wm.tools.setOpen(true)
	wm.layers.setOpen(true)
	wm.palette.setOpen(true)

	return wm
}

// draw is called by service loop
func (wm *manager) draw() {
	wm.drawMenu()
	for _, w := range wm.windows {
		if w.isOpen() {
			w.draw()
		}
	}
}

func (wm *manager) drawMenu() {
	if imgui.BeginMainMenuBar() == false {
		return
	}

	img := wm.img

	if imgui.BeginMenu("File") {
		if imgui.Selectable("Save") {
			img.save()
		}
		if imgui.Selectable("Save As...") {
			wm.saveAs.setOpen(true)
		}

		recent := img.prf.recent.List()
		if len(recent) > 0 {
			imgui.Separator()
			if imgui.BeginMenu("Recent") {
				for _, p := range recent {
					if imgui.Selectable(p) {
						img.open(p)
					}
				}
				imgui.EndMenu()
			}
		}

		imgui.Separator()
		if imgui.Selectable("Quit") {
			img.quit = true
		}
		imgui.EndMenu()
	}

	if imgui.BeginMenu("Edit") {
		// the undo/redo stacks belong to the executor goroutine so the menu
		// cannot peek at the name of the pending edit. the queued function
		// checks whether there is anything to do
		if imgui.Selectable("Undo") {
			img.undo()
		}
		if imgui.Selectable("Redo") {
			img.redo()
		}
		imgui.EndMenu()
	}

	if imgui.BeginMenu("View") {
		rotationMenu("Turn X", func(amount int) {
			img.doView(func(v *drawing.View) { v.Rotate(amount, 0, 0) })
		})
		rotationMenu("Turn Y", func(amount int) {
			img.doView(func(v *drawing.View) { v.Rotate(0, amount, 0) })
		})
		rotationMenu("Turn Z", func(amount int) {
			img.doView(func(v *drawing.View) { v.Rotate(0, 0, amount) })
		})
		imgui.Separator()
		if imgui.Selectable("Zoom In") {
			img.zoom(1)
		}
		if imgui.Selectable("Zoom Out") {
			img.zoom(-1)
		}
		imgui.EndMenu()
	}

	if imgui.BeginMenu("Layer") {
		if imgui.Selectable("Insert") {
			img.doViewErr(func(v *drawing.View) error { return v.InsertLayer() })
		}
		if imgui.Selectable("Duplicate") {
			img.doViewErr(func(v *drawing.View) error { return v.DuplicateLayer() })
		}
		if imgui.Selectable("Delete") {
			img.doViewErr(func(v *drawing.View) error { return v.DeleteLayer() })
		}
		imgui.Separator()
		if imgui.Selectable("Move Towards Viewer") {
			img.doViewErr(func(v *drawing.View) error { return v.MoveLayer(-1) })
		}
		if imgui.Selectable("Move Away From Viewer") {
			img.doViewErr(func(v *drawing.View) error { return v.MoveLayer(1) })
		}
		imgui.EndMenu()
	}

	if imgui.BeginMenu("Volume") {
		// rotations and flips of the whole volume happen about the axis the
		// viewer is looking along
		if imgui.Selectable("Rotate Clockwise") {
			img.doViewErr(func(v *drawing.View) error {
				return v.Drawing.Rotate(1, v.Axis())
			})
		}
		if imgui.Selectable("Rotate Anticlockwise") {
			img.doViewErr(func(v *drawing.View) error {
				return v.Drawing.Rotate(-1, v.Axis())
			})
		}
		if imgui.Selectable("Flip") {
			img.doViewErr(func(v *drawing.View) error {
				return v.Drawing.Flip(v.Axis())
			})
		}
		imgui.EndMenu()
	}

	if names := plugin.Names(); len(names) > 0 {
		if imgui.BeginMenu("Plugins") {
			for _, n := range names {
				if imgui.Selectable(n) {
					img.runPlugin(n)
				}
			}
			imgui.EndMenu()
		}
	}

	if imgui.BeginMenu("Windows") {
		for _, w := range wm.windows {
			if w == wm.saveAs {
				continue
			}
			if imgui.SelectableV(w.id(), w.isOpen(), 0, imgui.Vec2{}) {
				w.setOpen(!w.isOpen())
			}
		}
		imgui.EndMenu()
	}

	imgui.EndMainMenuBar()
}
