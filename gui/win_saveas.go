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
)

const winSaveAsID = "Save As"

// winSaveAs asks for the path of the file to save the drawing to. opened
// from the file menu and when saving a drawing that has never had a path.
type winSaveAs struct {
	windowManagement
	img *GUI

	path string
}

func newWinSaveAs(img *GUI) *winSaveAs {
	return &winSaveAs{img: img}
}

func (win *winSaveAs) id() string {
	return winSaveAsID
}

func (win *winSaveAs) setOpen(open bool) {
	if open {
		win.path = win.img.view.Drawing.Path()
	}
	win.open = open
}

func (win *winSaveAs) draw() {
	imgui.SetNextWindowPosV(imgui.Vec2{X: 400, Y: 300}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.BeginV(winSaveAsID, &win.open, imgui.WindowFlagsAlwaysAutoResize)

	save := imgui.InputTextV("##path", &win.path,
		imgui.InputTextFlagsEnterReturnsTrue, nil)

	if imgui.Button("Save") {
		save = true
	}
	imgui.SameLine()
	if imgui.Button("Cancel") {
		win.open = false
	}

	if save && win.path != "" {
		win.img.saveAs(win.path)
		win.open = false
	}

	imgui.End()
}
