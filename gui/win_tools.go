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
	"fmt"

	"github.com/inkyblackness/imgui-go/v4"
)

const winToolsID = "Tools"

// winTools selects the current tool and brush.
type winTools struct {
	windowManagement
	img *GUI
}

func newWinTools(img *GUI) *winTools {
	return &winTools{img: img}
}

func (win *winTools) id() string {
	return winToolsID
}

func (win *winTools) draw() {
	img := win.img
	tk := &img.toolkit

	imgui.SetNextWindowPosV(imgui.Vec2{X: 10, Y: 40}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.BeginV(winToolsID, &win.open, imgui.WindowFlagsAlwaysAutoResize)

	for t := toolID(0); t < numTools; t++ {
		if imgui.RadioButton(toolNames[t], tk.current == t) {
			tk.current = t
		}
	}

	if tk.current == toolRectangle {
		imgui.Checkbox("filled", &tk.filled)
	}

	imgui.Separator()

	imgui.Checkbox("round brush", &tk.brushRound)

	size := int32(tk.brushSize)
	if imgui.SliderInt("size", &size, 1, 16) {
		tk.brushSize = int(size)
	}

	// brushes grabbed from the drawing with the selection tool
	if brushes := img.view.Drawing.Brushes; len(brushes) > 0 {
		imgui.Separator()
		if imgui.SelectableV("shape brush", tk.imageBrush == -1, 0, imgui.Vec2{}) {
			tk.imageBrush = -1
		}
		for i, b := range brushes {
			w, h := b.Size()
			label := fmt.Sprintf("grabbed %d (%dx%d)", i, w, h)
			if imgui.SelectableV(label, tk.imageBrush == i, 0, imgui.Vec2{}) {
				tk.imageBrush = i
			}
		}
	}

	imgui.Separator()

	pal := img.view.Drawing.Palette()
	dim := imgui.Vec2{X: imgui.FrameHeight() * 1.5, Y: imgui.FrameHeight()}
	imguiColorButton(paletteVec4(pal.ForegroundColor()), "##foreground", dim)
	imgui.SameLine()
	imguiColorButton(paletteVec4(pal.BackgroundColor()), "##background", dim)
	imgui.SameLine()
	if imgui.Button("swap") {
		tk.swapColors(pal)
	}

	imgui.End()
}
