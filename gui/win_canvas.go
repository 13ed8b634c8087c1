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
	"github.com/voxpaint/voxpaint/geometry"
)

const winCanvasID = "Canvas"

// winCanvas is the window in which the drawing is displayed and edited.
type winCanvas struct {
	windowManagement
	img *GUI

	// screen coordinates of the drawn image. used to convert the mouse
	// position to a cell coordinate
	imagePosMin imgui.Vec2
	imagePosMax imgui.Vec2
}

func newWinCanvas(img *GUI) *winCanvas {
	return &winCanvas{img: img}
}

func (win *winCanvas) id() string {
	return winCanvasID
}

func (win *winCanvas) draw() {
	img := win.img
	v := img.view

	imgui.SetNextWindowPosV(imgui.Vec2{X: 250, Y: 40}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.BeginV(fmt.Sprintf("%s - %s###%s", winCanvasID, displayName(v.Drawing), winCanvasID),
		&win.open, imgui.WindowFlagsHorizontalScrollbar)

	w, h := v.Size()
	zoom := float32(v.Zoom)
	size := imgui.Vec2{X: float32(w) * zoom, Y: float32(h) * zoom}

	win.imagePosMin = imgui.CursorScreenPos()
	win.imagePosMax = win.imagePosMin.Plus(size)

	// the canvas texture is drawn as a widget so hover detection works. the
	// overlay texture goes straight to the draw list, over the same
	// rectangle
	imgui.Image(imgui.TextureID(img.screen.canvasTexture), size)
	hovered := imgui.IsItemHovered()

	dl := imgui.WindowDrawList()
	dl.AddImage(imgui.TextureID(img.screen.overlayTexture), win.imagePosMin, win.imagePosMax)

	if hovered {
		p := win.cellPos()

		if imgui.IsMouseClicked(0) {
			img.beginStroke(p, false)
		} else if imgui.IsMouseClicked(1) {
			img.beginStroke(p, true)
		} else if imgui.IsMouseDown(0) || imgui.IsMouseDown(1) {
			img.strokeDraw(p)
		}

		imgui.Text(fmt.Sprintf("%d,%d  layer %d of %d", p.X, p.Y, v.LayerIndex(), v.Depth()))
	} else {
		imgui.Text(fmt.Sprintf("layer %d of %d", v.LayerIndex(), v.Depth()))
	}

	// a stroke ends when the button comes up, wherever the pointer has
	// wandered to
	if imgui.IsMouseReleased(0) || imgui.IsMouseReleased(1) {
		img.endStroke(false)
	}

	imgui.End()
}

// cellPos converts the mouse position to a canvas cell coordinate.
func (win *winCanvas) cellPos() geometry.Point {
	mp := imgui.MousePos()
	zoom := float32(win.img.view.Zoom)
	return geometry.Point{
		X: int((mp.X - win.imagePosMin.X) / zoom),
		Y: int((mp.Y - win.imagePosMin.Y) / zoom),
	}
}
