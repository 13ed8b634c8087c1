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
	"github.com/voxpaint/voxpaint/drawing"
)

const winLayersID = "Layers"

// winLayers lists the layers of the current view orientation. layer zero is
// nearest the viewer.
type winLayers struct {
	windowManagement
	img *GUI
}

func newWinLayers(img *GUI) *winLayers {
	return &winLayers{img: img}
}

func (win *winLayers) id() string {
	return winLayersID
}

func (win *winLayers) draw() {
	img := win.img
	v := img.view

	imgui.SetNextWindowPosV(imgui.Vec2{X: 10, Y: 400}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.BeginV(winLayersID, &win.open, 0)

	if imgui.Button("insert") {
		img.doViewErr(func(v *drawing.View) error { return v.InsertLayer() })
	}
	imgui.SameLine()
	if imgui.Button("duplicate") {
		img.doViewErr(func(v *drawing.View) error { return v.DuplicateLayer() })
	}
	imgui.SameLine()
	if imgui.Button("delete") {
		img.doViewErr(func(v *drawing.View) error { return v.DeleteLayer() })
	}

	if imgui.Button("nearer") {
		img.doViewErr(func(v *drawing.View) error { return v.MoveLayer(-1) })
	}
	imgui.SameLine()
	if imgui.Button("further") {
		img.doViewErr(func(v *drawing.View) error { return v.MoveLayer(1) })
	}

	imgui.Separator()

	current := v.LayerIndex()
	for i := 0; i < v.Depth(); i++ {
		imgui.PushID(fmt.Sprintf("layer%02d", i))

		vis := v.LayerVisible(i)
		if imgui.Checkbox("##visible", &vis) {
			index := i
			hidden := !vis
			img.doView(func(v *drawing.View) { v.SetLayerHidden(index, hidden) })
		}
		imgui.SameLine()

		if i == current {
			imgui.PushStyleColor(imgui.StyleColorText, img.cols.CurrentLayer)
		}
		if imgui.SelectableV(fmt.Sprintf("layer %d", i), i == current, 0, imgui.Vec2{}) {
			delta := i - current
			img.doView(func(v *drawing.View) { v.SwitchLayer(delta) })
		}
		if i == current {
			imgui.PopStyleColor()
		}

		imgui.PopID()
	}

	imgui.End()
}
