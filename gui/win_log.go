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
	"github.com/voxpaint/voxpaint/logger"
)

const winLogID = "Log"

type winLog struct {
	windowManagement
	img *GUI

	// number of entries last time the window was drawn. used to scroll to
	// the end when a new entry arrives
	lastLen int
}

func newWinLog(img *GUI) *winLog {
	return &winLog{img: img}
}

func (win *winLog) id() string {
	return winLogID
}

func (win *winLog) draw() {
	imgui.SetNextWindowPosV(imgui.Vec2{X: 500, Y: 480}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: 500, Y: 300}, imgui.ConditionFirstUseEver)

	imgui.PushStyleColor(imgui.StyleColorWindowBg, win.img.cols.LogBackground)
	imgui.BeginV(winLogID, &win.open, 0)
	imgui.PopStyleColor()

	logger.BorrowLog(func(log []logger.Entry) {
		var clipper imgui.ListClipper
		clipper.Begin(len(log))
		for clipper.Step() {
			for i := clipper.DisplayStart; i < clipper.DisplayEnd; i++ {
				imgui.Text(log[i].String())
			}
		}

		if len(log) != win.lastLen {
			win.lastLen = len(log)
			imgui.SetScrollHereY(0.0)
		}
	})

	imgui.End()
}
