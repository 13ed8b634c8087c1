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
	"github.com/voxpaint/voxpaint/logger"
	"github.com/voxpaint/voxpaint/palette"
)

const winPaletteID = "Palette"

// winPalette shows the drawing's palette as a 16x16 swatch grid. left click
// selects the foreground color, right click the background color. the
// current foreground color can be edited; the edit is previewed through the
// palette overlay and only committed to the journal when it settles.
type winPalette struct {
	windowManagement
	img *GUI

	swatchSize float32
	swatchGap  float32

	// state of the color currently being edited. editing is true between
	// the first change and the commit
	editing   bool
	editIndex int
	editColor [3]float32
}

func newWinPalette(img *GUI) *winPalette {
	return &winPalette{img: img, editIndex: -1}
}

func (win *winPalette) id() string {
	return winPaletteID
}

func (win *winPalette) draw() {
	img := win.img
	d := img.view.Drawing
	pal := d.Palette()

	win.swatchSize = imgui.FrameHeight() * 0.75
	win.swatchGap = win.swatchSize * 0.1

	imgui.SetNextWindowPosV(imgui.Vec2{X: 10, Y: 600}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.BeginV(winPaletteID, &win.open, imgui.WindowFlagsAlwaysAutoResize)

	colors := pal.Colors()
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			c := y*16 + x
			left, right := win.colRect(c, colors[c], c == pal.Foreground, c == pal.Background)
			if left {
				pal.Foreground = c
			}
			if right {
				pal.Background = c
			}
		}

		p := imgui.CursorScreenPos()
		p.Y += win.swatchSize + win.swatchGap
		p.X -= 16 * (win.swatchSize + win.swatchGap)
		imgui.SetCursorScreenPos(p)
	}

	imgui.Spacing()
	imgui.Text(fmt.Sprintf("foreground %d  background %d", pal.Foreground, pal.Background))

	win.drawColorEdit(pal)

	imgui.End()
}

// drawColorEdit is the editor for the foreground color.
func (win *winPalette) drawColorEdit(pal *palette.Palette) {
	img := win.img

	if !win.editing || win.editIndex != pal.Foreground {
		// abandon any edit of a previously selected color
		if win.editing {
			pal.ClearOverlay()
			img.view.Drawing.SetAllDirty()
			win.editing = false
		}
		c := pal.Color(pal.Foreground)
		win.editIndex = pal.Foreground
		win.editColor = [3]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
	}

	if imgui.ColorEdit3("##edit", &win.editColor) {
		win.editing = true
		pal.SetOverlay(win.editIndex, win.editedColor())

		// palette changes do not mark the drawing dirty by themselves
		img.view.Drawing.SetAllDirty()
	}

	if win.editing && !imgui.IsItemActive() {
		win.editing = false
		c := win.editedColor()
		index := win.editIndex
		d := img.view.Drawing

		pal.ClearOverlay()
		img.exec.Do(func() {
			if err := d.ChangeColors(index, []palette.Color{c}); err != nil {
				logger.Logf(logger.Allow, "gui", "%v", err)
			}
		})
	}
}

func (win *winPalette) editedColor() palette.Color {
	return palette.Color{
		R: uint8(win.editColor[0] * 255),
		G: uint8(win.editColor[1] * 255),
		B: uint8(win.editColor[2] * 255),
	}
}

// colRect draws one palette swatch, returning whether it has been clicked
// with the left or right mouse button.
func (win *winPalette) colRect(idx int, col palette.Color, foreground bool, background bool) (bool, bool) {
	a := imgui.CursorScreenPos()
	b := a
	b.X += win.swatchSize
	b.Y += win.swatchSize

	mp := imgui.MousePos()
	hover := mp.X >= a.X && mp.X <= b.X && mp.Y >= a.Y && mp.Y <= b.Y

	left := hover && imgui.IsMouseClicked(0)
	right := hover && imgui.IsMouseClicked(1)

	dl := imgui.WindowDrawList()
	dl.AddRectFilled(a, b, palettePacked(col))

	// markers for the current foreground and background selections
	if foreground || background {
		c := a.Plus(b).Times(0.5)
		marker := imgui.PackedColorFromVec4(imgui.Vec4{X: 1, Y: 1, Z: 1, W: 1})
		if background {
			marker = imgui.PackedColorFromVec4(imgui.Vec4{W: 1})
		}
		dl.AddCircleFilled(c, win.swatchSize*0.25, marker)
	}

	a.X += win.swatchSize + win.swatchGap
	imgui.SetCursorScreenPos(a)

	return left, right
}
