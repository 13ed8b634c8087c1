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
	"github.com/voxpaint/voxpaint/palette"
)

// the colors used by the imgui widgets, as distinct from the colors of the
// drawing's palette.
type guiColors struct {
	Transparent   imgui.Vec4
	LogBackground imgui.Vec4
	CurrentLayer  imgui.Vec4

	// the checkerboard squares showing through transparent cells. these are
	// blended into the canvas texture, not drawn with imgui
	checker [2]color
}

type color struct {
	r, g, b, a uint8
}

func newColors() *guiColors {
	return &guiColors{
		Transparent:   imgui.Vec4{0.0, 0.0, 0.0, 0.0},
		LogBackground: imgui.Vec4{0.1, 0.1, 0.2, 0.9},
		CurrentLayer:  imgui.Vec4{0.3, 0.6, 0.3, 1.0},
		checker: [2]color{
			{r: 0x30, g: 0x30, b: 0x30, a: 0xff},
			{r: 0x40, g: 0x40, b: 0x40, a: 0xff},
		},
	}
}

// paletteVec4 converts a palette entry for use as an imgui color.
func paletteVec4(c palette.Color) imgui.Vec4 {
	return imgui.Vec4{
		X: float32(c.R) / 255,
		Y: float32(c.G) / 255,
		Z: float32(c.B) / 255,
		W: 1.0,
	}
}

// palettePacked converts a palette entry for use in an imgui draw list.
func palettePacked(c palette.Color) imgui.PackedColor {
	return imgui.PackedColorFromVec4(paletteVec4(c))
}
