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

package plugin

func init() {
	Register(invertPalette{})
	Register(grayscalePalette{})
}

// invertPalette inverts the RGB of every palette entry except the
// transparent color. The change is one journal entry: a single undo puts
// the palette back.
type invertPalette struct{}

func (invertPalette) Name() string {
	return "invert palette"
}

func (invertPalette) Apply(a *Access) error {
	colors := a.Colors()
	for i := 1; i < len(colors); i++ {
		colors[i].R = 255 - colors[i].R
		colors[i].G = 255 - colors[i].G
		colors[i].B = 255 - colors[i].B
	}
	return a.ChangeColors(0, colors)
}

// grayscalePalette replaces every entry with its luminance.
type grayscalePalette struct{}

func (grayscalePalette) Name() string {
	return "grayscale palette"
}

func (grayscalePalette) Apply(a *Access) error {
	colors := a.Colors()
	for i := 1; i < len(colors); i++ {
		c := colors[i]
		y := uint8((299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000)
		colors[i].R = y
		colors[i].G = y
		colors[i].B = y
	}
	return a.ChangeColors(0, colors)
}
