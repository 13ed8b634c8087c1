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

package brush

import "github.com/voxpaint/voxpaint/raster"

// Square is a filled rectangular brush.
type Square struct {
	w, h int
	memo memo
}

// NewSquare creates a square brush of the given size.
func NewSquare(w, h int) *Square {
	return &Square{w: w, h: h}
}

// Size implements the Brush interface.
func (b *Square) Size() (int, int) {
	return b.w, b.h
}

// Center implements the Brush interface.
func (b *Square) Center() (int, int) {
	return b.w / 2, b.h / 2
}

// DrawData implements the Brush interface.
func (b *Square) DrawData(color uint8, colorize bool) *raster.Buffer {
	if d := b.memo.lookup(color, false); d != nil {
		return d
	}

	d := raster.NewBuffer(b.w, b.h)
	for i := range d.Pix {
		d.Pix[i] = raster.Paint(color)
	}
	b.memo.store(color, false, d)
	return d
}

// Round is a filled circular brush.
type Round struct {
	diameter int
	memo     memo
}

// NewRound creates a round brush of the given diameter.
func NewRound(diameter int) *Round {
	return &Round{diameter: diameter}
}

// Size implements the Brush interface.
func (b *Round) Size() (int, int) {
	return b.diameter, b.diameter
}

// Center implements the Brush interface.
func (b *Round) Center() (int, int) {
	return b.diameter / 2, b.diameter / 2
}

// DrawData implements the Brush interface.
func (b *Round) DrawData(color uint8, colorize bool) *raster.Buffer {
	if d := b.memo.lookup(color, false); d != nil {
		return d
	}

	d := raster.NewBuffer(b.diameter, b.diameter)

	// a cell is inside the circle if its center is within the radius
	r := float64(b.diameter) / 2
	for y := 0; y < b.diameter; y++ {
		for x := 0; x < b.diameter; x++ {
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			if dx*dx+dy*dy <= r*r {
				d.Set(x, y, raster.Paint(color))
			}
		}
	}

	b.memo.store(color, false, d)
	return d
}

// Image is a brush captured from a region of a layer. Cells holding the
// transparent color are unset in the draw data.
type Image struct {
	w, h  int
	cells []uint8
	memo  memo
}

// NewImage creates a brush from a region of layer cells. The cells slice is
// in row order and must have w*h entries.
func NewImage(w, h int, cells []uint8) *Image {
	return &Image{w: w, h: h, cells: cells}
}

// Size implements the Brush interface.
func (b *Image) Size() (int, int) {
	return b.w, b.h
}

// Center implements the Brush interface.
func (b *Image) Center() (int, int) {
	return b.w / 2, b.h / 2
}

// DrawData implements the Brush interface.
func (b *Image) DrawData(color uint8, colorize bool) *raster.Buffer {
	if d := b.memo.lookup(color, colorize); d != nil {
		return d
	}

	d := raster.NewBuffer(b.w, b.h)
	for i, c := range b.cells {
		if c == 0 {
			continue
		}
		if colorize {
			d.Pix[i] = raster.Paint(color)
		} else {
			d.Pix[i] = raster.Paint(c)
		}
	}

	b.memo.store(color, colorize, d)
	return d
}
