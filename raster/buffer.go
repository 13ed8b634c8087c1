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

// Package raster implements the pixel-level drawing primitives used by
// brushes, overlays and tools: blitting, line drawing, rectangles and flood
// fill. All primitives operate on Buffer values and report the affected area
// as a geometry.Rectangle so that callers can maintain dirty state.
//
// Cells in a Buffer pack a palette index and a "painted" flag into a single
// uint32. The painted flag is the SetBit. A cell without the SetBit has not
// been touched and must never overwrite existing data when the buffer is
// merged into a layer. This distinction is necessary because palette index 0
// is a legitimate (transparent) color: an unset cell and a cell painted with
// index 0 would otherwise be indistinguishable.
package raster

import "github.com/voxpaint/voxpaint/geometry"

// SetBit marks a buffer cell as painted. The low eight bits of a painted cell
// hold the palette index.
const SetBit = uint32(1) << 24

// ColorMask extracts the palette index from a painted cell.
const ColorMask = uint32(0xff)

// Paint returns the packed cell value for the given palette index.
func Paint(color uint8) uint32 {
	return SetBit | uint32(color)
}

// Buffer is a dense 2D grid of packed cells. Cells are stored row by row.
type Buffer struct {
	Pix []uint32
	W   int
	H   int
}

// NewBuffer allocates a Buffer of the given size with all cells unset.
func NewBuffer(w, h int) *Buffer {
	return &Buffer{
		Pix: make([]uint32, w*h),
		W:   w,
		H:   h,
	}
}

// Rect returns the rectangle covering the whole buffer.
func (b *Buffer) Rect() geometry.Rectangle {
	return geometry.NewRectangle(0, 0, b.W, b.H)
}

// At returns the cell at the given coordinate.
func (b *Buffer) At(x, y int) uint32 {
	return b.Pix[y*b.W+x]
}

// Set writes the cell at the given coordinate.
func (b *Buffer) Set(x, y int, v uint32) {
	b.Pix[y*b.W+x] = v
}

// Clear unsets every cell inside rect, clipped to the buffer bounds. It
// returns the clipped rectangle, or false if the rectangle lies entirely
// outside the buffer.
func (b *Buffer) Clear(rect geometry.Rectangle) (geometry.Rectangle, bool) {
	r, ok := b.Rect().Intersect(rect)
	if !ok {
		return geometry.Rectangle{}, false
	}
	x0, y0, x1, y1 := r.Box()
	for y := y0; y < y1; y++ {
		row := b.Pix[y*b.W+x0 : y*b.W+x1]
		for i := range row {
			row[i] = 0
		}
	}
	return r, true
}
