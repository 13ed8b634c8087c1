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

package raster

import "github.com/voxpaint/voxpaint/geometry"

// Blit copies the painted cells of src into dst with the top-left corner of
// src at (x, y). Unpainted cells of src leave dst untouched. The returned
// rectangle is the clipped destination area, with ok false if src falls
// entirely outside dst.
func Blit(dst *Buffer, src *Buffer, x, y int) (geometry.Rectangle, bool) {
	r, ok := dst.Rect().Intersect(geometry.NewRectangle(x, y, src.W, src.H))
	if !ok {
		return geometry.Rectangle{}, false
	}

	x0, y0, x1, y1 := r.Box()
	for dy := y0; dy < y1; dy++ {
		srow := (dy - y) * src.W
		drow := dy * dst.W
		for dx := x0; dx < x1; dx++ {
			v := src.Pix[srow+(dx-x)]
			if v&SetBit != 0 {
				dst.Pix[drow+dx] = v
			}
		}
	}
	return r, true
}

// DrawLine stamps src along the discretized line from p0 to p1, inclusive of
// both endpoints. Every integer point on the line receives at least one
// stamp; when p0 equals p1 a single stamp is made. The returned rectangle
// covers every cell touched, with ok false if the whole line was clipped
// away.
func DrawLine(dst *Buffer, src *Buffer, p0, p1 geometry.Point) (geometry.Rectangle, bool) {
	var acc *geometry.Rectangle

	x0, y0 := p0.X, p0.Y
	x1, y1 := p1.X, p1.Y

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := sign(x1 - x0)
	sy := sign(y1 - y0)
	e := dx + dy

	for {
		if r, ok := Blit(dst, src, x0, y0); ok {
			acc = geometry.UniteRect(acc, r)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}

	if acc == nil {
		return geometry.Rectangle{}, false
	}
	return *acc, true
}

// DrawRectangle strokes the edges of the rectangle at pos with the given
// size, stamping src along the border path. If filled is true the interior is
// additionally set to fill, which must be a packed cell value (see Paint).
// A degenerate size (zero width or height) produces no effect.
func DrawRectangle(dst *Buffer, src *Buffer, pos geometry.Point, w, h int, fill uint32, filled bool) (geometry.Rectangle, bool) {
	if w <= 0 || h <= 0 {
		return geometry.Rectangle{}, false
	}

	var acc *geometry.Rectangle

	tl := geometry.Point{X: pos.X, Y: pos.Y}
	tr := geometry.Point{X: pos.X + w - 1, Y: pos.Y}
	bl := geometry.Point{X: pos.X, Y: pos.Y + h - 1}
	br := geometry.Point{X: pos.X + w - 1, Y: pos.Y + h - 1}

	for _, edge := range [][2]geometry.Point{{tl, tr}, {tr, br}, {br, bl}, {bl, tl}} {
		if r, ok := DrawLine(dst, src, edge[0], edge[1]); ok {
			acc = geometry.UniteRect(acc, r)
		}
	}

	if filled {
		interior := geometry.NewRectangle(pos.X+1, pos.Y+1, w-2, h-2)
		if r, ok := dst.Rect().Intersect(interior); ok {
			x0, y0, x1, y1 := r.Box()
			for y := y0; y < y1; y++ {
				row := dst.Pix[y*dst.W+x0 : y*dst.W+x1]
				for i := range row {
					row[i] = fill
				}
			}
			acc = geometry.UniteRect(acc, r)
		}
	}

	if acc == nil {
		return geometry.Rectangle{}, false
	}
	return *acc, true
}

// FloodFill performs a 4-connected flood fill starting at seed, replacing
// every contiguous cell equal to the seed's value with color. The returned
// rectangle bounds every changed cell, with ok false if the seed already
// holds the target color or lies outside the buffer (no-op).
func FloodFill(dst *Buffer, seed geometry.Point, color uint32) (geometry.Rectangle, bool) {
	if !dst.Rect().Contains(seed) {
		return geometry.Rectangle{}, false
	}

	target := dst.At(seed.X, seed.Y)
	if target == color {
		return geometry.Rectangle{}, false
	}

	acc := geometry.NewRectangle(seed.X, seed.Y, 1, 1)
	stack := []geometry.Point{seed}
	dst.Set(seed.X, seed.Y, color)

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		acc = acc.Unite(geometry.NewRectangle(p.X, p.Y, 1, 1))

		for _, q := range [4]geometry.Point{
			{X: p.X - 1, Y: p.Y},
			{X: p.X + 1, Y: p.Y},
			{X: p.X, Y: p.Y - 1},
			{X: p.X, Y: p.Y + 1},
		} {
			if dst.Rect().Contains(q) && dst.At(q.X, q.Y) == target {
				dst.Set(q.X, q.Y, color)
				stack = append(stack, q)
			}
		}
	}

	return acc, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
