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

// Package geometry provides the integer rectangle and box value types used
// for brush placement and dirty tracking throughout voxpaint.
//
// Rectangles and boxes are half-open: a Rectangle at (0,0) with size (8,8)
// covers coordinates 0 to 7 on both axes. All types in this package have pure
// value semantics. Dirty regions are accumulated with the Unite() functions
// which are associative and commutative, meaning the order in which edits
// report their affected regions does not matter.
package geometry

import "fmt"

// Point is an integer coordinate in the 2D space of a layer or overlay.
type Point struct {
	X int
	Y int
}

// Rectangle is an axis-aligned integer rectangle. The zero value is an empty
// rectangle at the origin.
type Rectangle struct {
	X int
	Y int
	W int
	H int
}

// NewRectangle returns a Rectangle with the specified position and size.
func NewRectangle(x, y, w, h int) Rectangle {
	return Rectangle{X: x, Y: y, W: w, H: h}
}

// FromPoints returns the smallest Rectangle containing both points.
func FromPoints(p0, p1 Point) Rectangle {
	x0, x1 := minmax(p0.X, p1.X)
	y0, y1 := minmax(p0.Y, p1.Y)
	return Rectangle{X: x0, Y: y0, W: x1 - x0 + 1, H: y1 - y0 + 1}
}

func minmax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

func (r Rectangle) String() string {
	return fmt.Sprintf("(%d, %d, %dx%d)", r.X, r.Y, r.W, r.H)
}

// Empty returns true if the rectangle covers no points at all.
func (r Rectangle) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Box returns the corners of the rectangle as two half-open coordinate
// ranges: x0 <= x < x1 and y0 <= y < y1.
func (r Rectangle) Box() (x0, y0, x1, y1 int) {
	return r.X, r.Y, r.X + r.W, r.Y + r.H
}

// Contains returns true if the point lies inside the rectangle.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersect returns the overlap of the two rectangles. The second return
// value is false if the rectangles do not overlap at all, distinguishing
// "no overlap" from a legitimate zero-area result.
func (r Rectangle) Intersect(s Rectangle) (Rectangle, bool) {
	x0 := max(r.X, s.X)
	y0 := max(r.Y, s.Y)
	x1 := min(r.X+r.W, s.X+s.W)
	y1 := min(r.Y+r.H, s.Y+s.H)
	if x0 >= x1 || y0 >= y1 {
		return Rectangle{}, false
	}
	return Rectangle{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}, true
}

// Unite returns the smallest rectangle covering both rectangles.
func (r Rectangle) Unite(s Rectangle) Rectangle {
	x0 := min(r.X, s.X)
	y0 := min(r.Y, s.Y)
	x1 := max(r.X+r.W, s.X+s.W)
	y1 := max(r.Y+r.H, s.Y+s.H)
	return Rectangle{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// UniteRect accumulates rect into acc. A nil acc stands for "nothing dirty
// yet" and uniting with it yields rect itself.
func UniteRect(acc *Rectangle, rect Rectangle) *Rectangle {
	if acc == nil {
		r := rect
		return &r
	}
	u := acc.Unite(rect)
	return &u
}
