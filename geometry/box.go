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

package geometry

import "fmt"

// Box is an axis-aligned integer box in the 3D space of a drawing. Like
// Rectangle it is half-open on all three axes.
type Box struct {
	X int
	Y int
	Z int
	W int
	H int
	D int
}

// NewBox returns a Box with the specified position and size.
func NewBox(x, y, z, w, h, d int) Box {
	return Box{X: x, Y: y, Z: z, W: w, H: h, D: d}
}

func (b Box) String() string {
	return fmt.Sprintf("(%d, %d, %d, %dx%dx%d)", b.X, b.Y, b.Z, b.W, b.H, b.D)
}

// Empty returns true if the box covers no cells at all.
func (b Box) Empty() bool {
	return b.W <= 0 || b.H <= 0 || b.D <= 0
}

// Volume returns the number of cells covered by the box.
func (b Box) Volume() int {
	if b.Empty() {
		return 0
	}
	return b.W * b.H * b.D
}

// Contains returns true if the cell coordinate lies inside the box.
func (b Box) Contains(x, y, z int) bool {
	return x >= b.X && x < b.X+b.W &&
		y >= b.Y && y < b.Y+b.H &&
		z >= b.Z && z < b.Z+b.D
}

// Intersect returns the overlap of the two boxes. The second return value is
// false if the boxes do not overlap.
func (b Box) Intersect(c Box) (Box, bool) {
	x0 := max(b.X, c.X)
	y0 := max(b.Y, c.Y)
	z0 := max(b.Z, c.Z)
	x1 := min(b.X+b.W, c.X+c.W)
	y1 := min(b.Y+b.H, c.Y+c.H)
	z1 := min(b.Z+b.D, c.Z+c.D)
	if x0 >= x1 || y0 >= y1 || z0 >= z1 {
		return Box{}, false
	}
	return Box{X: x0, Y: y0, Z: z0, W: x1 - x0, H: y1 - y0, D: z1 - z0}, true
}

// Unite returns the smallest box covering both boxes.
func (b Box) Unite(c Box) Box {
	x0 := min(b.X, c.X)
	y0 := min(b.Y, c.Y)
	z0 := min(b.Z, c.Z)
	x1 := max(b.X+b.W, c.X+c.W)
	y1 := max(b.Y+b.H, c.Y+c.H)
	z1 := max(b.Z+b.D, c.Z+c.D)
	return Box{X: x0, Y: y0, Z: z0, W: x1 - x0, H: y1 - y0, D: z1 - z0}
}

// UniteBox accumulates box into acc. A nil acc stands for "nothing dirty yet"
// and uniting with it yields box itself.
func UniteBox(acc *Box, box Box) *Box {
	if acc == nil {
		b := box
		return &b
	}
	u := acc.Unite(box)
	return &u
}
