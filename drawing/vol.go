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

package drawing

import "fmt"

// Vol is a strided view onto a 3D array of cells. Rotating or flipping a Vol
// produces a new view sharing the same backing slice: writes through any view
// are visible through all views of the same backing data.
//
// The stride arithmetic follows the usual dense-array convention: the cell at
// (x, y, z) lives at offset + x*stride[0] + y*stride[1] + z*stride[2].
// Flips produce negative strides.
type Vol[T any] struct {
	data   []T
	offset int
	shape  [3]int
	stride [3]int
}

// NewVol wraps a contiguous slice in a Vol of the given shape. The slice
// holds cells with x varying slowest and z fastest.
func NewVol[T any](data []T, w, h, d int) *Vol[T] {
	if len(data) != w*h*d {
		panic(fmt.Sprintf("vol: %d cells for shape %dx%dx%d", len(data), w, h, d))
	}
	return &Vol[T]{
		data:   data,
		shape:  [3]int{w, h, d},
		stride: [3]int{h * d, d, 1},
	}
}

// Shape returns the extent of the volume along each axis.
func (v *Vol[T]) Shape() (int, int, int) {
	return v.shape[0], v.shape[1], v.shape[2]
}

func (v *Vol[T]) index(x, y, z int) int {
	return v.offset + x*v.stride[0] + y*v.stride[1] + z*v.stride[2]
}

// At returns the cell at the given coordinate.
func (v *Vol[T]) At(x, y, z int) T {
	return v.data[v.index(x, y, z)]
}

// Set writes the cell at the given coordinate.
func (v *Vol[T]) Set(x, y, z int, val T) {
	v.data[v.index(x, y, z)] = val
}

func (v *Vol[T]) view() *Vol[T] {
	w := *v
	return &w
}

// Flip returns a view with the given axis reversed.
func (v *Vol[T]) Flip(axis int) *Vol[T] {
	w := v.view()
	w.offset += (w.shape[axis] - 1) * w.stride[axis]
	w.stride[axis] = -w.stride[axis]
	return w
}

// swapAxes returns a view with the two axes exchanged.
func (v *Vol[T]) swapAxes(a, b int) *Vol[T] {
	w := v.view()
	w.shape[a], w.shape[b] = w.shape[b], w.shape[a]
	w.stride[a], w.stride[b] = w.stride[b], w.stride[a]
	return w
}

// Rot90 returns a view rotated by k*90 degrees in the plane of axes a and b,
// rotating from axis a towards axis b.
func (v *Vol[T]) Rot90(k, a, b int) *Vol[T] {
	k = ((k % 4) + 4) % 4
	switch k {
	case 0:
		return v.view()
	case 1:
		return v.Flip(b).swapAxes(a, b)
	case 2:
		return v.Flip(a).Flip(b)
	default:
		return v.swapAxes(a, b).Flip(b)
	}
}

// Copy materializes the view as a new contiguous Vol with its own backing
// slice.
func (v *Vol[T]) Copy() *Vol[T] {
	w, h, d := v.Shape()
	data := make([]T, w*h*d)
	c := NewVol(data, w, h, d)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			for z := 0; z < d; z++ {
				c.Set(x, y, z, v.At(x, y, z))
			}
		}
	}
	return c
}

// Raw returns the backing slice of a contiguous Vol created by NewVol. It
// panics if called on a rotated or flipped view, for which the backing
// layout does not match the view's coordinates.
func (v *Vol[T]) Raw() []T {
	_, h, d := v.shape[0], v.shape[1], v.shape[2]
	if v.offset != 0 || v.stride != [3]int{h * d, d, 1} {
		panic("vol: Raw() called on a non-contiguous view")
	}
	return v.data
}
