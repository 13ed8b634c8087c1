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

import (
	"testing"

	"github.com/voxpaint/voxpaint/test"
)

// a small volume with every cell unique, so any mixed-up index shows
func numberedVol(w, h, d int) *Vol[uint8] {
	data := make([]uint8, w*h*d)
	for i := range data {
		data[i] = uint8(i)
	}
	return NewVol(data, w, h, d)
}

func TestVolIndexing(t *testing.T) {
	v := numberedVol(2, 3, 4)

	// x varies slowest, z fastest
	test.ExpectEquality(t, v.At(0, 0, 0), uint8(0))
	test.ExpectEquality(t, v.At(0, 0, 1), uint8(1))
	test.ExpectEquality(t, v.At(0, 1, 0), uint8(4))
	test.ExpectEquality(t, v.At(1, 0, 0), uint8(12))

	v.Set(1, 2, 3, 99)
	test.ExpectEquality(t, v.At(1, 2, 3), uint8(99))
	test.ExpectEquality(t, v.Raw()[23], uint8(99))
}

func TestVolFlip(t *testing.T) {
	v := numberedVol(2, 3, 4)
	f := v.Flip(1)

	w, h, d := f.Shape()
	test.ExpectEquality(t, w, 2)
	test.ExpectEquality(t, h, 3)
	test.ExpectEquality(t, d, 4)

	for x := 0; x < 2; x++ {
		for y := 0; y < 3; y++ {
			for z := 0; z < 4; z++ {
				test.ExpectEquality(t, f.At(x, y, z), v.At(x, 2-y, z))
			}
		}
	}

	// flipping twice is the identity
	ff := f.Flip(1)
	test.ExpectEquality(t, ff.At(1, 2, 3), v.At(1, 2, 3))
}

func TestVolRot90(t *testing.T) {
	v := numberedVol(3, 4, 2)

	// one turn in the (0,1) plane: r[p][q] = v[q][H-1-p]
	r := v.Rot90(1, 0, 1)
	w, h, d := r.Shape()
	test.ExpectEquality(t, w, 4)
	test.ExpectEquality(t, h, 3)
	test.ExpectEquality(t, d, 2)

	for p := 0; p < 4; p++ {
		for q := 0; q < 3; q++ {
			for z := 0; z < 2; z++ {
				test.ExpectEquality(t, r.At(p, q, z), v.At(q, 4-1-p, z))
			}
		}
	}

	// four turns are the identity
	i := v.Rot90(1, 0, 1).Rot90(1, 0, 1).Rot90(1, 0, 1).Rot90(1, 0, 1)
	for x := 0; x < 3; x++ {
		for y := 0; y < 4; y++ {
			for z := 0; z < 2; z++ {
				test.ExpectEquality(t, i.At(x, y, z), v.At(x, y, z))
			}
		}
	}

	// a negative turn inverts a positive one
	n := v.Rot90(1, 1, 2).Rot90(-1, 1, 2)
	test.ExpectEquality(t, n.At(2, 3, 1), v.At(2, 3, 1))

	// two turns flip both axes
	r2 := v.Rot90(2, 0, 1)
	test.ExpectEquality(t, r2.At(0, 0, 0), v.At(2, 3, 0))
}

func TestVolViewsShareBacking(t *testing.T) {
	v := numberedVol(3, 3, 3)
	r := v.Rot90(1, 0, 1)

	r.Set(0, 0, 0, 200)
	test.ExpectEquality(t, v.At(0, 2, 0), uint8(200))

	// a copy does not share
	c := r.Copy()
	c.Set(0, 0, 0, 100)
	test.ExpectEquality(t, r.At(0, 0, 0), uint8(200))
	test.ExpectEquality(t, c.At(0, 0, 0), uint8(100))
}

func TestVolRawPanicsOnView(t *testing.T) {
	v := numberedVol(2, 2, 2)

	defer func() {
		test.ExpectSuccess(t, recover() != nil)
	}()
	_ = v.Flip(0).Raw()
}
