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

package brush_test

import (
	"testing"

	"github.com/voxpaint/voxpaint/brush"
	"github.com/voxpaint/voxpaint/raster"
	"github.com/voxpaint/voxpaint/test"
)

func TestSquare(t *testing.T) {
	b := brush.NewSquare(3, 3)

	w, h := b.Size()
	test.ExpectEquality(t, w, 3)
	test.ExpectEquality(t, h, 3)

	cx, cy := b.Center()
	test.ExpectEquality(t, cx, 1)
	test.ExpectEquality(t, cy, 1)

	d := b.DrawData(7, false)
	for _, v := range d.Pix {
		test.ExpectEquality(t, v, raster.Paint(7))
	}

	// draw data is memoized
	test.ExpectSuccess(t, b.DrawData(7, false) == d)
	test.ExpectSuccess(t, b.DrawData(8, false) != d)
	test.ExpectSuccess(t, b.DrawData(7, false) == d)
}

func TestRound(t *testing.T) {
	b := brush.NewRound(5)

	d := b.DrawData(2, false)
	test.ExpectEquality(t, d.At(2, 2), raster.Paint(2))
	test.ExpectEquality(t, d.At(2, 0), raster.Paint(2))

	// corners are outside the circle
	test.ExpectEquality(t, d.At(0, 0), uint32(0))
	test.ExpectEquality(t, d.At(4, 4), uint32(0))
}

func TestImage(t *testing.T) {
	cells := []uint8{
		1, 0,
		0, 2,
	}
	b := brush.NewImage(2, 2, cells)

	d := b.DrawData(9, false)
	test.ExpectEquality(t, d.At(0, 0), raster.Paint(1))
	test.ExpectEquality(t, d.At(1, 1), raster.Paint(2))

	// transparent cells remain unset
	test.ExpectEquality(t, d.At(1, 0), uint32(0))

	// colorize replaces the captured colors
	d = b.DrawData(9, true)
	test.ExpectEquality(t, d.At(0, 0), raster.Paint(9))
	test.ExpectEquality(t, d.At(1, 1), raster.Paint(9))
	test.ExpectEquality(t, d.At(1, 0), uint32(0))
}
