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

package raster_test

import (
	"testing"

	"github.com/voxpaint/voxpaint/geometry"
	"github.com/voxpaint/voxpaint/raster"
	"github.com/voxpaint/voxpaint/test"
)

// a 1x1 stamp painted with the given color.
func dot(color uint8) *raster.Buffer {
	b := raster.NewBuffer(1, 1)
	b.Set(0, 0, raster.Paint(color))
	return b
}

func TestBlit(t *testing.T) {
	dst := raster.NewBuffer(8, 8)
	src := raster.NewBuffer(2, 2)
	src.Set(0, 0, raster.Paint(3))
	src.Set(1, 1, raster.Paint(4))
	// cells (1,0) and (0,1) are unset and must not be copied

	r, ok := raster.Blit(dst, src, 2, 2)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, r, geometry.NewRectangle(2, 2, 2, 2))
	test.ExpectEquality(t, dst.At(2, 2), raster.Paint(3))
	test.ExpectEquality(t, dst.At(3, 3), raster.Paint(4))
	test.ExpectEquality(t, dst.At(3, 2), uint32(0))
	test.ExpectEquality(t, dst.At(2, 3), uint32(0))
}

func TestBlitUnsetDoesNotOverwrite(t *testing.T) {
	dst := raster.NewBuffer(4, 4)
	dst.Set(1, 1, raster.Paint(7))

	// a stamp painted with color 0 must overwrite; an unset stamp cell must not
	src := raster.NewBuffer(2, 1)
	src.Set(0, 0, raster.Paint(0))

	_, ok := raster.Blit(dst, src, 1, 1)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, dst.At(1, 1), raster.Paint(0))
	test.ExpectEquality(t, dst.At(2, 1), uint32(0))
}

func TestBlitClipping(t *testing.T) {
	dst := raster.NewBuffer(4, 4)
	src := raster.NewBuffer(3, 3)
	for i := range src.Pix {
		src.Pix[i] = raster.Paint(1)
	}

	r, ok := raster.Blit(dst, src, -1, -1)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, r, geometry.NewRectangle(0, 0, 2, 2))

	// fully clipped away
	_, ok = raster.Blit(dst, src, 10, 10)
	test.ExpectFailure(t, ok)
}

func TestDrawLine(t *testing.T) {
	dst := raster.NewBuffer(8, 8)

	r, ok := raster.DrawLine(dst, dot(3), geometry.Point{X: 0, Y: 0}, geometry.Point{X: 7, Y: 7})
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, r, geometry.NewRectangle(0, 0, 8, 8))

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if x == y {
				test.ExpectEquality(t, dst.At(x, y), raster.Paint(3), x, y)
			} else {
				test.ExpectEquality(t, dst.At(x, y), uint32(0), x, y)
			}
		}
	}
}

func TestDrawLineDegenerate(t *testing.T) {
	dst := raster.NewBuffer(8, 8)

	// a line from a point to itself stamps exactly once
	r, ok := raster.DrawLine(dst, dot(5), geometry.Point{X: 3, Y: 3}, geometry.Point{X: 3, Y: 3})
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, r, geometry.NewRectangle(3, 3, 1, 1))
	test.ExpectEquality(t, dst.At(3, 3), raster.Paint(5))
}

func TestDrawLineEndpoints(t *testing.T) {
	dst := raster.NewBuffer(16, 16)

	// a shallow line: every column must be covered, including both endpoints
	_, ok := raster.DrawLine(dst, dot(1), geometry.Point{X: 0, Y: 0}, geometry.Point{X: 15, Y: 3})
	test.DemandSuccess(t, ok)

	for x := 0; x < 16; x++ {
		var hit bool
		for y := 0; y < 16; y++ {
			if dst.At(x, y) != 0 {
				hit = true
			}
		}
		test.ExpectSuccess(t, hit, x)
	}
}

func TestDrawRectangle(t *testing.T) {
	dst := raster.NewBuffer(10, 10)

	r, ok := raster.DrawRectangle(dst, dot(2), geometry.Point{X: 1, Y: 1}, 5, 4, 0, false)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, r, geometry.NewRectangle(1, 1, 5, 4))

	// border is painted, interior is not
	test.ExpectEquality(t, dst.At(1, 1), raster.Paint(2))
	test.ExpectEquality(t, dst.At(5, 4), raster.Paint(2))
	test.ExpectEquality(t, dst.At(3, 2), uint32(0))

	// degenerate sizes are a no-op
	_, ok = raster.DrawRectangle(dst, dot(2), geometry.Point{X: 0, Y: 0}, 0, 5, 0, false)
	test.ExpectFailure(t, ok)
	_, ok = raster.DrawRectangle(dst, dot(2), geometry.Point{X: 0, Y: 0}, 5, 0, 0, false)
	test.ExpectFailure(t, ok)
}

func TestDrawRectangleFilled(t *testing.T) {
	dst := raster.NewBuffer(10, 10)

	_, ok := raster.DrawRectangle(dst, dot(2), geometry.Point{X: 1, Y: 1}, 5, 4, raster.Paint(6), true)
	test.DemandSuccess(t, ok)

	test.ExpectEquality(t, dst.At(1, 1), raster.Paint(2))
	test.ExpectEquality(t, dst.At(3, 2), raster.Paint(6))
}

func TestFloodFill(t *testing.T) {
	dst := raster.NewBuffer(8, 8)

	// a wall dividing the buffer in two
	for y := 0; y < 8; y++ {
		dst.Set(4, y, raster.Paint(1))
	}

	r, ok := raster.FloodFill(dst, geometry.Point{X: 0, Y: 0}, raster.Paint(5))
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, r, geometry.NewRectangle(0, 0, 4, 8))

	test.ExpectEquality(t, dst.At(0, 0), raster.Paint(5))
	test.ExpectEquality(t, dst.At(3, 7), raster.Paint(5))
	test.ExpectEquality(t, dst.At(4, 0), raster.Paint(1))
	test.ExpectEquality(t, dst.At(5, 0), uint32(0))
}

func TestFloodFillNop(t *testing.T) {
	dst := raster.NewBuffer(8, 8)
	dst.Set(2, 2, raster.Paint(5))

	// seed already holds the target color
	_, ok := raster.FloodFill(dst, geometry.Point{X: 2, Y: 2}, raster.Paint(5))
	test.ExpectFailure(t, ok)

	// seed outside the buffer
	_, ok = raster.FloodFill(dst, geometry.Point{X: -1, Y: 0}, raster.Paint(5))
	test.ExpectFailure(t, ok)
}

func TestClear(t *testing.T) {
	b := raster.NewBuffer(8, 8)
	for i := range b.Pix {
		b.Pix[i] = raster.Paint(1)
	}

	r, ok := b.Clear(geometry.NewRectangle(6, 6, 4, 4))
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, r, geometry.NewRectangle(6, 6, 2, 2))
	test.ExpectEquality(t, b.At(6, 6), uint32(0))
	test.ExpectEquality(t, b.At(5, 5), raster.Paint(1))

	_, ok = b.Clear(geometry.NewRectangle(20, 20, 2, 2))
	test.ExpectFailure(t, ok)
}
