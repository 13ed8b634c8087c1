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
	"fmt"
	"testing"

	"github.com/voxpaint/voxpaint/brush"
	"github.com/voxpaint/voxpaint/geometry"
	"github.com/voxpaint/voxpaint/raster"
	"github.com/voxpaint/voxpaint/test"
)

// every view coordinate must map through ToDrawingCoord to the store cell
// holding the value the rotated data reports. this ties the strided views
// and the matrix transform together: if either drifts, strokes land on the
// wrong cells
func TestViewCoordinateRoundTrip(t *testing.T) {
	d := NewDrawing(3, 4, 5, nil)
	d.Borrow(func(cells *Vol[uint8]) {
		for i := range cells.Raw() {
			cells.Raw()[i] = uint8(i)
		}
	})

	for rx := 0; rx < 4; rx++ {
		for ry := 0; ry < 4; ry++ {
			for rz := 0; rz < 4; rz++ {
				t.Run(fmt.Sprintf("%d_%d_%d", rx, ry, rz), func(t *testing.T) {
					v := NewView(d)
					v.Rotate(rx, ry, rz)

					data := v.Data()
					w, h, dp := data.Shape()
					test.ExpectEquality(t, w*h*dp, 3*4*5)

					for x := 0; x < w; x++ {
						for y := 0; y < h; y++ {
							for z := 0; z < dp; z++ {
								sx, sy, sz := v.ToDrawingCoord(x, y, z)
								var want uint8
								d.Borrow(func(cells *Vol[uint8]) {
									want = cells.At(sx, sy, sz)
								})
								test.DemandEquality(t, data.At(x, y, z), want)
							}
						}
					}
				})
			}
		}
	}
}

func TestViewDirection(t *testing.T) {
	d := NewDrawing(3, 4, 5, nil)

	seen := make(map[[3]int]bool)
	for rx := 0; rx < 4; rx++ {
		for ry := 0; ry < 4; ry++ {
			for rz := 0; rz < 4; rz++ {
				v := NewView(d)
				v.Rotate(rx, ry, rz)

				x, y, z := v.Direction()

				// exactly one unit component
				test.DemandEquality(t, abs(x)+abs(y)+abs(z), 1)
				seen[[3]int{x, y, z}] = true

				// the direction is the store-space displacement of one step
				// into the volume
				x0, y0, z0 := v.ToDrawingCoord(0, 0, 0)
				x1, y1, z1 := v.ToDrawingCoord(0, 0, 1)
				test.DemandEquality(t, [3]int{x1 - x0, y1 - y0, z1 - z0}, [3]int{x, y, z})
			}
		}
	}

	// all six principal directions are reachable
	test.ExpectEquality(t, len(seen), 6)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestViewRotationInvolution(t *testing.T) {
	d := NewDrawing(3, 4, 5, nil)
	d.Borrow(func(cells *Vol[uint8]) {
		for i := range cells.Raw() {
			cells.Raw()[i] = uint8(i)
		}
	})

	v := NewView(d)
	before := v.Data().Copy()

	v.Rotate(1, 0, 0)
	v.Rotate(-1, 0, 0)

	rx, ry, rz := v.Rotation()
	test.ExpectEquality(t, [3]int{rx, ry, rz}, [3]int{0, 0, 0})

	after := v.Data()
	w, h, dp := after.Shape()
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			for z := 0; z < dp; z++ {
				test.DemandEquality(t, after.At(x, y, z), before.At(x, y, z))
			}
		}
	}
}

func TestViewLayerIndexBounds(t *testing.T) {
	d := NewDrawing(3, 4, 5, nil)

	rotations := [][3]int{
		{0, 0, 0}, {2, 0, 0}, {1, 0, 0}, {3, 0, 0}, {0, 1, 0}, {0, 3, 0},
	}
	for _, r := range rotations {
		v := NewView(d)
		v.Rotate(r[0], r[1], r[2])

		depth := v.Depth()
		for i := 0; i < 8; i++ {
			v.SetCursor(i, i, i)
			index := v.LayerIndex()
			test.DemandSuccess(t, index >= 0 && index < depth)

			// the view-to-store layer mapping is its own inverse
			test.DemandEquality(t, v.storeLayer(v.storeLayer(index)), index)
		}
	}
}

func TestViewCursorClamp(t *testing.T) {
	d := NewDrawing(4, 4, 4, nil)
	v := NewView(d)

	v.SetCursor(-3, 10, 2)
	x, y, z := v.Cursor()
	test.ExpectEquality(t, [3]int{x, y, z}, [3]int{0, 3, 2})

	v.MoveCursor(100, -100, 0)
	x, y, z = v.Cursor()
	test.ExpectEquality(t, [3]int{x, y, z}, [3]int{3, 0, 2})

	// switching layers walks the cursor along the view axis
	v.SetCursor(0, 0, 0)
	v.NextLayer()
	_, _, z = v.Cursor()
	test.ExpectEquality(t, z, 1)
	v.PrevLayer()
	v.PrevLayer()
	_, _, z = v.Cursor()
	test.ExpectEquality(t, z, 0)
}

// drawing a diagonal line on a single-layer drawing and undoing it leaves a
// pristine volume at version zero
func TestDiagonalLineStroke(t *testing.T) {
	d := NewDrawing(8, 8, 1, nil)
	v := NewView(d)
	v.SetCursor(0, 0, 0)

	o := v.Overlay()
	b := brush.NewSquare(1, 1)

	rect, ok := o.DrawLine(b, geometry.Point{X: 0, Y: 0}, geometry.Point{X: 7, Y: 7}, 3, false)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, rect, geometry.NewRectangle(0, 0, 8, 8))

	data := o.Snapshot(rect)
	err := v.ModifyLayer(v.LayerIndex(), rect, data, 3, "pencil")
	test.ExpectSuccess(t, err == nil)
	o.Clear(rect)

	test.ExpectEquality(t, d.Version(), int64(1))
	d.Borrow(func(cells *Vol[uint8]) {
		for i := 0; i < 8; i++ {
			for j := 0; j < 8; j++ {
				if i == j {
					test.DemandEquality(t, cells.At(i, j, 0), uint8(3))
				} else {
					test.DemandEquality(t, cells.At(i, j, 0), uint8(0))
				}
			}
		}
	})

	test.ExpectSuccess(t, d.Undo())
	test.ExpectEquality(t, d.Version(), int64(0))
	d.Borrow(func(cells *Vol[uint8]) {
		for _, c := range cells.Raw() {
			test.DemandEquality(t, c, uint8(0))
		}
	})
}

// a stroke on a rotated view must land on the store cells the view shows
func TestStrokeOnRotatedView(t *testing.T) {
	d := NewDrawing(5, 6, 7, nil)

	for _, r := range [][3]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {2, 1, 3}} {
		v := NewView(d)
		v.Rotate(r[0], r[1], r[2])
		v.SetCursor(2, 3, 3)

		index := v.LayerIndex()
		o := v.Overlay()
		b := brush.NewSquare(1, 1)

		rect, ok := o.Blit(b, geometry.Point{X: 1, Y: 2}, 9, false)
		test.DemandSuccess(t, ok)

		data := o.Snapshot(rect)
		test.DemandSuccess(t, v.ModifyLayer(index, rect, data, 9, "pencil") == nil)
		o.Clear(rect)

		// the painted cell reads back through the view
		test.DemandEquality(t, v.Data().At(1, 2, index), uint8(9))

		// and sits at the untransformed store coordinate
		sx, sy, sz := v.ToDrawingCoord(1, 2, index)
		d.Borrow(func(cells *Vol[uint8]) {
			test.DemandEquality(t, cells.At(sx, sy, sz), uint8(9))
		})

		test.DemandSuccess(t, d.Undo())
	}
	test.ExpectEquality(t, d.Version(), int64(0))
}

// filling a region with the color it already holds produces no edit
func TestFloodFillNoop(t *testing.T) {
	d := NewDrawing(4, 4, 1, nil)
	d.Borrow(func(cells *Vol[uint8]) {
		for i := range cells.Raw() {
			cells.Raw()[i] = 5
		}
	})

	v := NewView(d)
	o := v.Overlay()

	_, ok := o.FloodFill(geometry.Point{X: 1, Y: 1}, 5, v.Layer(0))
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, d.Version(), int64(0))
}

func TestFloodFillBounded(t *testing.T) {
	d := NewDrawing(5, 5, 1, nil)
	d.Borrow(func(cells *Vol[uint8]) {
		// a wall down column 2
		for y := 0; y < 5; y++ {
			cells.Set(2, y, 0, 1)
		}
	})

	v := NewView(d)
	o := v.Overlay()

	rect, ok := o.FloodFill(geometry.Point{X: 0, Y: 0}, 7, v.Layer(0))
	test.ExpectSuccess(t, ok)

	data := o.Snapshot(rect)
	test.ExpectSuccess(t, v.ModifyLayer(0, rect, data, 7, "fill") == nil)

	d.Borrow(func(cells *Vol[uint8]) {
		// left of the wall filled, the wall and beyond untouched
		test.ExpectEquality(t, cells.At(0, 0, 0), uint8(7))
		test.ExpectEquality(t, cells.At(1, 4, 0), uint8(7))
		test.ExpectEquality(t, cells.At(2, 2, 0), uint8(1))
		test.ExpectEquality(t, cells.At(3, 0, 0), uint8(0))
	})
}

func TestViewOverlayReuse(t *testing.T) {
	d := NewDrawing(4, 5, 6, nil)
	v := NewView(d)

	o := v.Overlay()
	w, h := o.Size()
	test.ExpectEquality(t, w, 4)
	test.ExpectEquality(t, h, 5)

	// same orientation, same overlay
	test.ExpectSuccess(t, v.Overlay() == o)

	// a rotation with a different layer size gets its own overlay
	v.Rotate(1, 0, 0)
	o2 := v.Overlay()
	test.ExpectSuccess(t, o2 != o)
	w, h = o2.Size()
	test.ExpectEquality(t, w, 4)
	test.ExpectEquality(t, h, 6)

	// rotating back finds the original
	v.Rotate(-1, 0, 0)
	test.ExpectSuccess(t, v.Overlay() == o)
}

func TestMakeBrush(t *testing.T) {
	d := NewDrawing(4, 4, 2, nil)
	d.Borrow(func(cells *Vol[uint8]) {
		cells.Set(1, 1, 0, 3)
		cells.Set(2, 2, 0, 4)
	})

	v := NewView(d)
	v.SetCursor(0, 0, 0)

	b := v.MakeBrush(geometry.NewRectangle(1, 1, 2, 2))
	w, h := b.Size()
	test.ExpectEquality(t, w, 2)
	test.ExpectEquality(t, h, 2)
	test.ExpectEquality(t, len(d.Brushes), 1)

	data := b.DrawData(0, false)
	test.ExpectEquality(t, data.At(0, 0), raster.Paint(3))
	test.ExpectEquality(t, data.At(1, 1), raster.Paint(4))
	test.ExpectEquality(t, data.At(1, 0), uint32(0))
}

func TestVisibleColor(t *testing.T) {
	d := NewDrawing(3, 3, 3, nil)
	d.Borrow(func(cells *Vol[uint8]) {
		cells.Set(1, 1, 0, 2)
		cells.Set(1, 1, 1, 5)
	})

	v := NewView(d)
	test.ExpectEquality(t, v.VisibleColor(1, 1), uint8(2))

	// hiding the nearest layer exposes the one behind it
	v.SetLayerHidden(0, true)
	test.ExpectEquality(t, v.VisibleColor(1, 1), uint8(5))

	// transparent everywhere
	test.ExpectEquality(t, v.VisibleColor(0, 0), uint8(0))
	test.ExpectEquality(t, v.VisibleColor(-1, 0), uint8(0))
}
