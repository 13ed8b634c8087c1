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

package plugin_test

import (
	"testing"

	"github.com/voxpaint/voxpaint/drawing"
	"github.com/voxpaint/voxpaint/plugin"
	"github.com/voxpaint/voxpaint/test"
)

func TestAccess(t *testing.T) {
	d := drawing.NewDrawing(3, 3, 2, nil)
	d.Borrow(func(cells *drawing.Vol[uint8]) {
		cells.Set(1, 2, 0, 7)
	})

	a := plugin.NewAccess(d)

	w, h, dp := a.Shape()
	test.ExpectEquality(t, w, 3)
	test.ExpectEquality(t, h, 3)
	test.ExpectEquality(t, dp, 2)

	test.ExpectEquality(t, a.Cell(1, 2, 0), uint8(7))

	layer := a.Layer(2, 0)
	test.ExpectEquality(t, len(layer), 9)
	test.ExpectEquality(t, layer[2*3+1], uint8(7))
}

func TestBuiltinRegistered(t *testing.T) {
	names := plugin.Names()
	found := make(map[string]bool)
	for _, n := range names {
		found[n] = true
	}
	test.ExpectSuccess(t, found["invert palette"])
	test.ExpectSuccess(t, found["grayscale palette"])
}

func TestRunJournalsPaletteChange(t *testing.T) {
	d := drawing.NewDrawing(2, 2, 1, nil)
	before := d.Palette().Color(1)

	test.ExpectSuccess(t, plugin.Run("invert palette", d) == nil)
	test.ExpectEquality(t, d.Version(), int64(1))

	after := d.Palette().Color(1)
	test.ExpectEquality(t, after.R, 255-before.R)

	// a plugin's palette change is a single undoable edit
	test.ExpectSuccess(t, d.Undo())
	test.ExpectEquality(t, d.Palette().Color(1), before)
	test.ExpectEquality(t, d.Version(), int64(0))

	// an unknown plugin is a no-op
	test.ExpectSuccess(t, plugin.Run("no such plugin", d) == nil)
	test.ExpectEquality(t, d.Version(), int64(0))
}
