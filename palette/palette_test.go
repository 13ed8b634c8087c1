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

package palette_test

import (
	"testing"

	"github.com/voxpaint/voxpaint/palette"
	"github.com/voxpaint/voxpaint/test"
)

func TestOverlay(t *testing.T) {
	p := palette.NewDefault()

	stored := p.Color(1)
	preview := palette.Color{R: 1, G: 2, B: 3, A: 255}

	p.SetOverlay(1, preview)
	test.ExpectEquality(t, p.Color(1), preview)
	test.ExpectEquality(t, p.Colors()[1], preview)

	// the overlay never touches storage
	test.ExpectEquality(t, p.GetColors(1, 1)[0], stored)

	p.ClearOverlay()
	test.ExpectEquality(t, p.Color(1), stored)
	test.ExpectEquality(t, p.Colors()[1], stored)
}

func TestSetColors(t *testing.T) {
	p := palette.NewDefault()

	repl := []palette.Color{
		{R: 10, A: 255},
		{R: 20, A: 255},
	}
	p.SetColors(4, repl)

	test.ExpectEquality(t, p.Color(4), repl[0])
	test.ExpectEquality(t, p.Color(5), repl[1])
	test.ExpectEquality(t, p.Colors()[4], repl[0])

	// out-of-range entries are ignored
	p.SetColors(palette.Size-1, repl)
	test.ExpectEquality(t, p.Color(palette.Size-1), repl[0])
}

func TestForegroundBackground(t *testing.T) {
	p := palette.NewDefault()

	test.ExpectEquality(t, p.Foreground, 1)
	test.ExpectEquality(t, p.Background, 0)
	test.ExpectEquality(t, p.ForegroundColor(), p.Color(1))

	p.Foreground = 3
	test.ExpectEquality(t, p.ForegroundColor(), p.Color(3))
}
