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

// Package brush implements the stamps applied along a stroke path. A brush
// produces a raster.Buffer of painted cells for a requested color; the
// overlay stamps that buffer repeatedly as the pointer moves.
//
// Draw data is memoized for the most recently requested colors since a
// stroke requests the same draw data for every stamp.
package brush

import "github.com/voxpaint/voxpaint/raster"

// Brush produces the draw data stamped into an overlay.
type Brush interface {
	// Size returns the width and height of the brush.
	Size() (int, int)

	// Center returns the offset from the brush's top-left corner to the
	// cell that should be placed under the pointer.
	Center() (int, int)

	// DrawData returns the brush cells painted with the given color. For
	// image brushes, colorize replaces the brush's own colors with the
	// given one. The returned buffer is shared: callers must not modify it.
	DrawData(color uint8, colorize bool) *raster.Buffer
}

// memo caches draw data for the two most recently requested color/colorize
// pairs. Two entries is enough for a stroke alternating between foreground
// and background colors.
type memo struct {
	keys [2]memoKey
	data [2]*raster.Buffer
	next int
}

type memoKey struct {
	color    uint8
	colorize bool
	valid    bool
}

func (m *memo) lookup(color uint8, colorize bool) *raster.Buffer {
	for i, k := range m.keys {
		if k.valid && k.color == color && k.colorize == colorize {
			return m.data[i]
		}
	}
	return nil
}

func (m *memo) store(color uint8, colorize bool, data *raster.Buffer) {
	m.keys[m.next] = memoKey{color: color, colorize: colorize, valid: true}
	m.data[m.next] = data
	m.next = (m.next + 1) % len(m.keys)
}
