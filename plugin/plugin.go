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

// Package plugin defines the narrow surface the application exposes to
// drawing plugins. A plugin can read cells, shape and palette, but its only
// mutation path is a palette change, and that goes through the drawing's
// journal like any other edit. Plugins can never bypass undo.
//
// Plugins run on the stroke executor goroutine, never concurrently with a
// stroke.
package plugin

import (
	"sort"
	"sync"

	"github.com/voxpaint/voxpaint/drawing"
	"github.com/voxpaint/voxpaint/logger"
	"github.com/voxpaint/voxpaint/palette"
)

// Plugin is implemented by every registered plugin.
type Plugin interface {
	// Name identifies the plugin in menus and log entries.
	Name() string

	// Apply runs the plugin against a drawing.
	Apply(a *Access) error
}

// Access is the restricted view of a drawing handed to a plugin.
type Access struct {
	d *drawing.Drawing
}

// NewAccess wraps a drawing for plugin use.
func NewAccess(d *drawing.Drawing) *Access {
	return &Access{d: d}
}

// Shape returns the extent of the drawing along each axis.
func (a *Access) Shape() (int, int, int) {
	return a.d.Shape()
}

// Cell returns the palette index of a single cell.
func (a *Access) Cell(x, y, z int) uint8 {
	var c uint8
	a.d.Borrow(func(cells *drawing.Vol[uint8]) {
		c = cells.At(x, y, z)
	})
	return c
}

// Layer copies the cells of one layer along an axis, in row order.
func (a *Access) Layer(axis, index int) []uint8 {
	w, h, d := a.d.Shape()
	var cells []uint8
	a.d.Borrow(func(vol *drawing.Vol[uint8]) {
		switch axis {
		case 0:
			cells = make([]uint8, h*d)
			for y := 0; y < h; y++ {
				for z := 0; z < d; z++ {
					cells[y*d+z] = vol.At(index, y, z)
				}
			}
		case 1:
			cells = make([]uint8, w*d)
			for x := 0; x < w; x++ {
				for z := 0; z < d; z++ {
					cells[x*d+z] = vol.At(x, index, z)
				}
			}
		default:
			cells = make([]uint8, w*h)
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					cells[y*w+x] = vol.At(x, y, index)
				}
			}
		}
	})
	return cells
}

// Colors returns a copy of the drawing's palette.
func (a *Access) Colors() []palette.Color {
	return a.d.Palette().GetColors(0, palette.Size)
}

// ChangeColors replaces a run of palette entries through the drawing's
// journal. This is the only mutation available to a plugin.
func (a *Access) ChangeColors(start int, colors []palette.Color) error {
	return a.d.ChangeColors(start, colors)
}

var registry = struct {
	crit    sync.Mutex
	plugins map[string]Plugin
}{
	plugins: make(map[string]Plugin),
}

// Register adds a plugin to the registry, replacing any previous plugin of
// the same name.
func Register(p Plugin) {
	registry.crit.Lock()
	defer registry.crit.Unlock()
	registry.plugins[p.Name()] = p
}

// Names returns the sorted names of the registered plugins.
func Names() []string {
	registry.crit.Lock()
	defer registry.crit.Unlock()

	names := make([]string, 0, len(registry.plugins))
	for n := range registry.plugins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Run applies the named plugin to the drawing. Must be called on the stroke
// executor goroutine.
func Run(name string, d *drawing.Drawing) error {
	registry.crit.Lock()
	p, ok := registry.plugins[name]
	registry.crit.Unlock()

	if !ok {
		return nil
	}
	if err := p.Apply(NewAccess(d)); err != nil {
		logger.Logf(logger.Allow, "plugin", "%s: %v", name, err)
		return err
	}
	return nil
}
