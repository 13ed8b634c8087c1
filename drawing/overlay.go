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
	"sync"

	"github.com/voxpaint/voxpaint/brush"
	"github.com/voxpaint/voxpaint/geometry"
	"github.com/voxpaint/voxpaint/raster"
)

// Overlay is the scratch buffer an in-progress stroke draws into. It sits
// over one layer of a view and is displayed on top of it; when the stroke
// finishes, the painted region is folded into the drawing as a single edit
// and the overlay is wiped.
//
// The stroke worker draws into the overlay while a renderer polls it for
// display, so the overlay carries its own lock and dirty rectangle,
// independent of the drawing's. Every drawing method returns the touched
// area, with ok false when nothing was touched, so tools can accumulate the
// extent of a stroke.
type Overlay struct {
	crit sync.Mutex

	buffer *raster.Buffer
	dirty  *geometry.Rectangle
}

// NewOverlay creates an overlay of the given size with every cell unset.
func NewOverlay(w, h int) *Overlay {
	return &Overlay{
		buffer: raster.NewBuffer(w, h),
	}
}

// Size returns the overlay's width and height.
func (o *Overlay) Size() (int, int) {
	return o.buffer.W, o.buffer.H
}

// markDirty folds a primitive's result into the dirty rectangle. Must be
// called with crit held.
func (o *Overlay) markDirty(rect geometry.Rectangle, ok bool) (geometry.Rectangle, bool) {
	if ok {
		o.dirty = geometry.UniteRect(o.dirty, rect)
	}
	return rect, ok
}

// Clear unsets every cell in rect.
func (o *Overlay) Clear(rect geometry.Rectangle) (geometry.Rectangle, bool) {
	o.crit.Lock()
	defer o.crit.Unlock()
	return o.markDirty(o.buffer.Clear(rect))
}

// ClearAll unsets the whole overlay.
func (o *Overlay) ClearAll() (geometry.Rectangle, bool) {
	o.crit.Lock()
	defer o.crit.Unlock()
	return o.markDirty(o.buffer.Clear(o.buffer.Rect()))
}

// anchor positions a brush's draw data so its center cell lands on p.
func anchor(b brush.Brush, p geometry.Point) geometry.Point {
	cx, cy := b.Center()
	return geometry.Point{X: p.X - cx, Y: p.Y - cy}
}

// Blit stamps a brush at a point.
func (o *Overlay) Blit(b brush.Brush, p geometry.Point, color uint8, colorize bool) (geometry.Rectangle, bool) {
	data := b.DrawData(color, colorize)
	a := anchor(b, p)

	o.crit.Lock()
	defer o.crit.Unlock()
	return o.markDirty(raster.Blit(o.buffer, data, a.X, a.Y))
}

// DrawLine stamps a brush along the line from p0 to p1 inclusive.
func (o *Overlay) DrawLine(b brush.Brush, p0, p1 geometry.Point, color uint8, colorize bool) (geometry.Rectangle, bool) {
	data := b.DrawData(color, colorize)

	o.crit.Lock()
	defer o.crit.Unlock()
	return o.markDirty(raster.DrawLine(o.buffer, data, anchor(b, p0), anchor(b, p1)))
}

// DrawRectangle strokes the rectangle with corners p0 and p1 with the brush,
// optionally filling the interior with the fill color.
func (o *Overlay) DrawRectangle(b brush.Brush, p0, p1 geometry.Point, color uint8, colorize bool, fill uint8, filled bool) (geometry.Rectangle, bool) {
	data := b.DrawData(color, colorize)
	rect := geometry.FromPoints(p0, p1)
	a := anchor(b, geometry.Point{X: rect.X, Y: rect.Y})

	o.crit.Lock()
	defer o.crit.Unlock()
	return o.markDirty(raster.DrawRectangle(o.buffer, data, a, rect.W, rect.H, raster.Paint(fill), filled))
}

// FloodFill paints the contiguous region of the layer around p that shares
// p's color, replacing it with the given color. The layer volume must be the
// overlay-sized view layer the stroke is on. Filling a region with its own
// color touches nothing, so no edit is produced when the stroke finishes.
func (o *Overlay) FloodFill(p geometry.Point, color uint8, layer *Vol[uint8]) (geometry.Rectangle, bool) {
	w, h, _ := layer.Shape()
	if p.X < 0 || p.X >= w || p.Y < 0 || p.Y >= h {
		return geometry.Rectangle{}, false
	}
	if layer.At(p.X, p.Y, 0) == color {
		return geometry.Rectangle{}, false
	}

	// fill a scratch copy of the layer. the scratch holds bare cell values,
	// never equal to a painted fill value, so the fill can never stall on
	// its own output; the painted cells afterwards are exactly the filled
	// region
	scratch := raster.NewBuffer(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			scratch.Set(x, y, uint32(layer.At(x, y, 0)))
		}
	}

	rect, ok := raster.FloodFill(scratch, p, raster.Paint(color))
	if !ok {
		return geometry.Rectangle{}, false
	}

	o.crit.Lock()
	defer o.crit.Unlock()
	raster.Blit(o.buffer, scratch, 0, 0)
	return o.markDirty(rect, true)
}

// Snapshot copies a rectangle of the overlay into a new buffer of the
// rectangle's size. Used when a stroke finishes to hand its painted cells to
// the journal.
func (o *Overlay) Snapshot(rect geometry.Rectangle) *raster.Buffer {
	o.crit.Lock()
	defer o.crit.Unlock()

	s := raster.NewBuffer(rect.W, rect.H)
	for j := 0; j < rect.H; j++ {
		for i := 0; i < rect.W; i++ {
			s.Set(i, j, o.buffer.At(rect.X+i, rect.Y+j))
		}
	}
	return s
}

// BorrowDirty is the renderer's path to fresh overlay data, mirroring
// Drawing.BorrowDirty. Returns false if the lock is contended or nothing is
// dirty.
func (o *Overlay) BorrowDirty(f func(rect geometry.Rectangle, buffer *raster.Buffer)) bool {
	if !o.crit.TryLock() {
		return false
	}
	defer o.crit.Unlock()

	if o.dirty == nil {
		return false
	}
	rect := *o.dirty
	o.dirty = nil
	f(rect, o.buffer)
	return true
}
