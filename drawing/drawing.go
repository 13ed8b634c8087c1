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

// Package drawing implements the data core of the application: a 3D volume
// of indexed-color cells, the reversible journal of edits applied to it, and
// the orientation-independent views through which it is inspected and
// modified.
//
// A Drawing is mutated from a single goroutine, the stroke worker. Renderers
// on other goroutines never mutate; they poll the version counter and borrow
// the critical section briefly to copy cells for display. The critical
// section is never held for long: edits prepare their data (decompression,
// delta decoding) outside of it and only take it around the cell mutation
// itself.
package drawing

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/voxpaint/voxpaint/brush"
	"github.com/voxpaint/voxpaint/curated"
	"github.com/voxpaint/voxpaint/geometry"
	"github.com/voxpaint/voxpaint/palette"
)

// Drawing is a 3D volume of indexed-color cells together with its palette,
// per-axis hidden-layer sets and the journal of edits that produced it.
type Drawing struct {
	// crit guards cells, palette storage, the hidden sets and the dirty
	// region. it must be held only briefly
	crit sync.Mutex

	cells   *Vol[uint8]
	palette *palette.Palette

	// hidden[axis] is the set of layer indices along that axis excluded
	// from display. indices are in store space. visibility is presentation
	// state and is not journaled, but structural edits renumber it
	hidden [3]map[int]bool

	// the journal. undos and redos are touched only by the stroke worker
	undos []Edit
	redos []Edit

	// version increments on every applied edit and decrements on every
	// reverted one. it is the sole ordering authority: renderers poll it to
	// decide whether anything has changed
	version   atomic.Int64
	lastSaved atomic.Int64

	// accumulated region not yet acknowledged by the renderer. nil means
	// nothing is dirty
	dirty *geometry.Box

	// path of the file the drawing was loaded from or last saved to
	path string

	// brushes captured from the drawing with MakeBrush. accessed from the
	// gui goroutine only
	Brushes []brush.Brush
}

// NewDrawing creates an empty drawing of the given shape. The entire volume
// starts dirty so that a renderer's first poll uploads everything.
func NewDrawing(w, h, d int, pal *palette.Palette) *Drawing {
	if pal == nil {
		pal = palette.NewDefault()
	}
	dw := &Drawing{
		cells:   NewVol(make([]uint8, w*h*d), w, h, d),
		palette: pal,
	}
	for i := range dw.hidden {
		dw.hidden[i] = make(map[int]bool)
	}
	b := dw.bounds()
	dw.dirty = &b
	return dw
}

// NewDrawingFromCells creates a drawing over existing cell data, as read
// from a file. The cells slice holds x varying slowest and z fastest and is
// adopted, not copied.
func NewDrawingFromCells(cells []uint8, w, h, d int, pal *palette.Palette, hidden [3][]int, path string) *Drawing {
	dw := NewDrawing(w, h, d, pal)
	copy(dw.cells.Raw(), cells)
	for axis := range hidden {
		for _, i := range hidden[axis] {
			dw.hidden[axis][i] = true
		}
	}
	dw.path = path
	return dw
}

// bounds returns the box covering the whole volume. Callers that need a
// consistent shape must hold crit; the edits in this package do.
func (d *Drawing) bounds() geometry.Box {
	w, h, dp := d.cells.Shape()
	return geometry.NewBox(0, 0, 0, w, h, dp)
}

func (d *Drawing) dim(axis int) int {
	w, h, dp := d.cells.Shape()
	return [3]int{w, h, dp}[axis]
}

// Shape returns the extent of the drawing along each axis.
func (d *Drawing) Shape() (int, int, int) {
	d.crit.Lock()
	defer d.crit.Unlock()
	return d.cells.Shape()
}

// Palette returns the drawing's palette.
func (d *Drawing) Palette() *palette.Palette {
	return d.palette
}

// Path returns the file the drawing was loaded from or last saved to. Empty
// for a drawing that has never touched disk.
func (d *Drawing) Path() string {
	return d.path
}

// Version returns the current journal version. Zero for a drawing with no
// applied edits.
func (d *Drawing) Version() int64 {
	return d.version.Load()
}

// Unsaved returns true if the drawing has changed since it was last saved.
func (d *Drawing) Unsaved() bool {
	return d.version.Load() != d.lastSaved.Load()
}

// MarkSaved records that the drawing's current state is on disk at path.
// Autosaves do not call this: they must not stop the title bar showing
// unsaved changes.
func (d *Drawing) MarkSaved(path string) {
	d.path = path
	d.lastSaved.Store(d.version.Load())
}

// markDirty folds a box into the accumulated dirty region.
func (d *Drawing) markDirty(box geometry.Box) {
	d.crit.Lock()
	defer d.crit.Unlock()
	d.dirty = geometry.UniteBox(d.dirty, box)
}

// record applies a fresh edit, pushes it onto the undo stack and empties the
// redo stack. Every user-visible mutation of cell or palette data funnels
// through here.
func (d *Drawing) record(e Edit) {
	if v := d.version.Load(); v != e.baseVersion() {
		panic(fmt.Sprintf("drawing: edit for version %d applied at version %d", e.baseVersion(), v))
	}
	box := e.perform(d)
	d.markDirty(box)
	d.version.Store(e.baseVersion() + 1)
	d.undos = append(d.undos, e)
	d.redos = d.redos[:0]
}

// Modify applies a cell diff covering the given box. The delta slice holds
// one signed value per cell in the box, x varying slowest and z fastest;
// zero entries leave their cell untouched. The name labels the edit in the
// undo menu.
func (d *Drawing) Modify(box geometry.Box, delta []int16, color uint8, name string) error {
	if box.W*box.H*box.D != len(delta) {
		return curated.Errorf("drawing: %d deltas for box of %d cells", len(delta), box.W*box.H*box.D)
	}
	d.record(newCellDiff(box, delta, color, name, d.version.Load()))
	return nil
}

// ChangeColors replaces a run of palette entries through the journal, so
// that the change is undoable like any other edit.
func (d *Drawing) ChangeColors(start int, colors []palette.Color) error {
	if start < 0 || start+len(colors) > palette.Size {
		return curated.Errorf("drawing: palette change out of range: %d+%d", start, len(colors))
	}
	old := d.palette.GetColors(start, len(colors))
	d.record(&paletteChange{
		start:   start,
		old:     old,
		new:     colors,
		version: d.version.Load(),
	})
	return nil
}

// Undo reverts the most recent edit. Returns false if the journal is empty.
func (d *Drawing) Undo() bool {
	if len(d.undos) == 0 {
		return false
	}
	e := d.undos[len(d.undos)-1]
	d.undos = d.undos[:len(d.undos)-1]

	if v := d.version.Load(); v != e.baseVersion()+1 {
		panic(fmt.Sprintf("drawing: undo of edit for version %d at version %d", e.baseVersion(), v))
	}
	box := e.revert(d)
	d.markDirty(box)
	d.version.Store(e.baseVersion())
	d.redos = append(d.redos, e)
	return true
}

// Redo reapplies the most recently undone edit. Returns false if there is
// nothing to redo.
func (d *Drawing) Redo() bool {
	if len(d.redos) == 0 {
		return false
	}
	e := d.redos[len(d.redos)-1]
	d.redos = d.redos[:len(d.redos)-1]

	if v := d.version.Load(); v != e.baseVersion() {
		panic(fmt.Sprintf("drawing: redo of edit for version %d at version %d", e.baseVersion(), v))
	}
	box := e.perform(d)
	d.markDirty(box)
	d.version.Store(e.baseVersion() + 1)
	d.undos = append(d.undos, e)
	return true
}

// CanUndo returns true if the undo stack is not empty, along with the name
// of the edit that would be reverted.
func (d *Drawing) CanUndo() (string, bool) {
	if len(d.undos) == 0 {
		return "", false
	}
	return d.undos[len(d.undos)-1].Name(), true
}

// CanRedo returns true if the redo stack is not empty, along with the name
// of the edit that would be reapplied.
func (d *Drawing) CanRedo() (string, bool) {
	if len(d.redos) == 0 {
		return "", false
	}
	return d.redos[len(d.redos)-1].Name(), true
}

func (d *Drawing) checkLayer(axis, index int) error {
	if axis < 0 || axis > 2 {
		return curated.Errorf("drawing: no such axis: %d", axis)
	}
	if index < 0 || index >= d.dim(axis) {
		return curated.Errorf("drawing: no such layer: %d (axis %d)", index, axis)
	}
	return nil
}

// InsertLayers inserts count empty layers at index along an axis. Layers at
// or above index shift up, as do their hidden flags.
func (d *Drawing) InsertLayers(axis, index, count int) error {
	if axis < 0 || axis > 2 {
		return curated.Errorf("drawing: no such axis: %d", axis)
	}
	if index < 0 || index > d.dim(axis) || count < 1 {
		return curated.Errorf("drawing: cannot insert %d layers at %d (axis %d)", count, index, axis)
	}
	d.record(&layerInsert{
		index:   index,
		axis:    axis,
		count:   count,
		version: d.version.Load(),
	})
	return nil
}

// DuplicateLayer inserts a copy of the layer at index directly above it.
func (d *Drawing) DuplicateLayer(axis, index int) error {
	if err := d.checkLayer(axis, index); err != nil {
		return err
	}

	d.crit.Lock()
	payload := captureSlab(d, axis, index, 1)
	d.crit.Unlock()

	d.record(&layerInsert{
		index:   index + 1,
		axis:    axis,
		count:   1,
		payload: crunchSlab(payload),
		version: d.version.Load(),
	})
	return nil
}

// DeleteLayers removes count layers starting at index along an axis. The
// removed cells and hidden flags are captured so the edit can be undone. The
// last remaining layer along an axis cannot be deleted.
func (d *Drawing) DeleteLayers(axis, index, count int) error {
	if err := d.checkLayer(axis, index); err != nil {
		return err
	}
	if count < 1 || index+count > d.dim(axis) {
		return curated.Errorf("drawing: cannot delete %d layers at %d (axis %d)", count, index, axis)
	}
	if count >= d.dim(axis) {
		return curated.Errorf("drawing: cannot delete every layer (axis %d)", axis)
	}

	d.crit.Lock()
	payload := captureSlab(d, axis, index, count)
	var hidden []int
	for i := range d.hidden[axis] {
		if i >= index && i < index+count {
			hidden = append(hidden, i)
		}
	}
	d.crit.Unlock()

	d.record(&layerDelete{
		index:   index,
		axis:    axis,
		count:   count,
		payload: crunchSlab(payload),
		hidden:  hidden,
		version: d.version.Load(),
	})
	return nil
}

// SwapLayers exchanges two layers along an axis, hidden flags included.
func (d *Drawing) SwapLayers(axis, index1, index2 int) error {
	if err := d.checkLayer(axis, index1); err != nil {
		return err
	}
	if err := d.checkLayer(axis, index2); err != nil {
		return err
	}
	if index1 == index2 {
		return nil
	}
	d.record(&layerSwap{
		index1:  index1,
		index2:  index2,
		axis:    axis,
		version: d.version.Load(),
	})
	return nil
}

// Rotate turns the whole drawing by amount 90 degree steps about an axis.
func (d *Drawing) Rotate(amount, axis int) error {
	if axis < 0 || axis > 2 {
		return curated.Errorf("drawing: no such axis: %d", axis)
	}
	if ((amount%4)+4)%4 == 0 {
		return nil
	}
	d.record(&volumeRotate{
		amount:  amount,
		axis:    axis,
		version: d.version.Load(),
	})
	return nil
}

// Flip mirrors the whole drawing along an axis.
func (d *Drawing) Flip(axis int) error {
	if axis < 0 || axis > 2 {
		return curated.Errorf("drawing: no such axis: %d", axis)
	}
	d.record(&volumeFlip{
		axis:    axis,
		version: d.version.Load(),
	})
	return nil
}

// SetLayerHidden excludes or includes a layer in display. Visibility is
// presentation state, not drawing data: it does not pass through the
// journal and does not change the version.
func (d *Drawing) SetLayerHidden(axis, index int, hidden bool) {
	d.crit.Lock()
	setHidden(d.hidden[axis], index, hidden)
	d.dirty = geometry.UniteBox(d.dirty, layerBox(d, axis, index))
	d.crit.Unlock()
}

// LayerVisible returns true if the layer at index along an axis is not
// hidden.
func (d *Drawing) LayerVisible(axis, index int) bool {
	d.crit.Lock()
	defer d.crit.Unlock()
	return !d.hidden[axis][index]
}

// HiddenLayers returns the sorted hidden layer indices along an axis.
func (d *Drawing) HiddenLayers(axis int) []int {
	d.crit.Lock()
	defer d.crit.Unlock()
	layers := make([]int, 0, len(d.hidden[axis]))
	for i := range d.hidden[axis] {
		layers = append(layers, i)
	}
	sort.Ints(layers)
	return layers
}

// Borrow calls f with the drawing's cells while holding the critical
// section. f must not retain the volume and must return quickly.
func (d *Drawing) Borrow(f func(cells *Vol[uint8])) {
	d.crit.Lock()
	defer d.crit.Unlock()
	f(d.cells)
}

// BorrowDirty is the renderer's path to fresh cell data. If the critical
// section is available and a region is dirty, f is called with the region
// and the cells, the region is cleared, and BorrowDirty returns true. If the
// critical section is contended the renderer simply tries again next frame.
func (d *Drawing) BorrowDirty(f func(box geometry.Box, cells *Vol[uint8])) bool {
	if !d.crit.TryLock() {
		return false
	}
	defer d.crit.Unlock()

	if d.dirty == nil {
		return false
	}
	box := *d.dirty
	d.dirty = nil
	f(box, d.cells)
	return true
}

// SetAllDirty marks the whole volume dirty, forcing the next renderer poll
// to refresh everything.
func (d *Drawing) SetAllDirty() {
	d.crit.Lock()
	b := d.bounds()
	d.dirty = &b
	d.crit.Unlock()
}
