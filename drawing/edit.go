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
	"encoding/binary"
	"fmt"

	"github.com/voxpaint/voxpaint/crunched"
	"github.com/voxpaint/voxpaint/geometry"
	"github.com/voxpaint/voxpaint/palette"
)

// Edit is a single reversible entry in a drawing's journal. The set of edit
// kinds is closed: cell diffs, palette changes and the structural layer
// operations. Every edit is stamped with the drawing version it was created
// against; the drawing asserts the stamp before applying or reverting.
type Edit interface {
	// Name describes the edit for presentation in an undo/redo menu.
	Name() string

	// perform applies the edit to the drawing and returns the affected
	// region. perform takes the drawing's critical section itself, around
	// the cell mutation only.
	perform(d *Drawing) geometry.Box

	// revert is the exact inverse of perform.
	revert(d *Drawing) geometry.Box

	// baseVersion is the drawing version the edit was created against.
	baseVersion() int64
}

// cellDiff carries a signed delta for every cell in a box. The delta for a
// cell painted by the stroke is (new - old); the delta for an untouched cell
// is zero, so that unset stroke cells never perturb existing data. Deltas are
// stored compressed: a large brush stroke touches few distinct values and
// compresses to a fraction of the raw snapshot.
type cellDiff struct {
	box     geometry.Box
	delta   crunched.Data
	color   uint8
	name    string
	version int64
}

func newCellDiff(box geometry.Box, delta []int16, color uint8, name string, version int64) *cellDiff {
	b := make([]byte, 2*len(delta))
	for i, v := range delta {
		binary.LittleEndian.PutUint16(b[2*i:], uint16(v))
	}
	return &cellDiff{
		box:     box,
		delta:   crunched.NewZlib(b),
		color:   color,
		name:    name,
		version: version,
	}
}

func (e *cellDiff) Name() string {
	return e.name
}

func (e *cellDiff) baseVersion() int64 {
	return e.version
}

func (e *cellDiff) decode() []int16 {
	b := e.delta.Data()
	delta := make([]int16, len(b)/2)
	for i := range delta {
		delta[i] = int16(binary.LittleEndian.Uint16(b[2*i:]))
	}
	return delta
}

func (e *cellDiff) add(d *Drawing, sign int16) geometry.Box {
	// decompression happens before the critical section is entered
	delta := e.decode()

	d.crit.Lock()
	defer d.crit.Unlock()

	var i int
	for x := e.box.X; x < e.box.X+e.box.W; x++ {
		for y := e.box.Y; y < e.box.Y+e.box.H; y++ {
			for z := e.box.Z; z < e.box.Z+e.box.D; z++ {
				if delta[i] != 0 {
					v := int16(d.cells.At(x, y, z)) + sign*delta[i]
					d.cells.Set(x, y, z, uint8(v))
				}
				i++
			}
		}
	}

	return e.box
}

func (e *cellDiff) perform(d *Drawing) geometry.Box {
	return e.add(d, 1)
}

func (e *cellDiff) revert(d *Drawing) geometry.Box {
	return e.add(d, -1)
}

// paletteChange replaces a contiguous run of palette entries. The structure
// is symmetric: revert swaps the roles of the old and new colors.
type paletteChange struct {
	start   int
	old     []palette.Color
	new     []palette.Color
	version int64
}

func (e *paletteChange) Name() string {
	return "change colors"
}

func (e *paletteChange) baseVersion() int64 {
	return e.version
}

func (e *paletteChange) perform(d *Drawing) geometry.Box {
	d.crit.Lock()
	defer d.crit.Unlock()
	d.palette.SetColors(e.start, e.new)
	return d.bounds()
}

func (e *paletteChange) revert(d *Drawing) geometry.Box {
	d.crit.Lock()
	defer d.crit.Unlock()
	d.palette.SetColors(e.start, e.old)
	return d.bounds()
}

// layerSwap exchanges two layers along an axis, including their hidden
// flags. It is self-inverse.
type layerSwap struct {
	index1  int
	index2  int
	axis    int
	version int64
}

func (e *layerSwap) Name() string {
	return "swap layers"
}

func (e *layerSwap) baseVersion() int64 {
	return e.version
}

func (e *layerSwap) swap(d *Drawing) geometry.Box {
	d.crit.Lock()
	defer d.crit.Unlock()

	a := layerVol(d.cells, e.axis, e.index1)
	b := layerVol(d.cells, e.axis, e.index2)
	w, h, _ := a.Shape()
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			va := a.At(x, y, 0)
			a.Set(x, y, 0, b.At(x, y, 0))
			b.Set(x, y, 0, va)
		}
	}

	h1 := d.hidden[e.axis][e.index1]
	h2 := d.hidden[e.axis][e.index2]
	setHidden(d.hidden[e.axis], e.index1, h2)
	setHidden(d.hidden[e.axis], e.index2, h1)

	return layerBox(d, e.axis, e.index1).Unite(layerBox(d, e.axis, e.index2))
}

func (e *layerSwap) perform(d *Drawing) geometry.Box {
	return e.swap(d)
}

func (e *layerSwap) revert(d *Drawing) geometry.Box {
	return e.swap(d)
}

// layerInsert inserts count layers at index along an axis. The payload holds
// the cell contents of the inserted layers; a nil payload inserts empty
// layers. layerInsert and layerDelete are mutually inverse.
type layerInsert struct {
	index   int
	axis    int
	count   int
	payload crunched.Data
	version int64
}

func (e *layerInsert) Name() string {
	return "insert layers"
}

func (e *layerInsert) baseVersion() int64 {
	return e.version
}

func (e *layerInsert) perform(d *Drawing) geometry.Box {
	d.crit.Lock()
	defer d.crit.Unlock()

	var payload []byte
	if e.payload != nil {
		payload = e.payload.Data()
	}
	insertLayers(d, e.axis, e.index, e.count, payload)

	return tailBox(d, e.axis, e.index)
}

func (e *layerInsert) revert(d *Drawing) geometry.Box {
	d.crit.Lock()
	defer d.crit.Unlock()

	deleteLayers(d, e.axis, e.index, e.count)

	return tailBox(d, e.axis, e.index)
}

// layerDelete removes count layers at index along an axis. The removed slab
// and its hidden flags are captured at creation time so that revert can
// restore them verbatim.
type layerDelete struct {
	index   int
	axis    int
	count   int
	payload crunched.Data
	hidden  []int
	version int64
}

func (e *layerDelete) Name() string {
	return "delete layers"
}

func (e *layerDelete) baseVersion() int64 {
	return e.version
}

func (e *layerDelete) perform(d *Drawing) geometry.Box {
	d.crit.Lock()
	defer d.crit.Unlock()

	deleteLayers(d, e.axis, e.index, e.count)

	return tailBox(d, e.axis, e.index)
}

func (e *layerDelete) revert(d *Drawing) geometry.Box {
	d.crit.Lock()
	defer d.crit.Unlock()

	insertLayers(d, e.axis, e.index, e.count, e.payload.Data())
	for _, i := range e.hidden {
		setHidden(d.hidden[e.axis], i, true)
	}

	return tailBox(d, e.axis, e.index)
}

// volumeRotate rotates the whole drawing by 90 degree steps about an axis,
// physically rearranging the cells and remapping the hidden-layer sets of
// the two rotated axes.
type volumeRotate struct {
	amount  int
	axis    int
	version int64
}

func (e *volumeRotate) Name() string {
	return "rotate"
}

func (e *volumeRotate) baseVersion() int64 {
	return e.version
}

func (e *volumeRotate) perform(d *Drawing) geometry.Box {
	d.crit.Lock()
	defer d.crit.Unlock()
	rotateVolume(d, e.amount, e.axis)
	return d.bounds()
}

func (e *volumeRotate) revert(d *Drawing) geometry.Box {
	d.crit.Lock()
	defer d.crit.Unlock()
	rotateVolume(d, -e.amount, e.axis)
	return d.bounds()
}

// volumeFlip mirrors the whole drawing along an axis. Self-inverse.
type volumeFlip struct {
	axis    int
	version int64
}

func (e *volumeFlip) Name() string {
	return "flip"
}

func (e *volumeFlip) baseVersion() int64 {
	return e.version
}

func (e *volumeFlip) flip(d *Drawing) geometry.Box {
	d.crit.Lock()
	defer d.crit.Unlock()

	d.cells = d.cells.Flip(e.axis).Copy()

	dim := d.dim(e.axis)
	flipped := make(map[int]bool)
	for i := range d.hidden[e.axis] {
		flipped[dim-1-i] = true
	}
	d.hidden[e.axis] = flipped

	return d.bounds()
}

func (e *volumeFlip) perform(d *Drawing) geometry.Box {
	return e.flip(d)
}

func (e *volumeFlip) revert(d *Drawing) geometry.Box {
	return e.flip(d)
}

// rotationPlane returns the two axes perpendicular to the given axis, in the
// order that makes a positive rotation amount consistent across all axes.
func rotationPlane(axis int) (int, int) {
	switch axis {
	case 0:
		return 1, 2
	case 1:
		return 2, 0
	case 2:
		return 0, 1
	}
	panic(fmt.Sprintf("drawing: no such axis: %d", axis))
}

func rotateVolume(d *Drawing, amount, axis int) {
	a, b := rotationPlane(axis)

	w, h, dp := d.cells.Shape()
	dims := [3]int{w, h, dp}

	d.cells = d.cells.Rot90(amount, a, b).Copy()

	// remap the hidden sets of the two rotated axes one quarter turn at a
	// time. a turn from axis a towards axis b moves the layer at index i
	// along b to index dims[b]-1-i along a, and layers along a to the same
	// index along b
	k := ((amount % 4) + 4) % 4
	ha, hb := d.hidden[a], d.hidden[b]
	for n := 0; n < k; n++ {
		newA := make(map[int]bool)
		for i := range hb {
			newA[dims[b]-1-i] = true
		}
		newB := make(map[int]bool)
		for i := range ha {
			newB[i] = true
		}
		ha, hb = newA, newB
		dims[a], dims[b] = dims[b], dims[a]
	}
	d.hidden[a], d.hidden[b] = ha, hb
}

func insertLayers(d *Drawing, axis, index, count int, payload []byte) {
	w, h, dp := d.cells.Shape()
	shape := [3]int{w, h, dp}
	shape[axis] += count

	cells := make([]uint8, shape[0]*shape[1]*shape[2])
	grown := NewVol(cells, shape[0], shape[1], shape[2])

	// payload cells are ordered slab by slab, each slab a contiguous layer
	slab := layerSize(d, axis)

	var p [3]int
	for p[0] = 0; p[0] < shape[0]; p[0]++ {
		for p[1] = 0; p[1] < shape[1]; p[1]++ {
			for p[2] = 0; p[2] < shape[2]; p[2]++ {
				i := p[axis]
				var v uint8
				switch {
				case i < index:
					v = atIndex(d.cells, p, axis, i)
				case i < index+count:
					if payload != nil {
						v = payload[slabIndex(shape, axis, p, i-index, slab)]
					}
				default:
					v = atIndex(d.cells, p, axis, i-count)
				}
				grown.Set(p[0], p[1], p[2], v)
			}
		}
	}

	d.cells = grown

	// hidden indices at or above the insertion point shift up
	shifted := make(map[int]bool)
	for i := range d.hidden[axis] {
		if i >= index {
			shifted[i+count] = true
		} else {
			shifted[i] = true
		}
	}
	d.hidden[axis] = shifted
}

func deleteLayers(d *Drawing, axis, index, count int) {
	w, h, dp := d.cells.Shape()
	shape := [3]int{w, h, dp}
	shape[axis] -= count

	cells := make([]uint8, shape[0]*shape[1]*shape[2])
	shrunk := NewVol(cells, shape[0], shape[1], shape[2])

	var p [3]int
	for p[0] = 0; p[0] < shape[0]; p[0]++ {
		for p[1] = 0; p[1] < shape[1]; p[1]++ {
			for p[2] = 0; p[2] < shape[2]; p[2]++ {
				i := p[axis]
				if i >= index {
					i += count
				}
				shrunk.Set(p[0], p[1], p[2], atIndex(d.cells, p, axis, i))
			}
		}
	}

	d.cells = shrunk

	// hidden indices inside the deleted range are dropped; those above it
	// shift down
	shifted := make(map[int]bool)
	for i := range d.hidden[axis] {
		if i < index {
			shifted[i] = true
		} else if i >= index+count {
			shifted[i-count] = true
		}
	}
	d.hidden[axis] = shifted
}

// crunchSlab compresses a captured slab payload for storage in the journal.
func crunchSlab(payload []byte) crunched.Data {
	return crunched.NewZlib(payload)
}

// captureSlab copies the cells of count layers starting at index along an
// axis, slab by slab, for use as a layerInsert/layerDelete payload.
func captureSlab(d *Drawing, axis, index, count int) []byte {
	w, h, dp := d.cells.Shape()
	shape := [3]int{w, h, dp}
	slab := layerSize(d, axis)
	payload := make([]byte, slab*count)

	var p [3]int
	for p[0] = 0; p[0] < shape[0]; p[0]++ {
		for p[1] = 0; p[1] < shape[1]; p[1]++ {
			for p[2] = 0; p[2] < shape[2]; p[2]++ {
				i := p[axis]
				if i >= index && i < index+count {
					payload[slabIndex(shape, axis, p, i-index, slab)] = d.cells.At(p[0], p[1], p[2])
				}
			}
		}
	}

	return payload
}

// layerVol returns a writable view of a single layer along an axis, shaped
// (w, h, 1) where w and h are the extents of the two other axes in order.
func layerVol(v *Vol[uint8], axis, index int) *Vol[uint8] {
	// cycle the layer axis into the depth position with two swaps so the
	// two non-layer axes keep their relative order
	switch axis {
	case 0:
		v = v.swapAxes(0, 1).swapAxes(1, 2) // (y, z, x)
	case 1:
		v = v.swapAxes(1, 2).swapAxes(0, 1) // (z, x, y)
	}

	lv := v.view()
	lv.offset += index * lv.stride[2]
	lv.shape[2] = 1
	return lv
}

// slabIndex computes the offset into a slab payload for cell p, where n is
// the layer ordinal within the slab and slab is the cell count of one layer.
func slabIndex(shape [3]int, axis int, p [3]int, n, slab int) int {
	var a, b int
	switch axis {
	case 0:
		a, b = p[1], p[2]
		return n*slab + a*shape[2] + b
	case 1:
		a, b = p[0], p[2]
		return n*slab + a*shape[2] + b
	default:
		a, b = p[0], p[1]
		return n*slab + a*shape[1] + b
	}
}

// atIndex reads the cell at position p with the coordinate along axis
// replaced by i.
func atIndex(v *Vol[uint8], p [3]int, axis, i int) uint8 {
	q := p
	q[axis] = i
	return v.At(q[0], q[1], q[2])
}

// layerSize returns the number of cells in one layer along an axis.
func layerSize(d *Drawing, axis int) int {
	w, h, dp := d.cells.Shape()
	switch axis {
	case 0:
		return h * dp
	case 1:
		return w * dp
	default:
		return w * h
	}
}

// layerBox returns the box covering a single layer along an axis.
func layerBox(d *Drawing, axis, index int) geometry.Box {
	b := d.bounds()
	switch axis {
	case 0:
		b.X = index
		b.W = 1
	case 1:
		b.Y = index
		b.H = 1
	default:
		b.Z = index
		b.D = 1
	}
	return b
}

// tailBox returns the box covering every layer from index to the end of the
// drawing along an axis. Structural edits report this as their affected
// region since every layer above the edit point moves.
func tailBox(d *Drawing, axis, index int) geometry.Box {
	b := d.bounds()
	switch axis {
	case 0:
		b.X = index
		b.W -= index
	case 1:
		b.Y = index
		b.H -= index
	default:
		b.Z = index
		b.D -= index
	}
	return b
}

func setHidden(m map[int]bool, i int, hidden bool) {
	if hidden {
		m[i] = true
	} else {
		delete(m, i)
	}
}
