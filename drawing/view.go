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
	"math"

	"github.com/voxpaint/voxpaint/brush"
	"github.com/voxpaint/voxpaint/geometry"
	"github.com/voxpaint/voxpaint/raster"
)

// View is an oriented way of looking at a drawing. It holds no cell data of
// its own: its data is a strided view of the drawing's cells, rotated by the
// view's quarter-turn rotation about each axis. Several views of the same
// drawing can exist at once and all see every edit immediately.
//
// View coordinates are (x, y, layer) in the rotated volume. The cursor is
// kept in store coordinates so it stays on the same cell when the view
// rotates.
type View struct {
	Drawing *Drawing

	// quarter turns about the x, y and z axes
	rotation [3]int

	// store-space cursor position. clamped against the drawing's current
	// shape whenever it is read, since structural edits can shrink the
	// volume underneath it
	cursor [3]int

	// one overlay per view size. at most three sizes exist, one per
	// permutation of the drawing's shape
	overlays map[[2]int]*Overlay

	// presentation state used by the gui
	Zoom    int
	OffsetX int
	OffsetY int
}

// NewView creates a view of the drawing looking along the z axis, with the
// cursor at the volume's center.
func NewView(d *Drawing) *View {
	w, h, dp := d.Shape()
	return &View{
		Drawing:  d,
		cursor:   [3]int{w / 2, h / 2, dp / 2},
		overlays: make(map[[2]int]*Overlay),
		Zoom:     2,
	}
}

func mod4(k int) int {
	return ((k % 4) + 4) % 4
}

// rotVol applies a view rotation to a volume: first the z turns in the
// (x, y) plane, then the x turns in (y, z), then the y turns in (z, x). The
// order matters and is fixed for the life of the file format.
func rotVol[T any](v *Vol[T], r [3]int) *Vol[T] {
	return v.Rot90(r[2], 0, 1).Rot90(r[0], 1, 2).Rot90(r[1], 2, 0)
}

// Rotate turns the view by quarter turn steps about each axis. The cursor,
// being in store space, stays on the same cell.
func (v *View) Rotate(dx, dy, dz int) {
	v.rotation[0] = mod4(v.rotation[0] + dx)
	v.rotation[1] = mod4(v.rotation[1] + dy)
	v.rotation[2] = mod4(v.rotation[2] + dz)

	// the renderer must rebuild every layer texture for the new orientation
	v.Drawing.SetAllDirty()
}

// Rotation returns the view's quarter turns about each axis.
func (v *View) Rotation() (int, int, int) {
	return v.rotation[0], v.rotation[1], v.rotation[2]
}

// Data returns the drawing's cells as seen through this view. The returned
// volume shares the drawing's backing data; hold the drawing's critical
// section (see Drawing.Borrow) when reading it from a goroutine other than
// the stroke worker.
func (v *View) Data() *Vol[uint8] {
	v.Drawing.crit.Lock()
	cells := v.Drawing.cells
	v.Drawing.crit.Unlock()
	return rotVol(cells, v.rotation)
}

// Shape returns the extent of the view along each of its axes. It is always
// a permutation of the drawing's shape.
func (v *View) Shape() (int, int, int) {
	return v.Data().Shape()
}

// Size returns the width and height of the view's layers.
func (v *View) Size() (int, int) {
	w, h, _ := v.Shape()
	return w, h
}

// Depth returns the number of layers in the view.
func (v *View) Depth() int {
	_, _, d := v.Shape()
	return d
}

// Direction returns the unit vector, in store space, pointing from the
// viewer into the volume. Exactly one component is non-zero, and it is 1 or
// -1.
func (v *View) Direction() (int, int, int) {
	x, y, z := 0, 0, 1
	for i := 0; i < mod4(v.rotation[1]); i++ {
		x, z = -z, x
	}
	for i := 0; i < mod4(v.rotation[0]); i++ {
		y, z = z, -y
	}
	for i := 0; i < mod4(v.rotation[2]); i++ {
		x, y = y, -x
	}
	return x, y, z
}

// Axis returns the store-space axis the view looks along.
func (v *View) Axis() int {
	x, y, _ := v.Direction()
	if x != 0 {
		return 0
	}
	if y != 0 {
		return 1
	}
	return 2
}

// Cursor returns the cursor in store coordinates, clamped to the drawing's
// current shape.
func (v *View) Cursor() (int, int, int) {
	w, h, d := v.Drawing.Shape()
	return clamp(v.cursor[0], w), clamp(v.cursor[1], h), clamp(v.cursor[2], d)
}

func clamp(c, dim int) int {
	if c < 0 {
		return 0
	}
	if c >= dim {
		return dim - 1
	}
	return c
}

// SetCursor positions the cursor in store coordinates. Each component is
// clamped to the drawing.
func (v *View) SetCursor(x, y, z int) {
	w, h, d := v.Drawing.Shape()
	v.cursor = [3]int{clamp(x, w), clamp(y, h), clamp(z, d)}
}

// MoveCursor moves the cursor by a store-space delta, clamping at the
// drawing's bounds.
func (v *View) MoveCursor(dx, dy, dz int) {
	x, y, z := v.Cursor()
	v.SetCursor(x+dx, y+dy, z+dz)
}

// LayerIndex returns the view-space index of the layer under the cursor.
// Index 0 is the layer nearest the viewer.
func (v *View) LayerIndex() int {
	x, y, z := v.Direction()
	cx, cy, cz := v.Cursor()
	d := v.Depth()
	switch {
	case x > 0:
		return cx
	case x < 0:
		return d - 1 - cx
	case y > 0:
		return cy
	case y < 0:
		return d - 1 - cy
	case z > 0:
		return cz
	default:
		return d - 1 - cz
	}
}

// storeLayer maps a view-space layer index to the corresponding layer index
// along the view's axis in store space. The mapping is its own inverse.
func (v *View) storeLayer(index int) int {
	x, y, z := v.Direction()
	if x > 0 || y > 0 || z > 0 {
		return index
	}
	return v.Depth() - 1 - index
}

// SwitchLayer moves the cursor by delta layers along the view's axis,
// towards the viewer for negative values.
func (v *View) SwitchLayer(delta int) {
	x, y, z := v.Direction()
	v.MoveCursor(x*delta, y*delta, z*delta)
}

// NextLayer moves the cursor one layer away from the viewer.
func (v *View) NextLayer() {
	v.SwitchLayer(1)
}

// PrevLayer moves the cursor one layer towards the viewer.
func (v *View) PrevLayer() {
	v.SwitchLayer(-1)
}

// Layer returns the cells of a single view layer as a (w, h, 1) volume
// sharing the drawing's backing data.
func (v *View) Layer(index int) *Vol[uint8] {
	return layerVol(v.Data(), 2, index)
}

// LayerVisible returns true if the view layer at index is not hidden.
func (v *View) LayerVisible(index int) bool {
	return v.Drawing.LayerVisible(v.Axis(), v.storeLayer(index))
}

// SetLayerHidden hides or shows the view layer at index.
func (v *View) SetLayerHidden(index int, hidden bool) {
	v.Drawing.SetLayerHidden(v.Axis(), v.storeLayer(index), hidden)
}

// ToggleLayer flips the visibility of the layer under the cursor.
func (v *View) ToggleLayer() {
	index := v.LayerIndex()
	v.SetLayerHidden(index, v.LayerVisible(index))
}

// untransform returns the matrix mapping view coordinates to store
// coordinates: center the view volume on the origin, apply the view's
// rotations, and re-center on the drawing volume.
func (v *View) untransform() mat4 {
	vw, vh, vd := v.Shape()
	dw, dh, dd := v.Drawing.Shape()

	t1 := translation(-float64(vw)/2, -float64(vh)/2, -float64(vd)/2)
	t2 := translation(float64(dw)/2, float64(dh)/2, float64(dd)/2)

	m := rotZ90.pow(v.rotation[2])
	m = m.mul(rotX90.pow(v.rotation[0]))
	m = m.mul(rotY90.pow(v.rotation[1]))
	return t2.mul(m).mul(t1)
}

// ToDrawingCoord maps a view coordinate to the store coordinate of the same
// cell. The mapping goes through the cell's center so it is exact for any
// combination of quarter turns.
func (v *View) ToDrawingCoord(x, y, z int) (int, int, int) {
	fx, fy, fz := v.untransform().apply(float64(x)+0.5, float64(y)+0.5, float64(z)+0.5)
	return int(math.Floor(fx)), int(math.Floor(fy)), int(math.Floor(fz))
}

// ToDrawingBox maps a view-space rectangle on a layer to the store-space box
// covering the same cells.
func (v *View) ToDrawingBox(rect geometry.Rectangle, index int) geometry.Box {
	x0, y0, z0 := v.ToDrawingCoord(rect.X, rect.Y, index)
	x1, y1, z1 := v.ToDrawingCoord(rect.X+rect.W-1, rect.Y+rect.H-1, index)
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	if z1 < z0 {
		z0, z1 = z1, z0
	}
	return geometry.NewBox(x0, y0, z0, x1-x0+1, y1-y0+1, z1-z0+1)
}

// ModifyLayer applies stroke data to a layer through the journal. The data
// buffer covers rect on the layer at index; cells without the painted bit
// leave the drawing untouched. The resulting edit carries signed deltas, in
// store orientation, so it replays identically whatever view it is later
// undone or redone from.
func (v *View) ModifyLayer(index int, rect geometry.Rectangle, data *raster.Buffer, color uint8, name string) error {
	if rect.Empty() {
		return nil
	}

	box := v.ToDrawingBox(rect, index)
	delta := make([]int16, box.W*box.H*box.D)

	// viewing the box-shaped delta volume through the view's own rotation
	// lines its cells up with the overlay rectangle
	dv := rotVol(NewVol(delta, box.W, box.H, box.D), v.rotation)

	v.Drawing.crit.Lock()
	cells := rotVol(v.Drawing.cells, v.rotation)
	for j := 0; j < rect.H; j++ {
		for i := 0; i < rect.W; i++ {
			val := data.At(i, j)
			if val&raster.SetBit == 0 {
				continue
			}
			old := cells.At(rect.X+i, rect.Y+j, index)
			dv.Set(i, j, 0, int16(val&raster.ColorMask)-int16(old))
		}
	}
	v.Drawing.crit.Unlock()

	return v.Drawing.Modify(box, delta, color, name)
}

// Overlay returns the scratch buffer for in-progress strokes at the view's
// current size. The overlay persists across rotations back to the same
// orientation.
func (v *View) Overlay() *Overlay {
	w, h := v.Size()
	key := [2]int{w, h}
	if o, ok := v.overlays[key]; ok {
		return o
	}
	o := NewOverlay(w, h)
	v.overlays[key] = o
	return o
}

// MakeBrush captures the cells under a view-space rectangle on the current
// layer as an image brush and adds it to the drawing's brush list.
func (v *View) MakeBrush(rect geometry.Rectangle) brush.Brush {
	cells := make([]uint8, rect.W*rect.H)
	index := v.LayerIndex()

	v.Drawing.crit.Lock()
	data := rotVol(v.Drawing.cells, v.rotation)
	for j := 0; j < rect.H; j++ {
		for i := 0; i < rect.W; i++ {
			cells[j*rect.W+i] = data.At(rect.X+i, rect.Y+j, index)
		}
	}
	v.Drawing.crit.Unlock()

	b := brush.NewImage(rect.W, rect.H, cells)
	v.Drawing.Brushes = append(v.Drawing.Brushes, b)
	return b
}

// VisibleColor returns the color of the first non-transparent cell under
// the view point, scanning from the viewer into the volume and skipping
// hidden layers. Returns 0 if every layer is transparent at the point.
func (v *View) VisibleColor(x, y int) uint8 {
	data := v.Data()
	w, h, d := data.Shape()
	if x < 0 || x >= w || y < 0 || y >= h {
		return 0
	}

	v.Drawing.crit.Lock()
	defer v.Drawing.crit.Unlock()

	axis := v.Axis()
	for i := 0; i < d; i++ {
		if v.Drawing.hidden[axis][v.storeLayer(i)] {
			continue
		}
		if c := data.At(x, y, i); c != 0 {
			return c
		}
	}
	return 0
}

// InsertLayer inserts an empty layer at the cursor, pushing the current
// layer and everything behind it away from the viewer.
func (v *View) InsertLayer() error {
	axis := v.Axis()
	c := [3]int{}
	c[0], c[1], c[2] = v.Cursor()
	return v.Drawing.InsertLayers(axis, c[axis], 1)
}

// DuplicateLayer inserts a copy of the layer under the cursor.
func (v *View) DuplicateLayer() error {
	axis := v.Axis()
	c := [3]int{}
	c[0], c[1], c[2] = v.Cursor()
	return v.Drawing.DuplicateLayer(axis, c[axis])
}

// DeleteLayer removes the layer under the cursor.
func (v *View) DeleteLayer() error {
	axis := v.Axis()
	c := [3]int{}
	c[0], c[1], c[2] = v.Cursor()
	return v.Drawing.DeleteLayers(axis, c[axis], 1)
}

// MoveLayer swaps the layer under the cursor with a neighbor, moving the
// cursor with it. Positive delta moves away from the viewer.
func (v *View) MoveLayer(delta int) error {
	axis := v.Axis()
	c := [3]int{}
	c[0], c[1], c[2] = v.Cursor()

	x, y, z := v.Direction()
	step := [3]int{x, y, z}[axis] * delta

	other := c[axis] + step
	if other < 0 || other >= v.Drawing.dim(axis) {
		return nil
	}
	if err := v.Drawing.SwapLayers(axis, c[axis], other); err != nil {
		return err
	}
	v.SwitchLayer(delta)
	return nil
}
