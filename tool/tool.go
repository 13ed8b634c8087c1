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

// Package tool implements the drawing tools driven by a stroke. A tool
// receives the pointer positions of one stroke, paints into the view's
// overlay, and accumulates the touched area. When the stroke ends the
// accumulated area is snapshotted from the overlay and folded into the
// drawing as a single journal entry.
package tool

import (
	"time"

	"github.com/voxpaint/voxpaint/brush"
	"github.com/voxpaint/voxpaint/drawing"
	"github.com/voxpaint/voxpaint/geometry"
)

// Tool reacts to the pointer events of a single stroke. A tool instance is
// used for one stroke and discarded.
type Tool interface {
	// Name labels the resulting journal entry.
	Name() string

	// Ephemeral tools redraw their whole output on every pointer event
	// (line, rectangle) instead of accumulating it (pencil, spray).
	Ephemeral() bool

	// Period is non-zero for tools that want repeated events while the
	// pointer rests, such as spray.
	Period() time.Duration

	// Color is the palette index the stroke paints with.
	Color() uint8

	// Start receives the position where the stroke began.
	Start(v *drawing.View, p geometry.Point)

	// Draw receives every subsequent position.
	Draw(v *drawing.View, p geometry.Point)

	// Finish receives the final position. It returns false if the stroke
	// produced nothing to commit to the drawing.
	Finish(v *drawing.View, p geometry.Point) bool

	// Rect is the overlay area the stroke touched, with ok false if it
	// never touched anything.
	Rect() (geometry.Rectangle, bool)
}

// base carries the state shared by every tool.
type base struct {
	name  string
	brush brush.Brush
	color uint8

	acc   *geometry.Rectangle
	start geometry.Point
	last  geometry.Point
}

func (b *base) Name() string {
	return b.name
}

func (b *base) Ephemeral() bool {
	return false
}

func (b *base) Period() time.Duration {
	return 0
}

func (b *base) Color() uint8 {
	return b.color
}

func (b *base) Rect() (geometry.Rectangle, bool) {
	if b.acc == nil {
		return geometry.Rectangle{}, false
	}
	return *b.acc, true
}

func (b *base) accumulate(rect geometry.Rectangle, ok bool) {
	if ok {
		b.acc = geometry.UniteRect(b.acc, rect)
	}
}

func (b *base) Finish(v *drawing.View, p geometry.Point) bool {
	return b.acc != nil
}

// Pencil joins successive pointer positions with brush-stamped lines.
type Pencil struct {
	base
}

func NewPencil(b brush.Brush, color uint8) *Pencil {
	return &Pencil{base: base{name: "pencil", brush: b, color: color}}
}

func (t *Pencil) Start(v *drawing.View, p geometry.Point) {
	t.accumulate(v.Overlay().Blit(t.brush, p, t.color, true))
	t.last = p
}

func (t *Pencil) Draw(v *drawing.View, p geometry.Point) {
	t.accumulate(v.Overlay().DrawLine(t.brush, t.last, p, t.color, true))
	t.last = p
}

// Points stamps the brush at each pointer position without joining them,
// keeping the brush's own colors.
type Points struct {
	base
}

func NewPoints(b brush.Brush, color uint8) *Points {
	return &Points{base: base{name: "points", brush: b, color: color}}
}

func (t *Points) Start(v *drawing.View, p geometry.Point) {
	t.accumulate(v.Overlay().Blit(t.brush, p, t.color, false))
}

func (t *Points) Draw(v *drawing.View, p geometry.Point) {
	t.accumulate(v.Overlay().Blit(t.brush, p, t.color, false))
}

// Spray stamps single cells at random offsets around the pointer. It asks
// for periodic events so paint keeps accumulating while the pointer rests.
type Spray struct {
	base
	radius int
	rnd    func(int) int
	dot    brush.Brush
}

func NewSpray(b brush.Brush, color uint8, rnd func(int) int) *Spray {
	w, h := b.Size()
	r := max(w, h) * 2
	if r < 4 {
		r = 4
	}
	return &Spray{
		base:   base{name: "spray", brush: b, color: color},
		radius: r,
		rnd:    rnd,
		dot:    brush.NewSquare(1, 1),
	}
}

func (t *Spray) Period() time.Duration {
	return 20 * time.Millisecond
}

func (t *Spray) spray(v *drawing.View, p geometry.Point) {
	o := v.Overlay()
	for i := 0; i < 5; i++ {
		q := geometry.Point{
			X: p.X + t.rnd(2*t.radius+1) - t.radius,
			Y: p.Y + t.rnd(2*t.radius+1) - t.radius,
		}
		t.accumulate(o.Blit(t.dot, q, t.color, true))
	}
}

func (t *Spray) Start(v *drawing.View, p geometry.Point) {
	t.spray(v, p)
}

func (t *Spray) Draw(v *drawing.View, p geometry.Point) {
	t.spray(v, p)
}

// Line draws a single straight line from the stroke's start to the current
// position, redrawing it on every event.
type Line struct {
	base
}

func NewLine(b brush.Brush, color uint8) *Line {
	return &Line{base: base{name: "line", brush: b, color: color}}
}

func (t *Line) Ephemeral() bool {
	return true
}

func (t *Line) Start(v *drawing.View, p geometry.Point) {
	t.start = p
	t.accumulate(v.Overlay().Blit(t.brush, p, t.color, true))
}

func (t *Line) Draw(v *drawing.View, p geometry.Point) {
	o := v.Overlay()
	if t.acc != nil {
		o.Clear(*t.acc)
		t.acc = nil
	}
	t.accumulate(o.DrawLine(t.brush, t.start, p, t.color, true))
}

// Rectangle draws an axis-aligned rectangle between the stroke's start and
// the current position, optionally filled.
type Rectangle struct {
	base
	fill   uint8
	filled bool
}

func NewRectangle(b brush.Brush, color uint8, fill uint8, filled bool) *Rectangle {
	return &Rectangle{
		base:   base{name: "rectangle", brush: b, color: color},
		fill:   fill,
		filled: filled,
	}
}

func (t *Rectangle) Ephemeral() bool {
	return true
}

func (t *Rectangle) Start(v *drawing.View, p geometry.Point) {
	t.start = p
}

func (t *Rectangle) Draw(v *drawing.View, p geometry.Point) {
	o := v.Overlay()
	if t.acc != nil {
		o.Clear(*t.acc)
		t.acc = nil
	}
	t.accumulate(o.DrawRectangle(t.brush, t.start, p, t.color, true, t.fill, t.filled))
}

// Fill flood-fills the contiguous region of the current layer around the
// release position. Everything happens on finish: dragging has no effect.
type Fill struct {
	base
}

func NewFill(color uint8) *Fill {
	return &Fill{base: base{name: "fill", color: color}}
}

func (t *Fill) Start(v *drawing.View, p geometry.Point) {
}

func (t *Fill) Draw(v *drawing.View, p geometry.Point) {
}

func (t *Fill) Finish(v *drawing.View, p geometry.Point) bool {
	t.accumulate(v.Overlay().FloodFill(p, t.color, v.Layer(v.LayerIndex())))
	return t.acc != nil
}

// Picker samples the visible color under the pointer into the palette's
// foreground or background selection. It never edits the drawing.
type Picker struct {
	base
	background bool
}

func NewPicker(background bool) *Picker {
	return &Picker{base: base{name: "picker"}, background: background}
}

func (t *Picker) Start(v *drawing.View, p geometry.Point) {
	t.pick(v, p)
}

func (t *Picker) Draw(v *drawing.View, p geometry.Point) {
	t.pick(v, p)
}

func (t *Picker) pick(v *drawing.View, p geometry.Point) {
	c := int(v.VisibleColor(p.X, p.Y))
	if t.background {
		v.Drawing.Palette().Background = c
	} else {
		v.Drawing.Palette().Foreground = c
	}
}

func (t *Picker) Finish(v *drawing.View, p geometry.Point) bool {
	t.pick(v, p)
	return false
}

// Selection drags out a rectangle and captures the cells beneath it as a
// new image brush. It never edits the drawing.
type Selection struct {
	base
	outline brush.Brush
}

func NewSelection() *Selection {
	return &Selection{
		base:    base{name: "selection"},
		outline: brush.NewSquare(1, 1),
	}
}

func (t *Selection) Ephemeral() bool {
	return true
}

func (t *Selection) Start(v *drawing.View, p geometry.Point) {
	t.start = p
	t.last = p
}

func (t *Selection) Draw(v *drawing.View, p geometry.Point) {
	o := v.Overlay()
	if t.acc != nil {
		o.Clear(*t.acc)
		t.acc = nil
	}
	t.accumulate(o.DrawRectangle(t.outline, t.start, p, 255, true, 0, false))
	t.last = p
}

func (t *Selection) Finish(v *drawing.View, p geometry.Point) bool {
	o := v.Overlay()
	if t.acc != nil {
		o.Clear(*t.acc)
		t.acc = nil
	}
	v.MakeBrush(geometry.FromPoints(t.start, p))
	return false
}
