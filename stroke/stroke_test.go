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

package stroke_test

import (
	"testing"
	"time"

	"github.com/voxpaint/voxpaint/brush"
	"github.com/voxpaint/voxpaint/drawing"
	"github.com/voxpaint/voxpaint/geometry"
	"github.com/voxpaint/voxpaint/stroke"
	"github.com/voxpaint/voxpaint/test"
	"github.com/voxpaint/voxpaint/tool"
)

func testView(w, h, d int) (*drawing.Drawing, *drawing.View) {
	dw := drawing.NewDrawing(w, h, d, nil)
	v := drawing.NewView(dw)
	v.SetCursor(0, 0, 0)
	return dw, v
}

func TestStrokeCommits(t *testing.T) {
	d, v := testView(8, 8, 1)
	e := stroke.NewExecutor()
	defer e.Close()

	done := make(chan bool)
	events := e.Stroke(v, tool.NewPencil(brush.NewSquare(1, 1), 3), func(ok bool) {
		done <- ok
	})

	events <- stroke.Event{Kind: stroke.Begin, Pos: geometry.Point{X: 0, Y: 0}}
	events <- stroke.Event{Kind: stroke.Draw, Pos: geometry.Point{X: 7, Y: 7}}
	events <- stroke.Event{Kind: stroke.End, Pos: geometry.Point{X: 7, Y: 7}}

	test.ExpectSuccess(t, <-done)
	test.ExpectEquality(t, d.Version(), int64(1))

	d.Borrow(func(cells *drawing.Vol[uint8]) {
		test.ExpectEquality(t, cells.At(0, 0, 0), uint8(3))
		test.ExpectEquality(t, cells.At(7, 7, 0), uint8(3))
	})
}

func TestStrokeAbort(t *testing.T) {
	d, v := testView(8, 8, 1)
	e := stroke.NewExecutor()
	defer e.Close()

	done := make(chan bool)
	events := e.Stroke(v, tool.NewPencil(brush.NewSquare(1, 1), 3), func(ok bool) {
		done <- ok
	})

	events <- stroke.Event{Kind: stroke.Begin, Pos: geometry.Point{X: 0, Y: 0}}
	events <- stroke.Event{Kind: stroke.Draw, Pos: geometry.Point{X: 4, Y: 4}}
	events <- stroke.Event{Kind: stroke.Abort}

	test.ExpectFailure(t, <-done)
	test.ExpectEquality(t, d.Version(), int64(0))

	// the overlay was wiped: a following stroke commits only its own cells
	done2 := make(chan bool)
	events = e.Stroke(v, tool.NewPencil(brush.NewSquare(1, 1), 5), func(ok bool) {
		done2 <- ok
	})
	events <- stroke.Event{Kind: stroke.Begin, Pos: geometry.Point{X: 7, Y: 0}}
	events <- stroke.Event{Kind: stroke.End, Pos: geometry.Point{X: 7, Y: 0}}

	test.ExpectSuccess(t, <-done2)
	d.Borrow(func(cells *drawing.Vol[uint8]) {
		test.ExpectEquality(t, cells.At(7, 0, 0), uint8(5))
		test.ExpectEquality(t, cells.At(2, 2, 0), uint8(0))
	})
}

func TestStrokeClosedChannelAborts(t *testing.T) {
	d, v := testView(4, 4, 1)
	e := stroke.NewExecutor()
	defer e.Close()

	done := make(chan bool)
	events := e.Stroke(v, tool.NewPencil(brush.NewSquare(1, 1), 3), func(ok bool) {
		done <- ok
	})

	events <- stroke.Event{Kind: stroke.Begin, Pos: geometry.Point{X: 1, Y: 1}}
	close(events)

	test.ExpectFailure(t, <-done)
	test.ExpectEquality(t, d.Version(), int64(0))
}

func TestStrokeTerminalEventAfterBurst(t *testing.T) {
	d, v := testView(8, 8, 1)
	e := stroke.NewExecutor()
	defer e.Close()

	// hold the executor back so the event channel fills to capacity while
	// the pointer keeps moving. the End event is sent blocking, as the gui
	// does, and must still reach the worker and commit the stroke
	e.Do(func() { time.Sleep(50 * time.Millisecond) })

	done := make(chan bool)
	events := e.Stroke(v, tool.NewPencil(brush.NewSquare(1, 1), 3), func(ok bool) {
		done <- ok
	})

	events <- stroke.Event{Kind: stroke.Begin, Pos: geometry.Point{X: 0, Y: 0}}
	for i := 0; i < 200; i++ {
		events <- stroke.Event{Kind: stroke.Draw, Pos: geometry.Point{X: i % 8, Y: i % 8}}
	}
	events <- stroke.Event{Kind: stroke.End, Pos: geometry.Point{X: 7, Y: 7}}

	test.ExpectSuccess(t, <-done)
	test.ExpectEquality(t, d.Version(), int64(1))
	d.Borrow(func(cells *drawing.Vol[uint8]) {
		test.ExpectEquality(t, cells.At(7, 7, 0), uint8(3))
	})
}

func TestStrokeWithoutBegin(t *testing.T) {
	// a stroke that starts with a Draw event still paints: the first
	// position becomes the start
	d, v := testView(8, 8, 1)
	e := stroke.NewExecutor()
	defer e.Close()

	done := make(chan bool)
	events := e.Stroke(v, tool.NewPencil(brush.NewSquare(1, 1), 2), func(ok bool) {
		done <- ok
	})

	events <- stroke.Event{Kind: stroke.Draw, Pos: geometry.Point{X: 3, Y: 3}}
	events <- stroke.Event{Kind: stroke.End, Pos: geometry.Point{X: 3, Y: 3}}

	test.ExpectSuccess(t, <-done)
	d.Borrow(func(cells *drawing.Vol[uint8]) {
		test.ExpectEquality(t, cells.At(3, 3, 0), uint8(2))
	})
}

func TestExecutorSerializes(t *testing.T) {
	d, _ := testView(4, 4, 2)
	e := stroke.NewExecutor()

	// jobs run in submission order on a single goroutine, so version
	// stamping never races
	for i := 0; i < 10; i++ {
		e.Do(func() {
			box := geometry.NewBox(0, 0, 0, 1, 1, 1)
			_ = d.Modify(box, []int16{1}, 1, "pencil")
		})
	}
	e.Do(func() {
		for d.Undo() {
		}
	})
	e.Close()

	test.ExpectEquality(t, d.Version(), int64(0))
	d.Borrow(func(cells *drawing.Vol[uint8]) {
		test.ExpectEquality(t, cells.At(0, 0, 0), uint8(0))
	})
}
