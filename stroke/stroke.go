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

// Package stroke turns pointer events into journal entries. A stroke is the
// span from button press to release; its events are fed through a channel to
// a tool painting into the view's overlay, and on release the painted area
// becomes a single edit in the drawing's journal.
//
// All strokes run on one Executor goroutine. Undo, redo and the structural
// layer operations are queued on the same goroutine, which is what makes the
// journal's version stamping safe without any locking of the stacks.
package stroke

import (
	"time"

	"github.com/voxpaint/voxpaint/drawing"
	"github.com/voxpaint/voxpaint/geometry"
	"github.com/voxpaint/voxpaint/logger"
	"github.com/voxpaint/voxpaint/tool"
)

// EventKind distinguishes the phases of a stroke.
type EventKind int

const (
	// Begin is the button press that starts the stroke.
	Begin EventKind = iota

	// Draw is a pointer movement while the button is held.
	Draw

	// End is the button release. The stroke commits.
	End

	// Abort discards the stroke without committing.
	Abort
)

// Event is one pointer event of a stroke, in overlay coordinates.
type Event struct {
	Kind EventKind
	Pos  geometry.Point
}

// Run consumes one stroke's events, driving the tool against the view, and
// returns true if the stroke committed an edit to the drawing.
//
// Queued Draw events are coalesced to the most recent position: the pointer
// can outrun the tool (a large brush on a slow fill) and only the latest
// position matters for where the paint goes next. Tools with a period
// receive their latest position again while the pointer rests.
func Run(v *drawing.View, t tool.Tool, events <-chan Event) bool {
	var last geometry.Point
	var started bool
	var queued *Event

	var tick <-chan time.Time
	if p := t.Period(); p > 0 {
		tk := time.NewTicker(p)
		defer tk.Stop()
		tick = tk.C
	}

	// coalesce folds every immediately available Draw event into ev. a
	// non-Draw event ends the run and is held for the next read
	coalesce := func(ev Event) Event {
		for {
			select {
			case n, ok := <-events:
				if !ok {
					queued = &Event{Kind: Abort}
					return ev
				}
				if n.Kind == Draw {
					ev = n
					continue
				}
				queued = &n
				return ev
			default:
				return ev
			}
		}
	}

	for {
		var ev Event
		var isTick bool

		if queued != nil {
			ev = *queued
			queued = nil
		} else {
			select {
			case e, ok := <-events:
				if !ok {
					return abort(v, t)
				}
				ev = e
			case <-tick:
				isTick = true
			}
		}

		if isTick {
			if started {
				t.Draw(v, last)
			}
			continue
		}

		switch ev.Kind {
		case Begin:
			t.Start(v, ev.Pos)
			last = ev.Pos
			started = true
		case Draw:
			ev = coalesce(ev)
			if !started {
				t.Start(v, ev.Pos)
				started = true
			} else {
				t.Draw(v, ev.Pos)
			}
			last = ev.Pos
		case End:
			return commit(v, t, ev.Pos)
		case Abort:
			return abort(v, t)
		}
	}
}

func commit(v *drawing.View, t tool.Tool, p geometry.Point) bool {
	o := v.Overlay()

	if !t.Finish(v, p) {
		if rect, ok := t.Rect(); ok {
			o.Clear(rect)
		}
		return false
	}

	rect, ok := t.Rect()
	if !ok {
		return false
	}

	data := o.Snapshot(rect)
	err := v.ModifyLayer(v.LayerIndex(), rect, data, t.Color(), t.Name())
	o.Clear(rect)
	if err != nil {
		logger.Logf(logger.Allow, "stroke", "%s: %v", t.Name(), err)
		return false
	}
	return true
}

func abort(v *drawing.View, t tool.Tool) bool {
	if rect, ok := t.Rect(); ok {
		v.Overlay().Clear(rect)
	}
	return false
}

// Executor is the single goroutine every journal mutation runs on. Strokes,
// undo, redo and layer operations are queued in order and never overlap.
type Executor struct {
	jobs chan func()
	done chan struct{}
}

// NewExecutor starts the executor goroutine.
func NewExecutor() *Executor {
	e := &Executor{
		jobs: make(chan func(), 32),
		done: make(chan struct{}),
	}
	go func() {
		for f := range e.jobs {
			f()
		}
		close(e.done)
	}()
	return e
}

// Do queues f to run on the executor goroutine.
func (e *Executor) Do(f func()) {
	e.jobs <- f
}

// Stroke queues a stroke and returns the channel to feed its events into.
// The committed callback, if not nil, runs on the executor goroutine when
// the stroke ends, with the commit decision.
func (e *Executor) Stroke(v *drawing.View, t tool.Tool, committed func(bool)) chan<- Event {
	events := make(chan Event, 64)
	e.Do(func() {
		ok := Run(v, t, events)
		if committed != nil {
			committed(ok)
		}
	})
	return events
}

// Close drains queued work and stops the executor goroutine.
func (e *Executor) Close() {
	close(e.jobs)
	<-e.done
}
