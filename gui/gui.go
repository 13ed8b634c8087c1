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

// Package gui is the sdl/imgui interface to a drawing. It owns the gui
// thread: the Service() function must be called repeatedly from the
// goroutine that created the GUI, and all imgui/sdl/opengl calls happen on
// that goroutine.
//
// The gui never touches the edit journal directly. Strokes and every other
// journal mutation are queued on the stroke executor, which is the only
// goroutine that performs edits. The renderer picks up the results through
// the drawing's dirty region.
package gui

import (
	"io"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/voxpaint/voxpaint/curated"
	"github.com/voxpaint/voxpaint/drawing"
	"github.com/voxpaint/voxpaint/geometry"
	"github.com/voxpaint/voxpaint/logger"
	"github.com/voxpaint/voxpaint/resources"
	"github.com/voxpaint/voxpaint/stroke"
)

// imguiIniFile is where imgui stores the coordinates of the imgui windows
const imguiIniFile = "imgui.ini"

// GUI is an sdl based visualiser of a drawing, using imgui.
type GUI struct {
	// the mechanical requirements for the gui
	io      imgui.IO
	context *imgui.Context
	plt     *platform
	rnd     *glsl

	// the drawing being edited, seen through the gui's view
	view *drawing.View
	exec *stroke.Executor

	// the canvas and overlay textures
	screen *screen

	// imgui window management
	wm *manager

	// the colors used by the imgui system
	cols *guiColors

	// events channel of the stroke in progress. nil when the pointer is up
	strokeEvents  chan<- stroke.Event
	lastStrokePos geometry.Point

	// tool selection state. a fresh tool.Tool is built from this for every
	// stroke
	toolkit toolkit

	prf *preferences

	autosave *autosaver

	quit bool
}

// NewGUI is the preferred method of initialisation for the GUI type.
//
// MUST ONLY be called from the gui thread.
func NewGUI(view *drawing.View, exec *stroke.Executor) (*GUI, error) {
	img := &GUI{
		context: imgui.CreateContext(nil),
		io:      imgui.CurrentIO(),
		view:    view,
		exec:    exec,
	}

	// path to dear imgui ini file
	iniPath, err := resources.JoinPath(imguiIniFile)
	if err != nil {
		return nil, curated.Errorf("gui: %v", err)
	}
	img.io.SetIniFilename(iniPath)

	img.cols = newColors()
	img.toolkit = newToolkit()

	img.prf, err = newPreferences()
	if err != nil {
		return nil, curated.Errorf("gui: %v", err)
	}

	img.plt, err = newPlatform(img)
	if err != nil {
		return nil, curated.Errorf("gui: %v", err)
	}

	img.rnd, err = newGlsl(img)
	if err != nil {
		return nil, curated.Errorf("gui: %v", err)
	}

	img.screen = newScreen(img)
	img.wm = newManager(img)
	img.autosave = newAutosaver(img)

	if p := view.Drawing.Path(); p != "" {
		img.prf.recent.Add(p)
	}

	return img, nil
}

// Destroy closes the gui, saving preferences on the way out.
//
// MUST ONLY be called from the gui thread.
func (img *GUI) Destroy(output io.Writer) {
	img.prf.saveWindowGeometry(img.plt)
	if err := img.prf.save(); err != nil {
		output.Write([]byte(err.Error()))
	}

	img.screen.destroy()
	img.rnd.destroy()

	if err := img.plt.destroy(); err != nil {
		output.Write([]byte(err.Error()))
	}

	img.context.Destroy()
}

// draw gui. called from service loop.
func (img *GUI) draw() {
	img.wm.draw()
}

// setView replaces the drawing being edited. The old drawing's pending
// strokes still run to completion on the executor against the old view.
func (img *GUI) setView(v *drawing.View) {
	img.endStroke(true)
	img.view = v
	img.screen.reset()
	if p := v.Drawing.Path(); p != "" {
		img.prf.recent.Add(p)
	}
	logger.Logf(logger.Allow, "gui", "editing %s", displayName(v.Drawing))
}

func displayName(d *drawing.Drawing) string {
	if p := d.Path(); p != "" {
		return p
	}
	return "untitled"
}
