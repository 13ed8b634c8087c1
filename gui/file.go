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

package gui

import (
	"path/filepath"
	"strings"

	"github.com/voxpaint/voxpaint/drawing"
	"github.com/voxpaint/voxpaint/logger"
	"github.com/voxpaint/voxpaint/ora"
)

// save writes the drawing back to the path it was loaded from. drawings
// that have never been saved need saveAs instead.
func (img *GUI) save() {
	d := img.view.Drawing
	if d.Path() == "" {
		img.wm.saveAs.setOpen(true)
		return
	}
	img.saveAs(d.Path())
}

// saveAs writes the drawing to path and marks the drawing as saved there.
// the .ora extension is appended if it is missing.
func (img *GUI) saveAs(path string) {
	if !strings.EqualFold(".ora", filepath.Ext(path)) {
		path += ".ora"
	}

	d := img.view.Drawing
	img.exec.Do(func() {
		if err := ora.Save(d, path); err != nil {
			logger.Logf(logger.Allow, "gui", "%v", err)
			return
		}
		d.MarkSaved(path)
		logger.Logf(logger.Allow, "gui", "saved %s", path)
	})
	img.prf.recent.Add(path)
}

// open loads the ORA file at path and makes it the edited drawing.
func (img *GUI) open(path string) {
	d, err := ora.Load(path)
	if err != nil {
		logger.Logf(logger.Allow, "gui", "%v", err)
		return
	}
	img.setView(drawing.NewView(d))
}
