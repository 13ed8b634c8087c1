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
	"time"

	"github.com/voxpaint/voxpaint/logger"
	"github.com/voxpaint/voxpaint/ora"
	"github.com/voxpaint/voxpaint/resources"
)

// autosaver periodically writes the drawing to the autosave directory. an
// autosave never calls MarkSaved() so the drawing still reports as unsaved
// and ctrl-s still writes to the real path.
type autosaver struct {
	img *GUI

	// time of last autosave attempt. also set on creation so a freshly
	// opened drawing is not saved immediately
	last time.Time

	// version of the drawing at the time of the last autosave. a new
	// autosave is only worthwhile if the version has moved on
	version int64
}

func newAutosaver(img *GUI) *autosaver {
	return &autosaver{
		img:     img,
		last:    time.Now(),
		version: img.view.Drawing.Version(),
	}
}

// service checks whether an autosave is due. called every frame from the
// gui's Service() function.
func (aut *autosaver) service() {
	if !aut.img.prf.autosaveEnabled.Get().(bool) {
		return
	}

	interval := time.Duration(aut.img.prf.autosaveInterval.Get().(int)) * time.Minute
	if interval <= 0 || time.Since(aut.last) < interval {
		return
	}
	aut.last = time.Now()

	d := aut.img.view.Drawing
	if !d.Unsaved() || d.Version() == aut.version {
		return
	}
	aut.version = d.Version()

	pth, err := resources.AutosavePath(d.Path())
	if err != nil {
		logger.Logf(logger.Allow, "autosave", "%v", err)
		return
	}

	// the save is queued on the executor so it cannot interleave with a
	// stroke commit
	aut.img.exec.Do(func() {
		if err := ora.Save(d, pth); err != nil {
			logger.Logf(logger.Allow, "autosave", "%v", err)
			return
		}
		logger.Logf(logger.Allow, "autosave", "saved to %s", pth)

		keep := aut.img.prf.autosaveKeep.Get().(int)
		if err := resources.PruneAutosaves(d.Path(), keep); err != nil {
			logger.Logf(logger.Allow, "autosave", "%v", err)
		}
	})
}
