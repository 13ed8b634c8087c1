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
	"github.com/voxpaint/voxpaint/curated"
	"github.com/voxpaint/voxpaint/prefs"
	"github.com/voxpaint/voxpaint/resources"
)

// the number of entries in the recent files menu
const maxRecentFiles = 8

// preferences for the gui that survive between sessions. imgui looks after
// its own window positions through the ini file, these are everything else.
type preferences struct {
	dsk *prefs.Disk

	windowWidth  prefs.Int
	windowHeight prefs.Int

	autosaveEnabled  prefs.Bool
	autosaveInterval prefs.Int
	autosaveKeep     prefs.Int

	recent *prefs.RecentFiles
}

func newPreferences() (*preferences, error) {
	prf := &preferences{
		recent: prefs.NewRecentFiles(maxRecentFiles),
	}

	pth, err := resources.JoinPath("gui.prefs")
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	prf.dsk = prefs.NewDisk(pth)

	err = prf.dsk.Add("gui.window.width", &prf.windowWidth)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	err = prf.dsk.Add("gui.window.height", &prf.windowHeight)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	err = prf.dsk.Add("gui.autosave.enabled", &prf.autosaveEnabled)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	err = prf.dsk.Add("gui.autosave.interval", &prf.autosaveInterval)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	err = prf.dsk.Add("gui.autosave.keep", &prf.autosaveKeep)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	err = prf.dsk.Add("gui.recent", prf.recent.Entry())
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	prf.setDefaults()

	err = prf.dsk.Load()
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	return prf, nil
}

func (prf *preferences) setDefaults() {
	prf.autosaveEnabled.Set(true)
	prf.autosaveInterval.Set(5)
	prf.autosaveKeep.Set(10)
}

func (prf *preferences) save() error {
	return prf.dsk.Save()
}

// windowGeometry returns the stored window size. zero values mean no size
// has been stored yet.
func (prf *preferences) windowGeometry() (int, int) {
	return prf.windowWidth.Get().(int), prf.windowHeight.Get().(int)
}

func (prf *preferences) saveWindowGeometry(plt *platform) {
	w, h := plt.window.GetSize()
	prf.windowWidth.Set(int(w))
	prf.windowHeight.Set(int(h))
}
