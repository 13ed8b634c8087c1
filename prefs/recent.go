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

package prefs

import (
	"strings"
	"sync"
)

// RecentFiles maintains the ordered list of recently opened drawings, most
// recent first. Hook it into a Disk with the Entry() function.
type RecentFiles struct {
	crit  sync.Mutex
	max   int
	files []string
}

// NewRecentFiles limits the list to at most max entries.
func NewRecentFiles(max int) *RecentFiles {
	return &RecentFiles{max: max}
}

// Add puts a path at the front of the list, removing any older occurrence.
func (r *RecentFiles) Add(path string) {
	if path == "" {
		return
	}

	r.crit.Lock()
	defer r.crit.Unlock()

	files := make([]string, 0, len(r.files)+1)
	files = append(files, path)
	for _, f := range r.files {
		if f != path {
			files = append(files, f)
		}
	}
	if len(files) > r.max {
		files = files[:r.max]
	}
	r.files = files
}

// List returns a copy of the list, most recent first.
func (r *RecentFiles) List() []string {
	r.crit.Lock()
	defer r.crit.Unlock()

	files := make([]string, len(r.files))
	copy(files, r.files)
	return files
}

// Entry returns the prefs value storing the list on disk. Paths are joined
// with a ";" so a path containing a semicolon cannot be stored.
func (r *RecentFiles) Entry() *Generic {
	return NewGeneric(
		func(v Value) error {
			r.crit.Lock()
			defer r.crit.Unlock()

			r.files = r.files[:0]
			for _, f := range strings.Split(v.(string), ";") {
				f = strings.TrimSpace(f)
				if f != "" && len(r.files) < r.max {
					r.files = append(r.files, f)
				}
			}
			return nil
		},
		func() Value {
			r.crit.Lock()
			defer r.crit.Unlock()
			return strings.Join(r.files, ";")
		},
	)
}
