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

// Package prefs stores typed preference values on disk: window geometry, the
// recent files list, autosave settings. Preferences live in a plain text
// file of "key :: value" lines. Entries the running version doesn't know are
// preserved across load and save, so older and newer versions of the
// application can share a preferences file.
package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/voxpaint/voxpaint/curated"
)

// the first line of a valid preferences file.
const fingerprint = "*** voxpaint preferences ***"

// sentinel errors. use curated.Is() with these values
const (
	NotAPrefsFile = "prefs: %s: not a preferences file"
	DuplicateKey  = "prefs: duplicate key: %s"
	InvalidKey    = "prefs: invalid key: %s"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	crit    sync.Mutex
	path    string
	entries map[string]pref

	// key/value pairs found in the file but not registered with Add().
	// written back verbatim on save
	orphans map[string]string
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) *Disk {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
		orphans: make(map[string]string),
	}
}

// Add a preference value to the list of values to store on disk. The key
// must not contain the "::" separator.
func (d *Disk) Add(key string, p pref) error {
	d.crit.Lock()
	defer d.crit.Unlock()

	key = strings.TrimSpace(key)
	if key == "" || strings.Contains(key, "::") {
		return curated.Errorf(InvalidKey, key)
	}
	if _, ok := d.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}

	d.entries[key] = p

	// a value loaded before the key was registered takes effect now
	if v, ok := d.orphans[key]; ok {
		delete(d.orphans, key)
		return p.Set(v)
	}
	return nil
}

// Load preference values from disk. A missing file is not an error: the
// registered preferences keep their current values.
func (d *Disk) Load() error {
	d.crit.Lock()
	defer d.crit.Unlock()

	f, err := os.Open(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() || scanner.Text() != fingerprint {
		return curated.Errorf(NotAPrefsFile, d.path)
	}

	for scanner.Scan() {
		line := scanner.Text()
		kv := strings.SplitN(line, "::", 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.TrimSpace(kv[0])
		val := strings.TrimSpace(kv[1])

		if p, ok := d.entries[key]; ok {
			if err := p.Set(val); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		} else {
			d.orphans[key] = val
		}
	}
	if err := scanner.Err(); err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	return nil
}

// Save current preference values to disk.
func (d *Disk) Save() error {
	d.crit.Lock()
	defer d.crit.Unlock()

	keys := make([]string, 0, len(d.entries)+len(d.orphans))
	for k := range d.entries {
		keys = append(keys, k)
	}
	for k := range d.orphans {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(fingerprint)
	s.WriteString("\n")
	for _, k := range keys {
		if p, ok := d.entries[k]; ok {
			s.WriteString(fmt.Sprintf("%s :: %v\n", k, p))
		} else {
			s.WriteString(fmt.Sprintf("%s :: %s\n", k, d.orphans[k]))
		}
	}

	if err := os.WriteFile(d.path, []byte(s.String()), 0600); err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	return nil
}
