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

// Package resources prepares paths for voxpaint's on-disk resources: the
// preferences file and the autosave area.
//
// Config paths are rooted in a .voxpaint directory in the current working
// directory if one exists, which is convenient during development, and in
// the user's config directory otherwise. Autosaves go to the user's cache
// directory: they are recoverable state, not configuration.
package resources

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const baseResourceDir = ".voxpaint"

func configBase() (string, error) {
	if _, err := os.Stat(baseResourceDir); err == nil {
		return baseResourceDir, nil
	}
	home, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, baseResourceDir[1:]), nil
}

// JoinPath returns the path to the named resource rooted in the config
// directory, creating the directories on the way to it. The file itself is
// not touched.
func JoinPath(path ...string) (string, error) {
	b, err := configBase()
	if err != nil {
		return "", err
	}

	p := filepath.Join(b, filepath.Join(path...))
	if _, err := os.Stat(p); err == nil {
		return p, nil
	}
	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return "", err
	}
	return p, nil
}

// CachePath is like JoinPath but rooted in the user's cache directory.
func CachePath(path ...string) (string, error) {
	home, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}

	p := filepath.Join(home, "voxpaint", filepath.Join(path...))
	if _, err := os.Stat(p); err == nil {
		return p, nil
	}
	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return "", err
	}
	return p, nil
}

// UniqueFilename creates a timestamped filename that should not collide with
// any existing file.
//
// Format of the returned string is:
//
//	prepend_name_YYYYMMDD_HHMMSS
func UniqueFilename(prepend string, name string) string {
	n := time.Now()
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d",
		n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	name = strings.TrimSpace(name)
	if len(name) > 0 {
		return fmt.Sprintf("%s_%s_%s", prepend, name, timestamp)
	}
	return fmt.Sprintf("%s_%s", prepend, timestamp)
}

// autosaveName is the base name of a drawing for autosave purposes. An
// unsaved drawing autosaves under "untitled".
func autosaveName(drawingPath string) string {
	if drawingPath == "" {
		return "untitled"
	}
	n := filepath.Base(drawingPath)
	return strings.TrimSuffix(n, filepath.Ext(n))
}

// AutosavePath returns a fresh timestamped autosave path for the drawing in
// the cache directory.
func AutosavePath(drawingPath string) (string, error) {
	fn := UniqueFilename("autosave", autosaveName(drawingPath)) + ".ora"
	return CachePath("autosave", fn)
}

// Autosaves lists the existing autosave files for the drawing, oldest first.
func Autosaves(drawingPath string) ([]string, error) {
	dir, err := CachePath("autosave")
	if err != nil {
		return nil, err
	}

	pattern := filepath.Join(dir, fmt.Sprintf("autosave_%s_*.ora", autosaveName(drawingPath)))
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}

	// timestamped names sort chronologically
	sort.Strings(files)
	return files, nil
}

// PruneAutosaves deletes the oldest autosaves of the drawing, keeping at
// most the given number.
func PruneAutosaves(drawingPath string, keep int) error {
	files, err := Autosaves(drawingPath)
	if err != nil {
		return err
	}
	if keep < 0 {
		keep = 0
	}
	for len(files) > keep {
		if err := os.Remove(files[0]); err != nil {
			return err
		}
		files = files[1:]
	}
	return nil
}
