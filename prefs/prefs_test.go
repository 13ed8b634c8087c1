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

package prefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/voxpaint/voxpaint/curated"
	"github.com/voxpaint/voxpaint/prefs"
	"github.com/voxpaint/voxpaint/test"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "prefs")

	var b prefs.Bool
	var i prefs.Int
	var s prefs.String

	dsk := prefs.NewDisk(pth)
	test.ExpectSuccess(t, dsk.Add("autosave.enabled", &b))
	test.ExpectSuccess(t, dsk.Add("window.width", &i))
	test.ExpectSuccess(t, dsk.Add("lastdir", &s))

	test.ExpectSuccess(t, b.Set(true))
	test.ExpectSuccess(t, i.Set(1280))
	test.ExpectSuccess(t, s.Set("/tmp/drawings"))
	test.ExpectSuccess(t, dsk.Save())

	// a second disk instance with fresh values
	var b2 prefs.Bool
	var i2 prefs.Int
	var s2 prefs.String
	dsk2 := prefs.NewDisk(pth)
	test.ExpectSuccess(t, dsk2.Add("autosave.enabled", &b2))
	test.ExpectSuccess(t, dsk2.Add("window.width", &i2))
	test.ExpectSuccess(t, dsk2.Add("lastdir", &s2))
	test.ExpectSuccess(t, dsk2.Load())

	test.ExpectEquality(t, b2.Get().(bool), true)
	test.ExpectEquality(t, i2.Get().(int), 1280)
	test.ExpectEquality(t, s2.Get().(string), "/tmp/drawings")
}

func TestLoadMissingFile(t *testing.T) {
	var i prefs.Int
	test.ExpectSuccess(t, i.Set(99))

	dsk := prefs.NewDisk(filepath.Join(t.TempDir(), "no-such-file"))
	test.ExpectSuccess(t, dsk.Add("window.width", &i))

	// a missing file is not an error and doesn't disturb current values
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, i.Get().(int), 99)
}

func TestLoadNotAPrefsFile(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "prefs")
	test.ExpectSuccess(t, os.WriteFile(pth, []byte("just some text\n"), 0600))

	dsk := prefs.NewDisk(pth)
	err := dsk.Load()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, prefs.NotAPrefsFile))
}

func TestAddRejectsBadKeys(t *testing.T) {
	dsk := prefs.NewDisk(filepath.Join(t.TempDir(), "prefs"))

	var b prefs.Bool
	test.ExpectSuccess(t, curated.Is(dsk.Add("bad::key", &b), prefs.InvalidKey))
	test.ExpectSuccess(t, curated.Is(dsk.Add("", &b), prefs.InvalidKey))

	test.ExpectSuccess(t, dsk.Add("good.key", &b))
	test.ExpectSuccess(t, curated.Is(dsk.Add("good.key", &b), prefs.DuplicateKey))
}

func TestOrphanPreservation(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "prefs")

	content := "*** voxpaint preferences ***\nfuture.key :: future value\nwindow.width :: 640\n"
	test.ExpectSuccess(t, os.WriteFile(pth, []byte(content), 0600))

	var i prefs.Int
	dsk := prefs.NewDisk(pth)
	test.ExpectSuccess(t, dsk.Add("window.width", &i))
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, i.Get().(int), 640)

	// saving must write the unregistered key back verbatim
	test.ExpectSuccess(t, dsk.Save())

	dsk2 := prefs.NewDisk(pth)
	var f prefs.String
	test.ExpectSuccess(t, dsk2.Add("future.key", &f))
	test.ExpectSuccess(t, dsk2.Load())
	test.ExpectEquality(t, f.Get().(string), "future value")
}

func TestOrphanAdoptedOnLateAdd(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "prefs")

	content := "*** voxpaint preferences ***\nlate.key :: 17\n"
	test.ExpectSuccess(t, os.WriteFile(pth, []byte(content), 0600))

	dsk := prefs.NewDisk(pth)
	test.ExpectSuccess(t, dsk.Load())

	// registering the key after Load() picks up the loaded value
	var i prefs.Int
	test.ExpectSuccess(t, dsk.Add("late.key", &i))
	test.ExpectEquality(t, i.Get().(int), 17)
}

func TestHookPost(t *testing.T) {
	var b prefs.Bool
	var seen []bool
	b.SetHookPost(func(v prefs.Value) error {
		seen = append(seen, v.(bool))
		return nil
	})

	test.ExpectSuccess(t, b.Set(true))
	test.ExpectSuccess(t, b.Set("false"))
	test.ExpectEquality(t, len(seen), 2)
	test.ExpectEquality(t, seen[0], true)
	test.ExpectEquality(t, seen[1], false)
}

func TestRecentFiles(t *testing.T) {
	r := prefs.NewRecentFiles(3)
	r.Add("a.ora")
	r.Add("b.ora")
	r.Add("c.ora")

	// re-adding moves to the front without duplicating
	r.Add("a.ora")
	l := r.List()
	test.ExpectEquality(t, len(l), 3)
	test.ExpectEquality(t, l[0], "a.ora")
	test.ExpectEquality(t, l[1], "c.ora")
	test.ExpectEquality(t, l[2], "b.ora")

	// the oldest entry falls off the end
	r.Add("d.ora")
	l = r.List()
	test.ExpectEquality(t, len(l), 3)
	test.ExpectEquality(t, l[0], "d.ora")
	test.ExpectEquality(t, l[2], "c.ora")
}

func TestRecentFilesOnDisk(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "prefs")

	r := prefs.NewRecentFiles(5)
	r.Add("first.ora")
	r.Add("second.ora")

	dsk := prefs.NewDisk(pth)
	test.ExpectSuccess(t, dsk.Add("recent", r.Entry()))
	test.ExpectSuccess(t, dsk.Save())

	r2 := prefs.NewRecentFiles(5)
	dsk2 := prefs.NewDisk(pth)
	test.ExpectSuccess(t, dsk2.Add("recent", r2.Entry()))
	test.ExpectSuccess(t, dsk2.Load())

	l := r2.List()
	test.ExpectEquality(t, len(l), 2)
	test.ExpectEquality(t, l[0], "second.ora")
	test.ExpectEquality(t, l[1], "first.ora")
}
