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

package ora_test

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/voxpaint/voxpaint/curated"
	"github.com/voxpaint/voxpaint/drawing"
	"github.com/voxpaint/voxpaint/ora"
	"github.com/voxpaint/voxpaint/palette"
	"github.com/voxpaint/voxpaint/test"
)

func TestSaveLoad(t *testing.T) {
	d := drawing.NewDrawing(5, 4, 3, nil)
	d.Borrow(func(cells *drawing.Vol[uint8]) {
		cells.Set(0, 0, 0, 1)
		cells.Set(4, 3, 2, 2)
		cells.Set(2, 1, 1, 30)
	})
	d.SetLayerHidden(2, 1, true)
	d.SetLayerHidden(0, 3, true)
	test.DemandSuccess(t, d.ChangeColors(30, []palette.Color{{R: 1, G: 2, B: 3, A: 255}}) == nil)

	path := filepath.Join(t.TempDir(), "test.ora")
	test.DemandSuccess(t, ora.Save(d, path) == nil)

	l, err := ora.Load(path)
	test.DemandSuccess(t, err == nil)

	w, h, dp := l.Shape()
	test.ExpectEquality(t, w, 5)
	test.ExpectEquality(t, h, 4)
	test.ExpectEquality(t, dp, 3)

	l.Borrow(func(cells *drawing.Vol[uint8]) {
		test.ExpectEquality(t, cells.At(0, 0, 0), uint8(1))
		test.ExpectEquality(t, cells.At(4, 3, 2), uint8(2))
		test.ExpectEquality(t, cells.At(2, 1, 1), uint8(30))
		test.ExpectEquality(t, cells.At(1, 1, 1), uint8(0))
	})

	// hidden sets on every axis survive via the sidecar
	test.ExpectEquality(t, len(l.HiddenLayers(2)), 1)
	test.ExpectEquality(t, l.HiddenLayers(2)[0], 1)
	test.ExpectEquality(t, len(l.HiddenLayers(0)), 1)
	test.ExpectEquality(t, l.HiddenLayers(0)[0], 3)

	// the edited palette color came back through the PNG palette
	test.ExpectEquality(t, l.Palette().Color(30), palette.Color{R: 1, G: 2, B: 3, A: 255})

	// the loaded drawing remembers where it came from
	test.ExpectEquality(t, l.Path(), path)
	test.ExpectFailure(t, l.Unsaved())
}

func TestSaveBadExtension(t *testing.T) {
	d := drawing.NewDrawing(2, 2, 1, nil)
	err := ora.Save(d, filepath.Join(t.TempDir(), "test.png"))
	test.ExpectFailure(t, err == nil)
	test.ExpectSuccess(t, curated.Is(err, ora.NotOraFile))
}

func TestLoadNotOra(t *testing.T) {
	// a zip file without the ora mimetype entry
	path := filepath.Join(t.TempDir(), "test.ora")
	f, err := os.Create(path)
	test.DemandSuccess(t, err == nil)
	zw := zip.NewWriter(f)
	e, err := zw.Create("something.txt")
	test.DemandSuccess(t, err == nil)
	_, _ = e.Write([]byte("hello"))
	test.DemandSuccess(t, zw.Close() == nil)
	test.DemandSuccess(t, f.Close() == nil)

	_, err = ora.Load(path)
	test.ExpectFailure(t, err == nil)
	test.ExpectSuccess(t, curated.Is(err, ora.NotOraFile))
}

func TestLoadMissing(t *testing.T) {
	_, err := ora.Load(filepath.Join(t.TempDir(), "nope.ora"))
	test.ExpectFailure(t, err == nil)
}

func TestMimetypeFirstAndStored(t *testing.T) {
	d := drawing.NewDrawing(2, 2, 1, nil)
	path := filepath.Join(t.TempDir(), "test.ora")
	test.DemandSuccess(t, ora.Save(d, path) == nil)

	zr, err := zip.OpenReader(path)
	test.DemandSuccess(t, err == nil)
	defer zr.Close()

	test.DemandSuccess(t, len(zr.File) > 0)
	test.ExpectEquality(t, zr.File[0].Name, "mimetype")
	test.ExpectEquality(t, zr.File[0].Method, zip.Store)
}
