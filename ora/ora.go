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

// Package ora reads and writes drawings as OpenRaster files. An ORA file is
// a zip archive: an uncompressed "mimetype" entry first, a stack.xml
// describing the layer stack, and one indexed-color PNG per layer. Layers in
// stack.xml run top to bottom, so the drawing's z order is reversed on the
// way in and out.
//
// The 3D structure that ORA itself cannot express (the hidden layer sets of
// the two other axes) rides along in a voxpaint.json entry. Other
// applications ignore it; they see a plain layered image.
package ora

import (
	"archive/zip"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/voxpaint/voxpaint/curated"
	"github.com/voxpaint/voxpaint/drawing"
	"github.com/voxpaint/voxpaint/palette"
)

const mimetype = "image/openraster"

// sentinel errors. use curated.Is() with these values
const (
	NotOraFile     = "ora: %s: not an ora file"
	UnsupportedOra = "ora: %s: unsupported content: %s"
)

type stackXML struct {
	XMLName xml.Name   `xml:"image"`
	W       int        `xml:"w,attr"`
	H       int        `xml:"h,attr"`
	Stack   stackLayers `xml:"stack"`
}

type stackLayers struct {
	Layers []layerXML `xml:"layer"`
}

type layerXML struct {
	Name       string `xml:"name,attr"`
	Src        string `xml:"src,attr"`
	X          int    `xml:"x,attr"`
	Y          int    `xml:"y,attr"`
	Visibility string `xml:"visibility,attr"`
}

// sidecar is the voxpaint-specific state stored alongside the ORA data.
type sidecar struct {
	Hidden [3][]int `json:"hidden"`
}

// Save writes the drawing to path as an OpenRaster file. The path must have
// the .ora extension.
func Save(d *drawing.Drawing, path string) error {
	if !strings.EqualFold(filepath.Ext(path), ".ora") {
		return curated.Errorf(NotOraFile, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf("ora: %v", err)
	}
	defer f.Close()

	if err := write(d, f); err != nil {
		return err
	}
	return nil
}

func write(d *drawing.Drawing, w io.Writer) error {
	zw := zip.NewWriter(w)

	// the mimetype entry must come first and must not be compressed, so
	// that file type sniffers can find it at a fixed offset
	mt, err := zw.CreateHeader(&zip.FileHeader{
		Name:   "mimetype",
		Method: zip.Store,
	})
	if err != nil {
		return curated.Errorf("ora: %v", err)
	}
	if _, err := mt.Write([]byte(mimetype)); err != nil {
		return curated.Errorf("ora: %v", err)
	}

	dw, dh, dd := d.Shape()
	pal := colorPalette(d.Palette())

	stack := stackXML{W: dw, H: dh}
	for z := dd - 1; z >= 0; z-- {
		stack.Stack.Layers = append(stack.Stack.Layers, layerXML{
			Name:       fmt.Sprintf("layer%d", z),
			Src:        fmt.Sprintf("data/layer%d.png", z),
			Visibility: visibility(d.LayerVisible(2, z)),
		})
	}

	sx, err := xml.MarshalIndent(stack, "", "  ")
	if err != nil {
		return curated.Errorf("ora: %v", err)
	}
	se, err := zw.Create("stack.xml")
	if err != nil {
		return curated.Errorf("ora: %v", err)
	}
	if _, err := se.Write(append([]byte(xml.Header), sx...)); err != nil {
		return curated.Errorf("ora: %v", err)
	}

	for z := 0; z < dd; z++ {
		img := image.NewPaletted(image.Rect(0, 0, dw, dh), pal)
		d.Borrow(func(cells *drawing.Vol[uint8]) {
			for y := 0; y < dh; y++ {
				for x := 0; x < dw; x++ {
					img.Pix[y*dw+x] = cells.At(x, y, z)
				}
			}
		})

		le, err := zw.Create(fmt.Sprintf("data/layer%d.png", z))
		if err != nil {
			return curated.Errorf("ora: %v", err)
		}
		if err := png.Encode(le, img); err != nil {
			return curated.Errorf("ora: %v", err)
		}
	}

	var sc sidecar
	for axis := 0; axis < 3; axis++ {
		sc.Hidden[axis] = d.HiddenLayers(axis)
	}
	sj, err := json.Marshal(sc)
	if err != nil {
		return curated.Errorf("ora: %v", err)
	}
	je, err := zw.Create("voxpaint.json")
	if err != nil {
		return curated.Errorf("ora: %v", err)
	}
	if _, err := je.Write(sj); err != nil {
		return curated.Errorf("ora: %v", err)
	}

	if err := zw.Close(); err != nil {
		return curated.Errorf("ora: %v", err)
	}
	return nil
}

func visibility(visible bool) string {
	if visible {
		return "visible"
	}
	return "hidden"
}

func colorPalette(p *palette.Palette) color.Palette {
	cp := make(color.Palette, palette.Size)
	for i, c := range p.GetColors(0, palette.Size) {
		cp[i] = color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	}
	return cp
}

// Load reads an OpenRaster file into a new drawing.
func Load(path string) (*drawing.Drawing, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, curated.Errorf("ora: %v", err)
	}
	defer zr.Close()

	d, err := read(&zr.Reader, path)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func read(zr *zip.Reader, path string) (*drawing.Drawing, error) {
	entries := make(map[string]*zip.File)
	for _, f := range zr.File {
		entries[f.Name] = f
	}

	mt, err := readEntry(entries, "mimetype")
	if err != nil || string(mt) != mimetype {
		return nil, curated.Errorf(NotOraFile, path)
	}

	sx, err := readEntry(entries, "stack.xml")
	if err != nil {
		return nil, curated.Errorf(NotOraFile, path)
	}
	var stack stackXML
	if err := xml.Unmarshal(sx, &stack); err != nil {
		return nil, curated.Errorf(UnsupportedOra, path, err.Error())
	}

	dw, dh := stack.W, stack.H
	dd := len(stack.Stack.Layers)
	if dw < 1 || dh < 1 || dd < 1 {
		return nil, curated.Errorf(UnsupportedOra, path, "empty layer stack")
	}

	cells := make([]uint8, dw*dh*dd)
	vol := drawing.NewVol(cells, dw, dh, dd)

	var pal *palette.Palette
	var hidden [3][]int

	// stack.xml lists layers top to bottom
	for i, l := range stack.Stack.Layers {
		z := dd - 1 - i

		le, ok := entries[l.Src]
		if !ok {
			return nil, curated.Errorf(UnsupportedOra, path, fmt.Sprintf("missing %s", l.Src))
		}
		r, err := le.Open()
		if err != nil {
			return nil, curated.Errorf("ora: %v", err)
		}
		img, err := png.Decode(r)
		r.Close()
		if err != nil {
			return nil, curated.Errorf("ora: %v", err)
		}

		p, ok := img.(*image.Paletted)
		if !ok {
			return nil, curated.Errorf(UnsupportedOra, path, fmt.Sprintf("%s is not indexed color", l.Src))
		}
		if p.Bounds().Dx() != dw || p.Bounds().Dy() != dh {
			return nil, curated.Errorf(UnsupportedOra, path, fmt.Sprintf("%s has the wrong size", l.Src))
		}

		if pal == nil {
			pal = loadPalette(p.Palette)
		}
		for y := 0; y < dh; y++ {
			row := p.Pix[y*p.Stride:]
			for x := 0; x < dw; x++ {
				vol.Set(x, y, z, row[x])
			}
		}

		if l.Visibility == "hidden" {
			hidden[2] = append(hidden[2], z)
		}
	}

	// the sidecar refines the hidden sets with the two axes ORA cannot
	// express. absent in files written by other applications
	if sj, err := readEntry(entries, "voxpaint.json"); err == nil {
		var sc sidecar
		if err := json.Unmarshal(sj, &sc); err == nil {
			hidden = sc.Hidden
		}
	}

	return drawing.NewDrawingFromCells(cells, dw, dh, dd, pal, hidden, path), nil
}

func loadPalette(cp color.Palette) *palette.Palette {
	colors := make([]palette.Color, len(cp))
	for i, c := range cp {
		r, g, b, a := c.RGBA()
		colors[i] = palette.Color{
			R: uint8(r >> 8),
			G: uint8(g >> 8),
			B: uint8(b >> 8),
			A: uint8(a >> 8),
		}
	}
	return palette.New(colors)
}

func readEntry(entries map[string]*zip.File, name string) ([]byte, error) {
	f, ok := entries[name]
	if !ok {
		return nil, curated.Errorf("ora: no %s entry", name)
	}
	r, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
