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
	"image"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/voxpaint/voxpaint/drawing"
	"github.com/voxpaint/voxpaint/geometry"
	"github.com/voxpaint/voxpaint/raster"
)

// screen turns the drawing, as seen through the gui's view, into textures
// for the canvas window: the composited visible layers and the in-progress
// stroke overlay.
//
// The render() function runs every frame on the gui thread but uploads only
// when something is dirty. Dirty state is consumed with the non-blocking
// BorrowDirty functions: if the stroke worker holds a lock this frame, the
// upload happens on a later frame.
type screen struct {
	img *GUI

	canvasTexture  uint32
	overlayTexture uint32

	canvas  *image.RGBA
	overlay *image.RGBA

	// textures must be (re)created rather than updated in place
	createTextures bool
}

func newScreen(img *GUI) *screen {
	scr := &screen{img: img}

	gl.ActiveTexture(gl.TEXTURE0)

	gl.GenTextures(1, &scr.canvasTexture)
	gl.BindTexture(gl.TEXTURE_2D, scr.canvasTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)

	gl.GenTextures(1, &scr.overlayTexture)
	gl.BindTexture(gl.TEXTURE_2D, scr.overlayTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)

	scr.reset()

	return scr
}

func (scr *screen) destroy() {
	gl.DeleteTextures(1, &scr.canvasTexture)
	gl.DeleteTextures(1, &scr.overlayTexture)
}

// ownsTexture is used by the renderer to select the shader for a texture.
func (scr *screen) ownsTexture(id uint32) bool {
	return id == scr.canvasTexture || id == scr.overlayTexture
}

// reset discards the current images. the next render() rebuilds everything,
// sized for the view's current orientation.
func (scr *screen) reset() {
	scr.canvas = nil
	scr.overlay = nil
	scr.img.view.Drawing.SetAllDirty()
}

// size returns the dimensions of the canvas in cells.
func (scr *screen) size() (int, int) {
	return scr.img.view.Size()
}

// render uploads fresh texture data. called every frame between preRender()
// and the imgui render pass, so the canvas window always draws with current
// textures.
func (scr *screen) render() {
	v := scr.img.view
	w, h := v.Size()

	if scr.canvas == nil || scr.canvas.Rect.Dx() != w || scr.canvas.Rect.Dy() != h {
		scr.canvas = image.NewRGBA(image.Rect(0, 0, w, h))
		scr.overlay = image.NewRGBA(image.Rect(0, 0, w, h))
		scr.createTextures = true
	}

	canvasDirty := v.Drawing.BorrowDirty(func(box geometry.Box, cells *drawing.Vol[uint8]) {
		// the dirty box is in store space. mapping it back through the view
		// is not worth the arithmetic: recomposite the whole canvas
	})
	if canvasDirty || scr.createTextures {
		scr.composite()
	}

	overlayDirty := v.Overlay().BorrowDirty(scr.compositeOverlay)

	if scr.createTextures {
		scr.createTextures = false

		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, scr.canvasTexture)
		gl.TexImage2D(gl.TEXTURE_2D, 0,
			gl.RGBA, int32(w), int32(h), 0,
			gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(scr.canvas.Pix))

		gl.BindTexture(gl.TEXTURE_2D, scr.overlayTexture)
		gl.TexImage2D(gl.TEXTURE_2D, 0,
			gl.RGBA, int32(w), int32(h), 0,
			gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(scr.overlay.Pix))
		return
	}

	gl.ActiveTexture(gl.TEXTURE0)
	if canvasDirty {
		gl.BindTexture(gl.TEXTURE_2D, scr.canvasTexture)
		gl.TexSubImage2D(gl.TEXTURE_2D, 0,
			0, 0, int32(w), int32(h),
			gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(scr.canvas.Pix))
	}
	if overlayDirty {
		gl.BindTexture(gl.TEXTURE_2D, scr.overlayTexture)
		gl.TexSubImage2D(gl.TEXTURE_2D, 0,
			0, 0, int32(w), int32(h),
			gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(scr.overlay.Pix))
	}
}

// composite rebuilds the canvas image: for every canvas point, the first
// non-transparent cell of a visible layer, scanning from the viewer into
// the volume. transparent points show a checkerboard.
func (scr *screen) composite() {
	v := scr.img.view
	w, h := v.Size()
	pal := v.Drawing.Palette().Colors()
	checker := scr.img.cols.checker

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			o := scr.canvas.PixOffset(x, y)
			if c := v.VisibleColor(x, y); c != 0 {
				scr.canvas.Pix[o+0] = pal[c].R
				scr.canvas.Pix[o+1] = pal[c].G
				scr.canvas.Pix[o+2] = pal[c].B
				scr.canvas.Pix[o+3] = 0xff
			} else {
				k := checker[((x/8)+(y/8))%2]
				scr.canvas.Pix[o+0] = k.r
				scr.canvas.Pix[o+1] = k.g
				scr.canvas.Pix[o+2] = k.b
				scr.canvas.Pix[o+3] = k.a
			}
		}
	}
}

// compositeOverlay updates the dirty rectangle of the overlay image. cells
// without the painted bit are fully transparent.
func (scr *screen) compositeOverlay(rect geometry.Rectangle, buffer *raster.Buffer) {
	v := scr.img.view
	w, h := v.Size()
	pal := v.Drawing.Palette().Colors()

	for y := rect.Y; y < rect.Y+rect.H; y++ {
		if y < 0 || y >= h {
			continue
		}
		for x := rect.X; x < rect.X+rect.W; x++ {
			if x < 0 || x >= w {
				continue
			}
			o := scr.overlay.PixOffset(x, y)
			val := buffer.At(x, y)
			if val&raster.SetBit == 0 {
				scr.overlay.Pix[o+3] = 0
				continue
			}
			c := pal[val&raster.ColorMask]
			scr.overlay.Pix[o+0] = c.R
			scr.overlay.Pix[o+1] = c.G
			scr.overlay.Pix[o+2] = c.B
			scr.overlay.Pix[o+3] = 0xff
		}
	}
}
