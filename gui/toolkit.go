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
	"math/rand"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/voxpaint/voxpaint/brush"
	"github.com/voxpaint/voxpaint/drawing"
	"github.com/voxpaint/voxpaint/palette"
	"github.com/voxpaint/voxpaint/tool"
)

type toolID int

const (
	toolPencil toolID = iota
	toolPoints
	toolLine
	toolRectangle
	toolFill
	toolSpray
	toolPicker
	toolSelection
	numTools
)

var toolNames = [numTools]string{
	"pencil", "points", "line", "rectangle", "fill", "spray", "picker", "selection",
}

// toolkit is the gui's tool selection state. a fresh tool.Tool instance is
// built from it for every stroke, so a tool never carries state from one
// stroke to the next.
type toolkit struct {
	current toolID

	// brush settings. an imageBrush of -1 means a shape brush of brushSize
	brushRound bool
	brushSize  int
	imageBrush int

	// whether the rectangle tool fills its interior
	filled bool
}

func newToolkit() toolkit {
	return toolkit{
		current:    toolPencil,
		brushSize:  1,
		imageBrush: -1,
	}
}

func (tk *toolkit) brush(d *drawing.Drawing) brush.Brush {
	if tk.imageBrush >= 0 && tk.imageBrush < len(d.Brushes) {
		return d.Brushes[tk.imageBrush]
	}
	if tk.brushRound {
		return brush.NewRound(tk.brushSize)
	}
	return brush.NewSquare(tk.brushSize, tk.brushSize)
}

// make builds the tool for one stroke. background selects the palette's
// background color instead of the foreground.
func (tk *toolkit) make(d *drawing.Drawing, background bool) tool.Tool {
	pal := d.Palette()
	color := uint8(pal.Foreground)
	if background {
		color = uint8(pal.Background)
	}

	b := tk.brush(d)

	switch tk.current {
	case toolPoints:
		return tool.NewPoints(b, color)
	case toolLine:
		return tool.NewLine(b, color)
	case toolRectangle:
		return tool.NewRectangle(b, color, color, tk.filled)
	case toolFill:
		return tool.NewFill(color)
	case toolSpray:
		return tool.NewSpray(b, color, rand.Intn)
	case toolPicker:
		return tool.NewPicker(background)
	case toolSelection:
		return tool.NewSelection()
	default:
		return tool.NewPencil(b, color)
	}
}

// selectByKey switches the current tool from a keyboard shortcut. returns
// false if the scancode is not a tool shortcut.
func (tk *toolkit) selectByKey(scancode sdl.Scancode) bool {
	keys := map[sdl.Scancode]toolID{
		sdl.SCANCODE_1: toolPencil,
		sdl.SCANCODE_2: toolPoints,
		sdl.SCANCODE_3: toolLine,
		sdl.SCANCODE_4: toolRectangle,
		sdl.SCANCODE_5: toolFill,
		sdl.SCANCODE_6: toolSpray,
		sdl.SCANCODE_7: toolPicker,
		sdl.SCANCODE_8: toolSelection,
	}
	id, ok := keys[scancode]
	if ok {
		tk.current = id
	}
	return ok
}

func (tk *toolkit) swapColors(pal *palette.Palette) {
	pal.Foreground, pal.Background = pal.Background, pal.Foreground
}
