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

// Package palette implements the 256-entry color table attached to every
// drawing. Entry 0 is the transparent color.
//
// In addition to the stored colors, a palette carries a transient overlay:
// per-entry replacement colors used for live preview while the user is
// editing a color but before the change is committed to the edit journal.
// The Colors() function returns the stored colors with the overlay applied.
//
// Committed color changes do not go through this package directly: they are
// journaled by the drawing package so they can be undone.
package palette

// Color is a single RGBA palette entry.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// Size is the number of entries in every palette.
const Size = 256

// Palette is the color table for a drawing, plus the foreground/background
// selection used by tools.
type Palette struct {
	colors [Size]Color

	// transient per-entry replacement colors. nil when no preview is active
	overlay map[int]Color

	// memoized result of Colors(). valid while generation matches
	cached     [Size]Color
	cachedFor  int
	generation int

	Foreground int
	Background int
}

// New creates a Palette from the given colors. Entries beyond the supplied
// colors are opaque black.
func New(colors []Color) *Palette {
	p := &Palette{
		Foreground: 1,
		Background: 0,
		generation: 1,
	}
	for i := range p.colors {
		if i < len(colors) {
			p.colors[i] = colors[i]
		} else {
			p.colors[i] = Color{A: 255}
		}
	}
	return p
}

// NewDefault creates a Palette with the default startup colors.
func NewDefault() *Palette {
	return New(DefaultColors)
}

// Colors returns all entries with the transient overlay applied. The result
// is recomputed only when the palette has changed since the last call.
func (p *Palette) Colors() [Size]Color {
	if p.cachedFor == p.generation {
		return p.cached
	}

	p.cached = p.colors
	for i, c := range p.overlay {
		if i >= 0 && i < Size {
			p.cached[i] = c
		}
	}
	p.cachedFor = p.generation
	return p.cached
}

// Color returns a single entry with the transient overlay applied.
func (p *Palette) Color(i int) Color {
	if c, ok := p.overlay[i]; ok {
		return c
	}
	return p.colors[i]
}

// ForegroundColor returns the currently selected foreground color.
func (p *Palette) ForegroundColor() Color {
	return p.Color(p.Foreground)
}

// BackgroundColor returns the currently selected background color.
func (p *Palette) BackgroundColor() Color {
	return p.Color(p.Background)
}

// SetOverlay sets the transient preview color for a single entry.
func (p *Palette) SetOverlay(i int, c Color) {
	if p.overlay == nil {
		p.overlay = make(map[int]Color)
	}
	p.overlay[i] = c
	p.generation++
}

// ClearOverlay removes all transient preview colors.
func (p *Palette) ClearOverlay() {
	p.overlay = nil
	p.generation++
}

// SetColors replaces a contiguous run of stored entries starting at start.
// This is the raw storage mutation used by the edit journal; interactive
// changes should be journaled through the drawing package.
func (p *Palette) SetColors(start int, colors []Color) {
	for i, c := range colors {
		if start+i >= 0 && start+i < Size {
			p.colors[start+i] = c
		}
	}
	p.generation++
}

// GetColors returns a copy of n stored entries starting at start, without
// the overlay applied.
func (p *Palette) GetColors(start, n int) []Color {
	colors := make([]Color, n)
	for i := range colors {
		if start+i >= 0 && start+i < Size {
			colors[i] = p.colors[start+i]
		}
	}
	return colors
}
