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

package palette

// DefaultColors is the startup palette for new drawings. The first entry is
// the transparent color.
var DefaultColors = []Color{
	{170, 170, 170, 0},
	{255, 255, 255, 255},
	{101, 101, 101, 255},
	{223, 223, 223, 255},
	{207, 48, 69, 255},
	{223, 138, 69, 255},
	{207, 223, 69, 255},
	{138, 138, 48, 255},
	{48, 138, 69, 255},
	{69, 223, 69, 255},
	{69, 223, 207, 255},
	{48, 138, 207, 255},
	{138, 138, 223, 255},
	{69, 48, 207, 255},
	{207, 48, 207, 255},
	{223, 138, 207, 255},
	{227, 227, 227, 255},
	{223, 223, 223, 255},
	{223, 223, 223, 255},
	{195, 195, 195, 255},
	{178, 178, 178, 255},
	{170, 170, 170, 255},
	{146, 146, 146, 255},
	{130, 130, 130, 255},
	{113, 113, 113, 255},
	{113, 113, 113, 255},
	{101, 101, 101, 255},
	{81, 81, 81, 255},
	{65, 65, 65, 255},
	{48, 48, 48, 255},
	{32, 32, 32, 255},
	{32, 32, 32, 255},
	{243, 0, 0, 255},
}
