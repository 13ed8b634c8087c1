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

// Package crunched provides compressed storage for the byte payloads carried
// by entries in the edit journal. A long undo history over a large drawing
// would otherwise hold every edit's cell data uncompressed for its entire
// lifetime.
//
// Compression is an implementation detail of the journal, not part of its
// logical contract: the only requirement on an implementation is that Data()
// reproduces the exact bytes given at creation time.
package crunched

// Data provides the interface to a crunched data type.
type Data interface {
	// IsCrunched returns true if data is currently held in its crunched form
	IsCrunched() bool

	// Size returns the uncrunched size and the current size of the data. If
	// crunching did not reduce the size of the data the two values will be
	// the same
	Size() (int, int)

	// Data returns a copy of the uncrunched data
	Data() []byte
}
