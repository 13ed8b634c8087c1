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

package crunched

import "bytes"

type quick struct {
	crunched       bool
	data           []byte
	uncrunchedSize int
}

// NewQuick returns an implementation of the Data interface using a very basic
// RLE scheme: each byte in the crunch stream is followed by a repeat count.
// It is intended to perform quickly on both crunching and decrunching and
// suits the layer slabs captured by structural edits, which are dominated by
// long runs of the transparent color.
func NewQuick(data []byte) Data {
	c := &quick{
		uncrunchedSize: len(data),
	}

	if len(data) == 0 {
		return c
	}

	working := make([]byte, 0, len(data))
	v := data[0]
	var ct int

	for _, b := range data[1:] {
		if b == v && ct < 255 {
			ct++
			continue
		}
		working = append(working, v, byte(ct))
		v = b
		ct = 0
	}
	working = append(working, v, byte(ct))

	if len(working) < len(data) {
		c.crunched = true
		c.data = working
		return c
	}

	c.data = bytes.Clone(data)
	return c
}

// IsCrunched returns true if data is currently held in its crunched form
//
// This function implements the Data interface
func (c *quick) IsCrunched() bool {
	return c.crunched
}

// Size returns the uncrunched size and the current size of the data
//
// This function implements the Data interface
func (c *quick) Size() (int, int) {
	return c.uncrunchedSize, len(c.data)
}

// Data returns a copy of the uncrunched data
//
// This function implements the Data interface
func (c *quick) Data() []byte {
	if !c.crunched {
		return bytes.Clone(c.data)
	}

	// sanity check. the crunch stream is a sequence of byte pairs
	if len(c.data)&0x01 == 0x01 {
		panic("crunched data should have an even number of bytes")
	}

	data := make([]byte, 0, c.uncrunchedSize)
	for i := 0; i < len(c.data); i += 2 {
		for r := 0; r <= int(c.data[i+1]); r++ {
			data = append(data, c.data[i])
		}
	}

	return data
}
