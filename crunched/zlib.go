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

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
)

type zlibData struct {
	crunched       bool
	data           []byte
	uncrunchedSize int
}

// NewZlib returns an implementation of the Data interface backed by zlib
// compression. It is suited to the signed cell deltas stored by diff edits,
// which are mostly zero for a typical stroke.
//
// If compression does not reduce the size of the data, the data is kept
// uncompressed.
func NewZlib(data []byte) Data {
	c := &zlibData{
		uncrunchedSize: len(data),
	}

	b := &bytes.Buffer{}
	w := zlib.NewWriter(b)
	_, err := w.Write(data)
	if err == nil {
		err = w.Close()
	}

	if err == nil && b.Len() < len(data) {
		c.crunched = true
		c.data = bytes.Clone(b.Bytes())
		return c
	}

	// compression failed or did not help. keep a plain copy
	c.data = bytes.Clone(data)
	return c
}

// IsCrunched returns true if data is currently held in its crunched form
//
// This function implements the Data interface
func (c *zlibData) IsCrunched() bool {
	return c.crunched
}

// Size returns the uncrunched size and the current size of the data
//
// This function implements the Data interface
func (c *zlibData) Size() (int, int) {
	return c.uncrunchedSize, len(c.data)
}

// Data returns a copy of the uncrunched data
//
// This function implements the Data interface
func (c *zlibData) Data() []byte {
	if !c.crunched {
		return bytes.Clone(c.data)
	}

	r, err := zlib.NewReader(bytes.NewReader(c.data))
	if err != nil {
		// the data was compressed by this package so a decompression failure
		// can only mean memory corruption
		panic(fmt.Sprintf("crunched: %s", err))
	}
	defer r.Close()

	data := make([]byte, c.uncrunchedSize)
	_, err = io.ReadFull(r, data)
	if err != nil {
		panic(fmt.Sprintf("crunched: %s", err))
	}

	return data
}
