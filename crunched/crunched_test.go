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

package crunched_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/voxpaint/voxpaint/crunched"
	"github.com/voxpaint/voxpaint/test"
)

func roundTrip(t *testing.T, create func([]byte) crunched.Data, data []byte) {
	t.Helper()

	c := create(data)

	uncrunched, current := c.Size()
	test.ExpectEquality(t, uncrunched, len(data))
	if c.IsCrunched() {
		test.ExpectSuccess(t, current < len(data))
	}

	test.ExpectSuccess(t, bytes.Equal(c.Data(), data))

	// Data() returns a copy. mutating it must not affect a second call
	d := c.Data()
	if len(d) > 0 {
		d[0] ^= 0xff
	}
	test.ExpectSuccess(t, bytes.Equal(c.Data(), data))
}

func testPayloads(t *testing.T, create func([]byte) crunched.Data) {
	t.Helper()

	// highly compressible
	roundTrip(t, create, make([]byte, 4096))

	// long runs broken up by single values
	data := make([]byte, 1000)
	for i := 100; i < 1000; i += 100 {
		data[i] = byte(i / 100)
	}
	roundTrip(t, create, data)

	// incompressible data must round-trip too
	rnd := rand.New(rand.NewSource(1))
	data = make([]byte, 1024)
	rnd.Read(data)
	roundTrip(t, create, data)

	// degenerate sizes
	roundTrip(t, create, []byte{})
	roundTrip(t, create, []byte{42})
}

func TestZlib(t *testing.T) {
	testPayloads(t, crunched.NewZlib)

	c := crunched.NewZlib(make([]byte, 4096))
	test.ExpectSuccess(t, c.IsCrunched())
}

func TestQuick(t *testing.T) {
	testPayloads(t, crunched.NewQuick)

	c := crunched.NewQuick(make([]byte, 4096))
	test.ExpectSuccess(t, c.IsCrunched())

	// a run longer than the repeat count can express
	data := bytes.Repeat([]byte{9}, 300)
	roundTrip(t, crunched.NewQuick, data)
}
