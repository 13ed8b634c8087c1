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

package logger_test

import (
	"testing"

	"github.com/voxpaint/voxpaint/logger"
	"github.com/voxpaint/voxpaint/test"
)

func TestLog(t *testing.T) {
	logger.Clear()

	w := &test.CompareWriter{}
	logger.Write(w)
	test.ExpectSuccess(t, w.Compare(""))

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(w)
	test.ExpectSuccess(t, w.Compare("test: this is a test\n"))

	// repeated entries are folded
	w.Clear()
	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(w)
	test.ExpectSuccess(t, w.Compare("test: this is a test (repeat x2)\n"))
}

func TestTail(t *testing.T) {
	logger.Clear()

	logger.Logf(logger.Allow, "test", "entry %d", 1)
	logger.Logf(logger.Allow, "test", "entry %d", 2)
	logger.Logf(logger.Allow, "test", "entry %d", 3)

	w := &test.CompareWriter{}
	logger.Tail(w, 2)
	test.ExpectSuccess(t, w.Compare("test: entry 2\ntest: entry 3\n"))

	// asking for more entries than exist writes the whole log
	w.Clear()
	logger.Tail(w, 100)
	test.ExpectSuccess(t, w.Compare("test: entry 1\ntest: entry 2\ntest: entry 3\n"))
}

type deny struct{}

func (deny) AllowLogging() bool { return false }

func TestPermission(t *testing.T) {
	logger.Clear()

	logger.Log(deny{}, "test", "should not appear")

	w := &test.CompareWriter{}
	logger.Write(w)
	test.ExpectSuccess(t, w.Compare(""))
}
