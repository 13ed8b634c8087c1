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

package curated_test

import (
	"errors"
	"testing"

	"github.com/voxpaint/voxpaint/curated"
	"github.com/voxpaint/voxpaint/test"
)

func TestIs(t *testing.T) {
	e := curated.Errorf("test: %d", 10)

	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, "test: %d"))
	test.ExpectFailure(t, curated.Is(e, "test: %s"))

	// plain errors are never curated
	test.ExpectFailure(t, curated.IsAny(errors.New("test")))
	test.ExpectFailure(t, curated.Is(nil, "test: %d"))
}

func TestHas(t *testing.T) {
	e := curated.Errorf("inner: %d", 10)
	f := curated.Errorf("outer: %v", e)

	test.ExpectSuccess(t, curated.Has(f, "outer: %v"))
	test.ExpectSuccess(t, curated.Has(f, "inner: %d"))

	// Is() does not look into the chain
	test.ExpectFailure(t, curated.Is(f, "inner: %d"))
}

func TestNormalisation(t *testing.T) {
	// duplicate adjacent parts are removed when the message is formatted
	e := curated.Errorf("error: not yet implemented")
	f := curated.Errorf("error: %v", e)

	test.ExpectEquality(t, f.Error(), "error: not yet implemented")
}
