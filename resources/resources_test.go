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

package resources_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/voxpaint/voxpaint/resources"
	"github.com/voxpaint/voxpaint/test"
)

func TestUniqueFilename(t *testing.T) {
	fn := resources.UniqueFilename("autosave", "boat")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "autosave_boat_"))

	m, err := regexp.MatchString(`^autosave_boat_\d{8}_\d{6}$`, fn)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, m)

	// the empty name drops the middle field entirely
	fn = resources.UniqueFilename("autosave", "")
	m, err = regexp.MatchString(`^autosave_\d{8}_\d{6}$`, fn)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, m)
}
