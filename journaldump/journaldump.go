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

// Package journaldump writes the object graph of a drawing, including the
// edit journal, to a graphviz "dot" file. It is a development aid, useful
// when puzzling over what the journal is holding on to. Render the output
// with:
//
//	dot -Tsvg -o journal.svg journal.dot
package journaldump

import (
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/voxpaint/voxpaint/curated"
	"github.com/voxpaint/voxpaint/drawing"
)

// Dump the drawing's object graph to the named file in graphviz format.
func Dump(d *drawing.Drawing, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf("journaldump: %v", err)
	}
	defer f.Close()

	memviz.Map(f, d)
	return nil
}
