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

package main

import (
	"fmt"
	"os"

	"github.com/voxpaint/voxpaint/drawing"
	"github.com/voxpaint/voxpaint/gui"
	"github.com/voxpaint/voxpaint/journaldump"
	"github.com/voxpaint/voxpaint/logger"
	"github.com/voxpaint/voxpaint/modalflag"
	"github.com/voxpaint/voxpaint/ora"
	"github.com/voxpaint/voxpaint/palette"
	"github.com/voxpaint/voxpaint/statsview"
	"github.com/voxpaint/voxpaint/stroke"
	"github.com/voxpaint/voxpaint/version"
)

// dimensions of a drawing created without a file argument.
const (
	defaultWidth  = 128
	defaultHeight = 128
	defaultDepth  = 128
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "DUMP", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "DUMP":
		err = dump(md)
	case "VERSION":
		vrs, rev, _ := version.Version()
		fmt.Printf("%s (%s)\n", vrs, rev)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(10)
	}
}

// run opens the editor. the main goroutine becomes the gui thread and loops
// until the window is closed.
func run(md *modalflag.Modes) error {
	md.NewMode()
	log := md.AddBool("log", false, "echo log entries to stderr")
	stats := md.AddBool("statsview", false, "run stats server (requires the statsview build constraint)")
	md.AdditionalHelp("The optional argument is the .ora file to edit.")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr, true)
	}
	if *stats {
		statsview.Launch(os.Stdout)
	}

	var d *drawing.Drawing
	if path := md.GetArg(0); path != "" {
		d, err = ora.Load(path)
		if err != nil {
			return err
		}
	} else {
		d = drawing.NewDrawing(defaultWidth, defaultHeight, defaultDepth, palette.NewDefault())
	}

	exec := stroke.NewExecutor()
	defer exec.Close()

	img, err := gui.NewGUI(drawing.NewView(d), exec)
	if err != nil {
		return err
	}
	defer img.Destroy(os.Stderr)

	for img.Service() {
	}

	return nil
}

// dump writes the object graph of a drawing to a graphviz file.
func dump(md *modalflag.Modes) error {
	md.NewMode()
	output := md.AddString("o", "voxpaint.dot", "output file")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	path := md.GetArg(0)
	if path == "" {
		return fmt.Errorf("dump: no .ora file specified")
	}

	d, err := ora.Load(path)
	if err != nil {
		return err
	}

	return journaldump.Dump(d, *output)
}
