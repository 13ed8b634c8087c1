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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created by the
// Errorf() function with a specific pattern. For example:
//
//	e := curated.Errorf("ora: %s: no palette", path)
//
//	if curated.Is(e, "ora: %s: no palette") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain, which is useful once an error has been wrapped by an
// intermediate caller.
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. We can think of the difference between curated and
// uncurated errors as being 'expected' and 'unexpected': a failure to open a
// drawing file is expected and presented to the user; an uncurated error is a
// programming mistake.
//
// The Error() function implementation for curated errors normalises the
// error chain, removing duplicate adjacent parts. The practical advantage is
// that it alleviates the problem of when and how to wrap errors as they
// bubble up to the UI boundary: wrapping at every level never produces a
// stuttering message.
//
// For the purposes of this package an error chain is composed of parts
// separated by the sub-string ': ' as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan).
//
// Sentinel patterns should be stored as const strings, suitably named and
// commented, in the package that raises them.
package curated
