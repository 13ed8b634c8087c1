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

// Package test contains helper functions to remove common boilerplate from
// the package tests found around the project.
//
// The ExpectFailure() and ExpectSuccess() functions check a value for a
// failure or success condition appropriate to its type. A nil value is
// considered a success, which is the interpretation required when the value
// being tested is an error.
//
// The ExpectEquality() function compares two like-typed values and registers
// a test error if they differ. The Demand variants of all three functions are
// identical except that failure is fatal to the running test, which is useful
// when subsequent test steps depend on the demanded condition.
//
// The CompareWriter type implements io.Writer and captures output for
// comparison against expected strings.
package test
