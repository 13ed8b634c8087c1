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

package drawing

// mat4 is a row-major 4x4 matrix of homogeneous coordinates, used to map
// view coordinates back into store coordinates. The only matrices ever built
// are quarter-turn rotations and translations, so the arithmetic stays exact
// on pixel centers.
type mat4 [16]float64

var identity = mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// quarter turns about each axis. rotX90 maps (x, y, z) to (x, z, -y), and
// correspondingly for the other two axes
var rotX90 = mat4{
	1, 0, 0, 0,
	0, 0, 1, 0,
	0, -1, 0, 0,
	0, 0, 0, 1,
}

var rotY90 = mat4{
	0, 0, -1, 0,
	0, 1, 0, 0,
	1, 0, 0, 0,
	0, 0, 0, 1,
}

var rotZ90 = mat4{
	0, 1, 0, 0,
	-1, 0, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

func translation(x, y, z float64) mat4 {
	return mat4{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	}
}

func (m mat4) mul(n mat4) mat4 {
	var r mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var s float64
			for k := 0; k < 4; k++ {
				s += m[i*4+k] * n[k*4+j]
			}
			r[i*4+j] = s
		}
	}
	return r
}

// pow applies the matrix k times. k is interpreted modulo 4: every matrix
// raised here is a quarter turn.
func (m mat4) pow(k int) mat4 {
	k = ((k % 4) + 4) % 4
	r := identity
	for i := 0; i < k; i++ {
		r = r.mul(m)
	}
	return r
}

// apply maps a point through the matrix.
func (m mat4) apply(x, y, z float64) (float64, float64, float64) {
	rx := m[0]*x + m[1]*y + m[2]*z + m[3]
	ry := m[4]*x + m[5]*y + m[6]*z + m[7]
	rz := m[8]*x + m[9]*y + m[10]*z + m[11]
	return rx, ry, rz
}
