// This file is part of Gopherbeeb.
//
// Gopherbeeb is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherbeeb is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherbeeb.  If not, see <https://www.gnu.org/licenses/>.

package sound

import "math"

// the attenuation steps of the SN76489 are 2dB
var volumeMix [16]float32

func init() {
	for v := 1; v < len(volumeMix); v++ {
		volumeMix[v] = float32(math.Pow(10, -2*float64(15-v)/20))
	}
}

// Mix the four channels into a single sample. The result is in the range 0
// to 1. A silent chip produces 0.
func (o Output) Mix() float32 {
	var m float32
	for _, v := range o.Ch {
		m += volumeMix[v&0x0f]
	}
	return m / NumChannels
}
