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

// SampleFreq is the output rate of a Resampler. The chip is updated at eight
// times this rate.
const SampleFreq = ClockFreq / resampleFactor

const resampleFactor = 8

// Resampler reduces the output of the chip to SampleFreq by averaging the
// mixed output of consecutive updates.
type Resampler struct {
	acc float32
	n   int
}

// Push the output of one update. Returns true and the averaged sample when a
// sample is complete.
func (r *Resampler) Push(o Output) (float32, bool) {
	r.acc += o.Mix()
	r.n++
	if r.n < resampleFactor {
		return 0, false
	}
	v := r.acc / resampleFactor
	r.acc = 0
	r.n = 0
	return v, true
}
