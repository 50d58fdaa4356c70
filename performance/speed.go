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

package performance

// ClockFreq is the frequency of the machine's master clock in Hz.
const ClockFreq = 4000000

// CalcSpeed takes the number of 4MHz cycles and the duration (in seconds)
// and returns the effective speed of the master clock in MHz and the
// accuracy of that value as a percentage of the speed of the real machine.
func CalcSpeed(cycles uint64, duration float64) (mhz float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	hz := float64(cycles) / duration
	return hz / 1000000, 100 * hz / ClockFreq
}
