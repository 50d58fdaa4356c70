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

import "fmt"

type channel struct {
	// ten bit period. a value of zero gives a period of 1024
	period uint16

	// volume 0 to 15 with 15 loudest
	vol uint8

	counter uint16

	// polarity of the square wave
	high bool
}

func (ch *channel) String() string {
	return fmt.Sprintf("%03x vol=%d", ch.period, ch.vol)
}

func (ch *channel) reload() uint16 {
	if ch.period == 0 {
		return 1024
	}
	return ch.period
}

// countdown decreases the counter and returns true if it has reached zero
func (ch *channel) countdown() bool {
	if ch.counter > 0 {
		ch.counter--
	}
	return ch.counter == 0
}

// tick a tone channel. polarity toggles once per period
func (ch *channel) tick() {
	if ch.countdown() {
		ch.high = !ch.high
		ch.counter = ch.reload()
	}
}

func (ch *channel) output() uint8 {
	if ch.high {
		return ch.vol
	}
	return 0
}
