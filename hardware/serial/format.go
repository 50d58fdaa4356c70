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

package serial

import "fmt"

// Parity of a word format.
type Parity int

// List of valid Parity values.
const (
	ParityNone Parity = iota
	ParityOdd
	ParityEven
)

func (p Parity) String() string {
	switch p {
	case ParityOdd:
		return "O"
	case ParityEven:
		return "E"
	}
	return "N"
}

// Format is a word format selected by bits 2 to 4 of the ACIA control
// register.
type Format struct {
	DataBits int
	Parity   Parity
	StopBits int
}

func (f Format) String() string {
	return fmt.Sprintf("%d%s%d", f.DataBits, f.Parity, f.StopBits)
}

// indexed by the word select field of the control register
var formats = [8]Format{
	{DataBits: 7, Parity: ParityEven, StopBits: 2},
	{DataBits: 7, Parity: ParityOdd, StopBits: 2},
	{DataBits: 7, Parity: ParityEven, StopBits: 1},
	{DataBits: 7, Parity: ParityOdd, StopBits: 1},
	{DataBits: 8, Parity: ParityNone, StopBits: 2},
	{DataBits: 8, Parity: ParityNone, StopBits: 1},
	{DataBits: 8, Parity: ParityEven, StopBits: 1},
	{DataBits: 8, Parity: ParityOdd, StopBits: 1},
}

// number of set bits in each nibble
var nibbleBits = [16]uint8{0, 1, 1, 2, 1, 2, 2, 3, 1, 2, 2, 3, 2, 3, 3, 4}

// parityBit returns the parity bit to send with the data bits in v. The
// lookup gives the bit for odd parity, which is flipped for even parity.
func (f Format) parityBit(v uint8) uint8 {
	if f.DataBits == 7 {
		v &= 0x7f
	}
	odd := (nibbleBits[v&0x0f]+nibbleBits[v>>4])&0x01 ^ 0x01
	if f.Parity == ParityEven {
		return odd ^ 0x01
	}
	return odd
}
