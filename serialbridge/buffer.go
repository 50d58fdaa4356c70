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

package serialbridge

// Buffer implements serial.Source and serial.Sink. Bytes queued with
// Queue() are sent to the emulated machine one at a time and bytes sent by
// the machine are collected and can be retrieved with Received().
type Buffer struct {
	input    []uint8
	received []uint8
}

// NewBuffer is the preferred method of initialisation for the Buffer type.
// The input is queued for sending.
func NewBuffer(input []uint8) *Buffer {
	b := &Buffer{}
	b.Queue(input...)
	return b
}

// Queue bytes for sending to the machine.
func (b *Buffer) Queue(data ...uint8) {
	b.input = append(b.input, data...)
}

// Pending returns the number of bytes waiting to be sent.
func (b *Buffer) Pending() int {
	return len(b.input)
}

// Received returns the bytes sent by the machine so far.
func (b *Buffer) Received() []uint8 {
	return b.received
}

// GetNextByte implements the serial.Source interface.
func (b *Buffer) GetNextByte() (uint8, bool) {
	if len(b.input) == 0 {
		return 0, false
	}
	v := b.input[0]
	b.input = b.input[1:]
	return v, true
}

// AddByte implements the serial.Sink interface.
func (b *Buffer) AddByte(v uint8) {
	b.received = append(b.received, v)
}
