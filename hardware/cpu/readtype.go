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

package cpu

// ReadType describes the bus access requested by the CPU for the current
// cycle. A value of zero means the cycle is a write.
type ReadType uint8

// List of valid read types.
const (
	Write ReadType = iota

	// an operand of a read, modify or stack instruction
	ReadData

	// an instruction byte other than the opcode
	ReadInstruction

	// part of an address, including interrupt vectors
	ReadAddress

	// a dummy read whose value is discarded
	ReadUninteresting

	// the first byte of an instruction
	ReadOpcode

	// the first cycle of an interrupt sequence. the value read is
	// discarded
	ReadInterrupt
)

func (r ReadType) String() string {
	switch r {
	case Write:
		return "Write"
	case ReadData:
		return "Data"
	case ReadInstruction:
		return "Instruction"
	case ReadAddress:
		return "Address"
	case ReadUninteresting:
		return "Uninteresting"
	case ReadOpcode:
		return "Opcode"
	case ReadInterrupt:
		return "Interrupt"
	}
	return "unknown read type"
}
