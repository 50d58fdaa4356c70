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

package instructions

// AddressingMode describes the method by which an instruction receives its
// operand.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	Relative // relative addressing is used for branch instructions

	ZeroPage         // zpg
	ZeroPageIndexedX // zpg,X
	ZeroPageIndexedY // zpg,Y

	Absolute         // abs
	AbsoluteIndexedX // abs,X
	AbsoluteIndexedY // abs,Y

	Indirect        // (abs)
	IndexedIndirect // (zpg,X)
	IndirectIndexed // (zpg),Y

	// 65C02 only
	ZeroPageIndirect        // (zpg)
	AbsoluteIndexedIndirect // (abs,X)

	// Rockwell BBR and BBS
	ZeroPageRelative // zpg,rel

	// the 65C02 NOPs share their operand sizes with other addressing modes
	// but have unique timings. the number pair is bytes and cycles
	NOP11
	NOP22
	NOP23
	NOP24
	NOP34
	NOP38
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case Relative:
		return "Relative"
	case ZeroPage:
		return "ZeroPage"
	case ZeroPageIndexedX:
		return "ZeroPageIndexedX"
	case ZeroPageIndexedY:
		return "ZeroPageIndexedY"
	case Absolute:
		return "Absolute"
	case AbsoluteIndexedX:
		return "AbsoluteIndexedX"
	case AbsoluteIndexedY:
		return "AbsoluteIndexedY"
	case Indirect:
		return "Indirect"
	case IndexedIndirect:
		return "IndexedIndirect"
	case IndirectIndexed:
		return "IndirectIndexed"
	case ZeroPageIndirect:
		return "ZeroPageIndirect"
	case AbsoluteIndexedIndirect:
		return "AbsoluteIndexedIndirect"
	case ZeroPageRelative:
		return "ZeroPageRelative"
	case NOP11, NOP22, NOP23, NOP24, NOP34, NOP38:
		return "NOP" + m.DisassemblyMode().String()
	}
	return "unknown addressing mode"
}

// DisassemblyMode returns the addressing mode that should be used when
// showing the instruction. Only the 65C02 NOP modes are changed.
func (m AddressingMode) DisassemblyMode() AddressingMode {
	switch m {
	case NOP11:
		return Implied
	case NOP22, NOP23, NOP24:
		return ZeroPage
	case NOP34, NOP38:
		return Absolute
	}
	return m
}

// Bytes returns the number of bytes used by an instruction with the
// addressing mode, including the opcode.
func (m AddressingMode) Bytes() int {
	switch m.DisassemblyMode() {
	case Implied, Accumulator:
		return 1
	case Immediate, Relative, ZeroPage, ZeroPageIndexedX, ZeroPageIndexedY,
		IndexedIndirect, IndirectIndexed, ZeroPageIndirect:
		return 2
	case Absolute, AbsoluteIndexedX, AbsoluteIndexedY, Indirect,
		AbsoluteIndexedIndirect, ZeroPageRelative:
		return 3
	}
	return 1
}
