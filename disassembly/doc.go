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

// Package disassembly decodes 6502 and 65C02 machine code from the memory of
// a running machine.
//
// Memory is read through the Memory interface, which is satisfied by
// hardware.Machine. The paging registers of the machine decide what is
// disassembled, so the disassembly of a sideways ROM depends on ROMSEL at the
// time of the call.
//
//	e := disassembly.Disassemble(instructions.NMOS, machine, 0xc000, nil)
//	fmt.Println(e)
//
// The Range() function produces consecutive entries and can be used in a
// for loop:
//
//	for e := range disassembly.Range(instructions.CMOS, machine, 0x8000, 10, syms) {
//		fmt.Println(e)
//	}
//
// Operands are shown with BBC BASIC's & prefix for hexadecimal. When a
// Symbols table is supplied, operands that match a known address are shown as
// the symbol instead. The canonical symbols are the SHEILA registers and the
// MOS entry points.
package disassembly
