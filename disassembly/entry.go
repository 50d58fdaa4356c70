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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherbeeb/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherbeeb/hardware/cpu/registers"
)

// Memory is the source of the bytes to disassemble. Addresses that cannot be
// read (I/O addresses for example) should return an error.
type Memory interface {
	Peek(address uint16) (uint8, error)
}

// Entry is a disassembled instruction.
type Entry struct {
	Address uint16
	Defn    instructions.Definition

	// the bytes of the instruction, including the opcode. some of the bytes
	// may be missing if the instruction runs into an address that cannot be
	// read
	Bytes []uint8

	// the instruction's operand. for branch instructions this is the branch
	// destination rather than the offset. for the Rockwell BBR and BBS
	// instructions the zero page address is in ZeroPage
	Operand  uint16
	ZeroPage uint8

	// false if not all of the instruction's bytes could be read
	Complete bool

	// the label for the address of the entry and the operand with symbols
	// applied. these are empty if the entry was disassembled without a
	// symbols table or if there is no symbol
	Label         string
	OperandSymbol string
}

// Next returns the address of the instruction following the entry.
func (e Entry) Next() uint16 {
	n := e.Defn.Bytes
	if n == 0 {
		n = 1
	}
	return e.Address + uint16(n)
}

// Mnemonic returns the instruction mnemonic or ??? if the instruction could
// not be decoded.
func (e Entry) Mnemonic() string {
	if len(e.Bytes) == 0 || e.Defn.Mnemonic == "" {
		return "???"
	}
	return e.Defn.Mnemonic
}

// Bytecode returns the bytes of the instruction as a string of hex values.
// Missing bytes are shown as question marks.
func (e Entry) Bytecode() string {
	s := strings.Builder{}
	n := max(e.Defn.Bytes, len(e.Bytes), 1)
	for i := range n {
		if i > 0 {
			s.WriteString(" ")
		}
		if i < len(e.Bytes) {
			s.WriteString(fmt.Sprintf("%02x", e.Bytes[i]))
		} else {
			s.WriteString("??")
		}
	}
	return s.String()
}

// OperandString returns the operand formatted according to the addressing
// mode. The symbol for the operand is used if there is one.
func (e Entry) OperandString() string {
	if !e.Complete {
		return ""
	}

	if e.OperandSymbol != "" {
		return addrModeDecoration(e.OperandSymbol, e.Defn.Mode.DisassemblyMode())
	}

	var operand string

	switch e.Defn.Mode.DisassemblyMode().Bytes() {
	case 1:
	case 2:
		operand = fmt.Sprintf("&%02x", e.Operand)
	case 3:
		operand = fmt.Sprintf("&%04x", e.Operand)
	}

	switch e.Defn.Mode.DisassemblyMode() {
	case instructions.Relative:
		operand = fmt.Sprintf("&%04x", e.Operand)
	case instructions.ZeroPageRelative:
		return fmt.Sprintf("&%02x,&%04x", e.ZeroPage, e.Operand)
	}

	return addrModeDecoration(operand, e.Defn.Mode.DisassemblyMode())
}

// Notes returns notes about the instruction. Currently only undocumented
// instructions are noted.
func (e Entry) Notes() string {
	if e.Defn.Undocumented {
		return "undocumented"
	}
	return ""
}

func (e Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%04x %s", e.Address, e.Mnemonic()))
	if op := e.OperandString(); op != "" {
		s.WriteString(" ")
		s.WriteString(op)
	}
	if e.Defn.Undocumented {
		s.WriteString(" *")
	}
	return s.String()
}

// add decoration to operand according to the addressing mode of the entry.
func addrModeDecoration(operand string, mode instructions.AddressingMode) string {
	s := operand

	switch mode {
	case instructions.Implied:
	case instructions.Accumulator:
		s = "A"
	case instructions.Immediate:
		s = fmt.Sprintf("#%s", operand)
	case instructions.Relative:
	case instructions.Absolute:
	case instructions.ZeroPage:
	case instructions.Indirect, instructions.ZeroPageIndirect:
		s = fmt.Sprintf("(%s)", operand)
	case instructions.IndexedIndirect:
		s = fmt.Sprintf("(%s,X)", operand)
	case instructions.AbsoluteIndexedIndirect:
		s = fmt.Sprintf("(%s,X)", operand)
	case instructions.IndirectIndexed:
		s = fmt.Sprintf("(%s),Y", operand)
	case instructions.AbsoluteIndexedX, instructions.ZeroPageIndexedX:
		s = fmt.Sprintf("%s,X", operand)
	case instructions.AbsoluteIndexedY, instructions.ZeroPageIndexedY:
		s = fmt.Sprintf("%s,Y", operand)
	}

	return s
}

// absolute branch destination returns the branch operand as the address of
// the branched PC, rather than an offset value. size is the length of the
// branch instruction.
func absoluteBranchDestination(addr uint16, size int, offset uint8) uint16 {
	// create a mock register with the instruction's address as the initial
	// value
	pc := registers.NewProgramCounter(addr)
	pc.Add(uint16(size))

	// the offset is a signed 8bit value. the sign must be propogated to the
	// more significant bits before the 16bit addition
	o := uint16(offset)
	if o&0x0080 == 0x0080 {
		o |= 0xff00
	}
	pc.Add(o)

	return pc.Address()
}
