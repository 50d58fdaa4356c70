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
	"iter"

	"github.com/jetsetilly/gopherbeeb/hardware/cpu/instructions"
)

// Disassemble the instruction at the address. The symbols table can be nil.
func Disassemble(variant instructions.Variant, mem Memory, address uint16, syms *Symbols) Entry {
	e := Entry{Address: address}

	op, err := mem.Peek(address)
	if err != nil {
		return e
	}

	defs := instructions.GetDefinitions(variant)
	e.Defn = defs[op]
	e.Bytes = append(e.Bytes, op)

	for i := 1; i < e.Defn.Bytes; i++ {
		b, err := mem.Peek(address + uint16(i))
		if err != nil {
			break
		}
		e.Bytes = append(e.Bytes, b)
	}

	e.Complete = len(e.Bytes) >= e.Defn.Bytes

	if e.Complete {
		switch e.Defn.Mode.DisassemblyMode() {
		case instructions.Relative:
			e.Operand = absoluteBranchDestination(address, e.Defn.Bytes, e.Bytes[1])
		case instructions.ZeroPageRelative:
			e.ZeroPage = e.Bytes[1]
			e.Operand = absoluteBranchDestination(address, e.Defn.Bytes, e.Bytes[2])
		default:
			switch len(e.Bytes) {
			case 2:
				e.Operand = uint16(e.Bytes[1])
			case 3:
				e.Operand = uint16(e.Bytes[1]) | uint16(e.Bytes[2])<<8
			}
		}
	}

	if syms != nil {
		e.Label, _ = syms.Label(address)
		if e.Complete {
			e.OperandSymbol = syms.operand(e)
		}
	}

	return e
}

// Range returns a sequence of n consecutive entries starting at the address.
// The sequence stops early if the address wraps around the top of memory.
func Range(variant instructions.Variant, mem Memory, address uint16, n int, syms *Symbols) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for range n {
			e := Disassemble(variant, mem, address, syms)
			if !yield(e) {
				return
			}
			next := e.Next()
			if next < address {
				return
			}
			address = next
		}
	}
}
