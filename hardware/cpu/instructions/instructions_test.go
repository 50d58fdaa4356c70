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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopherbeeb/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherbeeb/test"
)

func TestCompleteness(t *testing.T) {
	for _, v := range []instructions.Variant{instructions.NMOS, instructions.CMOS, instructions.Rockwell} {
		defs := instructions.GetDefinitions(v)
		for i, d := range defs {
			test.ExpectEquality(t, int(d.OpCode), i, v)
			test.ExpectInequality(t, d.Mnemonic, "", v, i)
			test.ExpectEquality(t, d.Bytes, d.Mode.Bytes(), v, i)
		}
	}
}

func TestNMOS(t *testing.T) {
	defs := instructions.GetDefinitions(instructions.NMOS)

	test.ExpectEquality(t, defs[0xa9].Mnemonic, "LDA")
	test.ExpectEquality(t, defs[0xa9].Mode, instructions.Immediate)
	test.ExpectEquality(t, defs[0xa9].Bytes, 2)
	test.ExpectEquality(t, defs[0xa9].Undocumented, false)

	test.ExpectEquality(t, defs[0x02].Mnemonic, "HLT")
	test.ExpectEquality(t, defs[0x02].Undocumented, true)
	test.ExpectEquality(t, defs[0xa7].Mnemonic, "LAX")
	test.ExpectEquality(t, defs[0xa7].Category, instructions.Read)
	test.ExpectEquality(t, defs[0x07].Category, instructions.Modify)
	test.ExpectEquality(t, defs[0x20].Category, instructions.Subroutine)
	test.ExpectEquality(t, defs[0x00].Category, instructions.Interrupt)
	test.ExpectEquality(t, defs[0x6c].Mode, instructions.Indirect)
	test.ExpectEquality(t, defs[0xd0].IsBranch(), true)

	undocumented := 0
	for _, d := range defs {
		if d.Undocumented {
			undocumented++
		}
	}
	test.ExpectEquality(t, undocumented, 256-151)
}

func TestCMOS(t *testing.T) {
	defs := instructions.GetDefinitions(instructions.CMOS)

	test.ExpectEquality(t, defs[0x80].Mnemonic, "BRA")
	test.ExpectEquality(t, defs[0x80].IsBranch(), true)
	test.ExpectEquality(t, defs[0xb2].Mode, instructions.ZeroPageIndirect)
	test.ExpectEquality(t, defs[0x7c].Mode, instructions.AbsoluteIndexedIndirect)
	test.ExpectEquality(t, defs[0x7c].Bytes, 3)

	// the NOPs have the size of their disassembly mode
	test.ExpectEquality(t, defs[0x03].Mode, instructions.NOP11)
	test.ExpectEquality(t, defs[0x03].Bytes, 1)
	test.ExpectEquality(t, defs[0x5c].Mode, instructions.NOP38)
	test.ExpectEquality(t, defs[0x5c].Bytes, 3)
	test.ExpectEquality(t, defs[0x44].Bytes, 2)
	test.ExpectEquality(t, defs[0x07].Mnemonic, "NOP")
}

func TestRockwell(t *testing.T) {
	defs := instructions.GetDefinitions(instructions.Rockwell)

	test.ExpectEquality(t, defs[0x07].Mnemonic, "RMB0")
	test.ExpectEquality(t, defs[0x07].Category, instructions.Modify)
	test.ExpectEquality(t, defs[0xf7].Mnemonic, "SMB7")
	test.ExpectEquality(t, defs[0x0f].Mnemonic, "BBR0")
	test.ExpectEquality(t, defs[0x0f].Mode, instructions.ZeroPageRelative)
	test.ExpectEquality(t, defs[0x0f].Bytes, 3)
	test.ExpectEquality(t, defs[0x0f].IsBranch(), true)
	test.ExpectEquality(t, defs[0xbf].Mnemonic, "BBS3")

	n, ok := defs[0xbf].BitNumber()
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, n, 3)
	_, ok = defs[0xa9].BitNumber()
	test.ExpectEquality(t, ok, false)

	// the other NOP columns are unchanged
	test.ExpectEquality(t, defs[0x03].Mode, instructions.NOP11)
}
