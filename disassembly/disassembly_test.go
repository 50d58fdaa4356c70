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

package disassembly_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherbeeb/disassembly"
	"github.com/jetsetilly/gopherbeeb/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherbeeb/test"
)

// memory is sparse. addresses in SHEILA can't be read
type mockMem map[uint16]uint8

func (m mockMem) Peek(address uint16) (uint8, error) {
	if address&0xff00 == 0xfe00 {
		return 0, errors.New("io address")
	}
	return m[address], nil
}

func (m mockMem) load(address uint16, data ...uint8) {
	for i, d := range data {
		m[address+uint16(i)] = d
	}
}

func TestImmediate(t *testing.T) {
	mem := mockMem{}
	mem.load(0x2000, 0xa9, 0x41)

	e := disassembly.Disassemble(instructions.NMOS, mem, 0x2000, nil)
	test.ExpectSuccess(t, e.Complete)
	test.ExpectEquality(t, e.Mnemonic(), "lda")
	test.ExpectEquality(t, e.OperandString(), "#&41")
	test.ExpectEquality(t, e.Bytecode(), "a9 41")
	test.ExpectEquality(t, e.Next(), 0x2002)
	test.ExpectEquality(t, e.String(), "2000 lda #&41")
}

func TestBranch(t *testing.T) {
	mem := mockMem{}

	// backwards
	mem.load(0x2000, 0xd0, 0xfe)
	e := disassembly.Disassemble(instructions.NMOS, mem, 0x2000, nil)
	test.ExpectEquality(t, e.Operand, 0x2000)
	test.ExpectEquality(t, e.OperandString(), "&2000")

	// forwards
	mem.load(0x3000, 0xd0, 0x10)
	e = disassembly.Disassemble(instructions.NMOS, mem, 0x3000, nil)
	test.ExpectEquality(t, e.Operand, 0x3012)
}

func TestRockwellBitBranch(t *testing.T) {
	mem := mockMem{}
	mem.load(0x2000, 0x0f, 0x70, 0x03)

	e := disassembly.Disassemble(instructions.Rockwell, mem, 0x2000, nil)
	test.ExpectSuccess(t, e.Complete)
	test.ExpectEquality(t, e.Mnemonic(), "bbr0")
	test.ExpectEquality(t, e.ZeroPage, 0x70)
	test.ExpectEquality(t, e.Operand, 0x2006)
	test.ExpectEquality(t, e.OperandString(), "&70,&2006")
	test.ExpectEquality(t, e.Next(), 0x2003)
}

func TestUndocumented(t *testing.T) {
	mem := mockMem{}
	mem.load(0x2000, 0x07, 0x70)

	e := disassembly.Disassemble(instructions.NMOS, mem, 0x2000, nil)
	test.ExpectEquality(t, e.Mnemonic(), "slo")
	test.ExpectEquality(t, e.Notes(), "undocumented")
	test.ExpectSuccess(t, strings.HasSuffix(e.String(), " *"))

	// the same opcode is documented on the Rockwell variant
	e = disassembly.Disassemble(instructions.Rockwell, mem, 0x2000, nil)
	test.ExpectEquality(t, e.Mnemonic(), "rmb0")
	test.ExpectEquality(t, e.Notes(), "")
}

func TestSymbols(t *testing.T) {
	mem := mockMem{}
	mem.load(0x2000, 0x8d, 0x40, 0xfe) // sta &fe40
	mem.load(0x2003, 0xad, 0x08, 0xfe) // lda &fe08
	mem.load(0x2006, 0x20, 0xee, 0xff) // jsr &ffee
	mem.load(0x2009, 0x4c, 0x00, 0x20) // jmp &2000

	syms := disassembly.NewSymbols()
	test.ExpectSuccess(t, syms.Add(0x2000, "main loop"))
	test.ExpectFailure(t, syms.Add(0x2000, "again"))

	e := disassembly.Disassemble(instructions.NMOS, mem, 0x2000, syms)
	test.ExpectEquality(t, e.Label, "main_loop")
	test.ExpectEquality(t, e.OperandString(), "SOUND")

	e = disassembly.Disassemble(instructions.NMOS, mem, 0x2003, syms)
	test.ExpectEquality(t, e.OperandString(), "ACIASTAT")

	e = disassembly.Disassemble(instructions.NMOS, mem, 0x2006, syms)
	test.ExpectEquality(t, e.OperandString(), "OSWRCH")

	e = disassembly.Disassemble(instructions.NMOS, mem, 0x2009, syms)
	test.ExpectEquality(t, e.OperandString(), "main_loop")

	a, ok := syms.Search("MAIN_LOOP")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, 0x2000)

	test.ExpectSuccess(t, syms.Remove(0x2000))
	test.ExpectFailure(t, syms.Remove(0x2000))
	e = disassembly.Disassemble(instructions.NMOS, mem, 0x2009, syms)
	test.ExpectEquality(t, e.OperandString(), "&2000")
}

func TestReadSymbols(t *testing.T) {
	syms := disassembly.NewSymbols()

	src := "; comment\n\n&1900 start\n$2000 loop\n"
	test.ExpectSuccess(t, syms.ReadSymbols(strings.NewReader(src)))

	l, ok := syms.Label(0x1900)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, l, "start")
	l, _ = syms.Label(0x2000)
	test.ExpectEquality(t, l, "loop")

	test.ExpectFailure(t, syms.ReadSymbols(strings.NewReader("zzzz bad\n")))
	test.ExpectFailure(t, syms.ReadSymbols(strings.NewReader("1234\n")))
}

func TestIncomplete(t *testing.T) {
	mem := mockMem{}
	mem.load(0xfdfe, 0xea, 0xad)

	// the operand of the lda runs into SHEILA
	e := disassembly.Disassemble(instructions.NMOS, mem, 0xfdff, nil)
	test.ExpectFailure(t, e.Complete)
	test.ExpectEquality(t, e.Mnemonic(), "lda")
	test.ExpectEquality(t, e.Bytecode(), "ad ?? ??")
	test.ExpectEquality(t, e.OperandString(), "")

	// nothing can be read at all
	e = disassembly.Disassemble(instructions.NMOS, mem, 0xfe00, nil)
	test.ExpectFailure(t, e.Complete)
	test.ExpectEquality(t, e.Mnemonic(), "???")
	test.ExpectEquality(t, e.Next(), 0xfe01)
}

func TestRange(t *testing.T) {
	mem := mockMem{}
	mem.load(0x2000, 0xa9, 0x00, 0xea, 0x8d, 0x00, 0x30, 0x4c, 0x00, 0x20)

	var addrs []uint16
	var entries []disassembly.Entry
	for e := range disassembly.Range(instructions.CMOS, mem, 0x2000, 4, nil) {
		addrs = append(addrs, e.Address)
		entries = append(entries, e)
	}
	test.ExpectSuccess(t, slices.Equal(addrs, []uint16{0x2000, 0x2002, 0x2003, 0x2006}))

	// stop early
	var n int
	for range disassembly.Range(instructions.CMOS, mem, 0x2000, 4, nil) {
		n++
		if n == 2 {
			break
		}
	}
	test.ExpectEquality(t, n, 2)

	// wrap around the top of memory
	n = 0
	for range disassembly.Range(instructions.CMOS, mem, 0xffff, 4, nil) {
		n++
	}
	test.ExpectEquality(t, n, 1)

	w := &strings.Builder{}
	test.ExpectSuccess(t, disassembly.Write(w, entries, disassembly.WriteAttr{ByteCode: true}))
	lines := strings.Split(strings.TrimSpace(w.String()), "\n")
	test.ExpectEquality(t, len(lines), 4)
	test.ExpectEquality(t, lines[0], "2000 a9 00    lda #&00")
	test.ExpectEquality(t, lines[1], "2002 ea       nop")
	test.ExpectEquality(t, lines[2], "2003 8d 00 30 sta &3000")
}
