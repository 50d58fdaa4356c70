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

func documentedTable() table {
	t := make(table)

	t.add(0x00, "brk", Implied)
	t.add(0x01, "ora", IndexedIndirect)
	t.add(0x05, "ora", ZeroPage)
	t.add(0x06, "asl", ZeroPage)
	t.add(0x08, "php", Implied)
	t.add(0x09, "ora", Immediate)
	t.add(0x0a, "asl", Accumulator)
	t.add(0x0d, "ora", Absolute)
	t.add(0x0e, "asl", Absolute)
	t.add(0x10, "bpl", Relative)
	t.add(0x11, "ora", IndirectIndexed)
	t.add(0x15, "ora", ZeroPageIndexedX)
	t.add(0x16, "asl", ZeroPageIndexedX)
	t.add(0x18, "clc", Implied)
	t.add(0x19, "ora", AbsoluteIndexedY)
	t.add(0x1d, "ora", AbsoluteIndexedX)
	t.add(0x1e, "asl", AbsoluteIndexedX)
	t.add(0x20, "jsr", Absolute)
	t.add(0x21, "and", IndexedIndirect)
	t.add(0x24, "bit", ZeroPage)
	t.add(0x25, "and", ZeroPage)
	t.add(0x26, "rol", ZeroPage)
	t.add(0x28, "plp", Implied)
	t.add(0x29, "and", Immediate)
	t.add(0x2a, "rol", Accumulator)
	t.add(0x2c, "bit", Absolute)
	t.add(0x2d, "and", Absolute)
	t.add(0x2e, "rol", Absolute)
	t.add(0x30, "bmi", Relative)
	t.add(0x31, "and", IndirectIndexed)
	t.add(0x35, "and", ZeroPageIndexedX)
	t.add(0x36, "rol", ZeroPageIndexedX)
	t.add(0x38, "sec", Implied)
	t.add(0x39, "and", AbsoluteIndexedY)
	t.add(0x3d, "and", AbsoluteIndexedX)
	t.add(0x3e, "rol", AbsoluteIndexedX)
	t.add(0x40, "rti", Implied)
	t.add(0x41, "eor", IndexedIndirect)
	t.add(0x45, "eor", ZeroPage)
	t.add(0x46, "lsr", ZeroPage)
	t.add(0x48, "pha", Implied)
	t.add(0x49, "eor", Immediate)
	t.add(0x4a, "lsr", Accumulator)
	t.add(0x4c, "jmp", Absolute)
	t.add(0x4d, "eor", Absolute)
	t.add(0x4e, "lsr", Absolute)
	t.add(0x50, "bvc", Relative)
	t.add(0x51, "eor", IndirectIndexed)
	t.add(0x55, "eor", ZeroPageIndexedX)
	t.add(0x56, "lsr", ZeroPageIndexedX)
	t.add(0x58, "cli", Implied)
	t.add(0x59, "eor", AbsoluteIndexedY)
	t.add(0x5d, "eor", AbsoluteIndexedX)
	t.add(0x5e, "lsr", AbsoluteIndexedX)
	t.add(0x60, "rts", Implied)
	t.add(0x61, "adc", IndexedIndirect)
	t.add(0x65, "adc", ZeroPage)
	t.add(0x66, "ror", ZeroPage)
	t.add(0x68, "pla", Implied)
	t.add(0x69, "adc", Immediate)
	t.add(0x6a, "ror", Accumulator)
	t.add(0x6c, "jmp", Indirect)
	t.add(0x6d, "adc", Absolute)
	t.add(0x6e, "ror", Absolute)
	t.add(0x70, "bvs", Relative)
	t.add(0x71, "adc", IndirectIndexed)
	t.add(0x75, "adc", ZeroPageIndexedX)
	t.add(0x76, "ror", ZeroPageIndexedX)
	t.add(0x78, "sei", Implied)
	t.add(0x79, "adc", AbsoluteIndexedY)
	t.add(0x7d, "adc", AbsoluteIndexedX)
	t.add(0x7e, "ror", AbsoluteIndexedX)
	t.add(0x81, "sta", IndexedIndirect)
	t.add(0x84, "sty", ZeroPage)
	t.add(0x85, "sta", ZeroPage)
	t.add(0x86, "stx", ZeroPage)
	t.add(0x88, "dey", Implied)
	t.add(0x8a, "txa", Implied)
	t.add(0x8c, "sty", Absolute)
	t.add(0x8d, "sta", Absolute)
	t.add(0x8e, "stx", Absolute)
	t.add(0x90, "bcc", Relative)
	t.add(0x91, "sta", IndirectIndexed)
	t.add(0x94, "sty", ZeroPageIndexedX)
	t.add(0x95, "sta", ZeroPageIndexedX)
	t.add(0x96, "stx", ZeroPageIndexedY)
	t.add(0x98, "tya", Implied)
	t.add(0x99, "sta", AbsoluteIndexedY)
	t.add(0x9a, "txs", Implied)
	t.add(0x9d, "sta", AbsoluteIndexedX)
	t.add(0xa0, "ldy", Immediate)
	t.add(0xa1, "lda", IndexedIndirect)
	t.add(0xa2, "ldx", Immediate)
	t.add(0xa4, "ldy", ZeroPage)
	t.add(0xa5, "lda", ZeroPage)
	t.add(0xa6, "ldx", ZeroPage)
	t.add(0xa8, "tay", Implied)
	t.add(0xa9, "lda", Immediate)
	t.add(0xaa, "tax", Implied)
	t.add(0xac, "ldy", Absolute)
	t.add(0xad, "lda", Absolute)
	t.add(0xae, "ldx", Absolute)
	t.add(0xb0, "bcs", Relative)
	t.add(0xb1, "lda", IndirectIndexed)
	t.add(0xb4, "ldy", ZeroPageIndexedX)
	t.add(0xb5, "lda", ZeroPageIndexedX)
	t.add(0xb6, "ldx", ZeroPageIndexedY)
	t.add(0xb8, "clv", Implied)
	t.add(0xb9, "lda", AbsoluteIndexedY)
	t.add(0xba, "tsx", Implied)
	t.add(0xbc, "ldy", AbsoluteIndexedX)
	t.add(0xbd, "lda", AbsoluteIndexedX)
	t.add(0xbe, "ldx", AbsoluteIndexedY)
	t.add(0xc0, "cpy", Immediate)
	t.add(0xc1, "cmp", IndexedIndirect)
	t.add(0xc4, "cpy", ZeroPage)
	t.add(0xc5, "cmp", ZeroPage)
	t.add(0xc6, "dec", ZeroPage)
	t.add(0xc8, "iny", Implied)
	t.add(0xc9, "cmp", Immediate)
	t.add(0xca, "dex", Implied)
	t.add(0xcc, "cpy", Absolute)
	t.add(0xcd, "cmp", Absolute)
	t.add(0xce, "dec", Absolute)
	t.add(0xd0, "bne", Relative)
	t.add(0xd1, "cmp", IndirectIndexed)
	t.add(0xd5, "cmp", ZeroPageIndexedX)
	t.add(0xd6, "dec", ZeroPageIndexedX)
	t.add(0xd8, "cld", Implied)
	t.add(0xd9, "cmp", AbsoluteIndexedY)
	t.add(0xdd, "cmp", AbsoluteIndexedX)
	t.add(0xde, "dec", AbsoluteIndexedX)
	t.add(0xe0, "cpx", Immediate)
	t.add(0xe1, "sbc", IndexedIndirect)
	t.add(0xe4, "cpx", ZeroPage)
	t.add(0xe5, "sbc", ZeroPage)
	t.add(0xe6, "inc", ZeroPage)
	t.add(0xe8, "inx", Implied)
	t.add(0xe9, "sbc", Immediate)
	t.add(0xea, "nop", Implied)
	t.add(0xec, "cpx", Absolute)
	t.add(0xed, "sbc", Absolute)
	t.add(0xee, "inc", Absolute)
	t.add(0xf0, "beq", Relative)
	t.add(0xf1, "sbc", IndirectIndexed)
	t.add(0xf5, "sbc", ZeroPageIndexedX)
	t.add(0xf6, "inc", ZeroPageIndexedX)
	t.add(0xf8, "sed", Implied)
	t.add(0xf9, "sbc", AbsoluteIndexedY)
	t.add(0xfd, "sbc", AbsoluteIndexedX)
	t.add(0xfe, "inc", AbsoluteIndexedX)

	return t
}

func nmosTable() table {
	t := documentedTable()

	type group struct {
		mnemonic                          string
		zpg, zpx, inx, iny, abs, abx, aby uint8
	}

	// the undocumented RMW+ALU combinations share a common layout
	for _, g := range []group{
		{"slo", 0x07, 0x17, 0x03, 0x13, 0x0f, 0x1f, 0x1b},
		{"rla", 0x27, 0x37, 0x23, 0x33, 0x2f, 0x3f, 0x3b},
		{"sre", 0x47, 0x57, 0x43, 0x53, 0x4f, 0x5f, 0x5b},
		{"rra", 0x67, 0x77, 0x63, 0x73, 0x6f, 0x7f, 0x7b},
		{"dcp", 0xc7, 0xd7, 0xc3, 0xd3, 0xcf, 0xdf, 0xdb},
		{"isc", 0xe7, 0xf7, 0xe3, 0xf3, 0xef, 0xff, 0xfb},
	} {
		t.bulk(g.mnemonic, ZeroPage, true, g.zpg)
		t.bulk(g.mnemonic, ZeroPageIndexedX, true, g.zpx)
		t.bulk(g.mnemonic, IndexedIndirect, true, g.inx)
		t.bulk(g.mnemonic, IndirectIndexed, true, g.iny)
		t.bulk(g.mnemonic, Absolute, true, g.abs)
		t.bulk(g.mnemonic, AbsoluteIndexedX, true, g.abx)
		t.bulk(g.mnemonic, AbsoluteIndexedY, true, g.aby)
	}

	t.bulk("sax", ZeroPage, true, 0x87)
	t.bulk("sax", ZeroPageIndexedY, true, 0x97)
	t.bulk("sax", IndexedIndirect, true, 0x83)
	t.bulk("sax", Absolute, true, 0x8f)

	t.bulk("lax", ZeroPage, true, 0xa7)
	t.bulk("lax", ZeroPageIndexedY, true, 0xb7)
	t.bulk("lax", IndexedIndirect, true, 0xa3)
	t.bulk("lax", IndirectIndexed, true, 0xb3)
	t.bulk("lax", Absolute, true, 0xaf)
	t.bulk("lax", AbsoluteIndexedY, true, 0xbf)

	t.bulk("alr", Immediate, true, 0x4b)
	t.bulk("arr", Immediate, true, 0x6b)
	t.bulk("xaa", Immediate, true, 0x8b)
	t.bulk("lxa", Immediate, true, 0xab)
	t.bulk("axs", Immediate, true, 0xcb)
	t.bulk("ahx", IndirectIndexed, true, 0x93)
	t.bulk("ahx", AbsoluteIndexedY, true, 0x9f)
	t.bulk("shy", AbsoluteIndexedX, true, 0x9c)
	t.bulk("shx", AbsoluteIndexedY, true, 0x9e)
	t.bulk("tas", AbsoluteIndexedY, true, 0x9b)
	t.bulk("anc", Immediate, true, 0x0b, 0x2b)
	t.bulk("las", AbsoluteIndexedY, true, 0xbb)
	t.bulk("sbc", Immediate, true, 0xeb)

	t.bulk("nop", Absolute, true, 0x0c)
	t.bulk("nop", Implied, true, 0x1a, 0x3a, 0x5a, 0x7a, 0xda, 0xfa)
	t.bulk("nop", Immediate, true, 0x80, 0x82, 0x89, 0xc2, 0xe2)
	t.bulk("nop", ZeroPage, true, 0x04, 0x44, 0x64)
	t.bulk("nop", ZeroPageIndexedX, true, 0x14, 0x34, 0x54, 0x74, 0xd4, 0xf4)
	t.bulk("nop", AbsoluteIndexedX, true, 0x1c, 0x3c, 0x5c, 0x7c, 0xdc, 0xfc)
	t.bulk("hlt", Implied, true, 0x02, 0x12, 0x22, 0x32, 0x42, 0x52, 0x62, 0x72, 0x92, 0xb2, 0xd2, 0xf2)

	return t
}

func cmosTable(rockwell bool) table {
	t := documentedTable()

	t.bulk("phx", Implied, false, 0xda)
	t.bulk("phy", Implied, false, 0x5a)
	t.bulk("plx", Implied, false, 0xfa)
	t.bulk("ply", Implied, false, 0x7a)
	t.bulk("stz", ZeroPage, false, 0x64)
	t.bulk("stz", ZeroPageIndexedX, false, 0x74)
	t.bulk("stz", Absolute, false, 0x9c)
	t.bulk("stz", AbsoluteIndexedX, false, 0x9e)
	t.bulk("trb", ZeroPage, false, 0x14)
	t.bulk("trb", Absolute, false, 0x1c)
	t.bulk("tsb", ZeroPage, false, 0x04)
	t.bulk("tsb", Absolute, false, 0x0c)
	t.bulk("bra", Relative, false, 0x80)

	t.bulk("adc", ZeroPageIndirect, false, 0x72)
	t.bulk("and", ZeroPageIndirect, false, 0x32)
	t.bulk("cmp", ZeroPageIndirect, false, 0xd2)
	t.bulk("eor", ZeroPageIndirect, false, 0x52)
	t.bulk("lda", ZeroPageIndirect, false, 0xb2)
	t.bulk("ora", ZeroPageIndirect, false, 0x12)
	t.bulk("sbc", ZeroPageIndirect, false, 0xf2)
	t.bulk("sta", ZeroPageIndirect, false, 0x92)
	t.bulk("bit", Immediate, false, 0x89)
	t.bulk("bit", ZeroPageIndexedX, false, 0x34)
	t.bulk("bit", AbsoluteIndexedX, false, 0x3c)
	t.bulk("dec", Accumulator, false, 0x3a)
	t.bulk("inc", Accumulator, false, 0x1a)
	t.bulk("jmp", AbsoluteIndexedIndirect, false, 0x7c)

	for _, lsn := range []uint8{0x03, 0x07, 0x0b, 0x0f} {
		for msn := range uint8(16) {
			o := msn<<4 | lsn
			if rockwell && (lsn == 0x07 || lsn == 0x0f) {
				continue
			}
			t.bulk("nop", NOP11, true, o)
		}
	}

	t.bulk("nop", NOP22, true, 0x02, 0x22, 0x42, 0x62, 0x82, 0xc2, 0xe2)
	t.bulk("nop", NOP23, true, 0x44)
	t.bulk("nop", NOP24, true, 0x54, 0xd4, 0xf4)
	t.bulk("nop", NOP38, true, 0x5c)
	t.bulk("nop", NOP34, true, 0xdc, 0xfc)

	if rockwell {
		for n := range uint8(8) {
			d := string(rune('0' + n))
			t.bulk("rmb"+d, ZeroPage, false, 0x07+n<<4)
			t.bulk("smb"+d, ZeroPage, false, 0x87+n<<4)
			t.bulk("bbr"+d, ZeroPageRelative, false, 0x0f+n<<4)
			t.bulk("bbs"+d, ZeroPageRelative, false, 0x8f+n<<4)
		}
	}

	return t
}
