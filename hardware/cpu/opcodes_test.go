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

package cpu_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gopherbeeb/hardware/cpu"
	"github.com/jetsetilly/gopherbeeb/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherbeeb/test"
)

// cycles taken by each opcode when no page boundary is crossed and the
// CPU is in binary mode. all flags are clear so BPL, BVC, BCC and BNE are
// taken and the other conditional branches are not. zero marks the opcodes
// that halt the CPU
var nmosCycles = [256]int{
	//       x0 x1 x2 x3 x4 x5 x6 x7 x8 x9 xA xB xC xD xE xF
	/* 0x */ 7, 6, 0, 8, 3, 3, 5, 5, 3, 2, 2, 2, 4, 4, 6, 6,
	/* 1x */ 3, 5, 0, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7,
	/* 2x */ 6, 6, 0, 8, 3, 3, 5, 5, 4, 2, 2, 2, 4, 4, 6, 6,
	/* 3x */ 2, 5, 0, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7,
	/* 4x */ 6, 6, 0, 8, 3, 3, 5, 5, 3, 2, 2, 2, 3, 4, 6, 6,
	/* 5x */ 3, 5, 0, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7,
	/* 6x */ 6, 6, 0, 8, 3, 3, 5, 5, 4, 2, 2, 2, 5, 4, 6, 6,
	/* 7x */ 2, 5, 0, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7,
	/* 8x */ 2, 6, 2, 6, 3, 3, 3, 3, 2, 2, 2, 2, 4, 4, 4, 4,
	/* 9x */ 3, 6, 0, 6, 4, 4, 4, 4, 2, 5, 2, 5, 5, 5, 5, 5,
	/* Ax */ 2, 6, 2, 6, 3, 3, 3, 3, 2, 2, 2, 2, 4, 4, 4, 4,
	/* Bx */ 2, 5, 0, 5, 4, 4, 4, 4, 2, 4, 2, 4, 4, 4, 4, 4,
	/* Cx */ 2, 6, 2, 8, 3, 3, 5, 5, 2, 2, 2, 2, 4, 4, 6, 6,
	/* Dx */ 3, 5, 0, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7,
	/* Ex */ 2, 6, 2, 8, 3, 3, 5, 5, 2, 2, 2, 2, 4, 4, 6, 6,
	/* Fx */ 2, 5, 0, 8, 4, 4, 6, 6, 2, 4, 2, 7, 4, 4, 7, 7,
}

var cmosCycles = [256]int{
	//       x0 x1 x2 x3 x4 x5 x6 x7 x8 x9 xA xB xC xD xE xF
	/* 0x */ 7, 6, 2, 1, 5, 3, 5, 1, 3, 2, 2, 1, 6, 4, 6, 1,
	/* 1x */ 3, 5, 5, 1, 5, 4, 6, 1, 2, 4, 2, 1, 6, 4, 6, 1,
	/* 2x */ 6, 6, 2, 1, 3, 3, 5, 1, 4, 2, 2, 1, 4, 4, 6, 1,
	/* 3x */ 2, 5, 5, 1, 4, 4, 6, 1, 2, 4, 2, 1, 4, 4, 6, 1,
	/* 4x */ 6, 6, 2, 1, 3, 3, 5, 1, 3, 2, 2, 1, 3, 4, 6, 1,
	/* 5x */ 3, 5, 5, 1, 4, 4, 6, 1, 2, 4, 3, 1, 8, 4, 6, 1,
	/* 6x */ 6, 6, 2, 1, 3, 3, 5, 1, 4, 2, 2, 1, 6, 4, 6, 1,
	/* 7x */ 2, 5, 5, 1, 4, 4, 6, 1, 2, 4, 4, 1, 6, 4, 6, 1,
	/* 8x */ 3, 6, 2, 1, 3, 3, 3, 1, 2, 2, 2, 1, 4, 4, 4, 1,
	/* 9x */ 3, 6, 5, 1, 4, 4, 4, 1, 2, 5, 2, 1, 4, 5, 5, 1,
	/* Ax */ 2, 6, 2, 1, 3, 3, 3, 1, 2, 2, 2, 1, 4, 4, 4, 1,
	/* Bx */ 2, 5, 5, 1, 4, 4, 4, 1, 2, 4, 2, 1, 4, 4, 4, 1,
	/* Cx */ 2, 6, 2, 1, 3, 3, 5, 1, 2, 2, 2, 1, 4, 4, 6, 1,
	/* Dx */ 3, 5, 5, 1, 4, 4, 6, 1, 2, 4, 3, 1, 4, 4, 7, 1,
	/* Ex */ 2, 6, 2, 1, 3, 3, 5, 1, 2, 2, 2, 1, 4, 4, 6, 1,
	/* Fx */ 2, 5, 5, 1, 4, 4, 6, 1, 2, 4, 4, 1, 4, 4, 7, 1,
}

// operand returns the bytes that follow the opcode. two byte instructions
// address zero page $10 and three byte instructions address $1200
func operand(bytes int) []uint8 {
	switch bytes {
	case 2:
		return []uint8{0x10}
	case 3:
		return []uint8{0x00, 0x12}
	}
	return nil
}

func clearFlags(mc *cpu.CPU) {
	mc.Status.Sign = false
	mc.Status.Overflow = false
	mc.Status.DecimalMode = false
	mc.Status.Zero = false
	mc.Status.Carry = false
}

func TestOpcodeCycles(t *testing.T) {
	for _, v := range []struct {
		variant instructions.Variant
		cycles  *[256]int
	}{
		{instructions.NMOS, &nmosCycles},
		{instructions.CMOS, &cmosCycles},
	} {
		cfg := cpu.NewConfig(v.variant)
		for op := range 256 {
			if v.cycles[op] == 0 {
				continue
			}
			defn := cfg.Definition(uint8(op))
			m := newMachine(t, cfg, append([]uint8{uint8(op)}, operand(defn.Bytes)...)...)
			clearFlags(m.mc)
			test.ExpectEquality(t, m.instruction(), v.cycles[op], v.variant, fmt.Sprintf("%02x %s", op, defn.Mnemonic))
		}
	}
}

func TestOpcodeFlags(t *testing.T) {
	type flagTest struct {
		name    string
		variant instructions.Variant
		program []uint8

		// register and zero page $10 values before the instruction
		a, x, mem uint8
		carry     bool

		// status register and result afterwards. the result is taken from
		// the register or memory location named by dest
		status string
		dest   string
		result uint8
	}

	nmos := instructions.NMOS
	cmos := instructions.CMOS

	tests := []flagTest{
		{"ADC overflow", nmos, []uint8{0x69, 0x50}, 0x50, 0, 0, false, "NV--dIzc", "A", 0xa0},
		{"ADC carry", nmos, []uint8{0x69, 0x01}, 0xff, 0, 0, false, "nv--dIZC", "A", 0x00},
		{"ADC negative overflow", nmos, []uint8{0x69, 0x80}, 0x80, 0, 0, false, "nV--dIZC", "A", 0x00},
		{"ADC carry in", nmos, []uint8{0x69, 0x00}, 0x7f, 0, 0, true, "NV--dIzc", "A", 0x80},
		{"SBC borrow", nmos, []uint8{0xe9, 0xf0}, 0x50, 0, 0, true, "nv--dIzc", "A", 0x60},
		{"SBC overflow", nmos, []uint8{0xe9, 0xb0}, 0x50, 0, 0, true, "NV--dIzc", "A", 0xa0},
		{"SBC borrow in", nmos, []uint8{0xe9, 0x01}, 0x00, 0, 0, false, "Nv--dIzc", "A", 0xfe},
		{"CMP equal", nmos, []uint8{0xc9, 0x10}, 0x10, 0, 0, false, "nv--dIZC", "A", 0x10},
		{"CMP less", nmos, []uint8{0xc9, 0x20}, 0x10, 0, 0, false, "Nv--dIzc", "A", 0x10},
		{"CPX greater", nmos, []uint8{0xe0, 0x05}, 0, 0x10, 0, false, "nv--dIzC", "X", 0x10},
		{"BIT", nmos, []uint8{0x24, 0x10}, 0x01, 0, 0xc0, false, "NV--dIZc", "A", 0x01},
		{"ASL A", nmos, []uint8{0x0a}, 0x81, 0, 0, false, "nv--dIzC", "A", 0x02},
		{"LSR A", nmos, []uint8{0x4a}, 0x01, 0, 0, false, "nv--dIZC", "A", 0x00},
		{"ROL A", nmos, []uint8{0x2a}, 0x80, 0, 0, true, "nv--dIzC", "A", 0x01},
		{"ROR A", nmos, []uint8{0x6a}, 0x01, 0, 0, true, "Nv--dIzC", "A", 0x80},
		{"INC zp", nmos, []uint8{0xe6, 0x10}, 0, 0, 0xff, false, "nv--dIZc", "M", 0x00},
		{"DEC zp", nmos, []uint8{0xc6, 0x10}, 0, 0, 0x00, false, "Nv--dIzc", "M", 0xff},
		{"AND", nmos, []uint8{0x29, 0x0f}, 0xf0, 0, 0, false, "nv--dIZc", "A", 0x00},
		{"EOR", nmos, []uint8{0x49, 0xff}, 0x7f, 0, 0, false, "Nv--dIzc", "A", 0x80},
		{"ANC", nmos, []uint8{0x0b, 0x80}, 0xff, 0, 0, false, "Nv--dIzC", "A", 0x80},
		{"ALR", nmos, []uint8{0x4b, 0x03}, 0xff, 0, 0, false, "nv--dIzC", "A", 0x01},
		{"AXS", nmos, []uint8{0xcb, 0x01}, 0x0f, 0xf0, 0, false, "Nv--dIzc", "X", 0xff},
		{"LAX zp", nmos, []uint8{0xa7, 0x10}, 0, 0, 0x85, false, "Nv--dIzc", "X", 0x85},
		{"DCP zp", nmos, []uint8{0xc7, 0x10}, 0x10, 0, 0x11, false, "nv--dIZC", "M", 0x10},

		{"ADC overflow", cmos, []uint8{0x69, 0x50}, 0x50, 0, 0, false, "NV--dIzc", "A", 0xa0},
		{"SBC borrow in", cmos, []uint8{0xe9, 0x01}, 0x00, 0, 0, false, "Nv--dIzc", "A", 0xfe},
		{"BIT imm", cmos, []uint8{0x89, 0x80}, 0x01, 0, 0, false, "nv--dIZc", "A", 0x01},
		{"TSB zp", cmos, []uint8{0x04, 0x10}, 0x0f, 0, 0xf0, false, "nv--dIZc", "M", 0xff},
		{"TRB zp", cmos, []uint8{0x14, 0x10}, 0x0f, 0, 0xff, false, "nv--dIzc", "M", 0xf0},
		{"INC A", cmos, []uint8{0x1a}, 0xff, 0, 0, false, "nv--dIZc", "A", 0x00},
	}

	for _, ft := range tests {
		m := newVariant(t, ft.variant, ft.program...)
		clearFlags(m.mc)
		m.mc.A.Load(ft.a)
		m.mc.X.Load(ft.x)
		m.mc.Status.Carry = ft.carry
		m.mem[0x10] = ft.mem

		m.instruction()
		test.ExpectEquality(t, m.mc.Status.String(), ft.status, ft.variant, ft.name)

		var r uint8
		switch ft.dest {
		case "A":
			r = m.mc.A.Value()
		case "X":
			r = m.mc.X.Value()
		case "M":
			r = m.mem[0x10]
		}
		test.ExpectEquality(t, r, ft.result, ft.variant, ft.name)
	}
}
