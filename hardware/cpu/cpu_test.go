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
	"testing"

	"github.com/jetsetilly/gopherbeeb/hardware/cpu"
	"github.com/jetsetilly/gopherbeeb/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherbeeb/test"
)

const (
	programOrigin = 0x1000
	irqHandler    = 0x2000
	nmiHandler    = 0x3000
)

// a flat 64k memory attached to a CPU
type machine struct {
	mem [0x10000]uint8
	mc  *cpu.CPU

	// read types of the cycles of the most recent instruction
	reads []cpu.ReadType
}

func newMachine(t *testing.T, config *cpu.Config, program ...uint8) *machine {
	t.Helper()

	m := &machine{}
	copy(m.mem[programOrigin:], program)

	m.mem[0xfffa] = uint8(nmiHandler & 0xff)
	m.mem[0xfffb] = uint8(nmiHandler >> 8)
	m.mem[0xfffc] = uint8(programOrigin & 0xff)
	m.mem[0xfffd] = uint8(programOrigin >> 8)
	m.mem[0xfffe] = uint8(irqHandler & 0xff)
	m.mem[0xffff] = uint8(irqHandler >> 8)

	// handlers are NOPs
	m.mem[irqHandler] = 0xea
	m.mem[nmiHandler] = 0xea

	m.mc = cpu.NewCPU(config)

	n := 0
	for !m.mc.IsAboutToExecute() {
		m.step()
		n++
	}

	// seven cycles of reset and the opcode fetch
	test.DemandEquality(t, n, 8)
	test.DemandEquality(t, m.mc.PC.Address(), uint16(programOrigin))

	return m
}

func newVariant(t *testing.T, v instructions.Variant, program ...uint8) *machine {
	t.Helper()
	return newMachine(t, cpu.NewConfig(v), program...)
}

func (m *machine) step() {
	m.mc.Step()
	if m.mc.Read() == cpu.Write {
		m.mem[m.mc.ABus()] = m.mc.DBus()
	} else {
		m.mc.SetDBus(m.mem[m.mc.ABus()])
	}
	m.reads = append(m.reads, m.mc.Read())
}

func (m *machine) atBoundary() bool {
	r := m.mc.Read()
	return r == cpu.ReadOpcode || r == cpu.ReadInterrupt
}

// instruction runs the CPU until the start of the next instruction or
// interrupt and returns the number of cycles taken
func (m *machine) instruction() int {
	m.reads = m.reads[:0]
	n := 0
	for {
		m.step()
		n++
		if m.atBoundary() || n > 100 {
			return n
		}
	}
}

func (m *machine) pushed(n int) uint8 {
	return m.mem[0x100|uint16(m.mc.SP.Value()+uint8(n))]
}

func TestReset(t *testing.T) {
	m := newVariant(t, instructions.NMOS)
	test.ExpectEquality(t, m.mc.Status.InterruptDisable, true)
	test.ExpectEquality(t, m.mc.SP.Value(), uint8(0xfd))

	// the reset sequence doesn't write to the stack
	for i := 0x100; i < 0x200; i++ {
		test.ExpectEquality(t, m.mem[i], uint8(0), i)
	}
}

func TestCycleCounts(t *testing.T) {
	type cycleTest struct {
		name    string
		variant instructions.Variant
		program []uint8
		setup   func(mc *cpu.CPU)
		cycles  int
	}

	x := func(v uint8) func(mc *cpu.CPU) {
		return func(mc *cpu.CPU) { mc.X.Load(v) }
	}
	y := func(v uint8) func(mc *cpu.CPU) {
		return func(mc *cpu.CPU) { mc.Y.Load(v) }
	}
	decimal := func(mc *cpu.CPU) { mc.Status.DecimalMode = true }
	zero := func(mc *cpu.CPU) { mc.Status.Zero = true }

	nmos := instructions.NMOS
	cmos := instructions.CMOS
	rockwell := instructions.Rockwell

	tests := []cycleTest{
		{"NOP", nmos, []uint8{0xea}, nil, 2},
		{"LDA imm", nmos, []uint8{0xa9, 0x01}, nil, 2},
		{"LDA zp", nmos, []uint8{0xa5, 0x10}, nil, 3},
		{"LDA zp,X", nmos, []uint8{0xb5, 0x10}, nil, 4},
		{"LDA abs", nmos, []uint8{0xad, 0x34, 0x12}, nil, 4},
		{"LDA abs,X", nmos, []uint8{0xbd, 0x00, 0x12}, x(1), 4},
		{"LDA abs,X page cross", nmos, []uint8{0xbd, 0xff, 0x12}, x(1), 5},
		{"LDA (zp,X)", nmos, []uint8{0xa1, 0x10}, nil, 6},
		{"LDA (zp),Y", nmos, []uint8{0xb1, 0x10}, y(0), 5},
		{"STA abs,X", nmos, []uint8{0x9d, 0x00, 0x12}, x(0), 5},
		{"STA (zp),Y", nmos, []uint8{0x91, 0x10}, y(0), 6},
		{"INC zp", nmos, []uint8{0xe6, 0x10}, nil, 5},
		{"INC abs", nmos, []uint8{0xee, 0x34, 0x12}, nil, 6},
		{"INC abs,X", nmos, []uint8{0xfe, 0x34, 0x12}, nil, 7},
		{"ASL A", nmos, []uint8{0x0a}, nil, 2},
		{"PHA", nmos, []uint8{0x48}, nil, 3},
		{"PLA", nmos, []uint8{0x68}, nil, 4},
		{"JSR", nmos, []uint8{0x20, 0x00, 0x20}, nil, 6},
		{"RTS", nmos, []uint8{0x60}, nil, 6},
		{"RTI", nmos, []uint8{0x40}, nil, 6},
		{"JMP abs", nmos, []uint8{0x4c, 0x00, 0x20}, nil, 3},
		{"JMP ind", nmos, []uint8{0x6c, 0x00, 0x20}, nil, 5},
		{"BRK", nmos, []uint8{0x00}, nil, 7},
		{"BEQ not taken", nmos, []uint8{0xf0, 0x10}, nil, 2},
		{"BNE taken", nmos, []uint8{0xd0, 0x10}, nil, 3},
		{"BNE taken page cross", nmos, []uint8{0xd0, 0x80}, nil, 4},
		{"SLO abs,Y", nmos, []uint8{0x1b, 0x00, 0x12}, nil, 7},
		{"ADC imm decimal NMOS", nmos, []uint8{0x69, 0x01}, decimal, 2},

		{"JMP ind CMOS", cmos, []uint8{0x6c, 0x00, 0x20}, nil, 6},
		{"JMP (abs,X)", cmos, []uint8{0x7c, 0x00, 0x20}, nil, 6},
		{"LDA (zp)", cmos, []uint8{0xb2, 0x10}, nil, 5},
		{"ADC imm", cmos, []uint8{0x69, 0x01}, nil, 2},
		{"ADC imm decimal", cmos, []uint8{0x69, 0x01}, decimal, 3},
		{"SBC abs,X decimal", cmos, []uint8{0xfd, 0x00, 0x12}, decimal, 6},
		{"SBC abs,X page cross decimal", cmos, []uint8{0xfd, 0xff, 0x12}, func(mc *cpu.CPU) {
			mc.X.Load(1)
			mc.Status.DecimalMode = true
		}, 6},
		{"ASL abs,X", cmos, []uint8{0x1e, 0x00, 0x12}, x(1), 6},
		{"ASL abs,X page cross", cmos, []uint8{0x1e, 0xff, 0x12}, x(1), 7},
		{"INC abs,X", cmos, []uint8{0xfe, 0x00, 0x12}, x(1), 7},
		{"INC zp", cmos, []uint8{0xe6, 0x10}, nil, 5},
		{"BRA", cmos, []uint8{0x80, 0x10}, nil, 3},
		{"PHX", cmos, []uint8{0xda}, nil, 3},
		{"STZ abs", cmos, []uint8{0x9c, 0x00, 0x12}, nil, 4},
		{"TSB zp", cmos, []uint8{0x04, 0x10}, nil, 5},
		{"NOP11", cmos, []uint8{0x03}, nil, 1},
		{"NOP22", cmos, []uint8{0x02, 0x00}, nil, 2},
		{"NOP23", cmos, []uint8{0x44, 0x00}, nil, 3},
		{"NOP24", cmos, []uint8{0x54, 0x00}, nil, 4},
		{"NOP34", cmos, []uint8{0xdc, 0x00, 0x00}, nil, 4},
		{"NOP38", cmos, []uint8{0x5c, 0x00, 0x00}, nil, 8},

		{"RMB0", rockwell, []uint8{0x07, 0x10}, nil, 5},
		{"SMB7", rockwell, []uint8{0xf7, 0x10}, nil, 5},
		{"BBR0 taken", rockwell, []uint8{0x0f, 0x10, 0x10}, nil, 6},
		{"BBS0 not taken", rockwell, []uint8{0x8f, 0x10, 0x10}, nil, 5},
		{"BBR0 taken page cross", rockwell, []uint8{0x0f, 0x10, 0x80}, nil, 7},
		{"BEQ taken", rockwell, []uint8{0xf0, 0x10}, zero, 3},
	}

	for _, ct := range tests {
		m := newVariant(t, ct.variant, ct.program...)
		if ct.setup != nil {
			ct.setup(m.mc)
		}
		test.ExpectEquality(t, m.instruction(), ct.cycles, ct.variant, ct.name)
	}
}

func TestReadTypes(t *testing.T) {
	m := newVariant(t, instructions.NMOS, 0xad, 0x34, 0x12, 0x8d, 0x34, 0x12)
	m.instruction()
	test.ExpectEquality(t, len(m.reads), 4)
	test.ExpectEquality(t, m.reads[0], cpu.ReadInstruction)
	test.ExpectEquality(t, m.reads[1], cpu.ReadInstruction)
	test.ExpectEquality(t, m.reads[2], cpu.ReadData)
	test.ExpectEquality(t, m.reads[3], cpu.ReadOpcode)
	test.ExpectEquality(t, m.mc.OpcodePC(), uint16(programOrigin+3))

	m.mc.A.Load(0x99)
	m.instruction()
	test.ExpectEquality(t, m.reads[2], cpu.Write)
	test.ExpectEquality(t, m.mem[0x1234], uint8(0x99))
}

func TestOpcodePC(t *testing.T) {
	m := newVariant(t, instructions.NMOS, 0xea, 0xa9, 0x00, 0xea)
	test.ExpectEquality(t, m.mc.IsAboutToExecute(), true)
	test.ExpectEquality(t, m.mc.OpcodePC(), uint16(programOrigin))
	m.instruction()
	test.ExpectEquality(t, m.mc.OpcodePC(), uint16(programOrigin+1))
	m.instruction()
	test.ExpectEquality(t, m.mc.OpcodePC(), uint16(programOrigin+3))
	test.ExpectEquality(t, m.mc.Opcode(), uint8(0xa9))
}

func TestIRQ(t *testing.T) {
	m := newVariant(t, instructions.NMOS, 0xea, 0xea)
	m.mc.Status.InterruptDisable = false
	m.mc.Status.Carry = true
	m.mc.SetDeviceIRQ(0x01, true)

	// the first NOP was fetched before the IRQ was asserted
	m.instruction()
	test.ExpectEquality(t, m.mc.Read(), cpu.ReadInterrupt)

	test.ExpectEquality(t, m.instruction(), 7)
	test.ExpectEquality(t, m.mc.PC.Address(), uint16(irqHandler))
	test.ExpectEquality(t, m.mc.Status.InterruptDisable, true)

	// return address is the instruction that was interrupted
	test.ExpectEquality(t, m.pushed(3), uint8(0x10))
	test.ExpectEquality(t, m.pushed(2), uint8(0x01))

	// B flag is clear in the pushed status
	test.ExpectEquality(t, m.pushed(1)&0x10, uint8(0x00))
	test.ExpectEquality(t, m.pushed(1)&0x01, uint8(0x01))

	// IRQ remains asserted but I is now set
	m.instruction()
	test.ExpectEquality(t, m.mc.Read(), cpu.ReadOpcode)
	test.ExpectEquality(t, m.mc.DeviceIRQ(), uint8(0x01))

	m.mc.SetDeviceIRQ(0x01, false)
	test.ExpectEquality(t, m.mc.DeviceIRQ(), uint8(0x00))
}

func TestIRQMask(t *testing.T) {
	m := newVariant(t, instructions.NMOS, 0xea, 0xea, 0xea)
	m.mc.Status.InterruptDisable = false

	// IRQ is asserted while any device holds the line
	m.mc.SetDeviceIRQ(0x01, true)
	m.mc.SetDeviceIRQ(0x02, true)
	m.mc.SetDeviceIRQ(0x01, false)
	m.instruction()
	test.ExpectEquality(t, m.mc.Read(), cpu.ReadInterrupt)
}

func TestCLILatency(t *testing.T) {
	m := newVariant(t, instructions.NMOS, 0x58, 0xea, 0xea)
	m.mc.SetDeviceIRQ(0x01, true)

	// CLI takes effect after the following instruction
	m.instruction()
	test.ExpectEquality(t, m.mc.Read(), cpu.ReadOpcode)
	test.ExpectEquality(t, m.mc.Status.InterruptDisable, false)

	m.instruction()
	test.ExpectEquality(t, m.mc.Read(), cpu.ReadInterrupt)
	test.ExpectEquality(t, m.mc.OpcodePC(), uint16(programOrigin+2))
}

func TestSEILatency(t *testing.T) {
	m := newVariant(t, instructions.NMOS, 0x78, 0xea)
	m.mc.Status.InterruptDisable = false
	m.mc.SetDeviceIRQ(0x01, true)

	// the IRQ is taken after SEI even though SEI sets I
	m.instruction()
	test.ExpectEquality(t, m.mc.Read(), cpu.ReadInterrupt)

	m.instruction()
	test.ExpectEquality(t, m.mc.PC.Address(), uint16(irqHandler))

	// I was set in the pushed status
	test.ExpectEquality(t, m.pushed(1)&0x04, uint8(0x04))
}

func TestBranchNoPoll(t *testing.T) {
	m := newVariant(t, instructions.NMOS, 0xd0, 0x00, 0xea, 0xea)
	m.mc.Status.InterruptDisable = false

	// IRQ asserted during the final cycle of a taken branch that doesn't
	// cross a page is not seen until after the next instruction
	m.step()
	m.step()
	m.mc.SetDeviceIRQ(0x01, true)
	m.step()
	test.ExpectEquality(t, m.mc.Read(), cpu.ReadOpcode)
	test.ExpectEquality(t, m.mc.ABus(), uint16(programOrigin+2))

	m.instruction()
	test.ExpectEquality(t, m.mc.Read(), cpu.ReadInterrupt)
}

func TestNMIEdge(t *testing.T) {
	m := newVariant(t, instructions.NMOS, 0xea, 0xea, 0xea)
	m.mem[nmiHandler+1] = 0xea
	m.mem[nmiHandler+2] = 0xea

	// NMI is taken even with I set
	m.mc.SetDeviceNMI(0x01, true)
	m.instruction()
	test.ExpectEquality(t, m.mc.Read(), cpu.ReadInterrupt)
	m.instruction()
	test.ExpectEquality(t, m.mc.PC.Address(), uint16(nmiHandler))

	// holding NMI does not cause another interrupt
	m.instruction()
	test.ExpectEquality(t, m.mc.Read(), cpu.ReadOpcode)

	// a second device doesn't cause an edge either
	m.mc.SetDeviceNMI(0x02, true)
	m.instruction()
	test.ExpectEquality(t, m.mc.Read(), cpu.ReadOpcode)

	// release and assert again
	m.mc.SetDeviceNMI(0x03, false)
	m.mc.SetDeviceNMI(0x01, true)
	m.instruction()
	test.ExpectEquality(t, m.mc.Read(), cpu.ReadInterrupt)
}

func TestBRK(t *testing.T) {
	m := newVariant(t, instructions.NMOS, 0x00, 0xff)
	m.mc.Status.DecimalMode = true
	m.instruction()

	test.ExpectEquality(t, m.mc.PC.Address(), uint16(irqHandler))

	// return address skips the signature byte
	test.ExpectEquality(t, m.pushed(3), uint8(0x10))
	test.ExpectEquality(t, m.pushed(2), uint8(0x02))

	// B flag is set in the pushed status
	test.ExpectEquality(t, m.pushed(1)&0x10, uint8(0x10))

	// the NMOS CPU leaves D alone
	test.ExpectEquality(t, m.mc.Status.DecimalMode, true)
}

func TestBRKClearsDecimalCMOS(t *testing.T) {
	m := newVariant(t, instructions.CMOS, 0x00, 0xff)
	m.mc.Status.DecimalMode = true
	m.instruction()
	test.ExpectEquality(t, m.mc.PC.Address(), uint16(irqHandler))
	test.ExpectEquality(t, m.mc.Status.DecimalMode, false)
	test.ExpectEquality(t, m.pushed(1)&0x08, uint8(0x08))
}

func TestNMIHijacksBRK(t *testing.T) {
	m := newVariant(t, instructions.NMOS, 0x00, 0xff)

	// assert NMI after the stack writes but before the vector fetch
	m.step()
	m.step()
	m.step()
	m.mc.SetDeviceNMI(0x01, true)
	m.instruction()

	test.ExpectEquality(t, m.mc.PC.Address(), uint16(nmiHandler))

	// the pushed status still shows the BRK
	test.ExpectEquality(t, m.pushed(1)&0x10, uint8(0x10))

	// the NMI has been serviced
	m.instruction()
	test.ExpectEquality(t, m.mc.Read(), cpu.ReadOpcode)
}

func TestPHP(t *testing.T) {
	m := newVariant(t, instructions.NMOS, 0x08, 0x28)
	m.mc.Status.Carry = true
	m.instruction()
	test.ExpectEquality(t, m.pushed(1), uint8(0x35))

	m.mem[0x100|uint16(m.mc.SP.Value()+1)] = 0xff
	m.instruction()
	test.ExpectEquality(t, m.mc.Status.String(), "NV--DIZC")
}

func TestJMPIndirectPageWrap(t *testing.T) {
	program := []uint8{0x6c, 0xff, 0x20}

	m := newVariant(t, instructions.NMOS, program...)
	m.mem[0x20ff] = 0x34
	m.mem[0x2000] = 0x56
	m.mem[0x2100] = 0x12
	m.instruction()
	test.ExpectEquality(t, m.mc.PC.Address(), uint16(0x5634))

	m = newVariant(t, instructions.CMOS, program...)
	m.mem[0x20ff] = 0x34
	m.mem[0x2000] = 0x56
	m.mem[0x2100] = 0x12
	m.instruction()
	test.ExpectEquality(t, m.mc.PC.Address(), uint16(0x1234))
}

func TestSubroutine(t *testing.T) {
	m := newVariant(t, instructions.NMOS, 0x20, 0x00, 0x20, 0xea)
	m.mem[0x2000] = 0x60

	m.instruction()
	test.ExpectEquality(t, m.mc.PC.Address(), uint16(0x2000))
	test.ExpectEquality(t, m.pushed(2), uint8(0x10))
	test.ExpectEquality(t, m.pushed(1), uint8(0x02))

	m.instruction()
	test.ExpectEquality(t, m.mc.PC.Address(), uint16(programOrigin+3))
}

func TestDecimal(t *testing.T) {
	// SED; CLC; LDA #$09; ADC #$01
	program := []uint8{0xf8, 0x18, 0xa9, 0x09, 0x69, 0x01}

	for _, v := range []instructions.Variant{instructions.NMOS, instructions.CMOS} {
		m := newVariant(t, v, program...)
		for range 4 {
			m.instruction()
		}
		test.ExpectEquality(t, m.mc.A.Value(), uint8(0x10), v)
		test.ExpectEquality(t, m.mc.Status.Carry, false, v)
	}
}

func TestHalt(t *testing.T) {
	m := newVariant(t, instructions.NMOS, 0x02)
	for range 10 {
		m.step()
	}
	test.ExpectEquality(t, m.mc.IsHalted(), true)
	test.ExpectEquality(t, m.mc.ABus(), uint16(0xffff))
	test.ExpectEquality(t, m.mc.PC.Address(), uint16(programOrigin))

	// interrupts are not serviced while halted
	m.mc.SetDeviceNMI(0x01, true)
	for range 10 {
		m.step()
	}
	test.ExpectEquality(t, m.mc.IsHalted(), true)

	m.mc.Reset()
	m.mc.SetDeviceNMI(0x01, false)
	m.step()
	test.ExpectEquality(t, m.mc.IsHalted(), false)
}

func TestTrap(t *testing.T) {
	base := cpu.NewConfig(instructions.NMOS)
	config := base.Clone()

	var called int
	config.SetTrap(0x02, func(mc *cpu.CPU) {
		called++
		mc.A.Load(0x42)
	})

	test.ExpectEquality(t, base.Sequence(0x02), "HLT")
	test.ExpectEquality(t, config.Sequence(0x02), "IMP")

	m := newMachine(t, config, 0x02, 0xea)
	test.ExpectEquality(t, m.instruction(), 2)
	test.ExpectEquality(t, called, 1)
	test.ExpectEquality(t, m.mc.A.Value(), uint8(0x42))
	test.ExpectEquality(t, m.mc.OpcodePC(), uint16(programOrigin+1))
	test.ExpectEquality(t, m.mc.IsHalted(), false)
}

func TestTrapNil(t *testing.T) {
	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()
	cpu.NewConfig(instructions.CMOS).SetTrap(0xea, nil)
}

func TestRockwell(t *testing.T) {
	// SMB3 $10; BBS3 $10,+2; NOP; NOP; RMB3 $10
	m := newVariant(t, instructions.Rockwell, 0xb7, 0x10, 0xbf, 0x10, 0x02, 0xea, 0xea, 0x37, 0x10)
	m.instruction()
	test.ExpectEquality(t, m.mem[0x10], uint8(0x08))

	test.ExpectEquality(t, m.instruction(), 6)
	test.ExpectEquality(t, m.mc.PC.Address(), uint16(programOrigin+7))

	m.instruction()
	test.ExpectEquality(t, m.mem[0x10], uint8(0x00))
}

func TestSnapshot(t *testing.T) {
	m := newVariant(t, instructions.NMOS, 0xa9, 0x01, 0x69, 0x02, 0x8d, 0x00, 0x04, 0xee, 0x00, 0x04)

	// snapshot part way through an instruction
	m.instruction()
	m.step()

	c := &machine{mem: m.mem, mc: m.mc.Snapshot()}
	test.ExpectEquality(t, c.mem[0x0400], uint8(0x00))

	for range 3 {
		m.instruction()
	}
	test.ExpectEquality(t, m.mem[0x0400], uint8(0x04))
	test.ExpectEquality(t, c.mem[0x0400], uint8(0x00))

	for range 3 {
		c.instruction()
	}
	test.ExpectEquality(t, c.mc.String(), m.mc.String())
	test.ExpectEquality(t, c.mem[0x0400], uint8(0x04))
	test.ExpectEquality(t, c.mc.Cycles, m.mc.Cycles)
}

func TestCMOSBit(t *testing.T) {
	// BIT #$C0 only affects Z on the 65C02
	m := newVariant(t, instructions.CMOS, 0x89, 0xc0)
	m.mc.A.Load(0x01)
	m.instruction()
	test.ExpectEquality(t, m.mc.Status.Zero, true)
	test.ExpectEquality(t, m.mc.Status.Sign, false)
	test.ExpectEquality(t, m.mc.Status.Overflow, false)
}

func TestLoadPC(t *testing.T) {
	m := newVariant(t, instructions.NMOS)
	m.mem[0x4000] = 0xa9
	m.mem[0x4001] = 0x77
	m.mc.LoadPC(0x4000)
	m.step()
	test.ExpectEquality(t, m.mc.IsAboutToExecute(), true)
	test.ExpectEquality(t, m.mc.ABus(), uint16(0x4000))
	m.instruction()
	test.ExpectEquality(t, m.mc.A.Value(), uint8(0x77))
}
