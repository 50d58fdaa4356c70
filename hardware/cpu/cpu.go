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

import (
	"fmt"

	"github.com/jetsetilly/gopherbeeb/hardware/cpu/registers"
)

// CPU implements the 6502 and 65C02 one bus cycle at a time. The CPU does not
// access memory itself. After every call to Step() the host must complete the
// bus access described by ABus(), Read() and DBus().
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	// working register for read-modify-write instructions
	acc8 registers.Register

	config *Config

	abus uint16
	dbus uint8
	read ReadType

	// the function called by the next Step(). always a method expression so
	// that copies of the CPU are independent
	tfn func(*CPU)

	// the active cycle sequence and the index of the current cycle
	seq *sequence
	t   int

	// the operation of the current instruction
	ifn func(*CPU)

	ad       uint16
	ia       uint16
	data     uint8
	zpData   uint8
	opcode   uint8
	opcodePC uint16

	// carry out of the low byte in the most recent indexed address
	acarry bool

	// interrupt polling result. an interrupt sequence starts at the next
	// instruction boundary if this is true
	interruptDue bool

	deviceIRQ uint8
	deviceNMI uint8
	nmiLatch  bool

	halted      bool
	resetting   bool
	brk         bool
	branchTaken bool

	// number of calls to Step() since the CPU was created
	Cycles uint64
}

// NewCPU is the preferred method of initialisation for the CPU type. The CPU
// is reset and ready to step.
func NewCPU(config *Config) *CPU {
	mc := &CPU{
		PC:     registers.NewProgramCounter(0),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		SP:     registers.NewRegister(0, "SP"),
		Status: registers.NewStatusRegister(),
		acc8:   registers.NewRegister(0, "acc"),
		config: config,
	}
	mc.Reset()
	return mc
}

// Reset the CPU. The reset sequence starts on the next call to Step() and
// loads the PC from the reset vector. The sequence performs reads in place of
// the stack writes of an interrupt.
func (mc *CPU) Reset() {
	mc.halted = false
	mc.resetting = true
	mc.brk = false
	mc.nmiLatch = false
	mc.interruptDue = true
	mc.Status.InterruptDisable = true
	mc.tfn = (*CPU).nextInstruction
}

// LoadPC abandons the current instruction and continues execution from the
// address. The opcode fetch happens on the next call to Step(). Pending
// interrupts remain pending.
func (mc *CPU) LoadPC(addr uint16) {
	mc.PC.Load(addr)
	mc.halted = false
	mc.resetting = false
	mc.brk = false
	mc.interruptDue = false
	mc.tfn = (*CPU).nextInstruction
}

// Step the CPU by one cycle.
func (mc *CPU) Step() {
	mc.tfn(mc)
	mc.Cycles++
}

// Config returns the decode table in use by the CPU.
func (mc *CPU) Config() *Config {
	return mc.config
}

// ABus returns the address of the current bus cycle.
func (mc *CPU) ABus() uint16 {
	return mc.abus
}

// DBus returns the value on the data bus. For a write cycle this is the value
// to be written.
func (mc *CPU) DBus() uint8 {
	return mc.dbus
}

// SetDBus places the value read from memory onto the data bus.
func (mc *CPU) SetDBus(v uint8) {
	mc.dbus = v
}

// Read returns the type of access for the current bus cycle. A return value
// of Write means the host should store DBus() at ABus().
func (mc *CPU) Read() ReadType {
	return mc.read
}

// IsAboutToExecute returns true if the current cycle is an opcode fetch.
func (mc *CPU) IsAboutToExecute() bool {
	return mc.read == ReadOpcode
}

// OpcodePC returns the address of the most recent opcode fetch.
func (mc *CPU) OpcodePC() uint16 {
	return mc.opcodePC
}

// Opcode returns the opcode of the instruction being executed.
func (mc *CPU) Opcode() uint8 {
	return mc.opcode
}

// IsHalted returns true if the CPU has executed an NMOS halt instruction.
func (mc *CPU) IsHalted() bool {
	return mc.halted
}

// SetDeviceIRQ asserts or releases the IRQ line for the devices in the mask.
// IRQ is level sensitive: an interrupt is taken at each instruction boundary
// while any device asserts the line and the I flag is clear.
func (mc *CPU) SetDeviceIRQ(mask uint8, active bool) {
	if active {
		mc.deviceIRQ |= mask
	} else {
		mc.deviceIRQ &^= mask
	}
}

// SetDeviceNMI asserts or releases the NMI line for the devices in the mask.
// NMI is edge triggered. The interrupt is latched when the first device
// asserts the line.
func (mc *CPU) SetDeviceNMI(mask uint8, active bool) {
	prev := mc.deviceNMI
	if active {
		mc.deviceNMI |= mask
	} else {
		mc.deviceNMI &^= mask
	}
	if prev == 0 && mc.deviceNMI != 0 {
		mc.nmiLatch = true
	}
}

// DeviceIRQ returns the devices currently asserting IRQ.
func (mc *CPU) DeviceIRQ() uint8 {
	return mc.deviceIRQ
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC,
		mc.A.Label(), mc.A,
		mc.X.Label(), mc.X,
		mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP,
		mc.Status.Label(), mc.Status,
	)
}

func (mc *CPU) checkForInterrupts() {
	mc.interruptDue = mc.nmiLatch || (mc.deviceIRQ != 0 && !mc.Status.InterruptDisable)
}

func (mc *CPU) nextInstruction() {
	mc.opcodePC = mc.PC.Address()
	mc.abus = mc.opcodePC
	if mc.interruptDue {
		mc.read = ReadInterrupt
	} else {
		mc.read = ReadOpcode
	}
	mc.tfn = (*CPU).decode
}

func (mc *CPU) decode() {
	if mc.interruptDue {
		mc.interruptDue = false
		mc.brk = false
		mc.ifn = (*CPU).nop
		mc.beginSequence(seqInterrupt)
		return
	}

	mc.opcode = mc.dbus
	mc.PC.Increment()

	op := &mc.config.ops[mc.opcode]
	mc.ifn = op.ifn
	op.start(mc)
}

func (mc *CPU) beginSequence(seq *sequence) {
	mc.seq = seq
	mc.t = -1
	mc.tfn = (*CPU).stepSequence

	// instructions with no cycles after the opcode fetch
	if len(seq.cycles) == 0 {
		mc.checkForInterrupts()
		mc.nextInstruction()
		return
	}

	mc.stepSequence()
}

func (mc *CPU) stepSequence() {
	if mc.t >= 0 && mc.phase2(&mc.seq.cycles[mc.t]) {
		return
	}

	mc.t++
	if mc.t >= len(mc.seq.cycles) {
		mc.nextInstruction()
		return
	}

	mc.phase1(&mc.seq.cycles[mc.t])

	// interrupts are polled at the start of the final cycle
	if mc.t == len(mc.seq.cycles)-1 {
		mc.checkForInterrupts()
	}
}

func (mc *CPU) index() uint8 {
	switch mc.seq.index {
	case indexX:
		return mc.X.Value()
	case indexY:
		return mc.Y.Value()
	}
	return 0
}

// phase1 sets up the bus for the cycle
func (mc *CPU) phase1(c *cycle) {
	mc.abus = mc.address(c.addr)

	switch {
	case c.write && c.readOnReset && mc.resetting:
		mc.read = ReadUninteresting
	case c.write:
		mc.dbus = mc.value(c.what)
		mc.read = Write
	default:
		mc.read = c.readType
	}

	// cycles that may end the instruction early are polled as though they
	// were the final cycle
	switch c.act {
	case actionMaybeCall:
		if !mc.acarry {
			mc.checkForInterrupts()
		}
	case actionMaybeCallBCD:
		if !mc.acarry && !mc.Status.DecimalMode {
			mc.checkForInterrupts()
		}
	case actionCallBCD:
		if !mc.Status.DecimalMode {
			mc.checkForInterrupts()
		}
	}
}

// phase2 completes the cycle after the host has performed the bus access.
// returns true if the instruction has finished
func (mc *CPU) phase2(c *cycle) bool {
	if !c.write {
		mc.store(c.what, mc.dbus)
	}

	switch c.act {
	case actionCall:
		mc.ifn(mc)
	case actionMaybeCall:
		if !mc.acarry {
			mc.ifn(mc)
			mc.nextInstruction()
			return true
		}
	case actionMaybeCallBCD:
		if !mc.acarry && !mc.Status.DecimalMode {
			mc.ifn(mc)
			mc.nextInstruction()
			return true
		}
	case actionCallBCD:
		mc.ifn(mc)
		if !mc.Status.DecimalMode {
			mc.nextInstruction()
			return true
		}
	case actionJump:
		mc.PC.Load(mc.ad)
	case actionSkipIfNoCarry:
		if !mc.acarry {
			mc.t++
		}
	case actionInterruptDone:
		mc.resetting = false
		mc.brk = false
	}

	return false
}

func (mc *CPU) address(kind addrKind) uint16 {
	switch kind {
	case addrPC:
		return mc.PC.Address()
	case addrPCInc:
		return mc.PC.Increment()
	case addrADL:
		return uint16(uint8(mc.ad))
	case addrAD:
		return mc.ad
	case addrIAL:
		return uint16(uint8(mc.ia))
	case addrIAL1:
		return uint16(uint8(mc.ia) + 1)
	case addrSP:
		return 0x100 | mc.SP.Address()
	case addrIA:
		return mc.ia
	case addrIA1:
		return mc.ia + 1
	case addrIA1NoCarry:
		return mc.ia&0xff00 | uint16(uint8(mc.ia)+1)
	case addrIALX:
		return uint16(uint8(mc.ia) + mc.X.Value())
	case addrIALX1:
		return uint16(uint8(mc.ia) + mc.X.Value() + 1)
	case addrAD1Index:
		lo := uint16(uint8(mc.ad)) + uint16(mc.index())
		mc.acarry = lo > 0xff
		return mc.ad&0xff00 | lo&0xff
	case addrAD2Index:
		return mc.ad + uint16(mc.index())
	case addrADLIndex:
		return uint16(uint8(mc.ad) + mc.index())
	case addrIAX1, addrIAX2:
		return mc.ia + uint16(mc.X.Value())
	case addrIAX3:
		return mc.ia + uint16(mc.X.Value()) + 1
	case addrSPInc:
		a := 0x100 | mc.SP.Address()
		mc.SP.Load(mc.SP.Value() + 1)
		return a
	case addrSPDec:
		a := 0x100 | mc.SP.Address()
		mc.SP.Load(mc.SP.Value() - 1)
		return a
	case addrPCBreak:
		if mc.brk {
			return mc.PC.Increment()
		}
		return mc.PC.Address()
	case addrVectorLo:
		// the vector is chosen as late as possible. an NMI that arrives
		// during a BRK or IRQ sequence takes it over
		switch {
		case mc.resetting:
			mc.ia = 0xfffc
		case mc.nmiLatch:
			mc.ia = 0xfffa
			mc.nmiLatch = false
		default:
			mc.ia = 0xfffe
		}
		mc.Status.InterruptDisable = true
		if mc.config.variant.IsCMOS() {
			mc.Status.DecimalMode = false
		}
		return mc.ia
	case addrVectorHi:
		return mc.ia + 1
	}

	panic(fmt.Sprintf("cpu: unknown address kind %d", kind))
}

func (mc *CPU) value(what whatKind) uint8 {
	switch what {
	case whatData, whatDataDummy:
		return mc.data
	case whatPCL:
		return mc.PC.Lo()
	case whatPCH:
		return mc.PC.Hi()
	case whatP:
		if mc.brk {
			return mc.Status.Value()
		}
		return mc.Status.Value() &^ registers.FlagBreak
	}
	return 0
}

func (mc *CPU) store(what whatKind, v uint8) {
	switch what {
	case whatADL:
		mc.ad = mc.ad&0xff00 | uint16(v)
	case whatADH:
		mc.ad = mc.ad&0x00ff | uint16(v)<<8
	case whatData:
		mc.data = v
	case whatIAL:
		mc.ia = mc.ia&0xff00 | uint16(v)
	case whatIAH:
		mc.ia = mc.ia&0x00ff | uint16(v)<<8
	case whatPCL:
		mc.PC.LoadLo(v)
	case whatPCH:
		mc.PC.LoadHi(v)
	case whatP:
		mc.Status.FromValue(v)
	}
}
