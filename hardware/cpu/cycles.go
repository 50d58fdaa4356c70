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

// addrKind selects how the address bus is driven for a cycle.
type addrKind uint8

const (
	addrPC         addrKind = iota // pc
	addrPCInc                      // pc++
	addrADL                        // zero page address from ad low byte
	addrAD                         // ad
	addrIAL                        // zero page address from ia low byte
	addrIAL1                       // zero page address from ia low byte + 1
	addrSP                         // stack
	addrIA                         // ia
	addrIA1                        // ia+1
	addrIA1NoCarry                 // ia+1 without carry into the high byte
	addrIALX                       // zero page ia low byte + X
	addrIALX1                      // zero page ia low byte + X + 1
	addrAD1Index                   // first attempt at ad+index. high byte not fixed up
	addrAD2Index                   // ad+index
	addrADLIndex                   // zero page ad low byte + index
	addrIAX1                       // ia+X for JMP (abs,X)
	addrIAX2                       // ia+X for JMP (abs,X)
	addrIAX3                       // ia+X+1 for JMP (abs,X)
	addrSPInc                      // stack, then increment S
	addrSPDec                      // stack, then decrement S
	addrPCBreak                    // pc, incremented only for BRK
	addrVectorLo                   // interrupt vector, chosen on use
	addrVectorHi                   // interrupt vector + 1
)

// whatKind is the destination of a read or the source of a write.
type whatKind uint8

const (
	whatNone whatKind = iota
	whatADL
	whatADH
	whatData
	whatDataDummy
	whatIAL
	whatIAH
	whatPCL
	whatPCH
	whatP
)

// action is performed in the second phase of a cycle, after any data from
// the bus has been stored.
type action uint8

const (
	actionNone action = iota

	// call the instruction's operation
	actionCall

	// call the instruction's operation and finish the instruction if there
	// was no carry in the address calculation
	actionMaybeCall

	// as above but only if the CPU is not in decimal mode. CMOS ADC and SBC
	// take an extra cycle in decimal mode
	actionMaybeCallBCD
	actionCallBCD

	actionJump

	// skip the next cycle if there was no carry in the address calculation
	actionSkipIfNoCarry

	// end of interrupt sequence
	actionInterruptDone
)

type indexReg uint8

const (
	indexNone indexReg = iota
	indexX
	indexY
)

type cycle struct {
	write bool
	addr  addrKind
	what  whatKind
	act   action

	// the read type reported for read cycles
	readType ReadType

	// writes become reads during a reset sequence
	readOnReset bool
}

func r(addr addrKind, what whatKind, act action) cycle {
	c := cycle{addr: addr, what: what, act: act}

	switch {
	case what == whatNone || what == whatDataDummy:
		c.readType = ReadUninteresting
	case addr == addrPC || addr == addrPCInc:
		c.readType = ReadInstruction
	case what == whatData || what == whatP:
		c.readType = ReadData
	default:
		c.readType = ReadAddress
	}

	return c
}

func w(addr addrKind, what whatKind, act action) cycle {
	return cycle{write: true, addr: addr, what: what, act: act}
}

// sequence is the list of cycles that follow the opcode fetch for a class of
// instruction.
type sequence struct {
	name   string
	index  indexReg
	cycles []cycle
}

func newSequence(name string, index indexReg, cycles ...cycle) *sequence {
	return &sequence{name: name, index: index, cycles: cycles}
}

// the CMOS versions of the RMW instructions read rather than write in the
// second to last cycle
func cmosRMW(s *sequence) *sequence {
	n := &sequence{
		name:   s.name + "_CMOS",
		index:  s.index,
		cycles: make([]cycle, len(s.cycles)),
	}
	copy(n.cycles, s.cycles)

	c := &n.cycles[len(n.cycles)-2]
	*c = r(c.addr, whatDataDummy, c.act)

	return n
}

func readIndexed(name string, idx indexReg) *sequence {
	return newSequence(name, idx,
		r(addrPCInc, whatADL, actionNone),
		r(addrPCInc, whatADH, actionNone),
		r(addrAD1Index, whatDataDummy, actionMaybeCall),
		r(addrAD2Index, whatData, actionCall),
	)
}

func readZeroPageIndexed(name string, idx indexReg) *sequence {
	return newSequence(name, idx,
		r(addrPCInc, whatADL, actionNone),
		r(addrADL, whatDataDummy, actionNone),
		r(addrADLIndex, whatData, actionCall),
	)
}

func readIndexedBCD(name string, idx indexReg) *sequence {
	return newSequence(name, idx,
		r(addrPCInc, whatADL, actionNone),
		r(addrPCInc, whatADH, actionNone),
		r(addrAD1Index, whatDataDummy, actionMaybeCallBCD),
		r(addrAD2Index, whatData, actionCallBCD),
		r(addrPC, whatNone, actionNone),
	)
}

func readZeroPageIndexedBCD(name string, idx indexReg) *sequence {
	return newSequence(name, idx,
		r(addrPCInc, whatADL, actionNone),
		r(addrADL, whatDataDummy, actionNone),
		r(addrADLIndex, whatData, actionCallBCD),
		r(addrPC, whatNone, actionNone),
	)
}

func writeIndexed(name string, idx indexReg) *sequence {
	return newSequence(name, idx,
		r(addrPCInc, whatADL, actionNone),
		r(addrPCInc, whatADH, actionNone),
		r(addrAD1Index, whatDataDummy, actionCall),
		w(addrAD2Index, whatData, actionNone),
	)
}

func writeZeroPageIndexed(name string, idx indexReg) *sequence {
	return newSequence(name, idx,
		r(addrPCInc, whatADL, actionNone),
		r(addrADL, whatDataDummy, actionCall),
		w(addrADLIndex, whatData, actionNone),
	)
}

func rmwIndexed(name string, idx indexReg) *sequence {
	return newSequence(name, idx,
		r(addrPCInc, whatADL, actionNone),
		r(addrPCInc, whatADH, actionNone),
		r(addrAD1Index, whatDataDummy, actionNone),
		r(addrAD2Index, whatData, actionNone),
		w(addrAD2Index, whatData, actionCall),
		w(addrAD2Index, whatData, actionNone),
	)
}

var (
	seqIMP = newSequence("IMP", indexNone,
		r(addrPC, whatDataDummy, actionCall),
	)

	// read instructions
	seqReadIMM = newSequence("R_IMM", indexNone,
		r(addrPCInc, whatData, actionCall),
	)
	seqReadZPG = newSequence("R_ZPG", indexNone,
		r(addrPCInc, whatADL, actionNone),
		r(addrADL, whatData, actionCall),
	)
	seqReadABS = newSequence("R_ABS", indexNone,
		r(addrPCInc, whatADL, actionNone),
		r(addrPCInc, whatADH, actionNone),
		r(addrAD, whatData, actionCall),
	)
	seqReadINX = newSequence("R_INX", indexX,
		r(addrPCInc, whatIAL, actionNone),
		r(addrIAL, whatDataDummy, actionNone),
		r(addrIALX, whatADL, actionNone),
		r(addrIALX1, whatADH, actionNone),
		r(addrAD, whatData, actionCall),
	)
	seqReadABX = readIndexed("R_ABX", indexX)
	seqReadABY = readIndexed("R_ABY", indexY)
	seqReadZPX = readZeroPageIndexed("R_ZPX", indexX)
	seqReadZPY = readZeroPageIndexed("R_ZPY", indexY)
	seqReadINY = newSequence("R_INY", indexY,
		r(addrPCInc, whatIAL, actionNone),
		r(addrIAL, whatADL, actionNone),
		r(addrIAL1, whatADH, actionNone),
		r(addrAD1Index, whatDataDummy, actionMaybeCall),
		r(addrAD2Index, whatData, actionCall),
	)
	seqReadINZ = newSequence("R_INZ", indexNone,
		r(addrPCInc, whatIAL, actionNone),
		r(addrIAL, whatADL, actionNone),
		r(addrIAL1, whatADH, actionNone),
		r(addrAD, whatData, actionCall),
	)

	// read instructions that take an extra cycle in decimal mode
	seqReadIMMBCD = newSequence("R_IMM_BCD", indexNone,
		r(addrPCInc, whatData, actionCallBCD),
		r(addrPC, whatNone, actionNone),
	)
	seqReadZPGBCD = newSequence("R_ZPG_BCD", indexNone,
		r(addrPCInc, whatADL, actionNone),
		r(addrADL, whatData, actionCallBCD),
		r(addrPC, whatNone, actionNone),
	)
	seqReadABSBCD = newSequence("R_ABS_BCD", indexNone,
		r(addrPCInc, whatADL, actionNone),
		r(addrPCInc, whatADH, actionNone),
		r(addrAD, whatData, actionCallBCD),
		r(addrPC, whatNone, actionNone),
	)
	seqReadINXBCD = newSequence("R_INX_BCD", indexX,
		r(addrPCInc, whatIAL, actionNone),
		r(addrIAL, whatDataDummy, actionNone),
		r(addrIALX, whatADL, actionNone),
		r(addrIALX1, whatADH, actionNone),
		r(addrAD, whatData, actionCallBCD),
		r(addrPC, whatNone, actionNone),
	)
	seqReadABXBCD = readIndexedBCD("R_ABX_BCD", indexX)
	seqReadABYBCD = readIndexedBCD("R_ABY_BCD", indexY)
	seqReadZPXBCD = readZeroPageIndexedBCD("R_ZPX_BCD", indexX)
	seqReadINYBCD = newSequence("R_INY_BCD", indexY,
		r(addrPCInc, whatIAL, actionNone),
		r(addrIAL, whatADL, actionNone),
		r(addrIAL1, whatADH, actionNone),
		r(addrAD1Index, whatDataDummy, actionMaybeCallBCD),
		r(addrAD2Index, whatData, actionCallBCD),
		r(addrPC, whatNone, actionNone),
	)
	seqReadINZBCD = newSequence("R_INZ_BCD", indexNone,
		r(addrPCInc, whatIAL, actionNone),
		r(addrIAL, whatADL, actionNone),
		r(addrIAL1, whatADH, actionNone),
		r(addrAD, whatData, actionCallBCD),
		r(addrPC, whatNone, actionNone),
	)

	// write instructions
	seqWriteZPG = newSequence("W_ZPG", indexNone,
		r(addrPCInc, whatADL, actionCall),
		w(addrADL, whatData, actionNone),
	)
	seqWriteABS = newSequence("W_ABS", indexNone,
		r(addrPCInc, whatADL, actionNone),
		r(addrPCInc, whatADH, actionCall),
		w(addrAD, whatData, actionNone),
	)
	seqWriteINX = newSequence("W_INX", indexX,
		r(addrPCInc, whatIAL, actionNone),
		r(addrIAL, whatDataDummy, actionNone),
		r(addrIALX, whatADL, actionNone),
		r(addrIALX1, whatADH, actionCall),
		w(addrAD, whatData, actionNone),
	)
	seqWriteABX = writeIndexed("W_ABX", indexX)
	seqWriteABY = writeIndexed("W_ABY", indexY)
	seqWriteZPX = writeZeroPageIndexed("W_ZPX", indexX)
	seqWriteZPY = writeZeroPageIndexed("W_ZPY", indexY)
	seqWriteINY = newSequence("W_INY", indexY,
		r(addrPCInc, whatIAL, actionNone),
		r(addrIAL, whatADL, actionNone),
		r(addrIAL1, whatADH, actionNone),
		r(addrAD1Index, whatDataDummy, actionCall),
		w(addrAD2Index, whatData, actionNone),
	)
	seqWriteINZ = newSequence("W_INZ", indexNone,
		r(addrPCInc, whatIAL, actionNone),
		r(addrIAL, whatADL, actionNone),
		r(addrIAL1, whatADH, actionCall),
		w(addrAD, whatData, actionNone),
	)

	// read-modify-write instructions
	seqRMWZPG = newSequence("RMW_ZPG", indexNone,
		r(addrPCInc, whatADL, actionNone),
		r(addrADL, whatData, actionNone),
		w(addrADL, whatData, actionCall),
		w(addrADL, whatData, actionNone),
	)
	seqRMWABS = newSequence("RMW_ABS", indexNone,
		r(addrPCInc, whatADL, actionNone),
		r(addrPCInc, whatADH, actionNone),
		r(addrAD, whatData, actionNone),
		w(addrAD, whatData, actionCall),
		w(addrAD, whatData, actionNone),
	)
	seqRMWZPX = newSequence("RMW_ZPX", indexX,
		r(addrPCInc, whatADL, actionNone),
		r(addrADL, whatDataDummy, actionNone),
		r(addrADLIndex, whatData, actionNone),
		w(addrADLIndex, whatData, actionCall),
		w(addrADLIndex, whatData, actionNone),
	)
	seqRMWABX = rmwIndexed("RMW_ABX", indexX)
	seqRMWABY = rmwIndexed("RMW_ABY", indexY)
	seqRMWINX = newSequence("RMW_INX", indexX,
		r(addrPCInc, whatIAL, actionNone),
		r(addrIAL, whatDataDummy, actionNone),
		r(addrIALX, whatADL, actionNone),
		r(addrIALX1, whatADH, actionNone),
		r(addrAD, whatData, actionNone),
		w(addrAD, whatData, actionCall),
		w(addrAD, whatData, actionNone),
	)
	seqRMWINY = newSequence("RMW_INY", indexY,
		r(addrPCInc, whatIAL, actionNone),
		r(addrIAL, whatADL, actionNone),
		r(addrIAL1, whatADH, actionNone),
		r(addrAD1Index, whatDataDummy, actionNone),
		r(addrAD2Index, whatData, actionNone),
		w(addrAD2Index, whatData, actionCall),
		w(addrAD2Index, whatData, actionNone),
	)

	seqRMWZPGCMOS = cmosRMW(seqRMWZPG)
	seqRMWABSCMOS = cmosRMW(seqRMWABS)
	seqRMWZPXCMOS = cmosRMW(seqRMWZPX)
	seqRMWABXCMOS = cmosRMW(seqRMWABX)

	// the CMOS shifts and rotates with abs,X addressing are one cycle
	// shorter when no page boundary is crossed
	seqRMWABX2CMOS = newSequence("RMW_ABX2_CMOS", indexX,
		r(addrPCInc, whatADL, actionNone),
		r(addrPCInc, whatADH, actionNone),
		r(addrAD1Index, whatData, actionSkipIfNoCarry),
		r(addrAD2Index, whatDataDummy, actionNone),
		r(addrAD2Index, whatData, actionCall),
		w(addrAD2Index, whatData, actionNone),
	)

	seqPush = newSequence("Push", indexNone,
		r(addrPC, whatDataDummy, actionCall),
		w(addrSPDec, whatData, actionNone),
	)
	seqPop = newSequence("Pop", indexNone,
		r(addrPC, whatDataDummy, actionNone),
		r(addrSPInc, whatDataDummy, actionNone),
		r(addrSP, whatData, actionCall),
	)

	seqJSR = newSequence("JSR", indexNone,
		r(addrPCInc, whatADL, actionNone),
		r(addrSP, whatDataDummy, actionNone),
		w(addrSPDec, whatPCH, actionNone),
		w(addrSPDec, whatPCL, actionNone),
		r(addrPCInc, whatADH, actionJump),
	)
	seqRTI = newSequence("RTI", indexNone,
		r(addrPC, whatDataDummy, actionNone),
		r(addrSPInc, whatDataDummy, actionNone),
		r(addrSPInc, whatP, actionNone),
		r(addrSPInc, whatPCL, actionNone),
		r(addrSP, whatPCH, actionNone),
	)
	seqRTS = newSequence("RTS", indexNone,
		r(addrPC, whatDataDummy, actionNone),
		r(addrSPInc, whatDataDummy, actionNone),
		r(addrSPInc, whatPCL, actionNone),
		r(addrSP, whatPCH, actionNone),
		r(addrPCInc, whatDataDummy, actionNone),
	)
	seqJMPABS = newSequence("JMP_ABS", indexNone,
		r(addrPCInc, whatADL, actionNone),
		r(addrPCInc, whatADH, actionJump),
	)

	// the NMOS indirect jump does not carry into the high byte of the
	// pointer
	seqJMPIND = newSequence("JMP_IND", indexNone,
		r(addrPCInc, whatIAL, actionNone),
		r(addrPCInc, whatIAH, actionNone),
		r(addrIA, whatPCL, actionNone),
		r(addrIA1NoCarry, whatPCH, actionNone),
	)
	seqJMPINDCMOS = newSequence("JMP_IND_CMOS", indexNone,
		r(addrPCInc, whatIAL, actionNone),
		r(addrPCInc, whatIAH, actionNone),
		r(addrIA, whatPCL, actionNone),
		r(addrIA1, whatPCH, actionNone),
		r(addrIA1, whatPCH, actionNone),
	)
	seqJMPINDX = newSequence("JMP_INDX", indexX,
		r(addrPCInc, whatIAL, actionNone),
		r(addrPCInc, whatIAH, actionNone),
		r(addrIAX1, whatDataDummy, actionNone),
		r(addrIAX2, whatPCL, actionNone),
		r(addrIAX3, whatPCH, actionNone),
	)

	// BRK, IRQ, NMI and reset. on reset the stack writes become reads
	seqInterrupt = newSequence("Interrupt", indexNone,
		r(addrPCBreak, whatDataDummy, actionNone),
		cycle{write: true, addr: addrSPDec, what: whatPCH, readOnReset: true},
		cycle{write: true, addr: addrSPDec, what: whatPCL, readOnReset: true},
		cycle{write: true, addr: addrSPDec, what: whatP, readOnReset: true},
		r(addrVectorLo, whatPCL, actionNone),
		r(addrVectorHi, whatPCH, actionInterruptDone),
	)

	// the 65C02 NOPs. the name gives the number of bytes and cycles
	seqNOP11 = newSequence("NOP11", indexNone)
	seqNOP22 = newSequence("NOP22", indexNone,
		r(addrPCInc, whatData, actionNone),
	)
	seqNOP23 = newSequence("NOP23", indexNone,
		r(addrPC, whatData, actionNone),
		r(addrPCInc, whatData, actionNone),
	)
	seqNOP24 = newSequence("NOP24", indexNone,
		r(addrPC, whatData, actionNone),
		r(addrPC, whatData, actionNone),
		r(addrPCInc, whatData, actionNone),
	)
	seqNOP34 = newSequence("NOP34", indexNone,
		r(addrPC, whatData, actionNone),
		r(addrPCInc, whatData, actionNone),
		r(addrPCInc, whatData, actionNone),
	)
	seqNOP38 = newSequence("NOP38", indexNone,
		r(addrPC, whatData, actionNone),
		r(addrPC, whatData, actionNone),
		r(addrPC, whatData, actionNone),
		r(addrPC, whatData, actionNone),
		r(addrPC, whatData, actionNone),
		r(addrPCInc, whatData, actionNone),
		r(addrPCInc, whatData, actionNone),
	)
)
