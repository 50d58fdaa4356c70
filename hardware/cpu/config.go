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

	"github.com/jetsetilly/gopherbeeb/hardware/cpu/instructions"
)

// opcode is the decoded form of an instruction definition. start is called
// in the cycle after the opcode fetch. seq is nil for instructions with
// their own hand-written timing.
type opcode struct {
	start func(*CPU)
	seq   *sequence
	ifn   func(*CPU)
}

// Config is the per-variant decode table. Configs are not modified by the
// CPU and can be shared between many CPU instances.
type Config struct {
	variant instructions.Variant
	defs    *[256]instructions.Definition
	ops     [256]opcode
}

// NewConfig is the preferred method of initialisation for the Config type.
func NewConfig(variant instructions.Variant) *Config {
	cfg := &Config{
		variant: variant,
		defs:    instructions.GetDefinitions(variant),
	}

	for i, defn := range cfg.defs {
		cfg.ops[i] = decodeDefinition(variant, defn)
	}

	return cfg
}

// Clone returns a copy of the Config that can be changed with SetTrap()
// without affecting the original.
func (cfg *Config) Clone() *Config {
	n := *cfg
	return &n
}

// SetTrap replaces the opcode with a call to the host function. The trap
// executes as a one cycle implied instruction, after which execution
// continues from the byte following the opcode.
//
// Panics if fn is nil.
func (cfg *Config) SetTrap(op uint8, fn func(*CPU)) {
	if fn == nil {
		panic(fmt.Sprintf("cpu: nil trap function for opcode %02x", op))
	}
	cfg.ops[op] = opcode{
		start: sequenceStart(seqIMP),
		seq:   seqIMP,
		ifn:   fn,
	}
}

// Variant returns the CPU variant of the configuration.
func (cfg *Config) Variant() instructions.Variant {
	return cfg.variant
}

// Definition returns the instruction definition for the opcode.
func (cfg *Config) Definition(op uint8) instructions.Definition {
	return cfg.defs[op]
}

// Sequence returns the name of the cycle sequence used by the opcode. Opcodes
// with hand-written timing return the name of the timing.
func (cfg *Config) Sequence(op uint8) string {
	if cfg.ops[op].seq != nil {
		return cfg.ops[op].seq.name
	}
	switch {
	case cfg.defs[op].Mnemonic == "HLT":
		return "HLT"
	case cfg.defs[op].Mode == instructions.ZeroPageRelative:
		return "BBx"
	}
	return "Branch"
}

func sequenceStart(seq *sequence) func(*CPU) {
	return func(mc *CPU) {
		mc.beginSequence(seq)
	}
}

func decodeDefinition(variant instructions.Variant, defn instructions.Definition) opcode {
	op := opcode{
		ifn: operation(variant, defn),
	}

	switch {
	case defn.Mnemonic == "BRK":
		op.start = (*CPU).startBRK
		op.seq = seqInterrupt
		return op
	case defn.Mnemonic == "HLT":
		op.start = (*CPU).halt
		return op
	case defn.Mode == instructions.Relative:
		op.start = (*CPU).branch
		return op
	case defn.Mode == instructions.ZeroPageRelative:
		op.start = (*CPU).bbx
		return op
	}

	op.seq = selectSequence(variant, defn)
	op.start = sequenceStart(op.seq)

	return op
}

func selectSequence(variant instructions.Variant, defn instructions.Definition) *sequence {
	cmos := variant.IsCMOS()
	bcd := cmos && (defn.Mnemonic == "ADC" || defn.Mnemonic == "SBC")

	pick := func(nmos, bcdSeq *sequence) *sequence {
		if bcd {
			return bcdSeq
		}
		return nmos
	}

	rmw := func(nmos, cmosSeq *sequence) *sequence {
		if cmos {
			return cmosSeq
		}
		return nmos
	}

	switch defn.Mode {
	case instructions.Implied, instructions.Accumulator:
		switch defn.Mnemonic {
		case "PHA", "PHP", "PHX", "PHY":
			return seqPush
		case "PLA", "PLP", "PLX", "PLY":
			return seqPop
		case "RTI":
			return seqRTI
		case "RTS":
			return seqRTS
		}
		return seqIMP

	case instructions.Immediate:
		return pick(seqReadIMM, seqReadIMMBCD)

	case instructions.ZeroPage:
		switch defn.Category {
		case instructions.Write:
			return seqWriteZPG
		case instructions.Modify:
			return rmw(seqRMWZPG, seqRMWZPGCMOS)
		}
		return pick(seqReadZPG, seqReadZPGBCD)

	case instructions.ZeroPageIndexedX:
		switch defn.Category {
		case instructions.Write:
			return seqWriteZPX
		case instructions.Modify:
			return rmw(seqRMWZPX, seqRMWZPXCMOS)
		}
		return pick(seqReadZPX, seqReadZPXBCD)

	case instructions.ZeroPageIndexedY:
		if defn.Category == instructions.Write {
			return seqWriteZPY
		}
		return seqReadZPY

	case instructions.Absolute:
		switch defn.Mnemonic {
		case "JMP":
			return seqJMPABS
		case "JSR":
			return seqJSR
		}
		switch defn.Category {
		case instructions.Write:
			return seqWriteABS
		case instructions.Modify:
			return rmw(seqRMWABS, seqRMWABSCMOS)
		}
		return pick(seqReadABS, seqReadABSBCD)

	case instructions.AbsoluteIndexedX:
		switch defn.Category {
		case instructions.Write:
			return seqWriteABX
		case instructions.Modify:
			if !cmos {
				return seqRMWABX
			}
			switch defn.Mnemonic {
			case "INC", "DEC":
				return seqRMWABXCMOS
			}
			return seqRMWABX2CMOS
		}
		return pick(seqReadABX, seqReadABXBCD)

	case instructions.AbsoluteIndexedY:
		switch defn.Category {
		case instructions.Write:
			return seqWriteABY
		case instructions.Modify:
			return seqRMWABY
		}
		return pick(seqReadABY, seqReadABYBCD)

	case instructions.Indirect:
		if cmos {
			return seqJMPINDCMOS
		}
		return seqJMPIND

	case instructions.IndexedIndirect:
		switch defn.Category {
		case instructions.Write:
			return seqWriteINX
		case instructions.Modify:
			return seqRMWINX
		}
		return pick(seqReadINX, seqReadINXBCD)

	case instructions.IndirectIndexed:
		switch defn.Category {
		case instructions.Write:
			return seqWriteINY
		case instructions.Modify:
			return seqRMWINY
		}
		return pick(seqReadINY, seqReadINYBCD)

	case instructions.ZeroPageIndirect:
		if defn.Category == instructions.Write {
			return seqWriteINZ
		}
		return pick(seqReadINZ, seqReadINZBCD)

	case instructions.AbsoluteIndexedIndirect:
		return seqJMPINDX

	case instructions.NOP11:
		return seqNOP11
	case instructions.NOP22:
		return seqNOP22
	case instructions.NOP23:
		return seqNOP23
	case instructions.NOP24:
		return seqNOP24
	case instructions.NOP34:
		return seqNOP34
	case instructions.NOP38:
		return seqNOP38
	}

	panic(fmt.Sprintf("cpu: no cycle sequence for %s", defn))
}

var operations = map[string]func(*CPU){
	"ADC": (*CPU).adc,
	"SBC": (*CPU).sbc,
	"AND": (*CPU).and,
	"EOR": (*CPU).eor,
	"ORA": (*CPU).ora,
	"BIT": (*CPU).bit,
	"CMP": (*CPU).cmp,
	"CPX": (*CPU).cpx,
	"CPY": (*CPU).cpy,
	"LDA": (*CPU).lda,
	"LDX": (*CPU).ldx,
	"LDY": (*CPU).ldy,
	"STA": (*CPU).sta,
	"STX": (*CPU).stx,
	"STY": (*CPU).sty,
	"STZ": (*CPU).stz,

	"CLC": (*CPU).clc,
	"SEC": (*CPU).sec,
	"CLI": (*CPU).cli,
	"SEI": (*CPU).sei,
	"CLD": (*CPU).cld,
	"SED": (*CPU).sed,
	"CLV": (*CPU).clv,

	"TAX": (*CPU).tax,
	"TAY": (*CPU).tay,
	"TXA": (*CPU).txa,
	"TYA": (*CPU).tya,
	"TSX": (*CPU).tsx,
	"TXS": (*CPU).txs,
	"INX": (*CPU).inx,
	"INY": (*CPU).iny,
	"DEX": (*CPU).dex,
	"DEY": (*CPU).dey,

	"ASL": (*CPU).asl,
	"LSR": (*CPU).lsr,
	"ROL": (*CPU).rol,
	"ROR": (*CPU).ror,
	"INC": (*CPU).inc,
	"DEC": (*CPU).dec,
	"TRB": (*CPU).trb,
	"TSB": (*CPU).tsb,

	"PHA": (*CPU).pha,
	"PHP": (*CPU).php,
	"PHX": (*CPU).phx,
	"PHY": (*CPU).phy,
	"PLA": (*CPU).pla,
	"PLP": (*CPU).plp,
	"PLX": (*CPU).plx,
	"PLY": (*CPU).ply,

	"BPL": (*CPU).bpl,
	"BMI": (*CPU).bmi,
	"BVC": (*CPU).bvc,
	"BVS": (*CPU).bvs,
	"BCC": (*CPU).bcc,
	"BCS": (*CPU).bcs,
	"BNE": (*CPU).bne,
	"BEQ": (*CPU).beq,
	"BRA": (*CPU).bra,

	"NOP": (*CPU).nop,
	"HLT": (*CPU).nop,
	"BRK": (*CPU).nop,
	"RTI": (*CPU).nop,
	"RTS": (*CPU).nop,
	"JMP": (*CPU).nop,
	"JSR": (*CPU).nop,

	// undocumented NMOS
	"SLO": (*CPU).slo,
	"RLA": (*CPU).rla,
	"SRE": (*CPU).sre,
	"RRA": (*CPU).rra,
	"DCP": (*CPU).dcp,
	"ISC": (*CPU).isc,
	"SAX": (*CPU).sax,
	"LAX": (*CPU).lax,
	"ALR": (*CPU).alr,
	"ARR": (*CPU).arr,
	"XAA": (*CPU).xaa,
	"LXA": (*CPU).lxa,
	"AXS": (*CPU).axs,
	"AHX": (*CPU).ahx,
	"SHX": (*CPU).shx,
	"SHY": (*CPU).shy,
	"TAS": (*CPU).tas,
	"ANC": (*CPU).anc,
	"LAS": (*CPU).las,
}

var accumulatorOperations = map[string]func(*CPU){
	"ASL": (*CPU).aslA,
	"LSR": (*CPU).lsrA,
	"ROL": (*CPU).rolA,
	"ROR": (*CPU).rorA,
	"INC": (*CPU).incA,
	"DEC": (*CPU).decA,
}

func operation(variant instructions.Variant, defn instructions.Definition) func(*CPU) {
	if n, ok := defn.BitNumber(); ok {
		mask := uint8(1) << n
		switch defn.Mnemonic[:3] {
		case "RMB":
			return func(mc *CPU) { mc.data &^= mask }
		case "SMB":
			return func(mc *CPU) { mc.data |= mask }
		case "BBR":
			return func(mc *CPU) { mc.branchTaken = mc.zpData&mask == 0 }
		case "BBS":
			return func(mc *CPU) { mc.branchTaken = mc.zpData&mask == mask }
		}
	}

	if defn.Mode == instructions.Accumulator {
		if fn, ok := accumulatorOperations[defn.Mnemonic]; ok {
			return fn
		}
	}

	if variant.IsCMOS() {
		switch defn.Mnemonic {
		case "ADC":
			return (*CPU).adcCMOS
		case "SBC":
			return (*CPU).sbcCMOS
		case "BIT":
			if defn.Mode == instructions.Immediate {
				return (*CPU).bitImmediate
			}
		}
	}

	if fn, ok := operations[defn.Mnemonic]; ok {
		return fn
	}

	panic(fmt.Sprintf("cpu: no operation for %s", defn))
}
