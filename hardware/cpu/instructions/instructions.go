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

import (
	"fmt"
	"strings"
)

// Variant selects one of the 6502 families supported by the emulation.
type Variant int

// List of supported variants.
const (
	// NMOS 6502 including the undocumented instructions
	NMOS Variant = iota

	// 65C02 with the additional instructions and addressing modes
	CMOS

	// 65C02 with the Rockwell bit instructions replacing some of the NOPs
	Rockwell
)

func (v Variant) String() string {
	switch v {
	case NMOS:
		return "6502"
	case CMOS:
		return "65C02"
	case Rockwell:
		return "R65C02"
	}
	return "unknown variant"
}

// IsCMOS returns true if the variant is a 65C02 of any kind.
func (v Variant) IsCMOS() bool {
	return v == CMOS || v == Rockwell
}

// Definition defines each instruction in the instruction set.
type Definition struct {
	OpCode       uint8
	Mnemonic     string
	Bytes        int
	Mode         AddressingMode
	Category     Category
	Undocumented bool
}

func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%02x %s +%dbytes [mode=%s category=%s undocumented=%t]",
		defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Mode, defn.Category, defn.Undocumented)
}

// IsBranch returns true if the instruction is a relative branch. The Rockwell
// BBR and BBS instructions are included.
func (defn Definition) IsBranch() bool {
	return defn.Category == Flow && (defn.Mode == Relative || defn.Mode == ZeroPageRelative)
}

// BitNumber returns the bit operated on by the Rockwell RMB, SMB, BBR and BBS
// instructions. Returns false for other instructions.
func (defn Definition) BitNumber() (int, bool) {
	if len(defn.Mnemonic) != 4 {
		return 0, false
	}
	switch defn.Mnemonic[:3] {
	case "RMB", "SMB", "BBR", "BBS":
		return int(defn.Mnemonic[3] - '0'), true
	}
	return 0, false
}

func category(mnemonic string) Category {
	switch mnemonic {
	case "STA", "STX", "STY", "STZ", "SAX", "AHX", "SHY", "SHX", "TAS",
		"PHA", "PHP", "PHX", "PHY":
		return Write
	case "ASL", "LSR", "ROL", "ROR", "INC", "DEC",
		"SLO", "RLA", "SRE", "RRA", "DCP", "ISC", "TRB", "TSB":
		return Modify
	case "BCC", "BCS", "BEQ", "BMI", "BNE", "BPL", "BVC", "BVS", "BRA",
		"JMP", "HLT":
		return Flow
	case "JSR", "RTS":
		return Subroutine
	case "BRK", "RTI":
		return Interrupt
	}

	if len(mnemonic) == 4 {
		switch mnemonic[:3] {
		case "RMB", "SMB":
			return Modify
		case "BBR", "BBS":
			return Flow
		}
	}

	return Read
}

type table map[uint8]Definition

func (t table) add(opcode uint8, mnemonic string, mode AddressingMode) {
	mnemonic = strings.ToUpper(mnemonic)
	t[opcode] = Definition{
		OpCode:   opcode,
		Mnemonic: mnemonic,
		Bytes:    mode.Bytes(),
		Mode:     mode,
		Category: category(mnemonic),
	}
}

func (t table) addUndocumented(opcode uint8, mnemonic string, mode AddressingMode) {
	t.add(opcode, mnemonic, mode)
	d := t[opcode]
	d.Undocumented = true
	t[opcode] = d
}

func (t table) bulk(mnemonic string, mode AddressingMode, undocumented bool, opcodes ...uint8) {
	for _, o := range opcodes {
		if _, ok := t[o]; ok {
			panic(fmt.Sprintf("instructions: opcode %02x defined twice", o))
		}
		if undocumented {
			t.addUndocumented(o, mnemonic, mode)
		} else {
			t.add(o, mnemonic, mode)
		}
	}
}

func (t table) array() [256]Definition {
	var a [256]Definition
	for i := range 256 {
		d, ok := t[uint8(i)]
		if !ok {
			panic(fmt.Sprintf("instructions: opcode %02x is not defined", i))
		}
		a[i] = d
	}
	return a
}

var nmos, cmos, rockwell [256]Definition

func init() {
	nmos = nmosTable().array()
	cmos = cmosTable(false).array()
	rockwell = cmosTable(true).array()
}

// GetDefinitions returns the table of instruction definitions for the
// variant, indexed by opcode.
func GetDefinitions(v Variant) *[256]Definition {
	switch v {
	case CMOS:
		return &cmos
	case Rockwell:
		return &rockwell
	}
	return &nmos
}
