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

package paging

import "fmt"

// Tables is the result of resolving ROMSEL and ACCCON for a model.
type Tables struct {
	// big page for each 4KB region of the address space. User is used for
	// accesses made by code outside the MOS, MOS by code that the PCMOS
	// table marks as MOS code
	User [16]BigPage
	MOS  [16]BigPage

	// indexed by the top nibble of the PC of the instruction making the
	// access. when true the access uses the MOS table
	PCMOS [16]bool

	// whether the $FC00-$FEFF region is memory mapped I/O
	IO bool

	// whether the CRTC reads display memory from shadow RAM
	CRTCShadow bool
}

// Location is the result of resolving an address with Paging.Resolve().
type Location struct {
	Page   BigPage
	Offset uint16

	// IO is true if the address is in the I/O window. Page and Offset are
	// not meaningful in that case
	IO bool
}

func (l Location) String() string {
	if l.IO {
		return "I/O"
	}
	return fmt.Sprintf("%s+%03x", l.Page, l.Offset)
}

// Paging tracks the paging registers and caches the tables derived from
// them.
type Paging struct {
	model Model
	masks registerMasks

	romsel   uint8
	acccon   uint8
	override Override

	dirty      bool
	tables     Tables
	recomputes int
}

// NewPaging is the preferred method of initialisation for the Paging type.
func NewPaging(model Model) *Paging {
	pg := &Paging{
		model: model,
		masks: masks[model],
		dirty: true,
	}
	return pg
}

// Snapshot creates a copy of the paging state.
func (pg *Paging) Snapshot() *Paging {
	n := *pg
	return &n
}

func (pg *Paging) String() string {
	return fmt.Sprintf("%s ROMSEL=%02x ACCCON=%02x", pg.model, pg.romsel, pg.acccon)
}

// Model returns the model the paging was created for.
func (pg *Paging) Model() Model {
	return pg.model
}

// Reset paging registers to their power-on state.
func (pg *Paging) Reset() {
	pg.SetROMSEL(0)
	pg.SetACCCON(0)
}

// ROMSEL returns the current value of the ROMSEL register. Bits that do not
// exist for the model are always zero.
func (pg *Paging) ROMSEL() uint8 {
	return pg.romsel
}

// SetROMSEL writes to the ROMSEL register.
func (pg *Paging) SetROMSEL(v uint8) {
	v &= pg.masks.romsel
	if v != pg.romsel {
		pg.romsel = v
		pg.dirty = true
	}
}

// ACCCON returns the current value of the ACCCON register.
func (pg *Paging) ACCCON() uint8 {
	return pg.acccon
}

// SetACCCON writes to the ACCCON register.
func (pg *Paging) SetACCCON(v uint8) {
	v &= pg.masks.acccon
	if v != pg.acccon {
		pg.acccon = v
		pg.dirty = true
	}
}

// Override returns the current override bits.
func (pg *Paging) Override() Override {
	return pg.override
}

// SetOverride sets the override bits. Bits that are meaningless for the
// model are ignored.
func (pg *Paging) SetOverride(o Override) {
	o &= overrideMasks[pg.model]
	if o != pg.override {
		pg.override = o
		pg.dirty = true
	}
}

// Current returns the override bits that describe the paging registers as
// they are, with every Override bit the model supports set. Passing the
// result to SetOverride() pins the current view.
func (pg *Paging) Current() Override {
	var o Override

	o |= Override(pg.romsel&ROMSELBank) | OverrideROM

	switch pg.model {
	case ModelBPlus:
		if pg.romsel&ROMSELRAM != 0 {
			o |= SelectANDY
		}
		if pg.acccon&ACCCONShadowBPlus != 0 {
			o |= SelectShadow
		}
		o |= OverrideANDY | OverrideShadow
	case ModelMaster:
		if pg.romsel&ROMSELRAM != 0 {
			o |= SelectANDY
		}
		if pg.acccon&ACCCONX != 0 {
			o |= SelectShadow
		}
		if pg.acccon&ACCCONY != 0 {
			o |= SelectHAZEL
		}
		if pg.acccon&ACCCONTST != 0 {
			o |= SelectOS
		}
		o |= OverrideANDY | OverrideShadow | OverrideHAZEL | OverrideOS
	}

	return o
}

// Recomputes returns the number of times the tables have been rebuilt.
func (pg *Paging) Recomputes() int {
	return pg.recomputes
}

// Dirty returns true if the next call to Tables() will rebuild the tables.
func (pg *Paging) Dirty() bool {
	return pg.dirty
}

// Tables returns the current paging tables, rebuilding them only if the
// registers or overrides have changed since the last call.
func (pg *Paging) Tables() *Tables {
	if pg.dirty {
		romsel, acccon := pg.applyOverride()
		switch pg.model {
		case ModelB:
			tablesB(&pg.tables, romsel)
		case ModelBPlus:
			tablesBPlus(&pg.tables, romsel, acccon)
		case ModelMaster:
			tablesMaster(&pg.tables, romsel, acccon)
		default:
			invalidTables(&pg.tables)
		}
		pg.dirty = false
		pg.recomputes++
	}
	return &pg.tables
}

// Resolve the address for an access made by an instruction at pc.
func (pg *Paging) Resolve(pc uint16, addr uint16) Location {
	t := pg.Tables()

	if t.IO && addr >= 0xfc00 && addr <= 0xfeff {
		return Location{IO: true}
	}

	var bp BigPage
	if t.PCMOS[pc>>12] {
		bp = t.MOS[addr>>12]
	} else {
		bp = t.User[addr>>12]
	}

	return Location{Page: bp, Offset: addr & 0x0fff}
}

// the register values with the override bits applied
func (pg *Paging) applyOverride() (uint8, uint8) {
	romsel := pg.romsel
	acccon := pg.acccon
	o := pg.override

	set := func(v *uint8, bit uint8, on bool) {
		if on {
			*v |= bit
		} else {
			*v &^= bit
		}
	}

	if o&OverrideROM != 0 {
		romsel = (romsel &^ ROMSELBank) | uint8(o&SelectROMBank)
	}
	if o&OverrideANDY != 0 {
		set(&romsel, ROMSELRAM, o&SelectANDY != 0)
	}

	switch pg.model {
	case ModelBPlus:
		if o&OverrideShadow != 0 {
			set(&acccon, ACCCONShadowBPlus, o&SelectShadow != 0)
		}
	case ModelMaster:
		if o&OverrideHAZEL != 0 {
			set(&acccon, ACCCONY, o&SelectHAZEL != 0)
		}
		if o&OverrideShadow != 0 {
			set(&acccon, ACCCONX, o&SelectShadow != 0)
		}
		if o&OverrideOS != 0 {
			set(&acccon, ACCCONTST, o&SelectOS != 0)
		}
	}

	return romsel, acccon
}
