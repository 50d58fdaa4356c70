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

import (
	"strings"

	"github.com/jetsetilly/gopherbeeb/curated"
)

// Model of the BBC Micro. The model decides how ROMSEL and ACCCON change
// the memory map.
type Model int

// List of valid Model values.
const (
	ModelB Model = iota
	ModelBPlus
	ModelMaster
)

func (m Model) String() string {
	switch m {
	case ModelB:
		return "B"
	case ModelBPlus:
		return "B+"
	case ModelMaster:
		return "Master"
	}
	return "unknown model"
}

// Sentinel error returned by ParseModel.
const UnknownModel = "paging: unknown model (%s)"

// ParseModel converts a model name to the Model type. Matching is case
// insensitive and BPLUS is accepted for B+.
func ParseModel(s string) (Model, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "B":
		return ModelB, nil
	case "B+", "BPLUS":
		return ModelBPlus, nil
	case "MASTER", "M128":
		return ModelMaster, nil
	}
	return ModelB, curated.Errorf(UnknownModel, s)
}

// the bits of ROMSEL and ACCCON that exist for each model
type registerMasks struct {
	romsel uint8
	acccon uint8
}

var masks = map[Model]registerMasks{
	ModelB:      {romsel: 0x0f, acccon: 0x00},
	ModelBPlus:  {romsel: 0x8f, acccon: 0x80},
	ModelMaster: {romsel: 0x8f, acccon: 0xff},
}

// ROMSEL bits.
const (
	ROMSELBank = 0x0f
	ROMSELRAM  = 0x80
)

// ACCCON bits. On the B+ only ACCCONShadowBPlus exists.
const (
	ACCCOND = 1 << iota
	ACCCONE
	ACCCONX
	ACCCONY
	ACCCONITU
	ACCCONIFJ
	ACCCONTST
	ACCCONIRR

	ACCCONShadowBPlus = 0x80
)

// Override bits allow a debugger to view memory with a different paging
// configuration to the one selected by the emulated program. Each Select bit
// only has an effect when the matching Override bit is also set. The ROM bank
// is held in the low nibble.
type Override uint32

// List of valid Override bits.
const (
	SelectROMBank  Override = 0x0f
	OverrideROM    Override = 1 << 4
	SelectANDY     Override = 1 << 5
	OverrideANDY   Override = 1 << 6
	SelectHAZEL    Override = 1 << 7
	OverrideHAZEL  Override = 1 << 8
	SelectShadow   Override = 1 << 9
	OverrideShadow Override = 1 << 10
	SelectOS       Override = 1 << 11
	OverrideOS     Override = 1 << 12
)

// the override bits that mean anything for each model
var overrideMasks = map[Model]Override{
	ModelB:      SelectROMBank | OverrideROM,
	ModelBPlus:  SelectROMBank | OverrideROM | SelectANDY | OverrideANDY | SelectShadow | OverrideShadow,
	ModelMaster: SelectROMBank | OverrideROM | SelectANDY | OverrideANDY | SelectHAZEL | OverrideHAZEL | SelectShadow | OverrideShadow | SelectOS | OverrideOS,
}
