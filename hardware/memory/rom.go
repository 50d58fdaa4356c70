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

package memory

import (
	"github.com/jetsetilly/gopherbeeb/curated"
	"github.com/jetsetilly/gopherbeeb/hardware/memory/paging"
	"github.com/jetsetilly/gopherbeeb/logger"
)

// LoadMOS copies the data into the MOS ROM. The data must be exactly 16K.
func (mem *Memory) LoadMOS(data []uint8) error {
	if len(data) != ROMSize {
		return curated.Errorf(InvalidMOSSize, len(data))
	}
	copy(mem.mos, data)
	logger.Logf(mem.env, "memory", "MOS loaded (%d bytes)", len(data))
	return nil
}

// LoadSidewaysROM copies the data into a sideways bank. An 8K image is
// mirrored into both halves of the bank. Any other size than 8K or 16K is
// an error.
//
// Loading a ROM into a bank that was sideways RAM makes it ROM.
func (mem *Memory) LoadSidewaysROM(bank int, data []uint8) error {
	if bank < 0 || bank >= paging.NumROMBanks {
		return curated.Errorf(InvalidROMBank, bank)
	}

	switch len(data) {
	case ROMSize:
		copy(mem.roms[bank], data)
	case HalfROMSize:
		copy(mem.roms[bank], data)
		copy(mem.roms[bank][HalfROMSize:], data)
	default:
		return curated.Errorf(InvalidROMSize, len(data))
	}

	mem.sidewaysRAM[bank] = false
	mem.buildPages()

	logger.Logf(mem.env, "memory", "sideways ROM loaded into bank %x (%d bytes)", bank, len(data))

	return nil
}

// SetSidewaysRAM sets whether the bank is writable by the CPU.
func (mem *Memory) SetSidewaysRAM(bank int, ram bool) error {
	if bank < 0 || bank >= paging.NumROMBanks {
		return curated.Errorf(InvalidROMBank, bank)
	}
	mem.sidewaysRAM[bank] = ram
	mem.buildPages()
	return nil
}

// IsSidewaysRAM returns true if the bank is writable by the CPU.
func (mem *Memory) IsSidewaysRAM(bank int) bool {
	if bank < 0 || bank >= paging.NumROMBanks {
		return false
	}
	return mem.sidewaysRAM[bank]
}

// ROMTitle returns the title of the ROM in the bank, as recorded in the
// sideways ROM header. Returns false if the bank does not contain a valid
// header.
func (mem *Memory) ROMTitle(bank int) (string, bool) {
	if bank < 0 || bank >= paging.NumROMBanks {
		return "", false
	}
	rom := mem.roms[bank]

	// the copyright offset points at a zero byte followed by "(C)"
	c := int(rom[7])
	if c+3 >= len(rom) || rom[c] != 0x00 || rom[c+1] != '(' || rom[c+2] != 'C' || rom[c+3] != ')' {
		return "", false
	}

	var title []byte
	for i := 9; i < c && rom[i] != 0x00; i++ {
		title = append(title, rom[i])
	}
	return string(title), true
}
