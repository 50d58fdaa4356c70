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

package memorymap

// Area represents the different areas of memory
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case Sideways:
		return "Sideways"
	case MOS:
		return "MOS"
	case FRED:
		return "FRED"
	case JIM:
		return "JIM"
	case SHEILA:
		return "SHEILA"
	}

	return "undefined"
}

// The different memory areas as seen by the CPU.
const (
	Undefined Area = iota
	RAM
	Sideways
	MOS
	FRED
	JIM
	SHEILA
)

// The origin and memory top for each area of memory. The MOS area is split by
// the I/O window. OriginMOSHigh is the part of the MOS above the window.
const (
	OriginRAM      = uint16(0x0000)
	MemtopRAM      = uint16(0x7fff)
	OriginSideways = uint16(0x8000)
	MemtopSideways = uint16(0xbfff)
	OriginMOS      = uint16(0xc000)
	MemtopMOS      = uint16(0xfbff)
	OriginFRED     = uint16(0xfc00)
	MemtopFRED     = uint16(0xfcff)
	OriginJIM      = uint16(0xfd00)
	MemtopJIM      = uint16(0xfdff)
	OriginSHEILA   = uint16(0xfe00)
	MemtopSHEILA   = uint16(0xfeff)
	OriginMOSHigh  = uint16(0xff00)
	Memtop         = uint16(0xffff)
)

// MapAddress returns the area the address is in and the address relative to
// the start of the area. Addresses in the upper part of the MOS are relative
// to OriginMOS, the same as the lower part.
//
// The returned area is the view of the BBC Model B. On the B+ and Master the
// regions below the I/O window can be paged to RAM and the I/O window itself
// can be replaced by MOS ROM. The paging package deals with that.
func MapAddress(address uint16) (uint16, Area) {
	switch {
	case address <= MemtopRAM:
		return address, RAM
	case address <= MemtopSideways:
		return address - OriginSideways, Sideways
	case address <= MemtopMOS:
		return address - OriginMOS, MOS
	case address <= MemtopFRED:
		return address - OriginFRED, FRED
	case address <= MemtopJIM:
		return address - OriginJIM, JIM
	case address <= MemtopSHEILA:
		return address - OriginSHEILA, SHEILA
	}
	return address - OriginMOS, MOS
}

// IsArea returns true if the address is in the specified area
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}

// IsIO returns true if the address is in one of the three pages of memory
// mapped I/O.
func IsIO(address uint16) bool {
	return address >= OriginFRED && address <= MemtopSHEILA
}
