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

package addresses

// The 6502 vectors. The reset vector is read by the CPU on power on and by
// the disassembly package to find the entry point of the MOS.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)

// CanonicalReadSymbols lists the readable SHEILA registers and the MOS entry
// points along with the canonical names for those addresses. The emulation
// does not use this map directly. The Read and Write sparse arrays are built
// from it.
var CanonicalReadSymbols = map[uint16]string{
	// SHEILA
	0xfe01: "CRTCDATA",
	0xfe08: "ACIASTAT",
	0xfe09: "ACIADATA",
	0xfe30: "ROMSEL",
	0xfe34: "ACCCON",
	0xfe3a: "I2C",
	0xfe3c: "RTCDATA",
}

// CanonicalWriteSymbols lists the writable SHEILA registers along with the
// canonical names for those addresses. (see above for commentary)
var CanonicalWriteSymbols = map[uint16]string{
	// SHEILA
	0xfe00: "CRTCADDR",
	0xfe01: "CRTCDATA",
	0xfe08: "ACIACTRL",
	0xfe09: "ACIADATA",
	0xfe10: "SERPROC",
	0xfe20: "ULACTRL",
	0xfe21: "ULAPAL",
	0xfe30: "ROMSEL",
	0xfe34: "ACCCON",
	0xfe38: "RTCADDR",
	0xfe3a: "I2C",
	0xfe3c: "RTCDATA",
	0xfe40: "SOUND",
}

// MOSEntryPoints are the documented MOS calls. They are used as labels for
// JSR and JMP targets in the disassembly.
var MOSEntryPoints = map[uint16]string{
	0xffb9: "OSRDRM",
	0xffbc: "VDUCHR",
	0xffbf: "OSEVEN",
	0xffc2: "GSINIT",
	0xffc5: "GSREAD",
	0xffc8: "NVRDCH",
	0xffcb: "NVWRCH",
	0xffce: "OSFIND",
	0xffd1: "OSGBPB",
	0xffd4: "OSBPUT",
	0xffd7: "OSBGET",
	0xffda: "OSARGS",
	0xffdd: "OSFILE",
	0xffe0: "OSRDCH",
	0xffe3: "OSASCI",
	0xffe7: "OSNEWL",
	0xffee: "OSWRCH",
	0xfff1: "OSWORD",
	0xfff4: "OSBYTE",
	0xfff7: "OSCLI",
}

// Read is a sparse array containing the canonical labels for SHEILA read
// addresses, indexed by the low byte of the address. If the address is not
// named (empty string) then the address is not readable
var Read []string

// Write is a sparse array containing the canonical labels for SHEILA write
// addresses. If the address is not named (empty string) then the address is
// not writable
var Write []string

// this init() function creates the Read/Write arrays using the read/write
// maps as a source
func init() {
	Read = make([]string, 256)
	for k, v := range CanonicalReadSymbols {
		Read[k&0xff] = v
	}

	Write = make([]string, 256)
	for k, v := range CanonicalWriteSymbols {
		Write[k&0xff] = v
	}
}

// Symbol returns the canonical name for an address, if it has one. The
// symbol for a SHEILA register can be different depending on whether the
// access is a read or a write.
func Symbol(address uint16, write bool) (string, bool) {
	if address&0xff00 == 0xfe00 {
		var s string
		if write {
			s = Write[address&0xff]
		} else {
			s = Read[address&0xff]
		}
		return s, s != ""
	}
	s, ok := MOSEntryPoints[address]
	return s, ok
}
