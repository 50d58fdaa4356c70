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

// SHEILARegister specifies the offset of a register in the SHEILA page. It
// is used in contexts where a register is required, as opposed to an
// address.
type SHEILARegister uint8

// SHEILA registers. The peripherals decode fewer address lines than there
// are in the page so most registers are mirrored. The masks below select the
// bits of the offset that each peripheral decodes.
const (
	CRTCAddress  SHEILARegister = 0x00
	CRTCData     SHEILARegister = 0x01
	ACIAControl  SHEILARegister = 0x08
	ACIAData     SHEILARegister = 0x09
	SERPROC      SHEILARegister = 0x10
	VideoControl SHEILARegister = 0x20
	VideoPalette SHEILARegister = 0x21
	ROMSEL       SHEILARegister = 0x30
	ACCCON       SHEILARegister = 0x34
	RTCAddress   SHEILARegister = 0x38
	I2C          SHEILARegister = 0x3a
	RTCData      SHEILARegister = 0x3c
	Sound        SHEILARegister = 0x40
)

// Address returns the full address of the register.
func (r SHEILARegister) Address() uint16 {
	return 0xfe00 | uint16(r)
}

func (r SHEILARegister) String() string {
	if s := Write[r]; s != "" {
		return s
	}
	return Read[r]
}
