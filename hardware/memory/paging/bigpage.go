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

// BigPage identifies a 4KB page of memory.
type BigPage uint8

// Invalid is returned for an address that maps to nothing.
const Invalid BigPage = 0xff

// The first big page of each memory region.
const (
	MainBigPage     BigPage = 0
	ANDYBigPage     BigPage = 8
	BPlusRAMBigPage BigPage = 8
	HAZELBigPage    BigPage = 9
	ShadowBigPage   BigPage = 11
	ROM0BigPage     BigPage = 16
	MOSBigPage      BigPage = 80
)

// Sizes of each memory region in big pages.
const (
	NumMainBigPages     = 8
	NumANDYBigPages     = 1
	NumBPlusRAMBigPages = 3
	NumHAZELBigPages    = 2
	NumShadowBigPages   = 5
	NumROMBigPages      = 4
	NumROMBanks         = 16
	NumMOSBigPages      = 4

	NumBigPages = int(MOSBigPage) + NumMOSBigPages
)

// BigPageSize is the number of bytes in a big page.
const BigPageSize = 4096

// ROMBigPage returns the first big page of a sideways bank.
func ROMBigPage(bank int) BigPage {
	return ROM0BigPage + BigPage((bank&0x0f)*NumROMBigPages)
}

// Region returns a short description of the region containing the big page
// and the index of the page within that region.
func (bp BigPage) Region() (string, int) {
	switch {
	case bp < ANDYBigPage:
		return "main", int(bp - MainBigPage)
	case bp < ShadowBigPage:
		return "paged", int(bp - ANDYBigPage)
	case bp < ROM0BigPage:
		return "shadow", int(bp - ShadowBigPage)
	case bp < MOSBigPage:
		return fmt.Sprintf("rom%x", int(bp-ROM0BigPage)/NumROMBigPages), int(bp-ROM0BigPage) % NumROMBigPages
	case int(bp) < NumBigPages:
		return "mos", int(bp - MOSBigPage)
	}
	return "invalid", 0
}

func (bp BigPage) String() string {
	if bp == Invalid {
		return "invalid"
	}
	r, i := bp.Region()
	return fmt.Sprintf("%s:%d", r, i)
}
