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

func invalidTables(t *Tables) {
	for i := range t.User {
		t.User[i] = Invalid
		t.MOS[i] = Invalid
		t.PCMOS[i] = false
	}
	t.IO = false
	t.CRTCShadow = false
}

// 0x0000 to 0x7fff with or without the 20K of shadow RAM at 0x3000
func mainRAM(table []BigPage, shadow bool) {
	for i := range NumMainBigPages {
		table[i] = MainBigPage + BigPage(i)
	}
	if shadow {
		for i := range NumShadowBigPages {
			table[3+i] = ShadowBigPage + BigPage(i)
		}
	}
}

func sidewaysAndMOS(table []BigPage, bank uint8) {
	rom := ROMBigPage(int(bank))
	for i := range NumROMBigPages {
		table[8+i] = rom + BigPage(i)
	}
	for i := range NumMOSBigPages {
		table[12+i] = MOSBigPage + BigPage(i)
	}
}

func tablesB(t *Tables, romsel uint8) {
	mainRAM(t.User[:], false)
	sidewaysAndMOS(t.User[:], romsel&ROMSELBank)

	// the B has no way of giving MOS code a different view
	t.MOS = t.User
	t.PCMOS = [16]bool{}
	t.IO = true
	t.CRTCShadow = false
}

func tablesBPlus(t *Tables, romsel uint8, acccon uint8) {
	shadow := acccon&ACCCONShadowBPlus != 0

	mainRAM(t.User[:], false)
	mainRAM(t.MOS[:], shadow)
	sidewaysAndMOS(t.User[:], romsel&ROMSELBank)

	t.PCMOS = [16]bool{}
	t.PCMOS[0xc] = true
	t.PCMOS[0xd] = true

	// the 12K of paged RAM replaces the first 12K of the sideways bank. code
	// running from it can see shadow RAM in the same way as the MOS
	if romsel&ROMSELRAM != 0 {
		for i := range NumBPlusRAMBigPages {
			t.User[8+i] = BPlusRAMBigPage + BigPage(i)
		}
		t.PCMOS[0xa] = true
	}

	copy(t.MOS[8:], t.User[8:])

	t.IO = true
	t.CRTCShadow = shadow
}

// On the Master the user view of shadow RAM is controlled by X and the MOS
// view by E when Y is clear.
//
//	YXE  Usr  MOS
//	000   M    M
//	001   M    S
//	010   S    M
//	011   S    S
//	100   M    M
//	101   M    M
//	110   S    S
//	111   S    S
func tablesMaster(t *Tables, romsel uint8, acccon uint8) {
	x := acccon&ACCCONX != 0
	y := acccon&ACCCONY != 0
	e := acccon&ACCCONE != 0

	mainRAM(t.User[:], x)
	mainRAM(t.MOS[:], (y && x) || (!y && e))
	sidewaysAndMOS(t.User[:], romsel&ROMSELBank)

	if romsel&ROMSELRAM != 0 {
		t.User[8] = ANDYBigPage
	}

	t.PCMOS = [16]bool{}

	// HAZEL replaces the first 8K of the MOS. the VDU driver is in HAZEL when
	// Y is set and is treated as user code
	if y {
		for i := range NumHAZELBigPages {
			t.User[0xc+i] = HAZELBigPage + BigPage(i)
		}
	} else {
		t.PCMOS[0xc] = true
		t.PCMOS[0xd] = true
	}

	copy(t.MOS[8:], t.User[8:])

	t.IO = acccon&ACCCONTST == 0
	t.CRTCShadow = acccon&ACCCOND != 0
}
