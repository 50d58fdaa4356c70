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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/gopherbeeb/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherbeeb/test"
)

const validMemMap = `0000 -> 7fff	RAM
8000 -> bfff	Sideways
c000 -> fbff	MOS
fc00 -> fcff	FRED
fd00 -> fdff	JIM
fe00 -> feff	SHEILA
ff00 -> ffff	MOS
`

func TestMemory(t *testing.T) {
	if memorymap.Summary() != validMemMap {
		t.Fatalf("memory map is invalid")
	}
}

func TestMapAddress(t *testing.T) {
	a, area := memorymap.MapAddress(0xfe40)
	test.ExpectEquality(t, area, memorymap.SHEILA)
	test.ExpectEquality(t, a, uint16(0x40))

	a, area = memorymap.MapAddress(0xfffc)
	test.ExpectEquality(t, area, memorymap.MOS)
	test.ExpectEquality(t, a, uint16(0x3ffc))

	a, area = memorymap.MapAddress(0x8001)
	test.ExpectEquality(t, area, memorymap.Sideways)
	test.ExpectEquality(t, a, uint16(0x0001))

	test.ExpectSuccess(t, memorymap.IsIO(0xfc00))
	test.ExpectFailure(t, memorymap.IsIO(0xff00))
	test.ExpectSuccess(t, memorymap.IsArea(0x1900, memorymap.RAM))
}
