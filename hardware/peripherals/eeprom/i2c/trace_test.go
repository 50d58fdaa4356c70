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

package i2c_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherbeeb/hardware/peripherals/eeprom/i2c"
	"github.com/jetsetilly/gopherbeeb/test"
)

func TestTrace(t *testing.T) {
	tr := i2c.NewTrace("SCL")
	test.ExpectSuccess(t, tr.Lo())
	test.ExpectSuccess(t, tr.Held())

	tr.Tick(true)
	test.ExpectSuccess(t, tr.Rising())
	test.ExpectSuccess(t, tr.Changed())
	test.ExpectFailure(t, tr.Held())

	tr.Tick(true)
	test.ExpectSuccess(t, tr.Hi())
	test.ExpectSuccess(t, tr.Held())
	test.ExpectFailure(t, tr.Rising())

	tr.Tick(false)
	test.ExpectSuccess(t, tr.Falling())

	s := tr.String()
	test.ExpectEquality(t, len(s), 64)
	test.ExpectSuccess(t, strings.HasSuffix(s, "_--_"))

	// snapshots do not share activity
	cp := tr.Snapshot()
	tr.Tick(true)
	test.ExpectEquality(t, cp.String(), s)
	test.ExpectInequality(t, tr.String(), s)
}
