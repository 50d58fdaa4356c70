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

package functional_test

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherbeeb/hardware/cpu"
	"github.com/jetsetilly/gopherbeeb/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherbeeb/test"
)

// the test binaries signal completion by writing to this address. a value of
// zero means success
const completionAddress = 0xff00

// a generous limit. the longest test takes a little over 100 million cycles
const maxCycles = 1 << 30

type functionalTest struct {
	filename    string
	loadAddress uint16
	startPC     uint16
	variant     instructions.Variant
}

var functionalTests = []functionalTest{
	{"6502.bin", 0x0000, 0x0400, instructions.NMOS},
	{"6502.bin", 0x0000, 0x0400, instructions.CMOS},
	{"65c02.bin", 0x0000, 0x0400, instructions.CMOS},
	{"65c02_rockwell.bin", 0x0000, 0x0400, instructions.Rockwell},
	{"d0.bin", 0x0200, 0x0200, instructions.NMOS},
	{"d1.bin", 0x0200, 0x0200, instructions.CMOS},
}

func TestFunctional(t *testing.T) {
	for _, ft := range functionalTests {
		t.Run(fmt.Sprintf("%s_%s", ft.filename, ft.variant), func(t *testing.T) {
			runFunctionalTest(t, ft)
		})
	}
}

func runFunctionalTest(t *testing.T, ft functionalTest) {
	data, err := os.ReadFile(filepath.Join("testdata", ft.filename))
	if errors.Is(err, fs.ErrNotExist) {
		t.Skipf("%s not present", ft.filename)
	}
	test.DemandSuccess(t, err)

	var mem [0x10000]uint8
	test.DemandEquality(t, int(ft.loadAddress)+len(data) <= len(mem), true)
	copy(mem[ft.loadAddress:], data)

	mc := cpu.NewCPU(cpu.NewConfig(ft.variant))
	mc.LoadPC(ft.startPC)

	// trace of the most recent instructions is output on failure
	trace, err := test.NewRingWriter(2048)
	test.DemandSuccess(t, err)

	lastPC := -1

	for mc.Cycles < maxCycles {
		if mc.IsAboutToExecute() {
			fmt.Fprintf(trace, "%04x %s\n", mc.ABus(), mc)

			// a branch or jump to itself is how the tests indicate failure
			if int(mc.ABus()) == lastPC {
				t.Logf("trace:\n%s", trace)
				t.Fatalf("loop at %04x: %s", lastPC, mc)
			}
			lastPC = int(mc.ABus())
		}

		mc.Step()

		if mc.Read() != cpu.Write {
			mc.SetDBus(mem[mc.ABus()])
			continue
		}

		if mc.ABus() == completionAddress {
			if mc.DBus() != 0 {
				t.Logf("trace:\n%s", trace)
				t.Fatalf("failure code %02x: %s", mc.DBus(), mc)
			}
			t.Logf("completed in %d cycles", mc.Cycles)
			return
		}

		mem[mc.ABus()] = mc.DBus()
	}

	t.Fatalf("no result after %d cycles", mc.Cycles)
}
