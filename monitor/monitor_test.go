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

package monitor_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherbeeb/curated"
	"github.com/jetsetilly/gopherbeeb/hardware"
	"github.com/jetsetilly/gopherbeeb/hardware/memory"
	"github.com/jetsetilly/gopherbeeb/hardware/preferences"
	"github.com/jetsetilly/gopherbeeb/monitor"
	"github.com/jetsetilly/gopherbeeb/test"
)

// the MOS program used by the tests
//
//	c000 lda #&41
//	c002 sta &2000
//	c005 inx
//	c006 jmp &c005
var program = []uint8{0xa9, 0x41, 0x8d, 0x00, 0x20, 0xe8, 0x4c, 0x05, 0xc0}

func newMonitor(t *testing.T) (*monitor.Monitor, *hardware.Machine, *strings.Builder) {
	t.Helper()

	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.Model.Set("B"))
	test.DemandSuccess(t, p.NVRAMFile.Set(""))

	m, err := hardware.NewMachine("test", p)
	test.DemandSuccess(t, err)

	mos := make([]uint8, memory.ROMSize)
	copy(mos, program)
	mos[0x3ffc] = 0x00
	mos[0x3ffd] = 0xc0
	test.DemandSuccess(t, m.LoadMOS(mos))

	for range 20 {
		m.StepInstruction()
		if m.CPU.OpcodePC() == 0xc000 {
			break
		}
	}
	test.DemandEquality(t, m.CPU.OpcodePC(), 0xc000)

	out := &strings.Builder{}
	return monitor.NewMonitor(m, out), m, out
}

func TestPrefix(t *testing.T) {
	mon, _, out := newMonitor(t)

	test.ExpectSuccess(t, mon.Execute("he"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "disasm [addr] [n]"))

	err := mon.Execute("re")
	test.ExpectSuccess(t, curated.Is(err, monitor.AmbiguousCommand))

	err = mon.Execute("xyzzy")
	test.ExpectSuccess(t, curated.Is(err, monitor.UnknownCommand))

	// empty lines do nothing
	test.ExpectSuccess(t, mon.Execute("   "))
}

func TestStep(t *testing.T) {
	mon, m, out := newMonitor(t)

	test.ExpectSuccess(t, mon.Execute("step"))
	test.ExpectEquality(t, m.CPU.OpcodePC(), 0xc002)
	test.ExpectEquality(t, out.String(), "c002 sta &2000\n")

	out.Reset()
	test.ExpectSuccess(t, mon.Execute("st 2"))
	test.ExpectEquality(t, m.CPU.OpcodePC(), 0xc006)
	test.ExpectEquality(t, out.String(), "c006 jmp &c005\n")

	v, err := m.Peek(0x2000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x41)

	err = mon.Execute("step x")
	test.ExpectSuccess(t, curated.Is(err, monitor.InvalidArgument))
}

func TestCycle(t *testing.T) {
	mon, m, _ := newMonitor(t)
	c := m.Cycles()
	test.ExpectSuccess(t, mon.Execute("cycle 10"))
	test.ExpectEquality(t, m.Cycles(), c+10)
}

func TestRunAndBreak(t *testing.T) {
	mon, m, out := newMonitor(t)

	err := mon.Execute("run")
	test.ExpectSuccess(t, curated.Is(err, monitor.MissingArgument))

	test.ExpectSuccess(t, mon.Execute("run 3"))
	test.ExpectEquality(t, m.CPU.OpcodePC(), 0xc006)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "count reached after 3 instructions"))

	out.Reset()
	test.ExpectSuccess(t, mon.Execute("break &c005"))
	test.ExpectEquality(t, out.String(), "breakpoint at c005 added\n")

	out.Reset()
	test.ExpectSuccess(t, mon.Execute("run 100"))
	test.ExpectEquality(t, m.CPU.OpcodePC(), 0xc005)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "breakpoint after 1 instructions"))

	out.Reset()
	test.ExpectSuccess(t, mon.Execute("break"))
	test.ExpectEquality(t, out.String(), "c005\n")

	// toggle off
	out.Reset()
	test.ExpectSuccess(t, mon.Execute("break c005"))
	test.ExpectSuccess(t, mon.Execute("break"))
	test.ExpectEquality(t, out.String(), "breakpoint at c005 removed\nno breakpoints\n")
}

func TestMemAndPoke(t *testing.T) {
	mon, m, out := newMonitor(t)

	test.ExpectSuccess(t, mon.Execute("poke &1000 ab"))
	v, _ := m.Peek(0x1000)
	test.ExpectEquality(t, v, 0xab)

	test.ExpectSuccess(t, mon.Execute("mem 1000 4"))
	test.ExpectEquality(t, out.String(), "1000: ab 00 00 00\n")

	// mem continues from where it left off
	out.Reset()
	test.ExpectSuccess(t, mon.Execute("mem"))
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "1004:"))
	test.ExpectEquality(t, strings.Count(out.String(), "\n"), 4)

	// I/O addresses can't be read or written by the monitor
	out.Reset()
	test.ExpectSuccess(t, mon.Execute("mem fe00 2"))
	test.ExpectEquality(t, out.String(), "fe00: -- --\n")
	err := mon.Execute("poke fe40 00")
	test.ExpectSuccess(t, curated.Is(err, monitor.CommandError))

	err = mon.Execute("poke 1000")
	test.ExpectSuccess(t, curated.Is(err, monitor.MissingArgument))
	err = mon.Execute("poke 1000 zz")
	test.ExpectSuccess(t, curated.Is(err, monitor.InvalidArgument))
}

func TestDisasm(t *testing.T) {
	mon, _, out := newMonitor(t)

	test.ExpectSuccess(t, mon.Execute("disasm c000 2"))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	test.ExpectEquality(t, len(lines), 2)
	test.ExpectSuccess(t, strings.HasSuffix(lines[0], "lda #&41"))
	test.ExpectSuccess(t, strings.HasSuffix(lines[1], "sta &2000"))

	// symbols are used for addresses and operands
	fn := filepath.Join(t.TempDir(), "labels")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("&c005 loop\n&2000 buffer\n"), 0o644))
	test.ExpectSuccess(t, mon.Execute("symbols "+fn))

	out.Reset()
	test.ExpectSuccess(t, mon.Execute("disasm loop 2"))
	lines = strings.Split(strings.TrimSpace(out.String()), "\n")
	test.ExpectSuccess(t, strings.HasPrefix(lines[0], "loop c005"))
	test.ExpectSuccess(t, strings.HasSuffix(lines[1], "jmp loop"))

	out.Reset()
	test.ExpectSuccess(t, mon.Execute("disasm c002 1"))
	test.ExpectSuccess(t, strings.HasSuffix(strings.TrimSpace(out.String()), "sta buffer"))
}

func TestRegsAndCRTC(t *testing.T) {
	mon, _, out := newMonitor(t)

	test.ExpectSuccess(t, mon.Execute("regs"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "cycles="))

	out.Reset()
	test.ExpectSuccess(t, mon.Execute("crtc"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "video ULA control"))

	out.Reset()
	test.ExpectSuccess(t, mon.Execute("map"))
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "0000 -> 7fff\tRAM\n"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "B: 32K RAM"))
}

func TestReset(t *testing.T) {
	mon, m, _ := newMonitor(t)

	test.ExpectSuccess(t, mon.Execute("step 3"))
	v, _ := m.Peek(0x2000)
	test.ExpectEquality(t, v, 0x41)

	// memory is cleared on power on
	test.ExpectSuccess(t, mon.Execute("reset"))
	v, _ = m.Peek(0x2000)
	test.ExpectEquality(t, v, 0x00)

	// the program runs again from the reset vector
	test.ExpectSuccess(t, mon.Execute("run 10"))
	v, _ = m.Peek(0x2000)
	test.ExpectEquality(t, v, 0x41)
}

func TestDump(t *testing.T) {
	mon, _, out := newMonitor(t)

	fn := filepath.Join(t.TempDir(), "machine.dot")
	test.ExpectSuccess(t, mon.Execute("dump "+fn))
	test.ExpectEquality(t, out.String(), fmt.Sprintf("machine state written to %s\n", fn))

	d, err := os.ReadFile(fn)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(d), "digraph"))

	// without a filename a unique name is created in the current directory
	dir := t.TempDir()
	t.Chdir(dir)
	test.ExpectSuccess(t, mon.Execute("dump"))
	m, err := filepath.Glob(filepath.Join(dir, "dump_test_*.dot"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(m), 1)
}

func TestInteract(t *testing.T) {
	mon, m, _ := newMonitor(t)

	in := strings.NewReader("step\nbogus\nquit\nstep\n")
	out := &strings.Builder{}
	test.ExpectSuccess(t, mon.Interact(in, out))
	test.ExpectSuccess(t, mon.Quitting())

	// the step after quit is not executed
	test.ExpectEquality(t, m.CPU.OpcodePC(), 0xc002)
	test.ExpectSuccess(t, strings.Contains(out.String(), "* monitor: unknown command (bogus)"))
}

func TestRewind(t *testing.T) {
	mon, m, out := newMonitor(t)

	test.ExpectSuccess(t, mon.Execute("rewind"))
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "frames "))

	test.ExpectSuccess(t, mon.Execute("run 50"))
	f := m.CRTC.Frames()

	out.Reset()
	test.ExpectSuccess(t, mon.Execute("rewind 1"))
	test.ExpectSuccess(t, m.CRTC.Frames() < f)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "frame "))

	err := mon.Execute("rewind to")
	test.ExpectSuccess(t, curated.Is(err, monitor.MissingArgument))
	err = mon.Execute("rewind x")
	test.ExpectSuccess(t, curated.Is(err, monitor.InvalidArgument))
}
