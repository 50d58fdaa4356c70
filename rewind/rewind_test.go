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

package rewind_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherbeeb/hardware"
	"github.com/jetsetilly/gopherbeeb/hardware/memory"
	"github.com/jetsetilly/gopherbeeb/hardware/preferences"
	"github.com/jetsetilly/gopherbeeb/rewind"
	"github.com/jetsetilly/gopherbeeb/test"
)

// program a small screen geometry into the CRTC so that frames are short and
// then increment a zero page location forever
//
//	c000 lda #&00
//	c002 sta &fe00
//	c005 lda #&07
//	c007 sta &fe01
//	c00a lda #&04
//	c00c sta &fe00
//	c00f lda #&03
//	c011 sta &fe01
//	c014 inc &70
//	c016 jmp &c014
var program = []uint8{
	0xa9, 0x00, 0x8d, 0x00, 0xfe,
	0xa9, 0x07, 0x8d, 0x01, 0xfe,
	0xa9, 0x04, 0x8d, 0x00, 0xfe,
	0xa9, 0x03, 0x8d, 0x01, 0xfe,
	0xe6, 0x70,
	0x4c, 0x14, 0xc0,
}

func newMachine(t *testing.T) *hardware.Machine {
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

	return m
}

// step whole instructions until the cycle count is reached
func runUntil(m *hardware.Machine, r *rewind.Rewind, cycles uint64) {
	for m.Cycles() < cycles {
		m.StepInstruction()
		r.Check()
	}
}

func TestEmpty(t *testing.T) {
	m := newMachine(t)
	r := rewind.NewRewind(m)

	// there is always one entry for the state at the time of the reset
	s, e := r.Timeline()
	test.ExpectEquality(t, s, e)
	test.ExpectEquality(t, r.Current(), e)
	test.ExpectEquality(t, r.GotoFrame(100), e)
}

func TestRewind(t *testing.T) {
	m := newMachine(t)
	r := rewind.NewRewind(m)

	runUntil(m, r, 40000)

	s, e := r.Timeline()
	test.ExpectEquality(t, e, m.CRTC.Frames())
	test.ExpectEquality(t, r.Current(), e)

	// the history is limited
	test.ExpectSuccess(t, e-s > 50)
	test.ExpectSuccess(t, e-s < 100)

	cycles := m.Cycles()
	v, err := m.Peek(0x70)
	test.DemandSuccess(t, err)

	f := r.GotoFrame(e - 10)
	test.ExpectEquality(t, f, e-10)
	test.ExpectEquality(t, m.CRTC.Frames(), e-10)
	test.ExpectEquality(t, r.Current(), e-10)
	test.ExpectSuccess(t, m.Cycles() < cycles)

	// running forward again arrives at the same state
	runUntil(m, r, cycles)
	test.ExpectEquality(t, m.Cycles(), cycles)
	w, err := m.Peek(0x70)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, w, v)

	_, e2 := r.Timeline()
	test.ExpectEquality(t, e2, e)

	// frames earlier than the history restore the earliest entry
	s, _ = r.Timeline()
	test.ExpectEquality(t, r.GotoFrame(0), s)
}

func TestTruncate(t *testing.T) {
	m := newMachine(t)
	r := rewind.NewRewind(m)

	runUntil(m, r, 10000)
	_, e := r.Timeline()

	// entries after the rewound frame are forgotten when a new frame starts
	r.Back(5)
	f := m.CRTC.Frames()
	for m.CRTC.Frames() == f {
		m.StepInstruction()
		r.Check()
	}
	_, e2 := r.Timeline()
	test.ExpectEquality(t, e2, f+1)
	test.ExpectInequality(t, e2, e)
}

func TestReset(t *testing.T) {
	m := newMachine(t)
	r := rewind.NewRewind(m)

	runUntil(m, r, 10000)
	r.Reset()

	s, e := r.Timeline()
	test.ExpectEquality(t, s, e)
	test.ExpectEquality(t, e, m.CRTC.Frames())
}
