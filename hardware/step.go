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

package hardware

import (
	"github.com/jetsetilly/gopherbeeb/hardware/cpu"
	"github.com/jetsetilly/gopherbeeb/hardware/serial"
	"github.com/jetsetilly/gopherbeeb/hardware/sound"
)

// the machine is driven by a 4MHz clock. the number of 4MHz cycles per tick
// of the other clocks
const cyclesPerSound = 4000000 / sound.ClockFreq

// the SERPROC clock is not a whole fraction of 4MHz. the accumulator is
// increased by serprocStep every 4MHz cycle and the SERPROC is updated each
// time it passes serprocPeriod
const (
	serprocStep   = serial.ClockFreq / 1600
	serprocPeriod = 4000000 / 1600
)

// Step the machine by one 4MHz cycle.
//
// The CPU and the 2MHz devices run on every other cycle. The 1MHz devices
// run on every fourth cycle. An access by the CPU to a 1MHz device is held
// until the end of the 1MHz cycle, which stretches the CPU cycle by one or
// two 2MHz cycles.
func (m *Machine) Step() {
	c := m.clocks.cycles

	if c&1 == 0 {
		m.tick2MHz(c&2 == 0)
	}

	if c%cyclesPerSound == 0 {
		out := m.Sound.Update(m.clocks.soundPending, m.clocks.soundLatch)
		m.clocks.soundPending = false
		for _, mx := range m.mixers {
			mx.SetAudio(out)
		}
	}

	m.clocks.serprocAccumulator += serprocStep
	if m.clocks.serprocAccumulator >= serprocPeriod {
		m.clocks.serprocAccumulator -= serprocPeriod
		m.SERPROC.Update()
		m.updateIRQ()
	}

	m.clocks.cycles++
}

// tick2MHz is called on every 2MHz cycle. The oneMHz argument is true if
// the cycle is also the start of a 1MHz cycle.
func (m *Machine) tick2MHz(oneMHz bool) {
	fast := m.clocks.videoControl&ULAFast == ULAFast || m.Env.Prefs.Live.Fast6845.Load()
	if fast || oneMHz {
		m.clocks.crtcOutput = m.CRTC.Update(fast)
		m.clocks.crtcTicks++
	}

	if oneMHz && m.RTC != nil {
		if d := int(m.Env.Prefs.Live.RTCDivisor.Load()); d != m.clocks.rtcDivisor {
			m.clocks.rtcDivisor = d
			m.RTC.SetDivisor(d)
		}
		m.RTC.Update()
	}

	// a stretched access completes in the second half of a 1MHz cycle
	if m.clocks.stretch {
		if !oneMHz {
			m.clocks.stretch = false
			m.completeAccess()
		}
		m.clocks.stretched++
		return
	}

	m.CPU.Step()

	address := m.CPU.ABus()
	m.clocks.loc = m.Paging.Resolve(m.CPU.OpcodePC(), address)
	if m.clocks.loc.IO && m.isOneMHz(address) {
		m.clocks.stretch = true
		return
	}

	m.completeAccess()
}

// completeAccess performs the memory or I/O access requested by the CPU.
func (m *Machine) completeAccess() {
	address := m.CPU.ABus()

	if m.CPU.Read() == cpu.Write {
		if m.clocks.loc.IO {
			m.writeIO(address, m.CPU.DBus())
		} else {
			m.Mem.Write(m.clocks.loc, m.CPU.DBus())
		}
		return
	}

	if m.clocks.loc.IO {
		m.CPU.SetDBus(m.readIO(address))
	} else {
		m.CPU.SetDBus(m.Mem.Read(m.clocks.loc))
	}
}

// StepCycles steps the machine by the number of 4MHz cycles.
func (m *Machine) StepCycles(n int) {
	for range n {
		m.Step()
	}
}

// StepInstruction steps the machine until the CPU has completed the current
// instruction and fetched the opcode of the next one. Returns early if the
// CPU halts.
func (m *Machine) StepInstruction() {
	start := m.CPU.Cycles
	for {
		m.Step()
		if m.CPU.Cycles == start {
			continue
		}
		if m.CPU.IsHalted() {
			return
		}
		if m.CPU.IsAboutToExecute() && !m.clocks.stretch {
			return
		}
	}
}
