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
	"github.com/jetsetilly/gopherbeeb/hardware/crtc"
	"github.com/jetsetilly/gopherbeeb/hardware/memory"
	"github.com/jetsetilly/gopherbeeb/hardware/memory/paging"
	"github.com/jetsetilly/gopherbeeb/hardware/peripherals/eeprom"
	"github.com/jetsetilly/gopherbeeb/hardware/rtc"
	"github.com/jetsetilly/gopherbeeb/hardware/serial"
	"github.com/jetsetilly/gopherbeeb/hardware/sound"
)

// State stores the Machine sub-systems. It is produced by the Snapshot()
// function and can be restored with the Plumb() function
//
// Note that the serial devices and audio mixers are not part of the
// snapshot process
type State struct {
	Model   paging.Model
	CPU     *cpu.CPU
	Paging  *paging.Paging
	Mem     *memory.Memory
	CRTC    *crtc.CRTC
	Sound   *sound.SN76489
	ACIA    *serial.ACIA
	SERPROC *serial.SERPROC
	RTC     *rtc.MC146818
	EEPROM  *eeprom.PCD8572

	clocks clocks
}

// Snapshot the state of the Machine sub-systems
func (m *Machine) Snapshot() *State {
	s := &State{
		Model:   m.Model,
		CPU:     m.CPU.Snapshot(),
		Paging:  m.Paging.Snapshot(),
		Mem:     m.Mem.Snapshot(),
		CRTC:    m.CRTC.Snapshot(),
		Sound:   m.Sound.Snapshot(),
		ACIA:    m.ACIA.Snapshot(),
		SERPROC: m.SERPROC.Snapshot(),
		clocks:  m.clocks,
	}
	if m.RTC != nil {
		s.RTC = m.RTC.Snapshot()
		s.RTC.OnNVRAMChange = nil
	}
	if m.EEPROM != nil {
		s.EEPROM = m.EEPROM.Snapshot()
	}
	return s
}

// Cycles returns the 4MHz cycle count at the moment the snapshot was taken.
func (s *State) Cycles() uint64 {
	return s.clocks.cycles
}

// Plumb a previously snapshotted system. The state must have been taken from
// a machine of the same model.
func (m *Machine) Plumb(state *State) {
	if state == nil {
		panic("hardware: cannot plumb in a nil state")
	}
	if state.Model != m.Model {
		panic("hardware: cannot plumb in a state from a different model")
	}

	// take another snapshot of the state before plumbing. we don't want the
	// machine to change what we have stored in the state
	m.CPU = state.CPU.Snapshot()
	m.Paging = state.Paging.Snapshot()
	m.Mem = state.Mem.Snapshot()
	m.CRTC = state.CRTC.Snapshot()
	m.Sound = state.Sound.Snapshot()
	m.ACIA = state.ACIA.Snapshot()
	m.SERPROC = state.SERPROC.Snapshot()
	m.clocks = state.clocks

	m.Mem.Plumb(m.Env)
	m.SERPROC.Plumb(m.ACIA)
	m.SERPROC.Attach(m.source, m.sink)

	if state.RTC != nil {
		m.RTC = state.RTC.Snapshot()
		m.RTC.OnNVRAMChange = m.onNVRAMChange
	}
	if state.EEPROM != nil {
		m.EEPROM = state.EEPROM.Snapshot()
	}
}
