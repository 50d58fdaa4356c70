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
	"github.com/jetsetilly/gopherbeeb/hardware/memory/addresses"
)

// handler is the pair of functions that implement a SHEILA address. The
// functions are method expressions so that the tables can be shared by
// every Machine, including snapshots.
type handler struct {
	read  func(m *Machine, offset uint8) uint8
	write func(m *Machine, offset uint8, data uint8)
}

// video ULA control register bits
const (
	ULAFast = 0x10
)

// the i2c port of the Master. the clock and data lines are written together
// and the data line reads back as the wired-AND of the master and the
// EEPROM
const (
	i2cData  = 0x01
	i2cClock = 0x02
)

var sheilaB, sheilaBPlus, sheilaMaster [256]handler

func init() {
	unmapped := handler{read: (*Machine).readUnmapped, write: (*Machine).writeUnmapped}

	for _, t := range []*[256]handler{&sheilaB, &sheilaBPlus, &sheilaMaster} {
		for i := range t {
			t[i] = unmapped
		}

		fill(t, addresses.CRTCAddress, 8, handler{read: (*Machine).readCRTC, write: (*Machine).writeCRTC})
		fill(t, addresses.ACIAControl, 8, handler{read: (*Machine).readACIA, write: (*Machine).writeACIA})
		fill(t, addresses.SERPROC, 8, handler{read: (*Machine).readUnmapped, write: (*Machine).writeSERPROC})
		fill(t, addresses.VideoControl, 16, handler{read: (*Machine).readUnmapped, write: (*Machine).writeVideoULA})
		fill(t, addresses.ROMSEL, 4, handler{read: (*Machine).readUnmapped, write: (*Machine).writeROMSEL})
		fill(t, addresses.Sound, 32, handler{read: (*Machine).readUnmapped, write: (*Machine).writeSound})
	}

	// ACCCON is new with the B+
	for _, t := range []*[256]handler{&sheilaBPlus, &sheilaMaster} {
		fill(t, addresses.ACCCON, 4, handler{read: (*Machine).readACCCON, write: (*Machine).writeACCCON})
	}

	// ROMSEL can be read back on the Master
	fill(&sheilaMaster, addresses.ROMSEL, 4, handler{read: (*Machine).readROMSEL, write: (*Machine).writeROMSEL})
	fill(&sheilaMaster, addresses.RTCAddress, 2, handler{read: (*Machine).readUnmapped, write: (*Machine).writeRTCAddress})
	fill(&sheilaMaster, addresses.I2C, 2, handler{read: (*Machine).readI2C, write: (*Machine).writeI2C})
	fill(&sheilaMaster, addresses.RTCData, 4, handler{read: (*Machine).readRTCData, write: (*Machine).writeRTCData})
}

func fill(t *[256]handler, r addresses.SHEILARegister, n int, h handler) {
	for i := range n {
		t[int(r)+i] = h
	}
}

// the SHEILA offsets that are stretched to the 1MHz bus. the video ULA, the
// paging registers and the Master's additions are 2MHz devices
var oneMHzB, oneMHzMaster [256]bool

func init() {
	stretch := func(t *[256]bool, lo, hi int) {
		for i := lo; i <= hi; i++ {
			t[i] = true
		}
	}

	stretch(&oneMHzB, 0x00, 0x1f)
	stretch(&oneMHzB, 0x40, 0x7f)
	stretch(&oneMHzB, 0xc0, 0xdf)

	stretch(&oneMHzMaster, 0x00, 0x1f)
	stretch(&oneMHzMaster, 0x28, 0x2b)
	stretch(&oneMHzMaster, 0x40, 0x7f)
}

// isOneMHz returns true if an access to the I/O address is made at 1MHz.
// FRED and JIM are 1MHz buses. Which parts of SHEILA are stretched depends
// on the model.
func (m *Machine) isOneMHz(address uint16) bool {
	if address < 0xfe00 {
		return true
	}
	return m.oneMHz[address&0xff]
}

// readIO and writeIO complete an access to the I/O window.
func (m *Machine) readIO(address uint16) uint8 {
	if address&0xff00 != 0xfe00 {
		return 0xff
	}
	offset := uint8(address)
	return m.sheila[offset].read(m, offset)
}

func (m *Machine) writeIO(address uint16, data uint8) {
	if address&0xff00 != 0xfe00 {
		return
	}
	offset := uint8(address)
	m.sheila[offset].write(m, offset, data)
}

func (m *Machine) readUnmapped(_ uint8) uint8 {
	return 0xff
}

func (m *Machine) writeUnmapped(_ uint8, _ uint8) {
}

func (m *Machine) readCRTC(offset uint8) uint8 {
	if offset&0x01 == 0 {
		return m.CRTC.ReadAddress()
	}
	return m.CRTC.ReadData()
}

func (m *Machine) writeCRTC(offset uint8, data uint8) {
	if offset&0x01 == 0 {
		m.CRTC.WriteAddress(data)
	} else {
		m.CRTC.WriteData(data)
	}
}

func (m *Machine) readACIA(offset uint8) uint8 {
	var v uint8
	if offset&0x01 == 0 {
		v = m.ACIA.ReadStatus()
	} else {
		v = m.ACIA.ReadData()
	}
	m.updateIRQ()
	return v
}

func (m *Machine) writeACIA(offset uint8, data uint8) {
	if offset&0x01 == 0 {
		m.ACIA.WriteControl(data)
	} else {
		m.ACIA.WriteData(data)
	}
	m.updateIRQ()
}

func (m *Machine) writeSERPROC(_ uint8, data uint8) {
	m.SERPROC.Write(data)
}

func (m *Machine) writeVideoULA(offset uint8, data uint8) {
	if offset&0x01 == 0 {
		m.clocks.videoControl = data
	} else {
		m.clocks.palette[data>>4] = data & 0x0f
	}
}

func (m *Machine) readROMSEL(_ uint8) uint8 {
	return m.Paging.ROMSEL()
}

func (m *Machine) writeROMSEL(_ uint8, data uint8) {
	m.Paging.SetROMSEL(data)
}

func (m *Machine) readACCCON(_ uint8) uint8 {
	return m.Paging.ACCCON()
}

func (m *Machine) writeACCCON(_ uint8, data uint8) {
	m.Paging.SetACCCON(data)
}

func (m *Machine) writeSound(_ uint8, data uint8) {
	m.clocks.soundLatch = data
	m.clocks.soundPending = true
}

func (m *Machine) writeRTCAddress(_ uint8, data uint8) {
	m.RTC.SetAddress(data)
}

func (m *Machine) readRTCData(_ uint8) uint8 {
	return m.RTC.Read()
}

func (m *Machine) writeRTCData(_ uint8, data uint8) {
	m.RTC.Write(data)
}

func (m *Machine) readI2C(_ uint8) uint8 {
	v := m.clocks.i2cLatch | ^uint8(i2cData|i2cClock)
	if !m.EEPROM.DataOutput() {
		v &^= i2cData
	}
	return v
}

func (m *Machine) writeI2C(_ uint8, data uint8) {
	m.clocks.i2cLatch = data & (i2cData | i2cClock)
	m.EEPROM.Update(data&i2cClock == i2cClock, data&i2cData == i2cData)
}

// updateIRQ sets the IRQ line of the CPU from the interrupt outputs of the
// devices.
func (m *Machine) updateIRQ() {
	m.CPU.SetDeviceIRQ(IRQACIA, m.ACIA.IRQ())
}
