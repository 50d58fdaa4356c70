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

package eeprom_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherbeeb/hardware/peripherals/eeprom"
	"github.com/jetsetilly/gopherbeeb/test"
)

// i2c master driving the clock and data lines of the EEPROM
type master struct {
	t  *testing.T
	ee *eeprom.PCD8572
}

func (m *master) set(clk bool, data bool) {
	m.ee.Update(clk, data)
}

func (m *master) start() {
	m.set(true, true)
	m.set(true, false)
	m.set(false, false)
}

func (m *master) stop() {
	m.set(false, false)
	m.set(true, false)
	m.set(true, true)
}

func (m *master) writeBit(b bool) {
	m.set(false, b)
	m.set(true, b)
	m.set(false, b)
}

// returns true if the byte was acknowledged
func (m *master) writeByte(v uint8) bool {
	for i := 7; i >= 0; i-- {
		m.writeBit(v&(1<<i) != 0)
	}

	m.set(false, true)
	m.set(true, true)
	ack := !m.ee.DataOutput()
	m.set(false, true)

	return ack
}

func (m *master) readByte(ack bool) uint8 {
	var v uint8
	for range 8 {
		m.set(false, true)
		m.set(true, true)
		v <<= 1
		if m.ee.DataOutput() {
			v |= 1
		}
		m.set(false, true)
	}

	m.writeBit(!ack)
	return v
}

func (m *master) write(address uint8, data ...uint8) {
	m.t.Helper()
	m.start()
	test.ExpectSuccess(m.t, m.writeByte(0xa0), "slave address")
	test.ExpectSuccess(m.t, m.writeByte(address), "word address")
	for _, d := range data {
		test.ExpectSuccess(m.t, m.writeByte(d), "data")
	}
	m.stop()
}

func (m *master) read(address uint8, n int) []uint8 {
	m.t.Helper()
	m.start()
	test.ExpectSuccess(m.t, m.writeByte(0xa0), "slave address")
	test.ExpectSuccess(m.t, m.writeByte(address), "word address")

	// repeated start
	m.start()
	test.ExpectSuccess(m.t, m.writeByte(0xa1), "slave address")

	d := make([]uint8, n)
	for i := range d {
		d[i] = m.readByte(i < n-1)
	}
	m.stop()

	return d
}

func TestWriteAndRead(t *testing.T) {
	m := master{t: t, ee: eeprom.NewPCD8572(nil)}

	m.write(0x10, 0x55, 0xaa, 0x01)
	test.ExpectEquality(t, m.ee.State, eeprom.Idle)
	test.ExpectEquality(t, m.ee.Peek(0x10), uint8(0x55))
	test.ExpectEquality(t, m.ee.Peek(0x11), uint8(0xaa))
	test.ExpectEquality(t, m.ee.Peek(0x12), uint8(0x01))
	test.ExpectEquality(t, m.ee.Peek(0x13), uint8(0x00))

	d := m.read(0x10, 3)
	test.ExpectEquality(t, string(d), "\x55\xaa\x01")
	test.ExpectEquality(t, m.ee.State, eeprom.Idle)
	test.ExpectSuccess(t, m.ee.DataOutput())
}

func TestWrap(t *testing.T) {
	m := master{t: t, ee: eeprom.NewPCD8572(nil)}

	m.write(0x7e, 1, 2, 3, 4)
	test.ExpectEquality(t, m.ee.Peek(0x7e), uint8(1))
	test.ExpectEquality(t, m.ee.Peek(0x7f), uint8(2))
	test.ExpectEquality(t, m.ee.Peek(0x00), uint8(3))
	test.ExpectEquality(t, m.ee.Peek(0x01), uint8(4))
	test.ExpectEquality(t, m.ee.Address, uint8(0x02))

	// word addresses are taken modulo the size of the EEPROM
	d := m.read(0xfe, 4)
	test.ExpectEquality(t, string(d), "\x01\x02\x03\x04")
	test.ExpectEquality(t, m.ee.Address, uint8(0x01))

	// a long write wraps the address more than once
	data := make([]uint8, eeprom.Size*2+5)
	m.write(0x7f, data...)
	test.ExpectEquality(t, m.ee.Address, uint8(0x04))
	test.ExpectSuccess(t, m.ee.Address < eeprom.Size)
}

func TestRoundTrip(t *testing.T) {
	m := master{t: t, ee: eeprom.NewPCD8572(nil)}

	data := make([]uint8, eeprom.Size)
	for i := range data {
		data[i] = uint8(i*7 + 3)
	}
	m.write(0, data...)
	test.ExpectEquality(t, string(m.read(0, eeprom.Size)), string(data))
}

func TestWrongSlaveAddress(t *testing.T) {
	m := master{t: t, ee: eeprom.NewPCD8572(nil)}

	m.start()
	test.ExpectFailure(t, m.writeByte(0xa2))
	test.ExpectEquality(t, m.ee.State, eeprom.Idle)

	// the data is not written
	test.ExpectFailure(t, m.writeByte(0x00))
	test.ExpectFailure(t, m.writeByte(0xff))
	m.stop()
	test.ExpectEquality(t, m.ee.Peek(0x00), uint8(0x00))
}

func TestDisk(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "eeprom")

	m := master{t: t, ee: eeprom.NewPCD8572(nil)}
	test.ExpectSuccess(t, m.ee.IsSaved())
	m.write(0x20, 0x12, 0x34)
	test.ExpectFailure(t, m.ee.IsSaved())
	m.ee.Write(fn)
	test.ExpectSuccess(t, m.ee.IsSaved())

	d, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(d), eeprom.Size)

	ee := eeprom.NewPCD8572(nil)
	ee.Read(fn)
	test.ExpectEquality(t, ee.Peek(0x20), uint8(0x12))
	test.ExpectEquality(t, ee.Peek(0x21), uint8(0x34))
	test.ExpectSuccess(t, ee.IsSaved())

	// a missing file leaves the data unchanged
	ee.Read(filepath.Join(t.TempDir(), "missing"))
	test.ExpectEquality(t, ee.Peek(0x20), uint8(0x12))
}
