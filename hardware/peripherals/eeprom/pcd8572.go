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

package eeprom

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherbeeb/environment"
	"github.com/jetsetilly/gopherbeeb/hardware/peripherals/eeprom/i2c"
	"github.com/jetsetilly/gopherbeeb/logger"
)

// Size of the EEPROM in bytes. Addresses wrap at this value.
const Size = 128

// State records how incoming signals to the EEPROM will be interpreted.
type State int

// List of valid State values.
const (
	Idle State = iota
	StartReceiveSlaveAddress
	ReceiveSlaveAddress
	SendAcknowledge
	ReceiveWordAddress
	ReceiveData
	SendData
	ReceiveAcknowledge
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case StartReceiveSlaveAddress:
		return "starting"
	case ReceiveSlaveAddress:
		return "slave address"
	case SendAcknowledge:
		return "sending ACK"
	case ReceiveWordAddress:
		return "word address"
	case ReceiveData:
		return "writing data"
	case SendData:
		return "reading data"
	case ReceiveAcknowledge:
		return "waiting for ACK"
	}
	return "unknown"
}

// PCD8572 represents the EEPROM and the state of the i2c protocol.
type PCD8572 struct {
	env *environment.Environment

	SCL i2c.Trace
	SDA i2c.Trace

	State State
	next  State

	// the byte being shifted in or out. the mask is zero at the start of a
	// byte
	value uint8
	mask  uint8

	// the chip's contribution to the data line. the line is wired-AND so true
	// means the chip is not pulling the line low
	dataOutput bool

	// the next address to read or write. always less than Size
	Address uint8

	// amend Data only through Update() and Poke()
	Data [Size]uint8

	// the data as it was when last loaded or saved
	DiskData [Size]uint8
}

// NewPCD8572 is the preferred method of initialisation for the PCD8572 type.
func NewPCD8572(env *environment.Environment) *PCD8572 {
	return &PCD8572{
		env:        env,
		SCL:        i2c.NewTrace("SCL"),
		SDA:        i2c.NewTrace("SDA"),
		dataOutput: true,
	}
}

// Snapshot creates a copy of the EEPROM in its current state.
func (ee *PCD8572) Snapshot() *PCD8572 {
	n := *ee
	n.SCL = *ee.SCL.Snapshot()
	n.SDA = *ee.SDA.Snapshot()
	return &n
}

func (ee *PCD8572) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("eeprom: %s", ee.State))
	if ee.State != Idle {
		s.WriteString(fmt.Sprintf(" [%#02x]", ee.Address))
	}
	return s.String()
}

// Reset the i2c protocol. The contents of the EEPROM are unaffected.
func (ee *PCD8572) Reset() {
	ee.State = Idle
	ee.next = Idle
	ee.value = 0
	ee.mask = 0
	ee.dataOutput = true
}

// DataOutput returns the chip's contribution to the data line.
func (ee *PCD8572) DataOutput() bool {
	return ee.dataOutput
}

// Peek returns the value at the address without affecting the i2c state.
func (ee *PCD8572) Peek(address uint8) uint8 {
	return ee.Data[address%Size]
}

// Poke a value into the EEPROM.
func (ee *PCD8572) Poke(address uint8, data uint8) {
	ee.Data[address%Size] = data
}

// shift in the data line on the falling edge of the clock. returns true when
// a complete byte has been received
func (ee *PCD8572) receive() bool {
	if !ee.SCL.Falling() {
		return false
	}

	if ee.mask == 0 {
		ee.mask = 0x80
	}

	if ee.SDA.Hi() {
		ee.value |= ee.mask
	} else {
		ee.value &^= ee.mask
	}

	ee.mask >>= 1
	return ee.mask == 0
}

func (ee *PCD8572) acknowledge(next State) {
	ee.State = SendAcknowledge
	ee.next = next
}

// Update the state of the EEPROM with the current state of the clock and data
// lines.
func (ee *PCD8572) Update(clk bool, data bool) {
	ee.SCL.Tick(clk)
	ee.SDA.Tick(data)

	// start and stop conditions are changes to the data line while the clock
	// is held high
	if ee.SCL.Hi() && ee.SCL.Held() {
		if ee.SDA.Falling() {
			logger.Log(ee.env, "eeprom", "start condition")
			ee.mask = 0
			ee.dataOutput = true
			ee.State = StartReceiveSlaveAddress
		} else if ee.SDA.Rising() {
			if ee.State != Idle {
				logger.Log(ee.env, "eeprom", "stop condition")
			}
			ee.dataOutput = true
			ee.State = Idle
		}
	}

	switch ee.State {
	case Idle:

	case StartReceiveSlaveAddress:
		if ee.SCL.Lo() {
			ee.State = ReceiveSlaveAddress
		}

	case ReceiveSlaveAddress:
		if ee.receive() {
			// the chip select pins are all tied low
			if ee.value&0x0e != 0 {
				logger.Logf(ee.env, "eeprom", "ignoring slave address %#02x", ee.value)
				ee.State = Idle
				break
			}

			if ee.value&0x01 == 0x01 {
				logger.Logf(ee.env, "eeprom", "reading from address %#02x", ee.Address)
				ee.acknowledge(SendData)
			} else {
				ee.acknowledge(ReceiveWordAddress)
			}
		}

	case SendAcknowledge:
		if ee.SCL.Hi() {
			ee.dataOutput = false
		} else if ee.SCL.Falling() {
			// release the data line
			ee.dataOutput = true
			ee.State = ee.next
			ee.next = Idle
		}

	case ReceiveWordAddress:
		if ee.receive() {
			ee.Address = ee.value % Size
			logger.Logf(ee.env, "eeprom", "address %#02x", ee.Address)
			ee.acknowledge(ReceiveData)
		}

	case ReceiveData:
		if ee.receive() {
			ee.Data[ee.Address] = ee.value
			ee.Address = (ee.Address + 1) % Size
			ee.acknowledge(ReceiveData)
		}

	case SendData:
		if ee.mask == 0 {
			ee.value = ee.Data[ee.Address]
			ee.mask = 0x80
		}

		if ee.SCL.Rising() {
			ee.dataOutput = ee.value&ee.mask == ee.mask
		}

		if ee.SCL.Falling() {
			ee.mask >>= 1
			if ee.mask == 0 {
				ee.dataOutput = true
				ee.State = ReceiveAcknowledge
			}
		}

	case ReceiveAcknowledge:
		// the acknowledge bit is sampled on the falling edge like every other
		// bit. no acknowledgement ends the transfer
		if ee.SCL.Falling() {
			if ee.SDA.Lo() {
				ee.Address = (ee.Address + 1) % Size
				ee.State = SendData
			} else {
				ee.State = Idle
			}
		}
	}
}
