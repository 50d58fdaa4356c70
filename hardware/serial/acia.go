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

package serial

import (
	"fmt"
	"strings"
)

// BitType describes the bit produced by ACIA.UpdateTransmit().
type BitType int

// List of valid BitType values.
const (
	BitNone BitType = iota
	BitStart
	BitData
	BitParity
	BitStop
	BitBreak
)

func (b BitType) String() string {
	switch b {
	case BitStart:
		return "start"
	case BitData:
		return "data"
	case BitParity:
		return "parity"
	case BitStop:
		return "stop"
	case BitBreak:
		return "break"
	}
	return "none"
}

// TransmitResult is the result of a call to ACIA.UpdateTransmit().
type TransmitResult struct {
	Type BitType
	Bit  uint8
}

// Control register fields.
const (
	ControlDivide      = 0x03
	ControlWordSelect  = 0x1c
	ControlTransmitter = 0x60
	ControlRxIRQ       = 0x80
)

// Counter divide values.
const (
	Divide1     = 0x00
	Divide16    = 0x01
	Divide64    = 0x02
	MasterReset = 0x03
)

// Transmitter control values, already shifted into bits 5 and 6.
const (
	TxRTSLow        = 0x00
	TxRTSLowIRQ     = 0x20
	TxRTSHigh       = 0x40
	TxRTSLowBreak   = 0x60
	transmitterMask = 0x60
)

// Status register bits.
const (
	StatusRDRF = 0x01
	StatusTDRE = 0x02
	StatusNDCD = 0x04
	StatusNCTS = 0x08
	StatusFE   = 0x10
	StatusOVRN = 0x20
	StatusPE   = 0x40
	StatusIRQ  = 0x80
)

type txState int

const (
	txIdle txState = iota
	txData
	txParity
	txStop
)

type rxState int

const (
	rxIdle rxState = iota
	rxStartBit
	rxData
	rxParity
	rxStop
)

// ACIA is the MC6850 asynchronous communications interface adapter.
type ACIA struct {
	control uint8
	status  uint8

	// the clock input is divided by this mask plus one
	clockMask uint8

	// pin state
	notDCD    bool
	notCTS    bool
	oldNotDCD bool

	tdr uint8
	rdr uint8

	// transmit data register empty. the status bit is also affected by CTS
	tdre bool

	// interrupt sources before they are masked by the control register
	irqTx bool
	irqRx bool

	tx struct {
		state  txState
		clock  uint8
		format Format
		data   uint8
		bit    int
		parity uint8
	}

	rx struct {
		state        rxState
		clock        uint8
		format       Format
		data         uint8
		bit          int
		parityError  bool
		framingError bool
		overrun      bool
	}
}

// NewACIA is the preferred method of initialisation for the ACIA type.
func NewACIA() *ACIA {
	a := &ACIA{}
	a.WriteControl(MasterReset)
	return a
}

// Snapshot creates a copy of the ACIA in its current state.
func (a *ACIA) Snapshot() *ACIA {
	n := *a
	return &n
}

func (a *ACIA) String() string {
	s := strings.Builder{}
	fmt.Fprintf(&s, "ctrl=%02x status=%02x %s", a.control, a.ReadStatus(), formats[(a.control&ControlWordSelect)>>2])
	fmt.Fprintf(&s, " tdr=%02x rdr=%02x", a.tdr, a.rdr)
	return s.String()
}

// Reset the ACIA. This is the same as writing master reset to the control
// register.
func (a *ACIA) Reset() {
	a.control = MasterReset
	a.tx.state = txIdle
	a.rx.state = rxIdle
	a.rx.overrun = false
	a.tdre = true
	a.irqTx = false
	a.irqRx = false
	a.status = 0
}

// Format returns the word format selected by the control register.
func (a *ACIA) Format() Format {
	return formats[(a.control&ControlWordSelect)>>2]
}

// ClockDivide returns the number of clock pulses per bit.
func (a *ACIA) ClockDivide() int {
	return int(a.clockMask) + 1
}

// WriteControl writes to the control register.
func (a *ACIA) WriteControl(v uint8) {
	a.control = v
	switch v & ControlDivide {
	case Divide1:
		a.clockMask = 0
	case Divide16:
		a.clockMask = 15
	case Divide64:
		a.clockMask = 63
	case MasterReset:
		a.Reset()
		a.control = v
	}
}

// WriteData writes to the transmit data register.
func (a *ACIA) WriteData(v uint8) {
	a.tdr = v
	a.tdre = false
	a.irqTx = false
}

// ReadData reads the receive data register. Reading clears the receive
// data register full flag and reports any overrun in the status register.
func (a *ACIA) ReadData() uint8 {
	a.status &^= StatusRDRF
	a.irqRx = false

	if a.rx.overrun {
		a.status |= StatusOVRN
		a.rx.overrun = false
	} else {
		a.status &^= StatusOVRN
	}

	return a.rdr
}

// ReadStatus reads the status register.
func (a *ACIA) ReadStatus() uint8 {
	s := a.status &^ (StatusNDCD | StatusNCTS | StatusTDRE | StatusIRQ)
	if a.notDCD {
		s |= StatusNDCD
	}
	if a.notCTS {
		s |= StatusNCTS
	}
	if a.control&ControlDivide != MasterReset {
		if a.tdre && !a.notCTS {
			s |= StatusTDRE
		}
		if a.IRQ() {
			s |= StatusIRQ
		}
	}
	return s
}

// IRQ returns true if the ACIA is requesting an interrupt.
func (a *ACIA) IRQ() bool {
	if a.control&ControlDivide == MasterReset {
		return false
	}
	rx := a.irqRx && a.control&ControlRxIRQ == ControlRxIRQ
	tx := a.irqTx && a.control&transmitterMask == TxRTSLowIRQ
	return rx || tx
}

// NotRTS returns the state of the /RTS output.
func (a *ACIA) NotRTS() bool {
	return a.control&transmitterMask == TxRTSHigh
}

// SetNotDCD sets the /DCD input.
func (a *ACIA) SetNotDCD(v bool) {
	a.notDCD = v
}

// SetNotCTS sets the /CTS input.
func (a *ACIA) SetNotCTS(v bool) {
	a.notCTS = v
}

// ReceiveWaiting returns true if the receiver is waiting for a start bit and
// the next call to UpdateReceive() will sample the line.
func (a *ACIA) ReceiveWaiting() bool {
	return a.rx.state == rxStartBit && a.ReceiveSampling()
}

// ReceiveSampling returns true if the next call to UpdateReceive() will
// sample the line.
func (a *ACIA) ReceiveSampling() bool {
	return a.rx.clock&a.clockMask == 0
}

// ReceiveFull returns true if the receive data register holds a byte that
// has not been read.
func (a *ACIA) ReceiveFull() bool {
	return a.status&StatusRDRF == StatusRDRF
}

// UpdateTransmit advances the transmitter by one clock pulse. It returns
// the type of bit being sent, if any.
func (a *ACIA) UpdateTransmit() TransmitResult {
	clk := a.tx.clock
	a.tx.clock++
	if clk&a.clockMask != 0 {
		return TransmitResult{}
	}

	switch a.tx.state {
	case txIdle:
		return a.transmitIdle()
	case txData:
		return a.transmitData()
	case txParity:
		return a.transmitParity()
	case txStop:
		return a.transmitStop()
	}

	return TransmitResult{}
}

func (a *ACIA) transmitIdle() TransmitResult {
	if a.control&transmitterMask == TxRTSLowBreak {
		return TransmitResult{Type: BitBreak}
	}
	if a.tdre {
		return TransmitResult{}
	}

	// word format is fixed for the duration of the word
	a.tx.format = a.Format()
	a.tx.data = a.tdr
	a.tx.bit = 0
	a.tx.parity = a.tx.format.parityBit(a.tx.data)
	a.tx.state = txData

	a.tdre = true
	a.irqTx = true

	return TransmitResult{Type: BitStart}
}

func (a *ACIA) transmitData() TransmitResult {
	r := TransmitResult{Type: BitData, Bit: (a.tx.data >> a.tx.bit) & 0x01}
	a.tx.bit++
	if a.tx.bit >= a.tx.format.DataBits {
		a.tx.bit = 0
		if a.tx.format.Parity == ParityNone {
			a.tx.state = txStop
		} else {
			a.tx.state = txParity
		}
	}
	return r
}

func (a *ACIA) transmitParity() TransmitResult {
	a.tx.state = txStop
	return TransmitResult{Type: BitParity, Bit: a.tx.parity}
}

func (a *ACIA) transmitStop() TransmitResult {
	a.tx.bit++
	if a.tx.bit >= a.tx.format.StopBits {
		a.tx.state = txIdle
	}
	return TransmitResult{Type: BitStop, Bit: 1}
}

// UpdateReceive advances the receiver by one clock pulse with bit being the
// state of the receive line.
func (a *ACIA) UpdateReceive(bit uint8) {
	// loss of carrier causes an interrupt
	if !a.oldNotDCD && a.notDCD {
		a.irqRx = true
	}
	a.oldNotDCD = a.notDCD

	clk := a.rx.clock
	a.rx.clock++
	if clk&a.clockMask != 0 {
		return
	}

	bit &= 0x01

	switch a.rx.state {
	case rxIdle:
		if !a.notDCD {
			a.rx.state = rxStartBit
		}
	case rxStartBit:
		if bit == 0 {
			a.rx.format = a.Format()
			a.rx.state = rxData
			a.rx.data = 0
			a.rx.bit = 0
			a.rx.parityError = false
			a.rx.framingError = false
		}
	case rxData:
		a.rx.data |= bit << a.rx.bit
		a.rx.bit++
		if a.rx.bit >= a.rx.format.DataBits {
			a.rx.bit = 0
			if a.rx.format.Parity == ParityNone {
				a.rx.state = rxStop
			} else {
				a.rx.state = rxParity
			}
		}
	case rxParity:
		if bit != a.rx.format.parityBit(a.rx.data) {
			a.rx.parityError = true
		}
		a.rx.state = rxStop
	case rxStop:
		if bit == 0 {
			a.rx.framingError = true
		}
		a.rx.bit++
		if a.rx.bit >= a.rx.format.StopBits {
			a.receiveComplete()
			a.rx.state = rxStartBit
		}
	}
}

func (a *ACIA) receiveComplete() {
	if a.status&StatusRDRF == StatusRDRF {
		a.rx.overrun = true
	} else {
		a.rdr = a.rx.data
		a.status |= StatusRDRF
		a.status &^= StatusFE | StatusPE
		if a.rx.framingError {
			a.status |= StatusFE
		}
		if a.rx.parityError {
			a.status |= StatusPE
		}
	}
	a.irqRx = true
}
