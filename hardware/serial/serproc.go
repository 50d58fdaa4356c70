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

import "fmt"

// Source supplies bytes to be received by the ACIA. GetNextByte() returns
// false if there is no byte available.
type Source interface {
	GetNextByte() (uint8, bool)
}

// Sink accepts bytes transmitted by the ACIA.
type Sink interface {
	AddByte(uint8)
}

// ClockFreq is the frequency at which SERPROC.Update() should be called. It
// is 64 times the fastest baud rate.
const ClockFreq = 19200 * 64

// BaudRates is indexed by the value of the transmit or receive baud field of
// the SERPROC control register.
var BaudRates = [8]int{19200, 1200, 4800, 150, 9600, 300, 2400, 75}

// the ACIA clock is divided down from ClockFreq by the mask plus one
var clockMasks [8]uint16

func init() {
	for i, b := range BaudRates {
		clockMasks[i] = uint16(BaudRates[0]/b) - 1
	}
}

// SERPROC control register bits.
const (
	SERPROCTxBaud = 0x07
	SERPROCRxBaud = 0x38
	SERPROCRS423  = 0x40
	SERPROCMotor  = 0x80
)

// SERPROC is the serial processor ULA.
type SERPROC struct {
	acia *ACIA

	control uint8
	clock   uint16
	txMask  uint16
	rxMask  uint16

	source Source
	sink   Sink

	// byte being assembled from the transmit line
	txByte uint8
	txBit  int

	// bits being sent on the receive line. the line is high (mark) when
	// there is nothing to send
	rxFrame uint16
	rxBits  int
	rxLine  uint8
}

// NewSERPROC is the preferred method of initialisation for the SERPROC type.
func NewSERPROC(acia *ACIA) *SERPROC {
	sp := &SERPROC{
		acia:   acia,
		rxLine: 1,
	}
	sp.Write(0)
	return sp
}

// Snapshot creates a copy of the SERPROC in its current state. The copy
// shares the ACIA, Source and Sink with the original until Plumb() is
// called.
func (sp *SERPROC) Snapshot() *SERPROC {
	n := *sp
	return &n
}

// Plumb the ACIA into the SERPROC. Used after Snapshot() to connect the copy
// to a copy of the ACIA.
func (sp *SERPROC) Plumb(acia *ACIA) {
	sp.acia = acia
}

func (sp *SERPROC) String() string {
	mode := "cassette"
	if sp.RS423() {
		mode = "rs423"
	}
	return fmt.Sprintf("tx=%d rx=%d %s motor=%v", sp.TxBaud(), sp.RxBaud(), mode, sp.MotorOn())
}

// Attach a source and a sink. Either may be nil.
func (sp *SERPROC) Attach(source Source, sink Sink) {
	sp.source = source
	sp.sink = sink
}

// Write to the control register.
func (sp *SERPROC) Write(v uint8) {
	sp.control = v
	sp.txMask = clockMasks[v&SERPROCTxBaud]
	sp.rxMask = clockMasks[(v&SERPROCRxBaud)>>3]

	// with nothing attached to the cassette port there is no carrier
	sp.acia.SetNotDCD(v&SERPROCRS423 == 0)
}

// Control returns the value last written to the control register.
func (sp *SERPROC) Control() uint8 {
	return sp.control
}

// TxBaud returns the transmit baud rate.
func (sp *SERPROC) TxBaud() int {
	return BaudRates[sp.control&SERPROCTxBaud]
}

// RxBaud returns the receive baud rate.
func (sp *SERPROC) RxBaud() int {
	return BaudRates[(sp.control&SERPROCRxBaud)>>3]
}

// RS423 returns true if the ACIA is connected to the RS423 port rather than
// the cassette interface.
func (sp *SERPROC) RS423() bool {
	return sp.control&SERPROCRS423 == SERPROCRS423
}

// MotorOn returns the state of the cassette motor relay.
func (sp *SERPROC) MotorOn() bool {
	return sp.control&SERPROCMotor == SERPROCMotor
}

// Update the SERPROC by one tick of ClockFreq.
func (sp *SERPROC) Update() {
	if sp.clock&sp.txMask == 0 {
		sp.transmit(sp.acia.UpdateTransmit())
	}

	if sp.clock&sp.rxMask == 0 {
		sp.receive()
	}

	sp.clock++
}

func (sp *SERPROC) transmit(r TransmitResult) {
	switch r.Type {
	case BitStart:
		sp.txByte = 0
		sp.txBit = 0
	case BitData:
		// data arrives least significant bit first
		if sp.txBit < 8 {
			sp.txByte |= r.Bit << sp.txBit
		}
		sp.txBit++
	case BitStop:
		// the first stop bit completes the byte
		if sp.txBit > 0 {
			if sp.sink != nil && sp.RS423() {
				sp.sink.AddByte(sp.txByte)
			}
			sp.txBit = 0
		}
	}
}

func (sp *SERPROC) receive() {
	if sp.acia.ReceiveSampling() {
		switch {
		case sp.rxBits > 0:
			sp.rxLine = uint8(sp.rxFrame & 0x01)
			sp.rxFrame >>= 1
			sp.rxBits--
		case sp.acia.ReceiveWaiting() && sp.ready():
			if b, ok := sp.source.GetNextByte(); ok {
				// 8-N-1: start bit, eight data bits and a stop bit. the
				// start bit goes out now
				sp.rxFrame = uint16(b)<<1 | 0x200
				sp.rxLine = 0
				sp.rxFrame >>= 1
				sp.rxBits = 9
			} else {
				sp.rxLine = 1
			}
		default:
			sp.rxLine = 1
		}
	}

	sp.acia.UpdateReceive(sp.rxLine)
}

// data is only taken from the source when the ACIA can accept it
func (sp *SERPROC) ready() bool {
	return sp.source != nil && sp.RS423() && !sp.acia.NotRTS() && !sp.acia.ReceiveFull()
}
