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

package serialbridge

import (
	"github.com/jetsetilly/gopherbeeb/curated"
	"github.com/jetsetilly/gopherbeeb/logger"
	"github.com/pkg/term"
)

// the number of bytes that can be waiting in each direction before bytes
// are dropped
const ttyQueueLen = 4096

// TTY implements serial.Source and serial.Sink using a host terminal device.
// Reading and writing happen in separate goroutines so the emulation is
// never blocked by the device.
type TTY struct {
	name string
	dev  *term.Term

	in  chan uint8
	out chan uint8

	done chan struct{}
}

// OpenTTY opens the named device in raw mode at the baud rate. The baud
// rate should match the rate selected by the emulated program with the
// SERPROC.
func OpenTTY(name string, baud int) (*TTY, error) {
	dev, err := term.Open(name, term.Speed(baud), term.RawMode)
	if err != nil {
		return nil, curated.Errorf("serialbridge: %v", err)
	}

	tty := &TTY{
		name: name,
		dev:  dev,
		in:   make(chan uint8, ttyQueueLen),
		out:  make(chan uint8, ttyQueueLen),
		done: make(chan struct{}),
	}

	go tty.reader()
	go tty.writer()

	logger.Logf(logger.Allow, "serialbridge", "%s opened at %d baud", name, baud)

	return tty, nil
}

func (tty *TTY) reader() {
	buf := make([]uint8, 256)
	for {
		n, err := tty.dev.Read(buf)
		if err != nil {
			select {
			case <-tty.done:
			default:
				logger.Logf(logger.Allow, "serialbridge", "%s: %v", tty.name, err)
			}
			return
		}
		for _, v := range buf[:n] {
			select {
			case tty.in <- v:
			default:
				logger.Logf(logger.Allow, "serialbridge", "%s: input dropped", tty.name)
			}
		}
	}
}

func (tty *TTY) writer() {
	for {
		select {
		case <-tty.done:
			return
		case v := <-tty.out:
			if _, err := tty.dev.Write([]uint8{v}); err != nil {
				logger.Logf(logger.Allow, "serialbridge", "%s: %v", tty.name, err)
			}
		}
	}
}

// SetSpeed changes the baud rate of the device.
func (tty *TTY) SetSpeed(baud int) error {
	if err := tty.dev.SetSpeed(baud); err != nil {
		return curated.Errorf("serialbridge: %v", err)
	}
	return nil
}

// GetNextByte implements the serial.Source interface.
func (tty *TTY) GetNextByte() (uint8, bool) {
	select {
	case v := <-tty.in:
		return v, true
	default:
		return 0, false
	}
}

// AddByte implements the serial.Sink interface.
func (tty *TTY) AddByte(v uint8) {
	select {
	case tty.out <- v:
	default:
		logger.Logf(logger.Allow, "serialbridge", "%s: output dropped", tty.name)
	}
}

// Close the device. The TTY should not be used after closing.
func (tty *TTY) Close() error {
	close(tty.done)
	if err := tty.dev.Close(); err != nil {
		return curated.Errorf("serialbridge: %v", err)
	}
	return nil
}
