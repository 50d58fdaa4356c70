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

// Package serialbridge connects the serial port of the emulated machine to
// the outside world. Each type implements both the serial.Source and the
// serial.Sink interfaces and can be attached with Machine.AttachSerial().
//
// TTY uses a host terminal device, for example a USB serial adaptor or one
// end of a pseudo terminal pair. Buffer holds the bytes in memory and is
// useful for tests and for scripted input. Null discards everything and
// never has anything to send.
package serialbridge
