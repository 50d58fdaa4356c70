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

// Package serial emulates the serial hardware of the BBC Micro: the MC6850
// ACIA and the serial processor ULA (SERPROC).
//
// The ACIA converts bytes written by the CPU into a stream of bits and back
// again. The SERPROC supplies the ACIA with separate transmit and receive
// clocks derived from the baud rates in its control register, and connects
// the ACIA to either the RS423 port or the cassette interface.
//
// Data leaving the machine is assembled into bytes by the SERPROC and passed
// to a Sink. Data entering the machine is taken from a Source and framed as
// 8-N-1 on the receive line. Sources and sinks are provided by the
// serialbridge package.
package serial
