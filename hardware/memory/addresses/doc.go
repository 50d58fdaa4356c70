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

// Package addresses contains information about the well known addresses in
// the BBC Micro: the 6502 vectors, the registers of the peripherals in the
// SHEILA page and the documented MOS entry points. The canonical names are
// used by the disassembly and the monitor to label addresses.
//
// In addition to the canonical symbol maps, there are two sparse arrays Read
// and Write, created from the canonical maps at run time. Accessing a map
// although very convenient, is noticeably slower than accessing a sparse
// array.
package addresses
