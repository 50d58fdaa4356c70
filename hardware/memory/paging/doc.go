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

// Package paging resolves CPU addresses to 4KB "big pages" of BBC Micro
// memory. Which RAM, sideways ROM or MOS page appears at an address depends
// on the model, the ROMSEL and ACCCON registers, and on the B+ and Master,
// the address of the instruction making the access.
//
// The tables are recomputed lazily. Writes to ROMSEL and ACCCON only mark
// the tables as dirty and the work is done on the next call to Tables() or
// Resolve().
//
// Big pages are numbered across every memory region in the machine:
//
//	0-7     main RAM
//	8       ANDY (Master) or 8-10 for the 12K of B+ paged RAM
//	9-10    HAZEL (Master)
//	11-15   shadow RAM
//	16-79   sideways ROM/RAM, 4 pages per bank
//	80-83   MOS ROM
package paging
