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

// Package memorymap names the areas of the BBC Micro address space as seen by
// the CPU and translates addresses to offsets within those areas.
//
//	offset, area := memorymap.MapAddress(0xfe40)
//
// The three pages of memory mapped I/O are traditionally called FRED, JIM and
// SHEILA. On the Model B the I/O window is always present. The B+ and Master
// can page memory into several of the areas and the paging package should be
// used to find out which memory is actually visible.
package memorymap
