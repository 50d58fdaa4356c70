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

// Package memory implements the physical memory of the BBC Micro family.
//
// Memory is divided into 4K "big pages" numbered across every region in the
// machine (see the paging package). The Memory type owns the storage for each
// region and reads and writes a big page given a paging.Location. Which big
// page is visible at a CPU address is decided by the paging package and the
// hardware package puts the two together.
//
// The addresses and memorymap sub-packages name the areas of the address
// space and the registers in the SHEILA page.
package memory
