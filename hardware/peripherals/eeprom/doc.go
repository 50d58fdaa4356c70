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

// Package eeprom emulates the PCD8572 EEPROM used by the Master Compact to
// store its configuration settings. The chip is accessed with the i2c
// protocol over two lines: a clock driven by the machine and a data line that
// is driven by both the machine and the chip.
//
// The machine calls Update() whenever the lines might have changed and reads
// the chip's contribution to the data line with DataOutput().
package eeprom
