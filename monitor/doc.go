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

// Package monitor is a line driven command interpreter for inspecting and
// controlling a hardware.Machine.
//
// Commands can be abbreviated to any unambiguous prefix. For example, "di"
// is the same as "disasm" but "re" is ambiguous because it could be "regs"
// or "reset". Addresses are hexadecimal and can be prefixed with & or $. A
// symbol can be used in place of an address. Counts are decimal.
//
// The Execute() function runs a single command and can be used to drive the
// monitor from a script or from a test. The Interact() function runs the
// command loop, using line editing if the input is a terminal.
package monitor
