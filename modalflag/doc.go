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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// sub-modes, with different flags for each mode.
//
// Arguments are given with NewArgs() and then Parse() is called with no
// arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "MONITOR", "VERSION")
//	p, err := md.Parse()
//
// After a successful Parse(), the Mode() function returns the selected
// sub-mode. The first sub-mode is the default and is selected if the first
// non-flag argument does not name a sub-mode. Flags for the selected mode are
// added after a call to NewMode() and parsed with another call to Parse():
//
//	switch md.Mode() {
//	case "MONITOR":
//		md.NewMode()
//		model := md.AddString("model", "B", "machine model")
//		p, err := md.Parse()
//		...
//	}
//
// Help messages are generated for the -help flag and include the list of
// sub-modes.
package modalflag
