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

// Package prefs facilitates the storage of preference values on disk. Values
// of type Bool, Int, Float, String and Generic are registered with a Disk
// instance and saved to a plain text file of "key :: value" lines.
//
// Values can also be specified on the command line by pushing a preferences
// string onto the command line stack. These values take priority over the
// values on disk.
//
// All the concrete preference types are safe to read from more than one
// goroutine.
package prefs
