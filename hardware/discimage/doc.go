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

// Package discimage defines the interface between disc controllers and the
// disc images they read and write. The MemoryDiscImage type keeps the image
// contents in memory.
//
// A MemoryDiscImage can be cloned cheaply. Clones share the image data until
// one of them is written to, at which point the writer takes a private copy
// of the data. Clones can be used from different goroutines, for example by
// a running emulation and a snapshot of it, but each individual image must
// only be used by one goroutine at a time.
package discimage
