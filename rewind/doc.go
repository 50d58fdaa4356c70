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

// Package rewind keeps a history of machine states. A snapshot is taken at
// the start of every video frame, as counted by the CRTC, and the machine
// can be returned to any frame in the history.
//
// The Check() function should be called after every CPU instruction. It is
// cheap when no new frame has started.
//
// The number of frames in the history is limited. When the history is full
// the earliest frames are forgotten. Going back to an earlier frame does
// not remove the later frames until the next new frame is recorded, at
// which point the later frames are discarded and the history continues from
// the current frame.
package rewind
