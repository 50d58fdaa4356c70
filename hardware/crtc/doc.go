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

// Package crtc emulates the 6845 CRT controller. The CRTC generates the
// display timing for the BBC Micro: horizontal and vertical sync, the
// display enable signal, the cursor, and the memory address and raster line
// that the video hardware fetches from.
//
// The CRTC is advanced one character at a time with the Update() function.
// On the BBC Micro this is at 1MHz or 2MHz depending on the screen mode.
// Update() returns an Output value that the video hardware consumes.
//
// Frame timing follows the register values directly. A frame with no
// vertical adjustment (R5) and no interlace lasts exactly
// (R0+1)*(R4+1)*(R9+1) updates.
package crtc
