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

// Package sound emulates the SN76489 programmable sound generator. The chip
// has three square wave tone channels and one noise channel. Each channel
// has a four bit attenuation register, and the tone channels a ten bit
// period register.
//
// The chip is advanced with the Update() function, once per tick of the
// chip's clock. On the BBC Micro that is 250kHz. A write to the chip's data
// port is passed to Update() and is latched before the channels advance.
//
// The Output value returned by Update() gives the level of each channel.
// The Mix() function combines the channels into a single sample suitable
// for writing to an audio device or file.
package sound
