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

// Package liveaudio plays the output of the sound chip through the host's
// audio device. Playback uses the oto library and is only available when the
// oto build tag is present. Without the tag New() returns an error.
//
// The emulation writes samples with SetAudio() and oto reads them from its
// own goroutine. The two meet in a ring buffer. If the emulation runs slower
// than real time the ring runs empty and silence is played. If it runs faster
// the oldest samples are dropped.
package liveaudio
