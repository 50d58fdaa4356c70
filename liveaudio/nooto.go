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

//go:build !oto

package liveaudio

import (
	"github.com/jetsetilly/gopherbeeb/curated"
	"github.com/jetsetilly/gopherbeeb/hardware/sound"
)

// LiveAudio implements the hardware.AudioMixer interface.
type LiveAudio struct{}

// New always returns an error when the oto build tag is missing.
func New() (*LiveAudio, error) {
	return nil, curated.Errorf("liveaudio: %v", "not available in this build")
}

// SetAudio implements the hardware.AudioMixer interface.
func (la *LiveAudio) SetAudio(_ sound.Output) {
}

// EndMixing implements the hardware.AudioMixer interface.
func (la *LiveAudio) EndMixing() error {
	return nil
}
