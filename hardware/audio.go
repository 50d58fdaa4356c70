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

package hardware

import "github.com/jetsetilly/gopherbeeb/hardware/sound"

// AudioMixer implementations receive the output of the sound chip. SetAudio()
// is called at sound.ClockFreq.
type AudioMixer interface {
	SetAudio(sound.Output)

	// EndMixing is called when the emulation ends. Buffered samples should
	// be flushed
	EndMixing() error
}

// AddAudioMixer adds a mixer to the list of mixers receiving sound output.
func (m *Machine) AddAudioMixer(mx AudioMixer) {
	m.mixers = append(m.mixers, mx)
}

// RemoveAudioMixer removes a mixer from the list. EndMixing() is not
// called.
func (m *Machine) RemoveAudioMixer(mx AudioMixer) {
	for i, a := range m.mixers {
		if a == mx {
			m.mixers = append(m.mixers[:i], m.mixers[i+1:]...)
			return
		}
	}
}
