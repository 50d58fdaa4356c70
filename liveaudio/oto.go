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

//go:build oto

package liveaudio

import (
	"github.com/ebitengine/oto/v3"
	"github.com/jetsetilly/gopherbeeb/curated"
	"github.com/jetsetilly/gopherbeeb/hardware/sound"
)

// a quarter of a second of audio
const ringSize = sound.SampleFreq / 4

// LiveAudio implements the hardware.AudioMixer interface.
type LiveAudio struct {
	ctx       *oto.Context
	player    *oto.Player
	ring      *ring
	resampler sound.Resampler
}

// New is the preferred method of initialisation for the LiveAudio type.
// Playback starts immediately.
func New() (*LiveAudio, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sound.SampleFreq,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, curated.Errorf("liveaudio: %v", err)
	}
	<-ready

	la := &LiveAudio{
		ctx:  ctx,
		ring: newRing(ringSize),
	}
	la.player = ctx.NewPlayer(la.ring)
	la.player.Play()

	return la, nil
}

// SetAudio implements the hardware.AudioMixer interface.
func (la *LiveAudio) SetAudio(o sound.Output) {
	if v, ok := la.resampler.Push(o); ok {
		la.ring.write(v)
	}
}

// EndMixing implements the hardware.AudioMixer interface.
func (la *LiveAudio) EndMixing() error {
	if err := la.player.Close(); err != nil {
		return curated.Errorf("liveaudio: %v", err)
	}
	return nil
}
