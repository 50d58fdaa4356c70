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

package sound

import (
	"fmt"
	"strings"
)

// ClockFreq is the frequency in Hz at which Update() should be called on
// the BBC Micro.
const ClockFreq = 250000

// NumChannels is the number of channels in the chip. Channel 3 is the noise
// channel.
const NumChannels = 4

// NoiseChannel is the index of the noise channel.
const NoiseChannel = 3

// Output is the level of each channel after a call to Update(). The value
// is the channel volume (0 is silent, 15 is loudest) when the channel's
// output is high and 0 when it is low.
type Output struct {
	Ch [NumChannels]uint8
}

// the noise rate values that use a fixed period. the fourth rate uses the
// period of tone channel 2
var noisePeriods = [3]uint16{0x10, 0x20, 0x40}

// the noise register bit that selects white noise
const noiseWhite = 0x04

// width of the noise shift register
const lfsrBits = 15

// SN76489 is the state of the sound chip.
type SN76489 struct {
	channels [NumChannels]channel

	// the register selected by the most recent latch byte. bit 0 selects
	// the volume register and bits 1 and 2 the channel
	reg uint8

	// noise control register. the period register of the noise channel is
	// derived from this
	noise uint8

	// linear feedback shift register for the noise channel
	lfsr uint16

	// noise channel output toggles at the period rate and the LFSR is
	// advanced on every other toggle
	noiseToggle bool

	// number of updates before the chip accepts another write
	writeDelay uint8
}

// NewSN76489 is the preferred method of initialisation for the SN76489 type.
// The power-on tone argument is the same as for the Reset() function.
func NewSN76489(tone bool) *SN76489 {
	sn := &SN76489{}
	sn.Reset(tone)
	return sn
}

// Reset the chip. The BBC Micro makes a tone when it is switched on because
// the volume registers power-up at their loudest. If tone is false then the
// chip is reset with all channels silent.
func (sn *SN76489) Reset(tone bool) {
	*sn = SN76489{}

	var vol uint8
	if tone {
		vol = 0x0f
	}

	for i := range sn.channels {
		sn.channels[i] = channel{
			period: 1023,
			vol:    vol,
			high:   true,
		}
	}
	sn.lfsr = 1 << (lfsrBits - 1)
	sn.noiseToggle = true
	sn.updateNoisePeriod()
}

// Snapshot creates a copy of the chip in its current state.
func (sn *SN76489) Snapshot() *SN76489 {
	n := *sn
	return &n
}

func (sn *SN76489) String() string {
	s := strings.Builder{}
	for i := range sn.channels[:NoiseChannel] {
		fmt.Fprintf(&s, "ch%d: %s  ", i, sn.channels[i].String())
	}
	fmt.Fprintf(&s, "noise: %x vol=%d", sn.noise, sn.channels[NoiseChannel].vol)
	return s.String()
}

// Period returns the value of a channel's period register. For the noise
// channel this is the period that results from the noise control register.
func (sn *SN76489) Period(ch int) uint16 {
	return sn.channels[ch&0x03].period
}

// Volume returns the channel's volume, with 15 being the loudest. This is the
// inverse of the attenuation value written to the chip.
func (sn *SN76489) Volume(ch int) uint8 {
	return sn.channels[ch&0x03].vol
}

// Noise returns the value of the noise control register.
func (sn *SN76489) Noise() uint8 {
	return sn.noise
}

// Update the chip by one clock tick. If write is true then value is latched
// into the chip before the channels advance. A write in the update that
// follows an accepted write is lost.
//
// The output of a tone channel is its state before the tick. A tone channel
// with a period of one does not oscillate and its output is held at the
// channel volume.
func (sn *SN76489) Update(write bool, value uint8) Output {
	if write && sn.writeDelay == 0 {
		sn.writeDelay = 2
		sn.write(value)
	}
	if sn.writeDelay > 0 {
		sn.writeDelay--
	}

	var out Output

	for i := range sn.channels[:NoiseChannel] {
		ch := &sn.channels[i]
		if ch.period == 1 {
			out.Ch[i] = ch.vol
			continue
		}
		out.Ch[i] = ch.output()
		ch.tick()
	}

	ch := &sn.channels[NoiseChannel]
	if ch.countdown() {
		sn.noiseToggle = !sn.noiseToggle
		if sn.noiseToggle {
			if sn.noise&noiseWhite == noiseWhite {
				ch.high = sn.nextWhiteNoise()
			} else {
				ch.high = sn.nextPeriodicNoise()
			}
		}

		// noise period is reloaded every time because it may follow the
		// period of tone channel 2
		sn.updateNoisePeriod()
		ch.counter = ch.reload()
	}
	out.Ch[NoiseChannel] = ch.output()

	return out
}

func (sn *SN76489) write(value uint8) {
	// latch byte: %1rrrdddd
	if value&0x80 == 0x80 {
		sn.reg = (value >> 4) & 0x07
		sn.data(value&0x0f, true)
		return
	}

	// data byte: %0xdddddd
	sn.data(value&0x3f, false)
}

func (sn *SN76489) data(v uint8, latch bool) {
	ch := &sn.channels[sn.reg>>1]

	if sn.reg&0x01 == 0x01 {
		ch.vol = (v & 0x0f) ^ 0x0f
		return
	}

	if sn.reg>>1 == NoiseChannel {
		sn.noise = v & 0x07
		sn.lfsr = 1 << (lfsrBits - 1)
		sn.updateNoisePeriod()
		return
	}

	if latch {
		ch.period = (ch.period &^ 0x0f) | uint16(v)
	} else {
		ch.period = (ch.period & 0x0f) | uint16(v&0x3f)<<4
	}

	if sn.reg>>1 == 2 {
		sn.updateNoisePeriod()
	}
}

func (sn *SN76489) updateNoisePeriod() {
	r := sn.noise & 0x03
	if r == 0x03 {
		sn.channels[NoiseChannel].period = sn.channels[2].period
	} else {
		sn.channels[NoiseChannel].period = noisePeriods[r]
	}
}

// white noise is a 15 bit LFSR with taps at bits 0 and 1
func (sn *SN76489) nextWhiteNoise() bool {
	feed := (sn.lfsr ^ sn.lfsr>>1) & 0x01
	sn.lfsr = (sn.lfsr&0x7fff)>>1 | feed<<(lfsrBits-1)
	return sn.lfsr&0x01 == 0x00
}

// periodic noise rotates the single set bit through the shift register
func (sn *SN76489) nextPeriodicNoise() bool {
	b := sn.lfsr & 0x01
	sn.lfsr = (sn.lfsr>>1 | sn.lfsr<<(lfsrBits-1)) & 0x7fff
	return b == 0x01
}
