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

package liveaudio

import (
	"encoding/binary"
	"math"
	"sync"
)

// ring is a fixed size buffer of samples shared between the emulation and
// the audio device.
type ring struct {
	crit sync.Mutex
	data []float32

	// read and write positions. count is the number of unread samples
	r, w  int
	count int
}

func newRing(size int) *ring {
	return &ring{
		data: make([]float32, size),
	}
}

// write a sample. the oldest sample is overwritten if the ring is full
func (rg *ring) write(v float32) {
	rg.crit.Lock()
	defer rg.crit.Unlock()

	rg.data[rg.w] = v
	rg.w = (rg.w + 1) % len(rg.data)
	if rg.count == len(rg.data) {
		rg.r = rg.w
	} else {
		rg.count++
	}
}

// Read implements io.Reader. Samples are written as 32bit little endian
// floats. Missing samples are written as silence so the buffer is always
// filled.
func (rg *ring) Read(p []byte) (int, error) {
	rg.crit.Lock()
	defer rg.crit.Unlock()

	n := len(p) / 4
	for i := range n {
		var v float32
		if rg.count > 0 {
			v = rg.data[rg.r]
			rg.r = (rg.r + 1) % len(rg.data)
			rg.count--
		}
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(v))
	}

	return n * 4, nil
}
