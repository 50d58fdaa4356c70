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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopherbeeb/hardware/sound"
	"github.com/jetsetilly/gopherbeeb/test"
	"github.com/jetsetilly/gopherbeeb/wavwriter"
)

func TestWrite(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.wav")

	aw, err := wavwriter.New(fn)
	test.DemandSuccess(t, err)

	// a square wave on one channel
	for i := range 8000 {
		var o sound.Output
		if (i/64)%2 == 0 {
			o.Ch[0] = 15
		}
		aw.SetAudio(o)
	}
	test.ExpectEquality(t, aw.Samples(), 1000)
	test.ExpectSuccess(t, aw.EndMixing())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.ExpectSuccess(t, dec.IsValidFile())
	test.ExpectEquality(t, dec.SampleRate, uint32(sound.SampleFreq))
	test.ExpectEquality(t, dec.NumChans, uint16(1))
	test.ExpectEquality(t, dec.BitDepth, uint16(16))

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(buf.Data), 1000)

	// first samples are high and the wave goes low after 8 samples
	test.ExpectInequality(t, buf.Data[0], 0)
	test.ExpectEquality(t, buf.Data[8], 0)
}

func TestNoFilename(t *testing.T) {
	_, err := wavwriter.New("")
	test.ExpectFailure(t, err)
}
