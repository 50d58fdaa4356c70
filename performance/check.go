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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopherbeeb/curated"
	"github.com/jetsetilly/gopherbeeb/govern"
	"github.com/jetsetilly/gopherbeeb/hardware"
)

// sentinel error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// the time given for the emulation to settle before measurement starts
const leadTime = time.Second

// Check the performance of the emulator by running the machine for the
// duration, as quickly as possible.
//
// The emulation will create a cpu profile, a memory profile, a trace (or a
// combination of those) as defined by the Profile argument.
func Check(output io.Writer, profile Profile, m *hardware.Machine, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	var startCycles uint64
	var start time.Time

	runner := func() error {
		// the timer channel signals false when the lead time has elapsed and
		// true when the measurement period has finished
		timerChan := make(chan bool, 1)
		time.AfterFunc(leadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		// only check for the end of measurement period every
		// PerformanceBrake CPU instructions
		performanceBrake := 0

		return m.Run(func() (govern.State, error) {
			performanceBrake++
			if performanceBrake < hardware.PerformanceBrake {
				return govern.Running, nil
			}
			performanceBrake = 0

			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, timedOut
				}
				startCycles = m.Cycles()
				start = time.Now()
			default:
			}

			return govern.Running, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	cycles := m.Cycles() - startCycles
	secs := time.Since(start).Seconds()
	mhz, accuracy := CalcSpeed(cycles, secs)
	fmt.Fprintf(output, "%.2f MHz (%d cycles in %.2f seconds) %.1f%%\n", mhz, cycles, secs, accuracy)

	return nil
}
