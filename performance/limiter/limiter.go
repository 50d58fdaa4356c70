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

// Package limiter keeps a clocked process running at a fixed rate. It is a
// rough and ready method and only any good if the base performance of the
// host is well above the required rate.
//
// A Limiter is created with the rate of the clock it is limiting:
//
//	lmt := limiter.NewLimiter(4000000)
//
// The clocked process then reports its progress with Wait(). For example:
//
//	for {
//		machine.StepInstruction()
//		lmt.Wait(machine.Cycles())
//	}
//
// Wait() sleeps if the process has got ahead of real time. Calls to Wait()
// are relatively expensive and it is sensible to only call it periodically.
package limiter

import (
	"time"
)

// the process must be at least this far ahead of real time before the
// limiter sleeps
const threshold = time.Millisecond

// if the process falls behind by this much the limiter stops trying to catch
// up and starts afresh from the current position
const maxLag = 250 * time.Millisecond

// Limiter keeps a clocked process running at a fixed rate.
type Limiter struct {
	freq float64

	start  time.Time
	cycles uint64
	synced bool

	// the sleep function. replaceable for testing
	sleep func(time.Duration)
	now   func() time.Time
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The freq argument is the rate of the clock in Hz.
func NewLimiter(freq int) *Limiter {
	return &Limiter{
		freq:  float64(freq),
		sleep: time.Sleep,
		now:   time.Now,
	}
}

// Reset the limiter. The next call to Wait() will be the new starting point.
func (lmt *Limiter) Reset() {
	lmt.synced = false
}

// Wait sleeps if the number of cycles is ahead of real time. The cycles
// argument is the total number of clock cycles and must never decrease
// between calls without a call to Reset().
func (lmt *Limiter) Wait(cycles uint64) {
	if !lmt.synced {
		lmt.start = lmt.now()
		lmt.cycles = cycles
		lmt.synced = true
		return
	}

	emulated := time.Duration(float64(cycles-lmt.cycles) / lmt.freq * float64(time.Second))
	ahead := emulated - lmt.now().Sub(lmt.start)

	switch {
	case ahead > threshold:
		lmt.sleep(ahead)
	case ahead < -maxLag:
		lmt.start = lmt.now()
		lmt.cycles = cycles
	}
}
