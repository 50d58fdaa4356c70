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

package rewind

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherbeeb/hardware"
)

// the maximum number of entries to store before the earliest entries are
// forgotten
const maxEntries = 100

// entry is a single snapshot in the history
type entry struct {
	frame int
	state *hardware.State
}

// Rewind contains a history of machine states for the emulation.
type Rewind struct {
	machine *hardware.Machine

	// circular array of snapshotted entries. start is the earliest entry and
	// end is the position after the most recent entry. the array is empty
	// when count is zero
	entries [maxEntries]entry
	start   int
	count   int

	// the position of the most recently plumbed or appended entry
	curr int

	// the frame number of the CRTC at the most recent call to Check()
	lastFrame int
}

// NewRewind is the preferred method of initialisation for the Rewind type.
func NewRewind(machine *hardware.Machine) *Rewind {
	r := &Rewind{
		machine: machine,
	}
	r.Reset()
	return r
}

func (r *Rewind) String() string {
	if r.count == 0 {
		return "no rewind history"
	}
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("frames %d to %d", r.entries[r.start].frame, r.entries[r.idx(r.count-1)].frame))
	s.WriteString(fmt.Sprintf(" (current %d)", r.entries[r.curr].frame))
	return s.String()
}

// the index into the entries array of the nth entry in the history
func (r *Rewind) idx(n int) int {
	return (r.start + n) % maxEntries
}

// Reset removes all entries and takes a snapshot of the current state. This
// should be called whenever the machine is reset.
func (r *Rewind) Reset() {
	r.start = 0
	r.count = 0
	r.lastFrame = r.machine.CRTC.Frames()
	r.append()
}

// Check whether a new frame has started and take a snapshot if it has.
func (r *Rewind) Check() {
	f := r.machine.CRTC.Frames()
	if f == r.lastFrame {
		return
	}
	r.lastFrame = f
	r.append()
}

func (r *Rewind) append() {
	// forget any entries after the current entry. these are entries that
	// have been rewound past
	if r.count > 0 {
		n := (r.curr - r.start + maxEntries) % maxEntries
		r.count = n + 1
	}

	if r.count == maxEntries {
		r.start = (r.start + 1) % maxEntries
		r.count--
	}

	r.curr = r.idx(r.count)
	r.entries[r.curr] = entry{
		frame: r.machine.CRTC.Frames(),
		state: r.machine.Snapshot(),
	}
	r.count++
}

// Timeline returns the earliest and latest frame numbers in the history.
func (r *Rewind) Timeline() (int, int) {
	return r.entries[r.start].frame, r.entries[r.idx(r.count-1)].frame
}

// Current returns the frame number of the most recently recorded or restored
// entry.
func (r *Rewind) Current() int {
	return r.entries[r.curr].frame
}

// GotoFrame restores the machine to the start of the frame. If the frame is
// earlier than the history then the earliest frame is restored and if it is
// later then the most recent frame is restored. Returns the frame number
// that was restored.
func (r *Rewind) GotoFrame(frame int) int {
	n := 0
	for i := range r.count {
		if r.entries[r.idx(i)].frame > frame {
			break
		}
		n = i
	}

	r.curr = r.idx(n)
	r.machine.Plumb(r.entries[r.curr].state)
	r.lastFrame = r.entries[r.curr].frame

	return r.lastFrame
}

// Back restores the machine to the start of the frame n frames before the
// current frame.
func (r *Rewind) Back(n int) int {
	return r.GotoFrame(r.machine.CRTC.Frames() - n)
}
