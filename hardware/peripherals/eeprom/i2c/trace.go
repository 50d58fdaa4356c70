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

package i2c

// Trace records the state of the electrical line, whether it is high or low, and also whether the
// immediately previous state is also high or low.
//
// Moving from one state to the other is done with Tick(bool) where a boolean value of true
// indicates a high voltage state.
//
// The function Falling() returns true if the line voltage has moved from a high state to low state;
// and Rising() returns true if the opposite is true. Held() is true if the line has not changed.
//
// Deriving conditions from two traces is convenient. For example, the i2c START condition is:
//
//	if SCL.Hi() && SCL.Held() && SDA.Falling() {
//		start()
//	}
type Trace struct {
	Label string

	// new values are added to the end of the array
	Activity []bool

	from bool
	to   bool
}

const (
	activityLength = 64
)

// NewTrace is the preferred method of initialisation for the Trace type. The
// line starts low.
func NewTrace(label string) Trace {
	return Trace{
		Label:    label,
		Activity: make([]bool, activityLength),
	}
}

// Snapshot creates a copy of the trace.
func (tr *Trace) Snapshot() *Trace {
	cp := *tr
	cp.Activity = make([]bool, len(tr.Activity))
	copy(cp.Activity, tr.Activity)
	return &cp
}

func (tr *Trace) String() string {
	b := make([]byte, len(tr.Activity))
	for i, v := range tr.Activity {
		if v {
			b[i] = '-'
		} else {
			b[i] = '_'
		}
	}
	return string(b)
}

func (tr *Trace) Changed() bool {
	return tr.from != tr.to
}

func (tr *Trace) Held() bool {
	return tr.from == tr.to
}

func (tr *Trace) Falling() bool {
	return tr.from && !tr.to
}

func (tr *Trace) Rising() bool {
	return !tr.from && tr.to
}

func (tr *Trace) Hi() bool {
	return tr.to
}

func (tr *Trace) Lo() bool {
	return !tr.to
}

// Tick moves the line to the new state.
func (tr *Trace) Tick(v bool) {
	tr.from = tr.to
	tr.to = v
	tr.Activity = append(tr.Activity[1:], v)
}
