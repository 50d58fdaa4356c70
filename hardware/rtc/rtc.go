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

package rtc

import (
	"fmt"
	"time"
)

// DefaultDivisor is the divisor to use when Update() is called at 1MHz.
const DefaultDivisor = 1000000

// MC146818 is the state of the real time clock.
type MC146818 struct {
	regs    [NumRegisters]uint8
	address uint8

	divisor int
	counter int

	// called when a write changes the contents of RAM
	OnNVRAMChange func()
}

// NewMC146818 is the preferred method of initialisation for the MC146818
// type. The divisor is the number of calls to Update() that make one second.
func NewMC146818(divisor int) *MC146818 {
	rtc := &MC146818{}
	rtc.SetDivisor(divisor)

	// the format the MOS uses. setting it here means the time will be in the
	// correct format if SetTime() is called before the MOS starts
	rtc.regs[RegB] = RegB24H

	// 5th December 1978 is Acorn's birthday
	rtc.SetTime(time.Date(1978, time.December, 5, 12, 0, 0, 0, time.UTC))

	return rtc
}

func (rtc *MC146818) String() string {
	return fmt.Sprintf("%02d/%02d/%02d %02d:%02d:%02d",
		rtc.get(rtc.regs[DayOfMonth]), rtc.get(rtc.regs[Month]), rtc.get(rtc.regs[Year]),
		rtc.Hours(), rtc.get(rtc.regs[Minutes]), rtc.get(rtc.regs[Seconds]))
}

// Snapshot creates a copy of the RTC in its current state.
func (rtc *MC146818) Snapshot() *MC146818 {
	n := *rtc
	return &n
}

// SetDivisor sets the number of calls to Update() that make one second. A
// value less than one is treated as one.
func (rtc *MC146818) SetDivisor(divisor int) {
	rtc.divisor = max(divisor, 1)
	rtc.counter = min(rtc.counter, rtc.divisor-1)
}

// SetAddress writes to the address register.
func (rtc *MC146818) SetAddress(v uint8) {
	rtc.address = v & (NumRegisters - 1)
}

// Address returns the value of the address register.
func (rtc *MC146818) Address() uint8 {
	return rtc.address
}

// Read the register selected by the address register.
func (rtc *MC146818) Read() uint8 {
	// reading register D sets the valid RAM and time bit
	if rtc.address == RegD {
		rtc.regs[RegD] |= RegDVRT
	}
	return rtc.regs[rtc.address]
}

// Write to the register selected by the address register.
func (rtc *MC146818) Write(v uint8) {
	old := rtc.regs[rtc.address]
	ro := readOnlyMasks[rtc.address]
	rtc.regs[rtc.address] = (old & ro) | (v &^ ro)

	if rtc.address >= FirstRAMByte && rtc.regs[rtc.address] != old {
		if rtc.OnNVRAMChange != nil {
			rtc.OnNVRAMChange()
		}
	}
}

// Register returns the value of a register without side effects.
func (rtc *MC146818) Register(r int) uint8 {
	return rtc.regs[r&(NumRegisters-1)]
}

// NVRAM returns a copy of the battery backed RAM.
func (rtc *MC146818) NVRAM() []uint8 {
	d := make([]uint8, RAMSize)
	copy(d, rtc.regs[FirstRAMByte:])
	return d
}

// SetNVRAM sets the contents of the battery backed RAM. Short data is padded
// with zero and excess data is ignored.
func (rtc *MC146818) SetNVRAM(data []uint8) {
	n := copy(rtc.regs[FirstRAMByte:], data)
	clear(rtc.regs[FirstRAMByte+n:])
}

// value of a time register in the current data mode
func (rtc *MC146818) get(v uint8) int {
	if rtc.regs[RegB]&RegBDM == RegBDM {
		return int(v)
	}

	// invalid BCD digits are treated as 9
	l := min(v&0x0f, 9)
	h := min(v>>4, 9)
	return int(h)*10 + int(l)
}

func (rtc *MC146818) set(r int, v int) {
	if rtc.regs[RegB]&RegBDM == RegBDM {
		rtc.regs[r] = uint8(v)
	} else {
		rtc.regs[r] = uint8(v%10 + (v/10%10)*16)
	}
}

func (rtc *MC146818) setClamped(r int, v int, lo int, hi int) {
	rtc.set(r, min(max(v, lo), hi))
}

// increase the value of a register. returns true if the value wrapped
func (rtc *MC146818) inc(r int, hi int, reset int) bool {
	n := rtc.get(rtc.regs[r]) + 1
	if n > hi {
		rtc.set(r, reset)
		return true
	}
	rtc.set(r, n)
	return false
}

// Hours returns the hour in 24 hour format regardless of the mode of the
// clock.
func (rtc *MC146818) Hours() int {
	if rtc.regs[RegB]&RegB24H == RegB24H {
		return rtc.get(rtc.regs[Hours])
	}

	// 12 hour mode counts 12, 1, 2 ... 11 with the PM flag in bit 7
	h := rtc.get(rtc.regs[Hours]&0x7f) % 12
	if rtc.regs[Hours]&0x80 == 0x80 {
		h += 12
	}
	return h
}

func (rtc *MC146818) setHours(h int) {
	h = min(max(h, 0), 23)

	if rtc.regs[RegB]&RegB24H == RegB24H {
		rtc.set(Hours, h)
		return
	}

	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	rtc.set(Hours, h12)
	if h >= 12 {
		rtc.regs[Hours] |= 0x80
	}
}

func (rtc *MC146818) incHours() bool {
	h := rtc.Hours() + 1
	wrap := h > 23
	if wrap {
		h = 0
	}
	rtc.setHours(h)
	return wrap
}

var daysPerMonth = [2][12]int{
	{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
	{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
}

func (rtc *MC146818) incDay() bool {
	year := rtc.get(rtc.regs[Year])
	month := min(max(rtc.get(rtc.regs[Month])-1, 0), 11)

	leap := 0
	if year&0x03 == 0 {
		leap = 1
	}

	return rtc.inc(DayOfMonth, daysPerMonth[leap][month], 1)
}

// SetTime sets the clock in the current data and hour modes. Only the last
// two digits of the year are stored.
func (rtc *MC146818) SetTime(t time.Time) {
	rtc.setClamped(Year, t.Year()%100, 0, 99)
	rtc.setClamped(Month, int(t.Month()), 1, 12)
	rtc.setClamped(DayOfMonth, t.Day(), 1, 31)
	rtc.setClamped(DayOfWeek, int(t.Weekday())+1, 1, 7)
	rtc.setHours(t.Hour())
	rtc.setClamped(Minutes, t.Minute(), 0, 59)
	rtc.setClamped(Seconds, t.Second(), 0, 59)
}

// Update the clock. One second passes for every divisor calls.
func (rtc *MC146818) Update() {
	if rtc.counter > 0 {
		rtc.counter--
		return
	}
	rtc.counter = rtc.divisor - 1

	// the time is being set
	if rtc.regs[RegB]&RegBSET == RegBSET {
		return
	}

	if !rtc.inc(Seconds, 59, 0) {
		return
	}
	if !rtc.inc(Minutes, 59, 0) {
		return
	}
	if !rtc.incHours() {
		return
	}
	rtc.inc(DayOfWeek, 7, 1)
	if !rtc.incDay() {
		return
	}
	if !rtc.inc(Month, 12, 1) {
		return
	}
	rtc.inc(Year, 99, 0)
}
