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

// Register addresses.
const (
	Seconds = iota
	SecondsAlarm
	Minutes
	MinutesAlarm
	Hours
	HoursAlarm
	DayOfWeek
	DayOfMonth
	Month
	Year
	RegA
	RegB
	RegC
	RegD
	FirstRAMByte
)

// NumRegisters is the size of the register file, including the RAM.
const NumRegisters = 64

// RAMSize is the number of bytes of battery backed RAM.
const RAMSize = NumRegisters - FirstRAMByte

// Register B bits.
const (
	RegBDSE  = 0x01
	RegB24H  = 0x02
	RegBDM   = 0x04
	RegBSQWE = 0x08
	RegBUIE  = 0x10
	RegBAIE  = 0x20
	RegBPIE  = 0x40
	RegBSET  = 0x80
)

// RegDVRT is the valid RAM and time bit of register D.
const RegDVRT = 0x80

// bits of each register that can not be changed by writing
var readOnlyMasks [NumRegisters]uint8

func init() {
	readOnlyMasks[RegA] = 0x80
	readOnlyMasks[RegC] = 0xff
	readOnlyMasks[RegD] = 0xff
}

var registerNames = [FirstRAMByte]string{
	"Seconds", "Seconds Alarm", "Minutes", "Minutes Alarm", "Hours",
	"Hours Alarm", "Day of Week", "Day of Month", "Month", "Year",
	"A", "B", "C", "D",
}

// RegisterName returns the name of a register.
func RegisterName(r int) string {
	if r < 0 || r >= NumRegisters {
		return "invalid"
	}
	if r >= FirstRAMByte {
		return "RAM"
	}
	return registerNames[r]
}
