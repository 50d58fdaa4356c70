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

// Package rtc emulates the MC146818 real time clock fitted to the BBC Master.
// As well as the time and date the chip has 50 bytes of battery backed RAM,
// which the Master uses to store its configuration settings.
//
// The clock runs at emulated speed. Update() should be called at a regular
// rate and the divisor passed to NewMC146818() decides how many calls make
// one second.
package rtc
