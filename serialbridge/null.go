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

package serialbridge

// Null implements serial.Source and serial.Sink. It never has a byte to send
// and discards every byte it receives.
type Null struct{}

// GetNextByte implements the serial.Source interface.
func (Null) GetNextByte() (uint8, bool) {
	return 0, false
}

// AddByte implements the serial.Sink interface.
func (Null) AddByte(_ uint8) {
}
