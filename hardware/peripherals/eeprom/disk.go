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

package eeprom

import (
	"os"

	"github.com/jetsetilly/gopherbeeb/logger"
)

// Read EEPROM data from disk. Errors are logged and the data is left
// unchanged.
func (ee *PCD8572) Read(fn string) {
	d, err := os.ReadFile(fn)
	if err != nil {
		logger.Logf(ee.env, "eeprom", "could not load eeprom file: %v", err)
		return
	}

	if len(d) != Size {
		logger.Logf(ee.env, "eeprom", "eeprom file is of incorrect length. %d should be %d", len(d), Size)
	}

	n := copy(ee.Data[:], d)
	clear(ee.Data[n:])

	// copy of data read from disk
	ee.DiskData = ee.Data

	logger.Logf(ee.env, "eeprom", "eeprom file loaded from %s", fn)
}

// Write EEPROM data to disk. Errors are logged.
func (ee *PCD8572) Write(fn string) {
	err := os.WriteFile(fn, ee.Data[:], 0600)
	if err != nil {
		logger.Logf(ee.env, "eeprom", "could not write eeprom file: %v", err)
		return
	}

	logger.Logf(ee.env, "eeprom", "eeprom file saved to %s", fn)

	// copy of data that's just been written to disk
	ee.DiskData = ee.Data
}

// IsSaved returns true if disk data is the same as data
func (ee *PCD8572) IsSaved() bool {
	return ee.Data == ee.DiskData
}
