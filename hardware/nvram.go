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

package hardware

import (
	"os"

	"github.com/jetsetilly/gopherbeeb/logger"
	"github.com/jetsetilly/gopherbeeb/paths"
)

// the battery backed memory of the Master is saved in the nvram resource
// directory. the name of the file comes from the NVRAMFile preference
const (
	nvramPath        = "nvram"
	rtcExtension     = ".cmos"
	eepromExtension  = ".eeprom"
	nvramPermissions = 0600
)

func (m *Machine) onNVRAMChange() {
	m.nvramDirty = true
}

// NVRAMDirty returns true if the CMOS RAM has changed since it was last
// loaded or saved.
func (m *Machine) NVRAMDirty() bool {
	return m.nvramDirty || (m.EEPROM != nil && !m.EEPROM.IsSaved())
}

// the base filename for the NVRAM files. returns false if NVRAM is not
// saved
func (m *Machine) nvramFilename() (string, bool) {
	if m.RTC == nil {
		return "", false
	}

	fn := m.Env.Prefs.NVRAMFile.Get().(string)
	if fn == "" {
		return "", false
	}

	pth, err := paths.ResourcePath(nvramPath, fn)
	if err != nil {
		logger.Logf(m.Env, "nvram", "%v", err)
		return "", false
	}

	return pth, true
}

// LoadNVRAM loads the contents of the CMOS RAM and the EEPROM. Errors are
// logged and leave the contents unchanged. Does nothing for models without
// NVRAM.
func (m *Machine) LoadNVRAM() {
	fn, ok := m.nvramFilename()
	if !ok {
		return
	}

	d, err := os.ReadFile(fn + rtcExtension)
	if err != nil {
		logger.Logf(m.Env, "nvram", "could not load cmos file: %v", err)
	} else {
		m.RTC.SetNVRAM(d)
		m.nvramDirty = false
		logger.Logf(m.Env, "nvram", "cmos file loaded from %s", fn+rtcExtension)
	}

	m.EEPROM.Read(fn + eepromExtension)
}

// SaveNVRAM saves the contents of the CMOS RAM and the EEPROM if they have
// changed. Errors are logged. Does nothing for models without NVRAM.
func (m *Machine) SaveNVRAM() {
	fn, ok := m.nvramFilename()
	if !ok {
		return
	}

	if m.nvramDirty {
		err := os.WriteFile(fn+rtcExtension, m.RTC.NVRAM(), nvramPermissions)
		if err != nil {
			logger.Logf(m.Env, "nvram", "could not write cmos file: %v", err)
		} else {
			m.nvramDirty = false
			logger.Logf(m.Env, "nvram", "cmos file saved to %s", fn+rtcExtension)
		}
	}

	if !m.EEPROM.IsSaved() {
		m.EEPROM.Write(fn + eepromExtension)
	}
}
