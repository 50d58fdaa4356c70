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

package preferences

import (
	"sync/atomic"

	"github.com/jetsetilly/gopherbeeb/curated"
	"github.com/jetsetilly/gopherbeeb/hardware/memory/paging"
	"github.com/jetsetilly/gopherbeeb/hardware/rtc"
	"github.com/jetsetilly/gopherbeeb/paths"
	"github.com/jetsetilly/gopherbeeb/prefs"
)

// LivePreferences encapsulates the current (live) values of preferences that
// are checked often by the emulation.
//
// These values should be preferred to the prefs values in Preferences in
// performance critical code. They are updated automatically when the
// corresponding preference changes.
type LivePreferences struct {
	Model      atomic.Value // paging.Model
	Fast6845   atomic.Bool
	RTCDivisor atomic.Int64
}

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// Prefer live values in performance critical code
	Live LivePreferences

	// the model to emulate. one of the strings accepted by paging.ParseModel()
	Model prefs.String

	// whether the sound chip plays a tone on power on. a real machine plays a
	// tone until the MOS silences the sound chip
	PowerOnTone prefs.Bool

	// the 6845 is clocked at 2MHz regardless of the video ULA setting
	Fast6845 prefs.Bool

	// the number of 1MHz cycles that make a second for the RTC
	RTCDivisor prefs.Int

	// name of the file used to save the CMOS RAM of the Master. the file is
	// in the nvram resource directory. an empty string means the RAM is not
	// saved
	NVRAMFile prefs.String

	// initialise RAM to a random state after power on
	RandomState prefs.Bool

	// the number used to seed the random number generator. zero means the
	// generator is seeded with the current time
	RandSeed prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The path argument can be empty, in which case the default
// preferences file in the resource directory is used.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}

	// validate model before it is set and update the live value afterwards
	p.Model.SetHookPre(func(v prefs.Value) error {
		_, err := paging.ParseModel(v.(string))
		return err
	})
	p.Model.SetHookPost(func(v prefs.Value) error {
		m, _ := paging.ParseModel(v.(string))
		p.Live.Model.Store(m)
		return nil
	})
	p.Fast6845.SetHookPost(func(v prefs.Value) error {
		p.Live.Fast6845.Store(v.(bool))
		return nil
	})
	p.RTCDivisor.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return curated.Errorf("preferences: rtc divisor must be positive")
		}
		return nil
	})
	p.RTCDivisor.SetHookPost(func(v prefs.Value) error {
		p.Live.RTCDivisor.Store(int64(v.(int)))
		return nil
	})

	err := p.SetDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path, err = paths.ResourcePath("", prefs.DefaultPrefsFile)
		if err != nil {
			return nil, curated.Errorf("preferences: %v", err)
		}
	}

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	for key, v := range map[string]interface {
		Set(prefs.Value) error
		Get() prefs.Value
		Reset() error
		String() string
	}{
		"hardware.model":       &p.Model,
		"hardware.powerontone": &p.PowerOnTone,
		"hardware.fast6845":    &p.Fast6845,
		"hardware.rtcdivisor":  &p.RTCDivisor,
		"hardware.nvramfile":   &p.NVRAMFile,
		"hardware.randstate":   &p.RandomState,
		"hardware.randseed":    &p.RandSeed,
	} {
		err = p.dsk.Add(key, v)
		if err != nil {
			return nil, curated.Errorf("preferences: %v", err)
		}
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() error {
	for _, err := range []error{
		p.Model.Set(paging.ModelB.String()),
		p.PowerOnTone.Set(true),
		p.Fast6845.Set(false),
		p.RTCDivisor.Set(rtc.DefaultDivisor),
		p.NVRAMFile.Set("master"),
		p.RandomState.Set(false),
		p.RandSeed.Set(0),
	} {
		if err != nil {
			return curated.Errorf("preferences: %v", err)
		}
	}
	return nil
}

// CurrentModel returns the live model value.
func (p *Preferences) CurrentModel() paging.Model {
	return p.Live.Model.Load().(paging.Model)
}

// Load current hardware preference from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
