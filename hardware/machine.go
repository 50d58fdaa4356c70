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
	"fmt"

	"github.com/jetsetilly/gopherbeeb/curated"
	"github.com/jetsetilly/gopherbeeb/environment"
	"github.com/jetsetilly/gopherbeeb/hardware/cpu"
	"github.com/jetsetilly/gopherbeeb/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherbeeb/hardware/crtc"
	"github.com/jetsetilly/gopherbeeb/hardware/memory"
	"github.com/jetsetilly/gopherbeeb/hardware/memory/paging"
	"github.com/jetsetilly/gopherbeeb/hardware/peripherals/eeprom"
	"github.com/jetsetilly/gopherbeeb/hardware/preferences"
	"github.com/jetsetilly/gopherbeeb/hardware/rtc"
	"github.com/jetsetilly/gopherbeeb/hardware/serial"
	"github.com/jetsetilly/gopherbeeb/hardware/sound"
	"github.com/jetsetilly/gopherbeeb/logger"
)

// The devices that can assert the IRQ line. Each device has its own bit in
// the CPU's device mask.
const (
	IRQACIA uint8 = 0x01
)

// Sentinel errors returned by the Machine.
const (
	IOAddress = "hardware: %04x is an I/O address"
	NoMemory  = "hardware: no memory at %04x"
)

// Machine is the main container for the emulated components of the BBC
// Micro.
type Machine struct {
	Env   *environment.Environment
	Model paging.Model

	CPU    *cpu.CPU
	Paging *paging.Paging
	Mem    *memory.Memory

	CRTC    *crtc.CRTC
	Sound   *sound.SN76489
	ACIA    *serial.ACIA
	SERPROC *serial.SERPROC

	// the real time clock and EEPROM are only present on the Master. nil
	// for other models
	RTC    *rtc.MC146818
	EEPROM *eeprom.PCD8572

	// the SHEILA handlers for the model and the offsets that are accessed
	// at 1MHz
	sheila *[256]handler
	oneMHz *[256]bool

	// the state of the machine that is not part of any component
	clocks clocks

	// serial devices attached to the SERPROC
	source serial.Source
	sink   serial.Sink

	// sound output
	mixers []AudioMixer

	// the RTC RAM has changed since it was last saved
	nvramDirty bool
}

// clocks is the timing state of the machine. It is a separate type so that
// it can be copied as part of a snapshot.
type clocks struct {
	// number of 4MHz cycles since power on
	cycles uint64

	// the CPU access in progress is to a 1MHz device and is waiting for the
	// 1MHz clock
	stretch bool
	loc     paging.Location

	// number of CPU cycles that have been stretched
	stretched uint64

	// video ULA registers
	videoControl uint8
	palette      [16]uint8

	// the value written to the sound chip. the chip sees the write on its
	// next update
	soundLatch   uint8
	soundPending bool

	// fraction of a SERPROC clock accumulated from the 4MHz clock
	serprocAccumulator int

	// the RTC divisor currently in effect
	rtcDivisor int

	// the most recent output of the CRTC and the number of times it has
	// been clocked
	crtcOutput crtc.Output
	crtcTicks  uint64

	// the clock and data lines as last written to the i2c port
	i2cLatch uint8
}

// NewMachine creates a new Machine and everything associated with the
// hardware. The model is taken from the preferences. It is used for all
// aspects of emulation: monitor sessions and regular runs.
//
// The prefs argument can be nil, in which case the default preferences file
// is used.
func NewMachine(label environment.Label, prefs *preferences.Preferences) (*Machine, error) {
	var err error

	m := &Machine{}

	m.Env, err = environment.NewEnvironment(label, m, prefs)
	if err != nil {
		return nil, err
	}

	m.Model = m.Env.Prefs.CurrentModel()

	var variant instructions.Variant
	switch m.Model {
	case paging.ModelB, paging.ModelBPlus:
		variant = instructions.NMOS
	case paging.ModelMaster:
		variant = instructions.CMOS
	default:
		return nil, curated.Errorf("hardware: unsupported model (%v)", m.Model)
	}

	m.CPU = cpu.NewCPU(cpu.NewConfig(variant))
	m.Paging = paging.NewPaging(m.Model)
	m.Mem = memory.NewMemory(m.Env, m.Model)
	m.CRTC = crtc.NewCRTC()
	m.Sound = sound.NewSN76489(m.Env.Prefs.PowerOnTone.Get().(bool))
	m.ACIA = serial.NewACIA()
	m.SERPROC = serial.NewSERPROC(m.ACIA)

	switch m.Model {
	case paging.ModelB:
		m.sheila = &sheilaB
		m.oneMHz = &oneMHzB
	case paging.ModelBPlus:
		m.sheila = &sheilaBPlus
		m.oneMHz = &oneMHzB
	case paging.ModelMaster:
		m.sheila = &sheilaMaster
		m.oneMHz = &oneMHzMaster
		m.RTC = rtc.NewMC146818(int(m.Env.Prefs.Live.RTCDivisor.Load()))
		m.RTC.OnNVRAMChange = m.onNVRAMChange
		m.EEPROM = eeprom.NewPCD8572(m.Env)
	}

	m.Reset()

	return m, nil
}

func (m *Machine) String() string {
	return fmt.Sprintf("%s\n%s\n%s", m.Mem, m.Paging, m.CPU)
}

// Cycles returns the number of 4MHz cycles since the machine was created.
// Implements the random.Clock interface.
func (m *Machine) Cycles() uint64 {
	return m.clocks.cycles
}

// Stretched returns the number of CPU cycles that have been stretched by an
// access to a 1MHz device.
func (m *Machine) Stretched() uint64 {
	return m.clocks.stretched
}

// CRTCTicks returns the number of times the CRTC has been clocked. Unlike
// the CRTC's own update count it is not reset at vertical sync.
func (m *Machine) CRTCTicks() uint64 {
	return m.clocks.crtcTicks
}

// CRTCOutput returns the most recent output of the CRTC.
func (m *Machine) CRTCOutput() crtc.Output {
	return m.clocks.crtcOutput
}

// VideoControl returns the value last written to the video ULA control
// register.
func (m *Machine) VideoControl() uint8 {
	return m.clocks.videoControl
}

// Reset emulates a power on reset. RAM is cleared (or randomised, depending
// on the preferences) and every component is returned to its initial state.
// Sideways ROMs and the MOS are unchanged.
func (m *Machine) Reset() {
	m.Mem.Reset()
	m.Paging.Reset()
	m.CRTC.Reset()
	m.Sound.Reset(m.Env.Prefs.PowerOnTone.Get().(bool))
	m.ACIA.Reset()
	m.SERPROC.Write(0)
	if m.EEPROM != nil {
		m.EEPROM.Reset()
	}

	cycles := m.clocks.cycles
	m.clocks = clocks{cycles: cycles}
	m.clocks.rtcDivisor = int(m.Env.Prefs.Live.RTCDivisor.Load())
	if m.RTC != nil {
		m.RTC.SetDivisor(m.clocks.rtcDivisor)
	}

	m.CPU.SetDeviceIRQ(0xff, false)
	m.CPU.Reset()

	logger.Logf(m.Env, "hardware", "%s reset", m.Model)
}

// Break emulates the BREAK key. Only the CPU is reset. Memory and the state
// of the peripherals are unchanged.
func (m *Machine) Break() {
	m.clocks.stretch = false
	m.CPU.Reset()
}

// LoadMOS loads the MOS ROM image. The CPU is reset so that it starts from
// the reset vector of the new MOS.
func (m *Machine) LoadMOS(data []uint8) error {
	if err := m.Mem.LoadMOS(data); err != nil {
		return curated.Errorf("hardware: %v", err)
	}
	m.CPU.Reset()
	return nil
}

// LoadSidewaysROM loads a ROM image into a sideways bank. The image must be
// 8K or 16K. An 8K image appears twice in the bank.
func (m *Machine) LoadSidewaysROM(bank int, data []uint8) error {
	if err := m.Mem.LoadSidewaysROM(bank, data); err != nil {
		return curated.Errorf("hardware: %v", err)
	}
	return nil
}

// AttachSerial connects a source and sink to the serial port. Either may be
// nil.
func (m *Machine) AttachSerial(source serial.Source, sink serial.Sink) {
	m.source = source
	m.sink = sink
	m.SERPROC.Attach(source, sink)
}

// Peek returns the value at the address as seen by the CPU, without side
// effects. Returns an error for I/O addresses.
func (m *Machine) Peek(address uint16) (uint8, error) {
	loc := m.Paging.Resolve(m.CPU.OpcodePC(), address)
	if loc.IO {
		return 0, curated.Errorf(IOAddress, address)
	}
	if m.Mem.Page(loc.Page) == nil {
		return 0, curated.Errorf(NoMemory, address)
	}
	return m.Mem.Read(loc), nil
}

// Poke writes the value at the address as seen by the CPU. ROM can be
// written to with Poke(). Returns an error for I/O addresses.
func (m *Machine) Poke(address uint16, value uint8) error {
	loc := m.Paging.Resolve(m.CPU.OpcodePC(), address)
	if loc.IO {
		return curated.Errorf(IOAddress, address)
	}
	if !m.Mem.Poke(loc, value) {
		return curated.Errorf(NoMemory, address)
	}
	return nil
}

// End should be called when the emulation is finished with. Audio mixers
// are told to stop mixing and the NVRAM is saved.
func (m *Machine) End() error {
	var err error
	for _, mx := range m.mixers {
		if e := mx.EndMixing(); e != nil && err == nil {
			err = e
		}
	}
	m.SaveNVRAM()
	return err
}
