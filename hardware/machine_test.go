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

package hardware_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherbeeb/curated"
	"github.com/jetsetilly/gopherbeeb/govern"
	"github.com/jetsetilly/gopherbeeb/hardware"
	"github.com/jetsetilly/gopherbeeb/hardware/memory"
	"github.com/jetsetilly/gopherbeeb/hardware/preferences"
	"github.com/jetsetilly/gopherbeeb/hardware/serial"
	"github.com/jetsetilly/gopherbeeb/hardware/sound"
	"github.com/jetsetilly/gopherbeeb/test"
)

const testLabel = "test"

// newPrefs returns preferences stored in a temporary directory with NVRAM
// saving turned off
func newPrefs(t *testing.T, model string) *preferences.Preferences {
	t.Helper()
	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.Model.Set(model))
	test.DemandSuccess(t, p.NVRAMFile.Set(""))
	test.DemandSuccess(t, p.PowerOnTone.Set(false))
	return p
}

// newMachine creates a machine with a MOS containing the program. the
// program starts at $C000 and the reset vector points to it
func newMachine(t *testing.T, model string, program []uint8) *hardware.Machine {
	t.Helper()
	return newMachineWithPrefs(t, newPrefs(t, model), program)
}

func newMachineWithPrefs(t *testing.T, p *preferences.Preferences, program []uint8) *hardware.Machine {
	t.Helper()

	m, err := hardware.NewMachine(testLabel, p)
	test.DemandSuccess(t, err)

	mos := make([]uint8, memory.ROMSize)
	copy(mos, program)
	mos[0x3ffc] = 0x00
	mos[0x3ffd] = 0xc0
	test.DemandSuccess(t, m.LoadMOS(mos))

	// run the reset sequence
	for range 20 {
		m.StepInstruction()
		if m.CPU.OpcodePC() == 0xc000 {
			return m
		}
	}
	t.Fatalf("reset vector not followed")
	return nil
}

// the instructions used by the test programs
func lda(v uint8) []uint8      { return []uint8{0xa9, v} }
func ldaAbs(a uint16) []uint8  { return []uint8{0xad, uint8(a), uint8(a >> 8)} }
func sta(a uint16) []uint8     { return []uint8{0x8d, uint8(a), uint8(a >> 8)} }
func nop() []uint8             { return []uint8{0xea} }
func jmpSelf(a uint16) []uint8 { return []uint8{0x4c, uint8(a), uint8(a >> 8)} }

// join instructions into a program that ends with an infinite loop
func program(ins ...[]uint8) []uint8 {
	var p []uint8
	for _, i := range ins {
		p = append(p, i...)
	}
	return append(p, jmpSelf(0xc000+uint16(len(p)))...)
}

func TestNewMachine(t *testing.T) {
	m := newMachine(t, "B", program(nop()))
	test.ExpectEquality(t, m.RTC == nil, true)
	test.ExpectEquality(t, m.EEPROM == nil, true)

	m = newMachine(t, "Master", program(nop()))
	test.ExpectEquality(t, m.RTC == nil, false)
	test.ExpectEquality(t, m.EEPROM == nil, false)

	p := newPrefs(t, "B")
	_, err := hardware.NewMachine(testLabel, p)
	test.ExpectSuccess(t, err)

	test.ExpectFailure(t, p.Model.Set("Electron"))
}

func TestStore(t *testing.T) {
	m := newMachine(t, "B", program(lda(0x42), sta(0x2000)))
	m.StepCycles(1000)

	v, err := m.Peek(0x2000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x42))
}

func TestInstructionTiming(t *testing.T) {
	m := newMachine(t, "B", program(nop(), nop(), ldaAbs(0x2000), ldaAbs(0xfe00), ldaAbs(0xfe30)))

	timing := func() (uint64, uint64) {
		c := m.Cycles()
		s := m.Stretched()
		m.StepInstruction()
		return m.Cycles() - c, m.Stretched() - s
	}

	// NOP is two CPU cycles at 2MHz
	c, s := timing()
	test.ExpectEquality(t, c, uint64(4))
	test.ExpectEquality(t, s, uint64(0))
	c, _ = timing()
	test.ExpectEquality(t, c, uint64(4))

	// LDA absolute is four CPU cycles
	c, s = timing()
	test.ExpectEquality(t, c, uint64(8))
	test.ExpectEquality(t, s, uint64(0))

	// the CRTC is a 1MHz device. the read is stretched by one or two 2MHz
	// cycles depending on the phase of the 1MHz clock
	c, s = timing()
	test.ExpectSuccess(t, s == 1 || s == 2)
	test.ExpectEquality(t, c, 8+2*s)

	// ROMSEL is a 2MHz device
	c, s = timing()
	test.ExpectEquality(t, c, uint64(8))
	test.ExpectEquality(t, s, uint64(0))
}

func TestStretchRegions(t *testing.T) {
	offsets := []uint8{0x00, 0x20, 0x28, 0x30, 0x40, 0x60, 0x80, 0xc0, 0xe0}

	var ins [][]uint8
	for _, o := range offsets {
		ins = append(ins, ldaAbs(0xfe00|uint16(o)))
	}

	expected := map[string][]bool{
		"B":      {true, false, false, false, true, true, false, true, false},
		"B+":     {true, false, false, false, true, true, false, true, false},
		"Master": {true, false, true, false, true, true, false, false, false},
	}

	for model, stretched := range expected {
		m := newMachine(t, model, program(ins...))
		for i, o := range offsets {
			s := m.Stretched()
			m.StepInstruction()
			test.ExpectEquality(t, m.Stretched() > s, stretched[i], model, fmt.Sprintf("&FE%02X", o))
		}
	}
}

func TestSidewaysROM(t *testing.T) {
	m := newMachine(t, "B", program(lda(0x05), sta(0xfe30), ldaAbs(0x8000), sta(0x2000)))

	rom := make([]uint8, memory.ROMSize)
	rom[0] = 0x77
	test.DemandSuccess(t, m.LoadSidewaysROM(5, rom))

	err := m.LoadSidewaysROM(5, make([]uint8, 100))
	test.ExpectSuccess(t, curated.Has(err, memory.InvalidROMSize))

	m.StepCycles(1000)
	test.ExpectEquality(t, m.Paging.ROMSEL(), uint8(0x05))
	v, _ := m.Peek(0x2000)
	test.ExpectEquality(t, v, uint8(0x77))
}

func TestUnmapped(t *testing.T) {
	// ACCCON does not exist on the model B
	m := newMachine(t, "B", program(lda(0x00), sta(0x2000), ldaAbs(0xfe34), sta(0x2000)))
	m.StepCycles(1000)
	v, _ := m.Peek(0x2000)
	test.ExpectEquality(t, v, uint8(0xff))

	// but it does on the B+
	m = newMachine(t, "B+", program(lda(0x80), sta(0xfe34), ldaAbs(0xfe34), sta(0x2000)))
	m.StepCycles(1000)
	v, _ = m.Peek(0x2000)
	test.ExpectEquality(t, v, uint8(0x80))
}

func TestPeekPoke(t *testing.T) {
	m := newMachine(t, "B", program(nop()))

	_, err := m.Peek(0xfe00)
	test.ExpectSuccess(t, curated.Is(err, hardware.IOAddress))
	err = m.Poke(0xfc00, 0x00)
	test.ExpectSuccess(t, curated.Is(err, hardware.IOAddress))

	test.ExpectSuccess(t, m.Poke(0x3000, 0x12))
	v, err := m.Peek(0x3000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x12))

	// ROM can be poked
	test.ExpectSuccess(t, m.Poke(0xc000, 0x60))
	v, _ = m.Peek(0xc000)
	test.ExpectEquality(t, v, uint8(0x60))
}

func TestCRTCRegisters(t *testing.T) {
	m := newMachine(t, "B", program(lda(0x00), sta(0xfe00), lda(0x3f), sta(0xfe01)))
	m.StepCycles(1000)
	test.ExpectEquality(t, m.CRTC.Registers()[0], uint8(0x3f))
}

type mixer struct {
	samples int
	last    sound.Output
	ended   bool
}

func (mx *mixer) SetAudio(o sound.Output) {
	mx.samples++
	mx.last = o
}

func (mx *mixer) EndMixing() error {
	mx.ended = true
	return nil
}

func TestSound(t *testing.T) {
	// latch channel 0 attenuation to zero (loudest)
	m := newMachine(t, "B", program(lda(0x90), sta(0xfe40)))
	test.ExpectEquality(t, m.Sound.Volume(0), uint8(0))

	mx := &mixer{}
	m.AddAudioMixer(mx)

	// the sound chip runs at 250kHz
	m.StepCycles(4000000 / sound.ClockFreq * 1000)
	test.ExpectEquality(t, mx.samples, 1000)
	test.ExpectEquality(t, m.Sound.Volume(0), uint8(15))

	test.ExpectSuccess(t, m.End())
	test.ExpectSuccess(t, mx.ended)

	m.RemoveAudioMixer(mx)
	m.StepCycles(1000)
	test.ExpectEquality(t, mx.samples, 1000)
}

type sink struct {
	data []uint8
}

func (s *sink) AddByte(b uint8) {
	s.data = append(s.data, b)
}

func TestSerialTransmit(t *testing.T) {
	m := newMachine(t, "B", program(
		lda(serial.Divide64|5<<2|serial.TxRTSLow), sta(0xfe08),
		lda(serial.SERPROCRS423), sta(0xfe10),
		lda('A'), sta(0xfe09),
	))

	out := &sink{}
	m.AttachSerial(nil, out)

	// a word at 19200 baud takes a little over 2000 cycles
	m.StepCycles(10000)
	test.ExpectEquality(t, string(out.data), "A")
}

func TestACIAInterrupt(t *testing.T) {
	m := newMachine(t, "B", program(
		lda(serial.Divide64|5<<2|serial.TxRTSLowIRQ), sta(0xfe08),
		lda(serial.SERPROCRS423), sta(0xfe10),
	))
	test.ExpectEquality(t, m.CPU.DeviceIRQ()&hardware.IRQACIA, uint8(0))

	// enabling the interrupt is not enough. it is raised when a word moves
	// from the transmit data register to the shift register
	m.StepCycles(1000)
	test.ExpectEquality(t, m.CPU.DeviceIRQ()&hardware.IRQACIA, uint8(0))

	m.ACIA.WriteData('A')
	m.StepCycles(10000)
	test.ExpectEquality(t, m.CPU.DeviceIRQ()&hardware.IRQACIA, hardware.IRQACIA)
}

func TestCRTCClock(t *testing.T) {
	p := newPrefs(t, "B")
	m := newMachineWithPrefs(t, p, program(nop()))

	// the CRTC updates at 1MHz
	u := m.CRTCTicks()
	m.StepCycles(400)
	test.ExpectEquality(t, m.CRTCTicks()-u, uint64(100))

	// and at 2MHz when the preference forces the fast clock
	test.DemandSuccess(t, p.Fast6845.Set(true))
	u = m.CRTCTicks()
	m.StepCycles(400)
	test.ExpectEquality(t, m.CRTCTicks()-u, uint64(200))
}

func TestVideoULA(t *testing.T) {
	m := newMachine(t, "B", program(lda(hardware.ULAFast), sta(0xfe20)))
	m.StepCycles(1000)
	test.ExpectEquality(t, m.VideoControl(), uint8(hardware.ULAFast))

	// the fast bit selects the 2MHz clock for the CRTC
	u := m.CRTCTicks()
	m.StepCycles(400)
	test.ExpectEquality(t, m.CRTCTicks()-u, uint64(200))
}

func TestRTC(t *testing.T) {
	m := newMachine(t, "Master", program(lda(20), sta(0xfe38), lda(0x5a), sta(0xfe3c)))
	test.ExpectFailure(t, m.NVRAMDirty())

	m.StepCycles(1000)
	test.ExpectEquality(t, m.RTC.Register(20), uint8(0x5a))
	test.ExpectSuccess(t, m.NVRAMDirty())
}

func TestRTCDivisor(t *testing.T) {
	p := newPrefs(t, "Master")
	test.DemandSuccess(t, p.RTCDivisor.Set(10))
	m := newMachineWithPrefs(t, p, program(nop()))

	// one second is ten 1MHz cycles
	s := m.RTC.Register(0)
	m.StepCycles(4 * 10 * 5)
	test.ExpectEquality(t, m.RTC.Register(0)-s, uint8(5))
}

func TestI2C(t *testing.T) {
	m := newMachine(t, "Master", program(ldaAbs(0xfe3a), sta(0x2000), lda(0x03), sta(0xfe3a), ldaAbs(0xfe3a), sta(0x2001)))
	m.StepCycles(1000)

	v, _ := m.Peek(0x2000)
	test.ExpectEquality(t, v, uint8(0xfc))
	v, _ = m.Peek(0x2001)
	test.ExpectEquality(t, v, uint8(0xff))
}

func TestSnapshot(t *testing.T) {
	m := newMachine(t, "Master", program(nop()))
	test.DemandSuccess(t, m.Poke(0x1000, 0x01))
	m.RTC.SetAddress(30)
	m.RTC.Write(0x11)

	s := m.Snapshot()
	cycles := m.Cycles()
	test.ExpectEquality(t, s.Cycles(), cycles)

	test.DemandSuccess(t, m.Poke(0x1000, 0x02))
	m.RTC.Write(0x22)
	m.StepCycles(1000)

	m.Plumb(s)
	v, _ := m.Peek(0x1000)
	test.ExpectEquality(t, v, uint8(0x01))
	test.ExpectEquality(t, m.RTC.Register(30), uint8(0x11))
	test.ExpectEquality(t, m.Cycles(), cycles)

	// the state is not affected by the machine running after the plumb
	test.DemandSuccess(t, m.Poke(0x1000, 0x03))
	m.Plumb(s)
	v, _ = m.Peek(0x1000)
	test.ExpectEquality(t, v, uint8(0x01))
}

func TestRun(t *testing.T) {
	m := newMachine(t, "B", program(nop()))

	var n int
	err := m.Run(func() (govern.State, error) {
		n++
		if n == 10 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 10)

	err = m.Run(func() (govern.State, error) {
		return govern.EmulatorStart, nil
	})
	test.ExpectFailure(t, err)
}

func TestRunForCycles(t *testing.T) {
	m := newMachine(t, "B", program(nop()))
	c := m.Cycles()
	test.ExpectSuccess(t, m.RunForCycles(1000, nil))
	test.ExpectEquality(t, m.Cycles()-c, uint64(1000))

	var n int
	c = m.Cycles()
	test.ExpectSuccess(t, m.RunForCycles(1000, func() (govern.State, error) {
		n++
		return govern.Ending, nil
	}))
	test.ExpectEquality(t, n, 1)
	test.ExpectInequality(t, m.Cycles()-c, uint64(1000))
}

func TestNVRAM(t *testing.T) {
	t.Chdir(t.TempDir())

	p := newPrefs(t, "Master")
	test.DemandSuccess(t, p.NVRAMFile.Set("test"))

	m := newMachineWithPrefs(t, p, program(nop()))
	m.RTC.SetAddress(20)
	m.RTC.Write(0x5a)
	m.EEPROM.Poke(0x10, 0xa5)
	test.ExpectSuccess(t, m.NVRAMDirty())
	m.SaveNVRAM()
	test.ExpectFailure(t, m.NVRAMDirty())

	n := newMachineWithPrefs(t, p, program(nop()))
	test.ExpectEquality(t, n.RTC.Register(20), uint8(0x00))
	n.LoadNVRAM()
	test.ExpectEquality(t, n.RTC.Register(20), uint8(0x5a))
	test.ExpectEquality(t, n.EEPROM.Peek(0x10), uint8(0xa5))
}

func TestReset(t *testing.T) {
	m := newMachine(t, "B", program(nop()))
	test.DemandSuccess(t, m.Poke(0x1000, 0x01))

	// BREAK does not clear memory
	m.Break()
	v, _ := m.Peek(0x1000)
	test.ExpectEquality(t, v, uint8(0x01))

	m.Reset()
	v, _ = m.Peek(0x1000)
	test.ExpectEquality(t, v, uint8(0x00))
	test.ExpectEquality(t, m.Paging.ROMSEL(), uint8(0x00))
}
