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

package crtc

import (
	"fmt"
	"strings"
)

// Output of the CRTC for one character.
type Output struct {
	HSync         bool
	VSync         bool
	Display       bool
	CursorDisplay bool

	// memory address (14 bits) and raster line (5 bits) to fetch display
	// data from. only meaningful when Display is true
	Address uint16
	Raster  uint8

	// true for the first update of a new frame
	FrameStart bool
}

func (o Output) String() string {
	var s strings.Builder
	flag := func(b bool, c string) {
		if b {
			s.WriteString(c)
		} else {
			s.WriteString("-")
		}
	}
	flag(o.HSync, "H")
	flag(o.VSync, "V")
	flag(o.Display, "D")
	flag(o.CursorDisplay, "C")
	fmt.Fprintf(&s, " %04x/%02d", o.Address, o.Raster)
	return s.String()
}

const rasterMask = 0x1f

// CRTC is the 6845 state.
type CRTC struct {
	regs    [NumRegisters]uint8
	address uint8

	column uint8
	row    uint8
	raster uint8

	// counters are negative when inactive
	hsyncCounter          int
	vsyncCounter          int
	adjCounter            int
	interlaceDelayCounter int

	hdisp bool
	vdisp bool

	lineAddr uint16
	charAddr uint16

	// shift registers delaying display enable and cursor by the skew
	// values in R8
	skewedDisplay uint8
	skewedCursor  uint8

	frames  int
	updates int
}

// NewCRTC is the preferred method of initialisation for the CRTC type.
func NewCRTC() *CRTC {
	c := &CRTC{}
	c.Reset()
	return c
}

// Snapshot creates a copy of the CRTC in its current state.
func (c *CRTC) Snapshot() *CRTC {
	n := *c
	return &n
}

// Reset internal counters. Register values are unchanged.
func (c *CRTC) Reset() {
	c.address = 0
	c.column = 0
	c.row = 0
	c.raster = 0
	c.hsyncCounter = -1
	c.vsyncCounter = -1
	c.adjCounter = -1
	c.interlaceDelayCounter = -1
	c.hdisp = true
	c.vdisp = true
	c.lineAddr = 0
	c.charAddr = 0
	c.skewedDisplay = 0
	c.skewedCursor = 0
	c.frames = 0
	c.updates = 0
}

func (c *CRTC) String() string {
	return fmt.Sprintf("col=%d row=%d raster=%d addr=%04x frame=%d", c.column, c.row, c.raster, c.charAddr&0x3fff, c.frames)
}

// Frames returns the number of frames that have started since reset.
func (c *CRTC) Frames() int {
	return c.frames
}

// Updates returns the number of calls to Update() since the start of the
// most recent vertical sync.
func (c *CRTC) Updates() int {
	return c.updates
}

// GetLineStartAddress returns the address of the first character of the
// current line.
func (c *CRTC) GetLineStartAddress() uint16 {
	return c.lineAddr & 0x3fff
}

// Registers returns a copy of the register values.
func (c *CRTC) Registers() [NumRegisters]uint8 {
	return c.regs
}

// SelectedRegister returns the value of the address register.
func (c *CRTC) SelectedRegister() uint8 {
	return c.address
}

// ReadAddress is the read half of the address register. The address
// register is write only.
func (c *CRTC) ReadAddress() uint8 {
	return 0
}

// WriteAddress selects the register accessed by ReadData() and WriteData().
func (c *CRTC) WriteAddress(v uint8) {
	c.address = v & 0x1f
}

// ReadData returns the value of the selected register. Write only registers
// read as zero.
func (c *CRTC) ReadData() uint8 {
	if registerAccess[c.address].canRead {
		return c.regs[c.address]
	}
	return 0
}

// WriteData writes to the selected register, masked to the bits the
// register implements.
func (c *CRTC) WriteData(v uint8) {
	acc := registerAccess[c.address]
	if acc.canWrite {
		c.regs[c.address] = v & acc.mask
	}
}

// SetRegister is the debugger equivalent of WriteAddress() followed by
// WriteData(). The address register is not changed.
func (c *CRTC) SetRegister(r int, v uint8) {
	if r < 0 || r >= NumRegisters {
		return
	}
	acc := registerAccess[r]
	if acc.canWrite {
		c.regs[r] = v & acc.mask
	}
}

// Update advances the CRTC by one character. The fast argument should be
// true when the CRTC is clocked at 2MHz, which changes the delay between
// the address being output and the display enable signal.
func (c *CRTC) Update(fast bool) Output {
	c.updates++

	// no output while the interlace delay runs at the start of vsync
	if c.interlaceDelayCounter >= 0 {
		c.interlaceDelayCounter++
		if c.interlaceDelayCounter != 1+int(c.regs[HorizTotal]>>1) {
			return Output{}
		}
		c.interlaceDelayCounter = -1
	}

	// horizontal sync
	if c.hsyncCounter >= 0 {
		c.hsyncCounter++
		if c.hsyncCounter == int(c.hsyncWidth()) {
			c.hsyncCounter = -1
		}
	} else if c.column == c.regs[HorizSyncPos] {
		c.hsyncCounter = 0
	}

	if c.row == c.regs[VertDisplayed] {
		c.vdisp = false
	}

	// vertical sync is only started or stopped at the start of a line
	if c.column == 0 {
		if c.vsyncCounter >= 0 {
			c.vsyncCounter++
			if c.vsyncCounter == int(c.vsyncWidth()) {
				c.vsyncCounter = -1
			}
		} else if c.row == c.regs[VertSyncPos] && c.raster == 0 {
			c.vsyncCounter = 0
			c.updates = 0

			if c.interlaceSync() {
				c.interlaceDelayCounter = 0
				return Output{}
			}
		}
	}

	var out Output

	out.VSync = c.vsyncCounter >= 0
	out.HSync = c.hsyncCounter >= 0 && !out.VSync

	if c.adjCounter < 0 {
		if c.row == c.regs[VertTotal] && c.raster == c.regs[MaxRasterAddr] {
			c.adjCounter = 0
		}
	}

	if c.column == c.regs[HorizTotal] {
		// end of line. display is never produced in the last column
		c.hdisp = true
		c.endOfLine()

		c.column = 0
		c.charAddr = c.lineAddr

		if c.adjCounter >= 0 {
			if c.adjCounter == int(c.regs[VertTotalAdjust]) {
				c.startFrame()
				out.FrameStart = true
			} else {
				c.adjCounter++
			}
		}
	} else {
		if c.hdisp && c.vdisp {
			if s := c.displaySkew(); s != skewNone {
				c.skewedDisplay |= c.skewBit(fast) << s
			}

			out.Address = c.charAddr & 0x3fff
			out.Raster = c.raster

			if s := c.cursorSkew(); s != skewNone && c.cursor() {
				c.skewedCursor |= c.skewBit(fast) << s
			}
		}

		out.Display = c.skewedDisplay&0x01 != 0
		c.skewedDisplay >>= 1

		out.CursorDisplay = c.skewedCursor&0x01 != 0
		c.skewedCursor >>= 1

		if out.Display {
			c.charAddr++
		}

		c.column++

		if c.column == c.regs[HorizDisplayed] {
			c.hdisp = false

			// the address of the next line is latched at the end of the
			// displayed part of the last raster of the row
			if c.raster == c.regs[MaxRasterAddr] {
				c.lineAddr += uint16(c.regs[HorizDisplayed])
				c.charAddr = c.lineAddr
			}
		}
	}

	if c.vdisp && c.row == c.regs[VertDisplayed] {
		c.vdisp = false
	}

	return out
}

// the output of the first skew stage arrives a character later when the
// CRTC is clocked at 1MHz
func (c *CRTC) skewBit(fast bool) uint8 {
	if fast {
		return 0x01
	}
	return 0x02
}

func (c *CRTC) endOfLine() {
	if c.raster == c.regs[MaxRasterAddr] {
		c.nextRow()
		return
	}

	if c.interlaceSync() && c.interlaceVideo() {
		// interlace sync and video displays every other raster on each
		// field so the raster counter advances by two
		if c.raster+1 == c.regs[MaxRasterAddr] {
			c.nextRow()
			return
		}
		c.raster += 2
	} else {
		c.raster++
	}
	c.raster &= rasterMask
}

func (c *CRTC) nextRow() {
	c.raster = 0
	c.row++
}

func (c *CRTC) startFrame() {
	c.lineAddr = c.startAddress()
	c.charAddr = c.lineAddr
	c.adjCounter = -1
	c.row = 0
	c.raster = 0
	c.vdisp = true
	c.hdisp = true
	c.column = 0
	c.frames++
}

// whether the cursor is active at the current character
func (c *CRTC) cursor() bool {
	if c.charAddr&0x3fff != c.cursorAddress() {
		return false
	}
	if c.raster < c.cursorStart() || c.raster >= c.regs[CursorEnd] {
		return false
	}

	switch c.cursorMode() {
	case CursorOn:
		return true
	case CursorBlink16:
		// 8 frames on, 8 frames off
		return (c.frames>>3)&0x01 != 0
	case CursorBlink32:
		// 16 frames on, 16 frames off
		return (c.frames>>4)&0x01 != 0
	}
	return false
}
