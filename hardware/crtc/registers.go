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

// NumRegisters is the number of registers in the 6845.
const NumRegisters = 18

// Register names as used by the 6845 data sheet.
const (
	HorizTotal = iota
	HorizDisplayed
	HorizSyncPos
	SyncWidth
	VertTotal
	VertTotalAdjust
	VertDisplayed
	VertSyncPos
	InterlaceSkew
	MaxRasterAddr
	CursorStart
	CursorEnd
	StartAddrHi
	StartAddrLo
	CursorAddrHi
	CursorAddrLo
	LightPenHi
	LightPenLo
)

var registerNames = [NumRegisters]string{
	"Horiz Total", "Horiz Displayed", "Horiz Sync Pos", "Sync Width",
	"Vert Total", "Vert Total Adjust", "Vert Displayed", "Vert Sync Pos",
	"Interlace & Skew", "Max Raster Addr", "Cursor Start", "Cursor End",
	"Start Addr Hi", "Start Addr Lo", "Cursor Addr Hi", "Cursor Addr Lo",
	"Light Pen Hi", "Light Pen Lo",
}

// RegisterName returns the data sheet name of the register.
func RegisterName(r int) string {
	if r < 0 || r >= NumRegisters {
		return "unused"
	}
	return registerNames[r]
}

type access struct {
	mask     uint8
	canRead  bool
	canWrite bool
}

// indexed by the full 5 bits of the address register. entries 18 and
// above are neither readable nor writable
var registerAccess = [32]access{
	{mask: 0xff, canWrite: true},
	{mask: 0xff, canWrite: true},
	{mask: 0xff, canWrite: true},
	{mask: 0xff, canWrite: true},
	{mask: 0x7f, canWrite: true},
	{mask: 0x1f, canWrite: true},
	{mask: 0x7f, canWrite: true},
	{mask: 0x7f, canWrite: true},
	{mask: 0xf3, canWrite: true},
	{mask: 0x1f, canWrite: true},
	{mask: 0x7f, canWrite: true},
	{mask: 0x1f, canWrite: true},
	{mask: 0x3f, canWrite: true, canRead: true},
	{mask: 0xff, canWrite: true, canRead: true},
	{mask: 0x3f, canWrite: true, canRead: true},
	{mask: 0xff, canWrite: true, canRead: true},
	{canRead: true},
	{canRead: true},
}

// CursorMode is the blink mode selected by bits 5 and 6 of R10.
type CursorMode uint8

// List of valid CursorMode values.
const (
	CursorOn CursorMode = iota
	CursorOff
	CursorBlink16
	CursorBlink32
)

func (m CursorMode) String() string {
	switch m {
	case CursorOn:
		return "on"
	case CursorOff:
		return "off"
	case CursorBlink16:
		return "blink16"
	case CursorBlink32:
		return "blink32"
	}
	return "unknown"
}

// the skew value that suppresses output altogether
const skewNone = 3

func (c *CRTC) hsyncWidth() uint8 {
	return c.regs[SyncWidth] & 0x0f
}

func (c *CRTC) vsyncWidth() uint8 {
	w := c.regs[SyncWidth] >> 4
	if w == 0 {
		return 16
	}
	return w
}

func (c *CRTC) interlaceSync() bool {
	return c.regs[InterlaceSkew]&0x01 != 0
}

func (c *CRTC) interlaceVideo() bool {
	return c.regs[InterlaceSkew]&0x02 != 0
}

func (c *CRTC) displaySkew() uint8 {
	return (c.regs[InterlaceSkew] >> 4) & 0x03
}

func (c *CRTC) cursorSkew() uint8 {
	return (c.regs[InterlaceSkew] >> 6) & 0x03
}

func (c *CRTC) cursorMode() CursorMode {
	return CursorMode((c.regs[CursorStart] >> 5) & 0x03)
}

func (c *CRTC) cursorStart() uint8 {
	return c.regs[CursorStart] & 0x1f
}

func (c *CRTC) cursorAddress() uint16 {
	return uint16(c.regs[CursorAddrHi])<<8 | uint16(c.regs[CursorAddrLo])
}

func (c *CRTC) startAddress() uint16 {
	return uint16(c.regs[StartAddrHi])<<8 | uint16(c.regs[StartAddrLo])
}
