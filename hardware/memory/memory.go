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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherbeeb/environment"
	"github.com/jetsetilly/gopherbeeb/hardware/memory/paging"
)

// Sentinel errors returned when loading ROM images.
const (
	InvalidMOSSize = "memory: MOS ROM must be 16K (%d bytes)"
	InvalidROMSize = "memory: sideways ROM must be 8K or 16K (%d bytes)"
	InvalidROMBank = "memory: sideways bank %d does not exist"
)

// Sizes of the ROM images accepted by LoadMOS() and LoadSidewaysROM().
const (
	ROMSize     = 16384
	HalfROMSize = 8192
)

const (
	numRAMBigPages  = int(paging.ROM0BigPage)
	bytesPerROMBank = paging.NumROMBigPages * paging.BigPageSize
)

// Memory is the physical memory of the machine: RAM, the sideways banks and
// the MOS ROM. Each region is divided into big pages and the paging package
// decides which big page the CPU sees at any address.
type Memory struct {
	env   *environment.Environment
	model paging.Model

	// every RAM region laid out in big page order. main RAM is the first
	// 32K, the paged RAM and shadow RAM follow
	ram []uint8

	// the sixteen sideways banks and the MOS
	roms [paging.NumROMBanks][]uint8
	mos  []uint8

	// whether a sideways bank is RAM
	sidewaysRAM [paging.NumROMBanks]bool

	// the memory behind each big page. a nil entry means the big page does
	// not exist on the model
	pages     [paging.NumBigPages][]uint8
	writeable [paging.NumBigPages]bool
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(env *environment.Environment, model paging.Model) *Memory {
	mem := &Memory{
		env:   env,
		model: model,
		ram:   make([]uint8, numRAMBigPages*paging.BigPageSize),
		mos:   make([]uint8, ROMSize),
	}

	for b := range mem.roms {
		mem.roms[b] = make([]uint8, bytesPerROMBank)
		for i := range mem.roms[b] {
			mem.roms[b][i] = 0xff
		}
	}
	for i := range mem.mos {
		mem.mos[i] = 0xff
	}

	// the Master has four banks of sideways RAM as standard
	if model == paging.ModelMaster {
		for b := 4; b <= 7; b++ {
			mem.sidewaysRAM[b] = true
		}
	}

	mem.buildPages()

	return mem
}

func (mem *Memory) buildPages() {
	var ramPages int
	switch mem.model {
	case paging.ModelB:
		ramPages = paging.NumMainBigPages
	default:
		ramPages = numRAMBigPages
	}

	for bp := range mem.pages {
		mem.pages[bp] = nil
		mem.writeable[bp] = false
	}

	for bp := range ramPages {
		mem.pages[bp] = mem.ram[bp*paging.BigPageSize : (bp+1)*paging.BigPageSize]
		mem.writeable[bp] = true
	}

	for b := range mem.roms {
		first := int(paging.ROMBigPage(b))
		for i := range paging.NumROMBigPages {
			mem.pages[first+i] = mem.roms[b][i*paging.BigPageSize : (i+1)*paging.BigPageSize]
			mem.writeable[first+i] = mem.sidewaysRAM[b]
		}
	}

	for i := range paging.NumMOSBigPages {
		mem.pages[int(paging.MOSBigPage)+i] = mem.mos[i*paging.BigPageSize : (i+1)*paging.BigPageSize]
	}
}

// Snapshot creates a copy of Memory in its current state.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	n.ram = make([]uint8, len(mem.ram))
	copy(n.ram, mem.ram)
	n.mos = make([]uint8, len(mem.mos))
	copy(n.mos, mem.mos)
	for b := range mem.roms {
		n.roms[b] = make([]uint8, len(mem.roms[b]))
		copy(n.roms[b], mem.roms[b])
	}
	n.buildPages()
	return &n
}

// Plumb a new environment into the memory. Used after a snapshot has been
// restored into a different emulation.
func (mem *Memory) Plumb(env *environment.Environment) {
	mem.env = env
}

func (mem *Memory) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %dK RAM", mem.model, mem.RAMSize()/1024))
	var ram []string
	for b, r := range mem.sidewaysRAM {
		if r {
			ram = append(ram, fmt.Sprintf("%x", b))
		}
	}
	if len(ram) > 0 {
		s.WriteString(fmt.Sprintf(", sideways RAM in %s", strings.Join(ram, ",")))
	}
	return s.String()
}

// RAMSize returns the number of bytes of RAM excluding sideways RAM.
func (mem *Memory) RAMSize() int {
	if mem.model == paging.ModelB {
		return paging.NumMainBigPages * paging.BigPageSize
	}
	return len(mem.ram)
}

// Reset the contents of RAM. The contents are randomised if the RandomState
// preference is set.
func (mem *Memory) Reset() {
	if mem.env != nil && mem.env.Prefs.RandomState.Get().(bool) {
		mem.env.Random.Fill(mem.ram)
		return
	}
	clear(mem.ram)
}

// Page returns the memory behind the big page. Returns nil if the big page
// does not exist on the model.
func (mem *Memory) Page(bp paging.BigPage) []uint8 {
	if int(bp) >= len(mem.pages) {
		return nil
	}
	return mem.pages[bp]
}

// Read the memory at the location. Locations that have no memory read as
// 0xff.
func (mem *Memory) Read(loc paging.Location) uint8 {
	p := mem.Page(loc.Page)
	if p == nil || loc.IO {
		return 0xff
	}
	return p[loc.Offset&0x0fff]
}

// Write the memory at the location. Writes to ROM are ignored.
func (mem *Memory) Write(loc paging.Location, data uint8) {
	if loc.IO || int(loc.Page) >= len(mem.pages) || !mem.writeable[loc.Page] {
		return
	}
	mem.pages[loc.Page][loc.Offset&0x0fff] = data
}

// Poke writes to the memory at the location even if it is ROM. Returns false
// if the location has no memory.
func (mem *Memory) Poke(loc paging.Location, data uint8) bool {
	p := mem.Page(loc.Page)
	if p == nil || loc.IO {
		return false
	}
	p[loc.Offset&0x0fff] = data
	return true
}
