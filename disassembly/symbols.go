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

package disassembly

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopherbeeb/curated"
	"github.com/jetsetilly/gopherbeeb/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherbeeb/hardware/memory/addresses"
)

// Symbols maps addresses to labels. The canonical symbols for the SHEILA
// registers and the MOS entry points are always available. Additional
// labels can be added with Add() or ReadSymbols().
type Symbols struct {
	// labels indexed by address
	byAddr map[uint16]string

	// sorted array of keys to the byAddr map
	sortedIdx []uint16

	// the longest label in the table
	maxWidth int
}

// NewSymbols is the preferred method of initialisation for the Symbols type.
func NewSymbols() *Symbols {
	syms := &Symbols{
		byAddr: make(map[uint16]string),
	}
	for a, s := range addresses.MOSEntryPoints {
		syms.Add(a, s)
	}
	return syms
}

func (syms *Symbols) String() string {
	s := strings.Builder{}
	for _, a := range syms.sortedIdx {
		s.WriteString(fmt.Sprintf("%04x -> %s\n", a, syms.byAddr[a]))
	}
	return s.String()
}

// MaxWidth returns the length of the longest label.
func (syms *Symbols) MaxWidth() int {
	return syms.maxWidth
}

// make sure symbols is normalised: no leading or trailing space and internal
// space compressed and replaced with underscores
func normaliseSymbol(symbol string) string {
	return strings.Join(strings.Fields(symbol), "_")
}

// Add a label for the address. Returns false if the label is empty or the
// address already has a label.
func (syms *Symbols) Add(address uint16, symbol string) bool {
	symbol = normaliseSymbol(symbol)
	if symbol == "" {
		return false
	}
	if _, ok := syms.byAddr[address]; ok {
		return false
	}

	syms.byAddr[address] = symbol
	i, _ := slices.BinarySearch(syms.sortedIdx, address)
	syms.sortedIdx = slices.Insert(syms.sortedIdx, i, address)
	syms.maxWidth = max(syms.maxWidth, len(symbol))

	return true
}

// Remove the label for the address. Returns false if there is no label.
func (syms *Symbols) Remove(address uint16) bool {
	if _, ok := syms.byAddr[address]; !ok {
		return false
	}
	delete(syms.byAddr, address)
	i, _ := slices.BinarySearch(syms.sortedIdx, address)
	syms.sortedIdx = slices.Delete(syms.sortedIdx, i, i+1)

	syms.maxWidth = 0
	for _, s := range syms.byAddr {
		syms.maxWidth = max(syms.maxWidth, len(s))
	}

	return true
}

// Label returns the label for the address.
func (syms *Symbols) Label(address uint16) (string, bool) {
	s, ok := syms.byAddr[address]
	return s, ok
}

// Search for the address of a label. The search is case insensitive.
func (syms *Symbols) Search(symbol string) (uint16, bool) {
	for _, a := range syms.sortedIdx {
		if strings.EqualFold(syms.byAddr[a], symbol) {
			return a, true
		}
	}
	return 0, false
}

// the symbol for the operand of the entry, if there is one
func (syms *Symbols) operand(e Entry) string {
	mode := e.Defn.Mode.DisassemblyMode()
	if mode == instructions.Immediate || mode == instructions.Implied || mode == instructions.Accumulator {
		return ""
	}
	if mode == instructions.ZeroPageRelative {
		return ""
	}

	switch e.Defn.Category {
	case instructions.Flow, instructions.Subroutine:
		s, _ := syms.Label(e.Operand)
		return s
	case instructions.Write, instructions.Modify:
		if s, ok := addresses.Symbol(e.Operand, true); ok {
			return s
		}
	default:
		if s, ok := addresses.Symbol(e.Operand, false); ok {
			return s
		}
	}

	s, _ := syms.Label(e.Operand)
	return s
}

// Sentinel error returned by ReadSymbols.
const InvalidSymbolLine = "symbols: line %d: %s"

// ReadSymbols adds the labels read from r. Each line is an address followed
// by a label. The address is hexadecimal and can be prefixed with & or $.
// Blank lines and lines beginning with a semicolon are ignored.
func (syms *Symbols) ReadSymbols(r io.Reader) error {
	scanner := bufio.NewScanner(r)

	var n int
	for scanner.Scan() {
		n++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}

		f := strings.Fields(line)
		if len(f) < 2 {
			return curated.Errorf(InvalidSymbolLine, n, "expected address and label")
		}

		a, err := strconv.ParseUint(strings.TrimLeft(f[0], "&$"), 16, 16)
		if err != nil {
			return curated.Errorf(InvalidSymbolLine, n, err)
		}

		syms.Remove(uint16(a))
		syms.Add(uint16(a), strings.Join(f[1:], " "))
	}

	return scanner.Err()
}
