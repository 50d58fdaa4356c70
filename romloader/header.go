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

package romloader

import (
	"bytes"
	"fmt"

	"github.com/jetsetilly/gopherbeeb/curated"
)

// NoHeader is returned by ParseHeader() when the data does not start with a
// valid sideways ROM header.
const NoHeader = "romloader: no sideways ROM header: %s"

// offsets into the sideways ROM header
const (
	hdrLanguageEntry = 0x00
	hdrServiceEntry  = 0x03
	hdrType          = 0x06
	hdrCopyright     = 0x07
	hdrVersion       = 0x08
	hdrTitle         = 0x09
)

// bits in the ROM type byte
const (
	typeService    = 0x80
	typeLanguage   = 0x40
	typeRelocation = 0x20
	typeCPUMask    = 0x0f
)

// Header is the decoded header of a sideways ROM image.
type Header struct {
	// the raw type byte
	Type uint8

	Service  bool
	Language bool

	// the ROM has a second processor relocation address
	Relocation bool

	// binary version number
	Version uint8

	Title string

	// the optional version string following the title. can be empty
	VersionString string

	// the copyright string without the leading zero byte
	Copyright string
}

func (h Header) String() string {
	s := h.Title
	if h.VersionString != "" {
		s = fmt.Sprintf("%s %s", s, h.VersionString)
	}
	if h.Language {
		s = fmt.Sprintf("%s [language]", s)
	}
	return s
}

// CPU returns the processor type from the bottom four bits of the type byte.
func (h Header) CPU() uint8 {
	return h.Type & typeCPUMask
}

// ParseHeader decodes the sideways ROM header at the start of data. The MOS
// only recognises a ROM if there is a zero byte followed by "(C)" at the
// offset given in the header and the same test is applied here.
func ParseHeader(data []uint8) (Header, error) {
	if len(data) < hdrTitle+1 {
		return Header{}, curated.Errorf(NoHeader, "image too short")
	}

	cp := int(data[hdrCopyright])
	if cp <= hdrTitle || cp+4 > len(data) {
		return Header{}, curated.Errorf(NoHeader, "copyright offset out of range")
	}
	if data[cp] != 0x00 || !bytes.Equal(data[cp+1:cp+4], []byte("(C)")) {
		return Header{}, curated.Errorf(NoHeader, "missing copyright string")
	}

	h := Header{
		Type:       data[hdrType],
		Service:    data[hdrType]&typeService == typeService,
		Language:   data[hdrType]&typeLanguage == typeLanguage,
		Relocation: data[hdrType]&typeRelocation == typeRelocation,
		Version:    data[hdrVersion],
		Copyright:  cstring(data[cp+1:]),
	}

	// the title runs from the fixed offset to the first zero byte. if the
	// zero byte is before the copyright string then a version string follows
	h.Title = cstring(data[hdrTitle:cp])
	if v := hdrTitle + len(h.Title) + 1; v < cp {
		h.VersionString = cstring(data[v:cp])
	}

	return h, nil
}

// the printable string up to the first zero byte or the end of data
func cstring(data []uint8) string {
	if i := bytes.IndexByte(data, 0x00); i >= 0 {
		data = data[:i]
	}
	return string(data)
}
