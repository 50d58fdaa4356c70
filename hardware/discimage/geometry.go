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

package discimage

import "fmt"

// Geometry of a disc. Both sides of a double sided disc have the same
// geometry.
type Geometry struct {
	DoubleSided     bool
	DoubleDensity   bool
	NumTracks       int
	SectorsPerTrack int
	BytesPerSector  int
}

// Common geometries.
var (
	SSD = Geometry{NumTracks: 80, SectorsPerTrack: 10, BytesPerSector: 256}
	DSD = Geometry{NumTracks: 80, SectorsPerTrack: 10, BytesPerSector: 256, DoubleSided: true}
	ADS = Geometry{NumTracks: 40, SectorsPerTrack: 16, BytesPerSector: 256, DoubleDensity: true}
	ADM = Geometry{NumTracks: 80, SectorsPerTrack: 16, BytesPerSector: 256, DoubleDensity: true}
	ADL = Geometry{NumTracks: 80, SectorsPerTrack: 16, BytesPerSector: 256, DoubleDensity: true, DoubleSided: true}
)

func (g Geometry) String() string {
	sides := "SS"
	if g.DoubleSided {
		sides = "DS"
	}
	density := "SD"
	if g.DoubleDensity {
		density = "DD"
	}
	return fmt.Sprintf("%s %s %dT x %dS", sides, density, g.NumTracks, g.SectorsPerTrack)
}

// NumSides returns 2 for double sided discs and 1 otherwise.
func (g Geometry) NumSides() int {
	if g.DoubleSided {
		return 2
	}
	return 1
}

// TotalBytes is the size of a complete image with this geometry.
func (g Geometry) TotalBytes() int {
	return g.NumSides() * g.NumTracks * g.SectorsPerTrack * g.BytesPerSector
}

// Index returns the position in the image data of the byte at the disc
// address. Tracks of double sided images are interleaved. The index may be
// beyond the end of the data of a short image.
//
// Returns false if the address is not valid for the geometry.
func (g Geometry) Index(side int, track int, sector int, offset int) (int, bool) {
	if side < 0 || side >= g.NumSides() {
		return 0, false
	}
	if track < 0 || track >= g.NumTracks {
		return 0, false
	}
	if sector < 0 || sector >= g.SectorsPerTrack {
		return 0, false
	}
	if offset < 0 || offset >= g.BytesPerSector {
		return 0, false
	}

	idx := track
	if g.DoubleSided {
		idx = idx*2 + side
	}
	idx = idx*g.SectorsPerTrack + sector
	idx = idx*g.BytesPerSector + offset

	return idx, true
}
