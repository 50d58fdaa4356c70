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

// Package archivefs allows files inside zip archives to be opened as though
// the archive were a directory. ROM images are often distributed as zip files
// and this package means they do not need to be extracted first.
//
//	r, size, err := archivefs.Open("roms/acorn.zip/OS12.ROM")
//
// Only the zip format is supported.
package archivefs

import (
	"io"

	"github.com/jetsetilly/gopherbeeb/curated"
)

// IsDirectory is returned by Open() when the filename names a directory or
// the root of an archive.
const IsDirectory = "archivefs: not a file (%s)"

// Open and return an io.ReadSeeker for the specified filename. Filename can be
// inside an archive supported by archivefs
//
// Returns the io.ReadSeeker, the size of the data behind the ReadSeeker and any
// errors.
func Open(filename string) (io.ReadSeeker, int, error) {
	var afs Path
	err := afs.Set(filename)
	if err != nil {
		return nil, 0, err
	}
	defer afs.Close()
	if afs.IsDir() {
		return nil, 0, curated.Errorf(IsDirectory, filename)
	}
	return afs.Open()
}
