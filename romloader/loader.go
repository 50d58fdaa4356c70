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
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/jetsetilly/gopherbeeb/archivefs"
	"github.com/jetsetilly/gopherbeeb/curated"
)

// Sentinel errors returned by Load().
const (
	UnexpectedHash    = "romloader: unexpected hash value (%s)"
	UnsupportedScheme = "romloader: unsupported URL scheme (%s)"
	EmptyImage        = "romloader: empty image (%s)"
)

// Loader is used to specify a ROM image to load.
type Loader struct {
	// filename of the image to load. can be a path into a zip archive or an
	// http/https URL
	Filename string

	// expected hash of the loaded image. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() do nothing
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// ShortName returns the filename without the path or extension. The
// extension of any archive the file is in is also removed.
func (rl Loader) ShortName() string {
	s := path.Base(rl.Filename)
	s = strings.TrimSuffix(s, path.Ext(s))
	return archivefs.TrimArchiveExt(s)
}

// HasLoaded returns true if Load() has been successfully called.
func (rl Loader) HasLoaded() bool {
	return len(rl.Data) > 0
}

// Load the ROM image. Filenames with a URL scheme will use that method to
// load the data. Currently supported schemes are HTTP and local files.
func (rl *Loader) Load() error {
	if len(rl.Data) > 0 {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(rl.Filename)
	if err == nil && len(u.Scheme) > 1 {
		scheme = u.Scheme
	}

	var data []byte

	switch scheme {
	case "http", "https":
		resp, err := http.Get(rl.Filename)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("romloader: %v", resp.Status)
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}

	case "file":
		fn := rl.Filename
		if u != nil && u.Scheme == "file" {
			fn = u.Path
		}

		r, _, err := archivefs.Open(fn)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}
		if c, ok := r.(io.Closer); ok {
			defer c.Close()
		}

		data, err = io.ReadAll(r)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}

	default:
		return curated.Errorf(UnsupportedScheme, scheme)
	}

	if len(data) == 0 {
		return curated.Errorf(EmptyImage, rl.Filename)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if rl.Hash != "" && rl.Hash != hash {
		return curated.Errorf(UnexpectedHash, hash)
	}

	rl.Hash = hash
	rl.Data = data

	return nil
}
