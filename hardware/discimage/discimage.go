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

import (
	"crypto/sha1"
	"os"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/gopherbeeb/curated"
)

// DiscImage is implemented by all disc image types.
type DiscImage interface {
	// Read the byte at the disc address. Returns false if the address is
	// not valid for the disc.
	Read(side int, track int, sector int, offset int) (uint8, bool)

	// Write the byte at the disc address. Returns false if the address is
	// not valid for the disc.
	Write(side int, track int, sector int, offset int, v uint8) bool

	// Flush any pending writes to the backing store.
	Flush() error

	// Hash of the image contents.
	Hash() [sha1.Size]byte

	// Clone returns an independent copy of the image.
	Clone() DiscImage

	Geometry() Geometry
}

// FillByte is the value of bytes in a short image beyond the end of the data.
const FillByte = 0xe5

// Sentinel errors returned by NewMemoryDiscImage.
const (
	EmptyImage     = "discimage: %s: disc image is empty"
	NotSectorSized = "discimage: %s: not a multiple of sector size (%d)"
	TooLarge       = "discimage: %s: image of %d bytes is larger than geometry (%d bytes)"
	InvalidGeom    = "discimage: %s: invalid geometry (%s)"
)

// image data shared between clones
type buffer struct {
	// the geometry is fixed for the lifetime of the buffer and can be read
	// without locking
	geometry Geometry

	mu   sync.Mutex
	refs atomic.Int32
	data []uint8

	hash      [sha1.Size]byte
	hashValid bool
}

func (b *buffer) release() {
	b.refs.Add(-1)
}

// MemoryDiscImage is a DiscImage that keeps the image data in memory.
type MemoryDiscImage struct {
	name    string
	buf     *buffer
	cleanup runtime.Cleanup
}

// NewMemoryDiscImage is the preferred method of initialisation for the
// MemoryDiscImage type. The data is copied. The name is used in error
// messages.
func NewMemoryDiscImage(name string, data []uint8, geometry Geometry) (*MemoryDiscImage, error) {
	if geometry.TotalBytes() <= 0 {
		return nil, curated.Errorf(InvalidGeom, name, geometry)
	}
	if len(data) == 0 {
		return nil, curated.Errorf(EmptyImage, name)
	}
	if len(data)%geometry.BytesPerSector != 0 {
		return nil, curated.Errorf(NotSectorSized, name, geometry.BytesPerSector)
	}
	if len(data) > geometry.TotalBytes() {
		return nil, curated.Errorf(TooLarge, name, len(data), geometry.TotalBytes())
	}

	buf := &buffer{
		geometry: geometry,
		data:     make([]uint8, len(data)),
	}
	copy(buf.data, data)
	buf.refs.Store(1)

	return newMemoryDiscImage(name, buf), nil
}

// the caller must have added a reference to the buffer
func newMemoryDiscImage(name string, buf *buffer) *MemoryDiscImage {
	img := &MemoryDiscImage{
		name: name,
		buf:  buf,
	}
	img.cleanup = runtime.AddCleanup(img, (*buffer).release, buf)
	return img
}

// Name of the disc image.
func (img *MemoryDiscImage) Name() string {
	return img.name
}

func (img *MemoryDiscImage) String() string {
	return img.buf.geometry.String()
}

// Geometry implements the DiscImage interface.
func (img *MemoryDiscImage) Geometry() Geometry {
	return img.buf.geometry
}

// Shared returns true if the image data is shared with a clone.
func (img *MemoryDiscImage) Shared() bool {
	return img.buf.refs.Load() > 1
}

// Clone implements the DiscImage interface. The clone shares the image data
// until either image is written to.
func (img *MemoryDiscImage) Clone() DiscImage {
	img.buf.mu.Lock()
	defer img.buf.mu.Unlock()
	img.buf.refs.Add(1)
	return newMemoryDiscImage(img.name, img.buf)
}

// Release the image data. The image must not be used afterwards. Images that
// are not released explicitly release their data when they are garbage
// collected.
func (img *MemoryDiscImage) Release() {
	if img.buf == nil {
		return
	}
	img.cleanup.Stop()
	img.buf.release()
	img.buf = nil
}

// Hash implements the DiscImage interface.
func (img *MemoryDiscImage) Hash() [sha1.Size]byte {
	img.buf.mu.Lock()
	defer img.buf.mu.Unlock()

	if !img.buf.hashValid {
		img.buf.hash = sha1.Sum(img.buf.data)
		img.buf.hashValid = true
	}

	return img.buf.hash
}

// Read implements the DiscImage interface.
func (img *MemoryDiscImage) Read(side int, track int, sector int, offset int) (uint8, bool) {
	idx, ok := img.buf.geometry.Index(side, track, sector, offset)
	if !ok {
		return 0, false
	}

	img.buf.mu.Lock()
	defer img.buf.mu.Unlock()

	if idx >= len(img.buf.data) {
		return FillByte, true
	}
	return img.buf.data[idx], true
}

// Write implements the DiscImage interface.
func (img *MemoryDiscImage) Write(side int, track int, sector int, offset int, v uint8) bool {
	idx, ok := img.buf.geometry.Index(side, track, sector, offset)
	if !ok {
		return false
	}

	img.makeUnique()

	img.buf.mu.Lock()
	defer img.buf.mu.Unlock()

	// extend short images to the end of the sector being written
	if idx >= len(img.buf.data) {
		sz := img.buf.geometry.BytesPerSector
		n := (idx + sz) / sz * sz
		for len(img.buf.data) < n {
			img.buf.data = append(img.buf.data, FillByte)
		}
	}

	if img.buf.data[idx] != v {
		img.buf.data[idx] = v
		img.buf.hashValid = false
	}

	return true
}

// take a private copy of the image data if it is shared
func (img *MemoryDiscImage) makeUnique() {
	old := img.buf
	if old.refs.Load() == 1 {
		return
	}

	old.mu.Lock()
	buf := &buffer{
		geometry: old.geometry,
		data:     make([]uint8, len(old.data)),
	}
	copy(buf.data, old.data)
	old.mu.Unlock()

	img.cleanup.Stop()
	old.release()

	buf.refs.Store(1)
	img.buf = buf
	img.cleanup = runtime.AddCleanup(img, (*buffer).release, buf)
}

// Flush implements the DiscImage interface. There is nothing to flush for a
// memory image.
func (img *MemoryDiscImage) Flush() error {
	return nil
}

// SaveToFile writes the image data to a file.
func (img *MemoryDiscImage) SaveToFile(fn string) error {
	img.buf.mu.Lock()
	defer img.buf.mu.Unlock()

	err := os.WriteFile(fn, img.buf.data, 0644)
	if err != nil {
		return curated.Errorf("discimage: %v", err)
	}
	return nil
}
