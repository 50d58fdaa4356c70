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

// Package digest contains an implementation of the hardware.AudioMixer
// interface that produces a cryptographic hash of the sound chip output. The
// hash can be used to compare output from subsequent emulation executions.
// If a new hash differs from a previously recorded value then something has
// changed.
package digest

// Digest implementations return a cryptographic hash of everything they have
// seen since creation or since the last call to ResetDigest().
type Digest interface {
	Hash() string
	ResetDigest()
}
