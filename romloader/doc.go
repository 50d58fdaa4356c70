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

// Package romloader reads ROM images for the MOS and the sideways ROM banks.
// Images can be local files, files inside a zip archive (see the archivefs
// package) or HTTP URLs.
//
// The Loader type records the SHA-1 hash of the data it loads. If the Hash
// field is set before calling Load() then the loaded data must match it. This
// is useful for checking that a known MOS version is being used.
//
// Sideways ROM images start with a header that the MOS uses to recognise the
// ROM. ParseHeader() decodes that header so that the name of the ROM can be
// shown when it is loaded.
package romloader
