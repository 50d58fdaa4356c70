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

// Package paths contains functions to prepare paths to gopherbeeb resources.
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the base resource path. For example, the following
// will return the path to the Master's saved CMOS RAM:
//
//	d, err := paths.ResourcePath("nvram", "master")
//
// For development builds the base resource path is ".gopherbeeb" in the
// current working directory. Release builds (built with the release tag)
// place resources in the user's configuration directory, as returned by
// os.UserConfigDir(). On a modern Linux system that means:
//
//	/home/user/.config/gopherbeeb/nvram/master
//
// Directories are created as required. Files are not.
package paths
