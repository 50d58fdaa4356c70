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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function, which is similar to
// the Errorf() function in the fmt package.
//
// The pattern given to Errorf() identifies the error. The Is() function checks
// the pattern of the outermost error and Has() checks the entire chain:
//
//	e := curated.Errorf("discimage: sector size %d", 257)
//	f := curated.Errorf("hardware: %v", e)
//
//	curated.Is(f, "discimage: sector size %d")  // false
//	curated.Has(f, "discimage: sector size %d") // true
//
// The error message is normalised so that adjacent duplicate parts in the
// chain are removed. This means a package can prefix its errors with the
// package name without worrying whether the error it is wrapping already has
// that prefix.
//
// Curated errors wrapping a non-curated error (eg. an *os.PathError) can be
// inspected with errors.Is() and errors.As() from the standard library.
package curated
