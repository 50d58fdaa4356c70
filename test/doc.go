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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect functions report a failure with t.Errorf() and allow the test to
// continue. The Demand functions use t.Fatalf() and should be used when the
// remainder of the test depends on the result.
//
// ExpectSuccess() and ExpectFailure() interpret their argument according to
// its type. A nil value is considered a success. This may not be how we want
// to interpret nil in all situations but because of how errors usually work
// (nil to indicate no error) we need to interpret nil in this way.
//
// All Expect and Demand functions accept optional tags which are printed
// with the failure message. These are useful for identifying the iteration of
// a test loop.
//
// The CappedWriter and RingWriter types implement io.Writer and are used to
// capture output from functions under test.
package test
