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

// Package functional_test runs the 6502 and 65C02 functional tests by Klaus
// Dormann. https://github.com/Klaus2m5/6502_65C02_functional_tests
//
// The test binaries are not part of the repository. Place them in the
// testdata directory to run the tests:
//
//	6502.bin            functional test, loaded at $0000, started at $0400
//	65c02.bin           extended 65C02 opcodes test
//	65c02_rockwell.bin  extended opcodes test with the Rockwell instructions
//	d0.bin, d1.bin      decimal mode tests for NMOS and CMOS, loaded and
//	                    started at $0200
//
// The binaries must be assembled to report completion by writing a result
// code to $FF00. Zero indicates success. Tests for missing binaries are
// skipped.
package functional_test
