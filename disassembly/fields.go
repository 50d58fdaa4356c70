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

package disassembly

import "fmt"

type widths struct {
	label    int
	bytecode int
	mnemonic int
	operand  int
}

type format struct {
	label    string
	bytecode string
	mnemonic string
	operand  string
}

type fields struct {
	widths widths
	fmt    format
}

// update width and formatting information for entry fields
func (fld *fields) update(e Entry) {
	fld.widths.label = max(fld.widths.label, len(e.Label))
	fld.widths.bytecode = max(fld.widths.bytecode, len(e.Bytecode()))
	fld.widths.mnemonic = max(fld.widths.mnemonic, len(e.Mnemonic()))
	fld.widths.operand = max(fld.widths.operand, len(e.OperandString()))

	fld.fmt.label = fmt.Sprintf("%%-%ds", fld.widths.label)
	fld.fmt.bytecode = fmt.Sprintf("%%-%ds", fld.widths.bytecode)
	fld.fmt.mnemonic = fmt.Sprintf("%%-%ds", fld.widths.mnemonic)
	fld.fmt.operand = fmt.Sprintf("%%-%ds", fld.widths.operand)
}
