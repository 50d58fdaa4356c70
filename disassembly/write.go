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

import (
	"fmt"
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write() function.
type WriteAttr struct {
	ByteCode bool
	Labels   bool
	Notes    bool
}

// Write the entries to io.Writer, one line per entry, with the fields of
// every line aligned.
func Write(output io.Writer, entries []Entry, attr WriteAttr) error {
	var fld fields
	for _, e := range entries {
		fld.update(e)
	}

	for _, e := range entries {
		s := strings.Builder{}

		if attr.Labels && fld.widths.label > 0 {
			s.WriteString(fmt.Sprintf(fld.fmt.label, e.Label))
			s.WriteString(" ")
		}

		s.WriteString(fmt.Sprintf("%04x ", e.Address))

		if attr.ByteCode {
			s.WriteString(fmt.Sprintf(fld.fmt.bytecode, e.Bytecode()))
			s.WriteString(" ")
		}

		s.WriteString(fmt.Sprintf(fld.fmt.mnemonic, e.Mnemonic()))
		s.WriteString(" ")
		s.WriteString(fmt.Sprintf(fld.fmt.operand, e.OperandString()))

		if attr.Notes {
			if n := e.Notes(); n != "" {
				s.WriteString(" ; ")
				s.WriteString(n)
			}
		}

		_, err := io.WriteString(output, strings.TrimRight(s.String(), " ")+"\n")
		if err != nil {
			return err
		}
	}

	return nil
}
