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

package monitor

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// the action of a command. args does not include the command name
type action func(mon *Monitor, args []string) error

type command struct {
	name  string
	usage string
	help  string
	act   action
}

var commands = []command{
	{name: "step", usage: "step [n]", help: "Execute one or more instructions", act: (*Monitor).step},
	{name: "cycle", usage: "cycle [n]", help: "Advance one or more 4MHz cycles", act: (*Monitor).cycle},
	{name: "run", usage: "run <n>", help: "Execute up to n instructions, stopping at breakpoints", act: (*Monitor).run},
	{name: "regs", usage: "regs", help: "Display the CPU registers and the cycle count", act: (*Monitor).regs},
	{name: "mem", usage: "mem [addr] [n]", help: "Display memory as seen by the debugger", act: (*Monitor).mem},
	{name: "poke", usage: "poke <addr> <value>", help: "Modify a memory address", act: (*Monitor).poke},
	{name: "disasm", usage: "disasm [addr] [n]", help: "Disassemble memory", act: (*Monitor).disasm},
	{name: "break", usage: "break [addr]", help: "Toggle a breakpoint. Lists breakpoints without an argument", act: (*Monitor).breakpoint},
	{name: "reset", usage: "reset", help: "Power cycle the machine", act: (*Monitor).reset},
	{name: "rewind", usage: "rewind [n | to <frame>]", help: "Restore the machine to an earlier frame. Shows the history without an argument", act: (*Monitor).rewindCmd},
	{name: "crtc", usage: "crtc", help: "Display the state of the CRTC and the video ULA", act: (*Monitor).crtc},
	{name: "dump", usage: "dump [file]", help: "Write a graphviz representation of the machine state", act: (*Monitor).dump},
	{name: "map", usage: "map", help: "Display the memory map and the installed memory", act: (*Monitor).memmap},
	{name: "log", usage: "log [n]", help: "Display the most recent log entries", act: (*Monitor).log},
	{name: "symbols", usage: "symbols <file>", help: "Read labels from a file", act: (*Monitor).symbols},
	{name: "help", usage: "help [command]", help: "List commands or show help for a command", act: (*Monitor).help},
	{name: "quit", usage: "quit", help: "Leave the monitor", act: (*Monitor).quit},
}

func writeHelp(output io.Writer, cmds []command) {
	cmds = slices.Clone(cmds)
	slices.SortFunc(cmds, func(a, b command) int {
		return strings.Compare(a.name, b.name)
	})
	for _, c := range cmds {
		fmt.Fprintf(output, "%-22s %s\n", c.usage, c.help)
	}
}
