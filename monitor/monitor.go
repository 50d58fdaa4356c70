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
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/beevik/prefixtree/v2"
	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopherbeeb/curated"
	"github.com/jetsetilly/gopherbeeb/disassembly"
	"github.com/jetsetilly/gopherbeeb/govern"
	"github.com/jetsetilly/gopherbeeb/hardware"
	"github.com/jetsetilly/gopherbeeb/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherbeeb/hardware/memory/paging"
	"github.com/jetsetilly/gopherbeeb/logger"
	"github.com/jetsetilly/gopherbeeb/paths"
	"github.com/jetsetilly/gopherbeeb/rewind"
)

// Sentinel errors returned by Execute().
const (
	UnknownCommand   = "monitor: unknown command (%s)"
	AmbiguousCommand = "monitor: ambiguous command (%s)"
	MissingArgument  = "monitor: %s: missing argument"
	InvalidArgument  = "monitor: %s: invalid argument (%s)"
	CommandError     = "monitor: %s: %v"
)

// the number of entries shown by mem and disasm when no count is given
const (
	defaultMemBytes  = 64
	defaultDisasmLen = 10
	defaultLogLen    = 10
)

// Monitor is the command interpreter for a single machine.
type Monitor struct {
	machine *hardware.Machine
	output  io.Writer

	cmds []command
	tree *prefixtree.Tree[*command]
	syms *disassembly.Symbols

	// snapshots are taken at the start of every frame while the step and
	// run commands are executing
	rewind *rewind.Rewind

	breakpoints map[uint16]bool

	// the address used by the next disasm or mem command without an
	// explicit address
	nextDisasm uint16
	nextMem    uint16

	// signals from the operating system stop the run command. can be nil
	interrupt chan os.Signal

	quitting bool
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(machine *hardware.Machine, output io.Writer) *Monitor {
	mon := &Monitor{
		machine:     machine,
		output:      output,
		cmds:        commands,
		tree:        prefixtree.New[*command](),
		syms:        disassembly.NewSymbols(),
		rewind:      rewind.NewRewind(machine),
		breakpoints: make(map[uint16]bool),
		nextDisasm:  machine.CPU.OpcodePC(),
	}
	for i := range mon.cmds {
		mon.tree.Add(mon.cmds[i].name, &mon.cmds[i])
	}
	return mon
}

// Symbols returns the symbols table used for disassembly.
func (mon *Monitor) Symbols() *disassembly.Symbols {
	return mon.syms
}

// Quitting returns true after the quit command has been executed.
func (mon *Monitor) Quitting() bool {
	return mon.quitting
}

// Execute a single command line. Empty lines are ignored.
func (mon *Monitor) Execute(line string) error {
	f := strings.Fields(line)
	if len(f) == 0 {
		return nil
	}

	cmd, err := mon.tree.FindValue(strings.ToLower(f[0]))
	if err != nil {
		if errors.Is(err, prefixtree.ErrPrefixAmbiguous) {
			return curated.Errorf(AmbiguousCommand, f[0])
		}
		return curated.Errorf(UnknownCommand, f[0])
	}

	return cmd.act(mon, f[1:])
}

func (mon *Monitor) printf(format string, args ...any) {
	fmt.Fprintf(mon.output, format, args...)
}

// parse a count argument. returns the default value if the argument is
// missing
func parseCount(cmd string, args []string, idx int, def int) (int, error) {
	if idx >= len(args) {
		return def, nil
	}
	n, err := strconv.Atoi(args[idx])
	if err != nil || n < 1 {
		return 0, curated.Errorf(InvalidArgument, cmd, args[idx])
	}
	return n, nil
}

// parse an address argument. the argument can be hexadecimal or a symbol
func (mon *Monitor) parseAddress(cmd string, arg string) (uint16, error) {
	a, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimLeft(arg, "&$"), "0x"), 16, 16)
	if err == nil {
		return uint16(a), nil
	}
	if a, ok := mon.syms.Search(arg); ok {
		return a, nil
	}
	return 0, curated.Errorf(InvalidArgument, cmd, arg)
}

// print the instruction that is about to be executed
func (mon *Monitor) printNext() {
	pc := mon.machine.CPU.OpcodePC()
	e := disassembly.Disassemble(mon.machine.CPU.Config().Variant(), mon.machine, pc, mon.syms)
	mon.printf("%s\n", e)
	mon.nextDisasm = e.Next()
}

func (mon *Monitor) step(args []string) error {
	n, err := parseCount("step", args, 0, 1)
	if err != nil {
		return err
	}
	for range n {
		mon.machine.StepInstruction()
		mon.rewind.Check()
		if mon.machine.CPU.IsHalted() {
			mon.printf("CPU halted\n")
			break
		}
	}
	mon.printNext()
	return nil
}

func (mon *Monitor) cycle(args []string) error {
	n, err := parseCount("cycle", args, 0, 1)
	if err != nil {
		return err
	}
	mon.machine.StepCycles(n)
	mon.rewind.Check()
	mon.printf("%d cycles\n", mon.machine.Cycles())
	return nil
}

func (mon *Monitor) run(args []string) error {
	if len(args) == 0 {
		return curated.Errorf(MissingArgument, "run")
	}
	n, err := parseCount("run", args, 0, 0)
	if err != nil {
		return err
	}

	var count int
	var event govern.Event
	var brake int

	err = mon.machine.Run(func() (govern.State, error) {
		count++
		mon.rewind.Check()

		brake++
		if brake >= hardware.PerformanceBrake {
			brake = 0
			select {
			case <-mon.interrupt:
				event = govern.EventInterrupt
				return govern.Ending, nil
			default:
			}
		}

		switch {
		case mon.machine.CPU.IsHalted():
			event = govern.EventHalt
			return govern.Ending, nil
		case mon.breakpoints[mon.machine.CPU.OpcodePC()]:
			event = govern.EventBreakpoint
			return govern.Ending, nil
		case count >= n:
			event = govern.EventCount
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	if err != nil {
		return curated.Errorf(CommandError, "run", err)
	}

	mon.printf("%s after %d instructions\n", event, count)
	mon.printNext()
	return nil
}

func (mon *Monitor) regs(_ []string) error {
	mon.printf("%s\n", mon.machine.CPU)
	mon.printf("cycles=%d stretched=%d irq=%02x\n", mon.machine.Cycles(), mon.machine.Stretched(), mon.machine.CPU.DeviceIRQ())
	return nil
}

func (mon *Monitor) mem(args []string) error {
	addr := mon.nextMem
	if len(args) > 0 {
		var err error
		addr, err = mon.parseAddress("mem", args[0])
		if err != nil {
			return err
		}
	}
	n, err := parseCount("mem", args, 1, defaultMemBytes)
	if err != nil {
		return err
	}

	s := strings.Builder{}
	for i := range n {
		a := addr + uint16(i)
		if i%16 == 0 {
			if i > 0 {
				s.WriteString("\n")
			}
			s.WriteString(fmt.Sprintf("%04x:", a))
		}
		if v, err := mon.machine.Peek(a); err == nil {
			s.WriteString(fmt.Sprintf(" %02x", v))
		} else {
			s.WriteString(" --")
		}
	}
	mon.printf("%s\n", s.String())
	mon.nextMem = addr + uint16(n)

	return nil
}

func (mon *Monitor) poke(args []string) error {
	if len(args) < 2 {
		return curated.Errorf(MissingArgument, "poke")
	}
	addr, err := mon.parseAddress("poke", args[0])
	if err != nil {
		return err
	}
	v, err := strconv.ParseUint(strings.TrimLeft(args[1], "&$"), 16, 8)
	if err != nil {
		return curated.Errorf(InvalidArgument, "poke", args[1])
	}
	if err := mon.machine.Poke(addr, uint8(v)); err != nil {
		return curated.Errorf(CommandError, "poke", err)
	}
	return nil
}

func (mon *Monitor) disasm(args []string) error {
	addr := mon.nextDisasm
	if len(args) > 0 {
		var err error
		addr, err = mon.parseAddress("disasm", args[0])
		if err != nil {
			return err
		}
	}
	n, err := parseCount("disasm", args, 1, defaultDisasmLen)
	if err != nil {
		return err
	}

	var entries []disassembly.Entry
	for e := range disassembly.Range(mon.machine.CPU.Config().Variant(), mon.machine, addr, n, mon.syms) {
		entries = append(entries, e)
		mon.nextDisasm = e.Next()
	}

	return disassembly.Write(mon.output, entries, disassembly.WriteAttr{
		ByteCode: true,
		Labels:   true,
		Notes:    true,
	})
}

func (mon *Monitor) breakpoint(args []string) error {
	if len(args) == 0 {
		if len(mon.breakpoints) == 0 {
			mon.printf("no breakpoints\n")
		}
		for _, a := range slices.Sorted(maps.Keys(mon.breakpoints)) {
			mon.printf("%04x\n", a)
		}
		return nil
	}

	addr, err := mon.parseAddress("break", args[0])
	if err != nil {
		return err
	}
	if mon.breakpoints[addr] {
		delete(mon.breakpoints, addr)
		mon.printf("breakpoint at %04x removed\n", addr)
	} else {
		mon.breakpoints[addr] = true
		mon.printf("breakpoint at %04x added\n", addr)
	}
	return nil
}

func (mon *Monitor) reset(_ []string) error {
	mon.machine.Reset()
	mon.rewind.Reset()
	mon.printf("machine reset\n")
	return nil
}

func (mon *Monitor) rewindCmd(args []string) error {
	if len(args) == 0 {
		mon.printf("%s\n", mon.rewind)
		return nil
	}

	var f int
	if args[0] == "to" {
		if len(args) < 2 {
			return curated.Errorf(MissingArgument, "rewind")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 0 {
			return curated.Errorf(InvalidArgument, "rewind", args[1])
		}
		f = mon.rewind.GotoFrame(n)
	} else {
		n, err := parseCount("rewind", args, 0, 1)
		if err != nil {
			return err
		}
		f = mon.rewind.Back(n)
	}

	mon.printf("frame %d\n", f)
	mon.printNext()
	return nil
}

func (mon *Monitor) memmap(_ []string) error {
	mon.printf("%s", memorymap.Summary())
	mon.printf("%s\n", mon.machine.Mem)
	for b := range paging.NumROMBanks {
		title, ok := mon.machine.Mem.ROMTitle(b)
		switch {
		case ok:
			mon.printf("bank %x: %s\n", b, title)
		case mon.machine.Mem.IsSidewaysRAM(b):
			mon.printf("bank %x: RAM\n", b)
		}
	}
	return nil
}

func (mon *Monitor) crtc(_ []string) error {
	mon.printf("%s\n", mon.machine.CRTC)
	mon.printf("output: %s\n", mon.machine.CRTCOutput())
	mon.printf("video ULA control: %02x\n", mon.machine.VideoControl())
	return nil
}

func (mon *Monitor) dump(args []string) error {
	fn := fmt.Sprintf("%s.dot", paths.UniqueFilename("dump", string(mon.machine.Env.Label)))
	if len(args) > 0 {
		fn = args[0]
	}
	if err := Dump(mon.machine, fn); err != nil {
		return err
	}
	mon.printf("machine state written to %s\n", fn)
	return nil
}

// Dump writes a graphviz representation of the machine state to the named
// file.
func Dump(machine *hardware.Machine, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(CommandError, "dump", err)
	}
	defer f.Close()

	memviz.Map(f, machine.Snapshot())

	return nil
}

func (mon *Monitor) log(args []string) error {
	n, err := parseCount("log", args, 0, defaultLogLen)
	if err != nil {
		return err
	}
	logger.Tail(mon.output, n)
	return nil
}

func (mon *Monitor) symbols(args []string) error {
	if len(args) == 0 {
		return curated.Errorf(MissingArgument, "symbols")
	}
	f, err := os.Open(args[0])
	if err != nil {
		return curated.Errorf(CommandError, "symbols", err)
	}
	defer f.Close()

	if err := mon.syms.ReadSymbols(f); err != nil {
		return curated.Errorf(CommandError, "symbols", err)
	}
	return nil
}

func (mon *Monitor) help(args []string) error {
	if len(args) == 0 {
		writeHelp(mon.output, mon.cmds)
		return nil
	}
	cmd, err := mon.tree.FindValue(strings.ToLower(args[0]))
	if err != nil {
		return curated.Errorf(UnknownCommand, args[0])
	}
	writeHelp(mon.output, []command{*cmd})
	return nil
}

func (mon *Monitor) quit(_ []string) error {
	mon.quitting = true
	return nil
}
