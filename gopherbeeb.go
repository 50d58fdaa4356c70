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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopherbeeb/curated"
	"github.com/jetsetilly/gopherbeeb/digest"
	"github.com/jetsetilly/gopherbeeb/disassembly"
	"github.com/jetsetilly/gopherbeeb/environment"
	"github.com/jetsetilly/gopherbeeb/govern"
	"github.com/jetsetilly/gopherbeeb/hardware"
	"github.com/jetsetilly/gopherbeeb/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherbeeb/hardware/memory/paging"
	"github.com/jetsetilly/gopherbeeb/hardware/preferences"
	"github.com/jetsetilly/gopherbeeb/liveaudio"
	"github.com/jetsetilly/gopherbeeb/logger"
	"github.com/jetsetilly/gopherbeeb/modalflag"
	"github.com/jetsetilly/gopherbeeb/monitor"
	"github.com/jetsetilly/gopherbeeb/performance"
	"github.com/jetsetilly/gopherbeeb/performance/limiter"
	"github.com/jetsetilly/gopherbeeb/prefs"
	"github.com/jetsetilly/gopherbeeb/romloader"
	"github.com/jetsetilly/gopherbeeb/serialbridge"
	"github.com/jetsetilly/gopherbeeb/statsview"
	"github.com/jetsetilly/gopherbeeb/version"
	"github.com/jetsetilly/gopherbeeb/wavwriter"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "MONITOR", "DISASM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "MONITOR":
		err = monitorMode(md)
	case "DISASM":
		err = disasm(md)
	case "PERFORMANCE":
		err = perform(md)
	case "VERSION":
		fmt.Fprintln(md.Output, version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// flags common to every mode that creates a machine
type machineFlags struct {
	model   *string
	mos     *string
	mosHash *string
	roms    *string
	prefs   *string
	log     *bool
	serial  *string
	baud    *int
	dump    *string
	stats   *bool
}

func addMachineFlags(md *modalflag.Modes) machineFlags {
	return machineFlags{
		model:   md.AddString("model", "", "machine model: B, B+, Master"),
		mos:     md.AddString("mos", "", "MOS ROM file. can be inside a zip file or an http URL"),
		mosHash: md.AddString("moshash", "", "expected SHA-1 hash of the MOS ROM"),
		roms:    md.AddString("rom", "", "sideways ROMs as a list of bank=file pairs separated by commas"),
		prefs:   md.AddString("prefs", "", "preferences for this run only, as key::value pairs separated by semicolons"),
		log:     md.AddBool("log", false, "echo log to stdout"),
		serial:  md.AddString("serial", "", "host serial device to attach to the serial port"),
		baud:    md.AddInt("baud", 9600, "baud rate of the host serial device"),
		dump:    md.AddString("dump", "", "write a graphviz dump of the machine state to the file on exit"),
		stats:   md.AddBool("statsview", false, "launch the runtime stats server (if available)"),
	}
}

// create the machine described by the flags. the returned cleanup function
// should be called when the machine is no longer needed
func newMachine(mf machineFlags, output io.Writer) (*hardware.Machine, func(), error) {
	if *mf.log {
		logger.SetEcho(logger.NewColorizer(output), false)
	}
	if *mf.stats {
		if statsview.Available() {
			statsview.Launch(output)
		} else {
			fmt.Fprintln(output, "* statsview not available in this build")
		}
	}

	// preferences on the command line take priority over the preferences
	// file
	cl := *mf.prefs
	if *mf.model != "" {
		cl = fmt.Sprintf("%s; hardware.model::%s", cl, *mf.model)
	}
	prefs.PushCommandLineStack(cl)
	p, err := preferences.NewPreferences("")
	if s := prefs.PopCommandLineStack(); s != "" {
		logger.Logf(logger.Allow, "gopherbeeb", "unused preferences: %s", s)
	}
	if err != nil {
		return nil, nil, err
	}

	m, err := hardware.NewMachine(environment.MainEmulation, p)
	if err != nil {
		return nil, nil, err
	}

	if *mf.mos == "" {
		return nil, nil, curated.Errorf("gopherbeeb: %v", "no MOS ROM specified")
	}
	mos := romloader.NewLoader(*mf.mos)
	mos.Hash = *mf.mosHash
	if err := mos.Load(); err != nil {
		return nil, nil, err
	}
	if err := m.LoadMOS(mos.Data); err != nil {
		return nil, nil, err
	}
	logger.Logf(logger.Allow, "gopherbeeb", "MOS: %s (%s)", mos.ShortName(), mos.Hash)

	if *mf.roms != "" {
		for r := range strings.SplitSeq(*mf.roms, ",") {
			b, fn, ok := strings.Cut(r, "=")
			if !ok {
				return nil, nil, curated.Errorf("gopherbeeb: badly formed ROM specification (%s)", r)
			}
			bank, err := strconv.Atoi(strings.TrimSpace(b))
			if err != nil {
				return nil, nil, curated.Errorf("gopherbeeb: badly formed ROM bank (%s)", b)
			}
			rl := romloader.NewLoader(fn)
			if err := rl.Load(); err != nil {
				return nil, nil, err
			}
			if err := m.LoadSidewaysROM(bank, rl.Data); err != nil {
				return nil, nil, err
			}
			if h, err := romloader.ParseHeader(rl.Data); err == nil {
				logger.Logf(logger.Allow, "gopherbeeb", "ROM %d: %s", bank, h)
			} else {
				logger.Logf(logger.Allow, "gopherbeeb", "ROM %d: %s: %v", bank, rl.ShortName(), err)
			}
		}
	}

	m.LoadNVRAM()

	var tty *serialbridge.TTY
	if *mf.serial != "" {
		tty, err = serialbridge.OpenTTY(*mf.serial, *mf.baud)
		if err != nil {
			return nil, nil, err
		}
		m.AttachSerial(tty, tty)
	} else {
		m.AttachSerial(serialbridge.Null{}, serialbridge.Null{})
	}

	cleanup := func() {
		if err := m.End(); err != nil {
			logger.Log(logger.Allow, "gopherbeeb", err)
		}
		if tty != nil {
			if err := tty.Close(); err != nil {
				logger.Log(logger.Allow, "gopherbeeb", err)
			}
		}
		if *mf.dump != "" {
			if err := monitor.Dump(m, *mf.dump); err != nil {
				logger.Log(logger.Allow, "gopherbeeb", err)
			}
		}
	}

	return m, cleanup, nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	mf := addMachineFlags(md)
	cycles := md.AddUint64("cycles", 0, "number of 4MHz cycles to run for. zero runs until interrupted")
	wav := md.AddString("wav", "", "record audio to wav file")
	audio := md.AddBool("audio", false, "play audio through the host audio device (if available)")
	dig := md.AddBool("digest", false, "print a digest of the audio output on exit")
	realtime := md.AddBool("realtime", true, "limit emulation speed to that of the real machine")

	switch p, err := md.Parse(); p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return curated.Errorf("too many arguments for %s mode", md)
	}

	m, cleanup, err := newMachine(mf, md.Output)
	if err != nil {
		return err
	}
	defer cleanup()

	if *wav != "" {
		aw, err := wavwriter.New(*wav)
		if err != nil {
			return err
		}
		m.AddAudioMixer(aw)
	}

	if *audio {
		la, err := liveaudio.New()
		if err != nil {
			return err
		}
		m.AddAudioMixer(la)
	}

	var audioDigest *digest.Audio
	if *dig {
		audioDigest = digest.NewAudio()
		m.AddAudioMixer(audioDigest)
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	lmt := limiter.NewLimiter(performance.ClockFreq)

	var brake int
	continueCheck := func() (govern.State, error) {
		brake++
		if brake < hardware.PerformanceBrake {
			return govern.Running, nil
		}
		brake = 0

		select {
		case <-intChan:
			return govern.Ending, nil
		default:
		}

		if *realtime {
			lmt.Wait(m.Cycles())
		}

		return govern.Running, nil
	}

	if *cycles > 0 {
		err = m.RunForCycles(*cycles, continueCheck)
	} else {
		err = m.Run(continueCheck)
	}
	if err != nil {
		return err
	}

	if audioDigest != nil {
		fmt.Fprintln(md.Output, audioDigest.Hash())
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	mf := addMachineFlags(md)
	duration := md.AddString("duration", "5s", "run duration (note: there is a 1s overhead)")
	profile := md.AddString("profile", "none", "profiling to perform: cpu, mem, trace (comma separated)")

	switch p, err := md.Parse(); p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	m, cleanup, err := newMachine(mf, md.Output)
	if err != nil {
		return err
	}
	defer cleanup()

	return performance.Check(md.Output, prf, m, *duration)
}

func monitorMode(md *modalflag.Modes) error {
	md.NewMode()

	mf := addMachineFlags(md)
	symbols := md.AddString("symbols", "", "file of labels for the disassembler")

	switch p, err := md.Parse(); p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	m, cleanup, err := newMachine(mf, md.Output)
	if err != nil {
		return err
	}
	defer cleanup()

	mon := monitor.NewMonitor(m, md.Output)
	if *symbols != "" {
		if err := mon.Execute(fmt.Sprintf("symbols %s", *symbols)); err != nil {
			return err
		}
	}

	fmt.Fprintf(md.Output, "%s monitor. type help for a list of commands\n", version.ApplicationName)

	return mon.Interact(os.Stdin, os.Stdout)
}

// memory for the disasm mode. the file is placed at the origin and every
// other address is unreadable
type fileMemory struct {
	origin uint16
	data   []uint8
}

func (fm fileMemory) Peek(address uint16) (uint8, error) {
	i := int(address) - int(fm.origin)
	if i < 0 || i >= len(fm.data) {
		return 0, curated.Errorf(hardware.NoMemory, address)
	}
	return fm.data[i], nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	model := md.AddString("model", "B", "machine model, which selects the CPU variant: B, B+, Master")
	rockwell := md.AddBool("rockwell", false, "disassemble for the Rockwell 65C02")
	origin := md.AddString("origin", "8000", "address of the first byte of the file in hex")
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	symbols := md.AddString("symbols", "", "file of labels")

	switch p, err := md.Parse(); p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf("a single file is required for %s mode", md)
	}

	mdl, err := paging.ParseModel(*model)
	if err != nil {
		return err
	}
	variant := instructions.NMOS
	if mdl == paging.ModelMaster {
		variant = instructions.CMOS
	}
	if *rockwell {
		variant = instructions.Rockwell
	}

	org, err := strconv.ParseUint(strings.TrimLeft(*origin, "&$"), 16, 16)
	if err != nil {
		return curated.Errorf("disasm: bad origin (%s)", *origin)
	}

	rl := romloader.NewLoader(md.GetArg(0))
	if err := rl.Load(); err != nil {
		return curated.Errorf("disasm: %v", err)
	}
	mem := fileMemory{origin: uint16(org), data: rl.Data}

	syms := disassembly.NewSymbols()
	if *symbols != "" {
		f, err := os.Open(*symbols)
		if err != nil {
			return curated.Errorf("disasm: %v", err)
		}
		err = syms.ReadSymbols(f)
		f.Close()
		if err != nil {
			return err
		}
	}

	// every byte is the start of at most one entry so the length of the
	// file is the upper limit of the number of entries
	var entries []disassembly.Entry
	for e := range disassembly.Range(variant, mem, mem.origin, len(d), syms) {
		if len(e.Bytes) == 0 {
			break
		}
		entries = append(entries, e)
	}

	return disassembly.Write(md.Output, entries, disassembly.WriteAttr{
		ByteCode: *bytecode,
		Labels:   true,
		Notes:    true,
	})
}
