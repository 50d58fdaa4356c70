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
	"bufio"
	"errors"
	"io"
	"os"
	"os/signal"

	"github.com/jetsetilly/gopherbeeb/logger"
	"golang.org/x/term"
)

const prompt = "> "

// Interact runs the command loop until the quit command or the end of the
// input. If the input and output are both terminals then the terminal is put
// into raw mode and the line is edited with the facilities of x/term.
func (mon *Monitor) Interact(input io.Reader, output io.Writer) error {
	mon.interrupt = make(chan os.Signal, 1)
	signal.Notify(mon.interrupt, os.Interrupt)
	defer func() {
		signal.Stop(mon.interrupt)
		mon.interrupt = nil
	}()

	in, inOk := input.(*os.File)
	out, outOk := output.(*os.File)
	if inOk && outOk && term.IsTerminal(int(in.Fd())) && term.IsTerminal(int(out.Fd())) {
		return mon.interactTerminal(in, out)
	}

	mon.output = output
	scanner := bufio.NewScanner(input)
	for !mon.quitting {
		if _, err := io.WriteString(output, prompt); err != nil {
			return err
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		if err := mon.Execute(scanner.Text()); err != nil {
			logger.Log(logger.Allow, "monitor", err)
			mon.printf("* %v\n", err)
		}
	}

	return nil
}

func (mon *Monitor) interactTerminal(in *os.File, out *os.File) error {
	state, err := term.MakeRaw(int(in.Fd()))
	if err != nil {
		return err
	}
	defer term.Restore(int(in.Fd()), state)

	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{in, out}, prompt)

	// the terminal converts newlines to the carriage return and newline
	// pairs required in raw mode
	mon.output = t

	for !mon.quitting {
		line, err := t.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		// the terminal is returned to its original state while the command
		// runs so that an interrupt from the keyboard reaches the run command
		term.Restore(int(in.Fd()), state)
		if err := mon.Execute(line); err != nil {
			logger.Log(logger.Allow, "monitor", err)
			mon.printf("* %v\n", err)
		}
		if state, err = term.MakeRaw(int(in.Fd())); err != nil {
			return err
		}
	}

	return nil
}
