// This file is part of MyMig.
//
// MyMig is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// MyMig is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with MyMig.  If not, see <https://www.gnu.org/licenses/>.

package monitor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"unicode"

	"github.com/mymig/mymig/curated"
	"github.com/mymig/mymig/govern"
	"github.com/mymig/mymig/hardware"
	"github.com/mymig/mymig/logger"
)

// NoChipset is the sentinal error returned by NewMonitor() when the chipset
// argument is nil.
const NoChipset = "monitor: no chipset"

// Monitor is a command line interface to a chipset. Commands are read from
// the input one line at a time. If the input and output are both terminals
// then the monitor is interactive: a prompt is shown, pressing space on an
// empty line steps a single cycle and pressing return on an empty line
// repeats the previous command.
type Monitor struct {
	cs *hardware.Chipset

	input  *bufio.Reader
	output io.Writer

	// terminal is nil if the monitor is not interactive
	term *Terminal

	styles styles

	// the previous command, repeated by an empty line in interactive mode
	lastCmd []string

	// interrupt signals end a RUN command
	sig chan os.Signal

	quit bool
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
//
// The monitor is interactive only if both input and output are files
// connected to a terminal.
func NewMonitor(cs *hardware.Chipset, input io.Reader, output io.Writer) (*Monitor, error) {
	if cs == nil {
		return nil, curated.Errorf(NoChipset)
	}

	cs.Mode = govern.ModeMonitor

	m := &Monitor{
		cs:     cs,
		input:  bufio.NewReader(input),
		output: output,
		sig:    make(chan os.Signal, 1),
	}

	inf, iok := input.(*os.File)
	outf, ook := output.(*os.File)
	if iok && ook && IsTerminal(inf, outf) {
		var err error
		m.term, err = NewTerminal(inf, outf)
		if err != nil {
			return nil, err
		}
	}

	// colour output is only used in interactive mode
	m.styles = newStyles(m.term != nil && cs.Instance.Prefs.MonitorColour.Get().(bool))

	return m, nil
}

// IsInteractive returns true if the monitor is connected to a terminal.
func (m *Monitor) IsInteractive() bool {
	return m.term != nil
}

// Run the monitor until a QUIT command is received or the input is
// exhausted.
func (m *Monitor) Run() error {
	signal.Notify(m.sig, syscall.SIGINT)
	defer signal.Stop(m.sig)

	if m.term != nil {
		defer m.term.CleanUp()
	}

	logger.Log(m.cs.Instance, "monitor", "started")

	for !m.quit {
		cmd, err := m.readCommand()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return curated.Errorf("monitor: %v", err)
		}
		if len(cmd) == 0 {
			continue
		}
		if err := m.command(cmd); err != nil {
			m.printErr(err)
		}
	}

	return nil
}

// readCommand returns the next command from the input, split into fields.
func (m *Monitor) readCommand() ([]string, error) {
	if m.term == nil {
		s, err := m.input.ReadString('\n')
		if err != nil && (err != io.EOF || len(s) == 0) {
			return nil, err
		}
		s, _, _ = strings.Cut(s, "#")
		return strings.Fields(s), nil
	}

	io.WriteString(m.output, m.styles.render(m.styles.prompt, fmt.Sprintf("[%s] > ", m.cs.Beam.Position())))

	if err := m.term.CBreakMode(); err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}
	defer m.term.CanonicalMode()

	var line []rune
	for {
		r, _, err := m.input.ReadRune()
		if err != nil {
			return nil, err
		}

		switch r {
		case keyReturn, keyLineFeed:
			io.WriteString(m.output, "\n")
			cmd := strings.Fields(string(line))
			if len(cmd) == 0 {
				return m.lastCmd, nil
			}
			m.lastCmd = cmd
			return cmd, nil

		case keyBackspace, keyDelete:
			if len(line) > 0 {
				line = line[:len(line)-1]
				io.WriteString(m.output, "\b \b")
			}

		case keyEOF, keyInterrupt:
			if len(line) == 0 {
				io.WriteString(m.output, "\n")
				return nil, io.EOF
			}

		case ' ':
			if len(line) == 0 {
				io.WriteString(m.output, "STEP\n")
				return []string{"STEP"}, nil
			}
			line = append(line, r)
			io.WriteString(m.output, string(r))

		default:
			if unicode.IsPrint(r) {
				line = append(line, r)
				io.WriteString(m.output, string(r))
			}
		}
	}
}

// printf writes the formatted string to the output in the specified style.
// A newline is always added.
func (m *Monitor) printf(which styleID, format string, a ...any) {
	s := strings.TrimRight(fmt.Sprintf(format, a...), "\n")
	io.WriteString(m.output, m.styles.render(m.styles.get(which), s))
	io.WriteString(m.output, "\n")
}

func (m *Monitor) printErr(err error) {
	m.printf(styleErr, "%v", err)
}
