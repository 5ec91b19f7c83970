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
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/davecgh/go-spew/spew"

	"github.com/mymig/mymig/curated"
	"github.com/mymig/mymig/govern"
	"github.com/mymig/mymig/hardware"
	"github.com/mymig/mymig/hardware/copper"
	"github.com/mymig/mymig/hardware/memory/chipregs"
	"github.com/mymig/mymig/logger"
)

// Sentinal error patterns for command errors.
const (
	UnknownCommand   = "monitor: unknown command (%s)"
	UnknownComponent = "monitor: %s: unknown component (%s)"
	MissingArgument  = "monitor: %s: missing argument"
	BadArgument      = "monitor: %s: bad argument (%s)"
	CommandFailed    = "monitor: %s: %v"
)

const (
	defaultDisasmSize = 8
	defaultMemSize    = 16
	defaultLogSize    = 10
)

const help = `STEP [n]             step n cycles (default 1)
LINE [n]             step n scanlines
FRAME [n]            step n frames
RUN [n]              run for n frames, or until interrupted
BEAM                 beam position and sync signals
STATE                summary of every component
REGS                 registers written since reset
PALETTE              colour registers
PEEK <reg|addr>      value of a register or a chip RAM word
POKE <addr> <value>  change a chip RAM word
MEM <from> [to]      hex dump of chip RAM words
COPPER [addr] [n]    disassemble copper list
DUMP <component>     detailed dump of a component
GRAPH <component> <file>
                     write graphviz dot file of a component
LOG [n]              most recent log entries
RESET                reset the chipset
QUIT                 end the monitor

addresses are chip RAM word addresses. prefix hex values with $ or 0x
components: BEAM COPPER DMA VIDEO BITPLANES SPRITE0-7 HOST INTS REGS
            MEMBUS REGBUS TV`

// spewer is configured so that the output of DUMP is stable between runs.
var spewer = spew.ConfigState{
	Indent:                  "  ",
	MaxDepth:                4,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// command runs a single command. the first field is the command name, which
// is not case sensitive.
func (m *Monitor) command(cmd []string) error {
	name := strings.ToUpper(cmd[0])
	args := cmd[1:]

	switch name {
	case "Q", "QUIT", "EXIT":
		m.quit = true

	case "HELP", "?":
		m.printf(styleFeedback, "%s", help)

	case "ST", "STEP":
		n, err := count(name, args, 1)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := m.cs.Step(); err != nil {
				return curated.Errorf(CommandFailed, name, err)
			}
		}
		m.printBeam()

	case "LINE":
		n, err := count(name, args, 1)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := m.cs.StepScanline(); err != nil {
				return curated.Errorf(CommandFailed, name, err)
			}
		}
		m.printBeam()

	case "FRAME":
		n, err := count(name, args, 1)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := m.cs.StepFrame(); err != nil {
				return curated.Errorf(CommandFailed, name, err)
			}
		}
		m.printBeam()

	case "R", "RUN":
		if err := m.run(name, args); err != nil {
			return err
		}
		m.printBeam()

	case "BEAM":
		m.printBeam()

	case "STATE":
		m.printf(styleFeedback, "%s", m.cs.String())

	case "REGS":
		s := m.cs.Regs.String()
		if s == "" {
			s = "no registers written"
		}
		m.printf(styleRegs, "%s", s)

	case "PALETTE":
		m.printf(styleRegs, "%s", m.cs.Regs.Palette.String())

	case "PEEK":
		if len(args) == 0 {
			return curated.Errorf(MissingArgument, name)
		}
		if reg, ok := chipregs.Lookup(args[0]); ok {
			m.printf(styleRegs, "%s = $%04x", reg, m.cs.Regs.Peek(reg))
			break // switch
		}
		addr, err := parseValue(name, args[0])
		if err != nil {
			return err
		}
		v, err := m.cs.Mem.Peek(addr)
		if err != nil {
			return curated.Errorf(CommandFailed, name, err)
		}
		m.printf(styleMem, "$%05x = $%04x", addr, v)

	case "POKE":
		if len(args) < 2 {
			return curated.Errorf(MissingArgument, name)
		}
		addr, err := parseValue(name, args[0])
		if err != nil {
			return err
		}
		v, err := parseValue(name, args[1])
		if err != nil {
			return err
		}
		if v > 0xffff {
			return curated.Errorf(BadArgument, name, args[1])
		}
		if err := m.cs.Mem.Poke(addr, uint16(v)); err != nil {
			return curated.Errorf(CommandFailed, name, err)
		}
		m.printf(styleMem, "$%05x = $%04x", addr, v)

	case "MEM":
		if len(args) == 0 {
			return curated.Errorf(MissingArgument, name)
		}
		from, err := parseValue(name, args[0])
		if err != nil {
			return err
		}
		to := from + defaultMemSize - 1
		if len(args) > 1 {
			to, err = parseValue(name, args[1])
			if err != nil {
				return err
			}
		}
		if to < from {
			return curated.Errorf(BadArgument, name, args[1])
		}
		m.printf(styleMem, "%s", m.cs.Mem.Dump(from, to))

	case "COPPER":
		m.printf(styleCopper, "%s", m.cs.Copper.String())

		addr := m.cs.Copper.PC()
		if !m.cs.Copper.Enabled() {
			addr, _ = m.cs.Copper.Locations()
		}
		n := defaultDisasmSize
		if len(args) > 0 {
			var err error
			addr, err = parseValue(name, args[0])
			if err != nil {
				return err
			}
		}
		if len(args) > 1 {
			var err error
			n, err = count(name, args[1:], defaultDisasmSize)
			if err != nil {
				return err
			}
		}
		m.printf(styleCopper, "%s", strings.Join(copper.Disassemble(m.cs.Mem, addr, n), "\n"))

	case "DUMP":
		if len(args) == 0 {
			return curated.Errorf(MissingArgument, name)
		}
		c, err := m.component(name, args[0])
		if err != nil {
			return err
		}
		m.printf(styleFeedback, "%s", spewer.Sdump(c))

	case "GRAPH":
		if len(args) < 2 {
			return curated.Errorf(MissingArgument, name)
		}
		c, err := m.component(name, args[0])
		if err != nil {
			return err
		}
		f, err := os.Create(args[1])
		if err != nil {
			return curated.Errorf(CommandFailed, name, err)
		}
		memviz.Map(f, c)
		if err := f.Close(); err != nil {
			return curated.Errorf(CommandFailed, name, err)
		}
		m.printf(styleFeedback, "graph written to %s", args[1])

	case "LOG":
		n, err := count(name, args, defaultLogSize)
		if err != nil {
			return err
		}
		logger.Tail(m.output, n)

	case "RESET":
		m.cs.Reset()
		m.printBeam()

	default:
		return curated.Errorf(UnknownCommand, cmd[0])
	}

	return nil
}

func (m *Monitor) printBeam() {
	m.printf(styleBeam, "%s cycle=%d", m.cs.Beam, m.cs.Cycles)
}

// interrupted returns true if an interrupt signal has been received since
// the last call.
func (m *Monitor) interrupted() bool {
	select {
	case <-m.sig:
		return true
	default:
		return false
	}
}

// run the emulation for a number of frames or until an interrupt signal is
// received.
func (m *Monitor) run(name string, args []string) error {
	// discard any interrupt received before the run started
	_ = m.interrupted()

	m.printf(styleFeedback, "running")

	var performanceFilter int
	var err error

	if len(args) > 0 {
		var n int
		n, err = count(name, args, 1)
		if err != nil {
			return err
		}
		err = m.cs.RunForFrameCount(n, func(_ int) (govern.State, error) {
			performanceFilter++
			if performanceFilter >= hardware.PerformanceBrake {
				performanceFilter = 0
				if m.interrupted() {
					return govern.Ending, nil
				}
			}
			return govern.Running, nil
		})
	} else {
		err = m.cs.Run(func() (govern.State, error) {
			if m.interrupted() {
				return govern.Ending, nil
			}
			return govern.Running, nil
		})
	}

	if err != nil {
		return curated.Errorf(CommandFailed, name, err)
	}
	return nil
}

// component returns the chipset component with the name.
func (m *Monitor) component(cmd string, name string) (any, error) {
	n := strings.ToUpper(name)
	switch n {
	case "BEAM":
		return m.cs.Beam, nil
	case "COPPER":
		return m.cs.Copper, nil
	case "DMA":
		return m.cs.DMA, nil
	case "VIDEO":
		return m.cs.Video, nil
	case "BITPLANES":
		return m.cs.Video.Bitplanes, nil
	case "HOST":
		return m.cs.Host, nil
	case "INTS":
		return m.cs.Ints, nil
	case "REGS":
		return m.cs.Regs, nil
	case "MEMBUS":
		return m.cs.MemoryBus, nil
	case "REGBUS":
		return m.cs.RegisterBus, nil
	case "TV":
		return m.cs.TV, nil
	}

	if s, ok := strings.CutPrefix(n, "SPRITE"); ok {
		i, err := strconv.Atoi(s)
		if err == nil && i >= 0 && i < chipregs.NumSprites {
			return m.cs.Video.Sprites[i], nil
		}
	}

	return nil, curated.Errorf(UnknownComponent, cmd, name)
}

// count returns the first argument as a positive number. the default value
// is returned if there are no arguments.
func count(cmd string, args []string, def int) (int, error) {
	if len(args) == 0 {
		return def, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return 0, curated.Errorf(BadArgument, cmd, args[0])
	}
	return n, nil
}

// parseValue accepts decimal values, or hexadecimal values prefixed with $
// or 0x.
func parseValue(cmd string, s string) (uint32, error) {
	base := 0
	v := s
	if strings.HasPrefix(v, "$") {
		v = v[1:]
		base = 16
	}
	n, err := strconv.ParseUint(v, base, 32)
	if err != nil {
		return 0, curated.Errorf(BadArgument, cmd, s)
	}
	return uint32(n), nil
}

func (m *Monitor) String() string {
	return fmt.Sprintf("monitor: interactive=%v", m.IsInteractive())
}
