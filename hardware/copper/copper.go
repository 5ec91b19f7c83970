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

// Package copper implements the Copper coprocessor. The Copper fetches a list
// of instructions from memory and writes values to chip registers in
// synchronisation with the beam.
//
// The Copper is a bus master on both the memory bus and the register bus. It
// is disabled at power-on and is enabled by the first write to COPJMP1. Once
// enabled it restarts its list from the first location register at every
// vsync.
package copper

import (
	"fmt"

	"github.com/mymig/mymig/hardware/beam"
	"github.com/mymig/mymig/hardware/memory/bus"
	"github.com/mymig/mymig/hardware/memory/chipregs"
	"github.com/mymig/mymig/logger"
)

// the program counter and location registers are 19 bits wide
const locationMask = 0x7ffff

// State of the Copper.
type State int

// List of valid Copper states.
const (
	Fetch1 State = iota
	Fetch2
	Execute
)

func (s State) String() string {
	switch s {
	case Fetch1:
		return "FETCH1"
	case Fetch2:
		return "FETCH2"
	case Execute:
		return "EXECUTE"
	}
	return "unknown"
}

// Copper is the Copper coprocessor.
type Copper struct {
	env logger.Permission

	pc        uint32
	location1 uint32
	location2 uint32
	enabled   bool
	state     State

	// the instruction register
	ir Instruction

	// the number of instructions executed since reset
	Executed int

	// the number of cycles a MOVE was held because the register bus was
	// granted to another master
	Stalled int
}

// NewCopper is the preferred method of initialisation for the Copper type.
func NewCopper(env logger.Permission) *Copper {
	return &Copper{
		env: env,
	}
}

// Reset the Copper to its power-on state.
func (cop *Copper) Reset() {
	env := cop.env
	*cop = Copper{env: env}
}

func (cop *Copper) String() string {
	if !cop.enabled {
		return "copper: disabled"
	}
	return fmt.Sprintf("copper: pc=%05x %s ir=%s", cop.pc, cop.state, cop.ir)
}

// PC returns the program counter.
func (cop *Copper) PC() uint32 {
	return cop.pc
}

// Locations returns the values of the two location registers.
func (cop *Copper) Locations() (uint32, uint32) {
	return cop.location1, cop.location2
}

// Enabled returns true if the Copper has been enabled by a write to COPJMP1.
func (cop *Copper) Enabled() bool {
	return cop.enabled
}

// State returns the current state.
func (cop *Copper) State() State {
	return cop.state
}

// IR returns the contents of the instruction register. Only meaningful
// while in the Execute state.
func (cop *Copper) IR() Instruction {
	return cop.ir
}

// Request returns the requests for the memory bus and the register bus for
// the current cycle.
func (cop *Copper) Request() (bus.Request, bus.Request) {
	var mem bus.Request
	var reg bus.Request

	if !cop.enabled {
		return mem, reg
	}

	switch cop.state {
	case Fetch1, Fetch2:
		mem = bus.Request{
			Active:  true,
			Address: cop.pc,
		}
	case Execute:
		if cop.ir.Kind() == Move {
			reg = bus.Request{
				Active:  true,
				Write:   true,
				Address: uint32(cop.ir.Register()),
				Data:    cop.ir.Value(),
			}
		}
	}

	return mem, reg
}

// Commit the next state of the Copper. The responses are for the requests
// returned by Request() in the same cycle. The register write is the write
// granted on the register bus in this cycle, from any master.
func (cop *Copper) Commit(mem bus.Response, reg bus.Response, pos beam.Position, vsync bool, wr *bus.RegisterWrite) {
	if cop.enabled {
		cop.step(mem, reg, pos)
	}

	if wr != nil {
		cop.Update(wr.Register, wr.Value)
	}

	if vsync {
		cop.pc = cop.location1
		cop.state = Fetch1
	}
}

func (cop *Copper) step(mem bus.Response, reg bus.Response, pos beam.Position) {
	switch cop.state {
	case Fetch1:
		if mem.Ack {
			cop.ir.Low = mem.Data
			cop.pc = (cop.pc + 1) & locationMask
			cop.state = Fetch2
		}
	case Fetch2:
		if mem.Ack {
			cop.ir.High = mem.Data
			cop.pc = (cop.pc + 1) & locationMask
			cop.state = Execute
		}
	case Execute:
		switch cop.ir.Kind() {
		case Move:
			if reg.Ack {
				cop.Executed++
				cop.state = Fetch1
			} else {
				cop.Stalled++
			}
		case Wait:
			if cop.ir.Satisfied(pos.HPos, pos.VPos) {
				cop.Executed++
				cop.state = Fetch1
			}
		case Skip:
			cop.Executed++
			cop.state = Fetch1
		}
	}
}

// Update checks to see if the register write is of interest to the Copper.
// Returns true if the write was consumed.
func (cop *Copper) Update(reg chipregs.Register, v uint16) bool {
	switch reg {
	case chipregs.COP1LCH:
		cop.location1 = (cop.location1 & 0x0ffff) | (uint32(v)<<16)&locationMask
	case chipregs.COP1LCL:
		cop.location1 = (cop.location1 & 0xf0000) | uint32(v)
	case chipregs.COP2LCH:
		cop.location2 = (cop.location2 & 0x0ffff) | (uint32(v)<<16)&locationMask
	case chipregs.COP2LCL:
		cop.location2 = (cop.location2 & 0xf0000) | uint32(v)
	case chipregs.COPJMP1:
		cop.pc = cop.location1
		cop.state = Fetch1
		if !cop.enabled {
			logger.Logf(cop.env, "copper", "enabled at %05x", cop.pc)
		}
		cop.enabled = true
	case chipregs.COPJMP2:
		cop.pc = cop.location2
		cop.state = Fetch1
	default:
		return false
	}
	return true
}

// Disassemble returns the instructions in memory starting at the address.
func Disassemble(mem bus.Memory, address uint32, count int) []string {
	var s []string
	for i, n := 0, count; i < n; i++ {
		ins := Instruction{
			Low:  mem.Read(address & locationMask),
			High: mem.Read((address + 1) & locationMask),
		}
		s = append(s, fmt.Sprintf("%05x: %s", address&locationMask, ins))
		address += 2
	}
	return s
}
