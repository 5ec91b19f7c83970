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

// Package registers implements the chip register file. Every write on the
// register bus is recorded, whoever the writer, so the monitor and the host
// processor can observe the register state. The palette registers are
// interpreted and the small number of readable registers are decoded.
//
// The register file does not own the state of any component. Components
// latch the registers they are interested in from the register bus.
package registers

import (
	"fmt"
	"strings"

	"github.com/mymig/mymig/hardware/beam"
	"github.com/mymig/mymig/hardware/interrupts"
	"github.com/mymig/mymig/hardware/memory/chipregs"
)

// number of 16-bit registers in the register space
const numRegisters = (chipregs.Mask >> 1) + 1

// Registers is the chip register file.
type Registers struct {
	beam *beam.Beam
	ints *interrupts.Interrupts

	shadow [numRegisters]uint16

	// whether a register has ever been written
	written [numRegisters]bool

	Palette Palette
}

// NewRegisters is the preferred method of initialisation for the Registers
// type. Reading of the beam position and interrupt registers is delegated to
// the arguments.
func NewRegisters(bm *beam.Beam, ints *interrupts.Interrupts) *Registers {
	return &Registers{
		beam: bm,
		ints: ints,
	}
}

// Reset all registers to zero.
func (r *Registers) Reset() {
	clear(r.shadow[:])
	clear(r.written[:])
	r.Palette.Reset()
}

func (r *Registers) String() string {
	s := strings.Builder{}
	for i := range r.shadow {
		if r.written[i] {
			reg := chipregs.Register(i << 1)
			s.WriteString(fmt.Sprintf("%s=%04x ", reg, r.shadow[i]))
		}
	}
	return strings.TrimSpace(s.String())
}

// Update records a write on the register bus.
func (r *Registers) Update(reg chipregs.Register, v uint16) {
	reg &= chipregs.Mask
	r.shadow[reg>>1] = v
	r.written[reg>>1] = true
	if ok, idx := reg.IsColor(); ok {
		r.Palette.Write(idx, v)
	}
}

// Read returns the value of a readable register as seen by a bus master.
// Registers that are not readable return zero.
func (r *Registers) Read(reg chipregs.Register) uint16 {
	reg &= chipregs.Mask
	switch reg {
	case chipregs.VPOSR:
		return (r.beam.Position().VPos >> 8) & 0x01
	case chipregs.VHPOSR:
		p := r.beam.Position()
		return (p.VPos&0xff)<<8 | (p.HPos>>1)&0xff
	case chipregs.INTENAR:
		return r.ints.INTENA
	case chipregs.INTREQR:
		return r.ints.INTREQ
	}
	return 0
}

// Peek returns the value of a register without side effects. Unlike Read(),
// registers that are not readable by a bus master return the most recently
// written value.
func (r *Registers) Peek(reg chipregs.Register) uint16 {
	reg &= chipregs.Mask
	switch reg {
	case chipregs.VPOSR, chipregs.VHPOSR, chipregs.INTENAR, chipregs.INTREQR:
		return r.Read(reg)
	case chipregs.INTENA:
		return r.ints.INTENA
	case chipregs.INTREQ:
		return r.ints.INTREQ
	}
	return r.shadow[reg>>1]
}

// Written returns true if the register has been written since the last reset.
func (r *Registers) Written(reg chipregs.Register) bool {
	return r.written[(reg&chipregs.Mask)>>1]
}
