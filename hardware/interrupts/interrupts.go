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

// Package interrupts implements the INTENA and INTREQ registers and the
// level-sensitive interrupt output of the chipset.
//
// Writes to both registers use set/clear semantics. If bit 15 of the written
// value is set then the other set bits of the value are set in the register.
// If bit 15 is clear then the other set bits of the value are cleared in the
// register. Bits that are clear in the value are never changed.
package interrupts

import (
	"fmt"

	"github.com/mymig/mymig/hardware/memory/chipregs"
)

// Bits of the INTENA and INTREQ registers.
const (
	SetClr = 0x8000

	// master enable. only meaningful in INTENA
	Master = 0x4000

	// the individual interrupt sources
	Sources = 0x3fff
)

// Named interrupt sources.
const (
	TBE    = 0x0001
	DSKBLK = 0x0002
	SOFT   = 0x0004
	PORTS  = 0x0008
	COPER  = 0x0010
	VERTB  = 0x0020
	BLIT   = 0x0040
	AUD0   = 0x0080
	AUD1   = 0x0100
	AUD2   = 0x0200
	AUD3   = 0x0400
	RBF    = 0x0800
	DSKSYN = 0x1000
	EXTER  = 0x2000
)

// Interrupts is the interrupt controller.
type Interrupts struct {
	// INTENA holds 15 bits. the master enable and the sources
	INTENA uint16

	// INTREQ holds 14 bits. the sources only
	INTREQ uint16
}

// NewInterrupts is the preferred method of initialisation for the Interrupts
// type.
func NewInterrupts() *Interrupts {
	return &Interrupts{}
}

// Reset all bits in both registers.
func (in *Interrupts) Reset() {
	in.INTENA = 0
	in.INTREQ = 0
}

func (in *Interrupts) String() string {
	return fmt.Sprintf("intena=%04x intreq=%04x irq=%v", in.INTENA, in.INTREQ, in.IRQ())
}

func setClr(reg uint16, v uint16, mask uint16) uint16 {
	if v&SetClr == SetClr {
		return (reg | v) & mask
	}
	return reg &^ v & mask
}

// Update checks to see if the register write is of interest to the interrupt
// controller. Returns true if the write was consumed.
func (in *Interrupts) Update(reg chipregs.Register, v uint16) bool {
	switch reg {
	case chipregs.INTENA:
		in.INTENA = setClr(in.INTENA, v, Master|Sources)
	case chipregs.INTREQ:
		in.INTREQ = setClr(in.INTREQ, v, Sources)
	default:
		return false
	}
	return true
}

// IRQ returns the level of the interrupt output. It is high when the master
// enable is set and at least one enabled source is requested.
func (in *Interrupts) IRQ() bool {
	return in.INTENA&Master == Master && in.INTENA&in.INTREQ&Sources != 0
}
