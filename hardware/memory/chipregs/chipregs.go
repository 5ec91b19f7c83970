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

// Package chipregs defines the chip register address space. Registers are
// identified by their 9-bit byte offset from the base of the chip register
// area. The lowest bit is always zero because registers are 16 bits wide.
package chipregs

import (
	"fmt"
	"strings"
)

// Register is the 9-bit offset of a chip register.
type Register uint16

// Mask is applied to an address on the register bus to produce a Register.
const Mask = 0x1fe

// Registers of the emulated chipset facilities.
const (
	VPOSR   Register = 0x004
	VHPOSR  Register = 0x006
	INTENAR Register = 0x01c
	INTREQR Register = 0x01e

	COP1LCH Register = 0x080
	COP1LCL Register = 0x082
	COP2LCH Register = 0x084
	COP2LCL Register = 0x086
	COPJMP1 Register = 0x088
	COPJMP2 Register = 0x08a

	DIWSTRT Register = 0x08e
	DIWSTOP Register = 0x090
	DDFSTRT Register = 0x092
	DDFSTOP Register = 0x094

	INTENA Register = 0x09a
	INTREQ Register = 0x09c

	BPL1PTH Register = 0x0e0
	BPL1PTL Register = 0x0e2

	BPLCON0 Register = 0x100

	BPL1DAT Register = 0x110

	SPR0PTH Register = 0x120
	SPR0PTL Register = 0x122

	SPR0POS  Register = 0x140
	SPR0CTL  Register = 0x142
	SPR0DATA Register = 0x144
	SPR0DATB Register = 0x146

	COLOR00 Register = 0x180
	COLOR31 Register = 0x1be
)

// Number of sprites and bitplanes supported by the chipset.
const (
	NumSprites   = 8
	NumBitplanes = 6
	NumColors    = 32
)

// Stride between the register groups of consecutive sprites and bitplanes.
const (
	spriteStride        = 8
	spritePointerStride = 4
	bitplanePtrStride   = 4
	bitplaneDatStride   = 2
)

// SPRxPOS returns the POS register for sprite n.
func SPRxPOS(n int) Register {
	return SPR0POS + Register(n*spriteStride)
}

// SPRxCTL returns the CTL register for sprite n.
func SPRxCTL(n int) Register {
	return SPR0CTL + Register(n*spriteStride)
}

// SPRxDATA returns the DATA register for sprite n.
func SPRxDATA(n int) Register {
	return SPR0DATA + Register(n*spriteStride)
}

// SPRxDATB returns the DATB register for sprite n.
func SPRxDATB(n int) Register {
	return SPR0DATB + Register(n*spriteStride)
}

// SPRxPTH returns the high pointer register for sprite n.
func SPRxPTH(n int) Register {
	return SPR0PTH + Register(n*spritePointerStride)
}

// SPRxPTL returns the low pointer register for sprite n.
func SPRxPTL(n int) Register {
	return SPR0PTL + Register(n*spritePointerStride)
}

// BPLxPTH returns the high pointer register for bitplane n (counting from
// zero).
func BPLxPTH(n int) Register {
	return BPL1PTH + Register(n*bitplanePtrStride)
}

// BPLxPTL returns the low pointer register for bitplane n (counting from
// zero).
func BPLxPTL(n int) Register {
	return BPL1PTL + Register(n*bitplanePtrStride)
}

// BPLxDAT returns the data register for bitplane n (counting from zero).
func BPLxDAT(n int) Register {
	return BPL1DAT + Register(n*bitplaneDatStride)
}

// COLORxx returns the palette register for colour n.
func COLORxx(n int) Register {
	return COLOR00 + Register(n*2)
}

// IsColor returns true if the register is in the palette range. The palette
// index is also returned.
func (r Register) IsColor() (bool, int) {
	if r >= COLOR00 && r <= COLOR31 {
		return true, int(r-COLOR00) >> 1
	}
	return false, 0
}

func (r Register) String() string {
	if n, ok := names[r]; ok {
		return n
	}
	return fmt.Sprintf("$%03x", uint16(r))
}

// Lookup returns the register with the specified name. The name is not case
// sensitive.
func Lookup(name string) (Register, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for r, n := range names {
		if n == name {
			return r, true
		}
	}
	return 0, false
}

// Names calls the function for every named register.
func Names(f func(Register, string)) {
	for r, n := range names {
		f(r, n)
	}
}
