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

package copper

import (
	"fmt"

	"github.com/mymig/mymig/hardware/memory/chipregs"
)

// Kind of Copper instruction.
type Kind int

// List of instruction kinds.
const (
	Move Kind = iota
	Wait
	Skip
)

func (k Kind) String() string {
	switch k {
	case Move:
		return "MOVE"
	case Wait:
		return "WAIT"
	case Skip:
		return "SKIP"
	}
	return "unknown"
}

// Instruction is formed from two consecutive words in memory. The first word
// fetched is Low and the second word is High.
//
//	MOVE    low:  bit 0 = 0, bits 1-8 register
//	        high: value
//
//	WAIT    low:  bit 0 = 1, bits 1-7 hp, bits 8-15 vp
//	        high: bit 0 = 0, bits 1-7 he, bits 8-14 ve, bit 15 bfd
//
//	SKIP    low:  bit 0 = 1
//	        high: bit 0 = 1
type Instruction struct {
	Low  uint16
	High uint16
}

// EndOfList is the conventional last instruction in a Copper list. It is a
// WAIT that can never be satisfied.
var EndOfList = Instruction{Low: 0xffff, High: 0xfffe}

// NewMove returns a MOVE instruction.
func NewMove(reg chipregs.Register, value uint16) Instruction {
	return Instruction{Low: uint16(reg) & chipregs.Mask, High: value}
}

// NewWait returns a WAIT instruction. The enable masks are set so that every
// bit of the beam position is compared.
func NewWait(vp uint8, hp uint8) Instruction {
	return NewMaskedWait(vp, hp, 0x7f, 0x7f)
}

// NewMaskedWait returns a WAIT instruction with the specified enable masks.
// Only the low seven bits of ve, hp and he are encoded.
func NewMaskedWait(vp uint8, hp uint8, ve uint8, he uint8) Instruction {
	return Instruction{
		Low:  uint16(vp)<<8 | uint16(hp&0x7f)<<1 | 0x0001,
		High: uint16(ve&0x7f)<<8 | uint16(he&0x7f)<<1,
	}
}

// Kind returns the kind of instruction.
func (ins Instruction) Kind() Kind {
	if ins.Low&0x0001 == 0 {
		return Move
	}
	if ins.High&0x0001 == 0 {
		return Wait
	}
	return Skip
}

// Register returns the destination register of a MOVE.
func (ins Instruction) Register() chipregs.Register {
	return chipregs.Register(ins.Low & chipregs.Mask)
}

// Value returns the value written by a MOVE.
func (ins Instruction) Value() uint16 {
	return ins.High
}

// VP returns the vertical position of a WAIT.
func (ins Instruction) VP() uint8 {
	return uint8(ins.Low >> 8)
}

// HP returns the horizontal position of a WAIT.
func (ins Instruction) HP() uint8 {
	return uint8(ins.Low>>1) & 0x7f
}

// VE returns the vertical enable mask of a WAIT.
func (ins Instruction) VE() uint8 {
	return uint8(ins.High>>8) & 0x7f
}

// HE returns the horizontal enable mask of a WAIT.
func (ins Instruction) HE() uint8 {
	return uint8(ins.High>>1) & 0x7f
}

// BFD returns the state of the blitter-finished-disable bit of a WAIT.
func (ins Instruction) BFD() bool {
	return ins.High&0x8000 == 0x8000
}

// Satisfied returns true if the beam position satisfies the conditions of a
// WAIT. The most significant bit of the vertical position cannot be masked.
// The two least significant bits of the horizontal position do not take
// part in the comparison.
func (ins Instruction) Satisfied(hpos, vpos uint16) bool {
	mv := uint8(vpos) & (ins.VE() | 0x80)
	mh := uint8(hpos>>2) & ins.HE()
	vp := ins.VP()
	return mv > vp || (mv == vp && mh >= ins.HP())
}

func (ins Instruction) String() string {
	switch ins.Kind() {
	case Move:
		return fmt.Sprintf("MOVE %s, #$%04x", ins.Register(), ins.Value())
	case Wait:
		if ins == EndOfList {
			return "WAIT end"
		}
		s := fmt.Sprintf("WAIT v=%d h=%d", ins.VP(), ins.HP())
		if ins.VE() != 0x7f || ins.HE() != 0x7f {
			s = fmt.Sprintf("%s mask=%02x,%02x", s, ins.VE(), ins.HE())
		}
		return s
	}
	return fmt.Sprintf("SKIP [%04x %04x]", ins.Low, ins.High)
}
