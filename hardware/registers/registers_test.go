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

package registers_test

import (
	"image/color"
	"testing"

	"github.com/mymig/mymig/hardware/beam"
	"github.com/mymig/mymig/hardware/interrupts"
	"github.com/mymig/mymig/hardware/memory/chipregs"
	"github.com/mymig/mymig/hardware/registers"
	"github.com/mymig/mymig/test"
)

func TestPalette(t *testing.T) {
	regs := registers.NewRegisters(beam.NewBeam(), interrupts.NewInterrupts())

	regs.Update(chipregs.COLOR00, 0x0f00)
	test.ExpectEquality(t, regs.Palette[0], uint16(0x0f00))

	// values are masked to 12 bits
	regs.Update(chipregs.COLORxx(31), 0xf123)
	test.ExpectEquality(t, regs.Palette[31], uint16(0x0123))

	r, g, b := regs.Palette.RGB(31)
	test.ExpectEquality(t, r, uint8(0x10))
	test.ExpectEquality(t, g, uint8(0x20))
	test.ExpectEquality(t, b, uint8(0x30))

	test.ExpectEquality(t, regs.Palette.Color(0), color.RGBA{R: 0xf0, A: 0xff})

	// the shadow holds the written value
	test.ExpectEquality(t, regs.Peek(chipregs.COLORxx(31)), uint16(0xf123))

	regs.Reset()
	test.ExpectEquality(t, regs.Palette[31], uint16(0))
}

func TestBeamPosition(t *testing.T) {
	bm := beam.NewBeam()
	regs := registers.NewRegisters(bm, interrupts.NewInterrupts())

	for i := 0; i < 300*beam.HTotal/2+100; i++ {
		bm.Tick()
	}

	// 72000 + 100 cycles. vpos=150 hpos=100
	test.ExpectEquality(t, bm.Position(), beam.Position{VPos: 150, HPos: 100})
	test.ExpectEquality(t, regs.Read(chipregs.VHPOSR), uint16(150<<8|50))
	test.ExpectEquality(t, regs.Read(chipregs.VPOSR), uint16(0))

	for i := 0; i < 120*beam.HTotal; i++ {
		bm.Tick()
	}
	test.ExpectEquality(t, bm.Position(), beam.Position{VPos: 270, HPos: 100})
	test.ExpectEquality(t, regs.Read(chipregs.VHPOSR), uint16(14<<8|50))
	test.ExpectEquality(t, regs.Read(chipregs.VPOSR), uint16(1))
}

func TestReadable(t *testing.T) {
	ints := interrupts.NewInterrupts()
	regs := registers.NewRegisters(beam.NewBeam(), ints)

	for _, w := range []struct {
		reg chipregs.Register
		v   uint16
	}{
		{chipregs.INTENA, 0xc020},
		{chipregs.INTREQ, 0x8020},
		{chipregs.BPLCON0, 0x2200},
	} {
		regs.Update(w.reg, w.v)
		ints.Update(w.reg, w.v)
	}

	test.ExpectEquality(t, regs.Read(chipregs.INTENAR), uint16(0x4020))
	test.ExpectEquality(t, regs.Read(chipregs.INTREQR), uint16(0x0020))

	// write-only registers read as zero but can be peeked
	test.ExpectEquality(t, regs.Read(chipregs.BPLCON0), uint16(0))
	test.ExpectEquality(t, regs.Peek(chipregs.BPLCON0), uint16(0x2200))
	test.ExpectEquality(t, regs.Peek(chipregs.INTENA), uint16(0x4020))

	test.ExpectSuccess(t, regs.Written(chipregs.BPLCON0))
	test.ExpectFailure(t, regs.Written(chipregs.DIWSTRT))
	test.ExpectEquality(t, regs.String(), "INTENA=c020 INTREQ=8020 BPLCON0=2200")
}
