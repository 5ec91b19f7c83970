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

package copper_test

import (
	"testing"

	"github.com/mymig/mymig/hardware/beam"
	"github.com/mymig/mymig/hardware/copper"
	"github.com/mymig/mymig/hardware/memory/bus"
	"github.com/mymig/mymig/hardware/memory/chipram"
	"github.com/mymig/mymig/hardware/memory/chipregs"
	"github.com/mymig/mymig/logger"
	"github.com/mymig/mymig/test"
)

// harness drives the Copper as the only bus master unless the memory or
// register bus is stolen for the cycle
type harness struct {
	cop  *copper.Copper
	ram  *chipram.ChipRAM
	beam *beam.Beam

	stealMemory   bool
	stealRegister bool

	// register writes made by the copper
	writes []bus.RegisterWrite
}

func newHarness() *harness {
	return &harness{
		cop:  copper.NewCopper(logger.Allow),
		ram:  chipram.NewChipRAM(),
		beam: beam.NewBeam(),
	}
}

func (h *harness) load(address uint32, list ...copper.Instruction) {
	for _, ins := range list {
		h.ram.Write(address, ins.Low)
		h.ram.Write(address+1, ins.High)
		address += 2
	}
}

func (h *harness) start(address uint32) {
	h.cop.Update(chipregs.COP1LCH, uint16(address>>16))
	h.cop.Update(chipregs.COP1LCL, uint16(address))
	h.cop.Update(chipregs.COPJMP1, 0)
}

// cycle returns the register write made by the copper in the cycle, if any
func (h *harness) cycle() *bus.RegisterWrite {
	memReq, regReq := h.cop.Request()

	var memResp bus.Response
	if memReq.Active && !h.stealMemory {
		memResp.Ack = true
		memResp.Data = h.ram.Read(memReq.Address)
	}

	var wr *bus.RegisterWrite
	var regResp bus.Response
	if regReq.Active && !h.stealRegister {
		regResp.Ack = true
		wr = &bus.RegisterWrite{
			Master:   bus.Copper,
			Register: chipregs.Register(regReq.Address),
			Value:    regReq.Data,
		}
		h.writes = append(h.writes, *wr)
	}

	h.cop.Commit(memResp, regResp, h.beam.Position(), h.beam.VSync(), wr)
	h.beam.Tick()

	return wr
}

func TestDisabled(t *testing.T) {
	h := newHarness()
	h.load(0, copper.NewMove(chipregs.COLOR00, 0x0f00))

	// copper location is set but the copper is not enabled
	h.cop.Update(chipregs.COP1LCL, 0)
	for i := 0; i < beam.HTotal*beam.VTotal*2; i++ {
		mem, reg := h.cop.Request()
		test.ExpectFailure(t, mem.Active)
		test.ExpectFailure(t, reg.Active)
		h.cycle()
	}
	test.ExpectFailure(t, h.cop.Enabled())
	test.ExpectEquality(t, len(h.writes), 0)

	// COPJMP2 does not enable the copper
	h.cop.Update(chipregs.COPJMP2, 0)
	test.ExpectFailure(t, h.cop.Enabled())
}

func TestMove(t *testing.T) {
	h := newHarness()
	h.load(0x01000,
		copper.NewMove(chipregs.COLOR00, 0x0f00),
		copper.NewMove(chipregs.COLORxx(1), 0x00f0),
		copper.EndOfList,
	)
	h.start(0x01000)
	test.ExpectSuccess(t, h.cop.Enabled())
	test.ExpectEquality(t, h.cop.PC(), uint32(0x01000))

	// fetch1, fetch2, execute
	test.ExpectEquality(t, h.cycle(), (*bus.RegisterWrite)(nil))
	test.ExpectEquality(t, h.cop.State(), copper.Fetch2)
	test.ExpectEquality(t, h.cycle(), (*bus.RegisterWrite)(nil))
	test.ExpectEquality(t, h.cop.State(), copper.Execute)
	test.ExpectEquality(t, h.cop.IR(), copper.NewMove(chipregs.COLOR00, 0x0f00))

	wr := h.cycle()
	test.DemandInequality(t, wr, (*bus.RegisterWrite)(nil))
	test.ExpectEquality(t, wr.Register, chipregs.COLOR00)
	test.ExpectEquality(t, wr.Value, uint16(0x0f00))

	for i := 0; i < 3; i++ {
		h.cycle()
	}
	test.ExpectEquality(t, len(h.writes), 2)
	test.ExpectEquality(t, h.writes[1].Register, chipregs.COLORxx(1))

	// end of list is never satisfied
	for i := 0; i < beam.HTotal*10; i++ {
		h.cycle()
	}
	test.ExpectEquality(t, len(h.writes), 2)
	test.ExpectEquality(t, h.cop.State(), copper.Execute)
	test.ExpectEquality(t, h.cop.IR(), copper.EndOfList)
	test.ExpectEquality(t, h.cop.Executed, 2)
}

func TestMoveStall(t *testing.T) {
	h := newHarness()
	h.load(0, copper.NewMove(chipregs.COLOR00, 0x0123), copper.EndOfList)
	h.start(0)

	h.cycle()
	h.cycle()
	test.ExpectEquality(t, h.cop.State(), copper.Execute)

	// the move is held while the register bus is granted elsewhere
	h.stealRegister = true
	for i := 0; i < 5; i++ {
		_, reg := h.cop.Request()
		test.ExpectSuccess(t, reg.Active)
		h.cycle()
		test.ExpectEquality(t, h.cop.State(), copper.Execute)
	}
	test.ExpectEquality(t, h.cop.Stalled, 5)
	test.ExpectEquality(t, len(h.writes), 0)

	h.stealRegister = false
	test.ExpectInequality(t, h.cycle(), (*bus.RegisterWrite)(nil))
	test.ExpectEquality(t, h.cop.State(), copper.Fetch1)
	test.ExpectEquality(t, len(h.writes), 1)
}

func TestFetchStall(t *testing.T) {
	h := newHarness()
	h.load(0, copper.NewMove(chipregs.COLOR00, 0x0123), copper.EndOfList)
	h.start(0)

	h.stealMemory = true
	for i := 0; i < 10; i++ {
		h.cycle()
	}
	test.ExpectEquality(t, h.cop.State(), copper.Fetch1)
	test.ExpectEquality(t, h.cop.PC(), uint32(0))

	h.stealMemory = false
	h.cycle()
	test.ExpectEquality(t, h.cop.State(), copper.Fetch2)
	test.ExpectEquality(t, h.cop.PC(), uint32(1))
}

func TestWait(t *testing.T) {
	h := newHarness()
	h.load(0,
		copper.NewWait(20, 10),
		copper.NewMove(chipregs.COLOR00, 0x0fff),
		copper.EndOfList,
	)
	h.start(0)

	for len(h.writes) == 0 {
		h.cycle()
		if h.beam.VSync() {
			t.Fatalf("copper did not write COLOR00 in the first frame")
		}
	}

	// WAIT is satisfied when hpos>>2 reaches 10. the MOVE is fetched over the
	// next two cycles and executed in the cycle after that. the beam has
	// ticked once since the write
	test.ExpectEquality(t, h.beam.Position(), beam.Position{VPos: 20, HPos: 40 + 3 + 1})
}

func TestSatisfied(t *testing.T) {
	w := copper.NewWait(20, 10)

	// the two low bits of hpos are not part of the comparison
	test.ExpectFailure(t, w.Satisfied(10, 20))
	test.ExpectFailure(t, w.Satisfied(39, 20))
	test.ExpectSuccess(t, w.Satisfied(40, 20))
	test.ExpectFailure(t, w.Satisfied(479, 19))
	test.ExpectSuccess(t, w.Satisfied(0, 21))

	// vertical mask of zero. only the most significant bit of vpos is compared
	w = copper.Instruction{Low: 0x8001, High: 0x0000}
	test.ExpectEquality(t, w.Kind(), copper.Wait)
	test.ExpectEquality(t, w.VP(), uint8(0x80))
	test.ExpectEquality(t, w.VE(), uint8(0))
	test.ExpectFailure(t, w.Satisfied(0, 0x7f))
	test.ExpectSuccess(t, w.Satisfied(0, 0x80))
	test.ExpectSuccess(t, w.Satisfied(0, 0xff))

	// vpos bit 8 is not part of the comparison
	test.ExpectFailure(t, w.Satisfied(0, 0x100))

	// partial horizontal mask
	w = copper.NewMaskedWait(20, 0x10, 0x7f, 0x70)
	test.ExpectEquality(t, w.HE(), uint8(0x70))
	test.ExpectFailure(t, w.Satisfied(60, 20))
	test.ExpectSuccess(t, w.Satisfied(64, 20))
	test.ExpectSuccess(t, w.Satisfied(0, 21))
	test.ExpectEquality(t, copper.NewMaskedWait(20, 10, 0x7f, 0x7f), copper.NewWait(20, 10))

	// the end of list wait is never satisfied
	for v := uint16(0); v < beam.VTotal; v++ {
		for h := uint16(0); h < beam.HTotal; h++ {
			if copper.EndOfList.Satisfied(h, v) {
				t.Fatalf("end of list satisfied at %d,%d", h, v)
			}
		}
	}
}

func TestSkip(t *testing.T) {
	h := newHarness()
	h.load(0,
		copper.Instruction{Low: 0x0001, High: 0x0001},
		copper.NewMove(chipregs.COLOR00, 0x0fff),
		copper.EndOfList,
	)
	h.start(0)

	for i := 0; i < 3; i++ {
		h.cycle()
	}
	test.ExpectEquality(t, h.cop.State(), copper.Fetch1)
	test.ExpectEquality(t, h.cop.PC(), uint32(2))
	test.ExpectEquality(t, len(h.writes), 0)

	for i := 0; i < 3; i++ {
		h.cycle()
	}
	test.ExpectEquality(t, len(h.writes), 1)
}

func TestJumpAndVSync(t *testing.T) {
	h := newHarness()
	h.load(0x00100, copper.NewMove(chipregs.COLOR00, 0x0100), copper.EndOfList)
	h.load(0x70200, copper.NewMove(chipregs.COLOR00, 0x0200), copper.EndOfList)

	h.cop.Update(chipregs.COP2LCH, 0xffff)
	h.cop.Update(chipregs.COP2LCL, 0x0200)
	loc1, loc2 := h.cop.Locations()
	test.ExpectEquality(t, loc1, uint32(0))
	test.ExpectEquality(t, loc2, uint32(0x70200))

	h.start(0x00100)
	h.cycle()

	// COPJMP2 written by another master in the same cycle as a fetch
	_, _ = h.cop.Request()
	h.cop.Commit(bus.Response{Ack: true, Data: 0xffff}, bus.Response{}, h.beam.Position(), false,
		&bus.RegisterWrite{Master: bus.Processor, Register: chipregs.COPJMP2})
	test.ExpectEquality(t, h.cop.PC(), uint32(0x70200))
	test.ExpectEquality(t, h.cop.State(), copper.Fetch1)

	for i := 0; i < 3; i++ {
		h.cycle()
	}
	test.DemandEquality(t, len(h.writes), 1)
	test.ExpectEquality(t, h.writes[0].Value, uint16(0x0200))

	// vsync restarts from location 1
	for !h.beam.VSync() {
		h.cycle()
	}
	h.cycle()
	test.ExpectEquality(t, h.cop.PC(), uint32(0x00100))
	test.ExpectEquality(t, h.cop.State(), copper.Fetch1)

	for i := 0; i < 3; i++ {
		h.cycle()
	}
	test.DemandEquality(t, len(h.writes), 2)
	test.ExpectEquality(t, h.writes[1].Value, uint16(0x0100))

	// vsync overrides a COPJMP2 in the same cycle
	h.cop.Commit(bus.Response{}, bus.Response{}, beam.Position{}, true,
		&bus.RegisterWrite{Master: bus.Processor, Register: chipregs.COPJMP2})
	test.ExpectEquality(t, h.cop.PC(), uint32(0x00100))
}

func TestDisassembly(t *testing.T) {
	test.ExpectEquality(t, copper.NewMove(chipregs.COLOR00, 0x0f00).String(), "MOVE COLOR00, #$0f00")
	test.ExpectEquality(t, copper.NewWait(44, 5).String(), "WAIT v=44 h=5")
	test.ExpectEquality(t, copper.Instruction{Low: 0x2c01, High: 0x0000}.String(), "WAIT v=44 h=0 mask=00,00")
	test.ExpectEquality(t, copper.EndOfList.String(), "WAIT end")
	test.ExpectEquality(t, copper.Instruction{Low: 0x0001, High: 0x0001}.String(), "SKIP [0001 0001]")

	ram := chipram.NewChipRAM()
	ram.Write(0x10, 0x0180)
	ram.Write(0x11, 0x0fff)
	ram.Write(0x12, 0xffff)
	ram.Write(0x13, 0xfffe)
	test.ExpectEquality(t, copper.Disassemble(ram, 0x10, 2)[1], "00012: WAIT end")
	test.ExpectEquality(t, copper.Disassemble(ram, 0x10, 2)[0], "00010: MOVE COLOR00, #$0fff")
}
