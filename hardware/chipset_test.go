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

package hardware_test

import (
	"testing"

	"github.com/mymig/mymig/curated"
	"github.com/mymig/mymig/govern"
	"github.com/mymig/mymig/hardware"
	"github.com/mymig/mymig/hardware/beam"
	"github.com/mymig/mymig/hardware/copper"
	"github.com/mymig/mymig/hardware/host"
	"github.com/mymig/mymig/hardware/memory/bus"
	"github.com/mymig/mymig/hardware/memory/chipregs"
	"github.com/mymig/mymig/test"
)

func newChipset(t *testing.T) (*hardware.Chipset, *host.Queue) {
	t.Helper()
	cs, err := hardware.NewChipset(nil, nil)
	test.DemandSuccess(t, err)
	q := &host.Queue{}
	cs.SetProgram(q)
	return cs, q
}

// stepUntil steps the chipset until the condition is true. returns false if
// the condition is not met within two frames
func stepUntil(t *testing.T, cs *hardware.Chipset, cond func() bool) bool {
	t.Helper()
	for i := 0; i < beam.HTotal*beam.VTotal*2; i++ {
		test.DemandSuccess(t, cs.Step())
		if cond() {
			return true
		}
	}
	return false
}

func atPosition(cs *hardware.Chipset, vpos, hpos uint16) func() bool {
	return func() bool {
		p := cs.Beam.Position()
		return p.VPos == vpos && p.HPos == hpos
	}
}

func loadList(cs *hardware.Chipset, address uint32, list ...copper.Instruction) {
	for _, ins := range list {
		cs.Mem.Write(address, ins.Low)
		cs.Mem.Write(address+1, ins.High)
		address += 2
	}
}

func startCopper(q *host.Queue, address uint32) {
	q.Push(
		host.WriteRegister(chipregs.COP1LCH, uint16(address>>16)),
		host.WriteRegister(chipregs.COP1LCL, uint16(address)),
		host.WriteRegister(chipregs.COPJMP1, 0),
	)
}

func bitplaneDemo(q *host.Queue) {
	q.Push(
		host.WriteRegister(chipregs.BPL1PTH, 0),
		host.WriteRegister(chipregs.BPL1PTL, 0x1000),
		host.WriteRegister(chipregs.BPLxPTH(1), 0),
		host.WriteRegister(chipregs.BPLxPTL(1), 0x2000),
		host.WriteRegister(chipregs.BPLCON0, 2<<12),
		host.WriteRegister(chipregs.DIWSTRT, 0x2080),
		host.WriteRegister(chipregs.DIWSTOP, 0x22a0),
		host.WriteRegister(chipregs.DDFSTRT, 0x40),
		host.WriteRegister(chipregs.DDFSTOP, 0xd0),
	)
}

func TestCopperMoveColour(t *testing.T) {
	cs, q := newChipset(t)

	loadList(cs, 0x400,
		copper.NewWait(0x20, 0x40),
		copper.NewMove(chipregs.COLOR00, 0x0f00),
		copper.EndOfList,
	)
	startCopper(q, 0x400)

	ok := stepUntil(t, cs, func() bool {
		wr, ok := cs.LastWrite()
		return ok && wr.Master == bus.Copper && wr.Register == chipregs.COLOR00
	})
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, cs.Regs.Palette[0], uint16(0x0f00))

	// the signal in the cycle of the grant still shows the old colour
	sig := cs.Signal()
	test.ExpectSuccess(t, sig.DisplayEnable)
	test.ExpectEquality(t, sig.Index, 0)
	test.ExpectEquality(t, sig.Red, uint8(0))

	test.DemandSuccess(t, cs.Step())
	sig = cs.Signal()
	test.ExpectEquality(t, sig.Red, uint8(0xf0))
	test.ExpectEquality(t, sig.Green, uint8(0))
	test.ExpectEquality(t, sig.Blue, uint8(0))

	// the colour is never output outside of the display window
	test.DemandSuccess(t, cs.StepFrame())
	test.ExpectFailure(t, cs.Signal().DisplayEnable)
	test.ExpectEquality(t, cs.Signal().Red, uint8(0))
}

func TestHostStall(t *testing.T) {
	cs, q := newChipset(t)
	bitplaneDemo(q)

	// host writes are pushed at the start of the data fetch
	test.DemandSuccess(t, stepUntil(t, cs, atPosition(cs, 0x20, 0x80)))
	test.DemandEquality(t, q.Len(), 0)

	const numWrites = 64
	for i := 0; i < numWrites; i++ {
		q.Push(host.WriteMemory(0x8000+uint32(i), 0xa000|uint16(i)))
	}

	ok := stepUntil(t, cs, func() bool {
		return q.Len() == 0 && !cs.Host.Busy()
	})
	test.DemandSuccess(t, ok)

	for i := 0; i < numWrites; i++ {
		test.ExpectEquality(t, cs.Mem.Read(0x8000+uint32(i)), 0xa000|uint16(i), i)
	}

	test.ExpectEquality(t, cs.Host.Stats.Completed, 9+numWrites)
	test.ExpectInequality(t, cs.Host.Stats.Stalled, 0)
	test.ExpectEquality(t, cs.MemoryBus.Stats.Refused[bus.Processor], cs.Host.Stats.Stalled)
}

func TestBitplaneFetch(t *testing.T) {
	cs, q := newChipset(t)
	bitplaneDemo(q)

	test.DemandSuccess(t, stepUntil(t, cs, atPosition(cs, 0x20, 0)))

	var bpl1, bpl2 int
	for i := 0; i < beam.HTotal; i++ {
		test.DemandSuccess(t, cs.Step())
		wr, ok := cs.LastWrite()
		if !ok {
			continue
		}
		test.ExpectEquality(t, wr.Master, bus.DMA)
		switch wr.Register {
		case chipregs.BPL1DAT:
			bpl1++
		case chipregs.BPLxDAT(1):
			bpl2++
		}
	}

	test.ExpectEquality(t, bpl1, 18)
	test.ExpectEquality(t, bpl2, 18)
	test.ExpectEquality(t, cs.DMA.BitplanePointer(0), uint32(0x1000+18))
	test.ExpectEquality(t, cs.DMA.BitplanePointer(1), uint32(0x2000+18))
}

func TestBitplanePixels(t *testing.T) {
	cs, q := newChipset(t)
	bitplaneDemo(q)
	q.Push(
		host.WriteRegister(chipregs.COLOR00, 0x000),
		host.WriteRegister(chipregs.COLORxx(1), 0x00f),
		host.WriteRegister(chipregs.COLORxx(2), 0x0f0),
		host.WriteRegister(chipregs.COLORxx(3), 0xf00),
	)

	// plane 1 is all ones and plane 2 is all zeros
	for i := uint32(0); i < 18; i++ {
		cs.Mem.Write(0x1000+i, 0xffff)
		cs.Mem.Write(0x2000+i, 0x0000)
	}

	test.DemandSuccess(t, stepUntil(t, cs, atPosition(cs, 0x20, 0)))

	var ones int
	for i := 0; i < beam.HTotal; i++ {
		test.DemandSuccess(t, cs.Step())
		sig := cs.Signal()
		if sig.Index == 1 {
			ones++
			if sig.DisplayEnable {
				test.ExpectEquality(t, sig.Blue, uint8(0xf0))
			}
		}
	}

	test.ExpectEquality(t, ones, 18*16)
}

func TestRegisterRead(t *testing.T) {
	cs, q := newChipset(t)

	var data []uint16
	q.OnRead = func(_ host.Transaction, v uint16) {
		data = append(data, v)
	}

	test.DemandSuccess(t, stepUntil(t, cs, atPosition(cs, 5, 100)))
	q.Push(host.ReadRegister(chipregs.VHPOSR))
	test.DemandSuccess(t, cs.Step())

	test.DemandEquality(t, len(data), 1)
	test.ExpectEquality(t, data[0], uint16(0x0532))
}

func TestInterruptService(t *testing.T) {
	cs, q := newChipset(t)

	loadList(cs, 0x400,
		copper.NewWait(0x30, 0x10),
		copper.NewMove(chipregs.INTREQ, 0x8010),
		copper.EndOfList,
	)
	q.Push(host.WriteRegister(chipregs.INTENA, 0xc010))
	startCopper(q, 0x400)

	var serviced int
	q.OnInterrupt = func(q *host.Queue) {
		serviced++
		q.Push(host.WriteRegister(chipregs.INTREQ, 0x0010))
	}

	var raised bool
	err := cs.RunForFrameCount(3, func(_ int) (govern.State, error) {
		raised = raised || cs.IRQ()
		return govern.Running, nil
	})
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, raised)
	test.ExpectEquality(t, serviced, 3)
	test.ExpectFailure(t, cs.Ints.IRQ())
}

func TestRun(t *testing.T) {
	cs, _ := newChipset(t)

	var scanlines int
	err := cs.Run(func() (govern.State, error) {
		scanlines++
		if scanlines >= 10 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cs.Beam.Position().VPos, uint16(10))
	test.ExpectEquality(t, cs.Beam.Position().HPos, uint16(0))

	// paused emulation does not advance
	var checks int
	err = cs.Run(func() (govern.State, error) {
		checks++
		if checks >= 5 {
			return govern.Ending, nil
		}
		return govern.Paused, nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cs.Beam.Position().VPos, uint16(11))

	err = cs.Run(func() (govern.State, error) {
		return govern.State(99), nil
	})
	test.ExpectSuccess(t, curated.Is(err, hardware.UnsupportedState))
}

func TestReset(t *testing.T) {
	cs, q := newChipset(t)
	q.Push(host.WriteRegister(chipregs.COLORxx(5), 0x123))
	test.DemandSuccess(t, cs.StepFrame())
	test.ExpectEquality(t, cs.Regs.Palette[5], uint16(0x123))
	test.ExpectEquality(t, cs.Cycles, uint64(beam.HTotal*beam.VTotal))

	cs.Reset()
	test.ExpectEquality(t, cs.Regs.Palette[5], uint16(0))
	test.ExpectEquality(t, cs.Beam.Position(), beam.Position{})
	test.ExpectEquality(t, cs.Cycles, uint64(0))
}
