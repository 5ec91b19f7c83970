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

package script_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mymig/mymig/curated"
	"github.com/mymig/mymig/digest"
	"github.com/mymig/mymig/hardware"
	"github.com/mymig/mymig/hardware/beam"
	"github.com/mymig/mymig/logger"
	"github.com/mymig/mymig/script"
	"github.com/mymig/mymig/test"
)

func newChipset(t *testing.T, src string) (*hardware.Chipset, *script.Script) {
	t.Helper()

	cs, err := hardware.NewChipset(nil, nil)
	test.DemandSuccess(t, err)

	s, err := script.NewScript(logger.Deny, "test", src)
	test.DemandSuccess(t, err)
	t.Cleanup(s.Close)

	cs.SetProgram(s)
	return cs, s
}

// run the chipset until the script has finished
func runScript(t *testing.T, cs *hardware.Chipset, s *script.Script) {
	t.Helper()
	for i := 0; i < beam.HTotal*beam.VTotal; i++ {
		test.DemandSuccess(t, cs.Step())
		if s.Done() && !cs.Host.Busy() {
			return
		}
	}
	t.Fatalf("script did not finish")
}

func TestWriteRead(t *testing.T) {
	cs, s := newChipset(t, `
		setreg(COLOR01, 0x123)
		poke(0x500, 0xbeef)
		local v = peek(0x500)
		poke(0x501, v + 1)
		setptr(BPL1PTH, 0x12345)
	`)
	runScript(t, cs, s)

	test.ExpectSuccess(t, s.Err())
	test.ExpectEquality(t, cs.Regs.Palette[1], uint16(0x123))
	test.ExpectEquality(t, cs.Mem.Read(0x500), uint16(0xbeef))
	test.ExpectEquality(t, cs.Mem.Read(0x501), uint16(0xbef0))
	test.ExpectEquality(t, cs.DMA.BitplanePointer(0), uint32(0x12345))
}

func TestIdle(t *testing.T) {
	cs, s := newChipset(t, `
		poke(0x10, 1)
		idle(50)
		poke(0x11, 1)
	`)

	var first, second uint64
	for i := 0; i < 1000; i++ {
		test.DemandSuccess(t, cs.Step())
		if first == 0 && cs.Mem.Read(0x10) == 1 {
			first = cs.Cycles
		}
		if second == 0 && cs.Mem.Read(0x11) == 1 {
			second = cs.Cycles
		}
	}
	test.ExpectSuccess(t, s.Err())
	test.ExpectEquality(t, first, uint64(1))
	test.ExpectEquality(t, second-first, uint64(51))
}

func TestInterrupt(t *testing.T) {
	cs, s := newChipset(t, `
		count = 0
		function interrupt()
			setreg(INTREQ, 0x0004)
			count = count + 1
			poke(0x600, count)
		end
		setreg(INTENA, 0xc004)
		setreg(INTREQ, 0x8004)
		idle(100)
		setreg(INTREQ, 0x8004)
		idle(100)
	`)
	runScript(t, cs, s)

	test.ExpectSuccess(t, s.Err())
	test.ExpectEquality(t, s.Interrupts, 2)
	test.ExpectEquality(t, cs.Mem.Read(0x600), uint16(2))
	test.ExpectFailure(t, cs.Ints.IRQ())
}

func TestBeamPosition(t *testing.T) {
	cs, s := newChipset(t, `
		local v, h
		repeat
			v, h = beampos()
			idle(16)
		until v == 100
		poke(0x10, v)
		poke(0x11, h)
		waitline(200)
		poke(0x12, 1)
	`)
	runScript(t, cs, s)

	test.ExpectSuccess(t, s.Err())
	test.ExpectEquality(t, cs.Mem.Read(0x10), uint16(100))
	test.ExpectSuccess(t, cs.Mem.Read(0x11) < beam.HTotal)
	test.ExpectEquality(t, cs.Mem.Read(0x12), uint16(1))
}

func TestErrors(t *testing.T) {
	_, err := script.NewScript(logger.Deny, "syntax", "setreg(")
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))

	cs, s := newChipset(t, `
		poke(0x10, 1)
		error("boom")
		poke(0x11, 1)
	`)
	for i := 0; i < 100; i++ {
		test.DemandSuccess(t, cs.Step())
	}
	test.ExpectSuccess(t, curated.Is(s.Err(), script.ScriptError))
	test.ExpectEquality(t, cs.Mem.Read(0x10), uint16(1))
	test.ExpectEquality(t, cs.Mem.Read(0x11), uint16(0))

	_, err = script.LoadScript(logger.Deny, filepath.Join(t.TempDir(), "missing.lua"))
	test.ExpectSuccess(t, curated.Is(err, script.FileError))
}

func TestLoadScript(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "colour.lua")
	test.DemandSuccess(t, os.WriteFile(pth, []byte("setreg(COLOR00, 0xf0f)"), 0o644))

	s, err := script.LoadScript(logger.Deny, pth)
	test.DemandSuccess(t, err)
	defer s.Close()
	test.ExpectEquality(t, s.Name(), "colour")
}

func TestCopperHelpers(t *testing.T) {
	cs, s := newChipset(t, `
		local cl = {}
		emit(cl, cmove(COLOR00, 0xf00))
		emit(cl, cwait(44, 5))
		emit(cl, cend())
		pokes(0x100, cl)
		local pos, ctl = sprite(145, 150, 180, true)
		poke(0x200, pos)
		poke(0x201, ctl)
		poke(0x202, bor(1, 2, 4))
		poke(0x203, band(0xff0f, 0x0ff0))
		poke(0x204, lshift(1, 12))
		poke(0x205, rshift(0x8000, 15))
		poke(0x206, bxor(0xff00, 0x0ff0))
	`)
	runScript(t, cs, s)

	test.ExpectSuccess(t, s.Err())
	test.ExpectEquality(t, cs.Mem.Read(0x100), uint16(0x0180))
	test.ExpectEquality(t, cs.Mem.Read(0x101), uint16(0x0f00))
	test.ExpectEquality(t, cs.Mem.Read(0x102), uint16(0x2c0b))
	test.ExpectEquality(t, cs.Mem.Read(0x103), uint16(0x7ffe))
	test.ExpectEquality(t, cs.Mem.Read(0x104), uint16(0xffff))
	test.ExpectEquality(t, cs.Mem.Read(0x105), uint16(0xfffe))
	test.ExpectEquality(t, cs.Mem.Read(0x200), uint16(0x9648))
	test.ExpectEquality(t, cs.Mem.Read(0x201), uint16(0xb481))
	test.ExpectEquality(t, cs.Mem.Read(0x202), uint16(7))
	test.ExpectEquality(t, cs.Mem.Read(0x203), uint16(0x0f00))
	test.ExpectEquality(t, cs.Mem.Read(0x204), uint16(0x1000))
	test.ExpectEquality(t, cs.Mem.Read(0x205), uint16(1))
	test.ExpectEquality(t, cs.Mem.Read(0x206), uint16(0xf0f0))
}

func TestDemos(t *testing.T) {
	names := script.Demos()
	test.ExpectEquality(t, len(names), 6)

	_, err := script.Demo("missing")
	test.ExpectSuccess(t, curated.Is(err, script.UnknownDemo))

	run := func(name string) (*hardware.Chipset, *script.Script, string) {
		cs, err := hardware.NewChipset(nil, nil)
		test.DemandSuccess(t, err, name)
		dig, err := digest.NewVideo(cs.TV)
		test.DemandSuccess(t, err, name)
		s, err := script.NewDemo(logger.Deny, name)
		test.DemandSuccess(t, err, name)
		t.Cleanup(s.Close)
		cs.SetProgram(s)
		test.DemandSuccess(t, cs.RunForFrameCount(4, nil), name)
		test.ExpectSuccess(t, s.Err(), name)
		return cs, s, dig.Hash()
	}

	for _, name := range names {
		_, _, a := run(name)
		_, _, b := run(name)
		test.ExpectEquality(t, a, b, name)
	}

	cs, s, _ := run("copper")
	test.ExpectInequality(t, s.Interrupts, 0)
	test.ExpectEquality(t, cs.Copper.Enabled(), true)

	cs, _, _ = run("bitplane")
	test.ExpectEquality(t, cs.Regs.Palette[1], uint16(0xfff))

	// the square starts at x=50 on line 50. each line is 18 words
	test.ExpectEquality(t, cs.Mem.Read(0x1000+50*18+3), uint16(0x3ff0))
}
