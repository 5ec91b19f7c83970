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

package chipregs_test

import (
	"testing"

	"github.com/go-test/deep"

	"github.com/mymig/mymig/hardware/memory/chipregs"
	"github.com/mymig/mymig/test"
)

func TestRegisterGroups(t *testing.T) {
	test.ExpectEquality(t, chipregs.SPRxPOS(7), chipregs.Register(0x178))
	test.ExpectEquality(t, chipregs.SPRxDATB(3), chipregs.Register(0x15e))
	test.ExpectEquality(t, chipregs.SPRxPTL(7), chipregs.Register(0x13e))
	test.ExpectEquality(t, chipregs.BPLxPTH(5), chipregs.Register(0x0f4))
	test.ExpectEquality(t, chipregs.BPLxPTL(5), chipregs.Register(0x0f6))
	test.ExpectEquality(t, chipregs.BPLxDAT(5), chipregs.Register(0x11a))
	test.ExpectEquality(t, chipregs.COLORxx(19), chipregs.Register(0x1a6))

	ok, n := chipregs.Register(0x1a6).IsColor()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, n, 19)

	ok, _ = chipregs.INTENA.IsColor()
	test.ExpectFailure(t, ok)
}

func TestNames(t *testing.T) {
	test.ExpectEquality(t, chipregs.COPJMP1.String(), "COPJMP1")
	test.ExpectEquality(t, chipregs.SPRxDATA(2).String(), "SPR2DATA")
	test.ExpectEquality(t, chipregs.Register(0x1ff).String(), "$1ff")

	r, ok := chipregs.Lookup("color17")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, r, chipregs.Register(0x1a2))

	_, ok = chipregs.Lookup("NOTAREG")
	test.ExpectFailure(t, ok)
}

func TestSpriteFields(t *testing.T) {
	// values taken from the manual sprite demonstration
	pos, ctl := chipregs.EncodeSprite(145, 150, 180, false)
	test.ExpectEquality(t, pos, uint16(0x9648))
	test.ExpectEquality(t, ctl, uint16(0xb401))

	var p chipregs.SpritePos
	var c chipregs.SpriteCtl
	p.Write(pos)
	c.Write(ctl)
	test.ExpectEquality(t, chipregs.SpriteStartH(p, c), uint16(145))
	test.ExpectEquality(t, chipregs.SpriteStartV(p, c), uint16(150))
	test.ExpectEquality(t, chipregs.SpriteStopV(c), uint16(180))

	// ninth bits and attach
	pos, ctl = chipregs.EncodeSprite(0x1ff, 0x105, 0x110, true)
	p.Write(pos)
	c.Write(ctl)
	expected := chipregs.SpriteCtl{
		StartH0:  true,
		StopV8:   true,
		StartV8:  true,
		Attach:   true,
		StopV0V7: 0x10,
	}
	if diff := deep.Equal(c, expected); diff != nil {
		t.Error(diff)
	}
	test.ExpectEquality(t, chipregs.SpriteStartH(p, c), uint16(0x1ff))
	test.ExpectEquality(t, chipregs.SpriteStartV(p, c), uint16(0x105))
	test.ExpectEquality(t, chipregs.SpriteStopV(c), uint16(0x110))
	test.ExpectEquality(t, c.Value(), ctl)
}

func TestBplcon0(t *testing.T) {
	var b chipregs.Bplcon0
	b.Write(2 << 12)
	test.ExpectEquality(t, b.BPU, 2)
	b.Write(0xffff)
	test.ExpectEquality(t, b.BPU, 7)
}

func TestDisplayWindow(t *testing.T) {
	var w chipregs.DisplayWindow
	w.WriteStart(0x2080)
	w.WriteStop(0x22a0)

	expected := chipregs.DisplayWindow{
		StartH: 0x80,
		StartV: 0x20,
		StopH:  0x1a0,
		StopV:  0x122,
	}
	if diff := deep.Equal(w, expected); diff != nil {
		t.Error(diff)
	}

	test.ExpectFailure(t, w.InVertical(0x1f))
	test.ExpectSuccess(t, w.InVertical(0x20))
	test.ExpectSuccess(t, w.InVertical(0x121))
	test.ExpectFailure(t, w.InVertical(0x122))
}

func TestDataFetch(t *testing.T) {
	var d chipregs.DataFetch
	d.WriteStart(0x80 >> 1)
	d.WriteStop(0x1a0 >> 1)
	test.ExpectEquality(t, d.Start, uint16(0x80))
	test.ExpectEquality(t, d.Stop, uint16(0x1a0))

	// low bits are dropped
	test.ExpectEquality(t, chipregs.DataFetchPosition(0x43), uint16(0x80))
}
