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

package beam_test

import (
	"testing"

	"github.com/mymig/mymig/hardware/beam"
	"github.com/mymig/mymig/test"
)

func TestSyncPulses(t *testing.T) {
	bm := beam.NewBeam()

	// not asserted before the first wrap
	test.ExpectFailure(t, bm.HSync())
	test.ExpectFailure(t, bm.VSync())

	const frames = 3

	var hsyncs, vsyncs int
	var lastHSync, lastVSync int
	for cycle := 1; cycle <= frames*beam.HTotal*beam.VTotal; cycle++ {
		bm.Tick()
		if bm.HSync() {
			if hsyncs > 0 {
				test.ExpectEquality(t, cycle-lastHSync, beam.HTotal)
			}
			test.ExpectEquality(t, bm.Position().HPos, uint16(0))
			lastHSync = cycle
			hsyncs++
		}
		if bm.VSync() {
			if vsyncs > 0 {
				test.ExpectEquality(t, cycle-lastVSync, beam.HTotal*beam.VTotal)
			}
			test.ExpectEquality(t, bm.Position(), beam.Position{})
			test.ExpectSuccess(t, bm.HSync())
			lastVSync = cycle
			vsyncs++
		}
	}

	test.ExpectEquality(t, hsyncs, frames*beam.VTotal)
	test.ExpectEquality(t, vsyncs, frames)
}

func TestDisplayEnable(t *testing.T) {
	bm := beam.NewBeam()

	var total int
	for v := 0; v < beam.VTotal; v++ {
		var line, first, last int
		first = -1
		for h := 0; h < beam.HTotal; h++ {
			test.ExpectEquality(t, bm.Position(), beam.Position{HPos: uint16(h), VPos: uint16(v)})
			if bm.DisplayEnable() {
				if first == -1 {
					first = h
				}
				last = h
				line++
			}
			bm.Tick()
		}

		if line > 0 {
			// contiguous
			test.ExpectEquality(t, last-first+1, line)
			test.ExpectEquality(t, line, beam.HActive)
			test.ExpectEquality(t, first, beam.HActiveStart)
		}
		total += line
	}

	test.ExpectEquality(t, total, beam.HActive*beam.VActive)
}

func TestReset(t *testing.T) {
	bm := beam.NewBeam()
	for i := 0; i < beam.HTotal+5; i++ {
		bm.Tick()
	}
	test.ExpectEquality(t, bm.Position(), beam.Position{HPos: 5, VPos: 1})
	bm.Reset()
	test.ExpectEquality(t, bm.Position(), beam.Position{})
}

func TestRefreshRate(t *testing.T) {
	test.ExpectApproximate(t, beam.RefreshRate, 59.524, 0.001)
}
