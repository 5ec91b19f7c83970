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

package arbiter_test

import (
	"testing"

	"github.com/mymig/mymig/hardware/arbiter"
	"github.com/mymig/mymig/hardware/memory/bus"
	"github.com/mymig/mymig/test"
)

func TestPriority(t *testing.T) {
	arb := arbiter.NewArbiter("memory")

	var req arbiter.Requests
	test.ExpectEquality(t, arb.Arbitrate(&req), bus.NoMaster)

	// every combination of active requests
	for i := 0; i < 1<<bus.NumMasters; i++ {
		req.Clear()
		expected := bus.NoMaster
		for m := bus.Master(0); m < bus.NumMasters; m++ {
			if i&(1<<m) != 0 {
				req[m].Active = true
				if expected == bus.NoMaster {
					expected = m
				}
			}
		}
		test.ExpectEquality(t, arb.Arbitrate(&req), expected, i)
		test.ExpectEquality(t, arb.Winner(), expected, i)
	}
}

func TestStats(t *testing.T) {
	arb := arbiter.NewArbiter("register")

	var req arbiter.Requests
	req[bus.Copper].Active = true
	req[bus.Processor].Active = true

	for i := 0; i < 10; i++ {
		arb.Arbitrate(&req)
	}

	req[bus.Copper].Active = false
	arb.Arbitrate(&req)

	test.ExpectEquality(t, arb.Stats.Cycles, 11)
	test.ExpectEquality(t, arb.Stats.Contention, 10)
	test.ExpectEquality(t, arb.Stats.Grants[bus.Copper], 10)
	test.ExpectEquality(t, arb.Stats.Grants[bus.Processor], 1)
	test.ExpectEquality(t, arb.Stats.Refused[bus.Processor], 10)
	test.ExpectEquality(t, arb.Stats.Refused[bus.DMA], 0)

	arb.Reset()
	test.ExpectEquality(t, arb.Stats, arbiter.Stats{})
	test.ExpectEquality(t, arb.Winner(), bus.NoMaster)
}
