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

// Package arbiter implements fixed priority bus arbitration. The chipset has
// two instances, one for the memory bus and one for the register bus.
//
// The priority order is the order of the bus.Master values: DMA wins over the
// Copper which wins over the processor. At most one request is granted each
// cycle. A request that is not granted is not queued. The master must present
// the request again on a later cycle.
package arbiter

import (
	"fmt"
	"strings"

	"github.com/mymig/mymig/hardware/memory/bus"
)

// Requests is the set of requests presented to an arbiter in a single cycle,
// indexed by bus.Master.
type Requests [bus.NumMasters]bus.Request

// Clear all requests.
func (r *Requests) Clear() {
	*r = Requests{}
}

// Stats records the activity of an arbiter.
type Stats struct {
	// the number of grants to each master
	Grants [bus.NumMasters]int

	// the number of cycles in which each master presented a request but was
	// not granted the bus
	Refused [bus.NumMasters]int

	// the number of cycles in which more than one master presented a request
	Contention int

	// the number of cycles arbitrated
	Cycles int
}

func (s Stats) String() string {
	b := strings.Builder{}
	for m := bus.Master(0); m < bus.NumMasters; m++ {
		b.WriteString(fmt.Sprintf("%s: %d/%d ", m, s.Grants[m], s.Refused[m]))
	}
	b.WriteString(fmt.Sprintf("contention: %d/%d", s.Contention, s.Cycles))
	return b.String()
}

// Arbiter grants at most one request each cycle.
type Arbiter struct {
	label string

	// the most recent winner
	winner bus.Master

	Stats Stats
}

// NewArbiter is the preferred method of initialisation for the Arbiter type.
// The label is used to identify the arbiter in String() output.
func NewArbiter(label string) *Arbiter {
	return &Arbiter{
		label:  label,
		winner: bus.NoMaster,
	}
}

// Reset the arbiter and its statistics.
func (arb *Arbiter) Reset() {
	arb.winner = bus.NoMaster
	arb.Stats = Stats{}
}

func (arb *Arbiter) String() string {
	return fmt.Sprintf("%s: winner=%s", arb.label, arb.winner)
}

// Label returns the label given to the arbiter.
func (arb *Arbiter) Label() string {
	return arb.label
}

// Winner returns the master granted the bus by the most recent call to
// Arbitrate().
func (arb *Arbiter) Winner() bus.Master {
	return arb.winner
}

// Arbitrate returns the highest priority master with an active request. If
// there is no active request then bus.NoMaster is returned.
func (arb *Arbiter) Arbitrate(req *Requests) bus.Master {
	arb.Stats.Cycles++
	arb.winner = bus.NoMaster

	var active int
	for m := bus.Master(0); m < bus.NumMasters; m++ {
		if !req[m].Active {
			continue
		}
		active++
		if arb.winner == bus.NoMaster {
			arb.winner = m
		} else {
			arb.Stats.Refused[m]++
		}
	}

	if active > 1 {
		arb.Stats.Contention++
	}

	if arb.winner != bus.NoMaster {
		arb.Stats.Grants[arb.winner]++
	}

	return arb.winner
}
