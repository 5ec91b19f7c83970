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

package host

import (
	"fmt"

	"github.com/mymig/mymig/hardware/memory/bus"
	"github.com/mymig/mymig/logger"
)

// Program supplies the transactions performed by the processor.
type Program interface {
	// Next is called when the processor is idle. The irq argument is the
	// interrupt level of the chipset. Returns false if the processor should
	// remain idle this cycle.
	Next(irq bool) (Transaction, bool)

	// Complete is called when the transaction returned by Next() has been
	// acknowledged. For a read the data is the value read. For a write the
	// data is the value written.
	Complete(tr Transaction, data uint16)
}

// Stats records the activity of the processor.
type Stats struct {
	Completed int
	Unmapped  int

	// the number of cycles in which a transaction was presented but not
	// acknowledged
	Stalled int
}

// Host is the bus interface of the host processor.
type Host struct {
	env     logger.Permission
	program Program

	current Transaction
	target  Target
	address uint32
	busy    bool

	Stats Stats
}

// NewHost is the preferred method of initialisation for the Host type.
func NewHost(env logger.Permission) *Host {
	return &Host{
		env: env,
	}
}

// Reset the processor. Any transaction in progress is abandoned. The Program
// is retained.
func (h *Host) Reset() {
	h.busy = false
	h.Stats = Stats{}
}

func (h *Host) String() string {
	if !h.busy {
		return "host: idle"
	}
	return fmt.Sprintf("host: %s (%s)", h.current, h.target)
}

// SetProgram changes the program supplying the transactions. A nil Program
// leaves the processor permanently idle. Any transaction in progress is
// abandoned.
func (h *Host) SetProgram(program Program) {
	h.program = program
	h.busy = false
}

// Busy returns true if a transaction is in progress.
func (h *Host) Busy() bool {
	return h.busy
}

// Current returns the transaction in progress. Only meaningful if Busy()
// returns true.
func (h *Host) Current() Transaction {
	return h.current
}

// Request returns the requests for the memory bus and the register bus for
// the current cycle. At most one of the requests will be active.
func (h *Host) Request(irq bool) (bus.Request, bus.Request) {
	var mem bus.Request
	var reg bus.Request

	if !h.busy && h.program != nil {
		if tr, ok := h.program.Next(irq); ok {
			h.current = tr
			h.target, h.address = Decode(tr.Address)
			h.busy = true
		}
	}

	if !h.busy {
		return mem, reg
	}

	req := bus.Request{
		Active:  true,
		Write:   h.current.Write,
		Address: h.address,
		Data:    h.current.Data,
	}

	switch h.target {
	case Memory:
		mem = req
	case Register:
		reg = req
	}

	return mem, reg
}

// Commit the transaction in progress if either response acknowledges it.
// Unmapped transactions are always completed.
func (h *Host) Commit(mem bus.Response, reg bus.Response) {
	if !h.busy {
		return
	}

	var resp bus.Response

	switch h.target {
	case Memory:
		resp = mem
	case Register:
		resp = reg
	case Unmapped:
		logger.Logf(h.env, "host", "unmapped %s", h.current)
		h.Stats.Unmapped++
		resp = bus.Response{Ack: true}
	}

	if !resp.Ack {
		h.Stats.Stalled++
		return
	}

	h.busy = false
	h.Stats.Completed++

	data := resp.Data
	if h.current.Write {
		data = h.current.Data
	}

	if h.program != nil {
		h.program.Complete(h.current, data)
	}
}
