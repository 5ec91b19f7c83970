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

package bus

import (
	"fmt"

	"github.com/mymig/mymig/hardware/memory/chipregs"
)

// AddressMask is applied to every address on the memory bus.
const AddressMask = 0xfffff

// Master identifies a bus master. The order of the values is the priority
// order used by the arbiters: lower values win.
type Master int

// List of bus masters in priority order.
const (
	DMA Master = iota
	Copper
	Processor

	// the number of bus masters
	NumMasters
)

// NoMaster is used to indicate that a bus was idle in a cycle.
const NoMaster Master = -1

func (m Master) String() string {
	switch m {
	case DMA:
		return "DMA"
	case Copper:
		return "Copper"
	case Processor:
		return "Processor"
	case NoMaster:
		return "none"
	}
	return fmt.Sprintf("master(%d)", int(m))
}

// Request is presented to an arbiter by a bus master. A Request with Active
// set to false is ignored.
type Request struct {
	Active  bool
	Write   bool
	Address uint32
	Data    uint16
}

func (r Request) String() string {
	if !r.Active {
		return "idle"
	}
	if r.Write {
		return fmt.Sprintf("write %05x=%04x", r.Address, r.Data)
	}
	return fmt.Sprintf("read %05x", r.Address)
}

// Response is returned to a bus master in the cycle the request is made. For
// reads the data is valid only if Ack is true.
type Response struct {
	Ack  bool
	Data uint16
}

// RegisterWrite is the register bus write granted in a cycle. Every component
// sees every RegisterWrite and decides for itself whether the register is of
// interest.
type RegisterWrite struct {
	Master   Master
	Register chipregs.Register
	Value    uint16
}

func (w RegisterWrite) String() string {
	return fmt.Sprintf("%s=%04x (%s)", w.Register, w.Value, w.Master)
}

// Memory defines the operations of the memory collaborator when accessed by
// the chipset. Accesses through this interface are made only by the chipset
// after arbitration.
type Memory interface {
	Read(address uint32) uint16
	Write(address uint32, data uint16)
}

// DebuggerBus defines the meta-operations for memory. Think of these
// functions as "debugging" functions, that is operations outside of the normal
// operation of the machine.
type DebuggerBus interface {
	Peek(address uint32) (uint16, error)
	Poke(address uint32, value uint16) error
}
