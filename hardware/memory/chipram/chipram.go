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

// Package chipram implements the memory collaborator of the chipset: a
// synchronous word-addressed store. Reads and writes take effect immediately.
// The chipset is responsible for arbitrating access so that at most one
// access occurs in any cycle.
package chipram

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/mymig/mymig/curated"
	"github.com/mymig/mymig/hardware/memory/bus"
)

// Size of chip RAM in words. This covers the entire 20-bit address space of
// the memory bus.
const Size = bus.AddressMask + 1

// Sentinal error patterns.
const (
	AddressError = "chipram: address out of range (%#x)"
)

// ChipRAM is word-addressed memory shared by the chipset and the host
// processor.
type ChipRAM struct {
	bus.Memory
	bus.DebuggerBus

	RAM []uint16
}

// NewChipRAM is the preferred method of initialisation for the ChipRAM type.
func NewChipRAM() *ChipRAM {
	return &ChipRAM{
		RAM: make([]uint16, Size),
	}
}

// Snapshot creates a copy of ChipRAM in its current state.
func (ram *ChipRAM) Snapshot() *ChipRAM {
	n := &ChipRAM{
		RAM: make([]uint16, len(ram.RAM)),
	}
	copy(n.RAM, ram.RAM)
	return n
}

// Reset contents of ChipRAM.
func (ram *ChipRAM) Reset() {
	clear(ram.RAM)
}

func (ram *ChipRAM) String() string {
	return fmt.Sprintf("chip ram: %d words", len(ram.RAM))
}

// Dump returns a hex dump of the words in the range from and to (inclusive).
// Words are shown in big-endian order.
func (ram *ChipRAM) Dump(from, to uint32) string {
	from &= bus.AddressMask
	to &= bus.AddressMask
	if to < from {
		return ""
	}
	b := make([]byte, (to-from+1)*2)
	for i, w := range ram.RAM[from : to+1] {
		binary.BigEndian.PutUint16(b[i*2:], w)
	}
	return hex.Dump(b)
}

// Read is an implementation of bus.Memory.
func (ram *ChipRAM) Read(address uint32) uint16 {
	return ram.RAM[address&bus.AddressMask]
}

// Write is an implementation of bus.Memory.
func (ram *ChipRAM) Write(address uint32, data uint16) {
	ram.RAM[address&bus.AddressMask] = data
}

// Peek is an implementation of bus.DebuggerBus.
func (ram *ChipRAM) Peek(address uint32) (uint16, error) {
	if address > bus.AddressMask {
		return 0, curated.Errorf(AddressError, address)
	}
	return ram.RAM[address], nil
}

// Poke is an implementation of bus.DebuggerBus.
func (ram *ChipRAM) Poke(address uint32, value uint16) error {
	if address > bus.AddressMask {
		return curated.Errorf(AddressError, address)
	}
	ram.RAM[address] = value
	return nil
}

// Load copies the words into memory starting at address. Used to prepare
// memory before the emulation starts.
func (ram *ChipRAM) Load(address uint32, words []uint16) error {
	if int(address)+len(words) > len(ram.RAM) {
		return curated.Errorf(AddressError, int(address)+len(words))
	}
	copy(ram.RAM[address:], words)
	return nil
}
