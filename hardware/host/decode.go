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
	"github.com/mymig/mymig/hardware/memory/chipregs"
)

// AddressMask is applied to every processor address.
const AddressMask = 0xffffff

// Areas of the processor address space.
const (
	MemoryTop      = 0x200000
	RegisterBase   = 0xdff000
	RegisterSelect = 0xfff000
)

// Target of a processor address.
type Target int

// List of valid targets.
const (
	Unmapped Target = iota
	Memory
	Register
)

func (t Target) String() string {
	switch t {
	case Memory:
		return "memory"
	case Register:
		return "register"
	}
	return "unmapped"
}

// Decode a processor byte address. The returned address is a word address
// for the memory bus or a register offset for the register bus.
func Decode(address uint32) (Target, uint32) {
	address &= AddressMask
	if address&RegisterSelect == RegisterBase {
		return Register, address & chipregs.Mask
	}
	if address < MemoryTop {
		return Memory, (address >> 1) & bus.AddressMask
	}
	return Unmapped, 0
}

// MemoryAddress returns the processor byte address of a memory bus word
// address.
func MemoryAddress(word uint32) uint32 {
	return (word & bus.AddressMask) << 1
}

// RegisterAddress returns the processor byte address of a chip register.
func RegisterAddress(reg chipregs.Register) uint32 {
	return RegisterBase | uint32(reg&chipregs.Mask)
}

// Transaction is a single bus access by the processor.
type Transaction struct {
	Write   bool
	Address uint32
	Data    uint16
}

func (tr Transaction) String() string {
	if tr.Write {
		return fmt.Sprintf("write %06x=%04x", tr.Address&AddressMask, tr.Data)
	}
	return fmt.Sprintf("read %06x", tr.Address&AddressMask)
}

// WriteRegister returns a transaction that writes to a chip register.
func WriteRegister(reg chipregs.Register, v uint16) Transaction {
	return Transaction{Write: true, Address: RegisterAddress(reg), Data: v}
}

// ReadRegister returns a transaction that reads a chip register.
func ReadRegister(reg chipregs.Register) Transaction {
	return Transaction{Address: RegisterAddress(reg)}
}

// WriteMemory returns a transaction that writes to a memory word.
func WriteMemory(word uint32, v uint16) Transaction {
	return Transaction{Write: true, Address: MemoryAddress(word), Data: v}
}

// ReadMemory returns a transaction that reads a memory word.
func ReadMemory(word uint32) Transaction {
	return Transaction{Address: MemoryAddress(word)}
}
