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

// Package script runs Lua programs as the host processor of the chipset.
//
// A Script implements the host.Program interface. The Lua program runs in a
// coroutine and every bus access made by the program suspends the coroutine
// until the chipset has completed the access. Because of this the program
// runs in lock-step with the chipset and no goroutines are required.
//
// The following functions are provided to the Lua program:
//
//	write(addr, value)     processor write to a 24-bit byte address
//	read(addr)             processor read from a 24-bit byte address
//	idle(n)                no bus access for n cycles
//	log(message)           add an entry to the central logger
//
//	bor(a, b, ...)  band(a, b)  bxor(a, b)  lshift(a, n)  rshift(a, n)
//
//	cmove(reg, value)          returns the two words of a copper MOVE
//	cwait(vp, hp [, ve, he])   returns the two words of a copper WAIT
//	cend()                     returns the two words of the end of list WAIT
//	sprite(h, vstart, vstop, attach)  returns the sprite POS and CTL words
//
// Every chip register name is defined as a global with the value of the
// register offset. CUSTOM is the base address of the chip registers.
//
// A prelude written in Lua adds setreg(), getreg(), poke(), peek(), pokes(),
// setptr(), emit(), beampos(), waitline() and trunc(). See prelude.lua for
// details.
//
// If the program defines a global function called interrupt() then it is
// called whenever the interrupt level is high and the program is between bus
// accesses. The main program is suspended until the interrupt function
// returns. The interrupt function should clear the source of the interrupt.
//
// A number of demonstration programs are embedded in the package. See the
// Demos() and Demo() functions.
package script
