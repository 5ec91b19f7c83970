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

// Package host implements the host processor side of the chipset. The
// processor itself is external. What is modelled here is its bus interface:
// the decoding of 24-bit byte addresses, and the request/acknowledge contract
// with the memory and register bus arbiters.
//
// The work of the processor is supplied by a Program. The Program is asked
// for a new transaction whenever the processor is idle. A transaction is
// presented to the arbiters every cycle until it is acknowledged. The
// processor has the lowest priority on both buses and so a transaction may
// stall for many cycles but it is never dropped.
//
// The interrupt level of the chipset is passed to the Program when it is
// asked for a transaction. How the Program reacts is up to the Program.
package host
