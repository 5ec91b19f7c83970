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

// Package bus defines the types shared by the bus masters and the bus
// arbiters. There are two buses in the chipset: the memory bus, used to read
// and write chip RAM, and the register bus, used to write chip registers.
//
// Every cycle each bus master may present one Request to each bus. The arbiter
// for the bus grants at most one of the requests and the granted master sees
// an acknowledged Response in the same cycle. Masters that are not granted
// receive an unacknowledged Response and must present the request again on a
// later cycle. There is no queueing.
//
// Addresses on the memory bus are 20-bit word addresses. Addresses on the
// register bus are chip register offsets (see the chipregs package).
package bus
