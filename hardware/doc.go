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

// Package hardware is the base package for the chipset emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Chipset type is the root of the emulation and contains external
// references to all the chipset sub-systems. From here, the emulation can
// either be started to run continuously (with optional callback to check for
// continuation); or it can be stepped cycle by cycle, scanline by scanline or
// frame by frame.
//
// Every cycle is evaluated in the same fixed order by Step(). Outputs are
// computed from the state left by the previous cycle, every bus master then
// presents its requests, the two arbiters choose a winner each, the granted
// accesses are performed and finally every component commits its next state.
// The beam is always the last component to advance. Nothing inside the
// chipset runs in another goroutine.
package hardware
