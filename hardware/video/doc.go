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

// Package video implements the pixel producing parts of the chipset: eight
// sprite engines, the bitplane engine and the colour composer.
//
// The engines are fed entirely by register bus writes. Sprite data arrives
// either from the host processor or the Copper writing the SPRxDATA/SPRxDATB
// registers directly, or from the DMA sequencer fetching the data from memory.
// Bitplane data is written to the BPLxDAT registers in the same way.
//
// Each cycle the chipset first calls Pixel() to compose the colour for the
// current beam position from the state left by the previous cycle. It then
// calls Tick() to advance the shifters and finally Update() with the register
// write granted in the cycle, if any.
package video
