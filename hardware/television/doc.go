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

// Package television implements the output device of the chipset. The
// television receives one signal.VideoSignal per pixel clock and uses the sync
// pulses in the signal to keep track of the frame and scanline. It does not
// display anything itself. Instead, PixelRenderers are added to it and they
// receive every pixel.
//
// The television also owns the frame limiter that keeps the emulation running
// at the refresh rate of the signal.
package television
