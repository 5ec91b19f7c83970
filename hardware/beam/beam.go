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

// Package beam implements the video timing generator. Horizontal and vertical
// counters run freely from the pixel clock. The counters are the only source
// of beam position for the rest of the chipset.
//
// The timing is for a 320x256 display with a pixel clock of 8MHz:
//
//	                 total  active  front porch  sync  back porch
//	horizontal       480    320     48           32    80
//	vertical         280    256     3            7     6
//
// The active window begins immediately after the sync and back porch.
package beam

import (
	"fmt"
)

// Horizontal timing in pixel clocks.
const (
	HTotal      = 480
	HActive     = 320
	HFrontPorch = 48
	HSyncWidth  = 32
	HBackPorch  = 80
)

// Vertical timing in scanlines.
const (
	VTotal      = 280
	VActive     = 256
	VFrontPorch = 3
	VSyncWidth  = 7
	VBackPorch  = 6
)

// The first beam positions of the active window.
const (
	HActiveStart = HSyncWidth + HBackPorch
	VActiveStart = VSyncWidth + VBackPorch
)

// PixelClock is the frequency of the pixel clock in Hz.
const PixelClock = 8000000

// RefreshRate is the number of frames per second produced by the timing
// generator.
const RefreshRate = float32(PixelClock) / float32(HTotal*VTotal)

// Position of the beam.
type Position struct {
	HPos uint16
	VPos uint16
}

func (p Position) String() string {
	return fmt.Sprintf("v=%03d h=%03d", p.VPos, p.HPos)
}

// Beam is the video timing generator.
type Beam struct {
	hpos uint16
	vpos uint16

	// sync pulses are registered. they are asserted for the single cycle
	// following the wrap of the counter
	hsync bool
	vsync bool
}

// NewBeam is the preferred method of initialisation for the Beam type.
func NewBeam() *Beam {
	return &Beam{}
}

// Reset the counters to the top-left of the frame. Sync pulses are not
// asserted after a reset.
func (bm *Beam) Reset() {
	*bm = Beam{}
}

func (bm *Beam) String() string {
	return fmt.Sprintf("%s de=%v hsync=%v vsync=%v", bm.Position(), bm.DisplayEnable(), bm.hsync, bm.vsync)
}

// Position returns the current beam position.
func (bm *Beam) Position() Position {
	return Position{HPos: bm.hpos, VPos: bm.vpos}
}

// HSync returns true during the first cycle of every scanline.
func (bm *Beam) HSync() bool {
	return bm.hsync
}

// VSync returns true during the first cycle of every frame.
func (bm *Beam) VSync() bool {
	return bm.vsync
}

// DisplayEnable returns true if the beam is inside the active window.
func (bm *Beam) DisplayEnable() bool {
	return bm.hpos >= HActiveStart && bm.hpos < HActiveStart+HActive &&
		bm.vpos >= VActiveStart && bm.vpos < VActiveStart+VActive
}

// Tick advances the beam by one pixel clock.
func (bm *Beam) Tick() {
	bm.hsync = false
	bm.vsync = false

	bm.hpos++
	if bm.hpos < HTotal {
		return
	}

	bm.hpos = 0
	bm.hsync = true

	bm.vpos++
	if bm.vpos < VTotal {
		return
	}

	bm.vpos = 0
	bm.vsync = true
}
