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

package television

import (
	"fmt"

	"github.com/mymig/mymig/hardware/beam"
	"github.com/mymig/mymig/hardware/television/coords"
	"github.com/mymig/mymig/hardware/television/limiter"
	"github.com/mymig/mymig/hardware/television/signal"
)

// PixelRenderer implementations display, or otherwise work with, the visual
// information from a television. For example digest.Video.
type PixelRenderer interface {
	// Resize is called when the renderer is added to the television and
	// whenever the dimensions of the frame change.
	Resize(width, height int) error

	// NewFrame and NewScanline are called at the start of the
	// frame/scanline.
	NewFrame(frameInfo FrameInfo) error
	NewScanline(scanline int) error

	// SetPixel is called every pixel clock whether or not the display is
	// enabled. The colour is black when de is false.
	SetPixel(x, y int, red, green, blue byte, de bool) error

	// some renderers may need to conclude and/or dispose of resources gently.
	// for simplicity, the PixelRenderer should be considered unusable after
	// EndRendering() has been called
	EndRendering() error
}

// FrameTrigger implementations listen for NewFrame events. FrameTrigger is a
// subset of PixelRenderer.
type FrameTrigger interface {
	NewFrame(frameInfo FrameInfo) error
}

// the number of consecutive frames of the expected size before the signal is
// considered stable.
const stabilityThreshold = 3

// FrameInfo records the current frame information.
type FrameInfo struct {
	FrameNum int

	// the number of scanlines and clocks per scanline in the most recent
	// complete frame
	TotalScanlines int
	TotalClocks    int

	// the refresh rate of the signal
	RefreshRate float32

	// whether the frame has been the expected size for a number of frames
	Stable bool
}

func (info FrameInfo) String() string {
	return fmt.Sprintf("frame %d: %dx%d %.3fHz stable=%v", info.FrameNum, info.TotalClocks, info.TotalScanlines, info.RefreshRate, info.Stable)
}

// Television is the output device of the chipset.
type Television struct {
	coords     coords.TelevisionCoords
	frameInfo  FrameInfo
	lastSignal signal.VideoSignal

	// the widest scanline in the current frame
	maxClock int

	// the number of consecutive frames of the expected size
	stableCt int

	renderers []PixelRenderer
	triggers  []FrameTrigger

	lmtr *limiter.Limiter
}

// NewTelevision is the preferred method of initialisation for the Television
// type.
func NewTelevision() *Television {
	tv := &Television{
		lmtr: limiter.NewLimiter(),
	}
	tv.Reset()
	return tv
}

func (tv *Television) String() string {
	return tv.coords.String()
}

// Reset the television to an initial state.
func (tv *Television) Reset() {
	tv.coords = coords.TelevisionCoords{}
	tv.frameInfo = FrameInfo{
		TotalScanlines: beam.VTotal,
		TotalClocks:    beam.HTotal,
		RefreshRate:    beam.RefreshRate,
	}
	tv.lastSignal = signal.NoSignal
	tv.maxClock = 0
	tv.stableCt = 0
}

// AddPixelRenderer registers an (additional) implementation of PixelRenderer.
// The renderer is resized to the current frame dimensions.
func (tv *Television) AddPixelRenderer(r PixelRenderer) error {
	for _, e := range tv.renderers {
		if e == r {
			return nil
		}
	}
	tv.renderers = append(tv.renderers, r)
	return r.Resize(tv.frameInfo.TotalClocks, tv.frameInfo.TotalScanlines)
}

// RemovePixelRenderer removes a previously added PixelRenderer.
func (tv *Television) RemovePixelRenderer(r PixelRenderer) {
	for i, e := range tv.renderers {
		if e == r {
			tv.renderers = append(tv.renderers[:i], tv.renderers[i+1:]...)
			return
		}
	}
}

// AddFrameTrigger registers an (additional) implementation of FrameTrigger.
func (tv *Television) AddFrameTrigger(f FrameTrigger) {
	for _, e := range tv.triggers {
		if e == f {
			return
		}
	}
	tv.triggers = append(tv.triggers, f)
}

// End calls EndRendering() on every PixelRenderer. The television is
// unusable after End() has been called.
func (tv *Television) End() error {
	var err error
	for _, r := range tv.renderers {
		if e := r.EndRendering(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

// Signal is called by the chipset every pixel clock.
func (tv *Television) Signal(sig signal.VideoSignal) error {
	if sig.VSync {
		if err := tv.newFrame(); err != nil {
			return err
		}
	} else if sig.HSync {
		if err := tv.newScanline(); err != nil {
			return err
		}
	}

	for _, r := range tv.renderers {
		if err := r.SetPixel(tv.coords.Clock, tv.coords.Scanline, sig.Red, sig.Green, sig.Blue, sig.DisplayEnable); err != nil {
			return err
		}
	}

	tv.lastSignal = sig
	tv.coords.Clock++
	if tv.coords.Clock > tv.maxClock {
		tv.maxClock = tv.coords.Clock
	}

	return nil
}

func (tv *Television) newScanline() error {
	tv.coords.Scanline++
	tv.coords.Clock = 0
	for _, r := range tv.renderers {
		if err := r.NewScanline(tv.coords.Scanline); err != nil {
			return err
		}
	}
	return nil
}

func (tv *Television) newFrame() error {
	// nothing has been drawn since reset
	if tv.maxClock == 0 {
		return nil
	}

	scanlines := tv.coords.Scanline + 1
	clocks := tv.maxClock

	if scanlines == beam.VTotal && clocks == beam.HTotal {
		if tv.stableCt < stabilityThreshold {
			tv.stableCt++
		}
	} else {
		tv.stableCt = 0
	}

	resize := scanlines != tv.frameInfo.TotalScanlines || clocks != tv.frameInfo.TotalClocks

	tv.coords.Frame++
	tv.coords.Scanline = 0
	tv.coords.Clock = 0
	tv.maxClock = 0

	tv.frameInfo.FrameNum = tv.coords.Frame
	tv.frameInfo.TotalScanlines = scanlines
	tv.frameInfo.TotalClocks = clocks
	tv.frameInfo.RefreshRate = float32(beam.PixelClock) / float32(scanlines*clocks)
	tv.frameInfo.Stable = tv.stableCt >= stabilityThreshold

	if resize {
		tv.lmtr.SetRefreshRate(tv.frameInfo.RefreshRate)
		for _, r := range tv.renderers {
			if err := r.Resize(clocks, scanlines); err != nil {
				return err
			}
		}
	}

	for _, r := range tv.renderers {
		if err := r.NewFrame(tv.frameInfo); err != nil {
			return err
		}
	}
	for _, f := range tv.triggers {
		if err := f.NewFrame(tv.frameInfo); err != nil {
			return err
		}
	}

	tv.lmtr.CheckFrame()
	tv.lmtr.MeasureActual()

	return nil
}

// GetCoords returns the current coordinates of the television.
func (tv *Television) GetCoords() coords.TelevisionCoords {
	return tv.coords
}

// GetFrameInfo returns the information about the most recent frame.
func (tv *Television) GetFrameInfo() FrameInfo {
	return tv.frameInfo
}

// GetLastSignal returns a copy of the most recent signal.
func (tv *Television) GetLastSignal() signal.VideoSignal {
	return tv.lastSignal
}

// IsStable returns true if the television thinks the signal is stable.
func (tv *Television) IsStable() bool {
	return tv.frameInfo.Stable
}

// SetFPSCap sets whether the emulation should wait for the frame limiter.
func (tv *Television) SetFPSCap(limit bool) {
	tv.lmtr.Active.Store(limit)
}

// SetFPS requests the number of frames per second. A value of zero or less
// restores the refresh rate of the signal.
func (tv *Television) SetFPS(fps float32) {
	tv.lmtr.SetLimit(fps)
}

// SetDisplay sets the display used by the frame limiter for quantisation.
func (tv *Television) SetDisplay(display limiter.Display) {
	tv.lmtr.SetDisplay(display)
}

// GetReqFPS returns the requested number of frames per second.
func (tv *Television) GetReqFPS() float32 {
	return tv.lmtr.IdealFPS.Load().(float32)
}

// GetActualFPS returns the measured number of frames per second.
func (tv *Television) GetActualFPS() float32 {
	return tv.lmtr.Measured.Load().(float32)
}
