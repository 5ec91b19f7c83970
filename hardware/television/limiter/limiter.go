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

// Package limiter keeps the emulation running at the refresh rate of the
// video signal, or at some other requested rate, and measures the rate
// actually achieved.
package limiter

import (
	"sync/atomic"
	"time"

	"github.com/mymig/mymig/hardware/beam"
)

// Display is implemented by renderers that know the refresh rate of the
// physical display. If quantise is true then a requested rate that is close
// to the display's rate is snapped to it.
type Display interface {
	DisplayRefreshRate() (hz float32, quantise bool)
}

// MatchRefreshRate can be used with SetLimit() to indicate that the limit
// should equal the refresh rate.
const MatchRefreshRate float32 = -1.0

// Limiter throttles the emulation to a number of frames per second.
type Limiter struct {
	// whether to wait for the limiter each frame
	Active atomic.Bool

	// the refresh rate of the video signal
	RefreshRate atomic.Value // float32

	// the ideal number of frames per second after quantisation
	IdealFPS atomic.Value // float32

	// the measured number of frames per second
	Measured atomic.Value // float32

	// the value sent to SetLimit()
	requested atomic.Value // float32

	// the pulse that performs the limiting. checked every pulseCtLimit frames
	pulse        *time.Ticker
	pulseCt      int
	pulseCtLimit int

	// measurement of actual frame rate
	measuringPulse *time.Ticker
	measureTime    time.Time
	measureCt      int

	// nudge the limiter so that it doesn't wait for the specified number of
	// frames
	Nudge atomic.Int32

	display Display
}

// NewLimiter is preferred method of initialising a new instance of the Limiter
// type. The refresh rate is set to the refresh rate of the chipset and the
// limit is set to match.
func NewLimiter() *Limiter {
	lmtr := &Limiter{}
	lmtr.Active.Store(true)
	lmtr.Measured.Store(float32(0.0))
	lmtr.IdealFPS.Store(float32(0.0))
	lmtr.pulse = time.NewTicker(time.Millisecond * 16)
	lmtr.measuringPulse = time.NewTicker(time.Second)
	lmtr.RefreshRate.Store(beam.RefreshRate)
	lmtr.SetLimit(MatchRefreshRate)
	return lmtr
}

// SetDisplay sets the display the limiter is working for. The limit is
// recalculated.
func (lmtr *Limiter) SetDisplay(display Display) {
	lmtr.display = display
	lmtr.SetLimit(lmtr.requested.Load().(float32))
}

// SetRefreshRate changes the refresh rate. If the limit has been set to match
// the refresh rate then it is recalculated.
func (lmtr *Limiter) SetRefreshRate(refreshRate float32) {
	lmtr.RefreshRate.Store(refreshRate)
	if lmtr.requested.Load().(float32) <= 0.0 {
		lmtr.SetLimit(MatchRefreshRate)
	}
}

// SetLimit sets the number of frames per second. Use MatchRefreshRate to
// indicate that the limit should equal the refresh rate.
func (lmtr *Limiter) SetLimit(fps float32) {
	lmtr.requested.Store(fps)

	if fps <= 0.0 {
		fps = lmtr.RefreshRate.Load().(float32)
	}
	if fps <= 0.0 {
		return
	}

	if lmtr.display != nil {
		if hz, quantise := lmtr.display.DisplayRefreshRate(); quantise {
			if fps >= hz*0.96 && fps <= hz*1.04 {
				fps = hz
			}
		}
	}

	lmtr.IdealFPS.Store(fps)

	// the pulse is not checked every frame. at high frame rates the ticker
	// would not be accurate enough
	lmtr.pulseCt = 0
	lmtr.pulseCtLimit = 1 + int(fps/20)
	lmtr.pulse.Reset(time.Duration(float32(time.Second) / fps * float32(lmtr.pulseCtLimit)))

	lmtr.measureCt = 0
	lmtr.measureTime = time.Now()
}

// CheckFrame should be called every frame. It will block as required to
// maintain the limit.
func (lmtr *Limiter) CheckFrame() {
	lmtr.measureCt++

	if nudge := lmtr.Nudge.Load(); nudge > 0 {
		lmtr.Nudge.Store(nudge - 1)
		return
	}

	if lmtr.Active.Load() {
		lmtr.pulseCt++
		if lmtr.pulseCt >= lmtr.pulseCtLimit {
			lmtr.pulseCt = 0
			<-lmtr.pulse.C
		}
	}
}

// MeasureActual measures frame rate on every tick of the measuring pulse.
// Callers should be mindful of how often the function is called because
// checking the pulse channel is itself expensive.
func (lmtr *Limiter) MeasureActual() {
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		m := float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureTime).Seconds())
		lmtr.Measured.Store(m)
		lmtr.measureTime = t
		lmtr.measureCt = 0
	default:
	}
}
