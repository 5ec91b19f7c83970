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

package hardware

import (
	"github.com/mymig/mymig/curated"
	"github.com/mymig/mymig/govern"
)

// UnsupportedState is the sentinal error pattern for a State that the Run()
// function cannot handle.
const UnsupportedState = "chipset: unsupported emulation state (%s) in Run() function"

// The continueCheck() function in Run() is called at the end of every
// scanline but it can still be expensive to do a full continue check every
// time.
//
// The PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible, subject to the
// frame limiter of the television.
func (cs *Chipset) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending && state != govern.Initialising {
		switch state {
		case govern.Running, govern.Stepping:
			if err := cs.StepScanline(); err != nil {
				return err
			}
		case govern.Paused:
		default:
			return curated.Errorf(UnsupportedState, state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount sets emulator running for the specified number of frames.
// Useful for FPS and regression tests.
//
// Frames are counted by the television so the first frame is only counted
// once the beam has passed through the first vertical sync.
func (cs *Chipset) RunForFrameCount(numFrames int, continueCheck func(frame int) (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (govern.State, error) { return govern.Running, nil }
	}

	frameNum := cs.TV.GetCoords().Frame
	targetFrame := frameNum + numFrames

	state := govern.Running
	for frameNum != targetFrame && state != govern.Ending {
		if err := cs.Step(); err != nil {
			return err
		}

		frameNum = cs.TV.GetCoords().Frame

		var err error
		state, err = continueCheck(frameNum)
		if err != nil {
			return err
		}
	}

	return nil
}
