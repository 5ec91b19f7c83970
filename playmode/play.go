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

// Package playmode runs the chipset without any debugging features. Frames
// are sent to a GUI front end and user input is received from it.
package playmode

import (
	"os"
	"os/signal"

	"github.com/mymig/mymig/curated"
	"github.com/mymig/mymig/govern"
	"github.com/mymig/mymig/gui"
	"github.com/mymig/mymig/hardware"
	"github.com/mymig/mymig/logger"
	"github.com/mymig/mymig/screenshot"
)

// PlayError is the sentinal error pattern for errors from the Play()
// function.
const PlayError = "playmode: %v"

// Options for the Play() function. The zero value is usable.
type Options struct {
	// screenshots are taken when the user presses F12. screenshots are
	// disabled if Screenshot is nil
	Screenshot *screenshot.Screenshot

	// the base name of the screenshot file. the frame number and file
	// extension are appended
	ScreenshotBase string
}

type playmode struct {
	cs   *hardware.Chipset
	g    *gui.GUI
	opts Options

	state   govern.State
	intChan chan os.Signal
}

// Play runs the chipset until the user quits or an error occurs. Play() is
// run in the emulation goroutine. The GUI front end must be run in the main
// thread.
func Play(cs *hardware.Chipset, g *gui.GUI, opts Options) error {
	pl := &playmode{
		cs:      cs,
		g:       g,
		opts:    opts,
		state:   govern.Running,
		intChan: make(chan os.Signal, 1),
	}

	// redirect interrupt signal to an os.Signal channel
	signal.Notify(pl.intChan, os.Interrupt)
	defer signal.Stop(pl.intChan)

	cs.Mode = govern.ModeRun

	pl.g.SetState(pl.state)
	defer pl.g.SetState(govern.Ending)

	logger.Logf(cs.Instance, "playmode", "started in %s mode", cs.Mode)

	if err := cs.Run(pl.eventHandler); err != nil {
		return curated.Errorf(PlayError, err)
	}

	logger.Log(cs.Instance, "playmode", "ended")

	return nil
}

// setState changes the emulation state and notifies the front end.
func (pl *playmode) setState(state govern.State) {
	if pl.state == state {
		return
	}
	pl.state = state
	pl.g.SetState(state)
}
