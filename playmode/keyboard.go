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

package playmode

import (
	"github.com/mymig/mymig/govern"
	"github.com/mymig/mymig/gui"
	"github.com/mymig/mymig/logger"
)

// keyboard handles key presses. key releases are ignored.
func (pl *playmode) keyboard(ev gui.EventDataKeyboard) {
	if !ev.Down {
		return
	}

	switch ev.Key {
	case "Escape":
		pl.setState(govern.Ending)

	case "Space", "P":
		if pl.state == govern.Paused {
			pl.setState(govern.Running)
		} else {
			pl.setState(govern.Paused)
		}

	case "F":
		fpsCap := &pl.cs.Instance.Prefs.FPSCap
		if err := fpsCap.Set(!fpsCap.Get().(bool)); err != nil {
			logger.Logf(logger.Allow, "playmode", "%v", err)
		}
		logger.Logf(pl.cs.Instance, "playmode", "fps cap: %v", fpsCap.Get())

	case "F12":
		if pl.opts.Screenshot == nil {
			return
		}
		fn, err := pl.opts.Screenshot.Save(pl.opts.ScreenshotBase, false)
		if err != nil {
			logger.Logf(logger.Allow, "playmode", "%v", err)
			return
		}
		logger.Logf(logger.Allow, "playmode", "screenshot saved to %s", fn)
	}
}
