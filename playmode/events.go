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
)

// eventHandler is the continueCheck function for the chipset's Run()
// function. While paused the function blocks until an event is received.
func (pl *playmode) eventHandler() (govern.State, error) {
	if pl.state == govern.Paused {
		select {
		case <-pl.intChan:
			return govern.Ending, nil
		case ev := <-pl.g.UserInput:
			return pl.userInputHandler(ev)
		}
	}

	select {
	case <-pl.intChan:
		return govern.Ending, nil
	case ev := <-pl.g.UserInput:
		return pl.userInputHandler(ev)
	default:
	}

	return pl.state, nil
}

func (pl *playmode) userInputHandler(ev gui.Event) (govern.State, error) {
	switch ev.ID {
	case gui.EventWindowClose:
		return govern.Ending, nil
	case gui.EventKeyboard:
		if kb, ok := ev.Data.(gui.EventDataKeyboard); ok {
			pl.keyboard(kb)
		}
	}
	return pl.state, nil
}
