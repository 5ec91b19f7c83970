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

package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/mymig/mymig/gui"
)

func setupService() {
	// MOUSEMOTION events fill up the event queue pretty quickly and we have
	// no use for them
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)
}

// service all pending SDL events. user input is forwarded to the emulation
// through the GUI.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.g.PushEvent(gui.Event{ID: gui.EventWindowClose})

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				break // switch
			}

			mod := gui.KeyModNone

			if sdl.GetModState()&sdl.KMOD_LALT == sdl.KMOD_LALT ||
				sdl.GetModState()&sdl.KMOD_RALT == sdl.KMOD_RALT {
				mod = gui.KeyModAlt
			} else if sdl.GetModState()&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT ||
				sdl.GetModState()&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
				mod = gui.KeyModShift
			} else if sdl.GetModState()&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL ||
				sdl.GetModState()&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
				mod = gui.KeyModCtrl
			}

			scr.g.PushEvent(gui.Event{
				ID: gui.EventKeyboard,
				Data: gui.EventDataKeyboard{
					Key:  sdl.GetKeyName(ev.Keysym.Sym),
					Mod:  mod,
					Down: ev.Type == sdl.KEYDOWN,
				},
			})
		}
	}
}
