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

// Package gui connects the emulation to a windowed front end. The emulation
// and the front end run in different goroutines and communicate only through
// the channels of the GUI type.
//
// The Renderer type is a television.PixelRenderer that sends completed frames
// to the front end. Front ends are implemented in the sdlplay and ebiten
// sub-packages. Both must be launched from the main thread.
package gui

import (
	"image"

	"github.com/mymig/mymig/govern"
)

// Image is a completed frame sent from the emulation to the front end. The
// front end owns the image once it has been received.
type Image struct {
	Main  *image.RGBA
	Frame int
}

// GUI is the collection of channels used to communicate between the
// emulation and the front end.
type GUI struct {
	// completed frames. the renderer never blocks on this channel, if the
	// front end is not ready to receive a new frame the frame is dropped
	SetImage chan Image

	// changes in emulation state, sent by the emulation
	State chan govern.State

	// user input sent by the front end
	UserInput chan Event
}

// NewGUI is the preferred method of initialisation for the GUI type.
func NewGUI() *GUI {
	return &GUI{
		SetImage:  make(chan Image, 1),
		State:     make(chan govern.State, 1),
		UserInput: make(chan Event, 16),
	}
}

// SetState sends the emulation state to the front end. The oldest unread
// state is replaced if the front end has not yet received it.
func (g *GUI) SetState(state govern.State) {
	for {
		select {
		case g.State <- state:
			return
		default:
		}
		select {
		case <-g.State:
		default:
		}
	}
}

// PushEvent is used by front ends to send user input to the emulation.
// Events are dropped if the emulation is not servicing them.
func (g *GUI) PushEvent(ev Event) bool {
	select {
	case g.UserInput <- ev:
		return true
	default:
		return false
	}
}
