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

package gui

import "fmt"

// EventID identifies the type of an Event.
type EventID int

// List of valid EventIDs.
const (
	EventWindowClose EventID = iota
	EventKeyboard
)

// KeyMod identifies the modifier key held during a keyboard event.
type KeyMod int

// List of valid KeyMod values.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// EventData is the payload of an Event. The underlying type depends on the
// EventID.
type EventData interface{}

// Event is sent by the front end to the emulation.
type Event struct {
	ID   EventID
	Data EventData
}

func (ev Event) String() string {
	switch ev.ID {
	case EventWindowClose:
		return "window close"
	case EventKeyboard:
		return fmt.Sprintf("keyboard: %v", ev.Data)
	}
	return "unknown event"
}

// EventDataKeyboard is the payload for an EventKeyboard event. The Key field
// uses the key names of SDL: "Escape", "Space", "F12", "P" etc.
type EventDataKeyboard struct {
	Key  string
	Down bool
	Mod  KeyMod
}

func (ev EventDataKeyboard) String() string {
	if ev.Down {
		return fmt.Sprintf("%s down", ev.Key)
	}
	return fmt.Sprintf("%s up", ev.Key)
}
