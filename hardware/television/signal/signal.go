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

// Package signal exposes the interface between the chipset and the television
// implementation.
package signal

import (
	"fmt"
	"strings"
)

// VideoSignal is the video output of the chipset for a single pixel clock.
// The colour is already expanded to eight bits per channel and is black when
// DisplayEnable is false.
type VideoSignal struct {
	Red   uint8
	Green uint8
	Blue  uint8

	HSync         bool
	VSync         bool
	DisplayEnable bool

	// the palette index that produced the colour
	Index int
}

// NoSignal is the VideoSignal value used before the chipset has produced any
// output.
var NoSignal = VideoSignal{Index: -1}

func (sig VideoSignal) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("#%02x%02x%02x", sig.Red, sig.Green, sig.Blue))
	if sig.VSync {
		s.WriteString(" VSYNC")
	}
	if sig.HSync {
		s.WriteString(" HSYNC")
	}
	if sig.DisplayEnable {
		s.WriteString(" DE")
	}
	return s.String()
}
