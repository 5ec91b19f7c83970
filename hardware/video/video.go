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

package video

import (
	"strings"

	"github.com/mymig/mymig/hardware/memory/chipregs"
)

// Video contains the sprite and bitplane engines.
type Video struct {
	Sprites   [chipregs.NumSprites]*Sprite
	Bitplanes *Bitplanes
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	vd := &Video{
		Bitplanes: &Bitplanes{},
	}
	for i := range vd.Sprites {
		vd.Sprites[i] = newSprite(i)
	}
	return vd
}

// Reset all sprites and bitplanes.
func (vd *Video) Reset() {
	for _, sp := range vd.Sprites {
		sp.reset()
	}
	vd.Bitplanes.reset()
}

func (vd *Video) String() string {
	s := strings.Builder{}
	for _, sp := range vd.Sprites {
		s.WriteString(sp.String())
		s.WriteString("\n")
	}
	s.WriteString(vd.Bitplanes.String())
	return s.String()
}

// VStartMatch returns true if vpos is the vertical start position of sprite n.
func (vd *Video) VStartMatch(n int, vpos uint16) bool {
	return vd.Sprites[n].VStartMatch(vpos)
}

// VStopMatch returns true if vpos is the vertical stop position of sprite n.
func (vd *Video) VStopMatch(n int, vpos uint16) bool {
	return vd.Sprites[n].VStopMatch(vpos)
}

// Pixel returns the palette index for the current state of the engines.
func (vd *Video) Pixel() int {
	var sprites [chipregs.NumSprites]uint8
	var attached [chipregs.NumSprites]bool
	for i, sp := range vd.Sprites {
		sprites[i] = sp.pixel()
		attached[i] = sp.Attached()
	}
	return Compose(vd.Bitplanes.pixel(), sprites, attached)
}

// Tick advances the shift registers of every engine by one pixel.
func (vd *Video) Tick(hpos uint16) {
	for _, sp := range vd.Sprites {
		sp.tick(hpos)
	}
	vd.Bitplanes.tick()
}

// Update checks to see if the register write is of interest to the video
// engines. Returns true if the write was consumed.
func (vd *Video) Update(reg chipregs.Register, v uint16) bool {
	switch {
	case reg >= chipregs.SPR0POS && reg <= chipregs.SPRxDATB(chipregs.NumSprites-1):
		sp := vd.Sprites[(reg-chipregs.SPR0POS)>>3]
		switch (reg - chipregs.SPR0POS) & 0x07 {
		case 0:
			sp.writePos(v)
		case 2:
			sp.writeCtl(v)
		case 4:
			sp.writeData(v)
		case 6:
			sp.writeDatb(v)
		}
	case reg >= chipregs.BPL1DAT && reg <= chipregs.BPLxDAT(chipregs.NumBitplanes-1):
		vd.Bitplanes.write(int(reg-chipregs.BPL1DAT)>>1, v)
	default:
		return false
	}
	return true
}
