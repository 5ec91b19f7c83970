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
	"fmt"

	"github.com/mymig/mymig/hardware/memory/chipregs"
)

// Sprite is a single 16 pixel wide, four colour sprite engine.
type Sprite struct {
	label string

	pos  chipregs.SpritePos
	ctl  chipregs.SpriteCtl
	data uint16
	datb uint16

	// the shift registers are loaded from data and datb when the beam
	// reaches the horizontal start position
	shiftData uint16
	shiftDatb uint16

	// armed by a write to DATA and disarmed by a write to CTL
	armed bool
}

func newSprite(n int) *Sprite {
	return &Sprite{
		label: fmt.Sprintf("sprite%d", n),
	}
}

func (sp *Sprite) reset() {
	label := sp.label
	*sp = Sprite{label: label}
}

// Label returns the name of the sprite.
func (sp *Sprite) Label() string {
	return sp.label
}

func (sp *Sprite) String() string {
	return fmt.Sprintf("%s: h=%03d v=%03d-%03d att=%v armed=%v data=%04x datb=%04x",
		sp.label, sp.StartH(), sp.StartV(), sp.StopV(), sp.ctl.Attach, sp.armed, sp.data, sp.datb)
}

// StartH returns the horizontal start position.
func (sp *Sprite) StartH() uint16 {
	return chipregs.SpriteStartH(sp.pos, sp.ctl)
}

// StartV returns the vertical start position.
func (sp *Sprite) StartV() uint16 {
	return chipregs.SpriteStartV(sp.pos, sp.ctl)
}

// StopV returns the vertical stop position.
func (sp *Sprite) StopV() uint16 {
	return chipregs.SpriteStopV(sp.ctl)
}

// VStartMatch returns true if vpos is the vertical start position.
func (sp *Sprite) VStartMatch(vpos uint16) bool {
	return sp.StartV() == vpos
}

// VStopMatch returns true if vpos is the vertical stop position.
func (sp *Sprite) VStopMatch(vpos uint16) bool {
	return sp.StopV() == vpos
}

// Attached returns the state of the attach bit in the CTL register.
func (sp *Sprite) Attached() bool {
	return sp.ctl.Attach
}

// Armed returns true if the sprite has been armed by a write to DATA.
func (sp *Sprite) Armed() bool {
	return sp.armed
}

// pixel returns the two bit colour of the sprite at the current pixel. zero
// is transparent. bit 0 is from the DATA shifter and bit 1 from the DATB
// shifter.
func (sp *Sprite) pixel() uint8 {
	return uint8(sp.shiftData>>15) | uint8(sp.shiftDatb>>15)<<1
}

func (sp *Sprite) tick(hpos uint16) {
	if sp.armed && sp.StartH() == hpos {
		sp.shiftData = sp.data
		sp.shiftDatb = sp.datb
		return
	}
	sp.shiftData <<= 1
	sp.shiftDatb <<= 1
}

func (sp *Sprite) writePos(v uint16) {
	sp.pos.Write(v)
}

func (sp *Sprite) writeCtl(v uint16) {
	sp.ctl.Write(v)
	sp.armed = false
}

func (sp *Sprite) writeData(v uint16) {
	sp.data = v
	sp.armed = true
}

func (sp *Sprite) writeDatb(v uint16) {
	sp.datb = v
}
