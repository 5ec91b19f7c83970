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

package chipregs

import (
	"fmt"
)

// SpritePos is the decoded form of the SPRxPOS register.
//
//	bits 0-7   start_h1_h8
//	bits 8-15  start_v0_v7
type SpritePos struct {
	StartH1H8 uint8
	StartV0V7 uint8
}

// Write value to the decoded register.
func (p *SpritePos) Write(v uint16) {
	p.StartH1H8 = uint8(v)
	p.StartV0V7 = uint8(v >> 8)
}

// Value returns the register value.
func (p SpritePos) Value() uint16 {
	return uint16(p.StartV0V7)<<8 | uint16(p.StartH1H8)
}

func (p SpritePos) String() string {
	return fmt.Sprintf("h1h8=%#02x v0v7=%#02x", p.StartH1H8, p.StartV0V7)
}

// SpriteCtl is the decoded form of the SPRxCTL register.
//
//	bit 0      start_h0
//	bit 1      stop_v8
//	bit 2      start_v8
//	bits 3-6   unused
//	bit 7      attach
//	bits 8-15  stop_v0_v7
type SpriteCtl struct {
	StartH0  bool
	StopV8   bool
	StartV8  bool
	Attach   bool
	StopV0V7 uint8
}

// Write value to the decoded register.
func (c *SpriteCtl) Write(v uint16) {
	c.StartH0 = v&0x0001 == 0x0001
	c.StopV8 = v&0x0002 == 0x0002
	c.StartV8 = v&0x0004 == 0x0004
	c.Attach = v&0x0080 == 0x0080
	c.StopV0V7 = uint8(v >> 8)
}

// Value returns the register value. Unused bits are zero.
func (c SpriteCtl) Value() uint16 {
	v := uint16(c.StopV0V7) << 8
	if c.StartH0 {
		v |= 0x0001
	}
	if c.StopV8 {
		v |= 0x0002
	}
	if c.StartV8 {
		v |= 0x0004
	}
	if c.Attach {
		v |= 0x0080
	}
	return v
}

func (c SpriteCtl) String() string {
	return fmt.Sprintf("h0=%v sv8=%v ev8=%v att=%v ev0v7=%#02x", c.StartH0, c.StartV8, c.StopV8, c.Attach, c.StopV0V7)
}

// SpriteStartV assembles the 9-bit vertical start position.
func SpriteStartV(pos SpritePos, ctl SpriteCtl) uint16 {
	v := uint16(pos.StartV0V7)
	if ctl.StartV8 {
		v |= 0x100
	}
	return v
}

// SpriteStartH assembles the 9-bit horizontal start position.
func SpriteStartH(pos SpritePos, ctl SpriteCtl) uint16 {
	h := uint16(pos.StartH1H8) << 1
	if ctl.StartH0 {
		h |= 0x001
	}
	return h
}

// SpriteStopV assembles the 9-bit vertical stop position.
func SpriteStopV(ctl SpriteCtl) uint16 {
	v := uint16(ctl.StopV0V7)
	if ctl.StopV8 {
		v |= 0x100
	}
	return v
}

// EncodeSprite returns the POS and CTL register values for a sprite with the
// specified 9-bit positions.
func EncodeSprite(startH, startV, stopV uint16, attach bool) (uint16, uint16) {
	pos := SpritePos{
		StartH1H8: uint8(startH >> 1),
		StartV0V7: uint8(startV),
	}
	ctl := SpriteCtl{
		StartH0:  startH&0x001 == 0x001,
		StartV8:  startV&0x100 == 0x100,
		StopV8:   stopV&0x100 == 0x100,
		StopV0V7: uint8(stopV),
		Attach:   attach,
	}
	return pos.Value(), ctl.Value()
}

// Bplcon0 is the decoded form of the BPLCON0 register. Only the number of
// bitplanes in use is significant.
//
//	bits 12-14  bpu
type Bplcon0 struct {
	BPU int
}

// Write value to the decoded register.
func (b *Bplcon0) Write(v uint16) {
	b.BPU = int((v >> 12) & 0x07)
}

func (b Bplcon0) String() string {
	return fmt.Sprintf("bpu=%d", b.BPU)
}

// DisplayWindow is the decoded form of the DIWSTRT and DIWSTOP registers.
//
//	bits 0-7   horizontal position
//	bits 8-15  vertical position
//
// The stop values have an implicit ninth bit that is always set.
type DisplayWindow struct {
	StartH uint16
	StartV uint16
	StopH  uint16
	StopV  uint16
}

// WriteStart writes the DIWSTRT value.
func (w *DisplayWindow) WriteStart(v uint16) {
	w.StartH = v & 0xff
	w.StartV = v >> 8
}

// WriteStop writes the DIWSTOP value.
func (w *DisplayWindow) WriteStop(v uint16) {
	w.StopH = (v & 0xff) | 0x100
	w.StopV = (v >> 8) | 0x100
}

// InVertical returns true if vpos is inside the vertical range of the window.
func (w DisplayWindow) InVertical(vpos uint16) bool {
	return vpos >= w.StartV && vpos < w.StopV
}

func (w DisplayWindow) String() string {
	return fmt.Sprintf("start=%d,%d stop=%d,%d", w.StartH, w.StartV, w.StopH, w.StopV)
}

// DataFetch is the decoded form of the DDFSTRT and DDFSTOP registers. The
// register values are converted to horizontal beam positions. The fetch
// positions have a resolution of eight pixels.
type DataFetch struct {
	Start uint16
	Stop  uint16
}

// DataFetchPosition converts a DDFSTRT/DDFSTOP value to a horizontal beam
// position.
func DataFetchPosition(v uint16) uint16 {
	return (v & 0xfc) << 1
}

// WriteStart writes the DDFSTRT value.
func (d *DataFetch) WriteStart(v uint16) {
	d.Start = DataFetchPosition(v)
}

// WriteStop writes the DDFSTOP value.
func (d *DataFetch) WriteStop(v uint16) {
	d.Stop = DataFetchPosition(v)
}

func (d DataFetch) String() string {
	return fmt.Sprintf("start=%d stop=%d", d.Start, d.Stop)
}
