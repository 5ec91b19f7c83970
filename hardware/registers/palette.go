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

package registers

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/mymig/mymig/hardware/memory/chipregs"
)

// Palette of 12-bit colours. Each colour has four bits for each of the red,
// green and blue channels.
//
//	bits 8-11  red
//	bits 4-7   green
//	bits 0-3   blue
type Palette [chipregs.NumColors]uint16

// Reset all entries in the palette to zero (black).
func (p *Palette) Reset() {
	*p = Palette{}
}

func (p Palette) String() string {
	s := strings.Builder{}
	for i, c := range p {
		if i > 0 {
			if i%8 == 0 {
				s.WriteString("\n")
			} else {
				s.WriteString(" ")
			}
		}
		s.WriteString(fmt.Sprintf("%02d:%03x", i, c))
	}
	return s.String()
}

// Write a colour to the palette. The value is masked to 12 bits.
func (p *Palette) Write(idx int, v uint16) {
	p[idx&(chipregs.NumColors-1)] = v & 0x0fff
}

// RGB returns the 8-bit channels of palette entry idx. Each channel is
// expanded from four bits by shifting.
func (p *Palette) RGB(idx int) (uint8, uint8, uint8) {
	return Expand(p[idx&(chipregs.NumColors-1)])
}

// Expand a 12-bit colour value to 8-bit channels.
func Expand(c uint16) (uint8, uint8, uint8) {
	r := uint8((c>>8)&0x0f) << 4
	g := uint8((c>>4)&0x0f) << 4
	b := uint8(c&0x0f) << 4
	return r, g, b
}

// Color returns palette entry idx as a color.RGBA value.
func (p *Palette) Color(idx int) color.RGBA {
	r, g, b := p.RGB(idx)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
