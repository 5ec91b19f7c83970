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
	"github.com/mymig/mymig/hardware/memory/chipregs"
)

// the first palette entry used by sprites
const spriteColorBase = 16

// Compose the palette index from the bitplane colour and the colour of each
// sprite.
//
// Sprites have priority over the bitplanes. Sprites are considered in pairs,
// starting with sprites 0 and 1, and an opaque sprite pixel replaces whatever
// colour has been chosen so far. Higher numbered pairs therefore have priority
// over lower numbered pairs and within a pair the odd numbered sprite has
// priority over the even numbered sprite.
//
// An attached pair is treated as a single sprite with sixteen colours. The
// pair is attached if the odd numbered sprite has the attach bit set.
func Compose(bitplanes uint8, sprites [chipregs.NumSprites]uint8, attached [chipregs.NumSprites]bool) int {
	idx := int(bitplanes)

	for p := 0; p < chipregs.NumSprites/2; p++ {
		even := sprites[p*2]
		odd := sprites[p*2+1]

		if attached[p*2+1] {
			if att := int(odd)<<2 | int(even); att != 0 {
				idx = spriteColorBase + att
			}
			continue
		}

		if even != 0 {
			idx = spriteColorBase + p*4 + int(even)
		}
		if odd != 0 {
			idx = spriteColorBase + p*4 + int(odd)
		}
	}

	return idx
}
