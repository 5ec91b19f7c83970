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
	"strings"

	"github.com/mymig/mymig/hardware/memory/chipregs"
)

// Bitplanes is the bitplane engine. There is one data register and one shift
// register for each of the six planes.
type Bitplanes struct {
	data  [chipregs.NumBitplanes]uint16
	shift [chipregs.NumBitplanes]uint16
}

func (bp *Bitplanes) reset() {
	*bp = Bitplanes{}
}

func (bp *Bitplanes) String() string {
	s := strings.Builder{}
	for i := range bp.data {
		s.WriteString(fmt.Sprintf("bpl%d: %04x/%04x\n", i+1, bp.data[i], bp.shift[i]))
	}
	return s.String()
}

// Data returns the value of the data register for plane n (counting from
// zero).
func (bp *Bitplanes) Data(n int) uint16 {
	return bp.data[n]
}

// Shift returns the value of the shift register for plane n (counting from
// zero).
func (bp *Bitplanes) Shift(n int) uint16 {
	return bp.shift[n]
}

// pixel returns the colour index formed by the most significant bit of each
// shift register. plane zero is the least significant bit.
func (bp *Bitplanes) pixel() uint8 {
	var c uint8
	for i := range bp.shift {
		c |= uint8(bp.shift[i]>>15) << i
	}
	return c
}

func (bp *Bitplanes) tick() {
	for i := range bp.shift {
		bp.shift[i] <<= 1
	}
}

// write to BPLxDAT. n counts from zero. a write to BPL1DAT reloads every
// shift register, overriding the shift that happened in the same cycle.
func (bp *Bitplanes) write(n int, v uint16) {
	bp.data[n] = v
	if n == 0 {
		copy(bp.shift[1:], bp.data[1:])
		bp.shift[0] = v
	}
}
