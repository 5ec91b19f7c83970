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

// Package coords represents and can work with television coorindates
//
// Coordinates represent the state of the emulation from the point of the
// television. A good way to think about them is as a measurement of time. They
// define *when* something happened (this pixel was drawn, this interrupt was
// raised, etc.) relative to the start of the emulation.
package coords

import (
	"fmt"

	"github.com/mymig/mymig/hardware/beam"
)

// FrameIsUndefined is used to indicate that the Frame field of the TelevisionCoords
// struct is to be ignored
const FrameIsUndefined = ^(0)

// TelevisionCoords represents the state of the TV at any moment in time. It
// can be used when all three values need to be stored or passed around.
type TelevisionCoords struct {
	Frame    int
	Scanline int
	Clock    int
}

func (c TelevisionCoords) String() string {
	if c.Frame == FrameIsUndefined {
		return fmt.Sprintf("Scanline: %03d  Clock: %03d", c.Scanline, c.Clock)
	}
	return fmt.Sprintf("Frame: %d  Scanline: %03d  Clock: %03d", c.Frame, c.Scanline, c.Clock)
}

// Equal compares two instances of TelevisionCoords and return true if both are
// equal.
//
// If the Frame field is undefined for either argument then the Frame field is
// ignored for the test.
func Equal(A, B TelevisionCoords) bool {
	if A.Frame == FrameIsUndefined || B.Frame == FrameIsUndefined {
		return A.Scanline == B.Scanline && A.Clock == B.Clock
	}
	return A.Frame == B.Frame && A.Scanline == B.Scanline && A.Clock == B.Clock
}

// GreaterThanOrEqual compares two instances of TelevisionCoords and return
// true if A is greater than or equal to B.
//
// If the Frame field is undefined for either argument then the Frame field is
// ignored for the test.
func GreaterThanOrEqual(A, B TelevisionCoords) bool {
	return Equal(A, B) || GreaterThan(A, B)
}

// GreaterThan compares two instances of TelevisionCoords and return true if A
// is greater than to B.
//
// If the Frame field is undefined for either argument then the Frame field is
// ignored for the test.
func GreaterThan(A, B TelevisionCoords) bool {
	if A.Frame == FrameIsUndefined || B.Frame == FrameIsUndefined {
		return A.Scanline > B.Scanline || (A.Scanline == B.Scanline && A.Clock > B.Clock)
	}
	return A.Frame > B.Frame || (A.Frame == B.Frame && A.Scanline > B.Scanline) || (A.Frame == B.Frame && A.Scanline == B.Scanline && A.Clock > B.Clock)
}

// Sum the the number of clocks in the television coordinates.
//
// If the Frame field is undefined for the TelevisionCoords then only the
// scanline and clock fields are counted.
func Sum(A TelevisionCoords) int {
	if A.Frame == FrameIsUndefined {
		return (A.Scanline * beam.HTotal) + A.Clock
	}
	return (A.Frame * beam.HTotal * beam.VTotal) + (A.Scanline * beam.HTotal) + A.Clock
}

// FromSum is the inverse of Sum().
func FromSum(clocks int) TelevisionCoords {
	return TelevisionCoords{
		Frame:    clocks / (beam.HTotal * beam.VTotal),
		Scanline: (clocks / beam.HTotal) % beam.VTotal,
		Clock:    clocks % beam.HTotal,
	}
}

// Diff returns the number of clocks between A and B. The result is negative
// if B is later than A.
func Diff(A, B TelevisionCoords) int {
	if A.Frame == FrameIsUndefined || B.Frame == FrameIsUndefined {
		A.Frame = FrameIsUndefined
		B.Frame = FrameIsUndefined
	}
	return Sum(A) - Sum(B)
}
