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

import (
	"image"

	"github.com/mymig/mymig/curated"
	"github.com/mymig/mymig/hardware/beam"
	"github.com/mymig/mymig/hardware/television"
)

// RendererError is the sentinal error pattern for the Renderer type.
const RendererError = "gui: renderer: %v"

// Renderer is an implementation of the television.PixelRenderer interface.
// Completed frames are sent to the GUI. Only the active area of the display
// is sent unless Overscan is true.
type Renderer struct {
	g *GUI

	// whether to send the entire frame rather than just the active area.
	// takes effect on the next call to Resize()
	Overscan bool

	area  image.Rectangle
	frame *image.RGBA

	// the frame number of the frame being built
	frameNum int

	// the number of frames dropped because the front end was not ready
	Dropped int
}

// NewRenderer creates a new Renderer and attaches it to the television.
func NewRenderer(g *GUI, tv *television.Television) (*Renderer, error) {
	rnd := &Renderer{g: g}
	if err := tv.AddPixelRenderer(rnd); err != nil {
		return nil, curated.Errorf(RendererError, err)
	}
	return rnd, nil
}

// Resize implements the television.PixelRenderer interface.
func (rnd *Renderer) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return curated.Errorf(RendererError, "illegal frame size")
	}

	rnd.area = image.Rect(0, 0, width, height)
	if !rnd.Overscan {
		rnd.area = rnd.area.Intersect(image.Rect(beam.HActiveStart, beam.VActiveStart,
			beam.HActiveStart+beam.HActive, beam.VActiveStart+beam.VActive))
	}
	rnd.frame = image.NewRGBA(image.Rect(0, 0, rnd.area.Dx(), rnd.area.Dy()))

	return nil
}

// NewFrame implements the television.PixelRenderer interface.
func (rnd *Renderer) NewFrame(info television.FrameInfo) error {
	if rnd.frame == nil {
		return nil
	}

	select {
	case rnd.g.SetImage <- Image{Main: rnd.frame, Frame: rnd.frameNum}:
		rnd.frame = image.NewRGBA(rnd.frame.Rect)
	default:
		rnd.Dropped++
	}

	rnd.frameNum = info.FrameNum

	return nil
}

// NewScanline implements the television.PixelRenderer interface.
func (rnd *Renderer) NewScanline(_ int) error {
	return nil
}

// SetPixel implements the television.PixelRenderer interface.
func (rnd *Renderer) SetPixel(x, y int, red, green, blue byte, _ bool) error {
	if rnd.frame == nil {
		return nil
	}

	p := image.Pt(x, y)
	if !p.In(rnd.area) {
		return nil
	}
	p = p.Sub(rnd.area.Min)

	i := rnd.frame.PixOffset(p.X, p.Y)
	s := rnd.frame.Pix[i : i+4 : i+4]
	s[0] = red
	s[1] = green
	s[2] = blue
	s[3] = 0xff

	return nil
}

// EndRendering implements the television.PixelRenderer interface.
func (rnd *Renderer) EndRendering() error {
	return nil
}
