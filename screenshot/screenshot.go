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

// Package screenshot is a television.PixelRenderer that keeps a copy of the
// most recent frame and encodes it as a PNG image. The image can be scaled and
// can carry a caption with the frame number.
package screenshot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/mymig/mymig/curated"
	"github.com/mymig/mymig/hardware/beam"
	"github.com/mymig/mymig/hardware/television"
)

// Sentinal error patterns.
const (
	ScreenshotError = "screenshot: %v"
	NoFrame         = "screenshot: no frame to save"
	FileExists      = "screenshot: file (%s) already exists"
)

// Screenshot implements the television.PixelRenderer interface.
type Screenshot struct {
	geom image.Rectangle

	// the image being written to until NewFrame() is called again
	currFrame    *image.NRGBA
	currFrameNum int

	// the image that will be saved when Save() is called
	lastFrame    *image.NRGBA
	lastFrameNum int

	// crop the image to the display window
	Crop bool

	// scale factor applied to the image. values less than one are treated as
	// one
	Scale int

	// use a smoothing filter when scaling. the default is nearest neighbour
	Smooth bool

	// draw the frame number in the top-left corner of the image
	Caption bool
}

// NewScreenshot is the preferred method of initialisation for the Screenshot
// type. The new instance is attached to the television.
func NewScreenshot(tv *television.Television) (*Screenshot, error) {
	scr := &Screenshot{
		Crop:  true,
		Scale: 1,
	}
	if err := tv.AddPixelRenderer(scr); err != nil {
		return nil, curated.Errorf(ScreenshotError, err)
	}
	return scr, nil
}

// Resize implements the television.PixelRenderer interface.
func (scr *Screenshot) Resize(width, height int) error {
	scr.geom = image.Rect(0, 0, width, height)
	scr.currFrame = image.NewNRGBA(scr.geom)
	scr.lastFrame = nil
	return nil
}

// NewFrame implements the television.PixelRenderer interface.
func (scr *Screenshot) NewFrame(info television.FrameInfo) error {
	scr.lastFrame = scr.currFrame
	scr.lastFrameNum = scr.currFrameNum
	scr.currFrame = image.NewNRGBA(scr.geom)
	scr.currFrameNum = info.FrameNum
	return nil
}

// NewScanline implements the television.PixelRenderer interface.
func (scr *Screenshot) NewScanline(_ int) error {
	return nil
}

// SetPixel implements the television.PixelRenderer interface.
func (scr *Screenshot) SetPixel(x, y int, red, green, blue byte, _ bool) error {
	if scr.currFrame == nil {
		return nil
	}
	scr.currFrame.SetNRGBA(x, y, color.NRGBA{R: red, G: green, B: blue, A: 255})
	return nil
}

// EndRendering implements the television.PixelRenderer interface.
func (scr *Screenshot) EndRendering() error {
	return nil
}

// Image returns the most recently completed frame, or the frame currently
// being drawn, with the cropping, scaling and caption options applied.
func (scr *Screenshot) Image(currentFrame bool) (image.Image, error) {
	src, frameNum := scr.lastFrame, scr.lastFrameNum
	if currentFrame {
		src, frameNum = scr.currFrame, scr.currFrameNum
	}
	if src == nil {
		return nil, curated.Errorf(NoFrame)
	}

	bounds := src.Bounds()
	if scr.Crop {
		bounds = bounds.Intersect(image.Rect(beam.HActiveStart, beam.VActiveStart,
			beam.HActiveStart+beam.HActive, beam.VActiveStart+beam.VActive))
	}

	scale := max(scr.Scale, 1)

	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx()*scale, bounds.Dy()*scale))
	if scr.Smooth {
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
	} else {
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
	}

	if scr.Caption {
		d := font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(color.White),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(2, basicfont.Face7x13.Ascent+2),
		}
		d.DrawString(fmt.Sprintf("frame %d", frameNum))
	}

	return dst, nil
}

// Encode the image as PNG to the io.Writer.
func (scr *Screenshot) Encode(w io.Writer, currentFrame bool) error {
	img, err := scr.Image(currentFrame)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return curated.Errorf(ScreenshotError, err)
	}
	return nil
}

// Save the image to a new file. The frame number is appended to the filename
// base and the name of the file is returned. An existing file will not be
// overwritten.
func (scr *Screenshot) Save(fileNameBase string, currentFrame bool) (string, error) {
	frameNum := scr.lastFrameNum
	if currentFrame {
		frameNum = scr.currFrameNum
	}
	imageName := fmt.Sprintf("%s_%d.png", fileNameBase, frameNum)

	img, err := scr.Image(currentFrame)
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(imageName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return "", curated.Errorf(FileExists, imageName)
		}
		return "", curated.Errorf(ScreenshotError, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", curated.Errorf(ScreenshotError, err)
	}

	return imageName, nil
}
