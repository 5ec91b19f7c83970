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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/mymig/mymig/curated"
	"github.com/mymig/mymig/hardware/television"
)

// VideoError is the sentinal error pattern for the Video type.
const VideoError = "digest: video: %v"

// Video is an implementation of the television.PixelRenderer interface with
// an embedded television for convenience. It generates a SHA-1 value of the
// image every frame. it does not display the image anywhere.
//
// Note that the use of sha1 is fine for this application because this is not
// a cryptographic task.
type Video struct {
	digest   [sha1.Size]byte
	pixels   []byte
	width    int
	frameNum int
}

const pixelDepth = 3

// NewVideo initialises a new instance of Video and attaches it to the
// television.
func NewVideo(tv *television.Television) (*Video, error) {
	dig := &Video{}
	if err := tv.AddPixelRenderer(dig); err != nil {
		return nil, curated.Errorf(VideoError, err)
	}
	return dig, nil
}

// Hash implements digest.Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
}

// Frame returns the number of the most recently hashed frame.
func (dig *Video) Frame() int {
	return dig.frameNum
}

// Resize implements television.PixelRenderer interface.
func (dig *Video) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return curated.Errorf(VideoError, fmt.Sprintf("illegal frame size (%dx%d)", width, height))
	}

	// the head of the pixels array is reserved for the previous frame's
	// digest value
	dig.width = width
	dig.pixels = make([]byte, len(dig.digest)+width*height*pixelDepth)
	return nil
}

// NewFrame implements television.PixelRenderer interface.
func (dig *Video) NewFrame(info television.FrameInfo) error {
	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the video data
	n := copy(dig.pixels, dig.digest[:])
	if n != len(dig.digest) {
		return curated.Errorf(VideoError, "digest error during new frame")
	}
	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum = info.FrameNum
	return nil
}

// NewScanline implements television.PixelRenderer interface.
func (dig *Video) NewScanline(_ int) error {
	return nil
}

// SetPixel implements television.PixelRenderer interface.
func (dig *Video) SetPixel(x, y int, red, green, blue byte, _ bool) error {
	if x >= dig.width {
		return nil
	}

	i := len(dig.digest)
	i += dig.width * y * pixelDepth
	i += x * pixelDepth

	// every pixel is set regardless of the display enable signal. pixels
	// outside the display window are always black
	if i <= len(dig.pixels)-pixelDepth {
		dig.pixels[i] = red
		dig.pixels[i+1] = green
		dig.pixels[i+2] = blue
	}

	return nil
}

// EndRendering implements television.PixelRenderer interface.
func (dig *Video) EndRendering() error {
	return nil
}
