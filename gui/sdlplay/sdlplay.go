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

// Package sdlplay is a simple SDL front end for the gui package. Frames are
// shown in a resizable window using a streaming texture.
package sdlplay

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/mymig/mymig/curated"
	"github.com/mymig/mymig/govern"
	"github.com/mymig/mymig/gui"
	"github.com/mymig/mymig/logger"
	"github.com/mymig/mymig/version"
)

// SDLError is the sentinal error pattern for errors from the SDL library.
const SDLError = "sdlplay: %v"

const pixelDepth = 4

// SdlPlay is the SDL front end.
type SdlPlay struct {
	g      *gui.GUI
	endGui chan bool

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// dimensions of the texture. not the window
	width  int32
	height int32

	// scaling applied to the window size when the texture is resized
	scale float64

	state govern.State
}

// Launch the SDL front end. The function does not return until the window is
// closed by the user or until something is received on the endGui channel.
//
// MUST ONLY be called from the #mainthread
func Launch(endGui chan bool, g *gui.GUI, scale float64) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if scale <= 0 {
		scale = 1
	}

	scr := &SdlPlay{
		g:      g,
		endGui: endGui,
		scale:  scale,
		state:  govern.Initialising,
	}

	err := sdl.Init(uint32(sdl.INIT_VIDEO))
	if err != nil {
		return curated.Errorf(SDLError, err)
	}
	defer sdl.Quit()

	// window size is set in the resize() function when the first frame has
	// been received
	scr.window, err = sdl.CreateWindow(version.Title(),
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		0, 0,
		uint32(sdl.WINDOW_HIDDEN|sdl.WINDOW_RESIZABLE))
	if err != nil {
		return curated.Errorf(SDLError, err)
	}
	defer scr.window.Destroy()

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		return curated.Errorf(SDLError, err)
	}
	defer scr.renderer.Destroy()

	setupService()

	logger.Log(logger.Allow, "sdlplay", "window created")

	for {
		select {
		case <-scr.endGui:
			return scr.destroy()
		default:
		}

		scr.service()

		select {
		case scr.state = <-scr.g.State:
			scr.window.SetTitle(scr.title())
		default:
		}

		select {
		case img := <-scr.g.SetImage:
			if err := scr.update(img); err != nil {
				return err
			}
		default:
			// nothing to render yet. the delay prevents a busy loop if the
			// renderer is not synchronised with the display
			if scr.texture == nil {
				sdl.Delay(5)
				continue // for loop
			}
		}

		if err := scr.render(); err != nil {
			return err
		}
	}
}

func (scr *SdlPlay) title() string {
	switch scr.state {
	case govern.Paused:
		return fmt.Sprintf("%s [paused]", version.Title())
	case govern.Ending:
		return fmt.Sprintf("%s [ended]", version.Title())
	}
	return version.Title()
}

func (scr *SdlPlay) destroy() error {
	if scr.texture != nil {
		if err := scr.texture.Destroy(); err != nil {
			return curated.Errorf(SDLError, err)
		}
		scr.texture = nil
	}
	return nil
}

// resize the texture and the window to fit the dimensions of the image.
func (scr *SdlPlay) resize(width, height int32) error {
	if err := scr.destroy(); err != nil {
		return err
	}

	var err error

	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING), width, height)
	if err != nil {
		return curated.Errorf(SDLError, err)
	}

	scr.width = width
	scr.height = height

	// the logical size of the renderer means that the texture is scaled to
	// fit the window with the correct aspect ratio
	if err := scr.renderer.SetLogicalSize(width, height); err != nil {
		return curated.Errorf(SDLError, err)
	}

	scr.window.SetSize(int32(float64(width)*scr.scale), int32(float64(height)*scr.scale))
	scr.window.Show()

	logger.Logf(logger.Allow, "sdlplay", "texture resized to %dx%d", width, height)

	return nil
}

// update the texture with the image.
func (scr *SdlPlay) update(img gui.Image) error {
	b := img.Main.Bounds()
	if scr.texture == nil || int32(b.Dx()) != scr.width || int32(b.Dy()) != scr.height {
		if err := scr.resize(int32(b.Dx()), int32(b.Dy())); err != nil {
			return err
		}
	}

	pixels, pitch, err := scr.texture.Lock(nil)
	if err != nil {
		return curated.Errorf(SDLError, err)
	}
	defer scr.texture.Unlock()

	row := b.Dx() * pixelDepth
	for y := 0; y < b.Dy(); y++ {
		copy(pixels[y*pitch:y*pitch+row], img.Main.Pix[y*img.Main.Stride:])
	}

	return nil
}

func (scr *SdlPlay) render() error {
	if err := scr.renderer.SetDrawColor(0, 0, 0, 255); err != nil {
		return curated.Errorf(SDLError, err)
	}
	if err := scr.renderer.Clear(); err != nil {
		return curated.Errorf(SDLError, err)
	}
	if err := scr.renderer.Copy(scr.texture, nil, nil); err != nil {
		return curated.Errorf(SDLError, err)
	}
	scr.renderer.Present()
	return nil
}
