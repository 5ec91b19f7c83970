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

// Package ebiten is an alternative front end for the gui package using the
// Ebitengine game library.
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mymig/mymig/govern"
	"github.com/mymig/mymig/gui"
	"github.com/mymig/mymig/logger"
	"github.com/mymig/mymig/version"
)

type guiEbiten struct {
	g      *gui.GUI
	endGui chan bool

	state govern.State

	main *ebiten.Image

	// width/height of incoming image from emulation. not to be confused
	// with window dimensions
	width  int
	height int

	scale float64

	keys []ebiten.Key
}

func (eg *guiEbiten) Update() error {
	select {
	case <-eg.endGui:
		return ebiten.Termination
	default:
	}

	if ebiten.IsWindowBeingClosed() {
		eg.g.PushEvent(gui.Event{ID: gui.EventWindowClose})
	}

	eg.input()

	select {
	case eg.state = <-eg.g.State:
		switch eg.state {
		case govern.Paused:
			ebiten.SetWindowTitle(version.Title() + " [paused]")
		case govern.Ending:
			ebiten.SetWindowTitle(version.Title() + " [ended]")
		default:
			ebiten.SetWindowTitle(version.Title())
		}
	default:
	}

	select {
	case img := <-eg.g.SetImage:
		b := img.Main.Bounds()
		if eg.main == nil || eg.main.Bounds() != b {
			eg.width = b.Dx()
			eg.height = b.Dy()
			eg.main = ebiten.NewImage(eg.width, eg.height)
			ebiten.SetWindowSize(int(float64(eg.width)*eg.scale), int(float64(eg.height)*eg.scale))
			logger.Logf(logger.Allow, "ebiten", "image resized to %dx%d", eg.width, eg.height)
		}
		eg.main.WritePixels(img.Main.Pix)
	default:
	}

	return nil
}

// key names are translated to the names used by SDL so that emulation does
// not need to know which front end is being used.
func keyName(k ebiten.Key) string {
	switch k {
	case ebiten.KeyEnter:
		return "Return"
	}
	return k.String()
}

func (eg *guiEbiten) input() {
	mod := gui.KeyModNone
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mod = gui.KeyModAlt
	} else if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mod = gui.KeyModShift
	} else if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mod = gui.KeyModCtrl
	}

	eg.keys = inpututil.AppendJustPressedKeys(eg.keys[:0])
	for _, k := range eg.keys {
		eg.g.PushEvent(gui.Event{
			ID:   gui.EventKeyboard,
			Data: gui.EventDataKeyboard{Key: keyName(k), Mod: mod, Down: true},
		})
	}

	eg.keys = inpututil.AppendJustReleasedKeys(eg.keys[:0])
	for _, k := range eg.keys {
		eg.g.PushEvent(gui.Event{
			ID:   gui.EventKeyboard,
			Data: gui.EventDataKeyboard{Key: keyName(k), Mod: mod, Down: false},
		})
	}
}

func (eg *guiEbiten) Draw(screen *ebiten.Image) {
	if eg.main != nil {
		var op ebiten.DrawImageOptions
		screen.DrawImage(eg.main, &op)
	}
}

func (eg *guiEbiten) Layout(width, height int) (int, int) {
	if eg.main != nil {
		return eg.width, eg.height
	}
	return width, height
}

// Launch the ebiten front end. The function does not return until the window
// is closed or until something is received on the endGui channel.
//
// MUST ONLY be called from the #mainthread
func Launch(endGui chan bool, g *gui.GUI, scale float64) error {
	if scale <= 0 {
		scale = 1
	}

	ebiten.SetWindowTitle(version.Title())
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	eg := &guiEbiten{
		g:      g,
		endGui: endGui,
		state:  govern.Initialising,
		scale:  scale,
	}

	return ebiten.RunGame(eg)
}
