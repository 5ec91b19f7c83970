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

package playmode_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mymig/mymig/govern"
	"github.com/mymig/mymig/gui"
	"github.com/mymig/mymig/hardware"
	"github.com/mymig/mymig/hardware/instance"
	"github.com/mymig/mymig/playmode"
	"github.com/mymig/mymig/screenshot"
	"github.com/mymig/mymig/test"
)

func key(k string) gui.Event {
	return gui.Event{ID: gui.EventKeyboard, Data: gui.EventDataKeyboard{Key: k, Down: true}}
}

func newChipset(t *testing.T) *hardware.Chipset {
	t.Helper()
	cs, err := hardware.NewChipset(nil, nil)
	test.DemandSuccess(t, err)
	return cs
}

func TestWindowClose(t *testing.T) {
	cs := newChipset(t)
	g := gui.NewGUI()
	g.PushEvent(gui.Event{ID: gui.EventWindowClose})

	test.ExpectSuccess(t, playmode.Play(cs, g, playmode.Options{}))

	// the event is serviced at the end of the first scanline
	test.ExpectEquality(t, cs.Beam.Position().VPos, uint16(1))
	test.ExpectEquality(t, <-g.State, govern.Ending)
	test.ExpectEquality(t, cs.Mode, govern.ModeRun)
}

func TestPause(t *testing.T) {
	cs := newChipset(t)
	g := gui.NewGUI()

	// key releases are ignored
	g.PushEvent(gui.Event{ID: gui.EventKeyboard, Data: gui.EventDataKeyboard{Key: "Escape"}})

	g.PushEvent(key("P"))
	g.PushEvent(key("Space"))
	g.PushEvent(key("P"))
	g.PushEvent(key("Escape"))

	test.ExpectSuccess(t, playmode.Play(cs, g, playmode.Options{}))

	// one scanline for each event serviced while running
	test.ExpectEquality(t, cs.Beam.Position().VPos, uint16(3))
}

func TestFPSCap(t *testing.T) {
	cs, err := hardware.NewChipset(instance.NewInstance(instance.Headless, nil), nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cs.Instance.Prefs.FPSCap.Get().(bool), true)

	g := gui.NewGUI()
	g.PushEvent(key("F"))
	g.PushEvent(key("Escape"))
	test.ExpectSuccess(t, playmode.Play(cs, g, playmode.Options{}))
	test.ExpectEquality(t, cs.Instance.Prefs.FPSCap.Get().(bool), false)
}

func TestScreenshot(t *testing.T) {
	cs := newChipset(t)
	scr, err := screenshot.NewScreenshot(cs.TV)
	test.DemandSuccess(t, err)

	// complete one frame so that there is something to save
	test.DemandSuccess(t, cs.StepFrame())
	test.DemandSuccess(t, cs.Step())

	base := filepath.Join(t.TempDir(), "shot")

	g := gui.NewGUI()
	g.PushEvent(key("F12"))
	g.PushEvent(key("Escape"))
	test.ExpectSuccess(t, playmode.Play(cs, g, playmode.Options{
		Screenshot:     scr,
		ScreenshotBase: base,
	}))

	_, err = os.Stat(base + "_0.png")
	test.ExpectSuccess(t, err)
}
