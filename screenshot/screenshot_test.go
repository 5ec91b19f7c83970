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

package screenshot_test

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/mymig/mymig/curated"
	"github.com/mymig/mymig/hardware"
	"github.com/mymig/mymig/hardware/beam"
	"github.com/mymig/mymig/hardware/host"
	"github.com/mymig/mymig/hardware/memory/chipregs"
	"github.com/mymig/mymig/screenshot"
	"github.com/mymig/mymig/test"
)

func newScreenshot(t *testing.T) (*hardware.Chipset, *screenshot.Screenshot) {
	t.Helper()

	cs, err := hardware.NewChipset(nil, nil)
	test.DemandSuccess(t, err)

	scr, err := screenshot.NewScreenshot(cs.TV)
	test.DemandSuccess(t, err)

	q := &host.Queue{}
	q.Push(host.WriteRegister(chipregs.COLOR00, 0xf80))
	cs.SetProgram(q)

	return cs, scr
}

func TestNoFrame(t *testing.T) {
	_, scr := newScreenshot(t)
	_, err := scr.Image(false)
	test.ExpectSuccess(t, curated.Is(err, screenshot.NoFrame))
}

func TestImage(t *testing.T) {
	cs, scr := newScreenshot(t)
	test.DemandSuccess(t, cs.RunForFrameCount(1, nil))

	img, err := scr.Image(false)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), beam.HActive)
	test.ExpectEquality(t, img.Bounds().Dy(), beam.VActive)

	// the display window is filled with the background colour
	c := color.NRGBAModel.Convert(img.At(10, 10)).(color.NRGBA)
	test.ExpectEquality(t, c, color.NRGBA{R: 0xf0, G: 0x80, B: 0x00, A: 0xff})

	scr.Crop = false
	scr.Scale = 2
	img, err = scr.Image(false)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), beam.HTotal*2)
	test.ExpectEquality(t, img.Bounds().Dy(), beam.VTotal*2)

	// outside of the display window the image is black
	c = color.NRGBAModel.Convert(img.At(0, 0)).(color.NRGBA)
	test.ExpectEquality(t, c, color.NRGBA{A: 0xff})
}

func TestEncodeAndSave(t *testing.T) {
	cs, scr := newScreenshot(t)
	test.DemandSuccess(t, cs.RunForFrameCount(1, nil))
	scr.Caption = true

	var buf bytes.Buffer
	test.DemandSuccess(t, scr.Encode(&buf, false))
	img, err := png.Decode(&buf)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), beam.HActive)

	base := filepath.Join(t.TempDir(), "shot")
	name, err := scr.Save(base, false)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, name, base+"_0.png")

	_, err = scr.Save(base, false)
	test.ExpectSuccess(t, curated.Is(err, screenshot.FileExists))
}
