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

package preferences_test

import (
	"path/filepath"
	"testing"

	"github.com/mymig/mymig/hardware/preferences"
	"github.com/mymig/mymig/test"
)

func TestDefaults(t *testing.T) {
	p := preferences.NewDefaults()
	test.ExpectEquality(t, p.FPSCap.Get().(bool), true)
	test.ExpectEquality(t, p.Backend.String(), preferences.BackendSDL)
	test.ExpectSuccess(t, p.Save())
	test.ExpectSuccess(t, p.Load())
}

func TestSaveLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferences(pth)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, p.FPSCap.Set(false))
	test.ExpectSuccess(t, p.Backend.Set(preferences.BackendEbiten))
	test.ExpectFailure(t, p.Backend.Set("vga"))
	test.ExpectEquality(t, p.Backend.String(), preferences.BackendEbiten)
	test.ExpectSuccess(t, p.Save())

	q, err := preferences.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.FPSCap.Get().(bool), false)
	test.ExpectEquality(t, q.Backend.String(), preferences.BackendEbiten)
}
