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

package instance_test

import (
	"testing"

	"github.com/mymig/mymig/hardware/instance"
	"github.com/mymig/mymig/logger"
	"github.com/mymig/mymig/test"
)

func TestPermission(t *testing.T) {
	var perm logger.Permission

	perm = instance.NewInstance(instance.Main, nil)
	test.ExpectSuccess(t, perm.AllowLogging())

	perm = instance.NewInstance(instance.Headless, nil)
	test.ExpectFailure(t, perm.AllowLogging())
}

func TestNormalise(t *testing.T) {
	ins := instance.NewInstance(instance.Main, nil)
	test.ExpectSuccess(t, ins.Prefs.FPSCap.Set(false))
	ins.Normalise()
	test.ExpectEquality(t, ins.Prefs.FPSCap.Get().(bool), true)
}
