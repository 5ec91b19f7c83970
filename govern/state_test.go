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

package govern_test

import (
	"testing"

	"github.com/mymig/mymig/govern"
	"github.com/mymig/mymig/test"
)

func TestStateContinue(t *testing.T) {
	test.ExpectSuccess(t, govern.Running.Continue())
	test.ExpectSuccess(t, govern.Stepping.Continue())
	test.ExpectFailure(t, govern.Paused.Continue())
	test.ExpectFailure(t, govern.Ending.Continue())
	test.ExpectFailure(t, govern.Initialising.Continue())
	test.ExpectEquality(t, govern.Ending.String(), "Ending")
	test.ExpectEquality(t, govern.ModeMonitor.String(), "Monitor")
}
