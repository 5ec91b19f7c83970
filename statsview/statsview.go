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

//go:build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/mymig/mymig/logger"
)

// Launch a new goroutine running the statsview. An empty address will cause
// the DefaultAddress to be used.
func Launch(output io.Writer, address string) {
	if address == "" {
		address = DefaultAddress
	}

	go func() {
		viewer.SetConfiguration(viewer.WithAddr(address))
		mgr := statsview.New()
		mgr.Start()
	}()

	logger.Logf(logger.Allow, "statsview", "server started at %s%s", address, url)
	io.WriteString(output, fmt.Sprintf("stats server available at %s%s\n", address, url))
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
