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

// Package version reports the version of the application. The version
// number is set by the linker for release builds, otherwise the VCS
// information embedded by the go tool is used.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "MyMig"

// set with -ldflags "-X github.com/mymig/mymig/version.number=v0.1.0"
var number string

var (
	version  string
	revision string
)

// Version returns the version string, the revision string and whether this
// is a numbered release.
//
// The version string is "unreleased" if the application was built from a
// VCS checkout without a version number and "local" if there is no VCS
// information at all.
func Version() (string, string, bool) {
	return version, revision, version == number
}

// Title returns the application name and the version. Suitable for window
// titles.
func Title() string {
	if version == number {
		return fmt.Sprintf("%s %s", ApplicationName, version)
	}
	return ApplicationName
}

func init() {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	switch {
	case vcsRevision == "":
		revision = "no revision information"
	case vcsModified:
		revision = fmt.Sprintf("%s+dirty", vcsRevision)
	default:
		revision = vcsRevision
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
