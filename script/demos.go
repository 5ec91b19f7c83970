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

package script

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/mymig/mymig/curated"
	"github.com/mymig/mymig/logger"
)

// UnknownDemo is the sentinal error pattern for a demo name that does not
// exist.
const UnknownDemo = "script: unknown demo (%s)"

//go:embed demos/*.lua
var demos embed.FS

// Demos returns the names of the embedded demonstration programs in
// alphabetical order.
func Demos() []string {
	var names []string
	entries, _ := fs.ReadDir(demos, "demos")
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}

// Demo returns the source of the named demonstration program.
func Demo(name string) (string, error) {
	b, err := demos.ReadFile(path.Join("demos", strings.ToLower(name)+".lua"))
	if err != nil {
		return "", curated.Errorf(UnknownDemo, name)
	}
	return string(b), nil
}

// NewDemo compiles the named demonstration program.
func NewDemo(env logger.Permission, name string) (*Script, error) {
	src, err := Demo(name)
	if err != nil {
		return nil, err
	}
	return NewScript(env, strings.ToLower(name), src)
}
