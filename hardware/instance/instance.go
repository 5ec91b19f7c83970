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

// Package instance defines those parts of the emulation that might change from
// instance to instance of the Chipset type, but is not actually the Chipset
// itself.
package instance

import (
	"github.com/mymig/mymig/hardware/preferences"
)

// Label indicates the context of the instance.
type Label string

// List of value Label values.
const (
	Main     Label = ""
	Headless Label = "headless"
	Monitor  Label = "monitor"
)

// Instance defines those parts of the emulation that might change between
// different instantiations of the Chipset type.
type Instance struct {
	Label Label

	// the prefrences of the running instance. this instance can be shared
	// with other running instances of the emulation.
	Prefs *preferences.Preferences
}

// NewInstance is the preferred method of initialisation for the Instance type.
//
// If prefs is nil then a Preferences instance with default values, and not
// backed by a file, is used.
func NewInstance(label Label, prefs *preferences.Preferences) *Instance {
	if prefs == nil {
		prefs = preferences.NewDefaults()
	}
	return &Instance{
		Label: label,
		Prefs: prefs,
	}
}

// AllowLogging implements the logger.Permission interface. Headless
// instances do not log.
func (ins *Instance) AllowLogging() bool {
	return ins.Label != Headless
}

// Normalise ensures the instance is in an known default state.
func (ins *Instance) Normalise() {
	ins.Prefs.SetDefaults()
}
