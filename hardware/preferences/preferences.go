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

// Package preferences collates the preference values used by the emulation
// and its front ends.
package preferences

import (
	"github.com/mymig/mymig/curated"
	"github.com/mymig/mymig/prefs"
)

// UnknownBackend is the sentinal error pattern for an unsupported value
// for the display.backend preference.
const UnknownBackend = "preferences: unknown backend (%v)"

// Valid values for the display.backend preference.
const (
	BackendSDL    = "sdl"
	BackendEbiten = "ebiten"
)

// Preferences defines and collates all the preference values.
type Preferences struct {
	dsk *prefs.Disk

	// whether the emulation is limited to the refresh rate of the video signal
	FPSCap prefs.Bool

	// the scaling of the window in the GUI front ends
	Scale prefs.Float

	// the GUI front end to use
	Backend prefs.String

	// whether the terminal monitor uses colour
	MonitorColour prefs.Bool
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return "no preferences file"
	}
	return p.dsk.String()
}

// NewDefaults returns a Preferences instance that is not backed by a file.
// Load() and Save() do nothing.
func NewDefaults() *Preferences {
	p := &Preferences{}
	p.SetDefaults()
	return p
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. If path is empty then the default preferences file is
// used.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error

	if path == "" {
		path, err = prefs.DefaultPrefsFile()
		if err != nil {
			return nil, err
		}
	}

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	p.Backend.SetMaxLen(10)
	p.Backend.SetHookPre(func(v prefs.Value) error {
		switch v.(string) {
		case BackendSDL, BackendEbiten, "":
			return nil
		}
		return curated.Errorf(UnknownBackend, v)
	})

	err = p.dsk.Add("television.fpscap", &p.FPSCap)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.scale", &p.Scale)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.backend", &p.Backend)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("monitor.colour", &p.MonitorColour)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.FPSCap.Set(true)
	p.Scale.Set(2.0)
	p.Backend.Set(BackendSDL)
	p.MonitorColour.Set(true)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(false)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
