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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Whereas, with the flag package you call the Parse()
// function after defining the flags, with modalflag you call Parse() after
// NewArgs() and the flag definitions:
//
//	md := Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	scale := md.AddInt("scale", 2, "window scaling")
//	md.AddSubModes("RUN", "FRAMES", "MONITOR")
//
//	p, err := md.Parse()
//	switch p {
//	case ParseHelp:
//		// help message has already been printed
//		return
//	case ParseError:
//		fmt.Println(err)
//		return
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		...
//	}
//
// The first sub-mode in the list is the default mode. Sub-mode comparisons
// are case insensitive. After a sub-mode has been selected, NewMode() starts
// a new layer of flags for that mode and Parse() is called again.
//
// Help messages are generated automatically from the flag definitions and the
// list of sub-modes. The Output field must be set for them to be visible.
package modalflag
