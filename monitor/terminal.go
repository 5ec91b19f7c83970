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

package monitor

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/mymig/mymig/curated"
)

// TerminalError is the sentinal error pattern for problems setting up the
// terminal.
const TerminalError = "monitor: terminal: %v"

// list of ASCII codes for the keys handled by the line editor
const (
	keyInterrupt = 3
	keyEOF       = 4
	keyBackspace = 8
	keyLineFeed  = 10
	keyReturn    = 13
	keyDelete    = 127
)

// Terminal wraps a posix terminal. The input is put into cbreak mode while
// the monitor is waiting for input so that single key presses can be acted
// upon immediately.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

// IsTerminal returns true if both files are connected to a terminal.
func IsTerminal(input, output *os.File) bool {
	if input == nil || output == nil {
		return false
	}
	return term.IsTerminal(int(input.Fd())) && term.IsTerminal(int(output.Fd()))
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type.
func NewTerminal(input, output *os.File) (*Terminal, error) {
	if !IsTerminal(input, output) {
		return nil, curated.Errorf(TerminalError, "not a terminal")
	}

	pt := &Terminal{
		input:  input,
		output: output,
	}

	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return nil, curated.Errorf(TerminalError, err)
	}

	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	return pt, nil
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() error {
	return termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.canAttr)
}

// CBreakMode puts terminal into cbreak mode.
func (pt *Terminal) CBreakMode() error {
	return termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.cbreakAttr)
}

// Flush discards any pending input.
func (pt *Terminal) Flush() error {
	return termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH)
}

// CleanUp restores the terminal to canonical mode.
func (pt *Terminal) CleanUp() {
	_ = pt.CanonicalMode()
}
