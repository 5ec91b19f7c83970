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

package logger

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colorizer applies basic coloring rules to logging output. The tag of each
// entry is emphasised and any continuation lines are dimmed.
type Colorizer struct {
	out  io.Writer
	tag  lipgloss.Style
	cont lipgloss.Style
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{
		out:  out,
		tag:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		cont: lipgloss.NewStyle().Faint(true).Foreground(lipgloss.ANSIColor(1)),
	}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	l := strings.Split(strings.TrimSpace(string(p)), "\n")
	if len(l) == 0 || len(l[0]) == 0 {
		return len(p), nil
	}

	s := strings.Builder{}

	tag, detail, ok := strings.Cut(l[0], ": ")
	if ok {
		s.WriteString(c.tag.Render(tag))
		s.WriteString(": ")
		s.WriteString(detail)
	} else {
		s.WriteString(l[0])
	}
	s.WriteString("\n")

	for _, t := range l[1:] {
		s.WriteString(c.cont.Render(t))
		s.WriteString("\n")
	}

	_, err := io.WriteString(c.out, s.String())
	if err != nil {
		return 0, err
	}
	return len(p), nil
}
