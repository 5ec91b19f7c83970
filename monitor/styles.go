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
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	colour bool

	prompt   lipgloss.Style
	feedback lipgloss.Style
	beam     lipgloss.Style
	copper   lipgloss.Style
	mem      lipgloss.Style
	regs     lipgloss.Style
	err      lipgloss.Style
}

// ANSI Color reference
// 0	Black
// 1	Red
// 2	Green
// 3	Yellow
// 4	Blue
// 5	Magenta
// 6	Cyan
// 7	White
func newStyles(colour bool) styles {
	return styles{
		colour:   colour,
		prompt:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(2)),
		feedback: lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(7)),
		beam:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		copper:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		mem:      lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(5)),
		regs:     lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(4)),
		err:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
	}
}

type styleID int

const (
	styleFeedback styleID = iota
	styleBeam
	styleCopper
	styleMem
	styleRegs
	styleErr
)

func (st styles) get(id styleID) lipgloss.Style {
	switch id {
	case styleBeam:
		return st.beam
	case styleCopper:
		return st.copper
	case styleMem:
		return st.mem
	case styleRegs:
		return st.regs
	case styleErr:
		return st.err
	}
	return st.feedback
}

// render the string with the style, if colour output is enabled.
func (st styles) render(style lipgloss.Style, s string) string {
	if !st.colour {
		return s
	}
	return style.Render(s)
}
