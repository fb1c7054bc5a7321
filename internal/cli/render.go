package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles groups the terminal styling used by the report printers. With
// color disabled every style is a passthrough, so output stays byte-stable
// for tests and pipes.
type styles struct {
	header  lipgloss.Style
	good    lipgloss.Style
	warn    lipgloss.Style
	bad     lipgloss.Style
	command lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{header: plain, good: plain, warn: plain, bad: plain, command: plain}
	}
	return styles{
		header:  lipgloss.NewStyle().Bold(true),
		good:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		bad:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		command: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	}
}

// cycleText formats a cycle's member list as "a -> b -> a", closing the
// loop back to the first member.
func cycleText(cycle []string) string {
	if len(cycle) == 0 {
		return ""
	}
	return strings.Join(append(append([]string{}, cycle...), cycle[0]), " -> ")
}
