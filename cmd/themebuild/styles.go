package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	themeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	sharedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	noneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// termIsTerminal is swapped in tests.
var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return termIsTerminal(int(file.Fd()))
	}
	return false
}

// painter renders through lipgloss only when styled is set, so piped output
// carries no escape sequences.
type painter struct {
	styled bool
}

func newPainter(w io.Writer) painter {
	return painter{styled: isTerminal(w)}
}

func (p painter) paint(style lipgloss.Style, s string) string {
	if !p.styled {
		return s
	}
	return style.Render(s)
}
