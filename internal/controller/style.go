package controller

import (
	"github.com/charmbracelet/lipgloss"
	m "gooze.dev/pkg/calculo/internal/model"
)

var (
	greaterStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	smallerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle   = lipgloss.NewStyle().Faint(true)
	titleStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func verdictStyle(v m.Verdict) lipgloss.Style {
	if v == m.Greater {
		return greaterStyle
	}

	return smallerStyle
}

// styledMessage renders the console message of v, colored when styled is set.
func styledMessage(v m.Verdict, styled bool) string {
	if !styled {
		return v.Message()
	}

	return verdictStyle(v).Render(v.Message())
}
