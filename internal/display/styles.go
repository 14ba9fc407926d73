package display

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles contains styling for console output
type Styles struct {
	Title  lipgloss.Style
	Prompt lipgloss.Style
	Text   lipgloss.Style
	Error  lipgloss.Style
	Input  lipgloss.Style
}

// DefaultStyles returns the styles used by the console
func DefaultStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
		Text:   lipgloss.NewStyle().Foreground(lipgloss.Color("#DDDDDD")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Input:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
	}
}

// SetColor enables or disables colored output for every lipgloss style
func SetColor(enabled bool) {
	if enabled {
		lipgloss.SetColorProfile(termenv.EnvColorProfile())
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
}
