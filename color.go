package tably

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"
)

var colorStyles = map[string]lipgloss.Style{
	"red":     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	"green":   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	"yellow":  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	"blue":    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	"magenta": lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	"violet":  lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	"cyan":    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	"white":   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	"grey":    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	"gray":    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	"bold":    lipgloss.NewStyle().Bold(true),
	"italic":  lipgloss.NewStyle().Italic(true),
}

// colorize wraps text in the terminal style named by color. Unknown or empty
// color names return the text unchanged.
func colorize(color, text string) string {
	if color == "" || text == "" {
		return text
	}
	style, ok := colorStyles[strings.ToLower(color)]
	if !ok {
		log.Debugf("tably: unknown color %q", color)
		return text
	}
	return style.Render(text)
}
