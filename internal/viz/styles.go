package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	BorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	StartStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	EndStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	CoinStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// Colorize styles a rendered art block for the terminal: dim borders,
// green start marker, red end marker. Border styling applies only to the
// frame, so a '+' coin inside the room keeps its coin color.
func Colorize(block string) string {
	lines := strings.Split(block, "\n")

	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if i == 0 || i == len(lines)-1 {
			sb.WriteString(BorderStyle.Render(line))
			continue
		}
		for j, r := range line {
			switch {
			case j == 0 || j == len(line)-1:
				sb.WriteString(BorderStyle.Render(string(r)))
			case r == 'S':
				sb.WriteString(StartStyle.Render(string(r)))
			case r == 'E':
				sb.WriteString(EndStyle.Render(string(r)))
			default:
				sb.WriteString(CoinStyle.Render(string(r)))
			}
		}
	}
	return sb.String()
}
