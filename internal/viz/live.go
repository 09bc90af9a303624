package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/drunken-bishop/randomart/internal/art"
	"github.com/drunken-bishop/randomart/internal/bishop"
	"github.com/drunken-bishop/randomart/internal/config"
	"github.com/drunken-bishop/randomart/internal/digest"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	inputStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	fingerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Live is a Bubble Tea model that redraws the randomart of whatever has
// been typed so far, one keystroke at a time.
type Live struct {
	cfg   *config.Config
	input []rune
}

// NewLive builds the interactive model. The config should be validated
// before the program starts; View reports rather than panics on failure.
func NewLive(cfg *config.Config) Live {
	return Live{cfg: cfg}
}

func (m Live) Init() tea.Cmd {
	return nil
}

func (m Live) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		case " ":
			m.input = append(m.input, ' ')
		default:
			if msg.Type == tea.KeyRunes {
				m.input = append(m.input, msg.Runes...)
			}
		}
	}
	return m, nil
}

func (m Live) View() string {
	text := string(m.input)

	var sb strings.Builder
	sb.WriteString(headerStyle.Render("randomart live"))
	sb.WriteByte('\n')
	sb.WriteString(inputStyle.Render("> " + text))
	sb.WriteByte('\n')

	fp, err := digest.Sum(m.cfg.Hash, []byte(text))
	if err != nil {
		sb.WriteString(errStyle.Render(err.Error()))
		return sb.String()
	}
	sb.WriteString(fingerStyle.Render(fmt.Sprintf("%s: %s", m.cfg.Hash, shorten(fp, 48))))
	sb.WriteString("\n\n")

	board, err := bishop.DrawAt(fp, m.cfg.Room.Width, m.cfg.Room.Height, m.cfg.StartPosition())
	if err != nil {
		sb.WriteString(errStyle.Render(err.Error()))
		return sb.String()
	}

	label := m.cfg.Label
	if label == "" {
		label = m.cfg.Hash
	}
	sb.WriteString(Colorize(art.Render(board, label)))
	sb.WriteByte('\n')
	sb.WriteString(helpStyle.Render("type to draw, backspace to edit, esc to quit"))
	return sb.String()
}

func shorten(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
