package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	// Title
	b.WriteString(TitleStyle.Render("ClipForge Demo"))
	b.WriteString("\n\n")

	// Current state
	b.WriteString(m.getStateText())
	b.WriteString("\n\n")

	// Suggestions
	if len(m.Suggestions) > 0 && m.State != StateGenerating {
		b.WriteString(InfoStyle.Render("Topic ideas:"))
		b.WriteString("\n")
		for i, s := range m.Suggestions {
			marker := "  "
			line := fmt.Sprintf("%s %s", marker, s.Title)
			if i == m.Selected {
				line = HighlightStyle.Render("> " + s.Title)
			} else {
				line = InfoStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Logs
	if len(m.Logs) > 0 {
		b.WriteString(InfoStyle.Render("Recent Activity:"))
		b.WriteString("\n")
		for _, logMsg := range m.Logs {
			b.WriteString(InfoStyle.Render("   " + logMsg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Results
	if m.State == StateComplete && m.Result != nil {
		b.WriteString(BoxStyle.Render(m.formatResult()))
		b.WriteString("\n\n")
	}

	// Help text
	switch m.State {
	case StateGenerating:
		b.WriteString(InfoStyle.Render("Press 'q' or Ctrl+C to quit"))
	default:
		b.WriteString(InfoStyle.Render("'g' generate | 's' suggestions | 'j'/'k' select | 'q' quit"))
	}

	return b.String()
}
