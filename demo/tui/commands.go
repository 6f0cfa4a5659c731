package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"clipforge/demo/client"
)

// fetchSuggestions creates a command to load topic suggestions
func fetchSuggestions(c *client.APIClient) tea.Cmd {
	return func() tea.Msg {
		suggestions, err := c.SuggestTopics(5)
		return SuggestionsMsg{Suggestions: suggestions, Err: err}
	}
}

// generateVideo creates a command to run the full pipeline
func generateVideo(c *client.APIClient, prompt string, duration int) tea.Cmd {
	return func() tea.Msg {
		result, err := c.GenerateVideo(prompt, duration)
		return GenerationDoneMsg{Result: result, Err: err}
	}
}

// tickCmd drives the elapsed-time display while generating
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}
