package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case TickMsg:
		return m.handleTick()
	case SuggestionsMsg:
		return m.handleSuggestions(msg)
	case GenerationDoneMsg:
		return m.handleGenerationDone(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "s", "S":
		if m.State == StateIdle || m.State == StateComplete || m.State == StateError {
			m.State = StateSuggesting
			m = m.AddLog("Fetching topic suggestions...")
			return m, fetchSuggestions(m.Client)
		}
	case "j", "down":
		if len(m.Suggestions) > 0 && m.Selected < len(m.Suggestions)-1 {
			m.Selected++
		}
	case "k", "up":
		if m.Selected > 0 {
			m.Selected--
		}
	case "g", "G", "enter":
		if m.State == StateIdle || m.State == StateComplete || m.State == StateError {
			prompt := m.currentPrompt()
			if prompt == "" {
				m.State = StateError
				m.Err = fmt.Errorf("no prompt set; pass -prompt or fetch suggestions with 's'")
				return m, nil
			}
			m.State = StateGenerating
			m.StartedAt = time.Now()
			m.Elapsed = 0
			m = m.AddLog("Starting generation: " + prompt)
			return m, tea.Batch(generateVideo(m.Client, prompt, m.Duration), tickCmd())
		}
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.State != StateGenerating {
		return m, nil
	}
	m.Elapsed = time.Since(m.StartedAt)
	return m, tickCmd()
}

// handleSuggestions processes fetched topic suggestions
func (m Model) handleSuggestions(msg SuggestionsMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = fmt.Errorf("failed to fetch suggestions: %w", msg.Err)
		return m, nil
	}
	m.Suggestions = msg.Suggestions
	m.Selected = 0
	m.State = StateIdle
	m = m.AddLog(fmt.Sprintf("Fetched %d suggestion(s)", len(msg.Suggestions)))
	return m, nil
}

// handleGenerationDone processes the finished pipeline run
func (m Model) handleGenerationDone(msg GenerationDoneMsg) (tea.Model, tea.Cmd) {
	m.Elapsed = time.Since(m.StartedAt)
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	m.Result = msg.Result
	m.State = StateComplete
	m = m.AddLog("Generation complete")
	return m, nil
}
