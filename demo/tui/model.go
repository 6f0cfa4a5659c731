package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"clipforge/demo/client"
)

// State represents the application state machine
type State string

const (
	StateIdle       State = "idle"
	StateSuggesting State = "suggesting"
	StateGenerating State = "generating"
	StateComplete   State = "complete"
	StateError      State = "error"
)

// Model represents the TUI client state
type Model struct {
	Client   *client.APIClient
	Prompt   string
	Duration int

	State       State
	Suggestions []client.Suggestion
	Selected    int
	Result      *client.GenerateResult
	StartedAt   time.Time
	Elapsed     time.Duration
	Logs        []string
	Err         error
}

// NewModel creates a new TUI model
func NewModel(apiURL, prompt string, duration int) Model {
	return Model{
		Client:   client.New(apiURL),
		Prompt:   prompt,
		Duration: duration,
		State:    StateIdle,
		Logs:     make([]string, 0),
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// AddLog appends a log line, keeping the most recent entries
func (m Model) AddLog(message string) Model {
	m.Logs = append(m.Logs, message)
	if len(m.Logs) > 8 {
		m.Logs = m.Logs[len(m.Logs)-8:]
	}
	return m
}

// currentPrompt is the prompt the next generation will use
func (m Model) currentPrompt() string {
	if len(m.Suggestions) > 0 && m.Selected < len(m.Suggestions) {
		return m.Suggestions[m.Selected].Prompt
	}
	return m.Prompt
}

// getStateText returns the appropriate state message
func (m Model) getStateText() string {
	switch m.State {
	case StateIdle:
		return HighlightStyle.Render("Ready") + "\n\n" +
			InfoStyle.Render("Press 'g' to generate a video, 's' to fetch topic ideas")
	case StateSuggesting:
		return StatusStyle.Render("Fetching topic suggestions...")
	case StateGenerating:
		return StatusStyle.Render(fmt.Sprintf("Generating video... (%s)", m.Elapsed.Round(time.Second)))
	case StateComplete:
		return HighlightStyle.Render("COMPLETE")
	case StateError:
		errMsg := "Unknown error"
		if m.Err != nil {
			errMsg = m.Err.Error()
		}
		return ErrorStyle.Render("Error: " + errMsg)
	default:
		return ""
	}
}

// formatResult formats the finished generation for display
func (m Model) formatResult() string {
	var b strings.Builder

	b.WriteString(HighlightStyle.Render("Generation Result"))
	b.WriteString("\n\n")

	if m.Result.Project != nil {
		b.WriteString(fmt.Sprintf("Project: %s\n", m.Result.Project.ID))
		b.WriteString(fmt.Sprintf("Status: %s\n", StatusStyle.Render(m.Result.Project.Status)))
		b.WriteString(fmt.Sprintf("Scenes: %d image(s)\n", len(m.Result.Project.ImageIDs)))
	}
	if m.Result.Video != nil {
		b.WriteString(fmt.Sprintf("Video: %s\n", m.Result.Video.ID))
		if m.Result.Video.S3Key != "" {
			b.WriteString(fmt.Sprintf("S3 key: %s\n", m.Result.Video.S3Key))
		}
		if m.Result.Video.YouTubeID != "" {
			b.WriteString(fmt.Sprintf("YouTube: https://youtube.com/shorts/%s\n", m.Result.Video.YouTubeID))
		}
	}
	b.WriteString(fmt.Sprintf("\nTook %s", m.Elapsed.Round(time.Second)))

	return b.String()
}
