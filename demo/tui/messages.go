package tui

import (
	"time"

	"clipforge/demo/client"
)

// TickMsg is sent every second while a generation is running
type TickMsg struct {
	Time time.Time
}

// SuggestionsMsg is sent when topic suggestions arrive
type SuggestionsMsg struct {
	Suggestions []client.Suggestion
	Err         error
}

// GenerationDoneMsg is sent when the full pipeline finishes
type GenerationDoneMsg struct {
	Result *client.GenerateResult
	Err    error
}
