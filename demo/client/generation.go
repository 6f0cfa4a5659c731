package client

import (
	"fmt"

	"clipforge/types"
)

// Suggestion mirrors one entry of the /api/topics/suggest response.
type Suggestion struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Prompt string `json:"prompt"`
}

// GenerateResult is the /api/create-complete-video response.
type GenerateResult struct {
	Project *types.VideoProject  `json:"project"`
	Video   *types.RenderedVideo `json:"video"`
}

// SuggestTopics fetches prompt suggestions.
func (c *APIClient) SuggestTopics(count int) ([]Suggestion, error) {
	var out struct {
		Suggestions []Suggestion `json:"suggestions"`
	}
	path := "/api/topics/suggest"
	if count > 0 {
		path = fmt.Sprintf("%s?count=%d", path, count)
	}
	if err := c.getJSON(path, &out); err != nil {
		return nil, err
	}
	return out.Suggestions, nil
}

// GenerateVideo runs the full pipeline for one prompt.
func (c *APIClient) GenerateVideo(prompt string, duration int) (*GenerateResult, error) {
	req := types.GenerationRequest{Prompt: prompt, Duration: duration}
	var out GenerateResult
	if err := c.postJSON("/api/create-complete-video", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProject fetches one project bundle.
func (c *APIClient) GetProject(id string) (*types.VideoProject, error) {
	var out struct {
		Project *types.VideoProject `json:"project"`
	}
	if err := c.getJSON("/api/project/"+id, &out); err != nil {
		return nil, err
	}
	return out.Project, nil
}
