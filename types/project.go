package types

import (
	"time"

	"github.com/google/uuid"
)

// Project status values
const (
	StatusGenerating = "generating"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// GenerationRequest is a request to produce one short-form video.
type GenerationRequest struct {
	Prompt   string `json:"prompt" binding:"required"`
	Duration int    `json:"duration"` // target seconds, 15-60
}

// GeneratedScript is the LLM-written narration script with its scene breakdown.
type GeneratedScript struct {
	ID         string    `json:"id"`
	Prompt     string    `json:"prompt"`
	Duration   int       `json:"duration"`
	ScriptText string    `json:"script_text"`
	Scenes     []string  `json:"scenes"`
	CreatedAt  time.Time `json:"created_at"`
}

// GeneratedImage is one charcoal-style scene illustration.
type GeneratedImage struct {
	ID               string    `json:"id"`
	Prompt           string    `json:"prompt"`
	SceneDescription string    `json:"scene_description"`
	ImageBase64      string    `json:"image_base64"`
	CreatedAt        time.Time `json:"created_at"`
}

// Narration is the synthesized voiceover for a script.
type Narration struct {
	ID          string    `json:"id"`
	ScriptID    string    `json:"script_id"`
	VoiceID     string    `json:"voice_id"`
	AudioBase64 string    `json:"audio_base64"`
	Duration    float64   `json:"duration"` // seconds
	Measured    bool      `json:"measured"` // true when probed from the audio, false when estimated
	CreatedAt   time.Time `json:"created_at"`
}

// RenderedVideo is the final assembled clip.
type RenderedVideo struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	VideoBase64 string    `json:"video_base64"`
	S3Key       string    `json:"s3_key,omitempty"`
	YouTubeID   string    `json:"youtube_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// SceneResult records the per-scene outcome of image generation.
// A failed scene is skipped, not fatal.
type SceneResult struct {
	Index            int    `json:"index"`
	SceneDescription string `json:"scene_description"`
	ImageID          string `json:"image_id,omitempty"`
	Error            string `json:"error,omitempty"`
}

// VideoProject ties together the artifacts of one generation job.
type VideoProject struct {
	ID             string    `json:"id"`
	OriginalPrompt string    `json:"original_prompt"`
	Duration       int       `json:"duration"`
	ScriptID       string    `json:"script_id,omitempty"`
	ImageIDs       []string  `json:"image_ids,omitempty"`
	NarrationID    string    `json:"narration_id,omitempty"`
	VideoID        string    `json:"video_id,omitempty"`
	Status         string    `json:"status"`
	Error          string    `json:"error,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewID generates an identifier for a stored artifact.
func NewID() string {
	return uuid.New().String()
}
