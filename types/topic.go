package types

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// TopicSuggestion is a video prompt seeded from a news headline.
type TopicSuggestion struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Prompt    string    `json:"prompt"`
	SourceURL string    `json:"source_url"`
	FetchedAt time.Time `json:"fetched_at"`
}

// GenerateID creates a stable ID from a source URL.
func GenerateID(url string) string {
	hash := sha256.Sum256([]byte(url))
	return hex.EncodeToString(hash[:])[:16]
}
