package script

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"

	"clipforge/config"
	"clipforge/types"
)

const defaultModel = "command-r-plus-08-2024"

// systemPrompt frames the model as a short-form video writer. The response
// contract ("Script:" then "Scènes:") is what Parse expects.
const systemPrompt = `Tu es un expert en création de contenu TikTok. Tu crées des scripts engageants et viraux pour des vidéos courtes.

INSTRUCTIONS:
1. Crée un script structuré avec des scènes distinctes
2. Chaque scène doit être visuelle et impactante
3. Le ton doit être dynamique et captivant
4. Adapte la durée selon le nombre de secondes demandées
5. Divise le script en 3-5 scènes maximum
6. Chaque scène doit pouvoir être illustrée par une image

FORMAT DE RÉPONSE:
Script: [Le script complet]

Scènes:
1. [Description de la scène 1]
2. [Description de la scène 2]
etc.`

// ErrEmptyPrompt rejects requests with no topic before any API call.
var ErrEmptyPrompt = errors.New("prompt must not be empty")

// ErrDurationOutOfRange rejects target durations outside the accepted window.
var ErrDurationOutOfRange = fmt.Errorf("duration must be between %d and %d seconds", config.MinClipSeconds, config.MaxClipSeconds)

// Generator writes narration scripts through the Cohere chat API.
type Generator struct {
	client *cohereclient.Client
	model  string
}

// NewGenerator builds a generator from COHERE_API_KEY. The custom HTTP
// client forces HTTP/1.1 to avoid HTTP/2 protocol errors seen with the
// Cohere endpoint.
func NewGenerator() (*Generator, error) {
	apiKey := os.Getenv("COHERE_API_KEY")
	if apiKey == "" {
		return nil, errors.New("COHERE_API_KEY not set")
	}

	httpClient := &http.Client{
		Timeout: 60 * time.Second,
		Transport: &http.Transport{
			ForceAttemptHTTP2: false,
		},
	}

	model := os.Getenv("COHERE_CHAT_MODEL")
	if model == "" {
		model = defaultModel
	}

	return &Generator{
		client: cohereclient.NewClient(
			cohereclient.WithToken(apiKey),
			cohereclient.WithHTTPClient(httpClient),
		),
		model: model,
	}, nil
}

// Generate asks the model for a script of the requested length and parses
// the scene breakdown out of the reply.
func (g *Generator) Generate(ctx context.Context, prompt string, duration int) (*types.GeneratedScript, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, ErrEmptyPrompt
	}
	if duration < config.MinClipSeconds || duration > config.MaxClipSeconds {
		return nil, ErrDurationOutOfRange
	}

	userPrompt := fmt.Sprintf("Crée un script TikTok de %d secondes pour le sujet suivant: %s", duration, prompt)

	resp, err := g.client.V2.Chat(ctx, &cohere.V2ChatRequest{
		Model: g.model,
		Messages: cohere.ChatMessages{
			{
				Role: "system",
				System: &cohere.SystemMessageV2{
					Content: &cohere.SystemMessageV2Content{String: systemPrompt},
				},
			},
			{
				Role: "user",
				User: &cohere.UserMessageV2{
					Content: &cohere.UserMessageV2Content{String: userPrompt},
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("cohere chat error: %w", err)
	}
	if resp == nil || resp.Message == nil {
		return nil, errors.New("cohere chat returned empty response")
	}

	var b strings.Builder
	for _, item := range resp.Message.Content {
		if item.Text != nil {
			b.WriteString(item.Text.Text)
		}
	}
	responseText := b.String()
	if strings.TrimSpace(responseText) == "" {
		return nil, errors.New("cohere chat returned no text content")
	}

	scriptText, scenes := Parse(responseText)

	return &types.GeneratedScript{
		ID:         types.NewID(),
		Prompt:     prompt,
		Duration:   duration,
		ScriptText: scriptText,
		Scenes:     scenes,
		CreatedAt:  time.Now().UTC(),
	}, nil
}
