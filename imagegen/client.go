package imagegen

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// StylePrompt wraps a scene description in the charcoal art direction every
// illustration shares.
func StylePrompt(scene string) string {
	return fmt.Sprintf(`Style charbon artistique dramatique: %s.
Palette noir, gris, blanc exclusivement. Effet granuleux, ombres fortes, textures riches.
Technique fusain, charbon compressé, estompage. Atmosphère dramatique, émotion brute, esthétisme expressif.
Composition cinématographique, éclairage contrasté, détails texturés.`, scene)
}

// Client generates scene illustrations through the OpenAI Images API.
// The primary model needs organization verification on some accounts, so a
// capability-type rejection triggers a one-time fallback to the secondary.
type Client struct {
	api       openai.Client
	primary   openai.ImageModel
	secondary openai.ImageModel
}

// New builds a client with the gpt-image-1 / dall-e-3 model pair.
func New(apiKey string) *Client {
	return &Client{
		api:       openai.NewClient(option.WithAPIKey(apiKey)),
		primary:   openai.ImageModelGPTImage1,
		secondary: openai.ImageModelDallE3,
	}
}

// Generate renders one portrait illustration and returns the raw bytes.
func (c *Client) Generate(ctx context.Context, prompt string) ([]byte, error) {
	img, err := c.generate(ctx, c.primary, prompt)
	if err == nil {
		return img, nil
	}
	if !isCapabilityRejection(err) {
		return nil, err
	}

	log.Printf("%s rejected the request (%v), falling back to %s", c.primary, err, c.secondary)
	return c.generate(ctx, c.secondary, prompt)
}

func (c *Client) generate(ctx context.Context, model openai.ImageModel, prompt string) ([]byte, error) {
	params := openai.ImageGenerateParams{
		Prompt: prompt,
		Model:  model,
		N:      openai.Int(1),
	}
	if model == openai.ImageModelGPTImage1 {
		// gpt-image-1 always answers base64 and rejects response_format
		params.Size = openai.ImageGenerateParamsSize1024x1536
	} else {
		params.Size = openai.ImageGenerateParamsSize1024x1792
		params.ResponseFormat = openai.ImageGenerateParamsResponseFormatB64JSON
	}

	resp, err := c.api.Images.Generate(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("image generation error: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, errors.New("image generation returned no image")
	}

	raw, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image payload: %w", err)
	}
	return raw, nil
}

// isCapabilityRejection detects the verification/403 class of errors that
// warrant retrying on the secondary model.
func isCapabilityRejection(err error) bool {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == 403 {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "403") || strings.Contains(msg, "verification")
}
