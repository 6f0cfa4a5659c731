package publish

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// YouTube uploads rendered clips as Shorts.
type YouTube struct {
	service *youtube.Service
	privacy string
}

// NewYouTube authenticates with a service account JSON file.
func NewYouTube(ctx context.Context, serviceAccountFile string) (*YouTube, error) {
	data, err := os.ReadFile(serviceAccountFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read service account file: %w", err)
	}

	config, err := google.JWTConfigFromJSON(data, youtube.YoutubeUploadScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service account: %w", err)
	}

	service, err := youtube.NewService(ctx, option.WithHTTPClient(config.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("unable to create YouTube service: %w", err)
	}

	privacy := os.Getenv("YOUTUBE_PRIVACY_STATUS")
	if privacy == "" {
		privacy = "unlisted"
	}

	return &YouTube{service: service, privacy: privacy}, nil
}

// Publish uploads the encoded clip and returns its video id.
func (y *YouTube) Publish(ctx context.Context, title, description string, data []byte) (string, error) {
	log.Printf("Uploading %q (%.2f MB)", title, float64(len(data))/(1024*1024))

	video := &youtube.Video{
		Snippet: &youtube.VideoSnippet{
			Title:       title,
			Description: description,
			Tags:        []string{"shorts", "histoire", "story"},
			CategoryId:  "24",
		},
		Status: &youtube.VideoStatus{
			PrivacyStatus:           y.privacy,
			SelfDeclaredMadeForKids: false,
		},
	}

	call := y.service.Videos.Insert([]string{"snippet", "status"}, video)
	call = call.Media(bytes.NewReader(data))

	response, err := call.Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload video: %w", err)
	}

	log.Printf("Uploaded https://youtube.com/shorts/%s", response.Id)
	return response.Id, nil
}
