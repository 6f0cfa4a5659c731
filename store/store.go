package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"clipforge/config"
	"clipforge/types"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("document not found")

// Key prefixes for each document collection.
const (
	scriptPrefix  = "scripts:"
	imagePrefix   = "images:"
	voicePrefix   = "voices:"
	projectPrefix = "projects:"
	videoPrefix   = "videos:"
)

// Store persists pipeline documents as JSON values in Redis.
type Store struct {
	client *redis.Client
}

// NewFromEnv creates a Store using REDIS_ADDR and REDIS_PASS and
// verifies connectivity with a ping.
func NewFromEnv() (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.GetRedisAddr(),
		Password: config.GetRedisPassword(),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", config.GetRedisAddr(), err)
	}

	return &Store{client: client}, nil
}

// New wraps an existing redis client.
func New(client *redis.Client) *Store {
	return &Store{client: client}
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) put(ctx context.Context, key string, doc interface{}) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document %s: %w", key, err)
	}
	if err := s.client.Set(ctx, key, b, 0).Err(); err != nil {
		return fmt.Errorf("failed to store document %s: %w", key, err)
	}
	return nil
}

func (s *Store) get(ctx context.Context, key string, doc interface{}) error {
	b, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to load document %s: %w", key, err)
	}
	if err := json.Unmarshal(b, doc); err != nil {
		return fmt.Errorf("failed to decode document %s: %w", key, err)
	}
	return nil
}

// PutScript stores a generated script.
func (s *Store) PutScript(ctx context.Context, script *types.GeneratedScript) error {
	return s.put(ctx, scriptPrefix+script.ID, script)
}

// GetScript loads a generated script by id.
func (s *Store) GetScript(ctx context.Context, id string) (*types.GeneratedScript, error) {
	var script types.GeneratedScript
	if err := s.get(ctx, scriptPrefix+id, &script); err != nil {
		return nil, err
	}
	return &script, nil
}

// PutImage stores a generated image.
func (s *Store) PutImage(ctx context.Context, img *types.GeneratedImage) error {
	return s.put(ctx, imagePrefix+img.ID, img)
}

// GetImage loads a generated image by id.
func (s *Store) GetImage(ctx context.Context, id string) (*types.GeneratedImage, error) {
	var img types.GeneratedImage
	if err := s.get(ctx, imagePrefix+id, &img); err != nil {
		return nil, err
	}
	return &img, nil
}

// GetImages loads a batch of images, preserving the order of ids.
func (s *Store) GetImages(ctx context.Context, ids []string) ([]*types.GeneratedImage, error) {
	images := make([]*types.GeneratedImage, 0, len(ids))
	for _, id := range ids {
		img, err := s.GetImage(ctx, id)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, nil
}

// PutNarration stores a synthesized narration.
func (s *Store) PutNarration(ctx context.Context, n *types.Narration) error {
	return s.put(ctx, voicePrefix+n.ID, n)
}

// GetNarration loads a narration by id.
func (s *Store) GetNarration(ctx context.Context, id string) (*types.Narration, error) {
	var n types.Narration
	if err := s.get(ctx, voicePrefix+id, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// PutProject stores a video project.
func (s *Store) PutProject(ctx context.Context, p *types.VideoProject) error {
	return s.put(ctx, projectPrefix+p.ID, p)
}

// GetProject loads a video project by id.
func (s *Store) GetProject(ctx context.Context, id string) (*types.VideoProject, error) {
	var p types.VideoProject
	if err := s.get(ctx, projectPrefix+id, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProjectStatus transitions a project and records a failure reason
// when the new status is failed.
func (s *Store) UpdateProjectStatus(ctx context.Context, id, status, reason string) error {
	p, err := s.GetProject(ctx, id)
	if err != nil {
		return err
	}
	p.Status = status
	if status == types.StatusFailed {
		p.Error = reason
	}
	return s.PutProject(ctx, p)
}

// PutVideo stores a rendered video.
func (s *Store) PutVideo(ctx context.Context, v *types.RenderedVideo) error {
	return s.put(ctx, videoPrefix+v.ID, v)
}

// GetVideo loads a rendered video by id.
func (s *Store) GetVideo(ctx context.Context, id string) (*types.RenderedVideo, error) {
	var v types.RenderedVideo
	if err := s.get(ctx, videoPrefix+id, &v); err != nil {
		return nil, err
	}
	return &v, nil
}
