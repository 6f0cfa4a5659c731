package pipeline

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"time"

	"clipforge/config"
	"clipforge/imagegen"
	"clipforge/tts"
	"clipforge/types"
	"clipforge/video"
)

// ErrAllScenesFailed reports that image generation produced nothing usable.
var ErrAllScenesFailed = errors.New("image generation failed for every scene")

// ScriptGenerator writes a narration script with a scene breakdown.
type ScriptGenerator interface {
	Generate(ctx context.Context, prompt string, duration int) (*types.GeneratedScript, error)
}

// ImageGenerator renders one scene illustration from a styled prompt.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) ([]byte, error)
}

// SpeechSynthesizer lists voices and renders narration audio.
type SpeechSynthesizer interface {
	Voices(ctx context.Context) ([]tts.Voice, error)
	Synthesize(ctx context.Context, text, voiceID string) ([]byte, error)
}

// Assembler transcodes stills plus narration into a finished clip.
type Assembler interface {
	MeasureDuration(audio []byte) (float64, error)
	Assemble(ctx context.Context, in video.AssembleInput) ([]byte, error)
}

// DocumentStore persists pipeline artifacts.
type DocumentStore interface {
	PutScript(ctx context.Context, s *types.GeneratedScript) error
	GetScript(ctx context.Context, id string) (*types.GeneratedScript, error)
	PutImage(ctx context.Context, img *types.GeneratedImage) error
	GetImages(ctx context.Context, ids []string) ([]*types.GeneratedImage, error)
	PutNarration(ctx context.Context, n *types.Narration) error
	GetNarration(ctx context.Context, id string) (*types.Narration, error)
	PutProject(ctx context.Context, p *types.VideoProject) error
	GetProject(ctx context.Context, id string) (*types.VideoProject, error)
	UpdateProjectStatus(ctx context.Context, id, status, reason string) error
	PutVideo(ctx context.Context, v *types.RenderedVideo) error
	GetVideo(ctx context.Context, id string) (*types.RenderedVideo, error)
}

// Uploader pushes a rendered clip to object storage. Optional.
type Uploader interface {
	UploadVideo(ctx context.Context, key string, data []byte) (string, error)
}

// Publisher posts a rendered clip to a sharing platform. Optional.
type Publisher interface {
	Publish(ctx context.Context, title, description string, data []byte) (string, error)
}

// Deps carries the collaborators one Pipeline needs. Uploader and
// Publisher may be nil; those stages are then skipped.
type Deps struct {
	Scripts   ScriptGenerator
	Images    ImageGenerator
	Speech    SpeechSynthesizer
	Assembler Assembler
	Store     DocumentStore
	Uploader  Uploader
	Publisher Publisher
}

// Pipeline chains the generation stages for one video job.
type Pipeline struct {
	deps Deps
}

// New builds a pipeline from its collaborators.
func New(deps Deps) *Pipeline {
	return &Pipeline{deps: deps}
}

func normalizeDuration(duration int) int {
	if duration == 0 {
		return 30
	}
	return duration
}

// GenerateScript runs the script stage alone and persists the result.
func (p *Pipeline) GenerateScript(ctx context.Context, prompt string, duration int) (*types.GeneratedScript, error) {
	duration = normalizeDuration(duration)
	script, err := p.deps.Scripts.Generate(ctx, prompt, duration)
	if err != nil {
		return nil, stageError("script", err)
	}
	if err := p.deps.Store.PutScript(ctx, script); err != nil {
		return nil, stageError("script", err)
	}
	log.Printf("Generated script %s with %d scene(s)", script.ID, len(script.Scenes))
	return script, nil
}

// GenerateImages renders one illustration per scene of a stored script.
// A failed scene is recorded and skipped; the stage fails only when no
// scene produced an image.
func (p *Pipeline) GenerateImages(ctx context.Context, scriptID string) ([]types.SceneResult, error) {
	script, err := p.deps.Store.GetScript(ctx, scriptID)
	if err != nil {
		return nil, stageError("images", err)
	}

	results := make([]types.SceneResult, 0, len(script.Scenes))
	succeeded := 0
	for i, scene := range script.Scenes {
		res := types.SceneResult{Index: i, SceneDescription: scene}
		data, err := p.deps.Images.Generate(ctx, imagegen.StylePrompt(scene))
		if err != nil {
			log.Printf("Scene %d image generation failed: %v", i, err)
			res.Error = err.Error()
			results = append(results, res)
			continue
		}
		img := &types.GeneratedImage{
			ID:               types.NewID(),
			Prompt:           script.Prompt,
			SceneDescription: scene,
			ImageBase64:      base64.StdEncoding.EncodeToString(data),
			CreatedAt:        time.Now(),
		}
		if err := p.deps.Store.PutImage(ctx, img); err != nil {
			return nil, stageError("images", err)
		}
		res.ImageID = img.ID
		results = append(results, res)
		succeeded++
	}
	if succeeded == 0 {
		return results, stageError("images", ErrAllScenesFailed)
	}
	log.Printf("Generated %d/%d scene image(s) for script %s", succeeded, len(script.Scenes), scriptID)
	return results, nil
}

// GenerateVoice synthesizes narration for a stored script. An empty
// voiceID selects a default narrator from the available pool.
func (p *Pipeline) GenerateVoice(ctx context.Context, scriptID, voiceID string) (*types.Narration, error) {
	script, err := p.deps.Store.GetScript(ctx, scriptID)
	if err != nil {
		return nil, stageError("voice", err)
	}

	if voiceID == "" {
		voices, err := p.deps.Speech.Voices(ctx)
		if err != nil {
			return nil, stageError("voice", err)
		}
		voiceID = tts.PickNarratorVoice(voices)
		if voiceID == "" {
			return nil, stageError("voice", errors.New("no synthesis voices available"))
		}
	}

	audio, err := p.deps.Speech.Synthesize(ctx, script.ScriptText, voiceID)
	if err != nil {
		return nil, stageError("voice", err)
	}

	duration, err := p.deps.Assembler.MeasureDuration(audio)
	measured := err == nil && duration > 0
	if !measured {
		reason := err
		if reason == nil {
			reason = fmt.Errorf("probe reported non-positive duration %.2f", duration)
		}
		duration = video.EstimateDuration(script.ScriptText)
		log.Printf("Falling back to estimated narration duration %.2fs: %v", duration, reason)
	}

	narration := &types.Narration{
		ID:          types.NewID(),
		ScriptID:    scriptID,
		VoiceID:     voiceID,
		AudioBase64: base64.StdEncoding.EncodeToString(audio),
		Duration:    duration,
		Measured:    measured,
		CreatedAt:   time.Now(),
	}
	if err := p.deps.Store.PutNarration(ctx, narration); err != nil {
		return nil, stageError("voice", err)
	}
	return narration, nil
}

// CreateProject runs script, image, and narration generation and stores
// a project tying the artifacts together.
func (p *Pipeline) CreateProject(ctx context.Context, prompt string, duration int) (*types.VideoProject, error) {
	duration = normalizeDuration(duration)
	project := &types.VideoProject{
		ID:             types.NewID(),
		OriginalPrompt: prompt,
		Duration:       duration,
		Status:         types.StatusGenerating,
		CreatedAt:      time.Now(),
	}

	script, err := p.GenerateScript(ctx, prompt, duration)
	if err != nil {
		return nil, err
	}
	project.ScriptID = script.ID

	results, err := p.GenerateImages(ctx, script.ID)
	if err != nil {
		return nil, err
	}
	for _, r := range results {
		if r.ImageID != "" {
			project.ImageIDs = append(project.ImageIDs, r.ImageID)
		}
	}

	narration, err := p.GenerateVoice(ctx, script.ID, "")
	if err != nil {
		return nil, err
	}
	project.NarrationID = narration.ID

	if err := p.deps.Store.PutProject(ctx, project); err != nil {
		return nil, stageError("project", err)
	}
	return project, nil
}

// AssembleVideo transcodes a prepared project into its final clip,
// then uploads and publishes when those collaborators are configured.
func (p *Pipeline) AssembleVideo(ctx context.Context, projectID string) (*types.RenderedVideo, error) {
	project, err := p.deps.Store.GetProject(ctx, projectID)
	if err != nil {
		return nil, stageError("assemble", err)
	}
	script, err := p.deps.Store.GetScript(ctx, project.ScriptID)
	if err != nil {
		return nil, stageError("assemble", err)
	}
	narration, err := p.deps.Store.GetNarration(ctx, project.NarrationID)
	if err != nil {
		return nil, stageError("assemble", err)
	}
	storedImages, err := p.deps.Store.GetImages(ctx, project.ImageIDs)
	if err != nil {
		return nil, stageError("assemble", err)
	}

	images := make([][]byte, 0, len(storedImages))
	for _, img := range storedImages {
		data, err := base64.StdEncoding.DecodeString(img.ImageBase64)
		if err != nil {
			return nil, stageError("assemble", fmt.Errorf("corrupt stored image %s: %w", img.ID, err))
		}
		images = append(images, data)
	}
	audio, err := base64.StdEncoding.DecodeString(narration.AudioBase64)
	if err != nil {
		return nil, stageError("assemble", fmt.Errorf("corrupt stored narration %s: %w", narration.ID, err))
	}

	data, err := p.deps.Assembler.Assemble(ctx, video.AssembleInput{
		Images:     images,
		Audio:      audio,
		Transcript: script.ScriptText,
		Duration:   narration.Duration,
		Resolution: video.Resolution{W: config.VideoWidth, H: config.VideoHeight},
		Captions:   video.DefaultCaptionOptions(),
		Plan:       video.DefaultPlanOptions(),
	})
	if err != nil {
		wrapped := stageError("assemble", err)
		if uerr := p.deps.Store.UpdateProjectStatus(ctx, projectID, types.StatusFailed, wrapped.Detail()); uerr != nil {
			log.Printf("Failed to mark project %s failed: %v", projectID, uerr)
		}
		return nil, wrapped
	}

	rendered := &types.RenderedVideo{
		ID:          types.NewID(),
		ProjectID:   projectID,
		VideoBase64: base64.StdEncoding.EncodeToString(data),
		CreatedAt:   time.Now(),
	}

	if p.deps.Uploader != nil {
		key := fmt.Sprintf("videos/%s.mp4", rendered.ID)
		uploadCtx, cancel := context.WithTimeout(ctx, config.UploadTimeout)
		s3Key, err := p.deps.Uploader.UploadVideo(uploadCtx, key, data)
		cancel()
		if err != nil {
			log.Printf("Artifact upload failed for project %s: %v", projectID, err)
		} else {
			rendered.S3Key = s3Key
		}
	}
	if p.deps.Publisher != nil {
		title, description := PublishMetadata(project, script)
		if id, err := p.deps.Publisher.Publish(ctx, title, description, data); err != nil {
			log.Printf("Publish failed for project %s: %v", projectID, err)
		} else {
			rendered.YouTubeID = id
		}
	}

	if err := p.deps.Store.PutVideo(ctx, rendered); err != nil {
		return nil, stageError("assemble", err)
	}
	project.VideoID = rendered.ID
	project.Status = types.StatusCompleted
	if err := p.deps.Store.PutProject(ctx, project); err != nil {
		return nil, stageError("assemble", err)
	}
	log.Printf("Assembled video %s for project %s (%d bytes)", rendered.ID, projectID, len(data))
	return rendered, nil
}

// Run executes the full job: project creation then assembly.
func (p *Pipeline) Run(ctx context.Context, req types.GenerationRequest) (*types.VideoProject, *types.RenderedVideo, error) {
	project, err := p.CreateProject(ctx, req.Prompt, req.Duration)
	if err != nil {
		return nil, nil, err
	}
	rendered, err := p.AssembleVideo(ctx, project.ID)
	if err != nil {
		return project, nil, err
	}
	project.VideoID = rendered.ID
	project.Status = types.StatusCompleted
	return project, rendered, nil
}
