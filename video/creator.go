package video

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"clipforge/config"
)

// ErrTranscodeTimeout reports that ffmpeg exceeded its wall-clock budget
// and was killed. Callers treat it as retryable, unlike TranscodeError.
var ErrTranscodeTimeout = errors.New("transcode timed out")

// TranscodeError carries the transcoder's stderr verbatim. The raw text is
// the only useful diagnostic for filter-graph and codec failures, so it is
// never summarized.
type TranscodeError struct {
	Stderr string
	Err    error
}

func (e *TranscodeError) Error() string {
	return fmt.Sprintf("ffmpeg failed: %v: %s", e.Err, e.Stderr)
}

func (e *TranscodeError) Unwrap() error { return e.Err }

// Runner executes an external command and returns its captured stderr.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stderr string, err error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stderr.String(), err
}

// AssembleInput holds everything one transcode pass needs.
type AssembleInput struct {
	Images     [][]byte // decoded scene illustrations, in scene order
	Audio      []byte   // narration, mp3
	Transcript string
	Duration   float64 // narration seconds
	Resolution Resolution
	Captions   CaptionOptions
	Plan       PlanOptions
}

// Assembler turns a set of stills plus narration into a finished clip.
// Each job gets its own temp workspace, removed on every exit path.
type Assembler struct {
	runner     Runner
	ffmpegPath string
	timeout    time.Duration
}

// NewAssembler builds an assembler invoking the given ffmpeg binary with a
// per-job wall-clock timeout.
func NewAssembler(ffmpegPath string, timeout time.Duration) *Assembler {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if timeout <= 0 {
		timeout = config.TranscodeTimeout
	}
	return &Assembler{runner: execRunner{}, ffmpegPath: ffmpegPath, timeout: timeout}
}

// SetRunner swaps the command runner. Test seam.
func (a *Assembler) SetRunner(r Runner) { a.runner = r }

// MeasureDuration probes in-memory narration audio.
func (a *Assembler) MeasureDuration(audio []byte) (float64, error) {
	return MeasureDuration(audio)
}

// Assemble stages the inputs on disk, plans and runs the transcode, and
// returns the encoded video bytes.
func (a *Assembler) Assemble(ctx context.Context, in AssembleInput) ([]byte, error) {
	if len(in.Images) == 0 {
		return nil, ErrNoImages
	}
	if in.Duration <= 0 {
		return nil, ErrInvalidDuration
	}

	tmpDir, err := os.MkdirTemp("", "clipforge-job-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create job workspace: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	imagePaths := make([]string, len(in.Images))
	for i, img := range in.Images {
		imagePaths[i] = filepath.Join(tmpDir, fmt.Sprintf("scene_%d.png", i))
		if err := os.WriteFile(imagePaths[i], img, 0o644); err != nil {
			return nil, fmt.Errorf("failed to write scene image %d: %w", i, err)
		}
	}

	audioPath := filepath.Join(tmpDir, "narration.mp3")
	if err := os.WriteFile(audioPath, in.Audio, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write narration audio: %w", err)
	}

	groups, err := BuildCaptions(in.Transcript, in.Duration, in.Captions)
	if err != nil {
		return nil, fmt.Errorf("failed to build captions: %w", err)
	}
	subtitlePath := filepath.Join(tmpDir, "captions.srt")
	if err := WriteSRTFile(subtitlePath, groups); err != nil {
		return nil, fmt.Errorf("failed to write subtitle file: %w", err)
	}

	placements := PlaceImages(imagePaths, in.Duration)
	plan, err := PlanFilterGraph(placements, subtitlePath, in.Resolution, in.Duration, in.Plan)
	if err != nil {
		return nil, fmt.Errorf("failed to plan filter graph: %w", err)
	}
	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("invalid filter graph: %w", err)
	}

	outputPath := filepath.Join(tmpDir, "output.mp4")
	args := BuildCommand(placements, audioPath, outputPath, plan, in.Plan)

	runCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	log.Printf("Transcoding %d image(s) over %.2fs", len(in.Images), in.Duration)
	stderr, err := a.runner.Run(runCtx, a.ffmpegPath, args...)
	if err != nil {
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			return nil, ErrTranscodeTimeout
		}
		return nil, &TranscodeError{Stderr: stderr, Err: err}
	}

	out, err := os.ReadFile(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcoder output: %w", err)
	}
	return out, nil
}
