package video

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// secondsPerChar approximates French narration pace when probing fails.
const secondsPerChar = 0.06

// ProbeDuration reads the container duration of a media file via ffprobe.
func ProbeDuration(path string) (float64, error) {
	out, err := ffmpeg.Probe(path)
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed: %w", err)
	}

	var parsed struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		return 0, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}
	if parsed.Format.Duration == "" {
		return 0, fmt.Errorf("ffprobe reported no duration for %s", path)
	}

	duration, err := strconv.ParseFloat(parsed.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration %q: %w", parsed.Format.Duration, err)
	}
	return duration, nil
}

// MeasureDuration probes the duration of in-memory audio by writing it to a
// scratch file first. ffprobe only reads from paths.
func MeasureDuration(audio []byte) (float64, error) {
	dir, err := os.MkdirTemp("", "clipforge-probe-*")
	if err != nil {
		return 0, fmt.Errorf("failed to create scratch dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "narration.mp3")
	if err := os.WriteFile(path, audio, 0o644); err != nil {
		return 0, fmt.Errorf("failed to write scratch audio: %w", err)
	}

	return ProbeDuration(path)
}

// EstimateDuration is the character-count fallback for when the narration
// audio cannot be probed.
func EstimateDuration(transcript string) float64 {
	return float64(len(transcript)) * secondsPerChar
}
