package video

import (
	"errors"
	"math"
	"strings"

	"clipforge/config"
)

// ErrInvalidDuration rejects non-positive narration durations before any planning.
var ErrInvalidDuration = errors.New("total duration must be positive")

// CaptionOptions controls caption grouping and styling.
type CaptionOptions struct {
	WordsPerGroup int
	Overlap       float64
	Uppercase     bool
}

// DefaultCaptionOptions returns the TikTok-style defaults.
func DefaultCaptionOptions() CaptionOptions {
	return CaptionOptions{
		WordsPerGroup: config.WordsPerCaption,
		Overlap:       config.CaptionOverlap,
		Uppercase:     true,
	}
}

// BuildCaptions splits the transcript into fixed-size word groups and spreads
// them evenly over the narration. Adjacent groups overlap by opts.Overlap on
// each side so captions hand over smoothly. An empty transcript yields nil.
func BuildCaptions(transcript string, totalDuration float64, opts CaptionOptions) ([]CaptionGroup, error) {
	if totalDuration <= 0 {
		return nil, ErrInvalidDuration
	}
	if opts.WordsPerGroup <= 0 {
		opts.WordsPerGroup = config.WordsPerCaption
	}

	// Fields collapses embedded newlines and repeated whitespace.
	words := strings.Fields(transcript)
	if len(words) == 0 {
		return nil, nil
	}

	groupCount := (len(words) + opts.WordsPerGroup - 1) / opts.WordsPerGroup
	slice := totalDuration / float64(groupCount)

	groups := make([]CaptionGroup, 0, groupCount)
	for i := 0; i < groupCount; i++ {
		lo := i * opts.WordsPerGroup
		hi := lo + opts.WordsPerGroup
		if hi > len(words) {
			hi = len(words)
		}

		text := strings.Join(words[lo:hi], " ")
		if opts.Uppercase {
			text = strings.ToUpper(text)
		}

		groups = append(groups, CaptionGroup{
			Text:  text,
			Start: math.Max(0, float64(i)*slice-opts.Overlap),
			End:   math.Min(totalDuration, float64(i+1)*slice+opts.Overlap),
		})
	}

	return groups, nil
}
