package video

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"clipforge/config"
)

// ErrNoImages rejects plans without at least one visual input.
var ErrNoImages = errors.New("at least one image is required")

// PlanOptions controls transition style, zoom ramp and subtitle styling.
type PlanOptions struct {
	Transition         string
	TransitionDuration float64
	FrameRate          int
	MaxZoom            float64
	ZoomStep           float64
	SubtitleStyle      string
}

// DefaultPlanOptions returns the encoding defaults used for published clips.
func DefaultPlanOptions() PlanOptions {
	return PlanOptions{
		Transition:         config.TransitionStyle,
		TransitionDuration: config.TransitionDuration,
		FrameRate:          config.FrameRate,
		MaxZoom:            config.MaxZoom,
		ZoomStep:           config.ZoomStep,
		SubtitleStyle:      config.SubtitleStyle,
	}
}

// PlaceImages divides the narration evenly across the ordered images.
func PlaceImages(imagePaths []string, totalDuration float64) []ImagePlacement {
	display := totalDuration / float64(len(imagePaths))
	placements := make([]ImagePlacement, len(imagePaths))
	for i, p := range imagePaths {
		placements[i] = ImagePlacement{Index: i, SourcePath: p, DisplayDuration: display}
	}
	return placements
}

// PlanFilterGraph builds the single-pass filter graph for a slideshow:
// per-image scale/crop/setsar nodes, a linear crossfade chain, one zoom
// ramp, and a subtitle burn producing the "final" sink.
//
// Transition k fires at offset k*displayDuration so cuts stay aligned with
// image display slots.
func PlanFilterGraph(images []ImagePlacement, subtitlePath string, res Resolution, totalDuration float64, opts PlanOptions) (*FilterGraphPlan, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}
	if totalDuration <= 0 {
		return nil, ErrInvalidDuration
	}

	display := totalDuration / float64(len(images))
	plan := &FilterGraphPlan{}

	for i := range images {
		plan.Nodes = append(plan.Nodes, Node{
			Op: "scale",
			Filter: fmt.Sprintf("scale=%d:%d:force_original_aspect_ratio=increase,crop=%d:%d,setsar=1",
				res.W, res.H, res.W, res.H),
			Inputs: []string{fmt.Sprintf("%d:v", i)},
			Output: fmt.Sprintf("v%d", i),
		})
	}

	last := "v0"
	for i := 1; i < len(images); i++ {
		out := fmt.Sprintf("t%d", i-1)
		plan.Nodes = append(plan.Nodes, Node{
			Op: "xfade",
			Filter: fmt.Sprintf("xfade=transition=%s:duration=%.2f:offset=%.2f",
				opts.Transition, opts.TransitionDuration, display*float64(i)),
			Inputs: []string{last, fmt.Sprintf("v%d", i)},
			Output: out,
		})
		last = out
	}

	plan.Nodes = append(plan.Nodes, Node{
		Op: "zoompan",
		Filter: fmt.Sprintf("zoompan=z='min(zoom+%.4f,%.2f)':x='iw/2-(iw/zoom/2)':y='ih/2-(ih/zoom/2)':d=1:s=%dx%d:fps=%d",
			opts.ZoomStep, opts.MaxZoom, res.W, res.H, opts.FrameRate),
		Inputs: []string{last},
		Output: "zoomed",
	})

	subtitleFilter := fmt.Sprintf("subtitles=%s", escapeFilterPath(subtitlePath))
	if opts.SubtitleStyle != "" {
		subtitleFilter += fmt.Sprintf(":force_style='%s'", opts.SubtitleStyle)
	}
	plan.Nodes = append(plan.Nodes, Node{
		Op:     "subtitles",
		Filter: subtitleFilter,
		Inputs: []string{"zoomed"},
		Output: "final",
	})

	plan.Sink = "final"
	return plan, nil
}

// FilterComplex serializes the plan into ffmpeg filter_complex text.
func (p *FilterGraphPlan) FilterComplex() string {
	var b strings.Builder
	for i, n := range p.Nodes {
		if i > 0 {
			b.WriteString(";")
		}
		for _, in := range n.Inputs {
			fmt.Fprintf(&b, "[%s]", in)
		}
		b.WriteString(n.Filter)
		fmt.Fprintf(&b, "[%s]", n.Output)
	}
	return b.String()
}

// Validate checks the plan forms a DAG: every consumed label is produced by
// an earlier node (raw input streams excepted), no label is produced twice,
// and the sink is the single unconsumed output.
func (p *FilterGraphPlan) Validate() error {
	if len(p.Nodes) == 0 {
		return errors.New("empty plan")
	}

	produced := make(map[string]bool)
	consumed := make(map[string]bool)
	for _, n := range p.Nodes {
		for _, in := range n.Inputs {
			// raw input stream labels carry a colon, e.g. "0:v"
			if strings.Contains(in, ":") {
				continue
			}
			if !produced[in] {
				return fmt.Errorf("node %q consumes label %q before it is produced", n.Op, in)
			}
			consumed[in] = true
		}
		if produced[n.Output] {
			return fmt.Errorf("label %q produced twice", n.Output)
		}
		produced[n.Output] = true
	}

	if !produced[p.Sink] {
		return fmt.Errorf("sink %q is never produced", p.Sink)
	}
	for label := range produced {
		if label == p.Sink {
			continue
		}
		if !consumed[label] {
			return fmt.Errorf("label %q is produced but never consumed", label)
		}
	}
	if consumed[p.Sink] {
		return fmt.Errorf("sink %q is consumed by a later node", p.Sink)
	}
	return nil
}

// escapeFilterPath rewrites a subtitle path into the form libavfilter
// expects inside a filter argument.
func escapeFilterPath(path string) string {
	escaped := filepath.ToSlash(path)
	escaped = strings.ReplaceAll(escaped, ":", "\\:")
	return escaped
}
