package video

import (
	"fmt"
	"strconv"

	"clipforge/config"
)

// BuildCommand assembles the full ffmpeg argv for one transcode pass.
// Each image is a looped input held for its display duration; the narration
// audio is always the last input, so the audio map index equals the image
// count. Output duration is capped to the shorter stream.
func BuildCommand(images []ImagePlacement, audioPath, outputPath string, plan *FilterGraphPlan, opts PlanOptions) []string {
	args := []string{"-y"}

	for _, img := range images {
		args = append(args,
			"-loop", "1",
			"-t", fmt.Sprintf("%.2f", img.DisplayDuration),
			"-i", img.SourcePath,
		)
	}
	args = append(args, "-i", audioPath)

	args = append(args, "-filter_complex", plan.FilterComplex())
	args = append(args,
		"-map", "["+plan.Sink+"]",
		"-map", fmt.Sprintf("%d:a", len(images)),
	)

	args = append(args,
		"-c:v", config.VideoCodec,
		"-crf", strconv.Itoa(config.VideoCRF),
		"-preset", config.VideoPreset,
		"-pix_fmt", "yuv420p",
		"-r", strconv.Itoa(opts.FrameRate),
		"-c:a", config.AudioCodec,
		"-b:a", config.AudioBitrate,
		"-shortest",
		outputPath,
	)

	return args
}
