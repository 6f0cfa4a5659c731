package video

import (
	"fmt"
	"io"
	"math"
	"os"
)

// WriteSRT serializes caption groups as SubRip blocks: sequential index,
// timecode line, caption text, blank separator.
func WriteSRT(w io.Writer, groups []CaptionGroup) error {
	for i, g := range groups {
		_, err := fmt.Fprintf(w, "%d\n%s --> %s\n%s\n\n",
			i+1, formatTimecode(g.Start), formatTimecode(g.End), g.Text)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteSRTFile writes the subtitle track to outputPath.
func WriteSRTFile(outputPath string, groups []CaptionGroup) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteSRT(file, groups)
}

// formatTimecode converts seconds to the SRT HH:MM:SS,mmm form.
// Rounding to whole milliseconds keeps serialize/parse round-trips exact.
func formatTimecode(seconds float64) string {
	total := int(math.Round(seconds * 1000))
	if total < 0 {
		total = 0
	}

	millis := total % 1000
	secs := (total / 1000) % 60
	minutes := (total / 60000) % 60
	hours := total / 3600000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}
