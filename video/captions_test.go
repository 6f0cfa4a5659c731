package video

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBuildCaptionsSixWordsTwelveSeconds(t *testing.T) {
	opts := CaptionOptions{WordsPerGroup: 4, Overlap: 0.1, Uppercase: false}
	groups, err := BuildCaptions("one two three four five six", 12, opts)
	if err != nil {
		t.Fatalf("BuildCaptions failed: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	if groups[0].Text != "one two three four" {
		t.Errorf("unexpected first group text: %q", groups[0].Text)
	}
	if groups[1].Text != "five six" {
		t.Errorf("unexpected second group text: %q", groups[1].Text)
	}

	if !almostEqual(groups[0].Start, 0) || !almostEqual(groups[0].End, 6.1) {
		t.Errorf("first group window = [%v, %v], want [0, 6.1]", groups[0].Start, groups[0].End)
	}
	if !almostEqual(groups[1].Start, 5.9) || !almostEqual(groups[1].End, 12) {
		t.Errorf("second group window = [%v, %v], want [5.9, 12]", groups[1].Start, groups[1].End)
	}
}

func TestBuildCaptionsTilesWholeDuration(t *testing.T) {
	transcript := strings.Repeat("word ", 37)
	total := 48.5
	groups, err := BuildCaptions(transcript, total, CaptionOptions{WordsPerGroup: 4, Overlap: 0.1})
	if err != nil {
		t.Fatalf("BuildCaptions failed: %v", err)
	}
	if len(groups) == 0 {
		t.Fatal("expected groups")
	}

	if !almostEqual(groups[0].Start, 0) {
		t.Errorf("first group starts at %v, want 0", groups[0].Start)
	}
	if !almostEqual(groups[len(groups)-1].End, total) {
		t.Errorf("last group ends at %v, want %v", groups[len(groups)-1].End, total)
	}
	for i := 1; i < len(groups); i++ {
		if groups[i].Start >= groups[i-1].End {
			t.Errorf("groups %d and %d do not overlap: %v >= %v", i-1, i, groups[i].Start, groups[i-1].End)
		}
		if groups[i].Start <= groups[i-1].Start {
			t.Errorf("group starts not monotonic at %d", i)
		}
	}
}

func TestBuildCaptionsUppercase(t *testing.T) {
	groups, err := BuildCaptions("hello world", 5, CaptionOptions{WordsPerGroup: 4, Uppercase: true})
	if err != nil {
		t.Fatalf("BuildCaptions failed: %v", err)
	}
	if groups[0].Text != "HELLO WORLD" {
		t.Errorf("expected uppercased text, got %q", groups[0].Text)
	}
}

func TestBuildCaptionsCollapsesWhitespace(t *testing.T) {
	groups, err := BuildCaptions("  one \n two\t three  ", 6, CaptionOptions{WordsPerGroup: 4})
	if err != nil {
		t.Fatalf("BuildCaptions failed: %v", err)
	}
	if len(groups) != 1 || groups[0].Text != "one two three" {
		t.Errorf("unexpected groups: %+v", groups)
	}
}

func TestBuildCaptionsEmptyTranscript(t *testing.T) {
	groups, err := BuildCaptions("   ", 10, DefaultCaptionOptions())
	if err != nil {
		t.Fatalf("BuildCaptions failed: %v", err)
	}
	if groups != nil {
		t.Errorf("expected nil groups for empty transcript, got %+v", groups)
	}
}

func TestBuildCaptionsInvalidDuration(t *testing.T) {
	_, err := BuildCaptions("some words", 0, DefaultCaptionOptions())
	if !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("expected ErrInvalidDuration, got %v", err)
	}
	_, err = BuildCaptions("some words", -3, DefaultCaptionOptions())
	if !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("expected ErrInvalidDuration for negative duration, got %v", err)
	}
}

func TestWriteSRTFormat(t *testing.T) {
	groups := []CaptionGroup{
		{Text: "HELLO WORLD", Start: 0, End: 6.1},
		{Text: "GOODBYE", Start: 5.9, End: 12},
	}

	var buf bytes.Buffer
	if err := WriteSRT(&buf, groups); err != nil {
		t.Fatalf("WriteSRT failed: %v", err)
	}

	want := "1\n00:00:00,000 --> 00:00:06,100\nHELLO WORLD\n\n" +
		"2\n00:00:05,900 --> 00:00:12,000\nGOODBYE\n\n"
	if buf.String() != want {
		t.Errorf("unexpected SRT output:\n%q\nwant:\n%q", buf.String(), want)
	}
}

// parseSRT reads serialized SubRip blocks back into caption groups.
func parseSRT(t *testing.T, srt string) []CaptionGroup {
	t.Helper()
	var groups []CaptionGroup
	for _, block := range strings.Split(strings.TrimSpace(srt), "\n\n") {
		lines := strings.SplitN(block, "\n", 3)
		if len(lines) != 3 {
			t.Fatalf("malformed SRT block: %q", block)
		}
		if _, err := strconv.Atoi(lines[0]); err != nil {
			t.Fatalf("bad block index %q: %v", lines[0], err)
		}
		start, end, ok := strings.Cut(lines[1], " --> ")
		if !ok {
			t.Fatalf("bad timecode line %q", lines[1])
		}
		groups = append(groups, CaptionGroup{
			Text:  lines[2],
			Start: parseTimecode(t, start),
			End:   parseTimecode(t, end),
		})
	}
	return groups
}

func parseTimecode(t *testing.T, tc string) float64 {
	t.Helper()
	var h, m, s, ms int
	if _, err := fmt.Sscanf(tc, "%02d:%02d:%02d,%03d", &h, &m, &s, &ms); err != nil {
		t.Fatalf("bad timecode %q: %v", tc, err)
	}
	return float64(h)*3600 + float64(m)*60 + float64(s) + float64(ms)/1000
}

func TestSRTRoundTrip(t *testing.T) {
	source, err := BuildCaptions(
		"il était une fois une maison sombre au bout de la rue qui effrayait tout le monde",
		27.3, DefaultCaptionOptions())
	if err != nil {
		t.Fatalf("BuildCaptions failed: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteSRT(&buf, source); err != nil {
		t.Fatalf("WriteSRT failed: %v", err)
	}

	recovered := parseSRT(t, buf.String())
	if len(recovered) != len(source) {
		t.Fatalf("recovered %d groups, want %d", len(recovered), len(source))
	}
	for i := range source {
		if recovered[i].Text != source[i].Text {
			t.Errorf("group %d text = %q, want %q", i, recovered[i].Text, source[i].Text)
		}
		if math.Abs(recovered[i].Start-source[i].Start) > 0.001 {
			t.Errorf("group %d start = %v, want %v within 1ms", i, recovered[i].Start, source[i].Start)
		}
		if math.Abs(recovered[i].End-source[i].End) > 0.001 {
			t.Errorf("group %d end = %v, want %v within 1ms", i, recovered[i].End, source[i].End)
		}
	}
}

func TestFormatTimecode(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00,000"},
		{6.1, "00:00:06,100"},
		{59.999, "00:00:59,999"},
		{61.5, "00:01:01,500"},
		{3661.042, "01:01:01,042"},
		// float noise rounds to the nearest millisecond
		{0.1 + 0.2, "00:00:00,300"},
		{-1, "00:00:00,000"},
	}
	for _, c := range cases {
		if got := formatTimecode(c.seconds); got != c.want {
			t.Errorf("formatTimecode(%v) = %q, want %q", c.seconds, got, c.want)
		}
	}
}
