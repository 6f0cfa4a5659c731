package video

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func testRes() Resolution { return Resolution{W: 1080, H: 1920} }

func testPlan(t *testing.T, imageCount int, total float64) *FilterGraphPlan {
	t.Helper()
	paths := make([]string, imageCount)
	for i := range paths {
		paths[i] = fmt.Sprintf("/tmp/scene_%d.png", i)
	}
	plan, err := PlanFilterGraph(PlaceImages(paths, total), "/tmp/captions.srt", testRes(), total, DefaultPlanOptions())
	if err != nil {
		t.Fatalf("PlanFilterGraph failed: %v", err)
	}
	return plan
}

func countOps(plan *FilterGraphPlan, op string) int {
	n := 0
	for _, node := range plan.Nodes {
		if node.Op == op {
			n++
		}
	}
	return n
}

func TestPlanFilterGraphNodeCounts(t *testing.T) {
	plan := testPlan(t, 3, 30)

	if got := countOps(plan, "scale"); got != 3 {
		t.Errorf("scale nodes = %d, want 3", got)
	}
	if got := countOps(plan, "xfade"); got != 2 {
		t.Errorf("xfade nodes = %d, want 2", got)
	}
	if got := countOps(plan, "zoompan"); got != 1 {
		t.Errorf("zoompan nodes = %d, want 1", got)
	}
	if got := countOps(plan, "subtitles"); got != 1 {
		t.Errorf("subtitles nodes = %d, want 1", got)
	}
	if plan.Sink != "final" {
		t.Errorf("sink = %q, want final", plan.Sink)
	}
}

func TestPlanFilterGraphCrossfadeOffsets(t *testing.T) {
	plan := testPlan(t, 3, 30)

	var offsets []string
	for _, node := range plan.Nodes {
		if node.Op == "xfade" {
			offsets = append(offsets, node.Filter)
		}
	}
	if len(offsets) != 2 {
		t.Fatalf("expected 2 xfade nodes, got %d", len(offsets))
	}
	if !strings.Contains(offsets[0], "offset=10.00") {
		t.Errorf("first transition filter %q missing offset=10.00", offsets[0])
	}
	if !strings.Contains(offsets[1], "offset=20.00") {
		t.Errorf("second transition filter %q missing offset=20.00", offsets[1])
	}
	for _, f := range offsets {
		if !strings.Contains(f, "transition=fade:duration=0.50") {
			t.Errorf("transition filter %q missing fade settings", f)
		}
	}
}

func TestPlanFilterGraphSingleImage(t *testing.T) {
	plan := testPlan(t, 1, 20)

	if got := countOps(plan, "xfade"); got != 0 {
		t.Errorf("single image plan has %d xfade nodes, want 0", got)
	}
	if err := plan.Validate(); err != nil {
		t.Errorf("single image plan invalid: %v", err)
	}
}

func TestPlanFilterGraphValidates(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7} {
		if err := testPlan(t, n, 30).Validate(); err != nil {
			t.Errorf("plan with %d images invalid: %v", n, err)
		}
	}
}

func TestPlanFilterGraphRejectsBadInput(t *testing.T) {
	_, err := PlanFilterGraph(nil, "/tmp/captions.srt", testRes(), 30, DefaultPlanOptions())
	if !errors.Is(err, ErrNoImages) {
		t.Errorf("expected ErrNoImages, got %v", err)
	}

	placements := PlaceImages([]string{"/tmp/a.png"}, 30)
	_, err = PlanFilterGraph(placements, "/tmp/captions.srt", testRes(), 0, DefaultPlanOptions())
	if !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("expected ErrInvalidDuration, got %v", err)
	}
}

func TestValidateCatchesBrokenGraphs(t *testing.T) {
	// consuming an unproduced label
	broken := &FilterGraphPlan{
		Nodes: []Node{{Op: "xfade", Filter: "xfade", Inputs: []string{"missing"}, Output: "out"}},
		Sink:  "out",
	}
	if err := broken.Validate(); err == nil {
		t.Error("expected error for unproduced input label")
	}

	// duplicate output label
	dup := &FilterGraphPlan{
		Nodes: []Node{
			{Op: "scale", Filter: "scale", Inputs: []string{"0:v"}, Output: "v0"},
			{Op: "scale", Filter: "scale", Inputs: []string{"1:v"}, Output: "v0"},
		},
		Sink: "v0",
	}
	if err := dup.Validate(); err == nil {
		t.Error("expected error for duplicate output label")
	}

	// dangling intermediate label
	dangling := &FilterGraphPlan{
		Nodes: []Node{
			{Op: "scale", Filter: "scale", Inputs: []string{"0:v"}, Output: "v0"},
			{Op: "scale", Filter: "scale", Inputs: []string{"1:v"}, Output: "v1"},
		},
		Sink: "v1",
	}
	if err := dangling.Validate(); err == nil {
		t.Error("expected error for unconsumed intermediate label")
	}
}

func TestFilterComplexSerialization(t *testing.T) {
	plan := &FilterGraphPlan{
		Nodes: []Node{
			{Op: "scale", Filter: "scale=10:20", Inputs: []string{"0:v"}, Output: "v0"},
			{Op: "subtitles", Filter: "subtitles=x.srt", Inputs: []string{"v0"}, Output: "final"},
		},
		Sink: "final",
	}
	want := "[0:v]scale=10:20[v0];[v0]subtitles=x.srt[final]"
	if got := plan.FilterComplex(); got != want {
		t.Errorf("FilterComplex() = %q, want %q", got, want)
	}
}

func TestBuildCommandMapsAudioAfterImages(t *testing.T) {
	placements := PlaceImages([]string{"/tmp/a.png", "/tmp/b.png", "/tmp/c.png"}, 30)
	plan := testPlan(t, 3, 30)
	args := BuildCommand(placements, "/tmp/narration.mp3", "/tmp/out.mp4", plan, DefaultPlanOptions())

	joined := strings.Join(args, " ")
	if !strings.Contains(joined, "-map [final]") {
		t.Errorf("command missing video map: %s", joined)
	}
	if !strings.Contains(joined, "-map 3:a") {
		t.Errorf("command missing audio map 3:a: %s", joined)
	}
	if !strings.Contains(joined, "-shortest") {
		t.Errorf("command missing -shortest: %s", joined)
	}
	if args[len(args)-1] != "/tmp/out.mp4" {
		t.Errorf("output path should be last arg, got %q", args[len(args)-1])
	}
	// three looped image inputs plus one audio input
	inputs := 0
	for _, a := range args {
		if a == "-i" {
			inputs++
		}
	}
	if inputs != 4 {
		t.Errorf("expected 4 inputs, got %d", inputs)
	}
}

func TestPlaceImagesEvenSplit(t *testing.T) {
	placements := PlaceImages([]string{"a", "b", "c", "d"}, 30)
	for i, p := range placements {
		if p.Index != i {
			t.Errorf("placement %d has index %d", i, p.Index)
		}
		if !almostEqual(p.DisplayDuration, 7.5) {
			t.Errorf("placement %d duration = %v, want 7.5", i, p.DisplayDuration)
		}
	}
}
