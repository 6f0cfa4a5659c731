package video

// CaptionGroup is one timed caption covering a slice of the narration.
type CaptionGroup struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// ImagePlacement pins a source image to its slot in the slideshow.
type ImagePlacement struct {
	Index           int
	SourcePath      string
	DisplayDuration float64
}

// Resolution is the target frame size in pixels.
type Resolution struct {
	W int
	H int
}

// Node is a single filter-graph operation with its stream wiring.
// Inputs reference either raw input streams ("0:v") or the output
// label of an earlier node.
type Node struct {
	Op     string
	Filter string
	Inputs []string
	Output string
}

// FilterGraphPlan is the ordered node list for one filter_complex pass.
// The sink label carries the finished video stream.
type FilterGraphPlan struct {
	Nodes []Node
	Sink  string
}
