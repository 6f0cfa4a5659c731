package config

import "time"

// Video Output Constants
const (
	// VideoWidth is the output video width (9:16 portrait)
	VideoWidth = 1080

	// VideoHeight is the output video height (9:16 portrait)
	VideoHeight = 1920

	// FrameRate is the output frame rate
	FrameRate = 25

	// VideoCodec is the video encoding codec
	VideoCodec = "libx264"

	// VideoCRF is the constant-quality factor for libx264
	VideoCRF = 23

	// VideoPreset is the ffmpeg encoding speed preset
	VideoPreset = "fast"

	// AudioCodec is the audio encoding codec
	AudioCodec = "aac"

	// AudioBitrate is the narration audio bitrate
	AudioBitrate = "192k"
)

// Transition and Zoom Constants
const (
	// TransitionStyle is the xfade transition between consecutive images
	TransitionStyle = "fade"

	// TransitionDuration is the crossfade blend window in seconds
	TransitionDuration = 0.5

	// MaxZoom bounds the continuous zoom-in ramp
	MaxZoom = 1.5

	// ZoomStep is the per-frame zoom increment
	ZoomStep = 0.0005
)

// Caption Constants
const (
	// WordsPerCaption is the number of transcript words per caption group
	WordsPerCaption = 4

	// CaptionOverlap is the symmetric overlap between adjacent captions in seconds
	CaptionOverlap = 0.1

	// SubtitleStyle is the libass force_style applied on burn-in
	SubtitleStyle = "Fontsize=18,PrimaryColour=&HFFFFFF&,OutlineColour=&H000000&,BorderStyle=1,Outline=2,Bold=1,Alignment=2,MarginV=120"
)

// Job Constants
const (
	// MinClipSeconds is the shortest accepted target duration
	MinClipSeconds = 15

	// MaxClipSeconds is the longest accepted target duration
	MaxClipSeconds = 60

	// TranscodeTimeout caps the wall-clock time of one ffmpeg invocation
	TranscodeTimeout = 4 * time.Minute

	// UploadTimeout caps a single artifact upload to S3
	UploadTimeout = 30 * time.Second
)
