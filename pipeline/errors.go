package pipeline

import (
	"context"
	"errors"
	"fmt"

	"clipforge/script"
	"clipforge/store"
	"clipforge/video"
)

// Kind classifies a pipeline failure for API mapping and retry policy.
type Kind string

const (
	KindInvalidInput Kind = "invalid_input"
	KindNotFound     Kind = "not_found"
	KindUpstream     Kind = "upstream_error"
	KindTranscode    Kind = "transcode_error"
	KindTimeout      Kind = "timeout"
	KindInternal     Kind = "internal"
)

// Error wraps a stage failure with its classification.
type Error struct {
	Kind  Kind
	Stage string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Stage, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Detail returns the underlying failure text. Transcode failures keep
// the transcoder's stderr verbatim.
func (e *Error) Detail() string {
	var tErr *video.TranscodeError
	if errors.As(e.Err, &tErr) {
		return tErr.Stderr
	}
	return e.Err.Error()
}

// stageError classifies err and tags it with the failing stage.
func stageError(stage string, err error) *Error {
	var pErr *Error
	if errors.As(err, &pErr) {
		return pErr
	}
	return &Error{Kind: classify(err), Stage: stage, Err: err}
}

func classify(err error) Kind {
	var tErr *video.TranscodeError
	switch {
	case errors.Is(err, script.ErrEmptyPrompt),
		errors.Is(err, script.ErrDurationOutOfRange),
		errors.Is(err, video.ErrNoImages),
		errors.Is(err, video.ErrInvalidDuration):
		return KindInvalidInput
	case errors.Is(err, store.ErrNotFound):
		return KindNotFound
	case errors.Is(err, video.ErrTranscodeTimeout),
		errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	case errors.As(err, &tErr):
		return KindTranscode
	default:
		return KindUpstream
	}
}

// KindOf extracts the classification from any error produced by the
// pipeline. Unclassified errors report KindInternal.
func KindOf(err error) Kind {
	var pErr *Error
	if errors.As(err, &pErr) {
		return pErr.Kind
	}
	if errors.Is(err, store.ErrNotFound) {
		return KindNotFound
	}
	return KindInternal
}
