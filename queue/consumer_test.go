package queue

import (
	"context"
	"errors"
	"testing"

	"clipforge/types"
)

func TestTypedMessageHandlerMarksMalformedJSON(t *testing.T) {
	handler := &TypedMessageHandler[types.GenerationRequest]{
		Process: func(ctx context.Context, msg *types.GenerationRequest) error {
			t.Fatal("process should not run for malformed JSON")
			return nil
		},
		AlwaysMark: true,
	}

	shouldMark, err := handler.HandleMessage(context.Background(), []byte("{not json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !shouldMark {
		t.Error("malformed message should be marked and skipped")
	}
}

func TestTypedMessageHandlerMarksInvalidMessage(t *testing.T) {
	processed := false
	handler := &TypedMessageHandler[types.GenerationRequest]{
		Validate: func(msg *types.GenerationRequest) bool { return msg.Prompt != "" },
		Process: func(ctx context.Context, msg *types.GenerationRequest) error {
			processed = true
			return nil
		},
		AlwaysMark: true,
	}

	shouldMark, err := handler.HandleMessage(context.Background(), []byte(`{"prompt":""}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !shouldMark {
		t.Error("invalid message should be marked")
	}
	if processed {
		t.Error("invalid message should not be processed")
	}
}

func TestTypedMessageHandlerRetriesOnProcessFailure(t *testing.T) {
	handler := &TypedMessageHandler[types.GenerationRequest]{
		Process: func(ctx context.Context, msg *types.GenerationRequest) error {
			return errors.New("transient failure")
		},
		AlwaysMark: true,
	}

	shouldMark, err := handler.HandleMessage(context.Background(), []byte(`{"prompt":"une histoire"}`))
	if err == nil {
		t.Fatal("expected process error")
	}
	if shouldMark {
		t.Error("failed message should stay unmarked for retry")
	}
}

func TestTypedMessageHandlerMarksOnSuccess(t *testing.T) {
	var got types.GenerationRequest
	handler := &TypedMessageHandler[types.GenerationRequest]{
		Process: func(ctx context.Context, msg *types.GenerationRequest) error {
			got = *msg
			return nil
		},
	}

	shouldMark, err := handler.HandleMessage(context.Background(), []byte(`{"prompt":"une histoire","duration":30}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !shouldMark {
		t.Error("successful message should be marked")
	}
	if got.Prompt != "une histoire" || got.Duration != 30 {
		t.Errorf("decoded message = %+v", got)
	}
}
