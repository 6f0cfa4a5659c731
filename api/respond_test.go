package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"clipforge/pipeline"
	"clipforge/store"
	"clipforge/video"
)

func respond(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondWithError(c, err)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	return w, body
}

func TestRespondInvalidInput(t *testing.T) {
	err := &pipeline.Error{Kind: pipeline.KindInvalidInput, Stage: "script", Err: errors.New("prompt must not be empty")}
	w, body := respond(t, err)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if body["kind"] != "invalid_input" {
		t.Errorf("kind = %q, want invalid_input", body["kind"])
	}
}

func TestRespondNotFound(t *testing.T) {
	err := fmt.Errorf("projects:abc: %w", store.ErrNotFound)
	w, body := respond(t, err)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	if body["kind"] != "not_found" {
		t.Errorf("kind = %q, want not_found", body["kind"])
	}
}

func TestRespondTimeout(t *testing.T) {
	err := &pipeline.Error{Kind: pipeline.KindTimeout, Stage: "assemble", Err: video.ErrTranscodeTimeout}
	w, _ := respond(t, err)

	if w.Code != http.StatusGatewayTimeout {
		t.Errorf("status = %d, want 504", w.Code)
	}
}

func TestRespondTranscodeCarriesStderr(t *testing.T) {
	const stderr = "Invalid stream specifier: 0:a."
	err := &pipeline.Error{
		Kind:  pipeline.KindTranscode,
		Stage: "assemble",
		Err:   &video.TranscodeError{Stderr: stderr, Err: errors.New("exit status 1")},
	}
	w, body := respond(t, err)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	if body["detail"] != stderr {
		t.Errorf("detail = %q, want verbatim stderr", body["detail"])
	}
}

func TestRespondUnclassified(t *testing.T) {
	w, body := respond(t, errors.New("boom"))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	if body["kind"] != "internal" {
		t.Errorf("kind = %q, want internal", body["kind"])
	}
}
