package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"clipforge/pipeline"
	"clipforge/store"
)

// respondWithError maps a pipeline failure to an HTTP status and a
// {kind, detail} body. Transcode detail carries the transcoder's
// stderr verbatim.
func respondWithError(c *gin.Context, err error) {
	kind := pipeline.KindOf(err)

	status := http.StatusInternalServerError
	switch kind {
	case pipeline.KindInvalidInput:
		status = http.StatusBadRequest
	case pipeline.KindNotFound:
		status = http.StatusNotFound
	case pipeline.KindTimeout:
		status = http.StatusGatewayTimeout
	}

	detail := err.Error()
	var pErr *pipeline.Error
	if errors.As(err, &pErr) {
		detail = pErr.Detail()
	} else if errors.Is(err, store.ErrNotFound) {
		kind = pipeline.KindNotFound
		status = http.StatusNotFound
	}

	log.Printf("API error (%s): %v", kind, err)
	c.JSON(status, gin.H{"kind": string(kind), "detail": detail})
}
